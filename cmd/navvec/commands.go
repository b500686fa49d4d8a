package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/navvec/internal/watcher"
)

func newRunCmd(c *cli) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a Lua script",
		Long: `Run executes FILE in a sandboxed Lua state with the vector library
loaded. With --watch the script is run again whenever FILE changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				return c.watchScript(ctx, args[0], cmd.OutOrStdout())
			}
			return c.runScript(ctx, args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the script when it changes")
	return cmd
}

// runScript executes path in a fresh state.
func (c *cli) runScript(ctx context.Context, path string, out io.Writer) error {
	state, err := c.newState(out)
	if err != nil {
		return err
	}
	defer state.Close()

	log := c.logger.WithField("script", path)
	log.Debug("running")
	if err := state.DoFileContext(ctx, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("finished")
	return nil
}

// watchScript runs path, then runs it again after every change until ctx
// is done. Script failures are logged rather than returned.
func (c *cli) watchScript(ctx context.Context, path string, out io.Writer) error {
	w, err := watcher.New(
		watcher.WithDebounce(c.cfg.Watch.Debounce),
		watcher.WithLogger(c.logger.WithComponent("watcher")),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	if err := c.runScript(ctx, path, out); err != nil {
		c.logger.Error("%v", err)
	}
	c.logger.Info("watching %s", path)

	err = w.Run(ctx, func(ev watcher.Event) {
		if ev.Op&watcher.OpRemove != 0 {
			c.logger.Warn("%s was removed", ev.Path)
			return
		}
		c.logger.Info("%s changed (%s), re-running", ev.Path, ev.Op)
		if err := c.runScript(ctx, path, out); err != nil {
			c.logger.Error("%v", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newEvalCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate a Lua expression and print its values",
		Example: `  navvec eval 'vector.new(1, 0, 0) % vector.new(0, 1, 0)'
  navvec eval 'vector.new(0, 0, 1):upAndRight()'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.newState(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer state.Close()

			results, err := state.Eval(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return nil
			}

			parts := make([]string, len(results))
			for i, r := range results {
				parts[i] = state.Format(r)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "\t"))
			return nil
		},
	}
}
