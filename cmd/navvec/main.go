// Package main is the entry point for the navvec command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dshills/navvec/internal/config"
	"github.com/dshills/navvec/internal/logging"
	"github.com/dshills/navvec/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// cli carries state shared by the subcommands.
type cli struct {
	configPath string
	logLevel   string
	logOut     io.Writer

	cfg    config.Config
	logger *logging.Logger
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	c := &cli{logOut: logOut}

	root := &cobra.Command{
		Use:   "navvec",
		Short: "Run navigation vector scripts",
		Long: `navvec runs Lua scripts with a built-in "vector" library of planar
and spatial navigation vectors: arithmetic, dot and cross products,
rotation, interpolation and attitude helpers.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(versionString() + "\n")

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a TOML or YAML configuration file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(c),
		newEvalCmd(c),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.logLevel != "" {
		if _, err := logging.ParseLevel(c.logLevel); err != nil {
			return err
		}
		cfg.Log.Level = c.logLevel
	}
	c.cfg = cfg

	c.logger = logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: c.logOut,
		Prefix: "navvec",
	}).WithFields(map[string]any{
		"run":     uuid.NewString(),
		"command": cmd.Name(),
	})
	return nil
}

// newState creates a script state configured from c.cfg.
func (c *cli) newState(out io.Writer) (*script.State, error) {
	return script.NewState(
		script.WithTimeout(c.cfg.Sandbox.Timeout),
		script.WithPrecision(c.cfg.Display.Precision),
		script.WithOutput(out),
		script.WithLogger(c.logger.WithComponent("script")),
	)
}

func versionString() string {
	return fmt.Sprintf("navvec %s (commit %s, built %s)", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		},
	}
}
