package config

import (
	"errors"
	"time"

	"github.com/dshills/navvec/internal/logging"
	"github.com/dshills/navvec/internal/vecmath"
)

// Config holds every navvec setting.
type Config struct {
	Log     LogConfig
	Sandbox SandboxConfig
	Display DisplayConfig
	Watch   WatchConfig
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
}

// SandboxConfig bounds script execution.
type SandboxConfig struct {
	// Timeout limits a single script execution. Zero disables the limit.
	Timeout time.Duration
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	// Precision is the number of decimals printed per vector component.
	Precision int
}

// WatchConfig configures `run --watch`.
type WatchConfig struct {
	// Debounce coalesces bursts of file events into one re-run.
	Debounce time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Sandbox: SandboxConfig{Timeout: 5 * time.Second},
		Display: DisplayConfig{Precision: vecmath.DefaultPrecision},
		Watch:   WatchConfig{Debounce: 100 * time.Millisecond},
	}
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() logging.Level {
	lvl, _ := logging.ParseLevel(c.Log.Level)
	return lvl
}

// Validate reports every invalid setting, joined into one error.
func (c Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{Path: "log.level", Value: c.Log.Level, Message: "must be debug, info, warn or error"})
	}
	if c.Sandbox.Timeout < 0 {
		errs = append(errs, &ValidationError{Path: "sandbox.timeout", Value: c.Sandbox.Timeout, Message: "must not be negative"})
	}
	if c.Display.Precision < 0 {
		errs = append(errs, &ValidationError{Path: "display.precision", Value: c.Display.Precision, Message: "must not be negative"})
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, &ValidationError{Path: "watch.debounce", Value: c.Watch.Debounce, Message: "must not be negative"})
	}

	return errors.Join(errs...)
}
