package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable navvec reads.
const EnvPrefix = "NAVVEC_"

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Loader layers defaults, a config file and the environment.
type Loader struct {
	fs        FileSystem
	lookupEnv func(string) (string, bool)
	envPaths  map[string]string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS reads config files through fsys.
func WithFS(fsys FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) LoaderOption {
	return func(l *Loader) {
		l.lookupEnv = fn
	}
}

// NewLoader creates a loader reading from the OS.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:        OSFS{},
		lookupEnv: os.LookupEnv,
		envPaths:  defaultEnvMapping(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// defaultEnvMapping maps environment variables to setting paths.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "LOG_LEVEL":      "log.level",
		EnvPrefix + "TIMEOUT":        "sandbox.timeout",
		EnvPrefix + "PRECISION":      "display.precision",
		EnvPrefix + "WATCH_DEBOUNCE": "watch.debounce",
	}
}

// Load returns Default() overlaid with the file at path (if any) and then
// the environment. An empty path or a missing file is not an error. The
// result is validated.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := l.readFile(path)
		if err != nil {
			return cfg, err
		}
		if data != nil {
			if err := apply(&cfg, data); err != nil {
				return cfg, fmt.Errorf("applying %s: %w", path, err)
			}
		}
	}

	if err := apply(&cfg, l.environment()); err != nil {
		return cfg, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load is shorthand for NewLoader().Load(path).
func Load(path string) (Config, error) {
	return NewLoader().Load(path)
}

// readFile decodes the file at path by extension. It returns nil, nil when
// the file does not exist.
func (l *Loader) readFile(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var out map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &out); err != nil {
			pe := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				pe.Line, _ = derr.Position()
			}
			return nil, pe
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// environment collects the mapped NAVVEC_ variables as a settings map.
func (l *Loader) environment() map[string]any {
	out := make(map[string]any)
	for env, path := range l.envPaths {
		if val, ok := l.lookupEnv(env); ok {
			setByPath(out, path, val)
		}
	}
	return out
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// getByPath reads a value from a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := data
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if current, ok = v.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// apply copies the settings present in data onto cfg. Unknown keys are
// ignored.
func apply(cfg *Config, data map[string]any) error {
	if v, ok := getByPath(data, "log.level"); ok {
		s, err := asString("log.level", v)
		if err != nil {
			return err
		}
		cfg.Log.Level = s
	}
	if v, ok := getByPath(data, "sandbox.timeout"); ok {
		d, err := asDuration("sandbox.timeout", v)
		if err != nil {
			return err
		}
		cfg.Sandbox.Timeout = d
	}
	if v, ok := getByPath(data, "display.precision"); ok {
		n, err := asInt("display.precision", v)
		if err != nil {
			return err
		}
		cfg.Display.Precision = n
	}
	if v, ok := getByPath(data, "watch.debounce"); ok {
		d, err := asDuration("watch.debounce", v)
		if err != nil {
			return err
		}
		cfg.Watch.Debounce = d
	}
	return nil
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w: expected string, got %T", path, ErrTypeMismatch, v)
	}
	return s, nil
}

func asInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: %w: expected integer, got %v", path, ErrTypeMismatch, v)
}

// asDuration accepts Go duration strings ("250ms") or a number of seconds.
func asDuration(path string, v any) (time.Duration, error) {
	switch d := v.(type) {
	case string:
		s := strings.TrimSpace(d)
		if parsed, err := time.ParseDuration(s); err == nil {
			return parsed, nil
		}
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(secs * float64(time.Second)), nil
		}
	case int:
		return time.Duration(d) * time.Second, nil
	case int64:
		return time.Duration(d) * time.Second, nil
	case float64:
		return time.Duration(d * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("%s: %w: expected duration, got %v", path, ErrTypeMismatch, v)
}
