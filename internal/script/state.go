// Package script runs vector scripts in a sandboxed Lua state.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/navvec/internal/dispatch"
	"github.com/dshills/navvec/internal/logging"
	"github.com/dshills/navvec/internal/luavec"
	"github.com/dshills/navvec/internal/operand"
	"github.com/dshills/navvec/internal/vecmath"
)

// DefaultTimeout bounds one execution unless WithTimeout says otherwise.
const DefaultTimeout = 5 * time.Second

// State wraps a gopher-lua state with the vector library installed.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls made
// through State; code that reaches into LuaState directly must do its own
// locking.
type State struct {
	L *lua.LState

	mu sync.Mutex

	timeout   time.Duration
	precision int
	registry  *dispatch.Registry
	out       io.Writer
	logger    *logging.Logger

	lib     *luavec.Library
	sandbox *Sandbox

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithTimeout limits each execution. Zero disables the limit.
func WithTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithPrecision sets the decimals used when vectors are converted to strings.
func WithPrecision(digits int) StateOption {
	return func(s *State) {
		if digits >= 0 {
			s.precision = digits
		}
	}
}

// WithRegistry installs reg instead of dispatch.NewRegistry().
func WithRegistry(reg *dispatch.Registry) StateOption {
	return func(s *State) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) StateOption {
	return func(s *State) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) StateOption {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates a sandboxed Lua state with the vector library available
// as the global "vector" and through require("vector").
func NewState(opts ...StateOption) (*State, error) {
	state := &State{
		timeout:   DefaultTimeout,
		precision: vecmath.DefaultPrecision,
		out:       os.Stdout,
		logger:    logging.Null(),
	}
	for _, opt := range opts {
		opt(state)
	}
	if state.registry == nil {
		state.registry = dispatch.NewRegistry()
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state.L = L

	openSafeLibraries(L)

	state.lib = luavec.New(state.registry, luavec.WithPrecision(state.precision))
	state.lib.Open(L)
	L.PreloadModule(luavec.ModuleName, state.lib.Loader)

	state.sandbox = NewSandbox(L, state.out)
	state.sandbox.Allow(luavec.ModuleName)
	state.sandbox.Install()

	return state, nil
}

// openSafeLibraries opens only the libraries scripts need. io, os and debug
// are never opened; package is needed for require and preloading.
func openSafeLibraries(L *lua.LState) {
	lua.OpenPackage(L)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoString executes a chunk of Lua code.
func (s *State) DoString(code string) error {
	return s.DoStringContext(context.Background(), code)
}

// DoStringContext executes a chunk of Lua code, stopping when ctx is done
// or the state's timeout elapses.
func (s *State) DoStringContext(ctx context.Context, code string) error {
	_, err := s.exec(ctx, "<string>", func() (*lua.LFunction, error) {
		return s.L.LoadString(code)
	})
	return err
}

// DoFile executes the Lua file at path.
func (s *State) DoFile(path string) error {
	return s.DoFileContext(context.Background(), path)
}

// DoFileContext is DoFile bounded by ctx.
func (s *State) DoFileContext(ctx context.Context, path string) error {
	_, err := s.exec(ctx, path, func() (*lua.LFunction, error) {
		return s.L.LoadFile(path)
	})
	return err
}

// Eval evaluates a Lua expression list and returns its values, so
// Eval("v:upAndRight()") returns two vectors.
func (s *State) Eval(ctx context.Context, expr string) ([]lua.LValue, error) {
	return s.exec(ctx, expr, func() (*lua.LFunction, error) {
		return s.L.LoadString("return " + expr)
	})
}

// Call calls a global Lua function with the given arguments.
// Returns an empty slice (not nil) if the function returns no values.
func (s *State) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	return s.exec(context.Background(), fn, func() (*lua.LFunction, error) {
		v := s.L.GetGlobal(fn)
		f, ok := v.(*lua.LFunction)
		if !ok {
			return nil, fmt.Errorf("%q: %w (got %s)", fn, ErrNotFunction, v.Type())
		}
		return f, nil
	}, args...)
}

// exec loads a function and calls it under the state's limits.
func (s *State) exec(ctx context.Context, name string, load func() (*lua.LFunction, error), args ...lua.LValue) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStateClosed
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	fn, err := load()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := s.call(ctx, fn, args)
	if err != nil {
		s.logger.Debug("%s failed after %s: %v", name, time.Since(start), err)
		return nil, err
	}
	s.logger.Debug("%s returned %d values in %s", name, len(results), time.Since(start))
	return results, nil
}

// call runs fn with panic recovery and collects every value it returns.
func (s *State) call(ctx context.Context, fn *lua.LFunction, args []lua.LValue) ([]lua.LValue, error) {
	if ctx.Done() != nil {
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	stackTop := s.L.GetTop()
	s.L.Push(fn)
	for _, arg := range args {
		s.L.Push(arg)
	}

	err := s.doWithRecovery(func() error {
		return s.L.PCall(len(args), lua.MultRet, nil)
	})
	if err != nil {
		s.L.SetTop(stackTop)
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %w", ErrExecutionTimeout, ctxErr)
			}
			return nil, ctxErr
		}
		return nil, err
	}

	nRet := s.L.GetTop() - stackTop
	if nRet <= 0 {
		return []lua.LValue{}, nil
	}
	results := make([]lua.LValue, nRet)
	for i := 0; i < nRet; i++ {
		results[i] = s.L.Get(stackTop + i + 1)
	}
	s.L.Pop(nRet)
	return results, nil
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// SetGlobal sets a global variable.
func (s *State) SetGlobal(name string, value lua.LValue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.L.SetGlobal(name, value)
}

// Value returns a global as a number or vector. ok is false when the global
// holds anything else.
func (s *State) Value(name string) (v operand.Value, ok bool) {
	return luavec.FromLua(s.GetGlobal(name))
}

// SetValue stores a number or vector in a global.
func (s *State) SetValue(name string, v operand.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.L.SetGlobal(name, luavec.ToLua(s.L, v))
}

// Format renders a value the way print does, with the state's precision
// for vectors.
func (s *State) Format(lv lua.LValue) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lv.String()
	}
	return s.lib.Format(s.L, lv)
}

// Sandbox returns the sandbox, e.g. to inspect allowed modules.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// LuaState returns the underlying gopher-lua state.
//
// Direct access bypasses the mutex. The caller is responsible for
// serializing access.
func (s *State) LuaState() *lua.LState {
	return s.L
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases all resources associated with the Lua state.
// After Close is called, executions return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
