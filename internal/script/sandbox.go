package script

import (
	"io"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to computation: no file loading, no
// dynamic code loading and no modules beyond an allow-list.
type Sandbox struct {
	L       *lua.LState
	out     io.Writer
	modules map[string]bool
}

// NewSandbox creates a sandbox for L. print writes to out.
func NewSandbox(L *lua.LState, out io.Writer) *Sandbox {
	if out == nil {
		out = io.Discard
	}
	return &Sandbox{
		L:   L,
		out: out,
		modules: map[string]bool{
			"string": true,
			"table":  true,
			"math":   true,
		},
	}
}

// Allow adds a module name to the require allow-list. The module itself
// must be provided with L.PreloadModule.
func (s *Sandbox) Allow(name string) {
	s.modules[name] = true
}

// Modules returns the allowed module names, sorted.
func (s *Sandbox) Modules() []string {
	out := make([]string, 0, len(s.modules))
	for m := range s.modules {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.installPrint()
	s.installSafeRequire()
}

// installPrint replaces print so output goes to the sandbox writer.
// Values render through tostring, so vectors use their __tostring.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, top)
		for i := 1; i <= top; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		_, _ = io.WriteString(s.out, strings.Join(parts, "\t")+"\n")
		return 0
	}))
}

// installSafeRequire empties package.path and package.cpath so nothing is
// read from disk, and wraps require so only allowed modules load.
func (s *Sandbox) installSafeRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	originalRequire := s.L.GetGlobal("require")
	if originalRequire == lua.LNil {
		return
	}

	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !s.modules[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(originalRequire)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}
