package luavec

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/navvec/internal/dispatch"
	"github.com/dshills/navvec/internal/operand"
	"github.com/dshills/navvec/internal/vecmath"
)

// Names under which the library registers itself.
const (
	ModuleName      = "vector"
	SpatialTypeName = "navvector"
	PlanarTypeName  = "planevector"
)

// Library installs a dispatch.Registry into Lua states.
type Library struct {
	reg       *dispatch.Registry
	precision int
}

// Option configures a Library.
type Option func(*Library)

// WithPrecision sets the number of decimals used by tostring.
func WithPrecision(digits int) Option {
	return func(lib *Library) {
		if digits >= 0 {
			lib.precision = digits
		}
	}
}

// New creates a Library backed by reg.
func New(reg *dispatch.Registry, opts ...Option) *Library {
	lib := &Library{
		reg:       reg,
		precision: vecmath.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Open registers the vector metatables, builds the module table and
// stores it in the global "vector". The module table is returned.
func (lib *Library) Open(L *lua.LState) *lua.LTable {
	mod := lib.install(L)
	L.SetGlobal(ModuleName, mod)
	return mod
}

// Loader is an lua.LGFunction suitable for L.PreloadModule, so scripts can
// also write `local vector = require("vector")`.
func (lib *Library) Loader(L *lua.LState) int {
	L.Push(lib.install(L))
	return 1
}

// install registers both metatables and returns a fresh module table.
func (lib *Library) install(L *lua.LState) *lua.LTable {
	lib.registerType(L, SpatialTypeName, operand.KindVector3)
	lib.registerType(L, PlanarTypeName, operand.KindVector2)

	mod := L.NewTable()
	for name, op := range lib.reg.Library() {
		L.SetField(mod, name, L.NewFunction(wrap(op)))
	}
	for name, v := range lib.reg.Constants() {
		L.SetField(mod, name, ToLua(L, v))
	}
	return mod
}

// registerType fills the metatable for one vector kind. Methods resolve
// through __index, so v:length() and vector.length(v) are the same call.
func (lib *Library) registerType(L *lua.LState, typeName string, kind operand.Kind) {
	mt := L.NewTypeMetatable(typeName)
	L.SetField(mt, "__index", mt)
	for name, op := range lib.reg.Methods(kind) {
		L.SetField(mt, name, L.NewFunction(wrap(op)))
	}
	L.SetField(mt, "__tostring", L.NewFunction(lib.tostring))
	L.SetField(mt, "__eq", L.NewFunction(equal))
}

// Format renders a Lua value the way tostring would, using the library's
// precision for vectors.
func (lib *Library) Format(L *lua.LState, lv lua.LValue) string {
	if v, ok := toVector3(lv); ok {
		return v.Format(lib.precision)
	}
	if v, ok := toVector2(lv); ok {
		return v.Format(lib.precision)
	}
	return L.ToStringMeta(lv).String()
}

// tostring(v) -> string
func (lib *Library) tostring(L *lua.LState) int {
	L.Push(lua.LString(lib.Format(L, L.Get(1))))
	return 1
}

// equal(a, b) -> bool
func equal(L *lua.LState) int {
	eq, err := dispatch.Equal(stackArgs{L})
	if err != nil {
		// Lua only consults __eq for two userdata; anything that is not one
		// of our vectors simply compares unequal.
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LBool(eq))
	return 1
}

// wrap adapts a dispatch.Op to the Lua calling convention.
func wrap(op dispatch.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		out, err := op(stackArgs{L})
		if err != nil {
			raise(L, err)
			return 0
		}
		for _, v := range out {
			L.Push(ToLua(L, v))
		}
		return len(out)
	}
}

// raise reports err as a Lua error. Operand errors become argument errors
// pointing at the offending position.
func raise(L *lua.LState, err error) {
	var te *operand.TypeError
	var km *dispatch.KindMismatchError
	switch {
	case errors.As(err, &te):
		L.ArgError(te.Pos, te.Msg)
	case errors.As(err, &km):
		L.ArgError(km.Pos, fmt.Sprintf("vector type mismatch: %s expected, got %s", km.Want, km.Got))
	default:
		L.RaiseError("%s", err.Error())
	}
}
