package luavec

import (
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/navvec/internal/operand"
	"github.com/dshills/navvec/internal/vecmath"
)

// ToLua converts a resolved value to a Lua value. Vectors become userdata
// carrying the metatable registered for their kind, so the library must be
// opened on L first for vector methods to resolve.
func ToLua(L *lua.LState, v operand.Value) lua.LValue {
	switch v.Kind {
	case operand.KindVector3:
		return newUserData(L, v.V3, SpatialTypeName)
	case operand.KindVector2:
		return newUserData(L, v.V2, PlanarTypeName)
	default:
		return lua.LNumber(v.Num)
	}
}

// FromLua classifies a Lua value. Numbers and numeric strings are scalars;
// vector userdata map to their kind. Anything else reports false.
func FromLua(lv lua.LValue) (operand.Value, bool) {
	if f, ok := toNumber(lv); ok {
		return operand.Number(f), true
	}
	if v, ok := toVector3(lv); ok {
		return operand.Spatial(v), true
	}
	if v, ok := toVector2(lv); ok {
		return operand.Planar(v), true
	}
	return operand.Value{}, false
}

func newUserData(L *lua.LState, value any, typeName string) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = value
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}

// toNumber mirrors Lua's arithmetic coercion: numbers pass through and
// strings convert when they parse as a number.
func toNumber(lv lua.LValue) (float64, bool) {
	switch v := lv.(type) {
	case lua.LNumber:
		return float64(v), true
	case lua.LString:
		s := strings.TrimSpace(string(v))
		if s == "" {
			return 0, false
		}
		// ParseFloat accepts spellings Lua does not.
		if l := strings.ToLower(s); strings.Contains(l, "inf") || strings.Contains(l, "nan") {
			return 0, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
		if n, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(n), true
		}
	}
	return 0, false
}

func toVector3(lv lua.LValue) (vecmath.Vector3, bool) {
	ud, ok := lv.(*lua.LUserData)
	if !ok {
		return vecmath.Vector3{}, false
	}
	v, ok := ud.Value.(vecmath.Vector3)
	return v, ok
}

func toVector2(lv lua.LValue) (vecmath.Vector2, bool) {
	ud, ok := lv.(*lua.LUserData)
	if !ok {
		return vecmath.Vector2{}, false
	}
	v, ok := ud.Value.(vecmath.Vector2)
	return v, ok
}

// stackArgs exposes the arguments of the running Go function as an
// operand.Source.
type stackArgs struct {
	L *lua.LState
}

func (a stackArgs) Len() int { return a.L.GetTop() }

func (a stackArgs) Number(pos int) (float64, bool) { return toNumber(a.get(pos)) }

func (a stackArgs) Vector3(pos int) (vecmath.Vector3, bool) { return toVector3(a.get(pos)) }

func (a stackArgs) Vector2(pos int) (vecmath.Vector2, bool) { return toVector2(a.get(pos)) }

func (a stackArgs) get(pos int) lua.LValue {
	if pos < 1 || pos > a.L.GetTop() {
		return lua.LNil
	}
	return a.L.Get(pos)
}
