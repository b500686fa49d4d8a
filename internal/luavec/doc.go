// Package luavec exposes the vector operators to gopher-lua.
//
// Vectors live in Lua as userdata whose Value is a vecmath.Vector2 or
// vecmath.Vector3. Each kind has a registered type metatable
// ("planevector" and "navvector") that doubles as its method table, so the
// following are equivalent:
//
//	local a = vector.new(1, 0, 0)
//	local b = vector.new(0, 1, 0)
//	print(a:cross(b), a % b)
//	print(a:mul(2), a * 2, 2 * a)
//	print(vector.length(a), a:length(), #a)
//
// # Setup
//
//	reg := dispatch.NewRegistry()
//	lib := luavec.New(reg, luavec.WithPrecision(3))
//
//	L := lua.NewState()
//	defer L.Close()
//	lib.Open(L)                              // global "vector"
//	L.PreloadModule("vector", lib.Loader)    // require("vector")
//
// Operand errors are raised as Lua argument errors ("bad argument #2 ...").
// Vector values are immutable: every operation pushes a new userdata.
package luavec
