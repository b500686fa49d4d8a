package dispatch

import (
	"maps"
	"slices"

	"github.com/dshills/navvec/internal/operand"
	"github.com/dshills/navvec/internal/vecmath"
)

// Op is a host-callable operation. It may return more than one value.
type Op func(args operand.Source) ([]operand.Value, error)

// Registry is the immutable table of operations a host exposes. Build it
// once with NewRegistry and share it freely.
type Registry struct {
	library   map[string]Op
	methods   map[operand.Kind]map[string]Op
	constants map[string]operand.Value
}

// NewRegistry builds the operator tables.
func NewRegistry() *Registry {
	shared := map[string]Op{
		"add":    single(Add),
		"sub":    single(Sub),
		"mul":    single(Mul),
		"length": single(Length),
		"unit":   single(Unit),
		"rotate": single(Rotate),
		"lerp":   single(Lerp),
		"angle":  single(Angle),

		"__add": single(Add),
		"__sub": single(Sub),
		"__mul": single(Mul),
		"__unm": single(Neg),
		"__len": single(Length),
	}

	spatial := maps.Clone(shared)
	spatial["cross"] = single(Cross)
	spatial["slerp"] = single(Slerp)
	spatial["upAndRight"] = upAndRight
	spatial["x"] = single(X)
	spatial["y"] = single(Y)
	spatial["z"] = single(Z)
	spatial["__mod"] = single(Cross)

	planar := maps.Clone(shared)
	planar["conj"] = single(Conj)
	planar["u"] = single(U)
	planar["v"] = single(V)

	return &Registry{
		library: map[string]Op{
			"new":    single(New),
			"length": single(Length),
			"unit":   single(Unit),
			"rotate": single(Rotate),
			"lerp":   single(Lerp),
		},
		methods: map[operand.Kind]map[string]Op{
			operand.KindVector3: spatial,
			operand.KindVector2: planar,
		},
		constants: map[string]operand.Value{
			"nzero": operand.Spatial(vecmath.Vector3{}),
			"pzero": operand.Planar(vecmath.Vector2{}),
		},
	}
}

// Library returns a copy of the free functions exposed on the library table.
func (r *Registry) Library() map[string]Op {
	return maps.Clone(r.library)
}

// Methods returns a copy of the methods and metamethods for a vector kind.
// It returns nil for KindScalar.
func (r *Registry) Methods(k operand.Kind) map[string]Op {
	m, ok := r.methods[k]
	if !ok {
		return nil
	}
	return maps.Clone(m)
}

// Constants returns a copy of the named constant values.
func (r *Registry) Constants() map[string]operand.Value {
	return maps.Clone(r.constants)
}

// Lookup finds a method of kind k by name.
func (r *Registry) Lookup(k operand.Kind, name string) (Op, bool) {
	op, ok := r.methods[k][name]
	return op, ok
}

// MethodNames returns the sorted method names of kind k.
func (r *Registry) MethodNames(k operand.Kind) []string {
	return slices.Sorted(maps.Keys(r.methods[k]))
}

// Call resolves operand 1 and invokes the method name registered for its
// kind, the way a host's method lookup on a receiver would.
func (r *Registry) Call(name string, args operand.Source) ([]operand.Value, error) {
	recv, err := operand.ResolveVector(args, 1)
	if err != nil {
		return nil, err
	}
	op, ok := r.Lookup(recv.Kind, name)
	if !ok {
		return nil, &operand.TypeError{Pos: 1, Msg: recv.Kind.String() + " has no method " + name}
	}
	return op(args)
}

func single(fn func(operand.Source) (operand.Value, error)) Op {
	return func(args operand.Source) ([]operand.Value, error) {
		v, err := fn(args)
		if err != nil {
			return nil, err
		}
		return []operand.Value{v}, nil
	}
}

func upAndRight(args operand.Source) ([]operand.Value, error) {
	up, right, err := UpAndRight(args)
	if err != nil {
		return nil, err
	}
	return []operand.Value{up, right}, nil
}
