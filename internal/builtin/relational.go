package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerRelational wires the Relational.* aggregate/quantifier
// functions a `from ... compute`/`where` pipeline calls: sum/min/max
// are macros monomorphized at the call site to the element type the
// same way "+"/"-" are in registerArith, since ML's `sum of b` has no
// runtime tag to dispatch on once the list is just a Seq of Value.
func registerRelational(r Registry) {
	r.macro("Relational.sum", func(argType *types.Type) code.Applicable {
		if isRealList(argType) {
			return reduceFn{name: "Relational.sum", zero: values.Real(0), step: sumRealStep}
		}
		return reduceFn{name: "Relational.sum", zero: values.Int(0), step: sumIntStep}
	})

	r.macro("Relational.min", func(argType *types.Type) code.Applicable {
		if isRealList(argType) {
			return reduceFn{name: "Relational.min", step: minMaxRealStep(true)}
		}
		return reduceFn{name: "Relational.min", step: minMaxIntStep(true)}
	})

	r.macro("Relational.max", func(argType *types.Type) code.Applicable {
		if isRealList(argType) {
			return reduceFn{name: "Relational.max", step: minMaxRealStep(false)}
		}
		return reduceFn{name: "Relational.max", step: minMaxIntStep(false)}
	})

	r.app("Relational.count", Unary("Relational.count", func(_ pos.Position, a values.Value) values.Value {
		return values.Int(int64(len(a.(values.Seq))))
	}))

	r.app("Relational.exists", Unary("Relational.exists", func(_ pos.Position, a values.Value) values.Value {
		return values.Bool(len(a.(values.Seq)) > 0)
	}))

	r.app("Relational.notExists", Unary("Relational.notExists", func(_ pos.Position, a values.Value) values.Value {
		return values.Bool(len(a.(values.Seq)) == 0)
	}))

	r.app("Relational.forall", Unary("Relational.forall", func(_ pos.Position, a values.Value) values.Value {
		for _, v := range a.(values.Seq) {
			if !bool(v.(values.Bool)) {
				return values.Bool(false)
			}
		}
		return values.Bool(true)
	}))

	// Relational.only raises Empty on zero rows and Size on more than
	// one, the same boundary the list "only" built-in uses, but lives
	// under Relational since it is most often applied to a `from`
	// result rather than a plain list literal.
	r.app("Relational.only", Unary("Relational.only", func(p pos.Position, a values.Value) values.Value {
		seq := a.(values.Seq)
		switch len(seq) {
		case 0:
			panic(except.New(except.Empty, p, ""))
		case 1:
			return seq[0]
		default:
			panic(except.New(except.Size, p, ""))
		}
	}))
}

// isRealList reports whether argType is `real list`/`real bag`, the
// only distinction this file's macros need.
func isRealList(t *types.Type) bool {
	if t == nil {
		return false
	}
	elem := t.Elem(0)
	return elem != nil && elem.Name == "real"
}

// reduceFn is the Applicable1 every Relational aggregate macro
// monomorphizes to: it folds step over the bucket Seq a compute
// clause hands it. When zero is nil (min/max), the fold seeds from
// the bucket's first element instead of a neutral value, since
// min/max have no neutral element and are undefined on an empty
// bucket in ML's basis.
type reduceFn struct {
	name string
	zero values.Value
	step func(acc, v values.Value) values.Value
}

func (reduceFn) Kind() values.Kind { return values.KApplicable }
func (f reduceFn) Apply(_ evalenv.Env, arg values.Value) values.Value { return f.Apply1(arg) }
func (f reduceFn) Apply1(arg values.Value) values.Value {
	seq := arg.(values.Seq)
	if f.zero != nil {
		acc := f.zero
		for _, v := range seq {
			acc = f.step(acc, v)
		}
		return acc
	}
	if len(seq) == 0 {
		return values.TheUnit
	}
	acc := seq[0]
	for _, v := range seq[1:] {
		acc = f.step(acc, v)
	}
	return acc
}
func (f reduceFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start(f.name)
	return d.End()
}

func sumIntStep(acc, v values.Value) values.Value {
	return values.Int(int64(acc.(values.Int)) + int64(v.(values.Int)))
}

func sumRealStep(acc, v values.Value) values.Value {
	return values.Real(float32(acc.(values.Real)) + float32(v.(values.Real)))
}

func minMaxIntStep(min bool) func(values.Value, values.Value) values.Value {
	return func(acc, v values.Value) values.Value {
		a, b := int64(acc.(values.Int)), int64(v.(values.Int))
		if (min && b < a) || (!min && b > a) {
			return v
		}
		return acc
	}
}

func minMaxRealStep(min bool) func(values.Value, values.Value) values.Value {
	return func(acc, v values.Value) values.Value {
		a, b := float32(acc.(values.Real)), float32(v.(values.Real))
		if (min && b < a) || (!min && b > a) {
			return v
		}
		return acc
	}
}

var _ code.Applicable1 = reduceFn{}
