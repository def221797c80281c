package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/comparator"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerGeneral wires the polymorphic equality/ordering operators as
// macros: "compare", "<", ">", "<=" and ">=" build a type-directed
// comparator once, at the call site's monomorphization, rather than
// dispatching on runtime tags on every call; "=" and "<>" build no
// comparator and use structural equality (see eqFn).
func registerGeneral(r Registry, cmpBuilder *comparator.Builder) {
	r.macro("=", func(argType *types.Type) code.Applicable {
		return eqFn{negate: false}
	})

	r.macro("<>", func(argType *types.Type) code.Applicable {
		return eqFn{negate: true}
	})

	r.macro("compare", func(argType *types.Type) code.Applicable {
		cmp := cmpBuilder.Build(argType)
		return compareFn{cmp: cmp}
	})

	r.macro("<", func(argType *types.Type) code.Applicable {
		cmp := cmpBuilder.Build(argType)
		return ordFn{cmp: cmp, accept: func(c int) bool { return c < 0 }}
	})

	r.macro(">", func(argType *types.Type) code.Applicable {
		cmp := cmpBuilder.Build(argType)
		return ordFn{cmp: cmp, accept: func(c int) bool { return c > 0 }}
	})

	r.macro("<=", func(argType *types.Type) code.Applicable {
		cmp := cmpBuilder.Build(argType)
		return ordFn{cmp: cmp, accept: func(c int) bool { return c <= 0 }}
	})

	r.macro(">=", func(argType *types.Type) code.Applicable {
		cmp := cmpBuilder.Build(argType)
		return ordFn{cmp: cmp, accept: func(c int) bool { return c >= 0 }}
	})
}

// eqFn is the Applicable2 a "="/"<>" macro monomorphizes to. It uses
// values.Equal directly rather than the ordering comparator: ML's "="
// is structural equality, not "compare gives EQUAL", and values.Equal
// implements the NaN-never-equal rule at every nesting depth — a
// single int comparator result cannot express "never equal, never
// ordered".
type eqFn struct {
	negate bool
}

func (eqFn) Kind() values.Kind { return values.KApplicable }
func (e eqFn) Apply(_ evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return e.Apply2(seq[0], seq[1])
}
func (e eqFn) Apply2(a, b values.Value) values.Value {
	eq := values.Equal(a, b)
	if e.negate {
		eq = !eq
	}
	return values.Bool(eq)
}
func (e eqFn) Curry() code.Applicable1 { return genericCurry1{inner: e} }
func (e eqFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start("=")
	return d.End()
}

// ordFn is the Applicable2 a "<"/">"/"<="/">=" macro monomorphizes to.
type ordFn struct {
	cmp    comparator.Comparator
	accept func(int) bool
}

func (ordFn) Kind() values.Kind { return values.KApplicable }
func (o ordFn) Apply(_ evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return o.Apply2(seq[0], seq[1])
}
func (o ordFn) Apply2(a, b values.Value) values.Value {
	// NaN is ordered with respect to nothing, so `<`, `>`, `<=`, `>=`
	// must all answer false — a single non-zero comparator result
	// can't make both sides of an inequality false at once (accept(c)
	// and accept(-c) would never both be false for a fixed non-zero
	// c), so NaN needs its own check here rather than trusting the
	// sign the comparator returns for it.
	if isUnorderedPair(a, b) {
		return values.Bool(false)
	}
	return values.Bool(o.accept(o.cmp(a, b)))
}
func (o ordFn) Curry() code.Applicable1 { return genericCurry1{inner: o} }
func (o ordFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start("order")
	return d.End()
}

// isUnorderedPair reports whether a or b is a NaN real, the only value
// in this evaluator's domain with no place in any order.
func isUnorderedPair(a, b values.Value) bool {
	if r, ok := a.(values.Real); ok && values.IsNaN(r) {
		return true
	}
	if r, ok := b.(values.Real); ok && values.IsNaN(r) {
		return true
	}
	return false
}

// compareFn is the Applicable2 the "compare" macro monomorphizes to,
// returning the LESS/EQUAL/GREATER constructor values ML's Order.order
// basis type uses.
type compareFn struct{ cmp comparator.Comparator }

func (compareFn) Kind() values.Kind { return values.KApplicable }
func (c compareFn) Apply(_ evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return c.Apply2(seq[0], seq[1])
}
func (c compareFn) Apply2(a, b values.Value) values.Value {
	switch n := c.cmp(a, b); {
	case n < 0:
		return values.NewConstructor0("LESS")
	case n > 0:
		return values.NewConstructor0("GREATER")
	default:
		return values.NewConstructor0("EQUAL")
	}
}
func (c compareFn) Curry() code.Applicable1 { return genericCurry1{inner: c} }
func (c compareFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start("compare")
	return d.End()
}

// genericCurry1/genericCurry2 let any Applicable2 be applied one
// argument at a time, regardless of its concrete type.
type genericCurry1 struct{ inner code.Applicable2 }

func (c genericCurry1) Kind() values.Kind { return values.KApplicable }
func (c genericCurry1) Apply(_ evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c genericCurry1) Apply1(arg0 values.Value) values.Value {
	return genericCurry2{inner: c.inner, arg0: arg0}
}
func (c genericCurry1) Describe(d *describe.Describer) *describe.Describer {
	d.Start("curry1")
	return d.End()
}

type genericCurry2 struct {
	inner code.Applicable2
	arg0  values.Value
}

func (c genericCurry2) Kind() values.Kind { return values.KApplicable }
func (c genericCurry2) Apply(_ evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c genericCurry2) Apply1(arg1 values.Value) values.Value {
	return c.inner.Apply2(c.arg0, arg1)
}
func (c genericCurry2) Describe(d *describe.Describer) *describe.Describer {
	d.Start("curry2")
	return d.End()
}

var (
	_ code.Applicable2 = eqFn{}
	_ code.Applicable2 = ordFn{}
	_ code.Applicable2 = compareFn{}
	_ code.Applicable1 = genericCurry1{}
	_ code.Applicable1 = genericCurry2{}
)
