package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerBag wires Bag.*: an unordered multiset that shares the
// list's runtime representation. Unlike List.*, Bag's operations never
// promise an order, so fromList/toList are identity conversions and
// there is no Bag.rev/Bag.hd; the `from ... union/except/intersect`
// operators that actually need set semantics live in package rowsink,
// not here — this namespace only covers the handful of bag-level
// combinators ML scripts call directly outside a `from` pipeline.
func registerBag(r Registry) {
	r.app("Bag.fromList", Unary("Bag.fromList", func(p pos.Position, a values.Value) values.Value {
		return append(values.Seq{}, a.(values.Seq)...)
	}))

	r.app("Bag.toList", Unary("Bag.toList", func(p pos.Position, a values.Value) values.Value {
		return append(values.Seq{}, a.(values.Seq)...)
	}))

	r.app("Bag.length", Unary("Bag.length", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(len(a.(values.Seq))))
	}))

	r.app("Bag.null", Unary("Bag.null", func(p pos.Position, a values.Value) values.Value {
		return values.Bool(len(a.(values.Seq)) == 0)
	}))

	r.app("Bag.map", Binary("Bag.map", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		seq := b.(values.Seq)
		out := make(values.Seq, len(seq))
		for i, v := range seq {
			out[i] = fn.Apply1(v)
		}
		return out
	}))

	r.app("Bag.filter", Binary("Bag.filter", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		var out values.Seq
		for _, v := range b.(values.Seq) {
			if bool(fn.Apply1(v).(values.Bool)) {
				out = append(out, v)
			}
		}
		return out
	}))

	r.app("Bag.app", Binary("Bag.app", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		for _, v := range b.(values.Seq) {
			fn.Apply1(v)
		}
		return values.TheUnit
	}))

	r.app("Bag.concat", Binary("Bag.concat", func(p pos.Position, a, b values.Value) values.Value {
		as, bs := a.(values.Seq), b.(values.Seq)
		out := make(values.Seq, 0, len(as)+len(bs))
		out = append(out, as...)
		out = append(out, bs...)
		return out
	}))
}
