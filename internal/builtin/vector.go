package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerVector wires Vector.*: a vector shares List's runtime Seq
// representation (the two differ only at the type level), so most of
// this mirrors registerList, specialized to the positioned operators
// the Vector structure adds — sub/update raise Subscript out of
// range, tabulate raises Size on a negative count.
func registerVector(r Registry) {
	r.app("Vector.fromList", Unary("Vector.fromList", func(p pos.Position, a values.Value) values.Value {
		return append(values.Seq{}, a.(values.Seq)...)
	}))

	r.app("Vector.toList", Unary("Vector.toList", func(p pos.Position, a values.Value) values.Value {
		return append(values.Seq{}, a.(values.Seq)...)
	}))

	r.app("Vector.length", Unary("Vector.length", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(len(a.(values.Seq))))
	}))

	r.app("Vector.sub", Binary("Vector.sub", func(p pos.Position, a, b values.Value) values.Value {
		seq := a.(values.Seq)
		i := int64(b.(values.Int))
		if i < 0 || i >= int64(len(seq)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		return seq[i]
	}))

	r.app("Vector.update", Ternary("Vector.update", func(p pos.Position, a, b, c values.Value) values.Value {
		seq := a.(values.Seq)
		i := int64(b.(values.Int))
		if i < 0 || i >= int64(len(seq)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		out := append(values.Seq{}, seq...)
		out[i] = c
		return out
	}))

	r.app("Vector.tabulate", Binary("Vector.tabulate", func(p pos.Position, a, b values.Value) values.Value {
		n := int64(a.(values.Int))
		if n < 0 {
			panic(except.New(except.Size, p, ""))
		}
		fn := b.(code.Applicable1)
		out := make(values.Seq, n)
		for i := int64(0); i < n; i++ {
			out[i] = fn.Apply1(values.Int(i))
		}
		return out
	}))

	r.app("Vector.map", Binary("Vector.map", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		seq := b.(values.Seq)
		out := make(values.Seq, len(seq))
		for i, v := range seq {
			out[i] = fn.Apply1(v)
		}
		return out
	}))

	r.app("Vector.app", Binary("Vector.app", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		for _, v := range b.(values.Seq) {
			fn.Apply1(v)
		}
		return values.TheUnit
	}))

	r.app("Vector.foldl", Ternary("Vector.foldl", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		acc := b
		for _, v := range c.(values.Seq) {
			acc = fn.Apply1(values.NewSeq(v, acc))
		}
		return acc
	}))

	r.app("Vector.foldr", Ternary("Vector.foldr", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		acc := b
		seq := c.(values.Seq)
		for i := len(seq) - 1; i >= 0; i-- {
			acc = fn.Apply1(values.NewSeq(seq[i], acc))
		}
		return acc
	}))
}
