package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerList wires the positioned list operators: hd/tl/last raise
// Empty on an empty list; nth/take/drop raise Subscript out of range;
// tabulate raises Size on a negative count.
func registerList(r Registry) {
	r.app("hd", Unary("hd", func(p pos.Position, a values.Value) values.Value {
		seq := a.(values.Seq)
		if len(seq) == 0 {
			panic(except.New(except.Empty, p, ""))
		}
		return seq[0]
	}))

	r.app("tl", Unary("tl", func(p pos.Position, a values.Value) values.Value {
		seq := a.(values.Seq)
		if len(seq) == 0 {
			panic(except.New(except.Empty, p, ""))
		}
		return seq[1:]
	}))

	r.app("last", Unary("last", func(p pos.Position, a values.Value) values.Value {
		seq := a.(values.Seq)
		if len(seq) == 0 {
			panic(except.New(except.Empty, p, ""))
		}
		return seq[len(seq)-1]
	}))

	r.app("null", Unary("null", func(p pos.Position, a values.Value) values.Value {
		return values.Bool(len(a.(values.Seq)) == 0)
	}))

	r.app("length", Unary("length", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(len(a.(values.Seq))))
	}))

	r.app("rev", Unary("rev", func(p pos.Position, a values.Value) values.Value {
		seq := a.(values.Seq)
		out := make(values.Seq, len(seq))
		for i, v := range seq {
			out[len(seq)-1-i] = v
		}
		return out
	}))

	r.app("nth", Binary("nth", func(p pos.Position, a, b values.Value) values.Value {
		seq := a.(values.Seq)
		i := int64(b.(values.Int))
		if i < 0 || i >= int64(len(seq)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		return seq[i]
	}))

	r.app("take", Binary("take", func(p pos.Position, a, b values.Value) values.Value {
		seq := a.(values.Seq)
		n := int64(b.(values.Int))
		if n < 0 || n > int64(len(seq)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		return append(values.Seq{}, seq[:n]...)
	}))

	r.app("drop", Binary("drop", func(p pos.Position, a, b values.Value) values.Value {
		seq := a.(values.Seq)
		n := int64(b.(values.Int))
		if n < 0 || n > int64(len(seq)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		return seq[n:]
	}))

	r.app("@", Binary("@", func(p pos.Position, a, b values.Value) values.Value {
		as, bs := a.(values.Seq), b.(values.Seq)
		out := make(values.Seq, 0, len(as)+len(bs))
		out = append(out, as...)
		out = append(out, bs...)
		return out
	}))

	r.app("concat", Unary("concat", func(p pos.Position, a values.Value) values.Value {
		var out values.Seq
		for _, inner := range a.(values.Seq) {
			out = append(out, inner.(values.Seq)...)
		}
		return out
	}))

	r.app("tabulate", Binary("tabulate", func(p pos.Position, a, b values.Value) values.Value {
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

	r.app("map", Binary("map", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		seq := b.(values.Seq)
		out := make(values.Seq, len(seq))
		for i, v := range seq {
			out[i] = fn.Apply1(v)
		}
		return out
	}))

	r.app("filter", Binary("filter", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		var out values.Seq
		for _, v := range b.(values.Seq) {
			if bool(fn.Apply1(v).(values.Bool)) {
				out = append(out, v)
			}
		}
		return out
	}))

	r.app("foldl", Ternary("foldl", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		acc := b
		for _, v := range c.(values.Seq) {
			acc = fn.Apply1(values.NewSeq(v, acc))
		}
		return acc
	}))

	r.app("foldr", Ternary("foldr", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		acc := b
		seq := c.(values.Seq)
		for i := len(seq) - 1; i >= 0; i-- {
			acc = fn.Apply1(values.NewSeq(seq[i], acc))
		}
		return acc
	}))

	r.app("app", Binary("app", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		for _, v := range b.(values.Seq) {
			fn.Apply1(v)
		}
		return values.TheUnit
	}))

	r.app("only", Unary("only", func(p pos.Position, a values.Value) values.Value {
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
