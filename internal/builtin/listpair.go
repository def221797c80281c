package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerListPair wires ListPair.*: the *Eq family raises
// UnequalLengths when the two lists differ in length, matching the
// basis's ListPair.UnequalLengths exception.
func registerListPair(r Registry) {
	r.app("ListPair.zip", Binary("ListPair.zip", func(p pos.Position, a, b values.Value) values.Value {
		as, bs := a.(values.Seq), b.(values.Seq)
		n := len(as)
		if len(bs) < n {
			n = len(bs)
		}
		out := make(values.Seq, n)
		for i := 0; i < n; i++ {
			out[i] = values.NewSeq(as[i], bs[i])
		}
		return out
	}))

	r.app("ListPair.zipEq", Binary("ListPair.zipEq", func(p pos.Position, a, b values.Value) values.Value {
		as, bs := a.(values.Seq), b.(values.Seq)
		if len(as) != len(bs) {
			panic(except.New(except.UnequalLengths, p, ""))
		}
		out := make(values.Seq, len(as))
		for i := range as {
			out[i] = values.NewSeq(as[i], bs[i])
		}
		return out
	}))

	r.app("ListPair.unzip", Unary("ListPair.unzip", func(p pos.Position, a values.Value) values.Value {
		pairs := a.(values.Seq)
		left := make(values.Seq, len(pairs))
		right := make(values.Seq, len(pairs))
		for i, pv := range pairs {
			pair := pv.(values.Seq)
			left[i], right[i] = pair[0], pair[1]
		}
		return values.NewSeq(left, right)
	}))

	r.app("ListPair.map", Ternary("ListPair.map", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		as, bs := b.(values.Seq), c.(values.Seq)
		n := len(as)
		if len(bs) < n {
			n = len(bs)
		}
		out := make(values.Seq, n)
		for i := 0; i < n; i++ {
			out[i] = fn.Apply1(values.NewSeq(as[i], bs[i]))
		}
		return out
	}))

	r.app("ListPair.mapEq", Ternary("ListPair.mapEq", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		as, bs := b.(values.Seq), c.(values.Seq)
		if len(as) != len(bs) {
			panic(except.New(except.UnequalLengths, p, ""))
		}
		out := make(values.Seq, len(as))
		for i := range as {
			out[i] = fn.Apply1(values.NewSeq(as[i], bs[i]))
		}
		return out
	}))

	r.app("ListPair.allEq", Ternary("ListPair.allEq", func(p pos.Position, a, b, c values.Value) values.Value {
		fn := a.(code.Applicable1)
		as, bs := b.(values.Seq), c.(values.Seq)
		if len(as) != len(bs) {
			return values.Bool(false)
		}
		for i := range as {
			if !bool(fn.Apply1(values.NewSeq(as[i], bs[i])).(values.Bool)) {
				return values.Bool(false)
			}
		}
		return values.Bool(true)
	}))
}
