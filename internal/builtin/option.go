package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerOption wires Option.* atop the uniform SOME/NONE Seq
// encoding: valOf raises Option on NONE, matching the basis's
// Option.Option exception.
func registerOption(r Registry) {
	r.app("Option.valOf", Unary("Option.valOf", func(p pos.Position, a values.Value) values.Value {
		v, ok := values.IsSome(a)
		if !ok {
			panic(except.New(except.Option, p, ""))
		}
		return v
	}))

	r.app("Option.isSome", Unary("Option.isSome", func(p pos.Position, a values.Value) values.Value {
		_, ok := values.IsSome(a)
		return values.Bool(ok)
	}))

	r.app("Option.isNone", Unary("Option.isNone", func(p pos.Position, a values.Value) values.Value {
		return values.Bool(values.IsNone(a))
	}))

	r.app("Option.getOpt", Binary("Option.getOpt", func(p pos.Position, a, b values.Value) values.Value {
		if v, ok := values.IsSome(a); ok {
			return v
		}
		return b
	}))

	r.app("Option.map", Binary("Option.map", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		v, ok := values.IsSome(b)
		if !ok {
			return values.None()
		}
		return values.Some(fn.Apply1(v))
	}))

	r.app("Option.mapPartial", Binary("Option.mapPartial", func(p pos.Position, a, b values.Value) values.Value {
		fn := a.(code.Applicable1)
		v, ok := values.IsSome(b)
		if !ok {
			return values.None()
		}
		return fn.Apply1(v)
	}))

	r.app("Option.compose", Ternary("Option.compose", func(p pos.Position, a, b, c values.Value) values.Value {
		f := a.(code.Applicable1)
		g := b.(code.Applicable1)
		v, ok := values.IsSome(g.Apply1(c))
		if !ok {
			return values.None()
		}
		return values.Some(f.Apply1(v))
	}))
}
