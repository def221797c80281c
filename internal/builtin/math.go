package builtin

import (
	"math"

	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerMath wires Math.*: the transcendental functions ML's basis
// exposes, all operating on the evaluator's 32-bit Real and all
// canonicalizing any NaN they produce, the same shape registerReal
// uses for Real.*.
func registerMath(r Registry) {
	r.value("Math.pi", values.Real(math.Pi))
	r.value("Math.e", values.Real(math.E))

	unaryMath := func(name string, fn func(float64) float64) {
		r.app(name, Unary(name, func(p pos.Position, a values.Value) values.Value {
			v := float64(a.(values.Real))
			return values.Real(values.CanonicalizeNaN(values.Real(fn(v))))
		}))
	}

	unaryMath("Math.sqrt", math.Sqrt)
	unaryMath("Math.sin", math.Sin)
	unaryMath("Math.cos", math.Cos)
	unaryMath("Math.tan", math.Tan)
	unaryMath("Math.asin", math.Asin)
	unaryMath("Math.acos", math.Acos)
	unaryMath("Math.atan", math.Atan)
	unaryMath("Math.exp", math.Exp)
	unaryMath("Math.ln", math.Log)
	unaryMath("Math.log10", math.Log10)

	r.app("Math.atan2", Binary("Math.atan2", func(p pos.Position, a, b values.Value) values.Value {
		y, x := float64(a.(values.Real)), float64(b.(values.Real))
		return values.Real(values.CanonicalizeNaN(values.Real(math.Atan2(y, x))))
	}))

	r.app("Math.pow", Binary("Math.pow", func(p pos.Position, a, b values.Value) values.Value {
		x, y := float64(a.(values.Real)), float64(b.(values.Real))
		return values.Real(values.CanonicalizeNaN(values.Real(math.Pow(x, y))))
	}))
}
