package builtin

import (
	"math"
	"strconv"
	"strings"

	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerReal wires Real.*: NaN canonicalization on production,
// Unordered/Domain exceptions on NaN comparisons, and ML-style
// ~-for-minus number formatting. Every boundary raises the fixed Kind
// the basis assigns it rather than a generic runtime error.
func registerReal(r Registry) {
	r.value("Real.maxFinite", values.Real(math.MaxFloat32))
	r.value("Real.posInf", values.Real(float32(math.Inf(1))))
	r.value("Real.negInf", values.Real(float32(math.Inf(-1))))

	r.app("Real.compare", Binary("Real.compare", func(p pos.Position, a, b values.Value) values.Value {
		av, bv := float32(a.(values.Real)), float32(b.(values.Real))
		if values.IsNaN(values.Real(av)) || values.IsNaN(values.Real(bv)) {
			panic(except.New(except.Unordered, p, ""))
		}
		switch {
		case av < bv:
			return values.Int(-1)
		case av > bv:
			return values.Int(1)
		default:
			return values.Int(0)
		}
	}))

	r.app("Real.sign", Unary("Real.sign", func(p pos.Position, a values.Value) values.Value {
		v := float32(a.(values.Real))
		if values.IsNaN(values.Real(v)) {
			panic(except.New(except.Domain, p, ""))
		}
		switch {
		case v < 0:
			return values.Int(-1)
		case v > 0:
			return values.Int(1)
		default:
			return values.Int(0)
		}
	}))

	r.app("Real.copySign", Binary("Real.copySign", func(p pos.Position, a, b values.Value) values.Value {
		return values.CopySign(a.(values.Real), b.(values.Real))
	}))

	r.app("Real.signBit", Unary("Real.signBit", func(p pos.Position, a values.Value) values.Value {
		return values.Bool(values.SignBit(a.(values.Real)))
	}))

	r.app("Real.toString", Unary("Real.toString", func(p pos.Position, a values.Value) values.Value {
		return values.String(formatReal(float32(a.(values.Real))))
	}))

	r.app("Real.fromString", Unary("Real.fromString", func(p pos.Position, a values.Value) values.Value {
		s := string(a.(values.String))
		neg := strings.HasPrefix(s, "~")
		if neg {
			s = "-" + s[len("~"):]
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return values.None()
		}
		return values.Some(values.Real(float32(f)))
	}))

	r.app("Real.checkFloat", Unary("Real.checkFloat", func(p pos.Position, a values.Value) values.Value {
		v := a.(values.Real)
		if values.IsNaN(v) {
			panic(except.New(except.Div, p, ""))
		}
		if math.IsInf(float64(v), 0) {
			panic(except.New(except.Overflow, p, ""))
		}
		return v
	}))

	r.app("Real.round", Unary("Real.round", func(p pos.Position, a values.Value) values.Value {
		v := float32(a.(values.Real))
		if math.IsInf(float64(v), 0) {
			panic(except.New(except.Overflow, p, ""))
		}
		if values.IsNaN(values.Real(v)) {
			panic(except.New(except.Div, p, ""))
		}
		return values.Int(int64(math.Round(float64(v))))
	}))

	r.app("Real.floor", Unary("Real.floor", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(math.Floor(float64(a.(values.Real)))))
	}))

	r.app("Real.ceil", Unary("Real.ceil", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(math.Ceil(float64(a.(values.Real)))))
	}))

	r.app("Real.trunc", Unary("Real.trunc", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(math.Trunc(float64(a.(values.Real)))))
	}))
}

// formatReal follows ML's number-formatting conventions: "~" instead
// of "-", "inf"/"~inf" for infinities, "nan" for NaN.
func formatReal(v float32) string {
	switch {
	case values.IsNaN(values.Real(v)):
		return "nan"
	case math.IsInf(float64(v), 1):
		return "inf"
	case math.IsInf(float64(v), -1):
		return "~inf"
	}
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if strings.HasPrefix(s, "-") {
		s = "~" + s[1:]
	}
	return s
}
