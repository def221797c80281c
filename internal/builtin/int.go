package builtin

import (
	"strconv"
	"strings"

	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerInt wires Int.* plus Math.floorDiv/Math.floorMod, which use
// the same floor division as `div`/`mod` (arith.go), while
// Int.quot/Int.rem truncate toward zero.
func registerInt(r Registry) {
	// SML/NJ's 63-bit tagged-integer bounds.
	r.value("Int.maxInt", values.Int(1<<62-1))
	r.value("Int.minInt", values.Int(-(1 << 62)))

	r.app("Int.toString", Unary("Int.toString", func(p pos.Position, a values.Value) values.Value {
		return values.String(formatInt(int64(a.(values.Int))))
	}))

	r.app("Int.fromString", Unary("Int.fromString", func(p pos.Position, a values.Value) values.Value {
		s := string(a.(values.String))
		neg := strings.HasPrefix(s, "~")
		if neg {
			s = "-" + s[len("~"):]
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return values.None()
		}
		return values.Some(values.Int(n))
	}))

	r.app("Math.floorDiv", Binary("Math.floorDiv", func(p pos.Position, a, b values.Value) values.Value {
		x, y := int64(a.(values.Int)), int64(b.(values.Int))
		if y == 0 {
			panic(except.New(except.Div, p, ""))
		}
		return values.Int(floorDiv(x, y))
	}))

	r.app("Math.floorMod", Binary("Math.floorMod", func(p pos.Position, a, b values.Value) values.Value {
		x, y := int64(a.(values.Int)), int64(b.(values.Int))
		if y == 0 {
			panic(except.New(except.Div, p, ""))
		}
		return values.Int(x - floorDiv(x, y)*y)
	}))

	r.app("Int.quot", Binary("Int.quot", func(p pos.Position, a, b values.Value) values.Value {
		x, y := int64(a.(values.Int)), int64(b.(values.Int))
		if y == 0 {
			panic(except.New(except.Div, p, ""))
		}
		return values.Int(x / y) // Go's / already truncates toward zero
	}))

	r.app("Int.rem", Binary("Int.rem", func(p pos.Position, a, b values.Value) values.Value {
		x, y := int64(a.(values.Int)), int64(b.(values.Int))
		if y == 0 {
			panic(except.New(except.Div, p, ""))
		}
		return values.Int(x % y) // Go's % matches truncated-division remainder
	}))
}

func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

func formatInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	if strings.HasPrefix(s, "-") {
		s = "~" + s[1:]
	}
	return s
}
