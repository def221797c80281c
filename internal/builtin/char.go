package builtin

import (
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerChar wires Char.*: chr 0/255 succeed, chr 256 raises Chr;
// pred at the minimum and succ at the maximum also raise Chr.
func registerChar(r Registry) {
	r.app("chr", Unary("chr", func(p pos.Position, a values.Value) values.Value {
		n := int64(a.(values.Int))
		if n < 0 || n > 255 {
			panic(except.New(except.Chr, p, ""))
		}
		return values.Char(byte(n))
	}))

	r.app("ord", Unary("ord", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(a.(values.Char)))
	}))

	r.app("Char.pred", Unary("Char.pred", func(p pos.Position, a values.Value) values.Value {
		c := a.(values.Char)
		if c == 0 {
			panic(except.New(except.Chr, p, ""))
		}
		return values.Char(c - 1)
	}))

	r.app("Char.succ", Unary("Char.succ", func(p pos.Position, a values.Value) values.Value {
		c := a.(values.Char)
		if c == 255 {
			panic(except.New(except.Chr, p, ""))
		}
		return values.Char(c + 1)
	}))

	r.app("Char.isUpper", Unary("Char.isUpper", func(p pos.Position, a values.Value) values.Value {
		c := byte(a.(values.Char))
		return values.Bool(c >= 'A' && c <= 'Z')
	}))

	r.app("Char.isLower", Unary("Char.isLower", func(p pos.Position, a values.Value) values.Value {
		c := byte(a.(values.Char))
		return values.Bool(c >= 'a' && c <= 'z')
	}))

	r.app("Char.isDigit", Unary("Char.isDigit", func(p pos.Position, a values.Value) values.Value {
		c := byte(a.(values.Char))
		return values.Bool(c >= '0' && c <= '9')
	}))
}
