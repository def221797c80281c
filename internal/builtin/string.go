package builtin

import (
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// maxStringSize bounds String.concat/concatWith; String.maxSize
// exposes it as a constant, matching ML's basis.
const maxStringSize = 1 << 24

// registerString wires String.*: sub/extract/substring raise
// Subscript out of range with the fixed detail text the REPL prints;
// explode/implode round-trip with a character list.
func registerString(r Registry) {
	r.value("String.maxSize", values.Int(maxStringSize))

	r.app("String.sub", Binary("String.sub", func(p pos.Position, a, b values.Value) values.Value {
		s := string(a.(values.String))
		i := int64(b.(values.Int))
		if i < 0 || i >= int64(len(s)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		return values.Char(s[i])
	}))

	r.app("String.size", Unary("String.size", func(p pos.Position, a values.Value) values.Value {
		return values.Int(int64(len(string(a.(values.String)))))
	}))

	r.app("String.concat", Unary("String.concat", func(p pos.Position, a values.Value) values.Value {
		var total int
		var buf []byte
		for _, v := range a.(values.Seq) {
			s := string(v.(values.String))
			total += len(s)
			if total > maxStringSize {
				panic(except.New(except.Size, p, ""))
			}
			buf = append(buf, s...)
		}
		return values.String(buf)
	}))

	r.app("String.concatWith", Binary("String.concatWith", func(p pos.Position, a, b values.Value) values.Value {
		sep := string(a.(values.String))
		parts := b.(values.Seq)
		var total int
		var buf []byte
		for i, v := range parts {
			if i > 0 {
				buf = append(buf, sep...)
				total += len(sep)
			}
			s := string(v.(values.String))
			total += len(s)
			if total > maxStringSize {
				panic(except.New(except.Size, p, ""))
			}
			buf = append(buf, s...)
		}
		return values.String(buf)
	}))

	r.app("String.extract", Ternary("String.extract", func(p pos.Position, a, b, c values.Value) values.Value {
		s := string(a.(values.String))
		i := int64(b.(values.Int))
		if i < 0 || i > int64(len(s)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		if v, ok := values.IsSome(c); ok {
			n := int64(v.(values.Int))
			if n < 0 || i+n > int64(len(s)) {
				panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
			}
			return values.String(s[i : i+n])
		}
		return values.String(s[i:])
	}))

	r.app("String.substring", Ternary("String.substring", func(p pos.Position, a, b, c values.Value) values.Value {
		s := string(a.(values.String))
		i, n := int64(b.(values.Int)), int64(c.(values.Int))
		if i < 0 || n < 0 || i+n > int64(len(s)) {
			panic(except.New(except.Subscript, p, except.SubscriptOutOfBounds))
		}
		return values.String(s[i : i+n])
	}))

	r.app("explode", Unary("explode", func(p pos.Position, a values.Value) values.Value {
		s := string(a.(values.String))
		out := make(values.Seq, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = values.Char(s[i])
		}
		return out
	}))

	r.app("implode", Unary("implode", func(p pos.Position, a values.Value) values.Value {
		seq := a.(values.Seq)
		buf := make([]byte, len(seq))
		for i, v := range seq {
			buf[i] = byte(v.(values.Char))
		}
		return values.String(buf)
	}))

	r.app("^", Binary("^", func(p pos.Position, a, b values.Value) values.Value {
		return values.String(string(a.(values.String)) + string(b.(values.String)))
	}))
}
