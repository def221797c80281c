package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerArith wires the overloaded arithmetic macros: "+", "-",
// "*", "/" dispatch on int vs real; "~" (negate) dispatches on its
// single argument. Each monomorphizes, at the reference site, to a
// fixed-type Applicable2/Applicable1 — there is no single runtime "+"
// value, the same reason registerGeneral's "=" is a macro rather than
// an Entry.App. The dispatch happens at compile time because a
// monomorphic Applicable2 has no per-call runtime type tag left to
// switch on.
func registerArith(r Registry) {
	r.macro("+", arithMacro("+", addInt, addReal))
	r.macro("-", arithMacro("-", subInt, subReal))
	r.macro("*", arithMacro("*", mulInt, mulReal))
	r.macro("/", arithMacro("/", divInt, divReal))

	r.macro("~", func(argType *types.Type) code.Applicable {
		if argType != nil && argType.Name == "real" {
			return unaryArithFn{name: "~", fn: negReal}
		}
		return unaryArithFn{name: "~", fn: negInt}
	})

	// div/mod/quot/rem are ML's named integer operators, never
	// overloaded onto real, so they need no macro dispatch. div/mod
	// use floor division; quot/rem truncate toward zero.
	r.app("div", Binary("div", floorDivOp))
	r.app("mod", Binary("mod", floorModOp))
	r.app("quot", Binary("quot", truncDivOp))
	r.app("rem", Binary("rem", truncRemOp))
}

func isRealArith(argType *types.Type) bool {
	if argType == nil {
		return false
	}
	if argType.Name == "real" {
		return true
	}
	if elem := argType.Elem(0); elem != nil {
		return elem.Name == "real"
	}
	return false
}

func arithMacro(name string, intOp, realOp func(a, b values.Value) values.Value) Macro {
	return func(argType *types.Type) code.Applicable {
		if isRealArith(argType) {
			return binaryArithFn{name: name, fn: realOp}
		}
		return binaryArithFn{name: name, fn: intOp}
	}
}

// binaryArithFn is the Applicable2 every arithmetic macro monomorphizes
// to, curry-able the same way registry.go's binaryFn is.
type binaryArithFn struct {
	name string
	fn   func(a, b values.Value) values.Value
}

func (binaryArithFn) Kind() values.Kind { return values.KApplicable }
func (f binaryArithFn) Apply(_ evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return f.fn(seq[0], seq[1])
}
func (f binaryArithFn) Apply2(a, b values.Value) values.Value { return f.fn(a, b) }
func (f binaryArithFn) Curry() code.Applicable1 { return genericCurry1{inner: f} }
func (f binaryArithFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start(f.name)
	return d.End()
}

type unaryArithFn struct {
	name string
	fn   func(a values.Value) values.Value
}

func (unaryArithFn) Kind() values.Kind { return values.KApplicable }
func (f unaryArithFn) Apply(_ evalenv.Env, arg values.Value) values.Value { return f.fn(arg) }
func (f unaryArithFn) Apply1(arg values.Value) values.Value { return f.fn(arg) }
func (f unaryArithFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start(f.name)
	return d.End()
}

func addInt(a, b values.Value) values.Value {
	return values.Int(int64(a.(values.Int)) + int64(b.(values.Int)))
}
func subInt(a, b values.Value) values.Value {
	return values.Int(int64(a.(values.Int)) - int64(b.(values.Int)))
}
func mulInt(a, b values.Value) values.Value {
	return values.Int(int64(a.(values.Int)) * int64(b.(values.Int)))
}
func divInt(a, b values.Value) values.Value {
	x, y := int64(a.(values.Int)), int64(b.(values.Int))
	if y == 0 {
		panic(except.New(except.Div, pos.None, ""))
	}
	return values.Int(floorDiv(x, y))
}
func negInt(a values.Value) values.Value { return values.Int(-int64(a.(values.Int))) }

func addReal(a, b values.Value) values.Value {
	return values.Real(float32(a.(values.Real)) + float32(b.(values.Real)))
}
func subReal(a, b values.Value) values.Value {
	return values.Real(float32(a.(values.Real)) - float32(b.(values.Real)))
}
func mulReal(a, b values.Value) values.Value {
	return values.Real(float32(a.(values.Real)) * float32(b.(values.Real)))
}
func divReal(a, b values.Value) values.Value {
	return values.Real(values.CanonicalizeNaN(a.(values.Real) / b.(values.Real)))
}
func negReal(a values.Value) values.Value { return values.NegateReal(a.(values.Real)) }

func floorDivOp(p pos.Position, a, b values.Value) values.Value {
	x, y := int64(a.(values.Int)), int64(b.(values.Int))
	if y == 0 {
		panic(except.New(except.Div, p, ""))
	}
	return values.Int(floorDiv(x, y))
}

func floorModOp(p pos.Position, a, b values.Value) values.Value {
	x, y := int64(a.(values.Int)), int64(b.(values.Int))
	if y == 0 {
		panic(except.New(except.Div, p, ""))
	}
	return values.Int(x - floorDiv(x, y)*y)
}

func truncDivOp(p pos.Position, a, b values.Value) values.Value {
	x, y := int64(a.(values.Int)), int64(b.(values.Int))
	if y == 0 {
		panic(except.New(except.Div, p, ""))
	}
	return values.Int(x / y)
}

func truncRemOp(p pos.Position, a, b values.Value) values.Value {
	x, y := int64(a.(values.Int)), int64(b.(values.Int))
	if y == 0 {
		panic(except.New(except.Div, p, ""))
	}
	return values.Int(x % y)
}

var (
	_ code.Applicable2 = binaryArithFn{}
	_ code.Applicable1 = unaryArithFn{}
)
