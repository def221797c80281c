package code

import (
	"strconv"

	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// ConstCode is a literal value; the simplest Code.
type ConstCode struct{ Value values.Value }

func Const(v values.Value) Code { return ConstCode{Value: v} }

func (c ConstCode) Eval(evalenv.Env) values.Value { return c.Value }
func (ConstCode) IsConstant() bool { return true }
func (c ConstCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("constant")
	d.Arg("value", c.Value)
	return d.End()
}

// GetCode reads a single named binding from the environment.
type GetCode struct{ Name string }

func Get(name string) Code { return GetCode{Name: name} }

func (g GetCode) Eval(env evalenv.Env) values.Value {
	v, ok := env.GetOpt(g.Name)
	if !ok {
		panic(except.New(except.Error, pos.None, "unbound variable %q", g.Name))
	}
	return v
}
func (GetCode) IsConstant() bool { return false }
func (g GetCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("get")
	d.Arg("name", g.Name)
	return d.End()
}

// TupleGetCode reads several named bindings into a single ordered
// sequence value.
type TupleGetCode struct{ Names []string }

func TupleGet(names ...string) Code { return TupleGetCode{Names: names} }

func (t TupleGetCode) Eval(env evalenv.Env) values.Value {
	out := make(values.Seq, len(t.Names))
	for i, n := range t.Names {
		v, ok := env.GetOpt(n)
		if !ok {
			panic(except.New(except.Error, pos.None, "unbound variable %q", n))
		}
		out[i] = v
	}
	return out
}
func (TupleGetCode) IsConstant() bool { return false }
func (t TupleGetCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("tupleGet")
	for i, n := range t.Names {
		d.Arg(fieldName(i), n)
	}
	return d.End()
}

// TupleCode constructs a tuple (or record, list, ...) from sub-Codes.
type TupleCode struct{ Elems []Code }

func Tuple(elems ...Code) Code { return TupleCode{Elems: elems} }

func (t TupleCode) Eval(env evalenv.Env) values.Value {
	out := make(values.Seq, len(t.Elems))
	for i, e := range t.Elems {
		out[i] = e.Eval(env)
	}
	return out
}
func (t TupleCode) IsConstant() bool {
	for _, e := range t.Elems {
		if !e.IsConstant() {
			return false
		}
	}
	return true
}
func (t TupleCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("tuple")
	for i, e := range t.Elems {
		d.ArgDescribable(fieldName(i), e)
	}
	return d.End()
}

// AndAlsoCode is `andalso`: the right operand is evaluated only if
// the left is true.
type AndAlsoCode struct{ Left, Right Code }

func AndAlso(l, r Code) Code { return AndAlsoCode{Left: l, Right: r} }

func (a AndAlsoCode) Eval(env evalenv.Env) values.Value {
	if !bool(a.Left.Eval(env).(values.Bool)) {
		return values.Bool(false)
	}
	return a.Right.Eval(env)
}
func (AndAlsoCode) IsConstant() bool { return false }
func (a AndAlsoCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("andalso")
	d.ArgDescribable("left", a.Left)
	d.ArgDescribable("right", a.Right)
	return d.End()
}

// OrElseCode is `orelse`: the right operand is evaluated only if the
// left is false.
type OrElseCode struct{ Left, Right Code }

func OrElse(l, r Code) Code { return OrElseCode{Left: l, Right: r} }

func (o OrElseCode) Eval(env evalenv.Env) values.Value {
	if bool(o.Left.Eval(env).(values.Bool)) {
		return values.Bool(true)
	}
	return o.Right.Eval(env)
}
func (OrElseCode) IsConstant() bool { return false }
func (o OrElseCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("orelse")
	d.ArgDescribable("left", o.Left)
	d.ArgDescribable("right", o.Right)
	return d.End()
}

// Apply1Code is the applicable-to-code call shape: Fn evaluates to an
// Applicable1, Arg supplies its single argument.
type Apply1Code struct {
	Fn  Code
	Arg Code
}

func Apply1(fn, arg Code) Code { return Apply1Code{Fn: fn, Arg: arg} }

func (a Apply1Code) Eval(env evalenv.Env) values.Value {
	fn := a.Fn.Eval(env).(Applicable1)
	return fn.Apply1(a.Arg.Eval(env))
}
func (Apply1Code) IsConstant() bool { return false }
func (a Apply1Code) Describe(d *describe.Describer) *describe.Describer {
	d.Start("apply1")
	d.ArgDescribable("fn", a.Fn)
	d.ArgDescribable("arg", a.Arg)
	return d.End()
}

// Apply2Code is the applicable-to-two-codes call shape: it skips
// building an ephemeral tuple value when the compiler can see both
// arguments at the call site.
type Apply2Code struct {
	Fn         Code
	Arg0, Arg1 Code
}

func Apply2(fn, a0, a1 Code) Code { return Apply2Code{Fn: fn, Arg0: a0, Arg1: a1} }

func (a Apply2Code) Eval(env evalenv.Env) values.Value {
	fn := a.Fn.Eval(env).(Applicable2)
	return fn.Apply2(a.Arg0.Eval(env), a.Arg1.Eval(env))
}
func (Apply2Code) IsConstant() bool { return false }
func (a Apply2Code) Describe(d *describe.Describer) *describe.Describer {
	d.Start("apply2")
	d.ArgDescribable("fn", a.Fn)
	d.ArgDescribable("arg0", a.Arg0)
	d.ArgDescribable("arg1", a.Arg1)
	return d.End()
}

// Apply3Code is the applicable-to-three-codes call shape.
type Apply3Code struct {
	Fn               Code
	Arg0, Arg1, Arg2 Code
}

func Apply3(fn, a0, a1, a2 Code) Code { return Apply3Code{Fn: fn, Arg0: a0, Arg1: a1, Arg2: a2} }

func (a Apply3Code) Eval(env evalenv.Env) values.Value {
	fn := a.Fn.Eval(env).(Applicable3)
	return fn.Apply3(a.Arg0.Eval(env), a.Arg1.Eval(env), a.Arg2.Eval(env))
}
func (Apply3Code) IsConstant() bool { return false }
func (a Apply3Code) Describe(d *describe.Describer) *describe.Describer {
	d.Start("apply3")
	d.ArgDescribable("fn", a.Fn)
	d.ArgDescribable("arg0", a.Arg0)
	d.ArgDescribable("arg1", a.Arg1)
	d.ArgDescribable("arg2", a.Arg2)
	return d.End()
}

// ApplyCode is the code-to-code shape, used when the function itself
// is computed (not statically known to be Applicable1/2/3): the
// compiler has already built the argument tuple, so the call goes
// through the 1-ary form.
type ApplyCode struct {
	Fn  Code
	Arg Code
}

func Apply(fn, arg Code) Code { return ApplyCode{Fn: fn, Arg: arg} }

func (a ApplyCode) Eval(env evalenv.Env) values.Value {
	fn := a.Fn.Eval(env)
	app, ok := fn.(Applicable1)
	if !ok {
		// A Closure also implements Applicable1; anything else reaching
		// here is a compiler bug.
		panic("code: apply target is not callable")
	}
	return app.Apply1(a.Arg.Eval(env))
}
func (ApplyCode) IsConstant() bool { return false }
func (a ApplyCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("apply")
	d.ArgDescribable("fn", a.Fn)
	d.ArgDescribable("arg", a.Arg)
	return d.End()
}

// RelListUnwrapCode is a thin wrapper used where a `bag` value needs
// to be treated as a `list` at a call boundary; the two share the Seq
// runtime representation, so this is a describe-only marker, not a
// conversion.
type RelListUnwrapCode struct{ Inner Code }

func RelListUnwrap(inner Code) Code { return RelListUnwrapCode{Inner: inner} }

func (r RelListUnwrapCode) Eval(env evalenv.Env) values.Value { return r.Inner.Eval(env) }
func (r RelListUnwrapCode) IsConstant() bool { return r.Inner.IsConstant() }
func (r RelListUnwrapCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("relListUnwrap")
	d.ArgDescribable("inner", r.Inner)
	return d.End()
}

func fieldName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return string(letters[i])
	}
	return "f" + strconv.Itoa(i)
}
