// Package builtin implements the flat built-in operator registry:
// identifiers resolve to a constant Value, an Applicable, or a macro
// that monomorphizes an overloaded operator at compile time. Each ML
// basis structure registers from its own file, into one shared map,
// with entries specialized to the typed Applicable1..4 arities rather
// than a uniform variadic call convention.
package builtin

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

// Macro is a compile-time function that monomorphizes an overloaded
// operator reference given the inferred argument type: "+", "-", "*",
// "/" dispatch on int vs real; "negate" on its argument; "sum" on
// int-list vs real-list. A macro closes over whatever static context
// it needs at registration time.
type Macro func(argType *types.Type) code.Applicable

// Entry is one registry slot: exactly one of Value, App, or Macro is
// set.
type Entry struct {
	Value values.Value
	App   code.Applicable
	Macro Macro
}

// Registry is the flat built-in namespace.
type Registry map[string]Entry

func (r Registry) value(name string, v values.Value) { r[name] = Entry{Value: v} }
func (r Registry) app(name string, a code.Applicable) { r[name] = Entry{App: a} }
func (r Registry) macro(name string, m Macro) { r[name] = Entry{Macro: m} }

// unaryFn is a positioned Applicable1 built from a plain Go function;
// most of the positioned operators (chr, sub, hd, ...) are built this
// way.
type unaryFn struct {
	name string
	pos  pos.Position
	fn   func(pos.Position, values.Value) values.Value
}

func Unary(name string, fn func(pos.Position, values.Value) values.Value) code.Applicable1 {
	return unaryFn{name: name, fn: fn}
}

func (u unaryFn) Kind() values.Kind { return values.KApplicable }
func (u unaryFn) Apply(_ evalenv.Env, arg values.Value) values.Value {
	return u.Apply1(arg)
}
func (u unaryFn) Apply1(arg values.Value) values.Value { return u.fn(u.pos, arg) }
func (u unaryFn) WithPos(p pos.Position) code.Applicable {
	u.pos = p
	return u
}
func (u unaryFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start(u.name)
	return d.End()
}

var (
	_ code.Applicable1 = unaryFn{}
	_ code.Positioned  = unaryFn{}
)

// binaryFn is a positioned Applicable2 built from a plain Go function.
type binaryFn struct {
	name string
	pos  pos.Position
	fn   func(pos.Position, values.Value, values.Value) values.Value
}

func Binary(name string, fn func(pos.Position, values.Value, values.Value) values.Value) code.Applicable2 {
	return binaryFn{name: name, fn: fn}
}

func (b binaryFn) Kind() values.Kind { return values.KApplicable }
func (b binaryFn) Apply(env evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return b.Apply2(seq[0], seq[1])
}
func (b binaryFn) Apply2(a0, a1 values.Value) values.Value { return b.fn(b.pos, a0, a1) }
func (b binaryFn) Curry() code.Applicable1 {
	return curryStage1{b: b}
}
func (b binaryFn) WithPos(p pos.Position) code.Applicable {
	b.pos = p
	return b
}
func (b binaryFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start(b.name)
	return d.End()
}

// curryStage1/curryStage2 let a binaryFn be applied one argument at a
// time, used when the call site cannot statically prove it supplies
// both arguments as a literal pair.
type curryStage1 struct{ b binaryFn }

func (c curryStage1) Kind() values.Kind { return values.KApplicable }
func (c curryStage1) Apply(env evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c curryStage1) Apply1(arg0 values.Value) values.Value {
	return curryStage2{b: c.b, arg0: arg0}
}
func (c curryStage1) Describe(d *describe.Describer) *describe.Describer {
	d.Start(c.b.name + ".curry1")
	return d.End()
}

type curryStage2 struct {
	b    binaryFn
	arg0 values.Value
}

func (c curryStage2) Kind() values.Kind { return values.KApplicable }
func (c curryStage2) Apply(env evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c curryStage2) Apply1(arg1 values.Value) values.Value { return c.b.Apply2(c.arg0, arg1) }
func (c curryStage2) Describe(d *describe.Describer) *describe.Describer {
	d.Start(c.b.name + ".curry2")
	return d.End()
}

var (
	_ code.Applicable2 = binaryFn{}
	_ code.Applicable1 = curryStage1{}
	_ code.Applicable1 = curryStage2{}
)

// ternaryFn is a positioned Applicable3, used by the three-argument
// positioned operators (extract, substring, vector update).
type ternaryFn struct {
	name string
	pos  pos.Position
	fn   func(pos.Position, values.Value, values.Value, values.Value) values.Value
}

func Ternary(name string, fn func(pos.Position, values.Value, values.Value, values.Value) values.Value) code.Applicable3 {
	return ternaryFn{name: name, fn: fn}
}

func (t ternaryFn) Kind() values.Kind { return values.KApplicable }
func (t ternaryFn) Apply(env evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return t.Apply3(seq[0], seq[1], seq[2])
}
func (t ternaryFn) Apply3(a0, a1, a2 values.Value) values.Value { return t.fn(t.pos, a0, a1, a2) }
func (t ternaryFn) Curry() code.Applicable1 {
	return ternaryCurry1{t: t}
}
func (t ternaryFn) WithPos(p pos.Position) code.Applicable {
	t.pos = p
	return t
}
func (t ternaryFn) Describe(d *describe.Describer) *describe.Describer {
	d.Start(t.name)
	return d.End()
}

type ternaryCurry1 struct{ t ternaryFn }

func (c ternaryCurry1) Kind() values.Kind { return values.KApplicable }
func (c ternaryCurry1) Apply(env evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c ternaryCurry1) Apply1(a0 values.Value) values.Value {
	return ternaryCurry2{t: c.t, a0: a0}
}
func (c ternaryCurry1) Describe(d *describe.Describer) *describe.Describer {
	d.Start(c.t.name + ".curry1")
	return d.End()
}

type ternaryCurry2 struct {
	t  ternaryFn
	a0 values.Value
}

func (c ternaryCurry2) Kind() values.Kind { return values.KApplicable }
func (c ternaryCurry2) Apply(env evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c ternaryCurry2) Apply1(a1 values.Value) values.Value {
	return ternaryCurry3{t: c.t, a0: c.a0, a1: a1}
}
func (c ternaryCurry2) Describe(d *describe.Describer) *describe.Describer {
	d.Start(c.t.name + ".curry2")
	return d.End()
}

type ternaryCurry3 struct {
	t      ternaryFn
	a0, a1 values.Value
}

func (c ternaryCurry3) Kind() values.Kind { return values.KApplicable }
func (c ternaryCurry3) Apply(env evalenv.Env, arg values.Value) values.Value { return c.Apply1(arg) }
func (c ternaryCurry3) Apply1(a2 values.Value) values.Value { return c.t.Apply3(c.a0, c.a1, a2) }
func (c ternaryCurry3) Describe(d *describe.Describer) *describe.Describer {
	d.Start(c.t.name + ".curry3")
	return d.End()
}

var _ code.Applicable3 = ternaryFn{}
