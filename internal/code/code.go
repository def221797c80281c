// Package code implements the dual compiled-expression
// representation: a general Code (takes an environment, returns a
// value) and a more efficient Applicable (takes an argument, returns
// a value), linked by explicit conversions and specialized variants
// for 1/2/3/4-argument arities. Closures live here too, since a
// Closure's clause bodies are Code and Code can construct closures —
// keeping them in one package avoids a cycle between two packages that
// are mutually recursive by nature.
package code

import (
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

// Code is a compiled expression: it takes an environment and produces
// a value.
type Code interface {
	Eval(env evalenv.Env) values.Value
	IsConstant() bool
	Describe(d *describe.Describer) *describe.Describer
}

// Applicable is a compiled function value: cheaper than a general Code
// because applying it needs no environment allocation for the common
// strict, environment-free case. An Applicable is itself a runtime
// Value, so built-ins can flow through the evaluator as data.
type Applicable interface {
	values.Value
	Apply(env evalenv.Env, arg values.Value) values.Value
	Describe(d *describe.Describer) *describe.Describer
}

// Applicable1/2/3/4 avoid constructing an ephemeral tuple value for
// the common strict, environment-free case.
type Applicable1 interface {
	Applicable
	Apply1(arg values.Value) values.Value
}

type Applicable2 interface {
	Applicable
	Apply2(arg0, arg1 values.Value) values.Value
	// Curry produces a chain of single-argument applications with
	// equivalent semantics, used when the compiler cannot prove the
	// call site supplies both arguments as a literal pair.
	Curry() Applicable1
}

type Applicable3 interface {
	Applicable
	Apply3(arg0, arg1, arg2 values.Value) values.Value
	Curry() Applicable1
}

type Applicable4 interface {
	Applicable
	Apply4(arg0, arg1, arg2, arg3 values.Value) values.Value
	Curry() Applicable1
}

// Positioned lets an Applicable produce a copy of itself bound to a
// specific source position; when a runtime exception is raised inside
// such a built-in, the stored position becomes the exception's
// position.
type Positioned interface {
	WithPos(p pos.Position) Applicable
}

// Typed lets an Applicable specialize itself at compile time based on
// the inferred argument type. No Applicable in this module implements
// it: the polymorphic `=`, `<>`, `compare` and `Relational.sum`
// specialize through builtin.Macro instead.
type Typed interface {
	WithType(t *types.Type) Applicable
}

// LiftApplicable wraps an Applicable as a Code that, when evaluated,
// returns the Applicable itself and reports IsConstant() == true.
func LiftApplicable(a Applicable) Code { return liftedCode{a} }

type liftedCode struct{ a Applicable }

func (l liftedCode) Eval(evalenv.Env) values.Value { return l.a }
func (liftedCode) IsConstant() bool { return true }
func (l liftedCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("constantApplicable")
	d.Arg("value", l.a)
	return d.End()
}
