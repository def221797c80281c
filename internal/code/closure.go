package code

import (
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pattern"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// Clause is one (pattern, body) arm of a closure.
type Clause struct {
	Pat  pattern.Pat
	Body Code
}

// Closure is a captured environment paired with an ordered non-empty
// list of clauses and a source position. Clause selection is purely by
// pattern match; any dictionary-passing or generic-witness concerns
// belong to the type system, which has already resolved them by the
// time a Closure exists.
type Closure struct {
	Env     evalenv.Env
	Clauses []Clause
	Pos     pos.Position
}

func NewClosure(env evalenv.Env, pos pos.Position, clauses ...Clause) *Closure {
	if len(clauses) == 0 {
		panic("code: closure must have at least one clause")
	}
	return &Closure{Env: env, Clauses: clauses, Pos: pos}
}

func (c *Closure) Kind() values.Kind { return values.KClosure }

// Bind tries each clause against arg in order and returns the
// extended environment of the first clause whose pattern matches,
// without evaluating its body — used when the caller wants to sequence
// evaluation itself, e.g. a `fun` clause feeding a `from` scan.
func (c *Closure) Bind(arg values.Value) (evalenv.Env, *Clause, bool) {
	for i := range c.Clauses {
		cl := &c.Clauses[i]
		extended := c.Env
		bound := map[string]values.Value{}
		ok := pattern.BindRecurse(cl.Pat, arg, func(name string, v values.Value) {
			bound[name] = v
		})
		if !ok {
			continue
		}
		for name, v := range bound {
			extended = extended.Bind(name, v)
		}
		return extended, cl, true
	}
	return nil, nil, false
}

// BindEval tries each clause in turn; the first whose pattern matches
// arg has its body evaluated in the extended environment. On
// exhaustion it raises Bind at the closure's position, matching the
// basis semantics of a non-exhaustive fn match.
func (c *Closure) BindEval(arg values.Value) values.Value {
	env, cl, ok := c.Bind(arg)
	if !ok {
		panic(except.New(except.Bind, c.Pos, ""))
	}
	return cl.Body.Eval(env)
}

// EvalBind evaluates the closure's sole clause body directly against
// env, without matching an argument — the shape `let`-style bindings
// need when the "closure" is really just a delayed expression.
func (c *Closure) EvalBind(env evalenv.Env) values.Value {
	return c.Clauses[0].Body.Eval(env)
}

// Apply1 implements Applicable1 so a Closure can be invoked wherever
// any function value is expected.
func (c *Closure) Apply1(arg values.Value) values.Value { return c.BindEval(arg) }

func (c *Closure) Apply(env evalenv.Env, arg values.Value) values.Value {
	return c.BindEval(arg)
}

func (c *Closure) Describe(d *describe.Describer) *describe.Describer {
	d.Start("closure")
	d.Arg("clauses", len(c.Clauses))
	d.Arg("pos", c.Pos.String())
	return d.End()
}

var (
	_ Applicable1 = (*Closure)(nil)
)
