package code

import (
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/pattern"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// Binding is one `let`-clause: a pattern bound to the value an Expr
// evaluates to. Non-recursive bindings see the outer environment; Rec
// bindings see an environment that already contains themselves, built
// via a closure-bound self-reference (used for `fun`/recursive
// `val rec`).
type Binding struct {
	Pat  pattern.Pat
	Expr Code
	Rec  bool
}

// LetCode evaluates each binding in turn, extending the environment,
// then evaluates Body in the fully extended environment.
type LetCode struct {
	Bindings []Binding
	Body     Code
	Pos      pos.Position
}

func Let(pos pos.Position, body Code, bindings ...Binding) Code {
	return LetCode{Bindings: bindings, Body: body, Pos: pos}
}

func (l LetCode) Eval(env evalenv.Env) values.Value {
	cur := env
	for _, b := range l.Bindings {
		cur = l.evalBinding(cur, b)
	}
	return l.Body.Eval(cur)
}

func (l LetCode) evalBinding(env evalenv.Env, b Binding) evalenv.Env {
	if b.Rec {
		return l.evalRecBinding(env, b)
	}
	v := b.Expr.Eval(env)
	extended := env
	pattern.BindRecurse(b.Pat, v, func(name string, val values.Value) {
		extended = extended.Bind(name, val)
	})
	return extended
}

// evalRecBinding handles `val rec`/`fun`: the bound name must be
// visible inside Expr itself, so a single-slot mutable frame is
// created first, the closure is built against it, and only then is the
// frame filled and fixed.
func (l LetCode) evalRecBinding(env evalenv.Env, b Binding) evalenv.Env {
	names := pattern.Names(b.Pat)
	if len(names) != 1 {
		panic("code: recursive let binding must bind exactly one name")
	}
	name := names[0]
	frame := env.BindMutable(name)
	frame.Set(values.TheUnit)
	v := b.Expr.Eval(frame)
	frame.Set(v)
	frame.Fix()
	return frame
}

func (l LetCode) IsConstant() bool { return false }

func (l LetCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("let")
	for i, b := range l.Bindings {
		d.ArgDescribable(fieldName(i), b.Expr)
	}
	d.ArgDescribable("body", l.Body)
	return d.End()
}
