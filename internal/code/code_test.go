package code

import (
	"testing"

	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pattern"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/values"
)

// addInts is a tiny Applicable2 test double.
type addInts struct{}

func (addInts) Kind() values.Kind { return values.KApplicable }
func (a addInts) Apply(_ evalenv.Env, arg values.Value) values.Value {
	seq := arg.(values.Seq)
	return a.Apply2(seq[0], seq[1])
}
func (addInts) Apply2(x, y values.Value) values.Value {
	return values.Int(int64(x.(values.Int)) + int64(y.(values.Int)))
}
func (a addInts) Curry() Applicable1 { return nil }
func (addInts) Describe(d *describe.Describer) *describe.Describer {
	d.Start("addInts")
	return d.End()
}

func TestClosureAppliedToTuple(t *testing.T) {
	env := evalenv.NewRoot(nil)
	fn := NewClosure(env, pos.None, Clause{
		Pat:  pattern.Tuple(pattern.Ident("x"), pattern.Ident("y")),
		Body: Apply2(LiftApplicable(addInts{}), Get("x"), Get("y")),
	})
	prog := Apply1(LiftApplicable(fn), Const(values.NewSeq(values.Int(3), values.Int(4))))

	got := prog.Eval(env)
	if int64(got.(values.Int)) != 7 {
		t.Fatalf("expected (fn (x, y) => x + y) (3, 4) = 7, got %v", got)
	}
}

func TestClosureSelectsFirstMatchingClause(t *testing.T) {
	env := evalenv.NewRoot(nil)
	fn := NewClosure(env, pos.None,
		Clause{Pat: pattern.IntLit(0), Body: Const(values.String("zero"))},
		Clause{Pat: pattern.Wildcard(), Body: Const(values.String("nonzero"))},
	)

	if got := fn.Apply1(values.Int(0)); got != values.String("zero") {
		t.Fatalf("expected first clause to win on 0, got %v", got)
	}
	if got := fn.Apply1(values.Int(5)); got != values.String("nonzero") {
		t.Fatalf("expected wildcard clause on 5, got %v", got)
	}
}

func TestClosureRaisesBindOnExhaustion(t *testing.T) {
	env := evalenv.NewRoot(nil)
	fn := NewClosure(env, pos.Position{Line: 3, Column: 7},
		Clause{Pat: pattern.IntLit(0), Body: Const(values.String("zero"))},
	)

	defer func() {
		r := recover()
		exc, ok := r.(*except.Exception)
		if !ok {
			t.Fatalf("expected *except.Exception, got %v", r)
		}
		if exc.Kind != except.Bind {
			t.Fatalf("expected Bind, got %v", exc.Kind.QualifiedName())
		}
		if exc.Pos.Line != 3 || exc.Pos.Column != 7 {
			t.Fatalf("expected the closure's position on the exception, got %v", exc.Pos)
		}
	}()
	fn.Apply1(values.Int(1))
}

func TestLetBindsPatternThenEvaluatesBody(t *testing.T) {
	env := evalenv.NewRoot(nil)
	prog := Let(pos.None,
		Apply2(LiftApplicable(addInts{}), Get("a"), Get("b")),
		Binding{
			Pat:  pattern.Tuple(pattern.Ident("a"), pattern.Ident("b")),
			Expr: Const(values.NewSeq(values.Int(10), values.Int(20))),
		},
	)
	if got := prog.Eval(env); int64(got.(values.Int)) != 30 {
		t.Fatalf("expected let val (a, b) = (10, 20) in a + b end = 30, got %v", got)
	}
}

func TestRecursiveLetSeesItself(t *testing.T) {
	// val rec f = fn 0 => 0 | _ => f 0   -- the body of the second
	// clause must see f through the recursive frame.
	env := evalenv.NewRoot(nil)
	prog := Let(pos.None,
		Apply(Get("f"), Const(values.Int(9))),
		Binding{
			Pat: pattern.Ident("f"),
			Expr: closureCode{clauses: []Clause{
				{Pat: pattern.IntLit(0), Body: Const(values.Int(0))},
				{Pat: pattern.Wildcard(), Body: Apply(Get("f"), Const(values.Int(0)))},
			}},
			Rec: true,
		},
	)
	if got := prog.Eval(env); int64(got.(values.Int)) != 0 {
		t.Fatalf("expected the recursive call to bottom out at 0, got %v", got)
	}
}

// closureCode builds a Closure capturing the evaluation environment,
// the shape the compiler emits for a `fn` expression.
type closureCode struct{ clauses []Clause }

func (c closureCode) Eval(env evalenv.Env) values.Value {
	return NewClosure(env, pos.None, c.clauses...)
}
func (closureCode) IsConstant() bool { return false }
func (c closureCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("fn")
	return d.End()
}

// trapCode records whether it was evaluated, for short-circuit tests.
type trapCode struct{ hit *bool }

func (c trapCode) Eval(evalenv.Env) values.Value {
	*c.hit = true
	return values.Bool(true)
}
func (trapCode) IsConstant() bool { return false }
func (c trapCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("trap")
	return d.End()
}

func TestAndAlsoShortCircuits(t *testing.T) {
	env := evalenv.NewRoot(nil)
	var hit bool
	got := AndAlso(Const(values.Bool(false)), trapCode{hit: &hit}).Eval(env)
	if bool(got.(values.Bool)) {
		t.Fatalf("expected false andalso _ = false")
	}
	if hit {
		t.Fatalf("andalso must not evaluate the right operand when the left is false")
	}
}

func TestOrElseShortCircuits(t *testing.T) {
	env := evalenv.NewRoot(nil)
	var hit bool
	got := OrElse(Const(values.Bool(true)), trapCode{hit: &hit}).Eval(env)
	if !bool(got.(values.Bool)) {
		t.Fatalf("expected true orelse _ = true")
	}
	if hit {
		t.Fatalf("orelse must not evaluate the right operand when the left is true")
	}
}

func TestLiftApplicableIsConstant(t *testing.T) {
	lifted := LiftApplicable(addInts{})
	if !lifted.IsConstant() {
		t.Fatalf("a lifted Applicable must report IsConstant")
	}
	env := evalenv.NewRoot(nil)
	if _, ok := lifted.Eval(env).(addInts); !ok {
		t.Fatalf("evaluating a lifted Applicable must return the Applicable itself")
	}
}

func TestTupleGetReadsNamedBindings(t *testing.T) {
	env := evalenv.NewRoot(nil).Bind("a", values.Int(1)).Bind("b", values.Int(2))
	got := TupleGet("a", "b").Eval(env).(values.Seq)
	if len(got) != 2 || got[0] != values.Int(1) || got[1] != values.Int(2) {
		t.Fatalf("unexpected tuple: %v", got)
	}
}
