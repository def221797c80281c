// Command morel is a minimal demo driver for the evaluation core.
// Lexing, parsing, and type inference live in external collaborators,
// so it builds a hand-assembled Code tree, evaluates it against a
// fresh session, and prints the result plus the compiled plan the same
// way `Sys.plan` would.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hydromatic/morel-core/internal/builtin"
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/comparator"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/except"
	"github.com/hydromatic/morel-core/internal/pattern"
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/session"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

func main() {
	sess := session.New(session.DefaultConfig(), nil)
	bi := builtin.New(comparator.NewBuilder(), sess)

	plain := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	prog := demoProgram(bi.Registry, bi.Env)
	sess.RecordPlan(prog)

	result, err := run(prog, bi.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(renderValue(result))
	printPlan(sess, plain)
}

// demoProgram compiles `(fn (x, y) => x + y) (3, 4)` directly as a
// Code tree, since there is no parser in scope to produce one from
// source text.
func demoProgram(reg builtin.Registry, env evalenv.Env) code.Code {
	intT := types.Primitive("int")
	plus := reg["+"].Macro(intT) // "+" monomorphizes to int addition here
	fn := code.NewClosure(env, pos.None,
		code.Clause{
			Pat: pattern.Tuple(pattern.Ident("x"), pattern.Ident("y")),
			Body: code.Apply2(
				code.LiftApplicable(plus),
				code.Get("x"),
				code.Get("y"),
			),
		},
	)
	return code.Apply1(
		code.LiftApplicable(fn),
		code.Const(values.NewSeq(values.Int(3), values.Int(4))),
	)
}

func run(prog code.Code, env evalenv.Env) (result values.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if exc, ok := r.(*except.Exception); ok {
				err = fmt.Errorf("%s", exc.UserMessage())
				return
			}
			panic(r)
		}
	}()
	return prog.Eval(env), nil
}

func renderValue(v values.Value) string {
	switch t := v.(type) {
	case values.Int:
		return fmt.Sprintf("%d : int", int64(t))
	case values.Real:
		return fmt.Sprintf("%v : real", float32(t))
	case values.Bool:
		return fmt.Sprintf("%v : bool", bool(t))
	case values.String:
		return fmt.Sprintf("%q : string", string(t))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func printPlan(sess *session.Session, plain bool) {
	text, err := sess.Plan(session.PlanText, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if plain {
		fmt.Print(text)
		return
	}
	fmt.Println("-- plan " + strings.Repeat("-", 64))
	fmt.Print(text)
}
