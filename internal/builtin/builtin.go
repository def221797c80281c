// Package builtin implements the flat built-in operator registry (see
// registry.go's package doc). This file's New is the single entry
// point that assembles every per-structure register* function into
// one Registry plus the root EvalEnv the evaluator starts from — one
// registration call per basis structure, into one map, one root
// environment per session.
package builtin

import (
	"github.com/hydromatic/morel-core/internal/comparator"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/session"
	"github.com/hydromatic/morel-core/internal/values"
)

// Builtins is the fully assembled built-in surface: Registry serves
// the compiler's macro lookups ("+"/"-"/"sum"/"=" all monomorphize
// through a Macro, which has no runtime value of its own), and Env is
// the ready-to-use root EvalEnv a fresh session starts from.
type Builtins struct {
	Registry Registry
	Env      evalenv.Env
}

// New builds the complete built-in registry across the String, Int,
// Real, List, Bag, Vector, Option, ListPair, Math, Char, Relational,
// and Sys structures and binds every non-macro entry into a fresh
// root EvalEnv. cmpBuilder backs the polymorphic
// "="/"<>"/"compare"/ordering operators; sess backs Sys.*.
func New(cmpBuilder *comparator.Builder, sess *session.Session) Builtins {
	r := Registry{}

	registerGeneral(r, cmpBuilder)
	registerArith(r)
	registerInt(r)
	registerReal(r)
	registerMath(r)
	registerChar(r)
	registerString(r)
	registerList(r)
	registerBag(r)
	registerVector(r)
	registerOption(r)
	registerListPair(r)
	registerRelational(r)
	registerSys(r, sess)

	checkComplete(r)

	return Builtins{Registry: r, Env: rootEnvOf(r)}
}

// requiredNames lists the identifiers every basis structure is
// expected to declare; checkComplete panics at assembly time if one is
// missing, so a registration gap surfaces the first time a session is
// built rather than at an arbitrary later lookup.
var requiredNames = []string{
	"=", "<>", "compare", "<", ">", "<=", ">=",
	"+", "-", "*", "/", "~", "div", "mod", "quot", "rem",
	"Int.maxInt", "Int.minInt", "Int.toString", "Int.fromString",
	"Real.maxFinite", "Real.posInf", "Real.negInf", "Real.compare",
	"Math.pi", "Math.sqrt", "Math.pow",
	"chr", "ord",
	"String.size", "String.sub", "String.concat", "explode", "implode", "^",
	"hd", "tl", "null", "length", "rev", "nth", "take", "drop", "@", "map", "filter", "foldl", "foldr",
	"Bag.fromList", "Bag.toList", "Bag.length",
	"Vector.fromList", "Vector.toList", "Vector.sub", "Vector.update",
	"Option.valOf", "Option.isSome", "Option.isNone", "Option.getOpt",
	"ListPair.zip", "ListPair.unzip",
	"Relational.sum", "Relational.min", "Relational.max", "Relational.count",
	"Relational.exists", "Relational.notExists", "Relational.only",
	"Sys.env", "Sys.set", "Sys.unset", "Sys.plan", "use",
}

func checkComplete(r Registry) {
	var missing []string
	for _, name := range requiredNames {
		if _, ok := r[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		panic("builtin: registry missing required names: " + joinNames(missing))
	}
}

func joinNames(names []string) string {
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}

// Lookup resolves name against the registry, reporting whether it
// exists at all; the caller (the compiler, out of scope here)
// distinguishes the three Entry shapes by which field is non-nil.
func (r Registry) Lookup(name string) (Entry, bool) {
	e, ok := r[name]
	return e, ok
}

// rootEnvOf binds every Value/App entry under its name into a fresh
// root frame. Macro entries are intentionally omitted: a macro is
// resolved by the compiler at the reference site once it knows the
// argument type, so it never occupies an environment slot of its own —
// referencing an overloaded name like "+" without the compiler's
// macro-expansion step would be a compiler bug, the same as looking up
// an unbound variable.
func rootEnvOf(r Registry) evalenv.Env {
	vars := make(map[string]values.Value, len(r))
	for name, e := range r {
		switch {
		case e.App != nil:
			vars[name] = e.App
		case e.Value != nil:
			vars[name] = e.Value
		}
	}
	return evalenv.NewRoot(vars)
}
