package builtin

import (
	"github.com/hydromatic/morel-core/internal/pos"
	"github.com/hydromatic/morel-core/internal/session"
	"github.com/hydromatic/morel-core/internal/values"
)

// registerSys wires Sys.env/Sys.set/Sys.unset/Sys.plan/use to a
// single Session, the external-collaborator boundary: the evaluator
// core never touches a file or a property store directly.
func registerSys(r Registry, sess *session.Session) {
	r.app("Sys.env", Unary("Sys.env", func(p pos.Position, a values.Value) values.Value {
		name := string(a.(values.String))
		if v, ok := sess.Get(name); ok {
			return values.Some(values.String(v))
		}
		return values.None()
	}))

	r.app("Sys.set", Binary("Sys.set", func(p pos.Position, a, b values.Value) values.Value {
		name := string(a.(values.String))
		sess.Set(name, valueToPropString(b))
		return values.TheUnit
	}))

	r.app("Sys.unset", Unary("Sys.unset", func(p pos.Position, a values.Value) values.Value {
		sess.Unset(string(a.(values.String)))
		return values.TheUnit
	}))

	r.app("Sys.plan", Unary("Sys.plan", func(p pos.Position, a values.Value) values.Value {
		rowCount := int64(a.(values.Int))
		text, err := sess.Plan(session.PlanText, int(rowCount))
		if err != nil {
			return values.String("")
		}
		return values.String(text)
	}))

	r.app("use", Unary("use", func(p pos.Position, a values.Value) values.Value {
		if err := sess.Use(string(a.(values.String))); err != nil {
			return values.Bool(false)
		}
		return values.Bool(true)
	}))
}

// valueToPropString renders a Sys.set value the way the property bag
// stores it: strings verbatim, bools as "true"/"false", ints in ML
// style ("~" for minus); any other value is stored as the empty string.
func valueToPropString(v values.Value) string {
	switch t := v.(type) {
	case values.String:
		return string(t)
	case values.Bool:
		if bool(t) {
			return "true"
		}
		return "false"
	case values.Int:
		return formatInt(int64(t))
	default:
		return ""
	}
}
