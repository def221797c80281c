// Package pattern implements the structural pattern IR and the binder
// that matches a runtime value against it. One recursive binder,
// BindRecurse, serves both destructuring bindings and match-arm
// selection; the two differ only in what the caller does with the
// bound names.
package pattern

import "github.com/hydromatic/morel-core/internal/values"

// Pat is a pattern IR node. Concrete variants are the structs below;
// callers build them with the constructor functions.
type Pat interface {
	isPat()
}

type IdentPat struct{ Name string }
type WildcardPat struct{}

type LitKind int

const (
	LitBool LitKind = iota
	LitChar
	LitString
	LitInt
	LitReal
)

type LiteralPat struct {
	Kind LitKind
	Bool bool
	Char values.Char
	Str  values.String
	Int  values.Int
	Real values.Real
}

type AsPat struct {
	Name  string
	Inner Pat
}

type TuplePat struct{ Elems []Pat }
type RecordPat struct{ Elems []Pat } // canonical field order, same shape as TuplePat
type ListPat struct{ Elems []Pat }

type ConsPat struct {
	Head Pat
	Tail Pat
}

type Ctor0Pat struct{ Tag string }

type Ctor1Pat struct {
	Tag     string
	Payload Pat
}

func (IdentPat) isPat() {}
func (WildcardPat) isPat() {}
func (LiteralPat) isPat() {}
func (AsPat) isPat() {}
func (TuplePat) isPat() {}
func (RecordPat) isPat() {}
func (ListPat) isPat() {}
func (ConsPat) isPat() {}
func (Ctor0Pat) isPat() {}
func (Ctor1Pat) isPat() {}

// Ident, Wildcard, ... are convenience constructors.
func Ident(name string) Pat { return IdentPat{Name: name} }
func Wildcard() Pat { return WildcardPat{} }
func As(name string, p Pat) Pat { return AsPat{Name: name, Inner: p} }
func Tuple(elems ...Pat) Pat { return TuplePat{Elems: elems} }
func Record(elems ...Pat) Pat { return RecordPat{Elems: elems} }
func List(elems ...Pat) Pat { return ListPat{Elems: elems} }
func Cons(head, tail Pat) Pat { return ConsPat{Head: head, Tail: tail} }
func Ctor0(tag string) Pat { return Ctor0Pat{Tag: tag} }
func Ctor1(tag string, p Pat) Pat { return Ctor1Pat{Tag: tag, Payload: p} }

func BoolLit(b bool) Pat { return LiteralPat{Kind: LitBool, Bool: b} }
func CharLit(c values.Char) Pat { return LiteralPat{Kind: LitChar, Char: c} }
func StringLit(s values.String) Pat { return LiteralPat{Kind: LitString, Str: s} }
func IntLit(i values.Int) Pat { return LiteralPat{Kind: LitInt, Int: i} }
func RealLit(r values.Real) Pat { return LiteralPat{Kind: LitReal, Real: r} }

// Consumer receives one (name, value) pair per name bound while
// matching. It is invoked for identifier and as-patterns only.
type Consumer func(name string, v values.Value)

// BindRecurse matches arg against pat, invoking consume for every name
// bound along the way. It returns true iff pat matches arg in its
// entirety; on false, consume may already have been called for a
// successful prefix of sub-matches — callers must treat those as
// speculative and discard the extended environment.
func BindRecurse(p Pat, arg values.Value, consume Consumer) bool {
	switch pp := p.(type) {
	case IdentPat:
		consume(pp.Name, arg)
		return true

	case WildcardPat:
		return true

	case AsPat:
		consume(pp.Name, arg)
		return BindRecurse(pp.Inner, arg, consume)

	case LiteralPat:
		return matchLiteral(pp, arg)

	case TuplePat:
		return matchSeq(pp.Elems, arg, consume)

	case RecordPat:
		return matchSeq(pp.Elems, arg, consume)

	case ListPat:
		seq, ok := arg.(values.Seq)
		if !ok || len(seq) != len(pp.Elems) {
			return false
		}
		return matchSeq(pp.Elems, arg, consume)

	case ConsPat:
		seq, ok := arg.(values.Seq)
		if !ok || len(seq) == 0 {
			return false
		}
		if !BindRecurse(pp.Head, seq[0], consume) {
			return false
		}
		return BindRecurse(pp.Tail, seq[1:], consume)

	case Ctor0Pat:
		seq, ok := arg.(values.Seq)
		if !ok || len(seq) != 1 {
			return false
		}
		tag, ok := seq[0].(values.String)
		return ok && string(tag) == pp.Tag

	case Ctor1Pat:
		seq, ok := arg.(values.Seq)
		if !ok || len(seq) != 2 {
			return false
		}
		tag, ok := seq[0].(values.String)
		if !ok || string(tag) != pp.Tag {
			return false
		}
		return BindRecurse(pp.Payload, seq[1], consume)

	default:
		panic("pattern: unsupported pattern op (compiler bug)")
	}
}

func matchSeq(elems []Pat, arg values.Value, consume Consumer) bool {
	seq, ok := arg.(values.Seq)
	if !ok || len(seq) != len(elems) {
		return false
	}
	for i, e := range elems {
		if !BindRecurse(e, seq[i], consume) {
			return false
		}
	}
	return true
}

func matchLiteral(p LiteralPat, arg values.Value) bool {
	switch p.Kind {
	case LitBool:
		b, ok := arg.(values.Bool)
		return ok && bool(b) == p.Bool
	case LitChar:
		c, ok := arg.(values.Char)
		return ok && c == p.Char
	case LitString:
		s, ok := arg.(values.String)
		return ok && s == p.Str
	case LitInt:
		i, ok := arg.(values.Int)
		return ok && i == p.Int
	case LitReal:
		r, ok := arg.(values.Real)
		return ok && !values.IsNaN(r) && !values.IsNaN(p.Real) && r == p.Real
	default:
		panic("pattern: unsupported literal kind")
	}
}

// Names returns every name pat would bind, in match order, without a
// value to match against. Used by recursive `let` bindings (package
// code) to find the single name a `val rec` pattern binds.
func Names(p Pat) []string {
	var out []string
	var walk func(Pat)
	walk = func(p Pat) {
		switch pp := p.(type) {
		case IdentPat:
			out = append(out, pp.Name)
		case AsPat:
			out = append(out, pp.Name)
			walk(pp.Inner)
		case TuplePat:
			for _, e := range pp.Elems {
				walk(e)
			}
		case RecordPat:
			for _, e := range pp.Elems {
				walk(e)
			}
		case ListPat:
			for _, e := range pp.Elems {
				walk(e)
			}
		case ConsPat:
			walk(pp.Head)
			walk(pp.Tail)
		case Ctor1Pat:
			walk(pp.Payload)
		}
	}
	walk(p)
	return out
}
