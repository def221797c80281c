// Package comparator implements the polymorphic comparator builder:
// given a type descriptor, build a comparator on runtime values that
// honors ML's ordering rules — lexicographic tuples, list collation,
// constructor-ordinal tie-break for sum types, reversed order for the
// descending wrapper — with per-builder memoization and a
// deferred-lookup trick to break cycles in recursive datatypes.
package comparator

import (
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

// Comparator returns a negative integer, zero, or positive integer
// comparing a and b per T's ordering rules.
type Comparator func(a, b values.Value) int

const descTag = "DESC"

// Builder builds comparators for one session; its cache is not shared
// across builders.
type Builder struct {
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	resolved Comparator
}

func NewBuilder() *Builder {
	return &Builder{cache: map[string]*cacheEntry{}}
}

// Build returns the comparator for t, building and caching it if this
// is the first request for t's key. Build never returns nil; a request
// for a type whose comparator is still being built returns a deferred
// comparator that resolves through a memoized supplier on first use,
// which is how recursive datatypes (e.g. a tree whose Node carries a
// list of the same tree type) avoid infinite recursion at build time.
func (b *Builder) Build(t *types.Type) Comparator {
	if entry, ok := b.cache[t.Key]; ok {
		if entry.resolved != nil {
			return entry.resolved
		}
		return b.deferred(entry)
	}

	entry := &cacheEntry{}
	b.cache[t.Key] = entry

	cmp := b.buildDirect(t)

	entry.resolved = cmp
	return cmp
}

// deferred returns a comparator that resolves entry.resolved through a
// memoized supplier on first use: the first *call* (not build) reads
// entry.resolved once, every later call uses the cached function
// directly.
// This breaks cycles in recursive datatypes — building a Node type
// whose payload is `Node list` asks for Node's own comparator while
// Node's entry is still pending; the deferred comparator it gets back
// is only ever invoked later, when comparing actual row values, by
// which time Build(Node) has long since returned and entry.resolved is
// set.
func (b *Builder) deferred(entry *cacheEntry) Comparator {
	var resolved Comparator
	return func(a, bv values.Value) int {
		if resolved == nil {
			if entry.resolved == nil {
				panic("comparator: deferred comparator invoked before its type finished building")
			}
			resolved = entry.resolved
		}
		return resolved(a, bv)
	}
}

func (b *Builder) buildDirect(t *types.Type) Comparator {
	switch {
	case t.IsDescending():
		elem := b.Build(t.Elem(0))
		return func(a, bv values.Value) int {
			av, bv2 := unwrapDesc(a), unwrapDesc(bv)
			return elem(bv2, av) // swapped arguments: reversed order
		}

	case t.IsBag():
		return b.listComparator(t.Elem(0))

	case t.Tag == types.List:
		return b.listComparator(t.Elem(0))

	case t.Tag == types.TupleType:
		return b.tupleComparator(t.Args)

	case t.Tag == types.RecordType:
		fieldTypes := make([]*types.Type, len(t.Fields))
		for i, f := range t.Fields {
			fieldTypes[i] = f.Type
		}
		return b.tupleComparator(fieldTypes)

	case t.Tag == types.DataType:
		return b.sumComparator(t)

	default: // ID, TyVar
		return naturalOrder
	}
}

func unwrapDesc(v values.Value) values.Value {
	seq, ok := v.(values.Seq)
	if ok && len(seq) == 2 {
		if tag, ok := seq[0].(values.String); ok && string(tag) == descTag {
			return seq[1]
		}
	}
	return v
}

func (b *Builder) tupleComparator(elemTypes []*types.Type) Comparator {
	cmps := make([]Comparator, len(elemTypes))
	for i, et := range elemTypes {
		cmps[i] = b.Build(et)
	}
	return func(a, bv values.Value) int {
		as, bs := a.(values.Seq), bv.(values.Seq)
		n := len(cmps)
		for i := 0; i < n; i++ {
			if c := cmps[i](as[i], bs[i]); c != 0 {
				return c
			}
		}
		return 0
	}
}

func (b *Builder) listComparator(elemType *types.Type) Comparator {
	elem := b.Build(elemType)
	return func(a, bv values.Value) int {
		as, bs := a.(values.Seq), bv.(values.Seq)
		n := len(as)
		if len(bs) < n {
			n = len(bs)
		}
		for i := 0; i < n; i++ {
			if c := elem(as[i], bs[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(as) < len(bs):
			return -1
		case len(as) > len(bs):
			return 1
		default:
			return 0
		}
	}
}

func (b *Builder) sumComparator(t *types.Type) Comparator {
	type ctorInfo struct {
		ordinal int
		payload Comparator
	}
	byName := map[string]ctorInfo{}
	for _, c := range t.Ctors {
		var pc Comparator
		if c.Payload != nil {
			pc = b.Build(c.Payload)
		}
		byName[c.Name] = ctorInfo{ordinal: c.Ordinal, payload: pc}
	}
	return func(a, bv values.Value) int {
		aTag, _ := values.CtorTag(a)
		bTag, _ := values.CtorTag(bv)
		if aTag == bTag {
			ci := byName[aTag]
			if ci.payload == nil {
				return 0
			}
			aSeq, bSeq := a.(values.Seq), bv.(values.Seq)
			return ci.payload(aSeq[1], bSeq[1])
		}
		ai, bi := byName[aTag].ordinal, byName[bTag].ordinal
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
}

// naturalOrder compares primitive scalars. Real never reports NaN
// equal to anything; `Real.compare` raising Unordered is a separate,
// stricter rule implemented by the Real.compare built-in, not here —
// this general-purpose comparator only backs `order`/group keys and
// the polymorphic ordering operators.
func naturalOrder(a, bv values.Value) int {
	switch av := a.(type) {
	case values.Bool:
		bb := bv.(values.Bool)
		if av == bb {
			return 0
		}
		if !bool(av) {
			return -1
		}
		return 1
	case values.Int:
		bb := bv.(values.Int)
		switch {
		case av < bb:
			return -1
		case av > bb:
			return 1
		default:
			return 0
		}
	case values.Real:
		bb := bv.(values.Real)
		switch {
		case values.IsNaN(av) || values.IsNaN(bb):
			// NaN has no place in any order: never report it equal to
			// anything, including another NaN. Callers that need the full
			// "never equal, never ordered" rule for the four inequality
			// operators special-case NaN themselves rather than trust this
			// sign, since a single non-zero result can't make both
			// directions of an inequality false at once.
			return 1
		case av < bb:
			return -1
		case av > bb:
			return 1
		default:
			return 0
		}
	case values.Char:
		bb := bv.(values.Char)
		switch {
		case av < bb:
			return -1
		case av > bb:
			return 1
		default:
			return 0
		}
	case values.String:
		bb := bv.(values.String)
		switch {
		case av < bb:
			return -1
		case av > bb:
			return 1
		default:
			return 0
		}
	default:
		panic("comparator: unsupported primitive value")
	}
}
