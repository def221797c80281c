// Package types is the evaluator's view of the external type system's
// type descriptor. Type inference and unification themselves live
// outside the evaluator; this package only carries the shape the
// comparator builder and a few type-dispatched built-ins need.
package types

// Tag is the type descriptor's top-level discriminator.
type Tag int

const (
	ID Tag = iota
	TyVar
	TupleType
	RecordType
	List
	DataType
)

// Field is one named field of a record type, in canonical order.
type Field struct {
	Name string
	Type *Type
}

// Ctor is one constructor of a sum (datatype) type. Payload is nil for
// a nullary constructor. Ordinal is the declaration order, used by the
// comparator builder to break ties between distinct constructors.
type Ctor struct {
	Name    string
	Payload *Type
	Ordinal int
}

// Type is the evaluator's handle on a type. Key is stable and used by
// the comparator cache; two Type values describing the same type must
// share a Key.
type Type struct {
	Tag Tag
	Key string

	// Args: element type for List, component types for TupleType.
	Args []*Type

	// Fields: RecordType's field-name -> field-type map, in canonical order.
	Fields []Field

	// Ctors: DataType's constructor table, in declaration order.
	Ctors []Ctor

	// Name is the datatype or type-constructor name (e.g. "bag",
	// "descending", "option"); used by the comparator builder to
	// recognize the two built-in wrapper datatypes.
	Name string
}

func Primitive(key string) *Type { return &Type{Tag: ID, Key: key, Name: key} }

func TyVarT(key string) *Type { return &Type{Tag: TyVar, Key: key, Name: key} }

func Tuple(key string, args ...*Type) *Type {
	return &Type{Tag: TupleType, Key: key, Args: args}
}

func Record(key string, fields ...Field) *Type {
	return &Type{Tag: RecordType, Key: key, Fields: fields}
}

func ListOf(key string, elem *Type) *Type {
	return &Type{Tag: List, Key: key, Args: []*Type{elem}}
}

func Data(key, name string, ctors ...Ctor) *Type {
	return &Type{Tag: DataType, Key: key, Name: name, Ctors: ctors}
}

// CtorByName looks up a constructor in a DataType's table.
func (t *Type) CtorByName(name string) (Ctor, bool) {
	for _, c := range t.Ctors {
		if c.Name == name {
			return c, true
		}
	}
	return Ctor{}, false
}

// IsBag reports whether t is the `bag` datatype wrapper, which orders
// the same as a list over its element type.
func (t *Type) IsBag() bool { return t.Tag == DataType && t.Name == "bag" }

// IsDescending reports whether t is the `descending` order wrapper,
// whose values carry the "DESC" tag.
func (t *Type) IsDescending() bool { return t.Tag == DataType && t.Name == "descending" }

// Elem returns the element/component type at index i (List's sole
// argument, or a TupleType's i'th component).
func (t *Type) Elem(i int) *Type {
	if i < len(t.Args) {
		return t.Args[i]
	}
	return nil
}
