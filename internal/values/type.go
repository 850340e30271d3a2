// Package values implements Tua's runtime data model: types, values, lists,
// and function descriptors (§3).
package values

import "strings"

// Type identifies a value's type nominally. Two types are the same type iff
// their ID strings are equal — List[int] and List[float] are distinct types,
// and an empty list literal carries the sentinel List[] until its element
// type is resolved against a binding or parameter annotation.
type Type struct {
	ID string
}

var (
	Int      = Type{ID: "int"}
	Float    = Type{ID: "float"}
	Bool     = Type{ID: "bool"}
	String   = Type{ID: "string"}
	Nil      = Type{ID: "nil"}
	Function = Type{ID: "function"}
	// EmptyList is the type of a list literal with no elements, before it
	// has taken on a concrete element type from context.
	EmptyList = Type{ID: "List[]"}
)

// List returns the type List[elem].
func List(elem Type) Type {
	return Type{ID: "List[" + elem.ID + "]"}
}

// IsList reports whether t is some List[...] type, including List[].
func (t Type) IsList() bool {
	return strings.HasPrefix(t.ID, "List[") && strings.HasSuffix(t.ID, "]")
}

// ElemType returns the element type of a List[...] type. It does not check
// that t is a list type (for a non-list type the result is meaningless);
// callers check IsList first.
func (t Type) ElemType() Type {
	inner := strings.TrimSuffix(strings.TrimPrefix(t.ID, "List["), "]")
	if inner == "" {
		return Type{} // List[] has no resolved element type
	}
	return Type{ID: inner}
}

func (t Type) String() string { return t.ID }

// Equal reports whether two types are the same nominal type.
func (t Type) Equal(other Type) bool { return t.ID == other.ID }
