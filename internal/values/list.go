package values

import "strings"

// List is a mutable, ordered, homogeneous sequence of Values. A binding owns
// its List by pointer, which is what lets index-assignment (`xs[0] = 1`)
// mutate in place without the scope stack ever rewriting the binding itself.
type List struct {
	ElemType Type
	Elements []Value
}

// NewList creates an empty list of the given element type.
func NewList(elem Type) *List {
	return &List{ElemType: elem, Elements: nil}
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Elements) }

// Get returns the element at index i, or false when i is out of range; the
// evaluator reports that as a semantic error rather than a Go panic.
func (l *List) Get(i int) (Value, bool) {
	if i < 0 || i >= len(l.Elements) {
		return Value{}, false
	}
	return l.Elements[i], true
}

// Set replaces the element at index i.
func (l *List) Set(i int, v Value) bool {
	if i < 0 || i >= len(l.Elements) {
		return false
	}
	l.Elements[i] = v
	return true
}

// Append adds v to the end of the list.
func (l *List) Append(v Value) {
	l.Elements = append(l.Elements, v)
}

// Pop removes and returns the last element.
func (l *List) Pop() (Value, bool) {
	if len(l.Elements) == 0 {
		return Value{}, false
	}
	last := l.Elements[len(l.Elements)-1]
	l.Elements = l.Elements[:len(l.Elements)-1]
	return last, true
}

// Type returns the list's own Type, List[ElemType].
func (l *List) Type() Type {
	return List(l.ElemType)
}

// Clone makes a deep copy: the returned list shares no backing array or
// nested list with the original, matching the by-value argument-passing
// semantics of function calls (§4.7.3).
func (l *List) Clone() *List {
	cloned := &List{ElemType: l.ElemType, Elements: make([]Value, len(l.Elements))}
	for i, v := range l.Elements {
		cloned.Elements[i] = v.Clone()
	}
	return cloned
}

// String renders the list the way `print` displays it:
// bracketed, comma-separated element representations.
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}
