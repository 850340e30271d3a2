package values

import "testing"

func TestListAppendPopGetSet(t *testing.T) {
	l := NewList(Int)
	l.Append(Int(1))
	l.Append(Int(2))
	l.Append(Int(3))

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	if !l.Set(1, Int(20)) {
		t.Fatal("Set(1, ...) returned false")
	}
	v, ok := l.Get(1)
	if !ok || v.AsInt() != 20 {
		t.Fatalf("Get(1) = %v, %v, want 20, true", v, ok)
	}

	popped, ok := l.Pop()
	if !ok || popped.AsInt() != 3 {
		t.Fatalf("Pop() = %v, %v, want 3, true", popped, ok)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() after pop = %d, want 2", l.Len())
	}
}

func TestListOutOfBounds(t *testing.T) {
	l := NewList(Int)
	l.Append(Int(1))

	if _, ok := l.Get(5); ok {
		t.Fatal("Get(5) should fail on a 1-element list")
	}
	if l.Set(5, Int(1)) {
		t.Fatal("Set(5, ...) should fail on a 1-element list")
	}
}

func TestEmptyListPop(t *testing.T) {
	l := NewList(Int)
	if _, ok := l.Pop(); ok {
		t.Fatal("Pop() on an empty list should fail")
	}
}

func TestListString(t *testing.T) {
	l := NewList(Int)
	l.Append(Int(1))
	l.Append(Int(2))
	if got := l.String(); got != "[1, 2]" {
		t.Errorf("String() = %q, want [1, 2]", got)
	}
}
