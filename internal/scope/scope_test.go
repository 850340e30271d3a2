package scope

import (
	"testing"

	"github.com/tua-lang/tua/internal/values"
)

func TestNewIdentifierRejectsRedeclaration(t *testing.T) {
	s := New()
	if !s.NewIdentifier("x", values.Int(1)) {
		t.Fatal("first declaration should succeed")
	}
	if s.NewIdentifier("x", values.Int(2)) {
		t.Fatal("redeclaring x in the same frame should fail")
	}
}

func TestNewIdentifierRejectsShadowingOuterFrame(t *testing.T) {
	s := New()
	s.NewIdentifier("x", values.Int(1))
	s.Push()
	if s.NewIdentifier("x", values.Int(2)) {
		t.Fatal("redeclaring x in an inner frame should fail — a name defined in any frame blocks new_identifier")
	}
	v, ok := s.Get("x")
	if !ok || v.AsInt() != 1 {
		t.Fatalf("Get(x) = %v, %v, want the outer binding 1, true", v, ok)
	}
}

func TestChangeValueSearchesAllFrames(t *testing.T) {
	s := New()
	s.NewIdentifier("x", values.Int(1))
	s.Push()
	if !s.ChangeValue("x", values.Int(99)) {
		t.Fatal("ChangeValue should find x in the outer frame")
	}
	s.Pop()
	v, _ := s.Get("x")
	if v.AsInt() != 99 {
		t.Fatalf("Get(x) after ChangeValue = %v, want 99", v.AsInt())
	}
}

func TestChangeValueUnknownIdentifier(t *testing.T) {
	s := New()
	if s.ChangeValue("missing", values.Int(1)) {
		t.Fatal("ChangeValue on an unbound name should fail")
	}
}

func TestDelIdentifier(t *testing.T) {
	s := New()
	s.NewIdentifier("x", values.Int(1))
	if !s.DelIdentifier("x") {
		t.Fatal("DelIdentifier(x) should succeed")
	}
	if _, ok := s.Get("x"); ok {
		t.Fatal("x should no longer be bound")
	}
	if s.DelIdentifier("x") {
		t.Fatal("deleting an already-deleted identifier should fail")
	}
}

func TestGetFunctionsAcrossFrames(t *testing.T) {
	s := New()
	s.NewIdentifier("f", values.Func(&values.Function{Name: "f"}))
	s.NewIdentifier("notAFunction", values.Int(1))
	s.Push()
	s.NewIdentifier("g", values.Func(&values.Function{Name: "g"}))

	names := map[string]bool{}
	for _, nv := range s.GetFunctions() {
		names[nv.Name] = true
	}
	if !names["f"] || !names["g"] || names["notAFunction"] {
		t.Fatalf("GetFunctions() returned unexpected set: %v", names)
	}
}

func TestPushPopDepth(t *testing.T) {
	s := New()
	if s.Depth() != 1 {
		t.Fatalf("fresh stack depth = %d, want 1", s.Depth())
	}
	s.Push()
	if s.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", s.Depth())
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("depth after pop = %d, want 1", s.Depth())
	}
}
