package builtins

import (
	"bytes"
	"io"
	"testing"

	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/scope"
	"github.com/tua-lang/tua/internal/values"
)

type testCtx struct {
	out   bytes.Buffer
	stack *scope.Stack
}

func newTestCtx() *testCtx { return &testCtx{stack: scope.New()} }

func (c *testCtx) Stdout() io.Writer   { return &c.out }
func (c *testCtx) Scope() *scope.Stack { return c.stack }

func TestPrint(t *testing.T) {
	ctx := newTestCtx()
	_, err := builtinPrint(ctx, []values.Value{values.Int(1), values.Str("two")}, lexer.Position{})
	if err != nil {
		t.Fatal(err)
	}
	if got := ctx.out.String(); got != "1 two\n" {
		t.Errorf("print output = %q, want %q", got, "1 two\n")
	}
}

func TestTypeBuiltin(t *testing.T) {
	ctx := newTestCtx()
	v, err := builtinType(ctx, []values.Value{values.Int(1)}, lexer.Position{})
	if err != nil {
		t.Fatal(err)
	}
	if v.AsString() != "int" {
		t.Errorf("type(1) = %q, want int", v.AsString())
	}
}

func TestLenStringAndList(t *testing.T) {
	ctx := newTestCtx()
	v, err := builtinLen(ctx, []values.Value{values.Str("hello")}, lexer.Position{})
	if err != nil || v.AsInt() != 5 {
		t.Fatalf("len(\"hello\") = %v, %v, want 5, nil", v, err)
	}

	list := values.NewList(values.Int)
	list.Append(values.Int(1))
	list.Append(values.Int(2))
	v, err = builtinLen(ctx, []values.Value{values.ListValue(list)}, lexer.Position{})
	if err != nil || v.AsInt() != 2 {
		t.Fatalf("len(list) = %v, %v, want 2, nil", v, err)
	}
}

func TestAppendMutatesInPlace(t *testing.T) {
	ctx := newTestCtx()
	list := values.NewList(values.Int)
	listVal := values.ListValue(list)

	_, err := builtinAppend(ctx, []values.Value{listVal, values.Int(7)}, lexer.Position{})
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 1 || list.Elements[0].AsInt() != 7 {
		t.Fatalf("append did not mutate the original list: %+v", list.Elements)
	}
}

func TestAppendTypeMismatch(t *testing.T) {
	ctx := newTestCtx()
	list := values.NewList(values.Int)
	_, err := builtinAppend(ctx, []values.Value{values.ListValue(list), values.Str("x")}, lexer.Position{})
	if err == nil {
		t.Fatal("expected a type error appending a string to a List[int]")
	}
}

func TestPopEmptyList(t *testing.T) {
	ctx := newTestCtx()
	list := values.NewList(values.Int)
	_, err := builtinPop(ctx, []values.Value{values.ListValue(list)}, lexer.Position{})
	if err == nil {
		t.Fatal("expected an error popping an empty list")
	}
}

func TestConcatLists(t *testing.T) {
	ctx := newTestCtx()
	a := values.NewList(values.Int)
	a.Append(values.Int(1))
	b := values.NewList(values.Int)
	b.Append(values.Int(2))

	v, err := builtinConcat(ctx, []values.Value{values.ListValue(a), values.ListValue(b)}, lexer.Position{})
	if err != nil {
		t.Fatal(err)
	}
	result := v.AsList()
	if result.Len() != 2 || result.Elements[0].AsInt() != 1 || result.Elements[1].AsInt() != 2 {
		t.Fatalf("concat result = %+v", result.Elements)
	}
	// Mutating the result must not affect the inputs (concat copies elements).
	result.Set(0, values.Int(99))
	if a.Elements[0].AsInt() != 1 {
		t.Fatal("concat should deep-copy its inputs")
	}
}

func TestIpairsIteratesInOrder(t *testing.T) {
	ctx := newTestCtx()
	list := values.NewList(values.String)
	list.Append(values.Str("a"))
	list.Append(values.Str("b"))

	it, err := builtinIpairs(ctx, []values.Value{values.ListValue(list)}, lexer.Position{})
	if err != nil {
		t.Fatal(err)
	}
	var keys []int64
	var vals []string
	for {
		pair, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, pair.Key.AsInt())
		vals = append(vals, pair.Value.AsString())
	}
	if len(keys) != 2 || keys[0] != 0 || keys[1] != 1 || vals[0] != "a" || vals[1] != "b" {
		t.Fatalf("ipairs produced %v / %v", keys, vals)
	}
}

func TestDumpStack(t *testing.T) {
	ctx := newTestCtx()
	ctx.stack.NewIdentifier("x", values.Int(1))
	_, err := builtinDumpStack(ctx, nil, lexer.Position{})
	if err != nil {
		t.Fatal(err)
	}
	if ctx.out.Len() == 0 {
		t.Fatal("expected dump_stack to write something to stdout")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	if !r.IsBuiltin("print") || !r.IsBuiltin("ipairs") {
		t.Fatal("expected print and ipairs to be registered")
	}
	if r.IsBuiltin("not_a_builtin") {
		t.Fatal("did not expect not_a_builtin to be registered")
	}
	if _, ok := r.Lookup("ipairs"); ok {
		t.Fatal("ipairs is an iterator builtin, not an ordinary one")
	}
	if _, ok := r.LookupIterator("print"); ok {
		t.Fatal("print is an ordinary builtin, not an iterator")
	}
}
