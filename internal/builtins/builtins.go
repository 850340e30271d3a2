package builtins

import (
	"fmt"

	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/values"
)

func builtinPrint(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	strs := make([]any, 0, len(args))
	for _, a := range args {
		strs = append(strs, a.String())
	}
	fmt.Fprintln(ctx.Stdout(), strs...)
	return values.NilValue(), nil
}

func builtinType(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != 1 {
		return values.Value{}, evalerr.NewSemantic(pos, "type expects exactly 1 argument, got %d", len(args))
	}
	return values.Str(args[0].Type.String()), nil
}

func builtinLen(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != 1 {
		return values.Value{}, evalerr.NewSemantic(pos, "len expects exactly 1 argument, got %d", len(args))
	}
	switch {
	case args[0].Type.ID == "string":
		return values.Int(int64(len([]rune(args[0].AsString())))), nil
	case args[0].Type.IsList():
		return values.Int(int64(args[0].AsList().Len())), nil
	default:
		return values.Value{}, evalerr.NewSemantic(pos, "len expects a string or list, got %s", args[0].Type)
	}
}

// builtinConcat joins two lists of the same element type into a new list.
// String concatenation already has first-class syntax via `..` (§4.1), so
// concat's domain is lists, the one place Tua has no concatenation operator.
func builtinConcat(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != 2 {
		return values.Value{}, evalerr.NewSemantic(pos, "concat expects exactly 2 arguments, got %d", len(args))
	}
	a, b := args[0], args[1]
	if !a.Type.IsList() || !b.Type.IsList() {
		return values.Value{}, evalerr.NewSemantic(pos, "concat expects two lists, got %s and %s", a.Type, b.Type)
	}
	if !a.Type.Equal(b.Type) && a.Type.ID != "List[]" && b.Type.ID != "List[]" {
		return values.Value{}, evalerr.NewSemantic(pos, "concat expects matching list types, got %s and %s", a.Type, b.Type)
	}
	elemType := a.AsList().ElemType
	if a.Type.ID == "List[]" {
		elemType = b.AsList().ElemType
	}
	result := values.NewList(elemType)
	for _, v := range a.AsList().Elements {
		result.Append(v.Clone())
	}
	for _, v := range b.AsList().Elements {
		result.Append(v.Clone())
	}
	return values.ListValue(result), nil
}

// builtinAppend mutates its list argument in place — the argument Value
// shares the same *List pointer as the caller's binding, so no rebind is
// needed for the mutation to be visible after the call returns.
func builtinAppend(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != 2 {
		return values.Value{}, evalerr.NewSemantic(pos, "append expects exactly 2 arguments, got %d", len(args))
	}
	if !args[0].Type.IsList() {
		return values.Value{}, evalerr.NewSemantic(pos, "append expects a list as its first argument, got %s", args[0].Type)
	}
	list := args[0].AsList()
	elem := args[1]
	if list.ElemType.ID != "" && !list.ElemType.Equal(elem.Type) {
		return values.Value{}, evalerr.NewSemantic(pos, "cannot append %s to %s", elem.Type, args[0].Type)
	}
	if list.ElemType.ID == "" {
		list.ElemType = elem.Type
	}
	list.Append(elem)
	return values.NilValue(), nil
}

// builtinPop removes and returns the last element, mutating the argument's
// list in place like builtinAppend.
func builtinPop(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != 1 {
		return values.Value{}, evalerr.NewSemantic(pos, "pop expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].Type.IsList() {
		return values.Value{}, evalerr.NewSemantic(pos, "pop expects a list, got %s", args[0].Type)
	}
	v, ok := args[0].AsList().Pop()
	if !ok {
		return values.Value{}, evalerr.NewSemantic(pos, "pop on empty list")
	}
	return v, nil
}

// builtinDumpStack writes every binding visible in every frame, innermost
// first, to stdout. It exists for interactive debugging (§4.9) and returns
// nil.
func builtinDumpStack(ctx Context, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != 0 {
		return values.Value{}, evalerr.NewSemantic(pos, "dump_stack expects no arguments, got %d", len(args))
	}
	for depth, frame := range ctx.Scope().Dump() {
		fmt.Fprintf(ctx.Stdout(), "-- frame %d --\n", depth)
		for _, nv := range frame {
			fmt.Fprintf(ctx.Stdout(), "%s: %s = %s\n", nv.Name, nv.Value.Type, nv.Value.String())
		}
	}
	return values.NilValue(), nil
}
