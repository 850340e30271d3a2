package eval

import (
	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/values"
)

// evalExpression evaluates expr to a Value against the current scope.
func (e *Evaluator) evalExpression(expr ast.Expression) (values.Value, error) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		return values.Int(node.Value), nil
	case *ast.FloatLiteral:
		return values.Float(node.Value), nil
	case *ast.StringLiteral:
		return values.Str(node.Value), nil
	case *ast.BooleanLiteral:
		return values.Bool(node.Value), nil
	case *ast.NilLiteral:
		return values.NilValue(), nil
	case *ast.Identifier:
		v, ok := e.scope.Get(node.Value)
		if !ok {
			return values.Value{}, evalerr.NewSemantic(node.Pos(), "undeclared identifier %q", node.Value)
		}
		return v, nil
	case *ast.GroupedExpression:
		return e.evalExpression(node.Inner)
	case *ast.UnaryExpression:
		operand, err := e.evalExpression(node.Right)
		if err != nil {
			return values.Value{}, err
		}
		return e.evalUnary(node, operand)
	case *ast.BinaryExpression:
		left, err := e.evalExpression(node.Left)
		if err != nil {
			return values.Value{}, err
		}
		right, err := e.evalExpression(node.Right)
		if err != nil {
			return values.Value{}, err
		}
		return e.evalBinary(node, left, right)
	case *ast.IndexExpression:
		return e.evalIndex(node)
	case *ast.TableConstructor:
		return e.evalTableConstructor(node)
	case *ast.CallExpression:
		return e.evalCall(node)
	default:
		return values.Value{}, evalerr.NewInternal("unhandled expression node %T", expr)
	}
}

// evalIndex evaluates `Target[Index]`, requiring Target to be a list and
// Index to be an in-bounds int.
func (e *Evaluator) evalIndex(node *ast.IndexExpression) (values.Value, error) {
	target, err := e.evalExpression(node.Target)
	if err != nil {
		return values.Value{}, err
	}
	if !target.Type.IsList() {
		return values.Value{}, evalerr.NewSemantic(node.Pos(), "cannot index into %s, only lists support indexing", target.Type)
	}
	idx, err := e.evalExpression(node.Index)
	if err != nil {
		return values.Value{}, err
	}
	if idx.Type.ID != "int" {
		return values.Value{}, evalerr.NewSemantic(node.Pos(), "list index must be an int, got %s", idx.Type)
	}
	v, ok := target.AsList().Get(int(idx.AsInt()))
	if !ok {
		return values.Value{}, evalerr.NewSemantic(node.Pos(), "list index %d out of bounds (length %d)", idx.AsInt(), target.AsList().Len())
	}
	return v, nil
}

// evalTableConstructor evaluates a list literal. Its element type is taken
// from the first element; subsequent elements are checked for agreement. An
// empty literal produces the List[] sentinel, resolved against context by
// the caller (a let declaration's annotation, a parameter type, etc.).
func (e *Evaluator) evalTableConstructor(node *ast.TableConstructor) (values.Value, error) {
	if len(node.Elements) == 0 {
		return values.ListValue(values.NewList(values.Type{})), nil
	}
	elems := make([]values.Value, 0, len(node.Elements))
	for _, elExpr := range node.Elements {
		v, err := e.evalExpression(elExpr)
		if err != nil {
			return values.Value{}, err
		}
		elems = append(elems, v)
	}
	elemType := elems[0].Type
	for _, v := range elems[1:] {
		if !v.Type.Equal(elemType) {
			return values.Value{}, evalerr.NewSemantic(node.Pos(), "list literal elements must share one type, got %s and %s", elemType, v.Type)
		}
	}
	list := values.NewList(elemType)
	list.Elements = elems
	return values.ListValue(list), nil
}
