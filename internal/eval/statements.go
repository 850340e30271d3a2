package eval

import (
	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/values"
)

// evalStatement executes stmt and reports any early-exit signal it produced.
func (e *Evaluator) evalStatement(stmt ast.Statement) (signal, error) {
	switch node := stmt.(type) {
	case *ast.LetStatement:
		return signal{}, e.evalLet(node)
	case *ast.AssignStatement:
		return signal{}, e.evalAssign(node)
	case *ast.ExpressionStatement:
		_, err := e.evalExpression(node.Expression)
		return signal{}, err
	case *ast.FunctionDeclStatement:
		return signal{}, e.evalFunctionDecl(node)
	case *ast.ReturnStatement:
		return e.evalReturn(node)
	case *ast.BreakStatement:
		// Recognized by the grammar but not implemented: a defined no-op (§4.5, §9).
		return signal{}, nil
	case *ast.ContinueStatement:
		// Recognized by the grammar but not implemented: a defined no-op (§4.5, §9).
		return signal{}, nil
	case *ast.IfStatement:
		return e.evalIf(node)
	case *ast.WhileStatement:
		return e.evalWhile(node)
	case *ast.ForNumericStatement:
		return e.evalForNumeric(node)
	case *ast.ForInStatement:
		return e.evalForIn(node)
	case *ast.BlockStatement:
		return e.evalBlock(node)
	default:
		return signal{}, evalerr.NewInternal("unhandled statement node %T", stmt)
	}
}

func (e *Evaluator) evalLet(node *ast.LetStatement) error {
	v, err := e.evalExpression(node.Value)
	if err != nil {
		return err
	}
	v, err = coerce(v, node.Type, node.Pos(), "let "+node.Name.Value)
	if err != nil {
		return err
	}
	if !e.scope.NewIdentifier(node.Name.Value, v) {
		return evalerr.NewSemantic(node.Pos(), "identifier %q is already declared in this scope", node.Name.Value)
	}
	return nil
}

func (e *Evaluator) evalAssign(node *ast.AssignStatement) error {
	v, err := e.evalExpression(node.Value)
	if err != nil {
		return err
	}

	if node.Index == nil {
		current, ok := e.scope.Get(node.Name.Value)
		if !ok {
			return evalerr.NewSemantic(node.Pos(), "undeclared identifier %q", node.Name.Value)
		}
		v, err = coerce(v, current.Type, node.Pos(), "assignment to "+node.Name.Value)
		if err != nil {
			return err
		}
		e.scope.ChangeValue(node.Name.Value, v)
		return nil
	}

	target, ok := e.scope.Get(node.Name.Value)
	if !ok {
		return evalerr.NewSemantic(node.Pos(), "undeclared identifier %q", node.Name.Value)
	}
	if !target.Type.IsList() {
		return evalerr.NewSemantic(node.Pos(), "cannot index-assign into %s, only lists support indexing", target.Type)
	}
	idx, err := e.evalExpression(node.Index)
	if err != nil {
		return err
	}
	if idx.Type.ID != "int" {
		return evalerr.NewSemantic(node.Pos(), "list index must be an int, got %s", idx.Type)
	}
	list := target.AsList()
	v, err = coerce(v, list.ElemType, node.Pos(), "list element assignment")
	if err != nil {
		return err
	}
	if !list.Set(int(idx.AsInt()), v) {
		return evalerr.NewSemantic(node.Pos(), "list index %d out of bounds (length %d)", idx.AsInt(), list.Len())
	}
	return nil
}

func (e *Evaluator) evalReturn(node *ast.ReturnStatement) (signal, error) {
	if node.Value == nil {
		return signal{kind: signalReturn, value: values.NilValue()}, nil
	}
	v, err := e.evalExpression(node.Value)
	if err != nil {
		return signal{}, err
	}
	return signal{kind: signalReturn, value: v}, nil
}
