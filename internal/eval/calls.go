package eval

import (
	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/scope"
	"github.com/tua-lang/tua/internal/values"
)

func (e *Evaluator) evalFunctionDecl(node *ast.FunctionDeclStatement) error {
	params := make([]values.Param, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, values.Param{Name: p.Name, Type: p.Type})
	}
	fn := &values.Function{
		Name:       node.Name.Value,
		Params:     params,
		ReturnType: node.ReturnType,
		Body:       node.Body,
	}
	if !e.scope.NewIdentifier(node.Name.Value, values.Func(fn)) {
		return evalerr.NewSemantic(node.Pos(), "identifier %q is already declared in this scope", node.Name.Value)
	}
	return nil
}

// evalCall dispatches a call expression to a builtin or a user-defined
// function. A call to an iterator builtin is rejected first; otherwise the
// arguments are evaluated against the caller's scope before choosing
// between a builtin and a user-defined function.
func (e *Evaluator) evalCall(node *ast.CallExpression) (values.Value, error) {
	if _, ok := e.builtins.LookupIterator(node.Name); ok {
		return values.Value{}, evalerr.NewSemantic(node.Pos(), "%q can only be used as the iterator of a generic for loop", node.Name)
	}

	args := make([]values.Value, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		v, err := e.evalExpression(a)
		if err != nil {
			return values.Value{}, err
		}
		args = append(args, v)
	}

	if fn, ok := e.builtins.Lookup(node.Name); ok {
		return fn(e, args, node.Pos())
	}

	callee, ok := e.scope.Get(node.Name)
	if !ok {
		return values.Value{}, evalerr.NewSemantic(node.Pos(), "undeclared function %q", node.Name)
	}
	if callee.Type.ID != "function" {
		return values.Value{}, evalerr.NewSemantic(node.Pos(), "%q is not callable, it has type %s", node.Name, callee.Type)
	}
	return e.callFunction(callee.AsFunction(), args, node.Pos())
}

// callFunction runs fn against a brand new scope stack: arguments are
// deep-copied into fresh bindings, every function-typed binding visible to
// the caller is copied across (function-table injection — Tua functions do
// not close over their defining scope), and the caller's stack is restored
// once the call completes (§4.7.2, §4.7.3).
func (e *Evaluator) callFunction(fn *values.Function, args []values.Value, pos lexer.Position) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return values.Value{}, evalerr.NewSemantic(pos, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	callerFunctions := e.scope.GetFunctions()

	callee := scope.New()
	for _, nv := range callerFunctions {
		callee.NewIdentifier(nv.Name, nv.Value)
	}
	for i, param := range fn.Params {
		argVal := args[i].Clone()
		argVal, err := coerce(argVal, param.Type, pos, "argument "+param.Name+" of "+fn.Name)
		if err != nil {
			return values.Value{}, err
		}
		callee.NewIdentifier(param.Name, argVal)
	}

	caller := e.scope
	e.scope = callee
	sig, err := e.runStatements(fn.Body.(*ast.BlockStatement).Statements)
	e.scope = caller
	if err != nil {
		return values.Value{}, err
	}

	// The return Value's type is not checked against the declared return
	// type (§4.7.7, left as an explicit open question rather than enforced).
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return values.NilValue(), nil
}

// runStatements executes stmts directly against the current top frame,
// without pushing a new one — used both for a function's top-level body
// and for Eval's top-level program statements (§9).
func (e *Evaluator) runStatements(stmts []ast.Statement) (signal, error) {
	for _, stmt := range stmts {
		sig, err := e.evalStatement(stmt)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return signal{}, nil
}
