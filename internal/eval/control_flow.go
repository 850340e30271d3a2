package eval

import (
	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/evalerr"
	"github.com/tua-lang/tua/internal/values"
)

// evalIf evaluates an if/elseif*/else chain. Conditions must evaluate to
// bool — Tua has no truthy coercion of other types (§4.6 design note).
func (e *Evaluator) evalIf(node *ast.IfStatement) (signal, error) {
	for i, cond := range node.Conditions {
		v, err := e.evalExpression(cond)
		if err != nil {
			return signal{}, err
		}
		if v.Type.ID != "bool" {
			return signal{}, evalerr.NewSemantic(cond.Pos(), "if condition must be bool, got %s", v.Type)
		}
		if v.AsBool() {
			return e.evalBlock(node.Blocks[i])
		}
	}
	if node.Else != nil {
		return e.evalBlock(node.Else)
	}
	return signal{}, nil
}

func (e *Evaluator) evalWhile(node *ast.WhileStatement) (signal, error) {
	for {
		v, err := e.evalExpression(node.Condition)
		if err != nil {
			return signal{}, err
		}
		if v.Type.ID != "bool" {
			return signal{}, evalerr.NewSemantic(node.Condition.Pos(), "while condition must be bool, got %s", v.Type)
		}
		if !v.AsBool() {
			return signal{}, nil
		}
		sig, err := e.evalBlock(node.Body)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == signalReturn {
			return sig, nil
		}
	}
}

// evalForNumeric implements `for i = start, limit_expr, step? do`. i is
// bound as a fresh int in the surrounding scope (not a per-iteration loop
// frame), initialized to start; limit_expr is re-evaluated as a bool
// condition before every iteration rather than compared numerically — it
// is expected to reference i itself (e.g. `i <= 10`), per §4.6's design
// note and §9. i is removed from the surrounding scope on exit, normal or
// early.
func (e *Evaluator) evalForNumeric(node *ast.ForNumericStatement) (signal, error) {
	startV, err := e.evalExpression(node.Start)
	if err != nil {
		return signal{}, err
	}
	if startV.Type.ID != "int" {
		return signal{}, evalerr.NewSemantic(node.Start.Pos(), "numeric for start must be int, got %s", startV.Type)
	}

	stepV := values.Int(1)
	if node.Step != nil {
		stepV, err = e.evalExpression(node.Step)
		if err != nil {
			return signal{}, err
		}
	}
	if stepV.Type.ID != "int" {
		return signal{}, evalerr.NewSemantic(node.Pos(), "numeric for step must be int, got %s", stepV.Type)
	}

	if !e.scope.NewIdentifier(node.Name.Value, startV) {
		return signal{}, evalerr.NewSemantic(node.Pos(), "identifier %q is already declared in this scope", node.Name.Value)
	}
	defer e.scope.DelIdentifier(node.Name.Value)

	for {
		condV, err := e.evalExpression(node.Stop)
		if err != nil {
			return signal{}, err
		}
		if condV.Type.ID != "bool" {
			return signal{}, evalerr.NewSemantic(node.Stop.Pos(), "numeric for condition must be bool, got %s", condV.Type)
		}
		if !condV.AsBool() {
			return signal{}, nil
		}

		sig, err := e.evalBlock(node.Body)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == signalReturn {
			return sig, nil
		}

		current, _ := e.scope.Get(node.Name.Value)
		e.scope.ChangeValue(node.Name.Value, values.Int(current.AsInt()+stepV.AsInt()))
	}
}

// evalForIn implements the generic for loop. The iterator expression must
// name a registered iterator-producing builtin (ipairs) — user functions
// cannot be generic-for targets since Tua has no generator syntax (§9). k
// and v are bound in the surrounding scope for each pair (must be
// currently undefined) and deleted again before the next pair is pulled.
func (e *Evaluator) evalForIn(node *ast.ForInStatement) (signal, error) {
	iterFn, ok := e.builtins.LookupIterator(node.Iterator.Name)
	if !ok {
		return signal{}, evalerr.NewSemantic(node.Iterator.Pos(), "%q does not produce an iterable sequence for a generic for loop", node.Iterator.Name)
	}
	args := make([]values.Value, 0, len(node.Iterator.Arguments))
	for _, a := range node.Iterator.Arguments {
		v, err := e.evalExpression(a)
		if err != nil {
			return signal{}, err
		}
		args = append(args, v)
	}
	it, err := iterFn(e, args, node.Iterator.Pos())
	if err != nil {
		return signal{}, err
	}

	for {
		pair, ok := it.Next()
		if !ok {
			return signal{}, nil
		}

		if !e.scope.NewIdentifier(node.KeyName.Value, pair.Key) {
			return signal{}, evalerr.NewSemantic(node.Pos(), "identifier %q is already declared in this scope", node.KeyName.Value)
		}
		if !e.scope.NewIdentifier(node.ValName.Value, pair.Value) {
			e.scope.DelIdentifier(node.KeyName.Value)
			return signal{}, evalerr.NewSemantic(node.Pos(), "identifier %q is already declared in this scope", node.ValName.Value)
		}

		sig, err := e.evalBlock(node.Body)
		e.scope.DelIdentifier(node.KeyName.Value)
		e.scope.DelIdentifier(node.ValName.Value)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == signalReturn {
			return sig, nil
		}
	}
}
