// Package eval implements the Tua evaluator: the tree-walking interpreter
// core described in §4 of the data model — type-checked expression
// evaluation, statement execution with early-exit signal propagation,
// control flow, and function calls against a scope stack.
package eval

import (
	"io"

	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/builtins"
	"github.com/tua-lang/tua/internal/scope"
	"github.com/tua-lang/tua/internal/values"
)

// signalKind distinguishes the ways a statement can interrupt normal
// sequential execution of the block containing it. return is the only
// early-exit kind currently realized; break/continue are recognized by the
// grammar but evaluate to a no-op (§4.5, §9).
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
)

func (k signalKind) String() string {
	switch k {
	case signalReturn:
		return "return"
	default:
		return "none"
	}
}

// signal is the early-exit value threaded back up through block and
// statement evaluation (§4.5). A signalNone result means the block ran to
// completion with no interruption.
type signal struct {
	kind  signalKind
	value values.Value
}

// Evaluator walks a parsed Tua program against a persistent scope stack. A
// single Evaluator can be reused across repeated top-level Eval calls — the
// program frame it starts with is never popped, so bindings from one call
// remain visible to the next (§9 — the REPL depends on this).
type Evaluator struct {
	scope    *scope.Stack
	stdout   io.Writer
	builtins *builtins.Registry
}

// New creates an Evaluator writing builtin output to stdout.
func New(stdout io.Writer) *Evaluator {
	return &Evaluator{
		scope:    scope.New(),
		stdout:   stdout,
		builtins: builtins.NewRegistry(),
	}
}

// Stdout implements builtins.Context.
func (e *Evaluator) Stdout() io.Writer { return e.stdout }

// Scope implements builtins.Context.
func (e *Evaluator) Scope() *scope.Stack { return e.scope }

// Eval executes program against the top-level program frame. Nested blocks
// (if/while/for bodies) always push and pop their own frame; the top level
// never does, since it evaluates directly in the program frame that New
// already opened. A function body likewise runs directly in the single
// frame of its fresh callee stack.
func (e *Evaluator) Eval(program *ast.Program) (values.Value, error) {
	sig, err := e.runStatements(program.Statements)
	if err != nil {
		return values.Value{}, err
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return values.NilValue(), nil
}

// evalBlock pushes a fresh frame, runs every statement in order, and pops
// the frame before returning — whether it completes normally or an early
// exit signal cuts it short.
func (e *Evaluator) evalBlock(block *ast.BlockStatement) (signal, error) {
	e.scope.Push()
	defer e.scope.Pop()

	for _, stmt := range block.Statements {
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
