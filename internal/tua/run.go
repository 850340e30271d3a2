// Package tua wires the lexer, parser, and evaluator into the single
// entry point both the CLI and the conformance tests drive a program
// through.
package tua

import (
	"io"

	"github.com/tua-lang/tua/internal/errors"
	"github.com/tua-lang/tua/internal/eval"
	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/parser"
	"github.com/tua-lang/tua/internal/values"
)

// Source bundles a program's text with the file name it came from, for
// error reporting; File is "<eval>" for inline snippets.
type Source struct {
	Text string
	File string
}

// SyntaxError wraps one or more lex/parse failures, pre-formatted with
// source context the way the CLI displays them.
type SyntaxError struct {
	Errors []*errors.CompilerError
}

func (e *SyntaxError) Error() string {
	return errors.FormatErrors(e.Errors, false)
}

// Run lexes, parses, and evaluates src against a fresh Evaluator, writing
// any builtin output (print, dump_stack) to stdout. It returns the
// evaluator's final value — normally nil, unless the program returns from
// its top level.
func Run(src Source, stdout io.Writer) (values.Value, error) {
	ev := eval.New(stdout)
	return RunWith(ev, src)
}

// RunWith evaluates src against an existing Evaluator, so a caller (the
// REPL) can run several sources in sequence against one persistent scope.
func RunWith(ev *eval.Evaluator, src Source) (values.Value, error) {
	l := lexer.New(src.Text)
	p := parser.New(l)
	program := p.ParseProgram()

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		return values.Value{}, &SyntaxError{Errors: lexErrorsToCompilerErrors(lexErrs, src)}
	}
	if len(p.Errors()) > 0 {
		return values.Value{}, &SyntaxError{Errors: errors.FromStringErrors(p.Errors(), src.Text, src.File)}
	}

	return ev.Eval(program)
}

func lexErrorsToCompilerErrors(lexErrs []lexer.LexerError, src Source) []*errors.CompilerError {
	out := make([]*errors.CompilerError, 0, len(lexErrs))
	for _, le := range lexErrs {
		out = append(out, errors.NewCompilerError(le.Pos, le.Message, src.Text, src.File))
	}
	return out
}
