// Package evalerr defines the two error categories the evaluator raises
// (§7): SemanticError for violations of Tua's own rules, and InternalError
// for conditions that indicate a bug in the evaluator rather than in the
// program being run.
package evalerr

import (
	"fmt"

	"github.com/tua-lang/tua/internal/lexer"
)

// SemanticError reports a violation of Tua's language rules: a type
// mismatch, an out-of-bounds index, an undeclared identifier, a
// redeclaration, division by zero, or a malformed generic-for iterator.
type SemanticError struct {
	Message string
	Pos     lexer.Position
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// NewSemantic constructs a SemanticError at pos.
func NewSemantic(pos lexer.Position, format string, args ...any) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// InternalError reports a condition the evaluator itself should never reach
// given a well-formed tree — a malformed AST node, a scope invariant broken
// by the evaluator's own bookkeeping, or similar. Seeing one means the
// evaluator has a bug, not that the Tua program is invalid.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

// NewInternal constructs an InternalError.
func NewInternal(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
