// Package ast defines the syntax tree node types the evaluator walks.
//
// Lexing and parsing are not part of the evaluator's documented contract;
// this package is the seam between them — a grammar-driven parser builds
// these nodes, and the evaluator only ever consumes them.
package ast

import (
	"bytes"
	"strings"

	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/values"
)

// Node is the base interface for every syntax tree node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action but produces no Value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: the sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// BlockStatement is a sequence of statements: the body of a while/for loop
// or a function (`do ... end`), or of an if/elseif/else arm (closed by the
// next `elseif`, `else` or `end`).
type BlockStatement struct {
	Token      lexer.Token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	for _, s := range bs.Statements {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier is a bare name reference (`x`). An index suffix (`x[i]`) is an
// IndexExpression whose Target is the Identifier.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }

// TypeExpr is a type annotation as written in source: `int`, `List[int]`,
// `nil`, or nested `List[List[...]]`. It resolves directly to a values.Type
// at parse time since type annotations carry no runtime behavior of their
// own (§3 — Type identity is purely nominal).
type TypeExpr struct {
	Token lexer.Token
	Type  values.Type
}

func (t *TypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *TypeExpr) String() string       { return t.Type.ID }
func (t *TypeExpr) Pos() lexer.Position  { return t.Token.Pos }
