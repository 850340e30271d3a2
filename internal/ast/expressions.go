package ast

import (
	"bytes"
	"strings"

	"github.com/tua-lang/tua/internal/lexer"
)

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() lexer.Position  { return il.Token.Pos }

// FloatLiteral is a floating-point constant.
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() lexer.Position  { return fl.Token.Pos }

// StringLiteral is a quoted string constant.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }
func (sl *StringLiteral) Pos() lexer.Position  { return sl.Token.Pos }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() lexer.Position  { return bl.Token.Pos }

// NilLiteral is the literal `nil`.
type NilLiteral struct {
	Token lexer.Token
}

func (nl *NilLiteral) expressionNode()      {}
func (nl *NilLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NilLiteral) String() string       { return "nil" }
func (nl *NilLiteral) Pos() lexer.Position  { return nl.Token.Pos }

// GroupedExpression is a parenthesized expression, kept as its own node so
// precedence is explicit in the tree rather than inferred from parsing order.
type GroupedExpression struct {
	Token lexer.Token
	Inner Expression
}

func (ge *GroupedExpression) expressionNode()      {}
func (ge *GroupedExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupedExpression) String() string       { return ge.Inner.String() }
func (ge *GroupedExpression) Pos() lexer.Position  { return ge.Token.Pos }

// BinaryExpression is `left OP right`: arithmetic, concatenation,
// comparison, or boolean combination (§4.1).
type BinaryExpression struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}
func (be *BinaryExpression) Pos() lexer.Position { return be.Token.Pos }

// UnaryExpression is a prefix operator applied to a single operand: `-x`,
// `not x`.
type UnaryExpression struct {
	Token    lexer.Token
	Operator string
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	if ue.Operator == "not" {
		return "(not " + ue.Right.String() + ")"
	}
	return "(" + ue.Operator + ue.Right.String() + ")"
}
func (ue *UnaryExpression) Pos() lexer.Position { return ue.Token.Pos }

// IndexExpression is `Target[Index]`: list element access in expression
// position. An in-place element assignment (`xs[i] = v`) is not an
// IndexExpression; it is an AssignStatement with its Index field set.
type IndexExpression struct {
	Token  lexer.Token // the `[`
	Target Expression
	Index  Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	return ie.Target.String() + "[" + ie.Index.String() + "]"
}
func (ie *IndexExpression) Pos() lexer.Position { return ie.Token.Pos }

// CallExpression invokes a named function — user-defined or built in — with
// a fixed argument list. Tua has no first-class function values to call
// through, so the callee is always a bare name (§4.7).
type CallExpression struct {
	Token     lexer.Token // the `(`
	Name      string
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Name + "(" + strings.Join(args, ", ") + ")"
}
func (ce *CallExpression) Pos() lexer.Position { return ce.Token.Pos }

// TableConstructor is a list literal: `{1, 2, 3}`.
type TableConstructor struct {
	Token    lexer.Token // the `{`
	Elements []Expression
}

func (tc *TableConstructor) expressionNode()      {}
func (tc *TableConstructor) TokenLiteral() string { return tc.Token.Literal }
func (tc *TableConstructor) String() string {
	elems := make([]string, 0, len(tc.Elements))
	for _, e := range tc.Elements {
		elems = append(elems, e.String())
	}
	return "{" + strings.Join(elems, ", ") + "}"
}
func (tc *TableConstructor) Pos() lexer.Position { return tc.Token.Pos }
