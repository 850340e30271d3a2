package ast

import (
	"fmt"
	"strings"

	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/values"
)

// LetStatement declares a new binding in the current frame: `let name: Type = value`.
type LetStatement struct {
	Token lexer.Token
	Name  *Identifier
	Type  values.Type
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) Pos() lexer.Position  { return ls.Token.Pos }
func (ls *LetStatement) String() string {
	return fmt.Sprintf("let %s: %s = %s", ls.Name.Value, ls.Type.String(), ls.Value.String())
}

// AssignStatement rebinds an existing name, or mutates one element of a
// list binding in place when Index is non-nil: `name = value` or
// `name[index] = value`.
type AssignStatement struct {
	Token lexer.Token
	Name  *Identifier
	Index Expression // nil for a plain rebind
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AssignStatement) String() string {
	if as.Index != nil {
		return fmt.Sprintf("%s[%s] = %s", as.Name.Value, as.Index.String(), as.Value.String())
	}
	return fmt.Sprintf("%s = %s", as.Name.Value, as.Value.String())
}

// ExpressionStatement is an expression evaluated purely for its side effect,
// almost always a bare call: `print(x)`.
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// IfStatement is an if/elseif*/else chain. Conditions[i] guards Blocks[i];
// Else is nil when there is no trailing else arm.
type IfStatement struct {
	Token      lexer.Token
	Conditions []Expression
	Blocks     []*BlockStatement
	Else       *BlockStatement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var b strings.Builder
	for i, cond := range is.Conditions {
		if i == 0 {
			b.WriteString("if " + cond.String() + " then\n")
		} else {
			b.WriteString("elseif " + cond.String() + " then\n")
		}
		b.WriteString(is.Blocks[i].String())
	}
	if is.Else != nil {
		b.WriteString("else\n")
		b.WriteString(is.Else.String())
	}
	b.WriteString("end")
	return b.String()
}

// WhileStatement loops Body while Condition evaluates to true; Condition
// must be a bool.
type WhileStatement struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "while " + ws.Condition.String() + " do\n" + ws.Body.String() + "end"
}

// ForNumericStatement is `for name = start, cond, step? do ... end`. Stop is
// not a numeric bound: it is a bool-valued condition, expected to reference
// Name, re-evaluated before every iteration (§4.6). Step is nil when the
// source omitted it, defaulting to 1 at evaluation time.
type ForNumericStatement struct {
	Token lexer.Token
	Name  *Identifier
	Start Expression
	Stop  Expression
	Step  Expression
	Body  *BlockStatement
}

func (fs *ForNumericStatement) statementNode()       {}
func (fs *ForNumericStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForNumericStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *ForNumericStatement) String() string {
	return fmt.Sprintf("for %s = %s, %s do\n%send", fs.Name.Value, fs.Start.String(), fs.Stop.String(), fs.Body.String())
}

// ForInStatement is the generic form: `for key, value in iterator(...) do ... end`.
// Iterator must be a call to a builtin that produces a lazy key/value sequence.
type ForInStatement struct {
	Token    lexer.Token
	KeyName  *Identifier
	ValName  *Identifier
	Iterator *CallExpression
	Body     *BlockStatement
}

func (fi *ForInStatement) statementNode()       {}
func (fi *ForInStatement) TokenLiteral() string { return fi.Token.Literal }
func (fi *ForInStatement) Pos() lexer.Position  { return fi.Token.Pos }
func (fi *ForInStatement) String() string {
	return fmt.Sprintf("for %s, %s in %s do\n%send", fi.KeyName.Value, fi.ValName.Value, fi.Iterator.String(), fi.Body.String())
}

// FunctionDeclStatement declares a named function binding (§4.7.1).
type FunctionDeclStatement struct {
	Token      lexer.Token
	Name       *Identifier
	Params     []FunctionParam
	ReturnType values.Type
	Body       *BlockStatement
}

// FunctionParam is one declared parameter in source form.
type FunctionParam struct {
	Name string
	Type values.Type
}

func (fd *FunctionDeclStatement) statementNode()       {}
func (fd *FunctionDeclStatement) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclStatement) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FunctionDeclStatement) String() string {
	params := make([]string, 0, len(fd.Params))
	for _, p := range fd.Params {
		params = append(params, p.Name+": "+p.Type.String())
	}
	return fmt.Sprintf("function %s(%s): %s\n%send", fd.Name.Value, strings.Join(params, ", "), fd.ReturnType.String(), fd.Body.String())
}

// ReturnStatement yields from the innermost function call. Value is nil for
// a bare `return`.
type ReturnStatement struct {
	Token lexer.Token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String()
	}
	return "return"
}

// BreakStatement is recognized by the grammar but not implemented: evaluating
// one is a defined no-op (§4.5, §9).
type BreakStatement struct{ Token lexer.Token }

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break" }

// ContinueStatement is recognized by the grammar but not implemented:
// evaluating one is a defined no-op (§4.5, §9).
type ContinueStatement struct{ Token lexer.Token }

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue" }
