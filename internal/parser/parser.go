// Package parser implements a Pratt (precedence-climbing) recursive-descent
// parser that turns a Tua token stream into an *ast.Program.
package parser

import (
	"fmt"

	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/values"
)

// Operator precedence, lowest to highest. Concat and power are
// right-associative; every other binary operator is left-associative.
const (
	_ int = iota
	LOWEST
	OR         // or, |
	AND        // and, &
	COMPARISON // == ~= < <= > >=
	CONCAT     // .. (right-assoc)
	SUM        // + -
	PRODUCT    // * / // %
	POWER      // ^ (right-assoc)
	PREFIX     // -x, not x
	CALLINDEX  // f(args), xs[i]
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:      OR,
	lexer.PIPE:    OR,
	lexer.AND:     AND,
	lexer.AMP:     AND,
	lexer.EQ:      COMPARISON,
	lexer.NEQ:     COMPARISON,
	lexer.LT:      COMPARISON,
	lexer.LE:      COMPARISON,
	lexer.GT:      COMPARISON,
	lexer.GE:      COMPARISON,
	lexer.CONCAT:  CONCAT,
	lexer.PLUS:    SUM,
	lexer.MINUS:   SUM,
	lexer.STAR:    PRODUCT,
	lexer.SLASH:   PRODUCT,
	lexer.SLASH2:  PRODUCT,
	lexer.PERCENT: PRODUCT,
	lexer.CARET:   POWER,
	lexer.LBRACK:  CALLINDEX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser consumes a token stream and builds an *ast.Program, accumulating
// syntax errors rather than stopping at the first one.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l, primed with the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:  p.parseIdentifierOrCall,
		lexer.INT:    p.parseIntegerLiteral,
		lexer.FLOAT:  p.parseFloatLiteral,
		lexer.STRING: p.parseStringLiteral,
		lexer.TRUE:   p.parseBooleanLiteral,
		lexer.FALSE:  p.parseBooleanLiteral,
		lexer.NIL:    p.parseNilLiteral,
		lexer.LPAREN: p.parseGroupedExpression,
		lexer.LBRACE: p.parseTableConstructor,
		lexer.MINUS:  p.parseUnaryExpression,
		lexer.NOT:    p.parseUnaryExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:    p.parseBinaryExpression,
		lexer.MINUS:   p.parseBinaryExpression,
		lexer.STAR:    p.parseBinaryExpression,
		lexer.SLASH:   p.parseBinaryExpression,
		lexer.SLASH2:  p.parseBinaryExpression,
		lexer.PERCENT: p.parseBinaryExpression,
		lexer.CARET:   p.parseBinaryExpressionRightAssoc,
		lexer.CONCAT:  p.parseBinaryExpressionRightAssoc,
		lexer.EQ:      p.parseBinaryExpression,
		lexer.NEQ:     p.parseBinaryExpression,
		lexer.LT:      p.parseBinaryExpression,
		lexer.LE:      p.parseBinaryExpression,
		lexer.GT:      p.parseBinaryExpression,
		lexer.GE:      p.parseBinaryExpression,
		lexer.AND:     p.parseBinaryExpression,
		lexer.OR:      p.parseBinaryExpression,
		lexer.AMP:     p.parseBinaryExpression,
		lexer.PIPE:    p.parseBinaryExpression,
		lexer.LBRACK:  p.parseIndexExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf(
		"expected next token to be %s, got %s (%q) at %d:%d",
		t, p.peekToken.Type, p.peekToken.Literal, p.peekToken.Pos.Line, p.peekToken.Pos.Column))
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...)+
		fmt.Sprintf(" at %d:%d", p.curToken.Pos.Line, p.curToken.Pos.Column))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses the entire token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// parseExpression implements the core Pratt loop: parse one prefix term,
// then keep absorbing infix operators whose precedence exceeds the
// threshold we were called with.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("unexpected token %q, expected an expression", p.curToken.Literal)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.curToken
	name := p.curToken.Literal
	if !p.peekTokenIs(lexer.LPAREN) {
		return &ast.Identifier{Token: tok, Value: name}
	}
	p.nextToken() // consume '('
	call := &ast.CallExpression{Token: p.curToken, Name: name}
	call.Arguments = p.parseExpressionList(lexer.RPAREN)
	return call
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return list
	}
	return list
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	var v int64
	if _, err := fmt.Sscanf(tok.Literal, "%d", &v); err != nil {
		p.addError("could not parse %q as an integer", tok.Literal)
	}
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	var v float64
	if _, err := fmt.Sscanf(tok.Literal, "%g", &v); err != nil {
		p.addError("could not parse %q as a float", tok.Literal)
	}
	return &ast.FloatLiteral{Token: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return &ast.GroupedExpression{Token: tok, Inner: inner}
}

func (p *Parser) parseTableConstructor() ast.Expression {
	tc := &ast.TableConstructor{Token: p.curToken}
	tc.Elements = p.parseExpressionList(lexer.RBRACE)
	return tc
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := p.curToken.Literal
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

// parseBinaryExpressionRightAssoc handles `^` and `..`: parsing the right
// operand at one less than the current precedence lets the same operator
// nest to the right (`2 ^ 2 ^ 3` groups as `2 ^ (2 ^ 3)`).
func (p *Parser) parseBinaryExpressionRightAssoc(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence - 1)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACK) {
		return nil
	}
	return &ast.IndexExpression{Token: tok, Target: left, Index: index}
}

// parseTypeExpr parses a type annotation: a bare name (`int`, `nil`, ...) or
// `List[` followed by a nested type and `]`. It resolves directly to a
// values.Type since annotations carry no runtime behavior.
func (p *Parser) parseTypeExpr() values.Type {
	if !p.curTokenIs(lexer.IDENT) && !p.curTokenIs(lexer.NIL) {
		p.addError("expected a type name, got %q", p.curToken.Literal)
		return values.Type{}
	}
	name := p.curToken.Literal
	if name != "List" {
		return values.Type{ID: name}
	}
	if !p.expectPeek(lexer.LBRACK) {
		return values.Type{}
	}
	p.nextToken()
	elem := p.parseTypeExpr()
	if !p.expectPeek(lexer.RBRACK) {
		return values.Type{}
	}
	return values.List(elem)
}
