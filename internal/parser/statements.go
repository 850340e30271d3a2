package parser

import (
	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/lexer"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.SEMICOLON:
		return nil
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.IDENT:
		return p.parseIdentifierStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.FUNCTION:
		return p.parseFunctionDeclStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case lexer.CONTINUE:
		return &ast.ContinueStatement{Token: p.curToken}
	default:
		tok := p.curToken
		expr := p.parseExpression(LOWEST)
		return &ast.ExpressionStatement{Token: tok, Expression: expr}
	}
}

// parseBlockStatement consumes statements until curToken is one of stop, or
// EOF. It does not consume the stop token itself — the caller inspects and
// consumes it, since which tokens are valid there (end / else / elseif)
// depends on the construct.
func (p *Parser) parseBlockStatement(stop ...lexer.TokenType) *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	isStop := func(t lexer.TokenType) bool {
		for _, s := range stop {
			if t == s {
				return true
			}
		}
		return false
	}
	for !isStop(p.curToken.Type) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseLetStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	typ := p.parseTypeExpr()
	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	return &ast.LetStatement{Token: tok, Name: name, Type: typ, Value: val}
}

// parseIdentifierStatement disambiguates the statement forms that start
// with a bare name: `x = expr`, `x[i] = expr`, and an expression statement,
// usually a call used purely for its side effect, e.g. `print(x)`.
func (p *Parser) parseIdentifierStatement() ast.Statement {
	tok := p.curToken
	name := &ast.Identifier{Token: tok, Value: tok.Literal}

	if p.peekTokenIs(lexer.LBRACK) {
		p.nextToken() // '['
		lbrack := p.curToken
		p.nextToken()
		idx := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RBRACK) {
			return nil
		}
		if !p.peekTokenIs(lexer.ASSIGN) {
			// Not an element assignment: `x[i]` starts an expression.
			var left ast.Expression = &ast.IndexExpression{Token: lbrack, Target: name, Index: idx}
			for !p.peekTokenIs(lexer.SEMICOLON) && LOWEST < p.peekPrecedence() {
				infix, ok := p.infixParseFns[p.peekToken.Type]
				if !ok {
					break
				}
				p.nextToken()
				left = infix(left)
			}
			return &ast.ExpressionStatement{Token: tok, Expression: left}
		}
		if !p.expectPeek(lexer.ASSIGN) {
			return nil
		}
		assignTok := p.curToken
		p.nextToken()
		val := p.parseExpression(LOWEST)
		return &ast.AssignStatement{Token: assignTok, Name: name, Index: idx, Value: val}
	}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		assignTok := p.curToken
		p.nextToken()
		val := p.parseExpression(LOWEST)
		return &ast.AssignStatement{Token: assignTok, Name: name, Value: val}
	}

	expr := p.parseExpression(LOWEST)
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.THEN) {
		return nil
	}
	p.nextToken()
	block := p.parseBlockStatement(lexer.ELSEIF, lexer.ELSE, lexer.END)

	stmt := &ast.IfStatement{
		Token:      tok,
		Conditions: []ast.Expression{cond},
		Blocks:     []*ast.BlockStatement{block},
	}

	for p.curTokenIs(lexer.ELSEIF) {
		p.nextToken()
		c := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.THEN) {
			return stmt
		}
		p.nextToken()
		b := p.parseBlockStatement(lexer.ELSEIF, lexer.ELSE, lexer.END)
		stmt.Conditions = append(stmt.Conditions, c)
		stmt.Blocks = append(stmt.Blocks, b)
	}

	if p.curTokenIs(lexer.ELSE) {
		p.nextToken()
		stmt.Else = p.parseBlockStatement(lexer.END)
	}

	if !p.curTokenIs(lexer.END) {
		p.addError("expected 'end' to close 'if'")
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockStatement(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.addError("expected 'end' to close 'while'")
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parseForStatement parses either form of for loop, disambiguated by what
// follows the loop variable's name: `=` means numeric, `,` means generic.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	firstName := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	switch {
	case p.peekTokenIs(lexer.ASSIGN):
		p.nextToken()
		p.nextToken()
		start := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.COMMA) {
			return nil
		}
		p.nextToken()
		stop := p.parseExpression(LOWEST)
		var step ast.Expression
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			step = p.parseExpression(LOWEST)
		}
		if !p.expectPeek(lexer.DO) {
			return nil
		}
		p.nextToken()
		body := p.parseBlockStatement(lexer.END)
		if !p.curTokenIs(lexer.END) {
			p.addError("expected 'end' to close 'for'")
		}
		return &ast.ForNumericStatement{Token: tok, Name: firstName, Start: start, Stop: stop, Step: step, Body: body}

	case p.peekTokenIs(lexer.COMMA):
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		valName := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if !p.expectPeek(lexer.IN) {
			return nil
		}
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		iterName := p.curToken.Literal
		if !p.expectPeek(lexer.LPAREN) {
			return nil
		}
		iterCall := &ast.CallExpression{Token: p.curToken, Name: iterName}
		iterCall.Arguments = p.parseExpressionList(lexer.RPAREN)
		if !p.expectPeek(lexer.DO) {
			return nil
		}
		p.nextToken()
		body := p.parseBlockStatement(lexer.END)
		if !p.curTokenIs(lexer.END) {
			p.addError("expected 'end' to close 'for'")
		}
		return &ast.ForInStatement{Token: tok, KeyName: firstName, ValName: valName, Iterator: iterCall, Body: body}

	default:
		p.addError("expected '=' or ',' after for-loop variable %q", firstName.Value)
		return nil
	}
}

func (p *Parser) parseFunctionDeclStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	var params []ast.FunctionParam
	if !p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		for {
			if !p.curTokenIs(lexer.IDENT) {
				p.addError("expected a parameter name, got %q", p.curToken.Literal)
				break
			}
			pname := p.curToken.Literal
			if !p.expectPeek(lexer.COLON) {
				return nil
			}
			p.nextToken()
			ptype := p.parseTypeExpr()
			params = append(params, ast.FunctionParam{Name: pname, Type: ptype})
			if p.peekTokenIs(lexer.COMMA) {
				p.nextToken()
				p.nextToken()
				continue
			}
			break
		}
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	retType := p.parseTypeExpr()
	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockStatement(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.addError("expected 'end' to close function %q", name.Value)
	}
	return &ast.FunctionDeclStatement{Token: tok, Name: name, Params: params, ReturnType: retType, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	switch p.peekToken.Type {
	case lexer.END, lexer.ELSE, lexer.ELSEIF, lexer.EOF, lexer.SEMICOLON:
		return &ast.ReturnStatement{Token: tok}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	return &ast.ReturnStatement{Token: tok, Value: val}
}
