/*
File    : lumen/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
			return p.parseReassignStatement()
		}
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let name = value;`. A malformed let (missing
// identifier or missing `=`) is recorded as a LetError and nil is
// returned so ParseProgram can resynchronize at the next token.
func (p *Parser) parseLetStatement() ast.Statement {
	letTok := p.curToken

	if !p.expectPeek(token.IDENT) {
		p.errorf("LetError: expected identifier after 'let'")
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		p.errorf("LetError: expected '=' after identifier in let statement")
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		p.errorf("LetError: invalid expression in let statement")
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.LetStatement{Token: letTok, Name: name, Value: value}
}

// parseReassignStatement parses `target = value;` where target has
// already been confirmed to be an identifier followed by `=`. Index
// reassignment (`arr[0] = value;`) is parsed through parseExpressionStatement
// instead, since its left-hand side is only known to be an IndexExpression
// after the full expression has been parsed; the evaluator validates both
// forms uniformly.
func (p *Parser) parseReassignStatement() ast.Statement {
	left := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken() // consume identifier, curToken now '='
	assignTok := p.curToken
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		p.errorf("AssignLHS: invalid expression on right-hand side of assignment")
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ReassignStatement{Token: assignTok, Left: left, Value: value}
}

// parseReturnStatement parses `return value?;`. A bare `return;` yields a
// ReturnStatement with a nil ReturnValue.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	if p.curTokenIs(token.SEMICOLON) {
		return stmt
	}

	stmt.ReturnValue = p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	// `arr[0] = value;` — the left-hand side parsed as an ordinary
	// IndexExpression; if an '=' follows it, this was really a reassign.
	if p.peekTokenIs(token.ASSIGN) {
		if _, ok := stmt.Expression.(*ast.IndexExpression); ok {
			left := stmt.Expression
			p.nextToken() // curToken now '='
			assignTok := p.curToken
			p.nextToken()
			value := p.parseExpression(LOWEST)
			if value == nil {
				p.errorf("AssignLHS: invalid expression on right-hand side of assignment")
				return nil
			}
			if p.peekTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
			return &ast.ReassignStatement{Token: assignTok, Left: left, Value: value}
		}
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseBlockStatement parses `{ stmt* }`. curToken must be '{' on entry;
// on return curToken is the matching '}'.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.errorf("BlockError: unterminated block, expected '}'")
	}
	return block
}
