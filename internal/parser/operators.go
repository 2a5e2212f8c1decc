package parser

import (
	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/lexer"
)

func (p *Parser) parseUnary() ast.Expression {
	tok := p.cur
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return &ast.Unary{BaseNode: ast.BaseNode{Token: tok}, Operator: tok.Type.String(), Operand: operand}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.cur
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.Binary{BaseNode: ast.BaseNode{Token: tok}, Operator: tok.Type.String(), Left: left, Right: right}
}

// parseTernary handles `cond ? then : else` and its elvis form
// `cond ? : else`; both arms recurse through parseExpression(LOWEST) so
// nesting on either side is unrestricted.
func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	tok := p.cur // "?"

	var thenExpr ast.Expression
	if p.peekTokenIs(lexer.COLON) {
		p.nextToken() // cur = ":"
	} else {
		p.nextToken()
		thenExpr = p.parseExpression(LOWEST)
		if thenExpr == nil {
			return nil
		}
		if !p.expectPeek(lexer.COLON) {
			return nil
		}
	}

	p.nextToken()
	elseExpr := p.parseExpression(LOWEST)
	if elseExpr == nil {
		return nil
	}
	return &ast.Ternary{BaseNode: ast.BaseNode{Token: tok}, Cond: cond, Then: thenExpr, Else: elseExpr}
}

func (p *Parser) parseSubscript(base ast.Expression) ast.Expression {
	tok := p.cur // "["
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if idx == nil {
		return nil
	}
	if !p.expectPeek(lexer.RBRACK) {
		return nil
	}
	return &ast.Subscript{BaseNode: ast.BaseNode{Token: tok}, Base: base, Index: idx}
}

// parseDotMember handles a "." suffix following an expression that did not
// already absorb it as part of an identifier chain (e.g. after a call,
// subscript, or parenthesized expression): `expr.name` is equivalent to
// `expr["name"]`.
func (p *Parser) parseDotMember(base ast.Expression) ast.Expression {
	tok := p.cur // "."
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := &ast.StringLiteral{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}
	return &ast.Subscript{BaseNode: ast.BaseNode{Token: tok}, Base: base, Index: name}
}

func (p *Parser) parseGrouped() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}
