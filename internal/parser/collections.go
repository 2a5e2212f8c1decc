package parser

import (
	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/lexer"
)

func (p *Parser) parseCall(nameTok lexer.Token) ast.Expression {
	p.nextToken() // cur = "("
	args := p.parseExpressionList(lexer.RPAREN)
	return &ast.Call{BaseNode: ast.BaseNode{Token: nameTok}, Name: nameTok.Literal, Args: args}
}

func (p *Parser) parseListLit() ast.Expression {
	tok := p.cur // "{"
	elems := p.parseExpressionList(lexer.RBRACE)
	return &ast.ListLit{BaseNode: ast.BaseNode{Token: tok}, Elements: elems}
}

// parseExpressionList parses a comma-separated list up to and including
// end, leaving cur on end. Called with cur positioned on the opening
// delimiter.
func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	list = append(list, first)
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		e := p.parseExpression(LOWEST)
		if e == nil {
			return nil
		}
		list = append(list, e)
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseRecordLit parses the bracketed record form:
// "[" attr_def (";" attr_def)* ";"? "]".
func (p *Parser) parseRecordLit() ast.Expression {
	tok := p.cur // "["
	attrs, ok := p.parseAttrDefs(lexer.RBRACK)
	if !ok {
		return nil
	}
	return &ast.RecordLit{BaseNode: ast.BaseNode{Token: tok}, Attrs: attrs}
}

// parseAttrDefs parses a sequence of "name = expression" pairs separated
// by ";" (and, in stream form, bare whitespace), stopping at end (RBRACK
// for the bracketed form, EOF for the top-level attribute stream).
// Called with cur positioned on the delimiter preceding the first
// attr_def (the "[", or the first attribute name itself at top level).
func (p *Parser) parseAttrDefs(end lexer.TokenType) ([]ast.RecordAttr, bool) {
	var attrs []ast.RecordAttr
	if end != lexer.EOF {
		p.nextToken() // consume "["
	}
	for !p.curTokenIs(end) && !p.curTokenIs(lexer.EOF) {
		if !p.curTokenIs(lexer.IDENT) {
			p.errorf("expected attribute name, found %s", p.cur.Type)
			return nil, false
		}
		name := p.cur.Literal
		if !p.expectPeek(lexer.ASSIGN) {
			return nil, false
		}
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil, false
		}
		attrs = append(attrs, ast.RecordAttr{Name: name, Expr: expr})
		p.nextToken()
		if end != lexer.EOF && !p.curTokenIs(lexer.SEMI) && !p.curTokenIs(end) {
			p.errorf("expected ; or %s, found %s", end, p.cur.Type)
			return nil, false
		}
		for p.curTokenIs(lexer.SEMI) {
			p.nextToken()
		}
	}
	if end != lexer.EOF && !p.curTokenIs(end) {
		p.errorf("expected %s, found %s", end, p.cur.Type)
		return nil, false
	}
	return attrs, true
}
