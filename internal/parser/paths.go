package parser

import (
	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/lexer"
)

// parseIdentPath handles a bare name: a function call if followed by "(",
// otherwise an AttrRef or, once dot-chained, a Dotted.
func (p *Parser) parseIdentPath() ast.Expression {
	tok := p.cur
	if p.peekTokenIs(lexer.LPAREN) {
		return p.parseCall(tok)
	}

	names := []string{tok.Literal}
	for p.peekTokenIs(lexer.DOT) {
		p.nextToken() // consume "."
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		names = append(names, p.cur.Literal)
	}
	if len(names) == 1 {
		return &ast.AttrRef{BaseNode: ast.BaseNode{Token: tok}, Name: names[0]}
	}
	return &ast.Dotted{BaseNode: ast.BaseNode{Token: tok}, Names: names}
}

// parseAbsolutePath handles a leading-dot reference, resolved from the
// root of `my`.
func (p *Parser) parseAbsolutePath() ast.Expression {
	tok := p.cur
	names := p.parseDottedNames()
	if names == nil {
		return nil
	}
	return &ast.AbsoluteRef{BaseNode: ast.BaseNode{Token: tok}, Names: names}
}

// parseScopePath handles my/target/parent/super, optionally followed by a
// dotted attribute path. A bare scope keyword with no path denotes the
// whole record at that scope.
func (p *Parser) parseScopePath() ast.Expression {
	tok := p.cur
	if tok.Type == lexer.SUPER {
		p.errorf("%q is not supported", tok.Literal)
		return nil
	}
	var scope ast.ScopeKeyword
	switch tok.Type {
	case lexer.MY_KW:
		scope = ast.ScopeMy
	case lexer.TARGET:
		scope = ast.ScopeTarget
	case lexer.PARENT:
		scope = ast.ScopeParent
	}
	if !p.peekTokenIs(lexer.DOT) {
		return &ast.ScopeRef{BaseNode: ast.BaseNode{Token: tok}, Scope: scope}
	}
	p.nextToken() // consume "."
	names := p.parseDottedNames()
	if names == nil {
		return nil
	}
	return &ast.ScopeRef{BaseNode: ast.BaseNode{Token: tok}, Scope: scope, Names: names}
}

// parseDottedNames expects cur positioned on a "." and consumes
// "name (. name)*", leaving cur on the last name.
func (p *Parser) parseDottedNames() []string {
	var names []string
	for {
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		names = append(names, p.cur.Literal)
		if !p.peekTokenIs(lexer.DOT) {
			break
		}
		p.nextToken()
	}
	return names
}
