package parser

import (
	"strconv"
	"strings"

	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/lexer"
)

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	lit := tok.Literal
	var v int64
	var err error
	switch {
	case strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X"):
		v, err = strconv.ParseInt(lit[2:], 16, 64)
	case len(lit) > 1 && lit[0] == '0':
		v, err = strconv.ParseInt(lit, 8, 64)
	default:
		v, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		p.errorf("invalid integer literal %q", lit)
		return nil
	}
	return &ast.IntegerLiteral{BaseNode: ast.BaseNode{Token: tok}, Value: v}
}

func (p *Parser) parseRealLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf("invalid real literal %q", tok.Literal)
		return nil
	}
	return &ast.RealLiteral{BaseNode: ast.BaseNode{Token: tok}, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	return &ast.StringLiteral{BaseNode: ast.BaseNode{Token: tok}, Value: tok.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.cur
	return &ast.BoolLiteral{BaseNode: ast.BaseNode{Token: tok}, Value: tok.Type == lexer.TRUE}
}

func (p *Parser) parseErrorLiteral() ast.Expression {
	return &ast.ErrorLiteral{BaseNode: ast.BaseNode{Token: p.cur}}
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.UndefinedLiteral{BaseNode: ast.BaseNode{Token: p.cur}}
}
