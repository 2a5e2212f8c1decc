// Package parser implements a precedence-climbing (Pratt) parser from
// ClassAd source text to the AST defined in internal/ast. One
// prefixParseFn per atom-leading token type and one infixParseFn per
// binary/suffix operator drive parsing, keyed by token type exactly as
// the grammar's precedence table dictates.
package parser

import (
	"fmt"

	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/classaderr"
	"github.com/classad-go/classad/internal/lexer"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into a single root ast.Expression.
type Parser struct {
	l      *lexer.Lexer
	source string
	file   string

	cur  lexer.Token
	peek lexer.Token

	errors []*classaderr.ParseError

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over source. file is used only for error messages
// (pass "" when there is none).
func New(source, file string) *Parser {
	p := &Parser{l: lexer.New(source), source: source, file: file}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:     p.parseIdentPath,
		lexer.INT:       p.parseIntegerLiteral,
		lexer.FLOAT:     p.parseRealLiteral,
		lexer.STRING:    p.parseStringLiteral,
		lexer.TRUE:      p.parseBoolLiteral,
		lexer.FALSE:     p.parseBoolLiteral,
		lexer.ERROR:     p.parseErrorLiteral,
		lexer.UNDEFINED: p.parseUndefinedLiteral,
		lexer.BANG:      p.parseUnary,
		lexer.MINUS:     p.parseUnary,
		lexer.LPAREN:    p.parseGrouped,
		lexer.LBRACK:    p.parseRecordLit,
		lexer.LBRACE:    p.parseListLit,
		lexer.DOT:       p.parseAbsolutePath,
		lexer.MY_KW:     p.parseScopePath,
		lexer.TARGET:    p.parseScopePath,
		lexer.PARENT:    p.parseScopePath,
		lexer.SUPER:     p.parseScopePath,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.OR:       p.parseBinary,
		lexer.AND:      p.parseBinary,
		lexer.EQ:       p.parseBinary,
		lexer.NOT_EQ:   p.parseBinary,
		lexer.META_EQ:  p.parseBinary,
		lexer.META_NEQ: p.parseBinary,
		lexer.IS:       p.parseBinary,
		lexer.ISNT:     p.parseBinary,
		lexer.LT:       p.parseBinary,
		lexer.LE:       p.parseBinary,
		lexer.GT:       p.parseBinary,
		lexer.GE:       p.parseBinary,
		lexer.PLUS:     p.parseBinary,
		lexer.MINUS:    p.parseBinary,
		lexer.ASTERISK: p.parseBinary,
		lexer.SLASH:    p.parseBinary,
		lexer.QUESTION: p.parseTernary,
		lexer.DOT:      p.parseDotMember,
		lexer.LBRACK:   p.parseSubscript,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses source as either a bracketed/standalone expression or a
// bare attribute stream, returning the root Expression and any parse
// errors. Non-empty errors means expr is nil; no partial tree is ever
// returned.
func Parse(source string) (ast.Expression, []*classaderr.ParseError) {
	return ParseFile(source, "")
}

// ParseFile is Parse with a file name attached to error messages.
func ParseFile(source, file string) (ast.Expression, []*classaderr.ParseError) {
	p := New(source, file)
	expr := p.parseProgram()
	p.collectLexerErrors()
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return expr, nil
}

func (p *Parser) parseProgram() ast.Expression {
	if p.looksLikeStream() {
		tok := p.cur
		attrs, ok := p.parseAttrDefs(lexer.EOF)
		if !ok {
			return nil
		}
		return &ast.RecordLit{BaseNode: ast.BaseNode{Token: tok}, Attrs: attrs}
	}
	expr := p.parseExpression(LOWEST)
	if !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		p.errorf("unexpected trailing input %s", p.cur)
		return nil
	}
	if len(p.errors) > 0 {
		return nil
	}
	return expr
}

// looksLikeStream recognizes the bare attribute-stream top-level form:
// the input opens with `name =`, which is never the start of a valid
// standalone expression.
func (p *Parser) looksLikeStream() bool {
	return p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.ASSIGN)
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peek.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, found %s", t, p.peek.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, classaderr.NewParseError(p.cur.Pos, fmt.Sprintf(format, args...), p.source, p.file))
}

func (p *Parser) collectLexerErrors() {
	for _, e := range p.l.Errors() {
		p.errors = append(p.errors, classaderr.NewParseError(e.Pos, e.Message, p.source, p.file))
	}
}

// parseExpression is the core Pratt loop: a prefix handler produces the
// left operand, then infix handlers fold in any operator whose
// precedence exceeds the caller's binding power.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.cur.Type]
	if prefix == nil {
		p.errorf("unexpected token %s", p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}
