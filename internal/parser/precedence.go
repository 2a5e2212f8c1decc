package parser

import "github.com/classad-go/classad/internal/lexer"

// Precedence levels, lowest to highest: ||, &&, the equality family
// {== != =?= is =!= isnt}, relational {< <= >= >}, additive {+ -},
// multiplicative {* /}, then unary. TERNARY sits above LOWEST so a bare `?` at the top of an
// expression is always recognized; the ternary arms recurse back through
// parseExpression(LOWEST) so nesting on either side is unrestricted.
const (
	LOWEST int = iota
	TERNARY
	LOGICAL_OR
	LOGICAL_AND
	EQUALITY
	RELATIONAL
	ADDITIVE
	MULTIPLICATIVE
	PREFIX
	SUFFIX
)

var precedences = map[lexer.TokenType]int{
	lexer.QUESTION: TERNARY,
	lexer.OR:       LOGICAL_OR,
	lexer.AND:      LOGICAL_AND,
	lexer.EQ:       EQUALITY,
	lexer.NOT_EQ:   EQUALITY,
	lexer.META_EQ:  EQUALITY,
	lexer.META_NEQ: EQUALITY,
	lexer.IS:       EQUALITY,
	lexer.ISNT:     EQUALITY,
	lexer.LT:       RELATIONAL,
	lexer.LE:       RELATIONAL,
	lexer.GT:       RELATIONAL,
	lexer.GE:       RELATIONAL,
	lexer.PLUS:     ADDITIVE,
	lexer.MINUS:    ADDITIVE,
	lexer.ASTERISK: MULTIPLICATIVE,
	lexer.SLASH:    MULTIPLICATIVE,
	lexer.DOT:      SUFFIX,
	lexer.LBRACK:   SUFFIX,
}
