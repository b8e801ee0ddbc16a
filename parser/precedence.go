package parser

import "github.com/jabley/monkeyinterpreter/token"

// Binding powers, weakest first.
const (
	_ int = iota
	Lowest
	LogicalOr   // ||
	LogicalAnd  // &&
	Equals      // ==
	LessGreater // > or <
	Sum         // +
	Product     // *
	Prefix      // -X or !X
	Call        // myFunction(X)
	Index       // array[index]
)

var precedences = map[token.Type]int{
	token.Or:       LogicalOr,
	token.And:      LogicalAnd,
	token.Eq:       Equals,
	token.NotEq:    Equals,
	token.Lt:       LessGreater,
	token.Gt:       LessGreater,
	token.LtEq:     LessGreater,
	token.GtEq:     LessGreater,
	token.Plus:     Sum,
	token.Minus:    Sum,
	token.Slash:    Product,
	token.Asterisk: Product,
	token.Percent:  Product,
	token.LParen:   Call,
	token.LBracket: Index,
}

// precedenceOf returns the binding power of t, or Lowest if t is not an
// operator.
func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return Lowest
}

func (p *Parser) peekPrecedence() int {
	return precedenceOf(p.peekToken.Type)
}

func (p *Parser) curPrecedence() int {
	return precedenceOf(p.curToken.Type)
}
