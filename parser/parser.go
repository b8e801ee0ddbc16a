package parser

import (
	"fmt"
	"strconv"

	"github.com/jabley/monkeyinterpreter/ast"
	"github.com/jabley/monkeyinterpreter/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Tokenizer is the source of tokens for a Parser. *lexer.Lexer satisfies it.
// After the input is exhausted NextToken must keep returning token.EOF.
type Tokenizer interface {
	NextToken() token.Token
}

// Error is a syntax error found at Token.
type Error struct {
	Token token.Token
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, e.Msg)
}

// Parser is the parser for Monkey programs
type Parser struct {
	l         Tokenizer
	curToken  token.Token
	peekToken token.Token
	errors    []*Error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a new Parser which wraps the provided Tokenizer
func New(l Tokenizer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.Ident:    p.parseIdentifier,
		token.Int:      p.parseIntegerLiteral,
		token.String:   p.parseStringLiteral,
		token.True:     p.parseBoolean,
		token.False:    p.parseBoolean,
		token.Bang:     p.parsePrefixExpression,
		token.Minus:    p.parsePrefixExpression,
		token.LParen:   p.parseGroupedExpression,
		token.If:       p.parseIfExpression,
		token.Function: p.parseFunctionLiteral,
		token.Macro:    p.parseMacroLiteral,
		token.LBracket: p.parseArrayLiteral,
		token.LBrace:   p.parseHashLiteral,
	}

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{
		token.Plus, token.Minus, token.Slash, token.Asterisk, token.Percent,
		token.Eq, token.NotEq, token.Lt, token.Gt, token.LtEq, token.GtEq,
		token.And, token.Or,
	} {
		p.infixParseFns[t] = p.parseInfixExpression
	}
	p.infixParseFns[token.LParen] = p.parseCallExpression
	p.infixParseFns[token.LBracket] = p.parseIndexExpression

	// Read 2 tokens so that curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns any errors resulting from parsing the input, formatted as
// "line:column: message".
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.errors))
	for _, err := range p.errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// ParseErrors returns the errors resulting from parsing the input.
func (p *Parser) ParseErrors() []*Error {
	return p.errors
}

// ParseProgram return the result of complete parsing. Syntax errors do not
// stop parsing; they are collected and available from Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

func (p *Parser) errorf(tok token.Token, format string, a ...interface{}) {
	p.errors = append(p.errors, &Error{Token: tok, Msg: fmt.Sprintf(format, a...)})
}

func (p *Parser) peekError(t token.Type) {
	p.errorf(p.peekToken, "expected next token to be %s, got %s instead", t, p.peekToken.Type)
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.errorf(p.curToken, "no prefix parse function for %s found", t)
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}

	p.peekError(t)
	return false
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.Ident) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.Assign) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(token.SemiColon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(Lowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(token.SemiColon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(Lowest)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekTokenIs(token.SemiColon) {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the Pratt loop. It keeps folding infix operators into
// the left expression while the next operator binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && !p.peekTokenIs(token.SemiColon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf(p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}

	lit.Value = value

	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.True)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(Prefix)
	if expression.Right == nil {
		return nil
	}

	return expression
}

// parseInfixExpression parses the right operand at the operator's own
// precedence, which makes every binary operator left-associative.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()

	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(Lowest)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RParen) {
		return nil
	}

	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(Lowest)
	if expression.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.RParen) {
		return nil
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.Else) {
		p.nextToken()

		if !p.expectPeek(token.LBrace) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

// parseBlockStatement is entered on the { token and leaves curToken on the
// matching } (or EOF if the block is never closed).
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.errorf(p.curToken, "expected next token to be %s, got %s instead", token.RBrace, token.EOF)
	}

	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	lit.Parameters = params

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseMacroLiteral() ast.Expression {
	lit := &ast.MacroLiteral{Token: p.curToken}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	lit.Parameters = params

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return identifiers, true
	}

	if !p.expectPeek(token.Ident) {
		return nil, false
	}
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		if !p.expectPeek(token.Ident) {
			return nil, false
		}
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RParen) {
		return nil, false
	}

	return identifiers, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}

	args, ok := p.parseExpressionList(token.RParen)
	if !ok {
		return nil
	}
	exp.Arguments = args

	return exp
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	array := &ast.ArrayLiteral{Token: p.curToken}

	elements, ok := p.parseExpressionList(token.RBracket)
	if !ok {
		return nil
	}
	array.Elements = elements

	return array
}

// parseExpressionList parses a comma separated list of expressions up to and
// including end.
func (p *Parser) parseExpressionList(end token.Type) ([]ast.Expression, bool) {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	exp := p.parseExpression(Lowest)
	if exp == nil {
		return nil, false
	}
	list = append(list, exp)

	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		p.nextToken()

		exp := p.parseExpression(Lowest)
		if exp == nil {
			return nil, false
		}
		list = append(list, exp)
	}

	if !p.expectPeek(end) {
		return nil, false
	}

	return list, true
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: p.curToken, Left: left}

	p.nextToken()
	exp.Index = p.parseExpression(Lowest)
	if exp.Index == nil {
		return nil
	}

	if !p.expectPeek(token.RBracket) {
		return nil
	}

	return exp
}

func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.curToken}
	hash.Pairs = []ast.HashPair{}

	for !p.peekTokenIs(token.RBrace) {
		p.nextToken()
		key := p.parseExpression(Lowest)
		if key == nil {
			return nil
		}

		if !p.expectPeek(token.Colon) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(Lowest)
		if value == nil {
			return nil
		}

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !p.peekTokenIs(token.RBrace) && !p.expectPeek(token.Comma) {
			return nil
		}
	}

	if !p.expectPeek(token.RBrace) {
		return nil
	}

	return hash
}
