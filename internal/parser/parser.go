package parser

import (
	"strconv"

	"github.com/nanolang/nano/internal/ast"
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/pipeline"
	"github.com/nanolang/nano/internal/token"
)

// MaxRecursionDepth bounds expression nesting. Past it the parser
// reports a diagnostic instead of blowing the Go stack.
const MaxRecursionDepth = 500

// Operator precedences, loosest first.
const (
	_ int = iota
	LOWEST
	OR          // ||
	AND         // &&
	EQUALS      // == !=
	LESSGREATER // < <=
	CONS        // :: (right-associative)
	SUM         // + -
	PRODUCT     // *
	CALL        // f(x)
)

var precedences = map[token.TokenType]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.CONS:     CONS,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

var infixOperators = map[token.TokenType]ast.Operator{
	token.PLUS:     ast.OpPlus,
	token.MINUS:    ast.OpMinus,
	token.ASTERISK: ast.OpMul,
	token.LT:       ast.OpLt,
	token.LE:       ast.OpLe,
	token.EQ:       ast.OpEq,
	token.NOT_EQ:   ast.OpNe,
	token.AND:      ast.OpAnd,
	token.OR:       ast.OpOr,
	token.CONS:     ast.OpCons,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	ctx    *pipeline.PipelineContext
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth int
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{ctx: ctx, tokens: tokens}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.INT:       p.parseIntegerLiteral,
		token.TRUE:      p.parseBooleanLiteral,
		token.FALSE:     p.parseBooleanLiteral,
		token.IDENT:     p.parseIdentifier,
		token.LBRACKET:  p.parseNilLiteral,
		token.LPAREN:    p.parseGroupedExpression,
		token.IF:        p.parseIfExpression,
		token.LET:       p.parseLetExpression,
		token.BACKSLASH: p.parseLambdaLiteral,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.LE:       p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.CONS:     p.parseRightAssocInfixExpression,
		token.LPAREN:   p.parseCallExpression,
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances iff the next token has the expected type. On a
// mismatch it records a diagnostic and returns false.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected %s, got %s", t, p.peekToken.Type,
	))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	what := string(tok.Type)
	if tok.Lexeme != "" {
		what = strconv.Quote(tok.Lexeme)
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		tok,
		"unexpected %s, expected an expression", what,
	))
}

// ParseProgram parses the single expression a Nano program consists of
// and requires the input to end there.
func (p *Parser) ParseProgram() ast.Expression {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.peekTokenIs(token.EOF) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005,
			p.peekToken,
			"trailing input after expression",
		))
		return nil
	}
	return expr
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP004,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"integer literal %s out of range", p.curToken.Lexeme,
		))
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	lit := &ast.NilLiteral{Token: p.curToken}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return lit
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// if cond { consequence } else { alternative }
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	expr.Consequence = p.parseExpression(LOWEST)
	if expr.Consequence == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	if !p.expectPeek(token.ELSE) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	expr.Alternative = p.parseExpression(LOWEST)
	if expr.Alternative == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	return expr
}

// let name = value in body
func (p *Parser) parseLetExpression() ast.Expression {
	expr := &ast.LetExpression{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	expr.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	expr.Value = p.parseExpression(LOWEST)
	if expr.Value == nil {
		return nil
	}

	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	expr.Body = p.parseExpression(LOWEST)
	if expr.Body == nil {
		return nil
	}

	return expr
}

// \param -> body
func (p *Parser) parseLambdaLiteral() ast.Expression {
	lit := &ast.LambdaLiteral{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	lit.Parameter = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	lit.Body = p.parseExpression(LOWEST)
	if lit.Body == nil {
		return nil
	}

	return lit
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: infixOperators[p.curToken.Type],
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseRightAssocInfixExpression parses right-associative operators
// like :: by recursing at one precedence level lower, so
// 1 :: 2 :: [] groups as 1 :: (2 :: []).
func (p *Parser) parseRightAssocInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: infixOperators[p.curToken.Type],
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence - 1)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// callee(arg) — one argument per application; f(x)(y) chains.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: function}

	p.nextToken()
	expr.Argument = p.parseExpression(LOWEST)
	if expr.Argument == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return expr
}
