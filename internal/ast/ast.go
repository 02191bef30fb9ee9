package ast

import (
	"github.com/nanolang/nano/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Expression is a Node produced by the parser and consumed read-only by
// the evaluator. Nano is an expression language: there are no statements.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Operator identifies a binary operator. The set is closed; the
// evaluator dispatches exhaustively over it.
type Operator string

const (
	OpPlus  Operator = "+"
	OpMinus Operator = "-"
	OpMul   Operator = "*"
	OpLt    Operator = "<"
	OpLe    Operator = "<="
	OpEq    Operator = "=="
	OpNe    Operator = "!="
	OpAnd   Operator = "&&"
	OpOr    Operator = "||"
	OpCons  Operator = "::"
)

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// BooleanLiteral represents the literals true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token {
	if bl == nil {
		return token.Token{}
	}
	return bl.Token
}

// NilLiteral represents the empty list literal [].
type NilLiteral struct {
	Token token.Token
}

func (nl *NilLiteral) expressionNode()      {}
func (nl *NilLiteral) TokenLiteral() string { return nl.Token.Lexeme }
func (nl *NilLiteral) GetToken() token.Token {
	if nl == nil {
		return token.Token{}
	}
	return nl.Token
}

// Identifier represents a variable reference.
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// InfixExpression represents a binary operation, e.g. a + b or x :: xs.
type InfixExpression struct {
	Token    token.Token // the operator token
	Operator Operator
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// IfExpression represents a conditional:
// if cond { consequence } else { alternative }
// Both branches are mandatory; exactly one is evaluated.
type IfExpression struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// LetExpression represents a binding: let name = value in body.
// The binding is visible inside value itself when value is a lambda,
// which is what makes named self-recursion work.
type LetExpression struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Value Expression
	Body  Expression
}

func (le *LetExpression) expressionNode()      {}
func (le *LetExpression) TokenLiteral() string { return le.Token.Lexeme }
func (le *LetExpression) GetToken() token.Token {
	if le == nil {
		return token.Token{}
	}
	return le.Token
}

// LambdaLiteral represents an abstraction: \param -> body.
type LambdaLiteral struct {
	Token     token.Token // the '\' token
	Parameter *Identifier
	Body      Expression
}

func (ll *LambdaLiteral) expressionNode()      {}
func (ll *LambdaLiteral) TokenLiteral() string { return ll.Token.Lexeme }
func (ll *LambdaLiteral) GetToken() token.Token {
	if ll == nil {
		return token.Token{}
	}
	return ll.Token
}

// CallExpression represents an application: callee(arg).
type CallExpression struct {
	Token    token.Token // the '(' token
	Function Expression
	Argument Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}
