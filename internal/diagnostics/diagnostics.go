// Package diagnostics carries positioned, coded errors from the lexer
// and parser to the driver. Runtime errors are a separate mechanism
// (evaluator Error objects); diagnostics cover everything before
// evaluation starts.
package diagnostics

import (
	"fmt"

	"github.com/nanolang/nano/internal/token"
)

// Stable error codes, one per failure class. Codes are part of the CLI
// output contract, so tests match on them.
const (
	ErrL001 = "L001" // illegal character
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // no prefix parse rule
	ErrP003 = "P003" // integer literal out of range
	ErrP004 = "P004" // expression nesting too deep
	ErrP005 = "P005" // trailing input after expression
)

type Error struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code string, tok token.Token, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
}
