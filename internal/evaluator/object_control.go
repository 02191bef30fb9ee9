package evaluator

import "fmt"

// ErrorKind tags a runtime failure with its class. The driver keys its
// rendering on the kind; the evaluator never inspects it again after
// construction.
type ErrorKind string

const (
	UnboundVariable ErrorKind = "UnboundVariable"
	TypeError       ErrorKind = "TypeError"
	EmptyListError  ErrorKind = "EmptyListError"
	InternalError   ErrorKind = "InternalError"
)

// Error aborts the evaluation that produced it: every intermediate
// result is checked and an Error is returned unchanged all the way to
// the caller of Eval. No partial results survive.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	if e.Line > 0 {
		return fmt.Sprintf("ERROR [%s] at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("ERROR [%s]: %s", e.Kind, e.Message)
}
