package evaluator

import (
	"fmt"

	"github.com/nanolang/nano/internal/ast"
)

// Function is a closure: a lambda's parameter and body together with
// the environment captured when the lambda was evaluated. The capture
// is by reference; environments are immutable so sharing is safe.
type Function struct {
	Parameter string
	Body      ast.Expression
	Env       *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return fmt.Sprintf("\\%s -> <body>", f.Parameter) }

// Builtin is a prelude primitive: a unary Go function from value to
// value, opaque to the evaluator.
type Builtin struct {
	Name string
	Fn   func(arg Object) Object
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return fmt.Sprintf("builtin function %s", b.Name) }
