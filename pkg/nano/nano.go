// Package nano is the embedding API: evaluate Nano source from Go
// without touching the interpreter internals.
//
//	interp := nano.New()
//	result, err := interp.Eval("let x = 2 in x * 21")
//	if err != nil { ... }
//	n, _ := result.Int() // 42
package nano

import (
	"context"
	"errors"
	"fmt"

	"github.com/nanolang/nano/internal/evaluator"
	"github.com/nanolang/nano/internal/lexer"
	"github.com/nanolang/nano/internal/parser"
	"github.com/nanolang/nano/internal/pipeline"
)

// Interpreter evaluates programs against the fixed prelude (head,
// tail). It is cheap to create and safe to reuse; each Eval is
// independent because environments are immutable.
type Interpreter struct {
	eval *evaluator.Evaluator
	env  *evaluator.Environment
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxDepth overrides the evaluation recursion limit.
func WithMaxDepth(depth int) Option {
	return func(i *Interpreter) { i.eval.MaxDepth = depth }
}

// WithContext makes evaluation cancelable by the host.
func WithContext(ctx context.Context) Option {
	return func(i *Interpreter) { i.eval.Context = ctx }
}

func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		eval: evaluator.New(),
		env:  evaluator.NewPreludeEnvironment(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ParseError is returned when the source does not lex or parse. It
// wraps the first diagnostic; Code carries its stable identifier.
type ParseError struct {
	Code    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
}

// RuntimeError is returned when evaluation fails. Kind is the error
// taxonomy tag: UnboundVariable, TypeError, EmptyListError or
// InternalError.
type RuntimeError struct {
	Kind    string
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Eval parses and evaluates one program.
func (i *Interpreter) Eval(src string) (*Result, error) {
	ctx := &pipeline.PipelineContext{FilePath: "<eval>", SourceCode: src}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		d := ctx.Errors[0]
		return nil, &ParseError{Code: d.Code, Line: d.Line, Column: d.Column, Message: d.Message}
	}

	obj := i.eval.Eval(ctx.AstRoot, i.env)
	if err, ok := obj.(*evaluator.Error); ok {
		return nil, &RuntimeError{Kind: string(err.Kind), Message: err.Message}
	}
	return &Result{obj: obj}, nil
}

// Result wraps an evaluation result value.
type Result struct {
	obj evaluator.Object
}

// String renders the value the way the REPL would.
func (r *Result) String() string {
	return r.obj.Inspect()
}

// Int returns the value as a Go int64 when it is an integer.
func (r *Result) Int() (int64, bool) {
	if i, ok := r.obj.(*evaluator.Integer); ok {
		return i.Value, true
	}
	return 0, false
}

// Bool returns the value when it is a boolean.
func (r *Result) Bool() (bool, bool) {
	if b, ok := r.obj.(*evaluator.Boolean); ok {
		return b.Value, true
	}
	return false, false
}

// IsNil reports whether the value is the empty list.
func (r *Result) IsNil() bool {
	_, ok := r.obj.(*evaluator.Nil)
	return ok
}

// IsFunction reports whether the value is a closure or a prelude
// primitive. Function values have no Go representation beyond this.
func (r *Result) IsFunction() bool {
	switch r.obj.(type) {
	case *evaluator.Function, *evaluator.Builtin:
		return true
	}
	return false
}

// ErrImproperList is returned by List for a pair chain that does not
// end in the empty list.
var ErrImproperList = errors.New("not a proper list")

// List unrolls a nil-terminated pair chain into a slice of Results.
func (r *Result) List() ([]*Result, error) {
	var elems []*Result
	obj := r.obj
	for {
		switch v := obj.(type) {
		case *evaluator.Nil:
			return elems, nil
		case *evaluator.Pair:
			elems = append(elems, &Result{obj: v.Head})
			obj = v.Tail
		default:
			return nil, ErrImproperList
		}
	}
}
