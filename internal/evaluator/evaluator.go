package evaluator

import (
	"context"

	"github.com/nanolang/nano/internal/ast"
	"github.com/nanolang/nano/internal/config"
)

// Evaluator walks an expression tree and produces a value or an Error
// object. It holds no mutable language state: environments are
// immutable and all bindings live in them, so one Evaluator can be
// reused across independent evaluations.
type Evaluator struct {
	// Context, when set, cancels in-flight evaluation. This is a host
	// budget: the language itself has no suspension points.
	Context context.Context

	// MaxDepth bounds Eval nesting to keep runaway language-level
	// recursion from exhausting the Go stack.
	MaxDepth int

	// evalDepth tracks the current nesting depth of Eval calls
	evalDepth int
}

func New() *Evaluator {
	return &Evaluator{MaxDepth: config.DefaultMaxEvalDepth}
}

func (e *Evaluator) Eval(node ast.Expression, env *Environment) Object {
	e.evalDepth++
	defer func() { e.evalDepth-- }()

	if e.evalDepth > e.MaxDepth {
		return newError(InternalError, "maximum recursion depth exceeded")
	}

	if e.Context != nil {
		select {
		case <-e.Context.Done():
			return newError(InternalError, "evaluation cancelled: %v", e.Context.Err())
		default:
		}
	}

	obj := e.evalCore(node, env)
	if err, ok := obj.(*Error); ok && node != nil {
		if err.Line == 0 {
			tok := node.GetToken()
			err.Line = tok.Line
			err.Column = tok.Column
		}
	}
	return obj
}

func (e *Evaluator) evalCore(node ast.Expression, env *Environment) Object {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}

	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)

	case *ast.NilLiteral:
		return NIL

	case *ast.Identifier:
		if val, ok := env.Get(node.Value); ok {
			return val
		}
		return newError(UnboundVariable, "unbound variable: %s", node.Value)

	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.LetExpression:
		return e.evalLetExpression(node, env)

	case *ast.LambdaLiteral:
		return &Function{Parameter: node.Parameter.Value, Body: node.Body, Env: env}

	case *ast.CallExpression:
		return e.evalCallExpression(node, env)

	default:
		return newError(InternalError, "unrecognized expression node %T", node)
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *Environment) Object {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}

	pred, ok := condition.(*Boolean)
	if !ok {
		return newError(TypeError, "if predicate must be a boolean, got %s", condition.Type())
	}
	// Exactly one branch is evaluated.
	if pred.Value {
		return e.Eval(node.Consequence, env)
	}
	return e.Eval(node.Alternative, env)
}

// evalLetExpression binds one name. When the bound expression is a
// lambda, the closure's captured environment is the extended
// environment itself, so the function can call itself by name. The
// frame is created with an empty slot and patched once the closure
// exists; the lambda never reads the slot before then because closure
// construction does not evaluate the body.
//
// A non-lambda bound expression is evaluated in the outer environment:
// a strict evaluator has no useful self-view for it (the original
// semantics diverge on such programs).
func (e *Evaluator) evalLetExpression(node *ast.LetExpression, env *Environment) Object {
	if lambda, ok := node.Value.(*ast.LambdaLiteral); ok {
		inner := env.Extend(node.Name.Value, nil)
		fn := &Function{Parameter: lambda.Parameter.Value, Body: lambda.Body, Env: inner}
		inner.patch(fn)
		return e.Eval(node.Body, inner)
	}

	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	return e.Eval(node.Body, env.Extend(node.Name.Value, val))
}

// evalCallExpression applies a closure or a prelude primitive. The
// argument is evaluated in the caller's environment; a closure's body
// then runs in its captured environment extended with the parameter —
// free variables resolve where the function was defined, not where it
// is called.
func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	fn := e.Eval(node.Function, env)
	if isError(fn) {
		return fn
	}

	arg := e.Eval(node.Argument, env)
	if isError(arg) {
		return arg
	}

	switch fn := fn.(type) {
	case *Function:
		return e.Eval(fn.Body, fn.Env.Extend(fn.Parameter, arg))
	case *Builtin:
		return fn.Fn(arg)
	default:
		return newError(TypeError, "not a function: %s", fn.Type())
	}
}
