package evaluator

import "github.com/nanolang/nano/internal/ast"

// evalInfixExpression evaluates both operands eagerly, then dispatches
// on the operator. && and || deliberately evaluate both sides before
// the type check — successful evaluation of each operand is a
// precondition of the check, so there is no short-circuit: even
// true || <failing expr> fails.
func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case ast.OpPlus, ast.OpMinus, ast.OpMul, ast.OpLt, ast.OpLe:
		return evalIntegerInfixExpression(node.Operator, left, right)
	case ast.OpEq, ast.OpNe:
		return evalEqualityExpression(node.Operator, left, right)
	case ast.OpAnd, ast.OpOr:
		return evalBooleanInfixExpression(node.Operator, left, right)
	case ast.OpCons:
		// Cons never type-checks: any value may be a tail. head/tail
		// impose their own checks.
		return &Pair{Head: left, Tail: right}
	default:
		return newError(InternalError, "unknown operator: %s", node.Operator)
	}
}

func evalIntegerInfixExpression(op ast.Operator, left, right Object) Object {
	lval, lok := left.(*Integer)
	rval, rok := right.(*Integer)
	if !lok || !rok {
		return newError(TypeError, "operator %s expects integers, got %s and %s",
			op, left.Type(), right.Type())
	}

	switch op {
	case ast.OpPlus:
		return &Integer{Value: lval.Value + rval.Value}
	case ast.OpMinus:
		return &Integer{Value: lval.Value - rval.Value}
	case ast.OpMul:
		return &Integer{Value: lval.Value * rval.Value}
	case ast.OpLt:
		return nativeBoolToBooleanObject(lval.Value < rval.Value)
	case ast.OpLe:
		return nativeBoolToBooleanObject(lval.Value <= rval.Value)
	default:
		return newError(InternalError, "unknown integer operator: %s", op)
	}
}

// evalEqualityExpression dispatches == and != on the runtime shapes of
// both operands. Nil compares unequal-but-compatible with any non-nil
// value; that is the one sanctioned cross-shape comparison. Integers
// compare with integers and booleans with booleans; every other
// combination is a type error.
func evalEqualityExpression(op ast.Operator, left, right Object) Object {
	eq, ok := shapeEqual(left, right)
	if !ok {
		return newError(TypeError, "incompatible types for %s: %s and %s",
			op, left.Type(), right.Type())
	}
	if op == ast.OpNe {
		eq = !eq
	}
	return nativeBoolToBooleanObject(eq)
}

func shapeEqual(left, right Object) (equal, compatible bool) {
	leftNil := left.Type() == NIL_OBJ
	rightNil := right.Type() == NIL_OBJ
	switch {
	case leftNil && rightNil:
		return true, true
	case leftNil != rightNil:
		return false, true
	}

	if lval, ok := left.(*Integer); ok {
		if rval, ok := right.(*Integer); ok {
			return lval.Value == rval.Value, true
		}
	}
	if lval, ok := left.(*Boolean); ok {
		if rval, ok := right.(*Boolean); ok {
			return lval.Value == rval.Value, true
		}
	}
	return false, false
}

func evalBooleanInfixExpression(op ast.Operator, left, right Object) Object {
	lval, lok := left.(*Boolean)
	rval, rok := right.(*Boolean)
	if !lok || !rok {
		return newError(TypeError, "operator %s expects booleans, got %s and %s",
			op, left.Type(), right.Type())
	}

	switch op {
	case ast.OpAnd:
		return nativeBoolToBooleanObject(lval.Value && rval.Value)
	case ast.OpOr:
		return nativeBoolToBooleanObject(lval.Value || rval.Value)
	default:
		return newError(InternalError, "unknown boolean operator: %s", op)
	}
}
