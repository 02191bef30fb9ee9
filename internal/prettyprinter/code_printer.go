// Package prettyprinter renders an AST back to Nano source. The REPL
// and tests use it to show what the parser actually built.
package prettyprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nanolang/nano/internal/ast"
)

// Operator precedence (higher = binds tighter). Mirrors the parser's
// table so printed output re-parses to the same tree with a minimum
// of parentheses.
var operatorPrecedence = map[ast.Operator]int{
	ast.OpOr:    1,
	ast.OpAnd:   2,
	ast.OpEq:    3,
	ast.OpNe:    3,
	ast.OpLt:    4,
	ast.OpLe:    4,
	ast.OpCons:  5,
	ast.OpPlus:  6,
	ast.OpMinus: 6,
	ast.OpMul:   7,
}

// Right-associative operators
var rightAssoc = map[ast.Operator]bool{
	ast.OpCons: true,
}

// Print renders expr as source code.
func Print(expr ast.Expression) string {
	return printExpr(expr, 0)
}

func printExpr(expr ast.Expression, parentPrec int) string {
	switch expr := expr.(type) {
	case *ast.IntegerLiteral:
		return strconv.FormatInt(expr.Value, 10)

	case *ast.BooleanLiteral:
		return strconv.FormatBool(expr.Value)

	case *ast.NilLiteral:
		return "[]"

	case *ast.Identifier:
		return expr.Value

	case *ast.InfixExpression:
		prec := operatorPrecedence[expr.Operator]
		leftPrec, rightPrec := prec, prec
		if rightAssoc[expr.Operator] {
			rightPrec = prec - 1
		} else {
			leftPrec = prec - 1
		}
		s := fmt.Sprintf("%s %s %s",
			printExpr(expr.Left, leftPrec),
			expr.Operator,
			printExpr(expr.Right, rightPrec))
		if prec <= parentPrec {
			return "(" + s + ")"
		}
		return s

	case *ast.IfExpression:
		return fmt.Sprintf("if %s { %s } else { %s }",
			printExpr(expr.Condition, 0),
			printExpr(expr.Consequence, 0),
			printExpr(expr.Alternative, 0))

	case *ast.LetExpression:
		return fmt.Sprintf("let %s = %s in %s",
			expr.Name.Value,
			printExpr(expr.Value, 0),
			printExpr(expr.Body, 0))

	case *ast.LambdaLiteral:
		s := fmt.Sprintf("\\%s -> %s", expr.Parameter.Value, printExpr(expr.Body, 0))
		if parentPrec > 0 {
			return "(" + s + ")"
		}
		return s

	case *ast.CallExpression:
		callee := printExpr(expr.Function, 0)
		switch expr.Function.(type) {
		case *ast.Identifier, *ast.CallExpression:
			// already tight enough
		default:
			callee = "(" + callee + ")"
		}
		return fmt.Sprintf("%s(%s)", callee, printExpr(expr.Argument, 0))

	default:
		return fmt.Sprintf("<unknown %T>", expr)
	}
}

// PrintAll is a convenience for diagnostics in tests.
func PrintAll(exprs []ast.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Print(e)
	}
	return strings.Join(parts, "\n")
}
