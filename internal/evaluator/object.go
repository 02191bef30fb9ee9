package evaluator

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	BOOLEAN_OBJ  = "BOOLEAN"
	NIL_OBJ      = "NIL"
	PAIR_OBJ     = "PAIR"
	FUNCTION_OBJ = "FUNCTION"
	BUILTIN_OBJ  = "BUILTIN"
	ERROR_OBJ    = "ERROR"
)

// Object is a runtime value. The variant set is closed: the evaluator
// dispatches exhaustively over exactly these types and never coerces
// one into another.
type Object interface {
	Type() ObjectType
	Inspect() string
}
