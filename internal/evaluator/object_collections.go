package evaluator

import "strings"

// Pair is a cons cell. A proper list is a right-nested chain of pairs
// terminated by NIL, but nothing enforces that shape: :: accepts any
// tail, and head/tail apply their own checks at use time.
type Pair struct {
	Head Object
	Tail Object
}

func (p *Pair) Type() ObjectType { return PAIR_OBJ }

// Inspect renders proper lists as [1, 2, 3]; an improper tail is shown
// cons-style, e.g. (1 :: 2).
func (p *Pair) Inspect() string {
	var elems []string
	cur := p
	for {
		elems = append(elems, cur.Head.Inspect())
		switch tail := cur.Tail.(type) {
		case *Nil:
			return "[" + strings.Join(elems, ", ") + "]"
		case *Pair:
			cur = tail
		default:
			elems = append(elems, tail.Inspect())
			return "(" + strings.Join(elems, " :: ") + ")"
		}
	}
}
