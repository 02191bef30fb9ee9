package evaluator

import "github.com/nanolang/nano/internal/config"

// Builtins are the prelude primitives. The set is fixed: head and tail.
var Builtins = map[string]*Builtin{
	config.HeadFuncName: {
		Name: config.HeadFuncName,
		Fn:   builtinHead,
	},
	config.TailFuncName: {
		Name: config.TailFuncName,
		Fn:   builtinTail,
	},
}

// NewPreludeEnvironment returns the initial environment every
// evaluation starts from: exactly the head and tail bindings.
func NewPreludeEnvironment() *Environment {
	var env *Environment
	env = env.Extend(config.HeadFuncName, Builtins[config.HeadFuncName])
	env = env.Extend(config.TailFuncName, Builtins[config.TailFuncName])
	return env
}

func builtinHead(arg Object) Object {
	switch arg := arg.(type) {
	case *Pair:
		return arg.Head
	case *Nil:
		return newError(EmptyListError, "head of empty list")
	default:
		return newError(TypeError, "head expects a list, got %s", arg.Type())
	}
}

// builtinTail returns nil for the empty list rather than an error;
// only head treats the empty list as a failure.
func builtinTail(arg Object) Object {
	switch arg := arg.(type) {
	case *Pair:
		return arg.Tail
	case *Nil:
		return NIL
	default:
		return newError(TypeError, "tail expects a list, got %s", arg.Type())
	}
}
