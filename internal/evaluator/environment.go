package evaluator

// Environment is an immutable, structurally shared list of bindings.
// Each frame holds one name/value entry and points at the rest;
// extending never copies or mutates existing frames, so closures can
// capture an environment by keeping the pointer, and concurrent
// evaluations may share environments freely.
//
// A nil *Environment is the empty environment.
type Environment struct {
	name  string
	value Object
	next  *Environment
}

// Extend returns a new environment whose first entry is (name, value)
// and whose remaining entries are exactly the receiver.
func (e *Environment) Extend(name string, value Object) *Environment {
	return &Environment{name: name, value: value, next: e}
}

// Get scans from the most recently added entry, so an inner binding
// shadows any older binding of the same name.
func (e *Environment) Get(name string) (Object, bool) {
	for frame := e; frame != nil; frame = frame.next {
		if frame.name == name {
			return frame.value, true
		}
	}
	return nil, false
}

// patch fills in the value of the top frame after construction. It
// exists for exactly one caller: a let whose bound expression is a
// lambda needs the closure's captured environment to contain the
// closure itself before the closure exists. The frame is not yet
// visible to anything else when patch runs, so the immutability
// guarantees above still hold for every observer.
func (e *Environment) patch(value Object) {
	e.value = value
}
