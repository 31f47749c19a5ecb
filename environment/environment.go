/*
File    : loxi/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexically-scoped frame chain the
// evaluator walks for variable lookup, assignment, and declaration.
// It is adapted from the teacher's scope.Scope{Variables, Parent}, with
// Consts/LetVars/LetTypes dropped (this language has only `var`, no
// `const`/`let`) and Copy() deliberately NOT carried forward: a
// Function's captured environment must be the same frame chain by
// reference, not a value-copy of it, or mutations after declaration
// would stop being visible to the closure.
package environment

import (
	"fmt"

	"github.com/akashmaji946/loxi/object"
)

// Environment is one frame in the lexical scope chain. Parent is nil
// only for the global frame.
type Environment struct {
	Variables map[string]object.Value
	Parent    *Environment
}

// New creates a frame enclosed by parent. Pass nil to create the
// global frame.
func New(parent *Environment) *Environment {
	return &Environment{
		Variables: make(map[string]object.Value),
		Parent:    parent,
	}
}

// Define binds name to value in this frame, shadowing any binding of
// the same name in an enclosing frame. Used by `var` declarations and
// to install call arguments.
func (e *Environment) Define(name string, value object.Value) {
	e.Variables[name] = value
}

// Get looks up name starting at this frame and walking outward through
// Parent until a binding is found.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.Variables[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign writes value into the nearest enclosing frame that already
// defines name, returning an error if no frame does. It never creates
// a new binding - that is Define's job.
func (e *Environment) Assign(name string, value object.Value) error {
	if _, ok := e.Variables[name]; ok {
		e.Variables[name] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
