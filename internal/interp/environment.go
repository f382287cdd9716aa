package interp

import (
	"sort"
)

// Environment provides lexical scoping for runtime values. Every function
// call gets its own environment whose parent is the global one, so a
// parameter never overwrites a variable of the caller.
type Environment struct {
	values map[string]Value
	parent *Environment
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Define inserts or shadows a binding in the current scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates an existing binding in the first scope where it appears
// and reports whether one was found.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Keys returns the bindings of this scope in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
