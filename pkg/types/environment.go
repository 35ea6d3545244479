package types

import "fmt"

// Environment is a finite mapping from identifier to Value (spec.md §4.4).
// It has value semantics: Clone produces an independent mapping, and
// mutating a clone never affects the environment it was cloned from.
type Environment struct {
	bindings map[string]Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// Lookup resolves name, or reports "Undefined variable: 'N'!" if unbound.
func (e *Environment) Lookup(name string) (Value, error) {
	v, ok := e.bindings[name]
	if !ok {
		return nil, fmt.Errorf("Undefined variable: '%s'!", name)
	}
	return v, nil
}

// Bind inserts or overwrites name's binding. There is no shadow stack: a
// second Bind of the same name in the same environment simply replaces it.
func (e *Environment) Bind(name string, value Value) {
	e.bindings[name] = value
}

// Defined reports whether name has a binding in e.
func (e *Environment) Defined(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// Merge returns a new Environment equal to e with every binding of other
// overlaid on top; ties go to other. This is used by the call protocol
// (spec.md §4.6) as `caller.Merge(closure)` — the closure's bindings win
// over the caller's, which is the source of the documented shadowing quirk
// in spec.md §9.
func (e *Environment) Merge(other *Environment) *Environment {
	merged := make(map[string]Value, len(e.bindings)+len(other.bindings))
	for k, v := range e.bindings {
		merged[k] = v
	}
	for k, v := range other.bindings {
		merged[k] = v
	}
	return &Environment{bindings: merged}
}

// Clone returns an independent copy of e; mutating the clone never affects e.
func (e *Environment) Clone() *Environment {
	cloned := make(map[string]Value, len(e.bindings))
	for k, v := range e.bindings {
		cloned[k] = v
	}
	return &Environment{bindings: cloned}
}

// ReplaceWith overwrites e's bindings with other's, in place. A
// UserProcedure's closure is a shared *Environment handle (spec.md §4.6,
// §9); ReplaceWith is how a call commits the environment the body produced
// back into that handle so later calls through any copy of the procedure
// observe it.
func (e *Environment) ReplaceWith(other *Environment) {
	e.bindings = other.bindings
}

// Names returns the bound identifiers, for diagnostics (e.g. :env in a
// host REPL). Order is unspecified.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for k := range e.bindings {
		names = append(names, k)
	}
	return names
}
