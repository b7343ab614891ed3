package runtime

import (
	"fmt"

	"github.com/axreldable/ax-lang-go/internal/axerrors"
)

// Environment is a mutable name->value record with an optional parent.
// It is the single representation behind ordinary lexical scopes,
// function activation records, classes, instances, and modules (see
// §3.3 of the language spec): a class is an Environment whose parent is
// its defining scope, an instance is an Environment whose parent is its
// class, and a module is an Environment whose parent is the scope
// `module` was evaluated in. Method lookup, static-variable lookup, and
// inheritance traversal are therefore all just Resolve walking parent
// pointers — there is no separate machinery for any of them.
//
// Environments are shared by reference: many closures may capture the
// same Environment, and many instances may share a class Environment as
// their parent. Parent pointers form a chain, never a cycle — a child
// always points toward its parent, never the reverse.
type Environment struct {
	record map[string]Value
	parent *Environment
}

// NewEnvironment creates a root environment with no parent. It is used
// once per interpreter instance for the global scope.
func NewEnvironment() *Environment {
	return &Environment{record: make(map[string]Value)}
}

// NewChild creates a new environment enclosed by parent. Used for block
// scopes (`begin`), function activation records, class bodies, instance
// bodies, and module bodies alike.
func NewChild(parent *Environment) *Environment {
	return &Environment{record: make(map[string]Value), parent: parent}
}

// Parent returns e's parent environment, or nil if e is a root.
func (e *Environment) Parent() *Environment { return e.parent }

// normalizeKey coerces a lookup key to its string form. The only case
// this matters for is a parsed `(prop this x)` ending up passed through
// as a name: coercing it with fmt guarantees a list-shaped key can never
// accidentally match a record entry, per §4.2.
func normalizeKey(name interface{}) string {
	if s, ok := name.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", name)
}

// Define creates or overwrites a binding in e itself, never consulting
// parent. It always succeeds and returns the value that was bound.
func (e *Environment) Define(name string, v Value) Value {
	e.record[normalizeKey(name)] = v
	return v
}

// Resolve returns the nearest environment in e's chain (starting at e)
// whose own record contains name, or an *axerrors.UndefinedVariableError
// if none does.
func (e *Environment) Resolve(name string) (*Environment, error) {
	key := normalizeKey(name)
	for env := e; env != nil; env = env.parent {
		if _, ok := env.record[key]; ok {
			return env, nil
		}
	}
	return nil, &axerrors.UndefinedVariableError{Name: key}
}

// Lookup returns the value bound to name in the nearest enclosing
// environment that defines it.
func (e *Environment) Lookup(name string) (Value, error) {
	env, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	return env.record[normalizeKey(name)], nil
}

// Assign updates the binding for name in the nearest enclosing
// environment that already defines it. It does not fall back to
// Define: assigning to a name that is bound nowhere in the chain is an
// UndefinedVariableError, per §3.3.
func (e *Environment) Assign(name string, v Value) (Value, error) {
	env, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	env.record[normalizeKey(name)] = v
	return v, nil
}
