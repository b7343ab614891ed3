// Package axerrors defines AxLang's error taxonomy (§7 of the language
// spec): ParserError, UndefinedVariable, TypeError/NotImplemented,
// ModuleError, and ArithmeticError. Each is a distinct Go type
// implementing error so callers (the REPL, the CLI runners, tests) can
// discriminate on error kind with errors.As instead of string matching.
//
// Propagation policy follows §7: errors bubble up through Eval
// uninterrupted, with no automatic retry. It is the caller's job — the
// REPL loop, or the expr/file runners — to catch and report them.
package axerrors

import "fmt"

// ParserError wraps a failure of the external parser subprocess: a
// non-zero exit, or output that could not be decoded into an AST.
type ParserError struct {
	Input string
	Err   error
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parser error on %q: %v", e.Input, e.Err)
}

func (e *ParserError) Unwrap() error { return e.Err }

// UndefinedVariableError is returned by Environment.Lookup/Assign/Resolve
// when no environment in the chain defines the requested name.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %q is not defined", e.Name)
}

// TypeError is raised when the evaluator reaches a shape it cannot
// reconcile with the operation being performed, e.g. calling a value
// that is neither a native nor a user function.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// NotImplementedError is raised when the evaluator is handed a form it
// does not recognize at all — neither a known special form nor a
// well-shaped function call.
type NotImplementedError struct {
	Form string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Form)
}

// ModuleError wraps a failure to locate, read, or parse an imported
// module (§4.5): the `modules/<name>.ax` file is missing, unreadable, or
// fails to parse.
type ModuleError struct {
	Name string
	Err  error
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("failed to import module %q: %v", e.Name, e.Err)
}

func (e *ModuleError) Unwrap() error { return e.Err }

// ArithmeticError wraps a failure surfaced from a host numeric
// operation, e.g. integer division by zero. §4.1's edge-case note
// leaves the exact behavior (error vs. infinity) to host policy; AxLang
// chooses to error on integer division by zero rather than propagate a
// host panic, and lets float division follow IEEE 754 (producing +Inf,
// -Inf, or NaN) the way the original Python `/` did.
type ArithmeticError struct {
	Message string
}

func (e *ArithmeticError) Error() string { return e.Message }
