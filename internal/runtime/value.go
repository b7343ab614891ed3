// Package runtime holds the evaluator's runtime value representation and
// the Environment it is looked up and stored in. The two live in one
// package because an Environment handle is itself a first-class Value
// (see EnvHandle) — classes, instances, and modules are all represented
// as Environments, so the value model and the environment model are
// mutually referential and cannot be split without an import cycle.
package runtime

import (
	"fmt"
	"strconv"

	"github.com/axreldable/ax-lang-go/internal/ast"
)

// Value is the tagged union of every value the evaluator can produce.
// Unlike the AST's Node, which is deliberately a flat tagged struct, the
// runtime value set is small and heterogeneous enough (two different
// callable shapes, plus the shared EnvHandle) that a Value interface with
// one concrete type per alternative reads more naturally and keeps the
// closure/instance bookkeeping out of a single god-struct.
type Value interface {
	// Type returns a short uppercase tag for error messages and debug
	// dumps, e.g. "INTEGER", "NATIVE_FUNCTION".
	Type() string
	// String returns the value's surface-syntax-ish representation, the
	// same text `print` would emit for it.
	String() string
}

// Null is the singleton bound to the `null` name.
type Null struct{}

func (Null) Type() string   { return "NULL" }
func (Null) String() string { return "null" }

// Boolean wraps AxLang's two truth values.
type Boolean bool

func (b Boolean) Type() string { return "BOOLEAN" }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Integer is a whole-number runtime value.
type Integer int64

func (Integer) Type() string     { return "INTEGER" }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a fractional-number runtime value.
type Float float64

func (Float) Type() string     { return "FLOAT" }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// String is a runtime string value. Unlike ast.Node's Str kind, the
// surrounding quotes have already been stripped by the time a value of
// this type exists (the evaluator strips them on self-evaluation, per
// §4.1 rule 2 of the language spec).
type String string

func (String) Type() string     { return "STRING" }
func (s String) String() string { return string(s) }

// NativeFunc is an opaque, host-implemented callable: a built-in like +
// or print. It receives already-evaluated arguments, in call order, and
// returns a Value or an error.
type NativeFunc struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (n *NativeFunc) Type() string   { return "NATIVE_FUNCTION" }
func (n *NativeFunc) String() string { return fmt.Sprintf("<native %s>", n.Name) }

// Params is the ordered list of a user function's formal parameter
// names, shared by Closure (lambda/def) below.
type Params []string

// Closure is a user-defined function: a lambda (or a def, which
// desugars to one) bundled with the environment in effect when it was
// declared. Per §3.4, CapturedEnv is fixed at declaration time, never at
// call time — this is what makes closures close over their defining
// scope rather than their calling scope.
type Closure struct {
	Params      Params
	Body        ast.Node
	CapturedEnv *Environment
}

func (*Closure) Type() string   { return "FUNCTION" }
func (*Closure) String() string { return "<function>" }

// EnvHandle is a Value wrapping an Environment. Classes, instances, and
// modules are all represented this way — see Environment's doc comment
// for why the language collapses these three concepts into one
// representation instead of giving each its own Value variant.
type EnvHandle struct {
	Env *Environment
}

func (*EnvHandle) Type() string   { return "ENVIRONMENT" }
func (*EnvHandle) String() string { return "<environment>" }

// Truthy implements the language's notion of "truthy" for if/while/switch
// conditions: only Boolean(false) and Null are falsy. Every other value,
// including Integer(0), Float(0) and the empty String, is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Null:
		return false
	case Boolean:
		return bool(t)
	default:
		return true
	}
}
