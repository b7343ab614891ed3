// Package builtins constructs AxLang's global environment: the
// constants and native functions every interpreter instance starts
// with (§4.4). It is built once per interpreter instance, matching the
// single-threaded, one-instance-per-thread resource model of §5.
package builtins

import (
	"fmt"
	"strings"

	"github.com/axreldable/ax-lang-go/internal/axerrors"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

// Version is the interpreter's version string, bound to the VERSION
// global. The Python original defined VERSION in its earlier,
// less-factored ax_lang.py module and dropped it in the later
// environment.py/functions.py split; SPEC_FULL.md resolves that
// inconsistency by keeping it, since the CLI's version command wants a
// single source of truth.
const Version = "0.1.0"

// Names lists every symbol the evaluator treats as a built-in operator
// reference (§4.1 rule 4) rather than an ordinary variable reference.
var Names = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	">": true, ">=": true, "<": true, "<=": true, "==": true,
	"print": true,
}

// IsFunctionName reports whether name names a built-in operator.
func IsFunctionName(name string) bool { return Names[name] }

// GlobalEnv constructs a fresh global environment pre-populated with
// AxLang's constants and native functions. print writes to out (the
// CLI wires this to os.Stdout; tests wire it to a buffer).
func GlobalEnv(out interface{ Write([]byte) (int, error) }) *runtime.Environment {
	env := runtime.NewEnvironment()

	env.Define("null", runtime.Null{})
	env.Define("true", runtime.Boolean(true))
	env.Define("false", runtime.Boolean(false))
	env.Define("VERSION", runtime.String(Version))

	env.Define("+", native("+", arith(func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b })))
	env.Define("-", native("-", minus))
	env.Define("*", native("*", arith(func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b })))
	env.Define("/", native("/", divide))

	env.Define(">", native(">", compare(func(c int) bool { return c > 0 })))
	env.Define(">=", native(">=", compare(func(c int) bool { return c >= 0 })))
	env.Define("<", native("<", compare(func(c int) bool { return c < 0 })))
	env.Define("<=", native("<=", compare(func(c int) bool { return c <= 0 })))
	env.Define("==", native("==", equals))

	env.Define("print", native("print", printFn(out)))

	return env
}

func native(name string, fn func(args []runtime.Value) (runtime.Value, error)) *runtime.NativeFunc {
	return &runtime.NativeFunc{Name: name, Fn: fn}
}

func numericOf(v runtime.Value) (float64, bool) {
	switch n := v.(type) {
	case runtime.Integer:
		return float64(n), true
	case runtime.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func bothInt(a, b runtime.Value) (int64, int64, bool) {
	ai, aok := a.(runtime.Integer)
	bi, bok := b.(runtime.Integer)
	if aok && bok {
		return int64(ai), int64(bi), true
	}
	return 0, 0, false
}

// arith builds a binary +/-/* native: integer result when both operands
// are Integer, float result otherwise (AxLang promotes mixed int/float
// arithmetic to float, the common dynamic-language rule).
func arith(floatOp func(a, b float64) float64, intOp func(a, b int64) int64) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, &axerrors.TypeError{Message: fmt.Sprintf("expected 2 arguments, got %d", len(args))}
		}
		if ai, bi, ok := bothInt(args[0], args[1]); ok {
			return runtime.Integer(intOp(ai, bi)), nil
		}
		af, aok := numericOf(args[0])
		bf, bok := numericOf(args[1])
		if !aok || !bok {
			return nil, &axerrors.TypeError{Message: "arithmetic operator applied to a non-number"}
		}
		return runtime.Float(floatOp(af, bf)), nil
	}
}

// minus implements `-`, which per §4.4 is unary or binary: `(- x)`
// negates x, `(- x y)` subtracts.
func minus(args []runtime.Value) (runtime.Value, error) {
	switch len(args) {
	case 1:
		switch n := args[0].(type) {
		case runtime.Integer:
			return -n, nil
		case runtime.Float:
			return -n, nil
		default:
			return nil, &axerrors.TypeError{Message: "unary - applied to a non-number"}
		}
	case 2:
		return arith(func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b })(args)
	default:
		return nil, &axerrors.TypeError{Message: fmt.Sprintf("- expects 1 or 2 arguments, got %d", len(args))}
	}
}

// divide implements `/`. Float operands, or an Integer/Float mix,
// follow IEEE 754 and may produce +Inf/-Inf/NaN on a zero divisor — the
// host "propagates whatever it produces" per §4.1's edge-case note.
// Integer-over-integer division by zero instead surfaces an
// ArithmeticError, since Go's own integer division panics there and
// AxLang chooses to turn that host fault into a catchable language
// error rather than crash the interpreter.
func divide(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, &axerrors.TypeError{Message: fmt.Sprintf("/ expects 2 arguments, got %d", len(args))}
	}
	if ai, bi, ok := bothInt(args[0], args[1]); ok {
		if bi == 0 {
			return nil, &axerrors.ArithmeticError{Message: "integer division by zero"}
		}
		return runtime.Float(float64(ai) / float64(bi)), nil
	}
	af, aok := numericOf(args[0])
	bf, bok := numericOf(args[1])
	if !aok || !bok {
		return nil, &axerrors.TypeError{Message: "/ applied to a non-number"}
	}
	return runtime.Float(af / bf), nil
}

func compare(accept func(cmp int) bool) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, &axerrors.TypeError{Message: fmt.Sprintf("expected 2 arguments, got %d", len(args))}
		}
		af, aok := numericOf(args[0])
		bf, bok := numericOf(args[1])
		if !aok || !bok {
			return nil, &axerrors.TypeError{Message: "comparison operator applied to a non-number"}
		}
		switch {
		case af < bf:
			return runtime.Boolean(accept(-1)), nil
		case af > bf:
			return runtime.Boolean(accept(1)), nil
		default:
			return runtime.Boolean(accept(0)), nil
		}
	}
}

// equals implements `==`. Unlike the other comparisons it is defined
// over every value type, not just numbers, mirroring Python's `==`.
func equals(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, &axerrors.TypeError{Message: fmt.Sprintf("expected 2 arguments, got %d", len(args))}
	}
	a, b := args[0], args[1]
	if af, aok := numericOf(a); aok {
		if bf, bok := numericOf(b); bok {
			return runtime.Boolean(af == bf), nil
		}
		return runtime.Boolean(false), nil
	}
	switch av := a.(type) {
	case runtime.String:
		bv, ok := b.(runtime.String)
		return runtime.Boolean(ok && av == bv), nil
	case runtime.Boolean:
		bv, ok := b.(runtime.Boolean)
		return runtime.Boolean(ok && av == bv), nil
	case runtime.Null:
		_, ok := b.(runtime.Null)
		return runtime.Boolean(ok), nil
	default:
		return runtime.Boolean(false), nil
	}
}

// printFn implements `print`: variadic, writes its arguments
// space-separated followed by a newline, and returns Null (§4.4).
func printFn(out interface{ Write([]byte) (int, error) }) func([]runtime.Value) (runtime.Value, error) {
	return func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return runtime.Null{}, nil
	}
}
