package eval

import (
	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/axerrors"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

// evalCall handles an ordinary function call: any List whose head is
// not a recognized special-form keyword (§4.1 rule 6). The callee and
// every argument are evaluated left-to-right before the call is made,
// per the ordering rule in §5.
func (e *Evaluator) evalCall(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	callee, err := e.Eval(expr.Elems[0], env)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(expr.Elems)-1)
	for i, argExpr := range expr.Elems[1:] {
		v, err := e.Eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return e.Apply(callee, args)
}

// Apply invokes callee (a native or user function) with already-
// evaluated args. It is exported so code holding a callable value (such
// as `new` invoking a class's constructor) can invoke it without going
// back through an ast.Node call expression.
func (e *Evaluator) Apply(callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.NativeFunc:
		return fn.Fn(args)
	case *runtime.Closure:
		return e.callClosure(fn, args)
	default:
		return nil, &axerrors.TypeError{Message: "value is not callable: " + callee.Type()}
	}
}

// callClosure binds each formal parameter to its corresponding argument
// in a fresh activation environment parented on the closure's captured
// environment (never the caller's environment — that is what makes this
// a closure), then evaluates the body there. Extra arguments are
// discarded; missing trailing parameters are simply never defined, so a
// later lookup on them fails with UndefinedVariable (§4.1 edge cases).
func (e *Evaluator) callClosure(fn *runtime.Closure, args []runtime.Value) (runtime.Value, error) {
	activation := runtime.NewChild(fn.CapturedEnv)
	for i, param := range fn.Params {
		if i >= len(args) {
			break
		}
		activation.Define(param, args[i])
	}
	return e.evalBody(fn.Body, activation)
}
