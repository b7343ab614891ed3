package eval

import (
	"bytes"
	"testing"

	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/debuglog"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

// newTestEvaluator returns an Evaluator with no usable module loader —
// these tests build ASTs directly rather than going through the
// external parser subprocess, so `import` is out of scope here (see
// TestEvalModule for module semantics exercised without a parser).
func newTestEvaluator() (*Evaluator, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out, "modules", debuglog.New(false)), &out
}

func sym(name string) ast.Node    { return ast.NewSymbol(name) }
func list(n ...ast.Node) ast.Node { return ast.NewList(n...) }
func i(v int64) ast.Node          { return ast.NewInt(v) }

func evalAll(t *testing.T, e *Evaluator, exprs ...ast.Node) runtime.Value {
	t.Helper()
	var result runtime.Value = runtime.Null{}
	for _, expr := range exprs {
		v, err := e.Eval(expr, nil)
		if err != nil {
			t.Fatalf("Eval(%s) returned error: %v", expr.String(), err)
		}
		result = v
	}
	return result
}

// TestFactorialRecursion is scenario 2 of the language spec's golden
// table: (def factorial (x) (if (== x 1) 1 (* x (factorial (- x 1)))))
// applied to 5 must yield 120.
func TestFactorialRecursion(t *testing.T) {
	e, _ := newTestEvaluator()

	def := list(sym("def"), sym("factorial"), list(sym("x")),
		list(sym("if"), list(sym("=="), sym("x"), i(1)),
			i(1),
			list(sym("*"), sym("x"), list(sym("factorial"), list(sym("-"), sym("x"), i(1))))))
	call := list(sym("factorial"), i(5))

	got := evalAll(t, e, def, call)
	if want := runtime.Integer(120); got != want {
		t.Errorf("factorial(5) = %v, want %v", got, want)
	}
}

// TestForLoopDesugaring is scenario 3: a for loop incrementing a
// counter ten times, adding 2 to rez each iteration, must total 20 —
// confirming for->begin/while desugaring preserves iteration count and
// evaluation order.
func TestForLoopDesugaring(t *testing.T) {
	e, _ := newTestEvaluator()

	program := []ast.Node{
		list(sym("var"), sym("counter"), i(0)),
		list(sym("var"), sym("rez"), i(0)),
		list(sym("for"),
			list(sym("var"), sym("i"), i(0)),
			list(sym("<"), sym("i"), i(10)),
			list(sym("set"), sym("i"), list(sym("+"), sym("i"), i(1))),
			list(sym("set"), sym("rez"), list(sym("+"), sym("rez"), i(2)))),
		sym("rez"),
	}

	got := evalAll(t, e, program...)
	if want := runtime.Integer(20); got != want {
		t.Errorf("for-loop result = %v, want %v", got, want)
	}
}

// TestClosureCapturesDeclarationEnv is scenario 4: makeAdder returns a
// lambda whose captured_env is its own activation record, so each
// adder remembers its own x independently of later calls.
func TestClosureCapturesDeclarationEnv(t *testing.T) {
	e, _ := newTestEvaluator()

	def := list(sym("def"), sym("makeAdder"), list(sym("x")),
		list(sym("lambda"), list(sym("y")), list(sym("+"), sym("x"), sym("y"))))
	add5 := list(sym("var"), sym("add5"), list(sym("makeAdder"), i(5)))
	call := list(sym("add5"), i(3))

	got := evalAll(t, e, def, add5, call)
	if want := runtime.Integer(8); got != want {
		t.Errorf("add5(3) = %v, want %v", got, want)
	}
}

// TestClosureCapturesByReference is the universal invariant from §8:
// (var x 10) (def f () x) (set x 20) (f) must evaluate to 20, proving
// captured_env is shared by reference, not copied at declaration time.
func TestClosureCapturesByReference(t *testing.T) {
	e, _ := newTestEvaluator()

	program := []ast.Node{
		list(sym("var"), sym("x"), i(10)),
		list(sym("def"), sym("f"), list(), sym("x")),
		list(sym("set"), sym("x"), i(20)),
		list(sym("f")),
	}

	got := evalAll(t, e, program...)
	if want := runtime.Integer(20); got != want {
		t.Errorf("f() after set x 20 = %v, want %v", got, want)
	}
}

// TestSwitchDesugaring is scenario 6: a switch whose second clause
// fires must evaluate to that clause's body, proving the right-nested
// if desugaring short-circuits correctly.
func TestSwitchDesugaring(t *testing.T) {
	e, _ := newTestEvaluator()

	sw := list(sym("switch"),
		list(list(sym("=="), i(1), i(2)), i(100)),
		list(list(sym(">"), i(3), i(1)), i(200)),
		list(sym("else"), i(300)))

	got := evalAll(t, e, sw)
	if want := runtime.Integer(200); got != want {
		t.Errorf("switch result = %v, want %v", got, want)
	}
}

// TestClassInstanceConstructor is scenario 5: a Point class with a
// constructor that sets properties via `(prop this x)`, and a calc
// method reading them back, invoked explicitly with the instance as
// its first argument (AxLang has no implicit self-binding).
func TestClassInstanceConstructor(t *testing.T) {
	e, _ := newTestEvaluator()

	class := list(sym("class"), sym("Point"), sym("null"),
		list(sym("begin"),
			list(sym("def"), sym("constructor"), list(sym("this"), sym("x"), sym("y")),
				list(sym("begin"),
					list(sym("set"), list(sym("prop"), sym("this"), sym("x")), sym("x")),
					list(sym("set"), list(sym("prop"), sym("this"), sym("y")), sym("y")))),
			list(sym("def"), sym("calc"), list(sym("this")),
				list(sym("+"), list(sym("prop"), sym("this"), sym("x")), list(sym("prop"), sym("this"), sym("y"))))))

	newPoint := list(sym("var"), sym("p"), list(sym("new"), sym("Point"), i(10), i(20)))
	callCalc := list(list(sym("prop"), sym("p"), sym("calc")), sym("p"))

	got := evalAll(t, e, class, newPoint, callCalc)
	if want := runtime.Integer(30); got != want {
		t.Errorf("p.calc() = %v, want %v", got, want)
	}
}

// TestEvalModule exercises module encapsulation without going through
// the file-based loader: a module's members are reachable only via
// `prop`, not as bare names in the enclosing scope.
func TestEvalModule(t *testing.T) {
	e, _ := newTestEvaluator()

	mod := list(sym("module"), sym("geo"),
		list(sym("begin"),
			list(sym("def"), sym("square"), list(sym("x")), list(sym("*"), sym("x"), sym("x")))))
	callSquare := list(list(sym("prop"), sym("geo"), sym("square")), i(6))

	got := evalAll(t, e, mod, callSquare)
	if want := runtime.Integer(36); got != want {
		t.Errorf("geo.square(6) = %v, want %v", got, want)
	}

	if _, err := e.Eval(sym("square"), nil); err == nil {
		t.Error("square should not be reachable outside its module, but lookup succeeded")
	}
}

func TestUndefinedVariableError(t *testing.T) {
	e, _ := newTestEvaluator()

	if _, err := e.Eval(sym("nope"), nil); err == nil {
		t.Error("expected an error looking up an undefined variable, got nil")
	}
}
