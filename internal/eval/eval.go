// Package eval implements AxLang's evaluator: the recursive
// interpretation of an ast.Node in a runtime.Environment (§4.1). It is
// the one package everything else in the core exists to serve — the
// value model, the environment, the desugarer, and the builtins are all
// leaves this package consumes.
package eval

import (
	"regexp"

	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/axerrors"
	"github.com/axreldable/ax-lang-go/internal/builtins"
	"github.com/axreldable/ax-lang-go/internal/debuglog"
	"github.com/axreldable/ax-lang-go/internal/desugar"
	"github.com/axreldable/ax-lang-go/internal/modules"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Evaluator holds everything Eval needs besides the expression and
// environment being evaluated: the global environment every call
// defaults to, the module loader `import` delegates to, and the debug
// logger --debug wires up. One Evaluator belongs to one interpreter
// instance, matching the single-threaded, one-instance-per-thread
// model of §5 — it is not safe to share across goroutines.
type Evaluator struct {
	Global  *runtime.Environment
	Modules *modules.Loader
	Log     *debuglog.Logger
}

// New creates an Evaluator with a fresh global environment, writing
// `print` output to out.
func New(out interface{ Write([]byte) (int, error) }, modulesRoot string, log *debuglog.Logger) *Evaluator {
	if log == nil {
		log = debuglog.New(false)
	}
	return &Evaluator{
		Global:  builtins.GlobalEnv(out),
		Modules: modules.NewLoader(modulesRoot),
		Log:     log,
	}
}

// Eval is the evaluator's one public operation (§4.1). A nil env
// defaults to the global environment.
func (e *Evaluator) Eval(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if env == nil {
		env = e.Global
	}
	e.Log.Dump("eval", expr)

	switch expr.Kind {
	case ast.Int:
		return runtime.Integer(expr.Int64), nil
	case ast.Float:
		return runtime.Float(expr.Float64), nil
	}

	if expr.IsQuotedString() {
		return runtime.String(expr.StringContent()), nil
	}

	if expr.Kind == ast.Sym {
		if identifierRe.MatchString(expr.Text) || builtins.IsFunctionName(expr.Text) {
			return env.Lookup(expr.Text)
		}
		return nil, &axerrors.NotImplementedError{Form: expr.Text}
	}

	if expr.Kind != ast.List {
		return nil, &axerrors.NotImplementedError{Form: expr.String()}
	}

	if len(expr.Elems) == 0 {
		return runtime.Null{}, nil
	}

	if head, ok := expr.HeadSymbol(); ok {
		if handler, isSpecialForm := specialForms[head]; isSpecialForm {
			return handler(e, expr, env)
		}
	}

	return e.evalCall(expr, env)
}

// specialForms maps every keyword head symbol (§3.1) to its handler.
// A hash map from keyword to handler, rather than a long if-chain,
// gives the same dispatch the spec's design notes describe for a
// language without pattern matching, and keeps each form's logic in
// its own small function.
var specialForms map[string]func(*Evaluator, ast.Node, *runtime.Environment) (runtime.Value, error)

func init() {
	specialForms = map[string]func(*Evaluator, ast.Node, *runtime.Environment) (runtime.Value, error){
		"var":    (*Evaluator).evalVar,
		"set":    (*Evaluator).evalSet,
		"begin":  (*Evaluator).evalBegin,
		"if":     (*Evaluator).evalIf,
		"while":  (*Evaluator).evalWhile,
		"lambda": (*Evaluator).evalLambda,
		"def":    (*Evaluator).evalDef,
		"switch": (*Evaluator).evalSwitch,
		"for":    (*Evaluator).evalFor,
		"++":     (*Evaluator).evalIncDec,
		"--":     (*Evaluator).evalIncDec,
		"+=":     (*Evaluator).evalCompoundAssign,
		"-=":     (*Evaluator).evalCompoundAssign,
		"*=":     (*Evaluator).evalCompoundAssign,
		"/=":     (*Evaluator).evalCompoundAssign,
		"class":  (*Evaluator).evalClass,
		"super":  (*Evaluator).evalSuper,
		"new":    (*Evaluator).evalNew,
		"prop":   (*Evaluator).evalProp,
		"module": (*Evaluator).evalModule,
		"import": (*Evaluator).evalImport,
	}
}

// evalBody evaluates a lambda/constructor/class/module body. When the
// body is a `(begin ...)` list, its sub-expressions run directly in env
// with no extra nested scope (§4.1's function-call rule); otherwise the
// body is a single expression evaluated as-is.
func (e *Evaluator) evalBody(body ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if head, ok := body.HeadSymbol(); ok && head == "begin" {
		return e.evalBlock(body.Elems[1:], env)
	}
	return e.Eval(body, env)
}

// evalBlock evaluates a sequence of expressions in order within env,
// returning the last value or Null if the sequence is empty.
func (e *Evaluator) evalBlock(exprs []ast.Node, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.Null{}
	for _, expr := range exprs {
		v, err := e.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalVar(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	name, valueExpr := expr.Elems[1], expr.Elems[2]
	v, err := e.Eval(valueExpr, env)
	if err != nil {
		return nil, err
	}
	return env.Define(name.Text, v), nil
}

// evalSet implements `set`. A target of `(prop inst name)` defines the
// property on the evaluated instance's environment (create-if-absent);
// any other target assigns to an already-bound local (§4.1). This
// asymmetry — define for properties, assign for locals — is intentional
// in the language and is preserved exactly, not "fixed" (SPEC_FULL.md §4).
func (e *Evaluator) evalSet(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	target, valueExpr := expr.Elems[1], expr.Elems[2]

	if head, ok := target.HeadSymbol(); ok && head == "prop" {
		instExpr, nameNode := target.Elems[1], target.Elems[2]
		instVal, err := e.Eval(instExpr, env)
		if err != nil {
			return nil, err
		}
		handle, ok := instVal.(*runtime.EnvHandle)
		if !ok {
			return nil, &axerrors.TypeError{Message: "set: property target is not an environment"}
		}
		v, err := e.Eval(valueExpr, env)
		if err != nil {
			return nil, err
		}
		return handle.Env.Define(nameNode.Text, v), nil
	}

	v, err := e.Eval(valueExpr, env)
	if err != nil {
		return nil, err
	}
	return env.Assign(target.Text, v)
}

func (e *Evaluator) evalBegin(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	return e.evalBlock(expr.Elems[1:], runtime.NewChild(env))
}

// evalIf requires the else branch, per §4.1: a malformed `(if cond
// then)` is a shape error the caller (the parser's grammar) is expected
// to rule out; here it shows up as an out-of-range index, which Go's
// runtime turns into a panic rather than a graceful error — acceptable
// because the spec treats a missing else as a shape rule violation, not
// a recoverable language error.
func (e *Evaluator) evalIf(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	cond, then, alt := expr.Elems[1], expr.Elems[2], expr.Elems[3]
	condVal, err := e.Eval(cond, env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(condVal) {
		return e.Eval(then, env)
	}
	return e.Eval(alt, env)
}

func (e *Evaluator) evalWhile(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	cond, body := expr.Elems[1], expr.Elems[2]
	var result runtime.Value = runtime.Null{}
	for {
		condVal, err := e.Eval(cond, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(condVal) {
			return result, nil
		}
		v, err := e.Eval(body, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
}

func (e *Evaluator) evalLambda(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	paramsNode, body := expr.Elems[1], expr.Elems[2]
	params := make(runtime.Params, len(paramsNode.Elems))
	for i, p := range paramsNode.Elems {
		params[i] = p.Text
	}
	return &runtime.Closure{Params: params, Body: body, CapturedEnv: env}, nil
}

func (e *Evaluator) evalDef(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	return e.Eval(desugar.DefToLambda(expr), env)
}

func (e *Evaluator) evalSwitch(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	return e.Eval(desugar.SwitchToIf(expr), env)
}

func (e *Evaluator) evalFor(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	return e.Eval(desugar.ForToWhile(expr), env)
}

func (e *Evaluator) evalIncDec(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	head, _ := expr.HeadSymbol()
	var desugared ast.Node
	if head == "++" {
		desugared = desugar.IncToSet(expr)
	} else {
		desugared = desugar.DecToSet(expr)
	}
	return e.Eval(desugared, env)
}

func (e *Evaluator) evalCompoundAssign(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	head, _ := expr.HeadSymbol()
	var desugared ast.Node
	switch head {
	case "+=":
		desugared = desugar.PlusAssignToSet(expr)
	case "-=":
		desugared = desugar.MinusAssignToSet(expr)
	case "*=":
		desugared = desugar.MulAssignToSet(expr)
	case "/=":
		desugared = desugar.DivAssignToSet(expr)
	}
	return e.Eval(desugared, env)
}
