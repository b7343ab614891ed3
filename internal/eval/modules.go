package eval

import (
	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

// evalModule implements `(module name body)`: a module is an
// Environment whose parent is the scope `module` was evaluated in,
// exactly like a class or instance (§3.3). Its members become reachable
// from the outside only via `(prop <name> <member>)`.
func (e *Evaluator) evalModule(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	name, body := expr.Elems[1], expr.Elems[2]

	moduleEnv := runtime.NewChild(env)
	if _, err := e.evalBody(body, moduleEnv); err != nil {
		return nil, err
	}

	handle := &runtime.EnvHandle{Env: moduleEnv}
	return env.Define(name.Text, handle), nil
}

// evalImport implements `(import name)` (§4.5): locate
// modules/<name>.ax relative to the loader's search root, parse
// `(begin <contents>)`, and evaluate `(module name <parsed body>)` in
// env — i.e. import is just sugar over evalModule once the module's
// source has been fetched and parsed.
func (e *Evaluator) evalImport(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	name := expr.Elems[1].Text

	body, err := e.Modules.Load(name)
	if err != nil {
		return nil, err
	}

	moduleExpr := ast.NewList(ast.NewSymbol("module"), ast.NewSymbol(name), body)
	return e.evalModule(moduleExpr, env)
}
