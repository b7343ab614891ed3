package eval

import (
	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/axerrors"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

// evalClass implements `(class name parent body)` (§4.1). A class is
// just an Environment whose parent is the defining scope — or, for
// inheritance, the parent class's own Environment — so method lookup
// and static-variable lookup fall straight out of Environment.Lookup's
// existing parent-walking logic; there is no separate inheritance
// machinery to maintain.
func (e *Evaluator) evalClass(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	name, parentExpr, body := expr.Elems[1], expr.Elems[2], expr.Elems[3]

	parentEnv := env
	if !(parentExpr.Kind == ast.Sym && parentExpr.Text == "null") {
		parentVal, err := e.Eval(parentExpr, env)
		if err != nil {
			return nil, err
		}
		if handle, ok := parentVal.(*runtime.EnvHandle); ok {
			parentEnv = handle.Env
		}
	}

	classEnv := runtime.NewChild(parentEnv)
	if _, err := e.evalBody(body, classEnv); err != nil {
		return nil, err
	}

	handle := &runtime.EnvHandle{Env: classEnv}
	return env.Define(name.Text, handle), nil
}

// evalSuper implements `(super class_name)`: the parent environment of
// the named class, used to reach an overridden method or base
// constructor.
func (e *Evaluator) evalSuper(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	classVal, err := e.Eval(expr.Elems[1], env)
	if err != nil {
		return nil, err
	}
	handle, ok := classVal.(*runtime.EnvHandle)
	if !ok {
		return nil, &axerrors.TypeError{Message: "super: not a class"}
	}
	parent := handle.Env.Parent()
	if parent == nil {
		return nil, &axerrors.TypeError{Message: "super: class has no parent"}
	}
	return &runtime.EnvHandle{Env: parent}, nil
}

// evalNew implements `(new class args...)`: an instance is an
// Environment whose parent is the class Environment, so instance
// property access and inherited method lookup both resolve through the
// same Environment.Lookup chain walk. The class's `constructor` method
// is invoked with `(instance, *args)`, matching the Python original.
func (e *Evaluator) evalNew(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	classVal, err := e.Eval(expr.Elems[1], env)
	if err != nil {
		return nil, err
	}
	classHandle, ok := classVal.(*runtime.EnvHandle)
	if !ok {
		return nil, &axerrors.TypeError{Message: "new: not a class"}
	}

	instanceEnv := runtime.NewChild(classHandle.Env)
	instance := &runtime.EnvHandle{Env: instanceEnv}

	args := make([]runtime.Value, 1, len(expr.Elems)-1)
	args[0] = instance
	for _, argExpr := range expr.Elems[2:] {
		v, err := e.Eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	ctor, err := classHandle.Env.Lookup("constructor")
	if err != nil {
		return nil, err
	}
	if _, err := e.Apply(ctor, args); err != nil {
		return nil, err
	}

	return instance, nil
}

// evalProp implements `(prop expr name)`: evaluate expr to an
// Environment handle and look up name in it directly (not via the
// language-level `set`/`var` forms).
func (e *Evaluator) evalProp(expr ast.Node, env *runtime.Environment) (runtime.Value, error) {
	instExpr, nameNode := expr.Elems[1], expr.Elems[2]
	instVal, err := e.Eval(instExpr, env)
	if err != nil {
		return nil, err
	}
	handle, ok := instVal.(*runtime.EnvHandle)
	if !ok {
		return nil, &axerrors.TypeError{Message: "prop: not an environment"}
	}
	return handle.Env.Lookup(nameNode.Text)
}
