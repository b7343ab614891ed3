package runtime

import (
	"errors"
	"testing"

	"github.com/axreldable/ax-lang-go/internal/axerrors"
)

func TestDefineAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Integer(42))

	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup(x) returned error: %v", err)
	}
	if i, ok := v.(Integer); !ok || i != 42 {
		t.Errorf("Lookup(x) = %v, want Integer(42)", v)
	}
}

func TestLookupUndefined(t *testing.T) {
	env := NewEnvironment()

	_, err := env.Lookup("missing")
	var undef *axerrors.UndefinedVariableError
	if !errors.As(err, &undef) {
		t.Fatalf("Lookup(missing) error = %v, want *UndefinedVariableError", err)
	}
	if undef.Name != "missing" {
		t.Errorf("UndefinedVariableError.Name = %q, want %q", undef.Name, "missing")
	}
}

func TestChildSeesParentBindings(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", Integer(1))
	child := NewChild(parent)

	v, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup(x) from child returned error: %v", err)
	}
	if i, ok := v.(Integer); !ok || i != 1 {
		t.Errorf("Lookup(x) = %v, want Integer(1)", v)
	}

	if got := child.Parent(); got != parent {
		t.Errorf("Parent() = %p, want %p", got, parent)
	}
}

func TestDefineShadowsParent(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", Integer(1))
	child := NewChild(parent)
	child.Define("x", Integer(2))

	childVal, _ := child.Lookup("x")
	parentVal, _ := parent.Lookup("x")

	if childVal.(Integer) != 2 {
		t.Errorf("child Lookup(x) = %v, want Integer(2)", childVal)
	}
	if parentVal.(Integer) != 1 {
		t.Errorf("parent Lookup(x) = %v, want Integer(1) (unaffected by shadowing)", parentVal)
	}
}

// TestAssignMutatesDefiningEnvironment mirrors the language spec's
// closure-over-mutable-state testable property: assigning from a child
// scope must mutate the ancestor's binding in place, not create a new
// one, so every closure sharing that ancestor observes the change.
func TestAssignMutatesDefiningEnvironment(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", Integer(10))
	child := NewChild(parent)

	if _, err := child.Assign("x", Integer(20)); err != nil {
		t.Fatalf("Assign(x, 20) returned error: %v", err)
	}

	v, _ := parent.Lookup("x")
	if v.(Integer) != 20 {
		t.Errorf("parent Lookup(x) after child Assign = %v, want Integer(20)", v)
	}
}

func TestAssignUndefinedIsError(t *testing.T) {
	env := NewEnvironment()

	_, err := env.Assign("missing", Integer(1))
	var undef *axerrors.UndefinedVariableError
	if !errors.As(err, &undef) {
		t.Fatalf("Assign(missing) error = %v, want *UndefinedVariableError", err)
	}
}

func TestResolveReturnsDefiningEnvironment(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", Integer(1))
	child := NewChild(parent)
	grandchild := NewChild(child)

	env, err := grandchild.Resolve("x")
	if err != nil {
		t.Fatalf("Resolve(x) returned error: %v", err)
	}
	if env != parent {
		t.Errorf("Resolve(x) = %p, want the defining environment %p", env, parent)
	}
}
