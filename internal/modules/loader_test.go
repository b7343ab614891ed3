package modules

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/axreldable/ax-lang-go/internal/axerrors"
)

func TestLoadMissingFileIsModuleError(t *testing.T) {
	loader := NewLoader(t.TempDir())

	_, err := loader.Load("does-not-exist")
	var modErr *axerrors.ModuleError
	if !errors.As(err, &modErr) {
		t.Fatalf("Load(missing) error = %v, want *ModuleError", err)
	}
	if modErr.Name != "does-not-exist" {
		t.Errorf("ModuleError.Name = %q, want %q", modErr.Name, "does-not-exist")
	}
}

// TestLoadParsesModuleSource requires the syntax-cli parser subprocess
// on PATH; it is skipped otherwise, matching the teacher's pattern of
// skipping tests that depend on an external tool not present in every
// environment.
func TestLoadParsesModuleSource(t *testing.T) {
	if _, err := exec.LookPath("syntax-cli"); err != nil {
		t.Skip("syntax-cli not found on PATH, skipping")
	}

	dir := t.TempDir()
	src := "(def square (x) (* x x))"
	if err := os.WriteFile(filepath.Join(dir, "math"+Extension), []byte(src), 0o644); err != nil {
		t.Fatalf("writing test module: %v", err)
	}

	loader := NewLoader(dir)
	body, err := loader.Load("math")
	if err != nil {
		t.Fatalf("Load(math) returned error: %v", err)
	}
	if !body.IsList() {
		t.Errorf("Load(math) body = %+v, want a List node", body)
	}
}
