// Package modules implements `(import name)` (§4.5): locating,
// reading, and parsing a shipped `.ax` module file relative to a search
// root. It hands the evaluator back a parsed body; the evaluator itself
// does the `(module name body)` evaluation (see internal/eval/modules.go)
// — this package's job ends at producing an AST, the same separation
// the teacher draws between its unit registry (file search + parse) and
// its interpreter (LoadUnit orchestration, symbol import).
package modules

import (
	"os"
	"path/filepath"

	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/axerrors"
	"github.com/axreldable/ax-lang-go/internal/parserclient"
)

// Extension is the file suffix shipped modules use.
const Extension = ".ax"

// Loader locates and parses modules under Root.
type Loader struct {
	Root   string
	Parser *parserclient.Client
}

// NewLoader returns a Loader that searches root for "<name>.ax" files.
// It builds a default parser client the way the language's own CLI
// does (§6); callers that need a different subprocess configuration can
// set Parser directly after construction.
func NewLoader(root string) *Loader {
	return &Loader{
		Root:   root,
		Parser: parserclient.New("syntax-cli", filepath.Join(root, "..", "ax-lang-grammar.bnf.g"), "LALR1", nil),
	}
}

// Load reads modules/<name>.ax, parses `(begin <contents>)`, and returns
// the parsed body ready to be wrapped in `(module name body)`. File-not-
// found and parse failures both surface as *axerrors.ModuleError, per
// §4.5 and §7.
func (l *Loader) Load(name string) (ast.Node, error) {
	path := filepath.Join(l.Root, name+Extension)

	src, err := os.ReadFile(path)
	if err != nil {
		return ast.Node{}, &axerrors.ModuleError{Name: name, Err: err}
	}

	body, err := l.Parser.GetAST("(begin " + string(src) + ")")
	if err != nil {
		return ast.Node{}, &axerrors.ModuleError{Name: name, Err: err}
	}
	return body, nil
}
