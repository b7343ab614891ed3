// Package axlang is a small embeddable facade over the interpreter
// core, for Go programs that want to evaluate AxLang source without
// going through the CLI. It mirrors the teacher's pkg/dwscript shape:
// a functional-options-configured Engine with one Eval entry point.
package axlang

import (
	"bytes"
	"io"

	"github.com/axreldable/ax-lang-go/internal/debuglog"
	"github.com/axreldable/ax-lang-go/internal/eval"
	"github.com/axreldable/ax-lang-go/internal/parserclient"
	"github.com/axreldable/ax-lang-go/internal/runtime"
)

// Engine is one interpreter instance: a global environment, a module
// loader, and the external parser client its Eval calls round-trip
// through. Like the evaluator it wraps, an Engine is not safe to share
// across goroutines (§5 of the language spec).
type Engine struct {
	evaluator *eval.Evaluator
	parser    *parserclient.Client
	out       *bytes.Buffer
}

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	modulesRoot   string
	debug         bool
	out           io.Writer
	parserCommand string
	grammar       string
	mode          string
}

// WithModulesRoot overrides the `(import name)` search root (default
// "modules").
func WithModulesRoot(root string) Option {
	return func(o *options) { o.modulesRoot = root }
}

// WithDebug enables verbose evaluator tracing.
func WithDebug(enabled bool) Option {
	return func(o *options) { o.debug = enabled }
}

// WithOutput redirects `print` output away from the engine's internal
// buffer (the default Result.Output capture) to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithParser overrides the external parser subprocess's command,
// grammar file, and parsing mode (defaults: "syntax-cli",
// "ax-lang-grammar.bnf.g", "LALR1").
func WithParser(command, grammar, mode string) Option {
	return func(o *options) {
		o.parserCommand = command
		o.grammar = grammar
		o.mode = mode
	}
}

// New constructs an Engine ready to Eval AxLang source.
func New(opts ...Option) *Engine {
	o := options{
		modulesRoot:   "modules",
		parserCommand: "syntax-cli",
		grammar:       "ax-lang-grammar.bnf.g",
		mode:          "LALR1",
	}
	for _, apply := range opts {
		apply(&o)
	}

	log := debuglog.New(o.debug)

	buf := &bytes.Buffer{}
	out := io.Writer(buf)
	if o.out != nil {
		out = o.out
	}

	return &Engine{
		evaluator: eval.New(out, o.modulesRoot, log),
		parser:    parserclient.New(o.parserCommand, o.grammar, o.mode, log),
		out:       buf,
	}
}

// Result is the outcome of evaluating a program: the value the last
// top-level expression produced, and anything `print` wrote along the
// way (empty when the caller supplied WithOutput).
type Result struct {
	Value  runtime.Value
	Output string
}

// Eval parses "(begin <source>)" via the external parser and
// evaluates it in the engine's persistent global environment, so state
// (variables, defs, classes, modules) carries across successive Eval
// calls on the same Engine exactly as it does across REPL lines.
func (e *Engine) Eval(source string) (*Result, error) {
	e.out.Reset()
	body, err := e.parser.GetAST("(begin " + source + ")")
	if err != nil {
		return nil, err
	}

	value, err := e.evaluator.Eval(body, nil)
	if err != nil {
		return nil, err
	}

	return &Result{Value: value, Output: e.out.String()}, nil
}
