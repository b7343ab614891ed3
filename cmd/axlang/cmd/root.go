package cmd

import (
	"fmt"

	"github.com/axreldable/ax-lang-go/internal/builtins"
	"github.com/axreldable/ax-lang-go/internal/config"
	"github.com/axreldable/ax-lang-go/internal/debuglog"
	"github.com/axreldable/ax-lang-go/internal/eval"
	"github.com/spf13/cobra"
)

// Version is the interpreter's version string, reported by `axlang
// version` and bound to scripts as the VERSION global (internal/builtins).
const Version = builtins.Version

var (
	debugFlag   bool
	modulesFlag string
)

var rootCmd = &cobra.Command{
	Use:   "axlang",
	Short: "AxLang interpreter",
	Long: `axlang is an interpreter for AxLang, a small Lisp-like
expression-oriented language.

Run with no arguments to start an interactive REPL, or use the "expr"
and "file" subcommands to evaluate a single expression or script.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable verbose evaluator tracing")
	rootCmd.PersistentFlags().StringVar(&modulesFlag, "modules", "", "override the module search root (default: ./modules)")
}

// newEvaluator builds an Evaluator honoring the CLI's configuration
// precedence (SPEC_FULL.md §1): flag > AXLANG_MODULES env var > the
// optional axlang.yaml config file > the built-in default.
func newEvaluator(out interface{ Write([]byte) (int, error) }) (*eval.Evaluator, error) {
	cfg, err := config.Load("axlang.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading axlang.yaml: %w", err)
	}

	modulesRoot := config.Resolve(modulesFlag, cfg)
	debug := debugFlag || cfg.Debug
	log := debuglog.New(debug)

	return eval.New(out, modulesRoot, log), nil
}
