package cmd

import (
	"fmt"
	"os"

	"github.com/axreldable/ax-lang-go/internal/parserclient"
	"github.com/spf13/cobra"
)

// grammarPath is the grammar file the parser subprocess reads, resolved
// relative to the working directory. It carries the name of the original
// Python project's ax-lang-grammar.bnf.g; this repository does not
// include the grammar file itself.
const grammarPath = "ax-lang-grammar.bnf.g"

var exprCmd = &cobra.Command{
	Use:   "expr <source>",
	Short: "Evaluate a single expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSource(args[0])
	},
}

func init() {
	rootCmd.AddCommand(exprCmd)
}

// runSource parses "(begin <source>)" and evaluates it, printing the
// result to stdout. Both the `expr` and `file` subcommands share this
// path (§6): the only difference between them is where source comes
// from.
func runSource(source string) error {
	ev, err := newEvaluator(os.Stdout)
	if err != nil {
		return err
	}

	client := parserclient.New("syntax-cli", grammarPath, "LALR1", ev.Log)
	body, err := client.GetAST("(begin " + source + ")")
	if err != nil {
		return err
	}

	result, err := ev.Eval(body, nil)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
