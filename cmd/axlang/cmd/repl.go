package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/axreldable/ax-lang-go/internal/multiline"
	"github.com/axreldable/ax-lang-go/internal/parserclient"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

// runREPL implements §6's interactive session: a fresh-expression
// prompt, a continuation prompt while multiline.IsComplete says the
// accumulated input is unbalanced, exit/quit/q/EOF termination, and an
// interrupt that discards in-progress input rather than quitting.
// State persists across expressions by reusing one Evaluator (and so
// one global Environment) for the whole session.
func runREPL() error {
	ev, err := newEvaluator(os.Stdout)
	if err != nil {
		return err
	}
	client := parserclient.New("syntax-cli", grammarPath, "LALR1", ev.Log)

	rl, err := readline.New(promptColor.Sprint("axlang> "))
	if err != nil {
		return err
	}
	defer rl.Close()

	var buf strings.Builder

	for {
		if buf.Len() == 0 {
			rl.SetPrompt(promptColor.Sprint("axlang> "))
		} else {
			rl.SetPrompt(promptColor.Sprint("...     "))
		}

		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if buf.Len() > 0 {
				buf.Reset()
				continue
			}
			fmt.Println("(press Ctrl+D or type exit/quit/q to leave)")
			continue
		case errors.Is(err, io.EOF):
			fmt.Println("Goodbye!")
			return nil
		case err != nil:
			return err
		}

		if buf.Len() == 0 {
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "exit", "quit", "q":
				fmt.Println("Goodbye!")
				return nil
			}
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		if !multiline.IsComplete(buf.String()) {
			continue
		}

		source := strings.TrimSpace(buf.String())
		buf.Reset()
		if source == "" {
			continue
		}

		body, err := client.GetAST("(begin " + source + ")")
		if err != nil {
			errorColor.Fprintln(os.Stderr, err)
			continue
		}

		result, err := ev.Eval(body, nil)
		if err != nil {
			errorColor.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}
