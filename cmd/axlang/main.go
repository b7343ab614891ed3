// Command axlang is the AxLang interpreter: a REPL by default, or a
// one-shot expression/file runner (§6).
package main

import (
	"fmt"
	"os"

	"github.com/axreldable/ax-lang-go/cmd/axlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
