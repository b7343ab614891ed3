// Package debuglog provides the --debug verbose-tracing facility. It
// mirrors the teacher CLI's --verbose-gated fmt.Fprintf calls rather than
// pulling in a structured logging library: the original Python
// interpreter logged prolifically via logging.getLogger(__name__).debug,
// and go-dws's own CLI gates its diagnostic output behind a boolean flag
// instead of a logger object, so that is the idiom this package follows.
package debuglog

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
)

// Logger is a trivial, gated writer. The zero value is disabled and
// writes nothing; construct one with New(true) to turn on tracing (the
// CLI does so once at startup from the --debug flag).
type Logger struct {
	enabled bool
	out     io.Writer
}

// New returns a Logger writing to os.Stderr when enabled is true.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled, out: os.Stderr}
}

// Enabled reports whether tracing is on.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Debugf writes a formatted trace line if the logger is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	fmt.Fprintf(l.out, "[debug] "+format+"\n", args...)
}

// Dump pretty-prints v (an AST node, an environment snapshot, an
// argument list) using kr/pretty when tracing is enabled, matching the
// level of detail the Python source's f"{value!r}"-in-a-debug-log calls
// gave.
func (l *Logger) Dump(label string, v any) {
	if !l.Enabled() {
		return
	}
	fmt.Fprintf(l.out, "[debug] %s: %# v\n", label, pretty.Formatter(v))
}
