// Package parserclient invokes the external parser (§4.6 and §6 of the
// language spec) and normalizes its output into an ast.Node. The parser
// itself is out of scope for this repository — it is a subprocess the
// client shells out to, grounded directly on the original Python
// implementation's ax_lang/parser/parser.py, which drove a `syntax-cli`
// LALR(1) parser generated from a grammar file.
package parserclient

import (
	"bytes"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/axreldable/ax-lang-go/internal/axerrors"
	"github.com/axreldable/ax-lang-go/internal/debuglog"
	"github.com/tidwall/gjson"
)

// ansiEscape matches a terminal color escape sequence, e.g. "\x1b[22m".
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

const parsedValueMarker = "Parsed value:"

// Client invokes an external parser subprocess and decodes its output.
type Client struct {
	// Command is the subprocess executable name, e.g. "syntax-cli".
	Command string
	// Grammar is the grammar file path passed to the parser.
	Grammar string
	// Mode is the parsing algorithm, e.g. "LALR1".
	Mode string
	Log   *debuglog.Logger
}

// New returns a Client with the given subprocess command, grammar file,
// and parsing mode. log may be nil.
func New(command, grammar, mode string, log *debuglog.Logger) *Client {
	if log == nil {
		log = debuglog.New(false)
	}
	return &Client{Command: command, Grammar: grammar, Mode: mode, Log: log}
}

// GetAST parses expr into an ast.Node following the five steps of §4.6:
// first a standalone-numeric-literal shortcut (to work around the
// grammar rejecting bare negative numbers at the top level), then the
// subprocess round trip with ANSI-stripped, JSON-decoded output, falling
// back to a bare Symbol when the stripped output is not valid JSON.
func (c *Client) GetAST(expr string) (ast.Node, error) {
	if n, ok := tryParseNumber(expr); ok {
		return n, nil
	}

	c.Log.Debugf("invoking parser subprocess on %q", expr)
	cmd := exec.Command(c.Command, "-g", c.Grammar, "-m", c.Mode, "-p", expr)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return ast.Node{}, &axerrors.ParserError{Input: expr, Err: err}
	}

	parsedValue := extractParsedValue(stdout.String())
	c.Log.Debugf("parsed value: %s", parsedValue)

	if !gjson.Valid(parsedValue) {
		return ast.NewSymbol(parsedValue), nil
	}

	return gjsonToNode(gjson.Parse(parsedValue)), nil
}

// extractParsedValue implements steps 1-2 of §4.6: find the
// "Parsed value:" marker, take everything after it, and strip ANSI
// color escapes.
func extractParsedValue(output string) string {
	idx := strings.LastIndex(output, parsedValueMarker)
	if idx == -1 {
		return strings.TrimSpace(ansiEscape.ReplaceAllString(output, ""))
	}
	after := output[idx+len(parsedValueMarker):]
	return strings.TrimSpace(ansiEscape.ReplaceAllString(after, ""))
}

// tryParseNumber implements §4.6 step 4: a standalone numeric literal,
// optionally signed, is recognized directly without invoking the
// subprocess at all. This is the workaround for negative-number literals
// the grammar rejects at the top level (SPEC_FULL.md Open Question 2).
func tryParseNumber(expr string) (ast.Node, bool) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return ast.Node{}, false
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return ast.NewInt(i), true
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return ast.NewFloat(f), true
	}
	return ast.Node{}, false
}

// gjsonToNode converts a decoded JSON value into an ast.Node. gjson's
// schemaless Result — rather than unmarshalling into a fixed Go struct
// — is what this needs: the JSON shape is a dynamic tagged union
// (numbers, strings, nested arrays) mirroring the AST itself, so walking
// gjson.Result.Array()/Type directly avoids defining an intermediate
// struct just to throw it away.
func gjsonToNode(r gjson.Result) ast.Node {
	switch {
	case r.IsArray():
		items := r.Array()
		elems := make([]ast.Node, len(items))
		for i, item := range items {
			elems[i] = gjsonToNode(item)
		}
		return ast.NewList(elems...)

	case r.Type == gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return ast.NewFloat(r.Num)
		}
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return ast.NewInt(i)
		}
		return ast.NewFloat(r.Num)

	case r.Type == gjson.String:
		text := r.String()
		if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
			return ast.NewString(text)
		}
		return ast.NewSymbol(text)

	case r.Type == gjson.True:
		return ast.NewSymbol("true")
	case r.Type == gjson.False:
		return ast.NewSymbol("false")
	case r.Type == gjson.Null:
		return ast.NewSymbol("null")

	default:
		return ast.NewSymbol(r.Raw)
	}
}
