package parserclient

import (
	"testing"

	"github.com/axreldable/ax-lang-go/internal/ast"
	"github.com/tidwall/gjson"
)

func TestTryParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantOK  bool
		wantInt int64
	}{
		{"positive integer", "42", true, 42},
		{"negative integer", "-42", true, -42},
		{"not a number", "(+ 1 2)", false, 0},
		{"empty", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tryParseNumber(tt.expr)
			if ok != tt.wantOK {
				t.Fatalf("tryParseNumber(%q) ok = %v, want %v", tt.expr, ok, tt.wantOK)
			}
			if ok && (n.Kind != ast.Int || n.Int64 != tt.wantInt) {
				t.Errorf("tryParseNumber(%q) = %+v, want Integer(%d)", tt.expr, n, tt.wantInt)
			}
		})
	}
}

func TestTryParseNumberFloat(t *testing.T) {
	n, ok := tryParseNumber("-3.5")
	if !ok {
		t.Fatal("tryParseNumber(-3.5) ok = false, want true")
	}
	if n.Kind != ast.Float || n.Float64 != -3.5 {
		t.Errorf("tryParseNumber(-3.5) = %+v, want Float(-3.5)", n)
	}
}

func TestExtractParsedValue(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"plain marker", "some preamble\nParsed value: [1,2,3]\n", "[1,2,3]"},
		{"ansi colored", "Parsed value: \x1b[32m[1,2,3]\x1b[0m\n", "[1,2,3]"},
		{"no marker falls back to whole trimmed output", "  [1,2,3]  \n", "[1,2,3]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractParsedValue(tt.output); got != tt.want {
				t.Errorf("extractParsedValue(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestGjsonToNode(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"integer", "5", "5"},
		{"float", "5.5", "5.5"},
		{"quoted string", `"\"hi\""`, `"hi"`},
		{"identifier", `"x"`, "x"},
		{"nested list", `["+", 1, ["-", 2, 3]]`, "(+ 1 (- 2 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gjsonToNode(gjson.Parse(tt.json)).String()
			if got != tt.want {
				t.Errorf("gjsonToNode(%s) = %q, want %q", tt.json, got, tt.want)
			}
		})
	}
}
