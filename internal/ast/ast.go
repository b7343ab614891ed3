// Package ast defines the AST node type produced by the external parser
// and consumed by the evaluator.
//
// AxLang's surface syntax is fully parenthesized, so a single tagged union
// is enough to represent every node: numbers and symbols are atoms, and
// everything else — including every special form — is a List. There is
// no separate struct per construct the way a conventional statement/
// expression AST would have one; the evaluator decides what a List means
// by looking at its head.
package ast

import (
	"strconv"
	"strings"
)

// Kind identifies which alternative of the Node tagged union is populated.
type Kind int

const (
	// Int is a whole-number literal. Int64 holds the value.
	Int Kind = iota
	// Float is a fractional-number literal. Float64 holds the value.
	Float
	// Sym is a bare identifier or operator token, e.g. x, +, ==.
	Sym
	// Str is a string literal. Text carries the content *including* the
	// surrounding double quotes, per §3.1 of the language spec.
	Str
	// List is an ordered, possibly-empty sequence of child nodes.
	List
)

// Node is an AST node: one Integer, Float, String literal, Symbol, or List.
// It is a value type; copying a Node copies the Elems slice header only
// (as with any Go slice), so sharing a List's elements between two Nodes
// is safe as long as neither mutates Elems in place.
type Node struct {
	Kind    Kind
	Int64   int64
	Float64 float64
	Text    string // Symbol name, or String literal text (quotes included)
	Elems   []Node // List children; nil/empty for atoms
}

// NewInt builds an Integer node.
func NewInt(v int64) Node { return Node{Kind: Int, Int64: v} }

// NewFloat builds a Float node.
func NewFloat(v float64) Node { return Node{Kind: Float, Float64: v} }

// NewSymbol builds a Symbol node.
func NewSymbol(name string) Node { return Node{Kind: Sym, Text: name} }

// NewString builds a String-literal node. quoted must already carry its
// surrounding double quotes.
func NewString(quoted string) Node { return Node{Kind: Str, Text: quoted} }

// NewList builds a List node from the given elements.
func NewList(elems ...Node) Node { return Node{Kind: List, Elems: elems} }

// IsList reports whether n is a (possibly empty) List node.
func (n Node) IsList() bool { return n.Kind == List }

// IsSymbol reports whether n is a Symbol node.
func (n Node) IsSymbol() bool { return n.Kind == Sym }

// Head returns the first element of a List node, or the zero Node if the
// list is empty. Callers should check IsList/len(Elems) first when the
// distinction between "empty list" and "not a list" matters.
func (n Node) Head() Node {
	if n.Kind != List || len(n.Elems) == 0 {
		return Node{}
	}
	return n.Elems[0]
}

// HeadSymbol returns the text of n's head element when that head is a
// Symbol, and ok=false otherwise. It is the primary dispatch helper the
// evaluator and desugarer use to decide what a List means.
func (n Node) HeadSymbol() (string, bool) {
	if n.Kind != List || len(n.Elems) == 0 {
		return "", false
	}
	h := n.Elems[0]
	if h.Kind != Sym {
		return "", false
	}
	return h.Text, true
}

// IsQuotedString reports whether n is a Symbol or String node whose text
// begins and ends with a double quote, per the self-evaluating-string
// dispatch rule (§4.1 rule 2). The external parser may hand back a quoted
// literal tagged as either Sym or Str depending on how it was produced.
func (n Node) IsQuotedString() bool {
	if n.Kind != Sym && n.Kind != Str {
		return false
	}
	return len(n.Text) >= 2 && n.Text[0] == '"' && n.Text[len(n.Text)-1] == '"'
}

// StringContent strips the surrounding quotes from a quoted-string node.
// Callers must check IsQuotedString first.
func (n Node) StringContent() string {
	return n.Text[1 : len(n.Text)-1]
}

// String renders n back into AxLang surface syntax. It is used for debug
// logging and for error messages, not by the evaluator itself.
func (n Node) String() string {
	switch n.Kind {
	case Int:
		return strconv.FormatInt(n.Int64, 10)
	case Float:
		return strconv.FormatFloat(n.Float64, 'g', -1, 64)
	case Sym, Str:
		return n.Text
	case List:
		parts := make([]string, len(n.Elems))
		for i, e := range n.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "<invalid-node>"
	}
}
