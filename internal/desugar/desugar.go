// Package desugar implements AxLang's syntactic-sugar rewrites: pure,
// stateless AST-to-AST transforms that turn a convenience form into the
// primitive form the evaluator actually knows how to run (§4.3). Each
// function here mirrors one method of the Python original's
// ax_lang.interpreter.transformer.Transformer class.
package desugar

import "github.com/axreldable/ax-lang-go/internal/ast"

// DefToLambda translates `(def name params body)` into
// `(var name (lambda params body))`.
func DefToLambda(defExpr ast.Node) ast.Node {
	name, params, body := defExpr.Elems[1], defExpr.Elems[2], defExpr.Elems[3]
	return ast.NewList(
		ast.NewSymbol("var"),
		name,
		ast.NewList(ast.NewSymbol("lambda"), params, body),
	)
}

// SwitchToIf translates `(switch (c1 b1) (c2 b2) ... (else bE))` into the
// right-nested `(if c1 b1 (if c2 b2 ... bE))`. The `(else ...)` clause
// must be last; if it is missing, the innermost alternate is left as
// `null` (a bare Symbol node), and the evaluator's `if` rule returns null
// when that branch is taken — this is an accepted edge case, not an
// error (§4.1).
func SwitchToIf(switchExpr ast.Node) ast.Node {
	clauses := switchExpr.Elems[1:]

	root := ast.NewList(ast.NewSymbol("if"), ast.Node{}, ast.Node{}, ast.NewSymbol("null"))
	cur := &root

	for i := 0; i < len(clauses); i++ {
		clause := clauses[i]
		cond, block := clause.Elems[0], clause.Elems[1]

		isElse := cond.Kind == ast.Sym && cond.Text == "else"
		if isElse {
			cur.Elems[3] = block
			break
		}

		cur.Elems[1] = cond
		cur.Elems[2] = block

		if i == len(clauses)-1 {
			// No trailing else clause: leave the dangling null alternate.
			break
		}

		if next := clauses[i+1]; next.Elems[0].Kind == ast.Sym && next.Elems[0].Text == "else" {
			// The else body is this if's alternate; no further nesting.
			cur.Elems[3] = next.Elems[1]
			break
		}

		nested := ast.NewList(ast.NewSymbol("if"), ast.Node{}, ast.Node{}, ast.NewSymbol("null"))
		cur.Elems[3] = nested
		cur = &cur.Elems[3]
	}

	return root
}

// ForToWhile translates `(for init cond step body)` into
// `(begin init (while cond (begin body step)))`, matching the order the
// Python original evaluates them in: the loop body runs before the step
// expression on every iteration.
func ForToWhile(forExpr ast.Node) ast.Node {
	init, cond, step, body := forExpr.Elems[1], forExpr.Elems[2], forExpr.Elems[3], forExpr.Elems[4]
	return ast.NewList(
		ast.NewSymbol("begin"),
		init,
		ast.NewList(
			ast.NewSymbol("while"),
			cond,
			ast.NewList(ast.NewSymbol("begin"), body, step),
		),
	)
}

// IncToSet translates `(++ x)` into `(set x (+ x 1))`.
func IncToSet(expr ast.Node) ast.Node { return compoundToSet(expr.Elems[1], "+", ast.NewInt(1)) }

// DecToSet translates `(-- x)` into `(set x (- x 1))`.
func DecToSet(expr ast.Node) ast.Node { return compoundToSet(expr.Elems[1], "-", ast.NewInt(1)) }

// PlusAssignToSet translates `(+= x v)` into `(set x (+ x v))`.
func PlusAssignToSet(expr ast.Node) ast.Node {
	return compoundToSet(expr.Elems[1], "+", expr.Elems[2])
}

// MinusAssignToSet translates `(-= x v)` into `(set x (- x v))`.
func MinusAssignToSet(expr ast.Node) ast.Node {
	return compoundToSet(expr.Elems[1], "-", expr.Elems[2])
}

// MulAssignToSet translates `(*= x v)` into `(set x (* x v))`. Not named
// in spec.md's keyword table, but the spec explicitly invites `*=`/`/=`
// "by the same pattern" (§4.3), so AxLang supports them.
func MulAssignToSet(expr ast.Node) ast.Node {
	return compoundToSet(expr.Elems[1], "*", expr.Elems[2])
}

// DivAssignToSet translates `(/= x v)` into `(set x (/ x v))`.
func DivAssignToSet(expr ast.Node) ast.Node {
	return compoundToSet(expr.Elems[1], "/", expr.Elems[2])
}

func compoundToSet(target ast.Node, op string, operand ast.Node) ast.Node {
	return ast.NewList(
		ast.NewSymbol("set"),
		target,
		ast.NewList(ast.NewSymbol(op), target, operand),
	)
}
