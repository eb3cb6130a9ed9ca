package convert

import "github.com/Sumatoshi-tech/astbridge/pkg/estree"

// directiveValue returns the string of an expression statement consisting of
// a single string literal.
func directiveValue(stmt estree.Node) (string, bool) {
	es, ok := stmt.(*estree.ExpressionStatement)
	if !ok || es == nil {
		return "", false
	}

	lit, ok := es.Expression.(*estree.Literal)
	if !ok || lit == nil || lit.Regex != nil {
		return "", false
	}

	s, ok := lit.Value.(string)

	return s, ok
}

// directivePrologueLen counts the leading string-literal expression
// statements of a statement list.
func directivePrologueLen(stmts []estree.Node) int {
	for i, stmt := range stmts {
		if _, ok := directiveValue(stmt); !ok {
			return i
		}
	}

	return len(stmts)
}

// splitDirectives partitions a body into its directive prologue and the
// remaining statements. Empty parts are nil.
func splitDirectives(stmts []estree.Node) ([]estree.Node, []estree.Node) {
	n := directivePrologueLen(stmts)

	var prologue, rest []estree.Node
	if n > 0 {
		prologue = stmts[:n]
	}

	if n < len(stmts) {
		rest = stmts[n:]
	}

	return prologue, rest
}
