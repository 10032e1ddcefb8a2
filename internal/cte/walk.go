package cte

import "github.com/ritamzico/sqlkit/internal/ast"

// walk visits node and every descendant reachable through Children(),
// calling visit on each. It never descends into a node twice.
func walk(node ast.Node, visit func(ast.Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children() {
		walk(child, visit)
	}
}

// collectWithClauses finds every WithClause reachable from query, including
// ones nested inside subqueries or CTE bodies.
func collectWithClauses(query ast.SelectQuery) []*ast.WithClause {
	var out []*ast.WithClause
	walk(query, func(n ast.Node) {
		if w, ok := n.(*ast.WithClause); ok {
			out = append(out, w)
		}
	})
	return out
}

// baseTableNames returns the set of unqualified table names referenced via
// BaseTable anywhere under node.
func baseTableNames(node ast.Node) map[string]bool {
	names := map[string]bool{}
	walk(node, func(n ast.Node) {
		if bt, ok := n.(*ast.BaseTable); ok {
			names[bt.Name()] = true
		}
	})
	return names
}
