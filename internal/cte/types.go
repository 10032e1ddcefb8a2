// Package cte implements C7: CTE dependency analysis and rewriting over a
// parsed SELECT query — collecting, decomposing, recomposing, extracting,
// and synchronizing WITH-clause entries.
package cte

import "github.com/ritamzico/sqlkit/internal/ast"

// Info is one CTE's dependency-analysis record, as returned by Collect,
// Decompose, and Synchronize.
type Info struct {
	Name         string
	Query        ast.SelectQuery
	Dependencies []string
	Dependents   []string
	IsRecursive  bool
	Materialized *bool
}

// scopeNames is the set of CTE names visible in one WITH scope, used to
// decide whether a BaseTable reference is a dependency edge or an ordinary
// table reference.
func scopeNames(tables []ast.CTE) map[string]bool {
	names := make(map[string]bool, len(tables))
	for _, t := range tables {
		names[t.Name] = true
	}
	return names
}
