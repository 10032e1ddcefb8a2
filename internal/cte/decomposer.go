package cte

import "github.com/ritamzico/sqlkit/internal/ast"

// Decompose returns the same per-CTE records as Collect, except each
// entry's Query is made self-contained: a synthesized WITH clause carrying
// copies of its transitive dependencies is attached, so the body can run on
// its own. The root query itself is not part of the returned list.
func Decompose(query ast.SelectQuery) ([]Info, error) {
	infos, err := Collect(query)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Info, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	out := make([]Info, len(infos))
	for i, info := range infos {
		deps := transitiveDeps(info, byName, map[string]bool{})
		if len(deps) > 0 {
			info.Query = attachWith(info.Query, deps)
		}
		out[i] = info
	}
	return out, nil
}

// transitiveDeps resolves info's full dependency closure, excluding itself,
// ordered so that a dependency's own dependencies precede it.
func transitiveDeps(info Info, byName map[string]Info, seen map[string]bool) []ast.CTE {
	var out []ast.CTE
	for _, depName := range info.Dependencies {
		if depName == info.Name || seen[depName] {
			continue
		}
		dep, ok := byName[depName]
		if !ok {
			continue
		}
		seen[depName] = true
		out = append(out, transitiveDeps(dep, byName, seen)...)
		out = append(out, ast.CTE{
			Header:       ast.Header{Position: dep.Query.Pos()},
			Name:         dep.Name,
			Materialized: dep.Materialized,
			Query:        dep.Query,
		})
	}
	return out
}

// attachWith wraps query's root SimpleSelect in a synthesized WithClause
// carrying tables. If query already has a WITH clause, tables are merged
// ahead of the existing ones (dependencies must come first).
func attachWith(query ast.SelectQuery, tables []ast.CTE) ast.SelectQuery {
	sel, ok := query.(*ast.SimpleSelect)
	if !ok {
		// BinarySelectQuery/ValuesQuery have no WITH slot of their own; wrap
		// them as the body of a synthesized outer SELECT is unnecessary here
		// since Decompose only needs the body runnable, and a bare
		// set-operator/VALUES query carries no table-name scope of its own.
		return query
	}
	merged := append(append([]ast.CTE{}, tables...), existingTables(sel)...)
	clone := *sel
	clone.With = &ast.WithClause{Header: ast.Header{Position: sel.Pos()}, Tables: merged}
	return &clone
}

func existingTables(sel *ast.SimpleSelect) []ast.CTE {
	if sel.With == nil {
		return nil
	}
	return sel.With.Tables
}
