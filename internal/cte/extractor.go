package cte

import (
	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/format"
	"github.com/ritamzico/sqlkit/internal/printtoken"
)

// Extracted is the result of Extract: a standalone, runnable rendering of
// one CTE plus its transitive dependency closure.
type Extracted struct {
	Name          string
	Dependencies  []string
	ExecutableSQL string
	Warnings      []string
}

// Extract builds a runnable snippet that defines only name's transitive
// dependencies (in topo order) followed by a query producing name's rows.
// An unresolved dependency is reported as a warning, not a hard error.
func Extract(query ast.SelectQuery, name string) (*Extracted, error) {
	infos, err := Collect(query)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Info, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	target, ok := byName[name]
	if !ok {
		return nil, unknownCte(name)
	}

	var warnings []string
	seen := map[string]bool{}
	var deps []ast.CTE
	var depNames []string
	var resolve func(info Info)
	resolve = func(info Info) {
		for _, depName := range info.Dependencies {
			if depName == info.Name || seen[depName] {
				continue
			}
			dep, ok := byName[depName]
			if !ok {
				warnings = append(warnings, "unresolved dependency: "+depName)
				continue
			}
			seen[depName] = true
			resolve(dep)
			deps = append(deps, ast.CTE{Name: dep.Name, Query: dep.Query, Materialized: dep.Materialized})
			depNames = append(depNames, dep.Name)
		}
	}
	resolve(target)

	outer := buildOuterQuery(target, deps)
	toks := printtoken.EmitQuery(outer)
	sql, err := format.Format(toks, format.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return &Extracted{Name: name, Dependencies: depNames, ExecutableSQL: sql, Warnings: warnings}, nil
}

// buildOuterQuery attaches deps to target's body if it is already a
// SimpleSelect (the common case), or wraps it as `SELECT * FROM (body) t`
// otherwise so the dependency WITH clause still has somewhere to attach.
func buildOuterQuery(target Info, deps []ast.CTE) ast.SelectQuery {
	if sel, ok := target.Query.(*ast.SimpleSelect); ok {
		clone := *sel
		merged := append(append([]ast.CTE{}, deps...), existingTables(sel)...)
		if len(merged) > 0 {
			clone.With = &ast.WithClause{Tables: merged}
		}
		return &clone
	}
	wrapper := &ast.SimpleSelect{
		SelectItems: []ast.SelectItem{{Expr: &ast.Star{}}},
		From:        &ast.DerivedTable{Query: target.Query, Alias: "t"},
	}
	if len(deps) > 0 {
		wrapper.With = &ast.WithClause{Tables: deps}
	}
	return wrapper
}
