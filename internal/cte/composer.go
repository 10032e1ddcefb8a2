package cte

import (
	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/format"
	"github.com/ritamzico/sqlkit/internal/parser"
	"github.com/ritamzico/sqlkit/internal/printtoken"
)

// Edit is one named CTE body to fold into a composed query.
type Edit struct {
	Name string
	Text string
}

// buildTables parses each edit's text and returns the union of explicit and
// hoisted CTE table definitions, in the rule Compose and Synchronize share:
// a non-recursive edit's own nested WITH tables are hoisted as anonymous
// siblings unless their name collides with an explicit edit name.
func buildTables(edits []Edit) ([]ast.CTE, error) {
	explicit := make(map[string]bool, len(edits))
	for _, e := range edits {
		explicit[e.Name] = true
	}

	var tables []ast.CTE
	seen := map[string]bool{}
	for _, e := range edits {
		q, err := parser.ParseSelect(e.Text)
		if err != nil {
			return nil, err
		}
		body := q
		if sel, ok := q.(*ast.SimpleSelect); ok && sel.With != nil && !sel.With.Recursive {
			for _, inner := range sel.With.Tables {
				if explicit[inner.Name] || seen[inner.Name] {
					continue
				}
				seen[inner.Name] = true
				tables = append(tables, inner)
			}
			clone := *sel
			clone.With = nil
			body = &clone
		}
		tables = append(tables, ast.CTE{Name: e.Name, Query: body})
		seen[e.Name] = true
	}
	return tables, nil
}

// Compose parses each edit's text as a SELECT query and assembles a single
// `WITH ... SELECT` whose body is rootQuery (emitted verbatim). Inner WITH
// tables nested inside a non-recursive edit are hoisted as anonymous
// siblings unless their name collides with another edit's name, in which
// case the explicit edit wins and the inner definition is dropped. A
// recursive edit's own WITH is left untouched inside its body.
func Compose(edits []Edit, rootQuery string) (string, error) {
	tables, err := buildTables(edits)
	if err != nil {
		return "", err
	}

	ordered, err := orderTables(tables)
	if err != nil {
		return "", err
	}

	with := &ast.WithClause{Tables: ordered}
	toks := printtoken.EmitWith(with)
	text, err := format.Format(toks, format.DefaultOptions())
	if err != nil {
		return "", err
	}
	return text + rootQuery, nil
}

// orderTables computes dependency edges across tables (the same sibling-
// BaseTable-reference rule Collect uses) and returns them in topological
// order, preserving input order among unrelated entries.
func orderTables(tables []ast.CTE) ([]ast.CTE, error) {
	scope := scopeNames(tables)
	infos := make([]Info, len(tables))
	for i, t := range tables {
		info := Info{Name: t.Name, Query: t.Query, Materialized: t.Materialized}
		for name := range baseTableNames(t.Query) {
			if !scope[name] || name == t.Name {
				continue
			}
			info.Dependencies = append(info.Dependencies, name)
		}
		infos[i] = info
	}
	ordered, err := topoSort(infos)
	if err != nil {
		return nil, err
	}
	out := make([]ast.CTE, len(ordered))
	for i, info := range ordered {
		out[i] = ast.CTE{Name: info.Name, Query: info.Query, Materialized: info.Materialized}
	}
	return out, nil
}
