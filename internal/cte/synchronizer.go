package cte

import "github.com/ritamzico/sqlkit/internal/parser"

// Synchronize expands each edit's own nested WITH tables into anonymous
// siblings (the same rule Compose applies), recomputes dependencies across
// the combined set, and returns a normalized, topologically ordered CTE
// list. rootQuery's table references are folded into Dependents under the
// synthetic name "" so callers can see which CTEs the root actually uses.
func Synchronize(edits []Edit, rootQuery string) ([]Info, error) {
	tables, err := buildTables(edits)
	if err != nil {
		return nil, err
	}

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
	addDependents(infos)

	if rootSel, err := parser.ParseSelect(rootQuery); err == nil {
		for name := range baseTableNames(rootSel) {
			if !scope[name] {
				continue
			}
			for i := range infos {
				if infos[i].Name == name {
					infos[i].Dependents = append(infos[i].Dependents, "")
				}
			}
		}
	}

	return topoSort(infos)
}
