package cte

import "github.com/ritamzico/sqlkit/internal/ast"

// Collect walks query's WITH clause (and every WITH nested inside a CTE
// body or subquery), returning a flat, per-scope topologically ordered list
// of every CTE found. Dependencies of a CTE are the sibling CTE names (in
// its own WITH scope) referenced as a BaseTable inside its body.
func Collect(query ast.SelectQuery) ([]Info, error) {
	var out []Info
	for _, with := range collectWithClauses(query) {
		scope := scopeNames(with.Tables)
		var scoped []Info
		for i := range with.Tables {
			t := &with.Tables[i]
			refs := baseTableNames(t.Query)
			info := Info{Name: t.Name, Query: t.Query, Materialized: t.Materialized}
			for name := range refs {
				if !scope[name] {
					continue
				}
				if name == t.Name {
					info.IsRecursive = true
					continue
				}
				info.Dependencies = append(info.Dependencies, name)
			}
			scoped = append(scoped, info)
		}
		addDependents(scoped)
		ordered, err := topoSort(scoped)
		if err != nil {
			return nil, err
		}
		if !with.Recursive {
			for i := range ordered {
				if ordered[i].IsRecursive {
					return nil, recursiveMarkerMismatch(ordered[i].Name)
				}
			}
		}
		out = append(out, ordered...)
	}
	return out, nil
}

func addDependents(infos []Info) {
	byName := make(map[string]*Info, len(infos))
	for i := range infos {
		byName[infos[i].Name] = &infos[i]
	}
	for i := range infos {
		for _, dep := range infos[i].Dependencies {
			if d, ok := byName[dep]; ok {
				d.Dependents = append(d.Dependents, infos[i].Name)
			}
		}
	}
}
