package cte

// topoSort orders infos so every dependency of an entry precedes it,
// returning CyclicDependency if the dependency graph (excluding a CTE's own
// self-reference, which marks IsRecursive rather than a genuine cycle) has
// a cycle.
func topoSort(infos []Info) ([]Info, error) {
	byName := make(map[string]*Info, len(infos))
	for i := range infos {
		byName[infos[i].Name] = &infos[i]
	}

	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int, len(infos))
	var order []Info
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		info, ok := byName[name]
		if !ok {
			return nil // dependency outside this scope
		}
		switch color[name] {
		case black:
			return nil
		case gray:
			return cyclicDependency(append(append([]string{}, path...), name))
		}
		color[name] = gray
		path = append(path, name)
		for _, dep := range info.Dependencies {
			if dep == name {
				continue // self-reference: recursive, not cyclic
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		color[name] = black
		order = append(order, *info)
		return nil
	}

	for _, info := range infos {
		if err := visit(info.Name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
