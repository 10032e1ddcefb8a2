package ast

// Walk visits node and every descendant depth-first, calling visit once per
// node. It is the single dispatch point new node kinds must flow through —
// Children() already knows how to enumerate a node's direct descendants, so
// Walk never needs a per-variant type switch of its own.
func Walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children() {
		Walk(child, visit)
	}
}

// BaseTableRefs collects every BaseTable reachable from root. When
// includeCTEBodies is false, it does not descend into WithClause.Tables'
// query bodies (used by the CTE dependency scan, which wants only the
// references made directly in a CTE's own body).
func BaseTableRefs(root Node, includeCTEBodies bool) []*BaseTable {
	var out []*BaseTable
	var visit func(Node)
	visit = func(n Node) {
		switch v := n.(type) {
		case *BaseTable:
			out = append(out, v)
		case *WithClause:
			if !includeCTEBodies {
				return
			}
		}
		for _, c := range n.Children() {
			visit(c)
		}
	}
	visit(root)
	return out
}
