package ast

// CloneValue returns a deep, independent copy of v. Used by the CTE
// decomposer/composer so detached subtrees never alias the source tree.
func CloneValue(v Value) Value {
	if v == nil {
		return nil
	}
	switch n := v.(type) {
	case *Literal:
		cp := *n
		return &cp
	case *Ident:
		cp := *n
		return &cp
	case *Qualified:
		cp := *n
		cp.Parts = append([]Ident(nil), n.Parts...)
		return &cp
	case *Param:
		cp := *n
		return &cp
	case *Star:
		cp := *n
		cp.Qualifier = append([]Ident(nil), n.Qualifier...)
		return &cp
	case *BinaryExpr:
		cp := *n
		cp.Lhs = CloneValue(n.Lhs)
		cp.Rhs = CloneValue(n.Rhs)
		return &cp
	case *UnaryExpr:
		cp := *n
		cp.Operand = CloneValue(n.Operand)
		return &cp
	case *CastExpr:
		cp := *n
		cp.Expr = CloneValue(n.Expr)
		return &cp
	case *BetweenExpr:
		cp := *n
		cp.Expr = CloneValue(n.Expr)
		cp.Low = CloneValue(n.Low)
		cp.High = CloneValue(n.High)
		return &cp
	case *InListExpr:
		cp := *n
		cp.Items = cloneValues(n.Items)
		if n.Subquery != nil {
			cp.Subquery = CloneSelectQuery(n.Subquery)
		}
		return &cp
	case *ExistsExpr:
		cp := *n
		cp.Subquery = CloneSelectQuery(n.Subquery)
		return &cp
	case *SubqueryExpr:
		cp := *n
		cp.Query = CloneSelectQuery(n.Query)
		return &cp
	case *ArrayAccessExpr:
		cp := *n
		cp.Array = CloneValue(n.Array)
		cp.Index = CloneValue(n.Index)
		return &cp
	case *TupleExpr:
		cp := *n
		cp.Items = cloneValues(n.Items)
		return &cp
	case *CaseExpr:
		cp := *n
		cp.Operand = CloneValue(n.Operand)
		cp.Else = CloneValue(n.Else)
		cp.Whens = make([]WhenClause, len(n.Whens))
		for i, w := range n.Whens {
			cp.Whens[i] = WhenClause{Header: w.Header, Condition: CloneValue(w.Condition), Result: CloneValue(w.Result)}
		}
		return &cp
	case *OrderBy:
		return cloneOrderBy(n)
	case *WindowSpec:
		cp := *n
		cp.PartitionBy = cloneValues(n.PartitionBy)
		if n.OrderBy != nil {
			cp.OrderBy = cloneOrderBy(n.OrderBy)
		}
		return &cp
	case *FunctionCall:
		cp := *n
		cp.QName = append([]Ident(nil), n.QName...)
		cp.Args = cloneValues(n.Args)
		if n.ArgOrderBy != nil {
			cp.ArgOrderBy = cloneOrderBy(n.ArgOrderBy)
		}
		if n.WithinGroup != nil {
			cp.WithinGroup = cloneOrderBy(n.WithinGroup)
		}
		cp.Filter = CloneValue(n.Filter)
		if n.Over != nil {
			w := CloneValue(n.Over).(*WindowSpec)
			cp.Over = w
		}
		return &cp
	default:
		return v
	}
}

func cloneValues(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = CloneValue(v)
	}
	return out
}

func cloneOrderBy(o *OrderBy) *OrderBy {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = make([]OrderByItem, len(o.Items))
	for i, it := range o.Items {
		cp.Items[i] = OrderByItem{Header: it.Header, Expr: CloneValue(it.Expr), Descending: it.Descending, HasNulls: it.HasNulls, NullsFirst: it.NullsFirst}
	}
	return &cp
}

// CloneTableSource returns a deep copy of a TableSource.
func CloneTableSource(t TableSource) TableSource {
	if t == nil {
		return nil
	}
	switch n := t.(type) {
	case *BaseTable:
		cp := *n
		cp.QName = append([]Ident(nil), n.QName...)
		return &cp
	case *DerivedTable:
		cp := *n
		cp.Query = CloneSelectQuery(n.Query)
		return &cp
	case *FunctionSource:
		cp := *n
		if n.Call != nil {
			cp.Call = CloneValue(n.Call).(*FunctionCall)
		}
		return &cp
	case *JoinTable:
		cp := *n
		cp.Left = CloneTableSource(n.Left)
		cp.Right = CloneTableSource(n.Right)
		cp.On = CloneValue(n.On)
		cp.Using = append([]string(nil), n.Using...)
		return &cp
	case *LateralSource:
		cp := *n
		cp.Inner = CloneTableSource(n.Inner)
		return &cp
	default:
		return t
	}
}

// CloneSelectQuery returns a deep, independent copy of q.
func CloneSelectQuery(q SelectQuery) SelectQuery {
	if q == nil {
		return nil
	}
	switch n := q.(type) {
	case *SimpleSelect:
		cp := *n
		if n.With != nil {
			cp.With = cloneWithClause(n.With)
		}
		if n.Distinct != nil {
			d := *n.Distinct
			d.On = cloneValues(n.Distinct.On)
			cp.Distinct = &d
		}
		cp.Hints = append([]string(nil), n.Hints...)
		cp.SelectItems = make([]SelectItem, len(n.SelectItems))
		for i, it := range n.SelectItems {
			cp.SelectItems[i] = SelectItem{Header: it.Header, Expr: CloneValue(it.Expr), Alias: it.Alias}
		}
		cp.From = CloneTableSource(n.From)
		cp.Where = CloneValue(n.Where)
		if n.GroupBy != nil {
			g := *n.GroupBy
			g.Items = cloneValues(n.GroupBy.Items)
			cp.GroupBy = &g
		}
		cp.Having = CloneValue(n.Having)
		if n.Window != nil {
			cp.Window = make(map[string]*WindowSpec, len(n.Window))
			for k, w := range n.Window {
				cp.Window[k] = CloneValue(w).(*WindowSpec)
			}
		}
		cp.Qualify = CloneValue(n.Qualify)
		if n.OrderBy != nil {
			cp.OrderBy = cloneOrderBy(n.OrderBy)
		}
		cp.Limit = CloneValue(n.Limit)
		cp.Offset = CloneValue(n.Offset)
		return &cp
	case *BinarySelectQuery:
		cp := *n
		cp.Left = CloneSelectQuery(n.Left)
		cp.Right = CloneSelectQuery(n.Right)
		return &cp
	case *ValuesQuery:
		cp := *n
		cp.Rows = make([][]Value, len(n.Rows))
		for i, row := range n.Rows {
			cp.Rows[i] = cloneValues(row)
		}
		return &cp
	default:
		return q
	}
}

func cloneWithClause(w *WithClause) *WithClause {
	if w == nil {
		return nil
	}
	cp := *w
	cp.Tables = make([]CTE, len(w.Tables))
	for i, c := range w.Tables {
		cte := c
		cte.ColumnList = append([]string(nil), c.ColumnList...)
		cte.Query = CloneSelectQuery(c.Query)
		if c.Materialized != nil {
			m := *c.Materialized
			cte.Materialized = &m
		}
		cp.Tables[i] = cte
	}
	return &cp
}
