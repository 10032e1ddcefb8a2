package ast

import "github.com/ritamzico/sqlkit/internal/token"

// SelectItem is one projection expression of a select list, with its
// optional alias.
type SelectItem struct {
	Header
	Expr  Value
	Alias string
}

func (s *SelectItem) Children() []Node { return children(s.Expr) }

// CTE is one `name [(cols)] AS [MATERIALIZED|NOT MATERIALIZED] (query)`
// entry of a WITH clause.
type CTE struct {
	Header
	Name         string
	ColumnList   []string
	Recursive    bool
	Materialized *bool // nil: unspecified: true: MATERIALIZED, false: NOT MATERIALIZED
	Query        SelectQuery
}

func (c *CTE) Children() []Node { return children(c.Query) }

// WithClause is `WITH [RECURSIVE] cte[, cte]*`.
type WithClause struct {
	Header
	Recursive bool
	Tables    []CTE
}

func (w *WithClause) Children() []Node {
	out := make([]Node, 0, len(w.Tables))
	for i := range w.Tables {
		out = append(out, &w.Tables[i])
	}
	return out
}

// JoinType enumerates the supported join kinds.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

// JoinTable is `left JOIN right ON cond` or `left JOIN right USING (cols)`.
type JoinTable struct {
	Header
	Type  JoinType
	Left  TableSource
	Right TableSource
	On    Value    // mutually exclusive with Using
	Using []string // column names
}

func (*JoinTable) isTableSource() {}
func (j *JoinTable) Children() []Node {
	out := children(j.Left, j.Right)
	if j.On != nil {
		out = append(out, j.On)
	}
	return out
}

// BaseTable is a plain `schema.table [AS alias]` reference.
type BaseTable struct {
	Header
	QName []Ident
	Alias string
}

func (*BaseTable) isTableSource() {}
func (b *BaseTable) Children() []Node { return nil }

func (b *BaseTable) Name() string { return b.QName[len(b.QName)-1].Name }

// DerivedTable is `(SELECT ...) AS alias`.
type DerivedTable struct {
	Header
	Query SelectQuery
	Alias string
}

func (*DerivedTable) isTableSource() {}
func (d *DerivedTable) Children() []Node { return children(d.Query) }

// FunctionSource is a table-valued function call used in a FROM clause.
type FunctionSource struct {
	Header
	Call  *FunctionCall
	Alias string
}

func (*FunctionSource) isTableSource() {}
func (f *FunctionSource) Children() []Node { return children(f.Call) }

// LateralSource wraps another TableSource in a LATERAL modifier.
type LateralSource struct {
	Header
	Inner TableSource
}

func (*LateralSource) isTableSource() {}
func (l *LateralSource) Children() []Node { return children(l.Inner) }

// GroupBy is the GROUP BY clause expression list.
type GroupBy struct {
	Header
	Items []Value
}

func (g *GroupBy) Children() []Node {
	out := make([]Node, 0, len(g.Items))
	for _, it := range g.Items {
		out = append(out, it)
	}
	return out
}

// ForClauseKind enumerates `FOR { UPDATE | SHARE }` row-locking forms.
type ForClauseKind int

const (
	ForUpdate ForClauseKind = iota
	ForShare
)

// ForClause is the trailing row-locking clause of a SELECT.
type ForClause struct {
	Header
	Kind   ForClauseKind
	Of     []Ident
	NoWait bool
	SkipLocked bool
}

func (f *ForClause) Children() []Node { return nil }

// DistinctClause carries DISTINCT / DISTINCT ON (exprs).
type DistinctClause struct {
	On []Value
}

// SimpleSelect is a single (non-set-operator) SELECT.
type SimpleSelect struct {
	Header
	With        *WithClause
	Distinct    *DistinctClause
	Hints       []string
	SelectItems []SelectItem
	From        TableSource
	Where       Value
	GroupBy     *GroupBy
	Having      Value
	Window      map[string]*WindowSpec
	Qualify     Value
	OrderBy     *OrderBy
	Limit       Value
	Offset      Value
	ForClause   *ForClause
}

func (*SimpleSelect) isSelectQuery() {}

func (s *SimpleSelect) Children() []Node {
	out := make([]Node, 0, len(s.SelectItems)+8)
	if s.With != nil {
		out = append(out, s.With)
	}
	if s.Distinct != nil {
		for _, d := range s.Distinct.On {
			out = append(out, d)
		}
	}
	for i := range s.SelectItems {
		out = append(out, &s.SelectItems[i])
	}
	if s.From != nil {
		out = append(out, s.From)
	}
	if s.Where != nil {
		out = append(out, s.Where)
	}
	if s.GroupBy != nil {
		out = append(out, s.GroupBy)
	}
	if s.Having != nil {
		out = append(out, s.Having)
	}
	for _, w := range s.Window {
		out = append(out, w)
	}
	if s.Qualify != nil {
		out = append(out, s.Qualify)
	}
	if s.OrderBy != nil {
		out = append(out, s.OrderBy)
	}
	if s.Limit != nil {
		out = append(out, s.Limit)
	}
	if s.Offset != nil {
		out = append(out, s.Offset)
	}
	if s.ForClause != nil {
		out = append(out, s.ForClause)
	}
	return out
}

// SetOp enumerates UNION/INTERSECT/EXCEPT, each with an ALL variant.
type SetOp int

const (
	Union SetOp = iota
	UnionAll
	Intersect
	IntersectAll
	Except
	ExceptAll
)

// BinarySelectQuery is `left SETOP right`.
type BinarySelectQuery struct {
	Header
	Op          SetOp
	Left, Right SelectQuery
}

func (*BinarySelectQuery) isSelectQuery() {}
func (b *BinarySelectQuery) Children() []Node { return children(b.Left, b.Right) }

// ValuesQuery is a bare `VALUES (rows...)` used as a SelectQuery.
type ValuesQuery struct {
	Header
	Rows [][]Value
}

func (*ValuesQuery) isSelectQuery() {}
func (v *ValuesQuery) Children() []Node {
	out := make([]Node, 0)
	for _, row := range v.Rows {
		for _, item := range row {
			out = append(out, item)
		}
	}
	return out
}

// SelectStmt is the top-level statement wrapper around a SelectQuery,
// carrying only the source position of the leading keyword.
type SelectStmt struct {
	Header
	Query SelectQuery
}

func (*SelectStmt) isStatement() {}
func (s *SelectStmt) Children() []Node { return children(s.Query) }

func newHeader(pos token.Position) Header { return Header{Position: pos} }
