package ast

import "github.com/ritamzico/sqlkit/internal/token"

// LiteralKind distinguishes the literal forms carried by Literal.
type LiteralKind int

const (
	NumericLit LiteralKind = iota
	StringLit
	BooleanLit
	NullLit
)

// Literal is a scalar constant. IsString is true only for StringLit and
// must never collapse 'null'/'true'/'false' into the bare keyword forms
// (LITERAL-FIDELITY).
type Literal struct {
	Header
	Kind  LiteralKind
	Text  string // original lexeme text, unescaped for strings
	IsString bool
}

func NewLiteral(kind LiteralKind, text string, pos token.Position) *Literal {
	return &Literal{Header: Header{Position: pos}, Kind: kind, Text: text, IsString: kind == StringLit}
}

func (*Literal) isValue()            {}
func (l *Literal) Children() []Node { return nil }

// Ident is a single unqualified identifier.
type Ident struct {
	Header
	Name   string
	Quoted bool
}

func NewIdent(name string, quoted bool, pos token.Position) *Ident {
	return &Ident{Header: Header{Position: pos}, Name: name, Quoted: quoted}
}

func (*Ident) isValue()            {}
func (i *Ident) Children() []Node { return nil }

// Qualified is a dotted name path; Parts has at least one element
// (QNAME-NONEMPTY) and the last part is the unqualified name.
type Qualified struct {
	Header
	Parts []Ident
}

func NewQualified(parts []Ident, pos token.Position) (*Qualified, error) {
	if len(parts) == 0 {
		return nil, invariantViolation("qualified name must have at least one part")
	}
	return &Qualified{Header: Header{Position: pos}, Parts: parts}, nil
}

// Name returns the last (unqualified) part.
func (q *Qualified) Name() string { return q.Parts[len(q.Parts)-1].Name }

func (*Qualified) isValue()            {}
func (q *Qualified) Children() []Node { return nil }

// ParamKind distinguishes named parameters from positional/anonymous ones.
type ParamKind int

const (
	ParamNamed ParamKind = iota
	ParamPositional
	ParamAnonymous
)

// Param is a bind-parameter placeholder, preserving its original marker
// syntax via Form so formatting can round-trip it (parameter stability).
type Param struct {
	Header
	Kind  ParamKind
	Name  string // for ParamNamed
	Index int    // for ParamPositional ($1 etc.)
	Form  token.ParamForm
}

func (*Param) isValue()            {}
func (p *Param) Children() []Node { return nil }

// Star represents `*` or `alias.*` in a select list.
type Star struct {
	Header
	Qualifier []Ident // empty for bare `*`
}

func (*Star) isValue()            {}
func (s *Star) Children() []Node { return nil }

// BinaryExpr is `lhs OP rhs` for comparison, arithmetic, boolean, LIKE-family,
// and concatenation/bit operators alike; Op carries the operator text.
type BinaryExpr struct {
	Header
	Op       string
	Negated  bool // true for NOT LIKE / NOT ILIKE / NOT SIMILAR TO
	Lhs, Rhs Value
}

func (*BinaryExpr) isValue() {}
func (b *BinaryExpr) Children() []Node {
	return children(b.Lhs, b.Rhs)
}

// UnaryExpr is a prefix operator: -x, +x, NOT x.
type UnaryExpr struct {
	Header
	Op      string
	Operand Value
}

func (*UnaryExpr) isValue() {}
func (u *UnaryExpr) Children() []Node {
	return children(u.Operand)
}

// CastExpr is `CAST(expr AS type)` or the `expr::type` shorthand.
type CastExpr struct {
	Header
	Expr     Value
	TypeName string
	Shorthand bool // true for `::` form
}

func (*CastExpr) isValue() {}
func (c *CastExpr) Children() []Node { return children(c.Expr) }

// BetweenExpr is `expr [NOT] BETWEEN low AND high`.
type BetweenExpr struct {
	Header
	Expr        Value
	Negated     bool
	Low, High   Value
}

func (*BetweenExpr) isValue() {}
func (b *BetweenExpr) Children() []Node {
	return children(b.Expr, b.Low, b.High)
}

// InListExpr is `expr [NOT] IN (items...)` or `expr [NOT] IN (subquery)`.
type InListExpr struct {
	Header
	Expr     Value
	Negated  bool
	Items    []Value
	Subquery SelectQuery // mutually exclusive with Items
}

func (*InListExpr) isValue() {}
func (n *InListExpr) Children() []Node {
	out := make([]Node, 0, len(n.Items)+2)
	out = append(out, n.Expr)
	for _, it := range n.Items {
		out = append(out, it)
	}
	if n.Subquery != nil {
		out = append(out, n.Subquery)
	}
	return out
}

// ExistsExpr is `[NOT] EXISTS (subquery)`.
type ExistsExpr struct {
	Header
	Negated  bool
	Subquery SelectQuery
}

func (*ExistsExpr) isValue() {}
func (e *ExistsExpr) Children() []Node { return children(e.Subquery) }

// SubqueryExpr wraps a parenthesized SelectQuery used as a scalar/row value.
type SubqueryExpr struct {
	Header
	Query SelectQuery
}

func (*SubqueryExpr) isValue() {}
func (s *SubqueryExpr) Children() []Node { return children(s.Query) }

// ArrayAccessExpr is `expr[index]`.
type ArrayAccessExpr struct {
	Header
	Array Value
	Index Value
}

func (*ArrayAccessExpr) isValue() {}
func (a *ArrayAccessExpr) Children() []Node {
	return children(a.Array, a.Index)
}

// TupleExpr is `(a, b, c)` used as a row value (e.g. LHS of IN, or multi-col compare).
type TupleExpr struct {
	Header
	Items []Value
}

func (*TupleExpr) isValue() {}
func (t *TupleExpr) Children() []Node {
	out := make([]Node, 0, len(t.Items))
	for _, it := range t.Items {
		out = append(out, it)
	}
	return out
}

// WhenClause is one `WHEN cond THEN result` arm of a CaseExpr.
type WhenClause struct {
	Header
	Condition Value
	Result    Value
}

func (w *WhenClause) Children() []Node { return children(w.Condition, w.Result) }

// CaseExpr is `CASE [expr] WHEN ... THEN ... [ELSE ...] END`.
type CaseExpr struct {
	Header
	Operand Value // optional: `CASE expr WHEN ...`
	Whens   []WhenClause
	Else    Value
}

func (*CaseExpr) isValue() {}
func (c *CaseExpr) Children() []Node {
	out := make([]Node, 0, len(c.Whens)+2)
	if c.Operand != nil {
		out = append(out, c.Operand)
	}
	for i := range c.Whens {
		out = append(out, &c.Whens[i])
	}
	if c.Else != nil {
		out = append(out, c.Else)
	}
	return out
}

// OrderByItem is one `expr [ASC|DESC] [NULLS FIRST|LAST]` term.
type OrderByItem struct {
	Header
	Expr       Value
	Descending bool
	HasNulls   bool
	NullsFirst bool
}

func (o *OrderByItem) Children() []Node { return children(o.Expr) }

// OrderBy is an ORDER BY clause, also reused for WITHIN GROUP (ORDER BY ...).
type OrderBy struct {
	Header
	Items []OrderByItem
}

func (*OrderBy) isValue() {} // reused as a Value leaf only inside FunctionCall.WithinGroup
func (o *OrderBy) Children() []Node {
	out := make([]Node, 0, len(o.Items))
	for i := range o.Items {
		out = append(out, &o.Items[i])
	}
	return out
}

// WindowFrame is the ROWS/RANGE/GROUPS bound clause of a window spec.
type WindowFrame struct {
	Kind       string // ROWS | RANGE | GROUPS
	StartBound string
	EndBound   string // empty when there is no BETWEEN ... AND ...
}

// WindowSpec is `OVER (PARTITION BY ... ORDER BY ... frame)` or a named
// reference `OVER window_name`.
type WindowSpec struct {
	Header
	Name        string // non-empty for a named window reference
	PartitionBy []Value
	OrderBy     *OrderBy
	Frame       *WindowFrame
}

func (*WindowSpec) isValue() {}
func (w *WindowSpec) Children() []Node {
	out := make([]Node, 0, len(w.PartitionBy)+1)
	for _, p := range w.PartitionBy {
		out = append(out, p)
	}
	if w.OrderBy != nil {
		out = append(out, w.OrderBy)
	}
	return out
}

// FunctionCall covers plain calls, aggregates, and window functions; the
// three optional tails (WithinGroup, Filter, Over) are independent.
type FunctionCall struct {
	Header
	QName       []Ident
	Args        []Value
	Distinct    bool
	ArgOrderBy  *OrderBy // ORDER BY inside the argument list, e.g. string_agg(x ORDER BY y)
	WithinGroup *OrderBy
	Filter      Value
	Over        *WindowSpec
}

// NewFunctionCall requires a non-empty qualified name. SetDistinct and
// SetWithinGroup enforce that DISTINCT and WITHIN GROUP never co-occur: they
// address different aggregate shapes (simple vs. ordered-set) and no
// SQL dialect in scope combines them.
func NewFunctionCall(qname []Ident, pos token.Position) (*FunctionCall, error) {
	if len(qname) == 0 {
		return nil, invariantViolation("function call requires a qualified name")
	}
	return &FunctionCall{Header: Header{Position: pos}, QName: qname}, nil
}

func (f *FunctionCall) SetDistinct(v bool) error {
	if v && f.WithinGroup != nil {
		return invariantViolation("a function call cannot have both DISTINCT and WITHIN GROUP")
	}
	f.Distinct = v
	return nil
}

func (f *FunctionCall) SetWithinGroup(ob *OrderBy) error {
	if ob != nil && f.Distinct {
		return invariantViolation("a function call cannot have both DISTINCT and WITHIN GROUP")
	}
	f.WithinGroup = ob
	return nil
}

func (f *FunctionCall) Name() string { return f.QName[len(f.QName)-1].Name }

func (*FunctionCall) isValue() {}
func (f *FunctionCall) Children() []Node {
	out := make([]Node, 0, len(f.Args)+3)
	for _, a := range f.Args {
		out = append(out, a)
	}
	if f.ArgOrderBy != nil {
		out = append(out, f.ArgOrderBy)
	}
	if f.WithinGroup != nil {
		out = append(out, f.WithinGroup)
	}
	if f.Filter != nil {
		out = append(out, f.Filter)
	}
	if f.Over != nil {
		out = append(out, f.Over)
	}
	return out
}
