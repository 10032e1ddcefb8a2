package printtoken

import (
	"fmt"
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/token"
)

// builder accumulates a Token stream. Its methods are the only vocabulary
// the emit* functions use, keeping tree-walking and token-shape concerns
// separate from the AST's own types.
type builder struct {
	toks []Token
}

func (b *builder) kw(s string)          { b.toks = append(b.toks, Token{Kind: KeywordTok, Text: s}) }
func (b *builder) ident(s string)       { b.toks = append(b.toks, Token{Kind: IdentifierTok, Text: s}) }
func (b *builder) lit(s string)         { b.toks = append(b.toks, Token{Kind: LiteralTok, Text: s}) }
func (b *builder) op(s string)          { b.toks = append(b.toks, Token{Kind: OperatorTok, Text: s}) }
func (b *builder) punct(s string)       { b.toks = append(b.toks, Token{Kind: PunctTok, Text: s}) }
func (b *builder) softBreak()           { b.toks = append(b.toks, Token{Kind: SoftBreak}) }
func (b *builder) andBreak()            { b.toks = append(b.toks, Token{Kind: SoftBreak, Text: "and"}) }
func (b *builder) hardBreak()           { b.toks = append(b.toks, Token{Kind: HardBreak}) }
func (b *builder) indent()              { b.toks = append(b.toks, Token{Kind: IndentOpen}) }
func (b *builder) dedent()              { b.toks = append(b.toks, Token{Kind: IndentClose}) }
func (b *builder) group(c Container)    { b.toks = append(b.toks, Token{Kind: Group, Container: c}) }
func (b *builder) groupEnd()            { b.toks = append(b.toks, Token{Kind: GroupEnd}) }
func (b *builder) comment(c token.Comment) {
	b.toks = append(b.toks, Token{Kind: CommentTok, Text: c.Text})
}

func (b *builder) leading(n ast.Node) {
	for _, c := range n.Comments().Leading {
		b.comment(c)
		b.hardBreak()
	}
}

func (b *builder) trailing(n ast.Node) {
	for _, c := range n.Comments().Trailing {
		b.comment(c)
	}
}

// Emit flattens stmt into a print-token stream.
func Emit(stmt ast.Statement) []Token {
	b := &builder{}
	emitStatement(b, stmt)
	return b.toks
}

// EmitQuery flattens a bare query (no enclosing statement), used by callers
// formatting a subquery or a ParseSelect result in isolation.
func EmitQuery(q ast.SelectQuery) []Token {
	b := &builder{}
	emitSelectQuery(b, q)
	return b.toks
}

// EmitWith flattens just a WITH header and its CTE bodies, for callers (the
// CTE composer) that assemble a query out of a separately-rendered body.
func EmitWith(w *ast.WithClause) []Token {
	b := &builder{}
	emitWithClause(b, w)
	return b.toks
}

func emitStatement(b *builder, stmt ast.Statement) {
	b.leading(stmt)
	switch s := stmt.(type) {
	case *ast.SelectStmt:
		emitSelectQuery(b, s.Query)
	case *ast.InsertStmt:
		emitInsert(b, s)
	case *ast.UpdateStmt:
		emitUpdate(b, s)
	case *ast.DeleteStmt:
		emitDelete(b, s)
	case *ast.MergeStmt:
		emitMerge(b, s)
	case *ast.CreateTableStmt:
		emitCreateTable(b, s)
	case *ast.CreateIndexStmt:
		emitCreateIndex(b, s)
	case *ast.AlterStmt:
		emitAlter(b, s)
	default:
		panic(fmt.Sprintf("printtoken: unsupported statement %T", stmt))
	}
	b.trailing(stmt)
}

func emitSelectQuery(b *builder, q ast.SelectQuery) {
	switch sq := q.(type) {
	case *ast.SimpleSelect:
		emitSimpleSelect(b, sq)
	case *ast.BinarySelectQuery:
		emitSelectQuery(b, sq.Left)
		b.hardBreak()
		b.kw(setOpText(sq.Op))
		b.hardBreak()
		emitSelectQuery(b, sq.Right)
	case *ast.ValuesQuery:
		emitValuesQuery(b, sq)
	default:
		panic(fmt.Sprintf("printtoken: unsupported select query %T", q))
	}
}

func setOpText(op ast.SetOp) string {
	switch op {
	case ast.Union:
		return "UNION"
	case ast.UnionAll:
		return "UNION ALL"
	case ast.Intersect:
		return "INTERSECT"
	case ast.IntersectAll:
		return "INTERSECT ALL"
	case ast.Except:
		return "EXCEPT"
	case ast.ExceptAll:
		return "EXCEPT ALL"
	default:
		return "UNION"
	}
}

func emitValuesQuery(b *builder, v *ast.ValuesQuery) {
	b.kw("VALUES")
	b.group(ContainerValues)
	for i, row := range v.Rows {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		b.punct("(")
		for j, item := range row {
			if j > 0 {
				b.punct(",")
				b.softBreak()
			}
			emitValue(b, item)
		}
		b.punct(")")
	}
	b.groupEnd()
}

func emitWithClause(b *builder, w *ast.WithClause) {
	b.leading(w)
	b.kw("WITH")
	if w.Recursive {
		b.kw("RECURSIVE")
	}
	b.group(ContainerWith)
	for i := range w.Tables {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		emitCTE(b, &w.Tables[i])
	}
	b.groupEnd()
	b.trailing(w)
	b.hardBreak()
}

func emitCTE(b *builder, c *ast.CTE) {
	b.leading(c)
	b.ident(c.Name)
	if len(c.ColumnList) > 0 {
		b.punct("(")
		for i, col := range c.ColumnList {
			if i > 0 {
				b.punct(",")
			}
			b.ident(col)
		}
		b.punct(")")
	}
	b.kw("AS")
	if c.Materialized != nil {
		if *c.Materialized {
			b.kw("MATERIALIZED")
		} else {
			b.kw("NOT")
			b.kw("MATERIALIZED")
		}
	}
	b.punct("(")
	b.indent()
	b.softBreak()
	emitSelectQuery(b, c.Query)
	b.dedent()
	b.softBreak()
	b.punct(")")
	b.trailing(c)
}

func emitSimpleSelect(b *builder, s *ast.SimpleSelect) {
	b.leading(s)
	if s.With != nil {
		emitWithClause(b, s.With)
	}
	b.kw("SELECT")
	for _, h := range s.Hints {
		b.comment(token.Comment{Text: "+" + h})
	}
	if s.Distinct != nil {
		b.kw("DISTINCT")
		if len(s.Distinct.On) > 0 {
			b.kw("ON")
			b.punct("(")
			for i, it := range s.Distinct.On {
				if i > 0 {
					b.punct(",")
				}
				emitValue(b, it)
			}
			b.punct(")")
		}
	}
	b.group(ContainerSelectItems)
	for i := range s.SelectItems {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		emitSelectItem(b, &s.SelectItems[i])
	}
	b.groupEnd()

	if s.From != nil {
		b.hardBreak()
		b.kw("FROM")
		b.group(ContainerFrom)
		emitTableSource(b, s.From)
		b.groupEnd()
	}
	if s.Where != nil {
		b.hardBreak()
		b.kw("WHERE")
		b.group(ContainerWhere)
		emitValue(b, s.Where)
		b.groupEnd()
	}
	if s.GroupBy != nil {
		b.hardBreak()
		b.kw("GROUP")
		b.kw("BY")
		b.group(ContainerGroupBy)
		for i, it := range s.GroupBy.Items {
			if i > 0 {
				b.punct(",")
				b.softBreak()
			}
			emitValue(b, it)
		}
		b.groupEnd()
	}
	if s.Having != nil {
		b.hardBreak()
		b.kw("HAVING")
		b.group(ContainerHaving)
		emitValue(b, s.Having)
		b.groupEnd()
	}
	if len(s.Window) > 0 {
		b.hardBreak()
		b.kw("WINDOW")
		b.group(ContainerWindow)
		first := true
		for name, ws := range s.Window {
			if !first {
				b.punct(",")
				b.softBreak()
			}
			first = false
			b.ident(name)
			b.kw("AS")
			emitWindowSpec(b, ws)
		}
		b.groupEnd()
	}
	if s.Qualify != nil {
		b.hardBreak()
		b.kw("QUALIFY")
		emitValue(b, s.Qualify)
	}
	if s.OrderBy != nil {
		b.hardBreak()
		b.kw("ORDER")
		b.kw("BY")
		b.group(ContainerOrderBy)
		emitOrderBy(b, s.OrderBy)
		b.groupEnd()
	}
	if s.Limit != nil {
		b.hardBreak()
		b.kw("LIMIT")
		emitValue(b, s.Limit)
	}
	if s.Offset != nil {
		b.hardBreak()
		b.kw("OFFSET")
		emitValue(b, s.Offset)
	}
	if s.ForClause != nil {
		b.hardBreak()
		emitForClause(b, s.ForClause)
	}
	b.trailing(s)
}

func emitForClause(b *builder, f *ast.ForClause) {
	b.kw("FOR")
	if f.Kind == ast.ForUpdate {
		b.kw("UPDATE")
	} else {
		b.kw("SHARE")
	}
	if len(f.Of) > 0 {
		b.kw("OF")
		for i, id := range f.Of {
			if i > 0 {
				b.punct(",")
			}
			b.ident(id.Name)
		}
	}
	if f.NoWait {
		b.kw("NOWAIT")
	} else if f.SkipLocked {
		b.kw("SKIP")
		b.kw("LOCKED")
	}
}

func emitSelectItem(b *builder, item *ast.SelectItem) {
	b.leading(item)
	emitValue(b, item.Expr)
	if item.Alias != "" {
		b.kw("AS")
		b.ident(item.Alias)
	}
	b.trailing(item)
}

func emitOrderBy(b *builder, ob *ast.OrderBy) {
	for i := range ob.Items {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		it := &ob.Items[i]
		emitValue(b, it.Expr)
		if it.Descending {
			b.kw("DESC")
		}
		if it.HasNulls {
			b.kw("NULLS")
			if it.NullsFirst {
				b.kw("FIRST")
			} else {
				b.kw("LAST")
			}
		}
	}
}

func emitTableSource(b *builder, t ast.TableSource) {
	switch src := t.(type) {
	case *ast.BaseTable:
		b.ident(qnameText(src.QName))
		if src.Alias != "" {
			b.ident(src.Alias)
		}
	case *ast.DerivedTable:
		b.leading(src)
		b.punct("(")
		b.indent()
		b.softBreak()
		emitSelectQuery(b, src.Query)
		b.dedent()
		b.softBreak()
		b.punct(")")
		if src.Alias != "" {
			b.ident(src.Alias)
		}
		b.trailing(src)
	case *ast.FunctionSource:
		emitValue(b, src.Call)
		if src.Alias != "" {
			b.ident(src.Alias)
		}
	case *ast.LateralSource:
		b.kw("LATERAL")
		emitTableSource(b, src.Inner)
	case *ast.JoinTable:
		emitTableSource(b, src.Left)
		b.hardBreak()
		b.kw(joinTypeText(src.Type))
		b.kw("JOIN")
		emitTableSource(b, src.Right)
		if src.On != nil {
			b.kw("ON")
			emitValue(b, src.On)
		} else if len(src.Using) > 0 {
			b.kw("USING")
			b.punct("(")
			for i, c := range src.Using {
				if i > 0 {
					b.punct(",")
				}
				b.ident(c)
			}
			b.punct(")")
		}
	default:
		panic(fmt.Sprintf("printtoken: unsupported table source %T", t))
	}
}

func joinTypeText(jt ast.JoinType) string {
	switch jt {
	case ast.InnerJoin:
		return "INNER"
	case ast.LeftJoin:
		return "LEFT"
	case ast.RightJoin:
		return "RIGHT"
	case ast.FullJoin:
		return "FULL"
	case ast.CrossJoin:
		return "CROSS"
	default:
		return "INNER"
	}
}

func qnameText(parts []ast.Ident) string {
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Name
	}
	return strings.Join(names, ".")
}

func emitWindowSpec(b *builder, w *ast.WindowSpec) {
	if w.Name != "" && len(w.PartitionBy) == 0 && w.OrderBy == nil && w.Frame == nil {
		b.ident(w.Name)
		return
	}
	b.punct("(")
	if len(w.PartitionBy) > 0 {
		b.kw("PARTITION")
		b.kw("BY")
		for i, p := range w.PartitionBy {
			if i > 0 {
				b.punct(",")
			}
			emitValue(b, p)
		}
	}
	if w.OrderBy != nil {
		b.kw("ORDER")
		b.kw("BY")
		emitOrderBy(b, w.OrderBy)
	}
	if w.Frame != nil {
		b.kw(w.Frame.Kind)
		if w.Frame.EndBound != "" {
			b.kw("BETWEEN")
			b.kw(w.Frame.StartBound)
			b.kw("AND")
			b.kw(w.Frame.EndBound)
		} else {
			b.kw(w.Frame.StartBound)
		}
	}
	b.punct(")")
}

func emitValue(b *builder, v ast.Value) {
	b.leading(v)
	switch val := v.(type) {
	case *ast.Literal:
		emitLiteral(b, val)
	case *ast.Ident:
		b.ident(val.Name)
	case *ast.Qualified:
		for i, p := range val.Parts {
			if i > 0 {
				b.punct(".")
			}
			b.ident(p.Name)
		}
	case *ast.Param:
		b.toks = append(b.toks, Token{
			Kind:       ParamTok,
			Text:       paramText(val),
			ParamKind:  int(val.Kind),
			ParamName:  val.Name,
			ParamIndex: val.Index,
			ParamForm:  int(val.Form),
		})
	case *ast.Star:
		if len(val.Qualifier) > 0 {
			b.ident(qnameText(val.Qualifier))
			b.punct(".")
		}
		b.op("*")
	case *ast.BinaryExpr:
		emitValue(b, val.Lhs)
		logical := val.Op == "AND" || val.Op == "OR"
		if logical {
			b.andBreak()
		}
		if val.Negated {
			b.kw("NOT")
		}
		if isWordOp(val.Op) {
			b.kw(val.Op)
		} else {
			b.op(val.Op)
		}
		emitValue(b, val.Rhs)
	case *ast.UnaryExpr:
		if isWordOp(val.Op) {
			b.kw(val.Op)
		} else {
			b.op(val.Op)
		}
		emitValue(b, val.Operand)
	case *ast.CastExpr:
		if val.Shorthand {
			emitValue(b, val.Expr)
			b.op("::")
			b.ident(val.TypeName)
		} else {
			b.kw("CAST")
			b.punct("(")
			emitValue(b, val.Expr)
			b.kw("AS")
			b.ident(val.TypeName)
			b.punct(")")
		}
	case *ast.BetweenExpr:
		emitValue(b, val.Expr)
		if val.Negated {
			b.kw("NOT")
		}
		b.kw("BETWEEN")
		emitValue(b, val.Low)
		b.kw("AND")
		emitValue(b, val.High)
	case *ast.InListExpr:
		emitValue(b, val.Expr)
		if val.Negated {
			b.kw("NOT")
		}
		b.kw("IN")
		b.punct("(")
		if val.Subquery != nil {
			emitSelectQuery(b, val.Subquery)
		} else {
			for i, it := range val.Items {
				if i > 0 {
					b.punct(",")
				}
				emitValue(b, it)
			}
		}
		b.punct(")")
	case *ast.ExistsExpr:
		if val.Negated {
			b.kw("NOT")
		}
		b.kw("EXISTS")
		b.punct("(")
		emitSelectQuery(b, val.Subquery)
		b.punct(")")
	case *ast.SubqueryExpr:
		b.punct("(")
		emitSelectQuery(b, val.Query)
		b.punct(")")
	case *ast.ArrayAccessExpr:
		emitValue(b, val.Array)
		b.punct("[")
		emitValue(b, val.Index)
		b.punct("]")
	case *ast.TupleExpr:
		b.punct("(")
		for i, it := range val.Items {
			if i > 0 {
				b.punct(",")
			}
			emitValue(b, it)
		}
		b.punct(")")
	case *ast.CaseExpr:
		emitCase(b, val)
	case *ast.OrderBy:
		emitOrderBy(b, val)
	case *ast.WindowSpec:
		emitWindowSpec(b, val)
	case *ast.FunctionCall:
		emitFunctionCall(b, val)
	default:
		panic(fmt.Sprintf("printtoken: unsupported value %T", v))
	}
	b.trailing(v)
}

func isWordOp(op string) bool {
	switch op {
	case "AND", "OR", "LIKE", "ILIKE", "SIMILAR TO", "IS", "IS DISTINCT FROM":
		return true
	default:
		return false
	}
}

func emitLiteral(b *builder, l *ast.Literal) {
	switch l.Kind {
	case ast.StringLit:
		b.lit("'" + strings.ReplaceAll(l.Text, "'", "''") + "'")
	default:
		b.lit(l.Text)
	}
}

func paramText(p *ast.Param) string {
	switch p.Kind {
	case ast.ParamAnonymous:
		return "?"
	case ast.ParamPositional:
		return fmt.Sprintf("$%d", p.Index)
	default:
		switch p.Form {
		case token.ParamAt:
			return "@" + p.Name
		case token.ParamDollarBrace:
			return "${" + p.Name + "}"
		default:
			return ":" + p.Name
		}
	}
}

func emitCase(b *builder, c *ast.CaseExpr) {
	b.kw("CASE")
	b.group(ContainerCase)
	if c.Operand != nil {
		emitValue(b, c.Operand)
	}
	for i := range c.Whens {
		w := &c.Whens[i]
		b.softBreak()
		b.kw("WHEN")
		emitValue(b, w.Condition)
		b.kw("THEN")
		emitValue(b, w.Result)
	}
	if c.Else != nil {
		b.softBreak()
		b.kw("ELSE")
		emitValue(b, c.Else)
	}
	b.softBreak()
	b.kw("END")
	b.groupEnd()
}

func emitReturning(b *builder, r *ast.ReturningClause) {
	b.hardBreak()
	b.kw("RETURNING")
	if r.Star {
		b.op("*")
		return
	}
	for i := range r.Items {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		emitSelectItem(b, &r.Items[i])
	}
}

func emitInsert(b *builder, s *ast.InsertStmt) {
	b.kw("INSERT")
	b.kw("INTO")
	b.ident(qnameText(s.Table))
	if len(s.Columns) > 0 {
		for _, c := range s.ColumnsPos.Own.Leading {
			b.comment(c)
		}
		b.punct("(")
		b.group(ContainerInsertCols)
		for i, c := range s.Columns {
			if i > 0 {
				b.punct(",")
				b.softBreak()
			}
			b.ident(c)
		}
		for _, c := range s.ColumnsPos.Own.Trailing {
			b.comment(c)
		}
		b.groupEnd()
		b.punct(")")
	}
	b.hardBreak()
	emitInsertSource(b, s.Source)
	if s.Returning != nil {
		emitReturning(b, s.Returning)
	}
}

func emitInsertSource(b *builder, s *ast.InsertSource) {
	if s.Query != nil {
		emitSelectQuery(b, s.Query)
		return
	}
	b.kw("VALUES")
	b.group(ContainerValues)
	for i, row := range s.Rows {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		b.punct("(")
		for j, v := range row {
			if j > 0 {
				b.punct(",")
			}
			emitValue(b, v)
		}
		b.punct(")")
	}
	b.groupEnd()
}

func emitAssignment(b *builder, a *ast.Assignment) {
	b.ident(a.Column)
	b.op("=")
	emitValue(b, a.Value)
}

func emitUpdate(b *builder, s *ast.UpdateStmt) {
	b.kw("UPDATE")
	b.ident(qnameText(s.Table))
	if s.Alias != "" {
		b.ident(s.Alias)
	}
	b.hardBreak()
	b.kw("SET")
	for i := range s.Assignments {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		emitAssignment(b, &s.Assignments[i])
	}
	if s.From != nil {
		b.hardBreak()
		b.kw("FROM")
		emitTableSource(b, s.From)
	}
	if s.Where != nil {
		b.hardBreak()
		b.kw("WHERE")
		emitValue(b, s.Where)
	}
	if s.Returning != nil {
		emitReturning(b, s.Returning)
	}
}

func emitDelete(b *builder, s *ast.DeleteStmt) {
	b.kw("DELETE")
	b.kw("FROM")
	b.ident(qnameText(s.Table))
	if s.Alias != "" {
		b.ident(s.Alias)
	}
	if s.Using != nil {
		b.hardBreak()
		b.kw("USING")
		emitTableSource(b, s.Using)
	}
	if s.Where != nil {
		b.hardBreak()
		b.kw("WHERE")
		emitValue(b, s.Where)
	}
	if s.Returning != nil {
		emitReturning(b, s.Returning)
	}
}

func emitMerge(b *builder, s *ast.MergeStmt) {
	b.kw("MERGE")
	b.kw("INTO")
	emitTableSource(b, s.Target)
	b.kw("USING")
	emitTableSource(b, s.Source)
	b.kw("ON")
	emitValue(b, s.On)
	for i := range s.Whens {
		emitMergeWhen(b, &s.Whens[i])
	}
	if s.Returning != nil {
		emitReturning(b, s.Returning)
	}
}

func emitMergeWhen(b *builder, w *ast.MergeWhenClause) {
	b.hardBreak()
	b.kw("WHEN")
	if !w.Matched {
		b.kw("NOT")
	}
	b.kw("MATCHED")
	if w.Condition != nil {
		b.kw("AND")
		emitValue(b, w.Condition)
	}
	b.kw("THEN")
	emitMergeAction(b, &w.Action)
}

func emitMergeAction(b *builder, a *ast.MergeAction) {
	switch {
	case a.IsDelete:
		b.kw("DELETE")
	case len(a.Values) > 0 || a.Columns != nil:
		b.kw("INSERT")
		if len(a.Columns) > 0 {
			b.punct("(")
			for i, c := range a.Columns {
				if i > 0 {
					b.punct(",")
				}
				b.ident(c)
			}
			b.punct(")")
		}
		b.kw("VALUES")
		b.punct("(")
		for i, v := range a.Values {
			if i > 0 {
				b.punct(",")
			}
			emitValue(b, v)
		}
		b.punct(")")
	default:
		b.kw("UPDATE")
		b.kw("SET")
		for i := range a.Assignments {
			if i > 0 {
				b.punct(",")
			}
			emitAssignment(b, &a.Assignments[i])
		}
	}
}

func emitColumnDef(b *builder, c *ast.ColumnDef) {
	b.ident(c.Name)
	b.ident(c.TypeName)
	if c.NotNull {
		b.kw("NOT")
		b.kw("NULL")
	}
	if c.PrimaryKey {
		b.kw("PRIMARY")
		b.kw("KEY")
	}
	if c.Unique {
		b.kw("UNIQUE")
	}
	if c.Default != nil {
		b.kw("DEFAULT")
		emitValue(b, c.Default)
	}
}

func emitConstraintDef(b *builder, c *ast.ConstraintDef) {
	if c.Name != "" {
		b.kw("CONSTRAINT")
		b.ident(c.Name)
	}
	switch c.Kind {
	case ast.PrimaryKeyConstraint:
		b.kw("PRIMARY")
		b.kw("KEY")
		emitIdentList(b, c.Columns)
	case ast.UniqueConstraint:
		b.kw("UNIQUE")
		emitIdentList(b, c.Columns)
	case ast.ForeignKeyConstraint:
		b.kw("FOREIGN")
		b.kw("KEY")
		emitIdentList(b, c.Columns)
		b.kw("REFERENCES")
		b.ident(c.RefTable)
		if len(c.RefColumns) > 0 {
			emitIdentList(b, c.RefColumns)
		}
	case ast.CheckConstraint:
		b.kw("CHECK")
		b.punct("(")
		b.lit(c.CheckExpr)
		b.punct(")")
	}
}

func emitIdentList(b *builder, names []string) {
	b.punct("(")
	for i, n := range names {
		if i > 0 {
			b.punct(",")
		}
		b.ident(n)
	}
	b.punct(")")
}

func emitCreateTable(b *builder, s *ast.CreateTableStmt) {
	b.kw("CREATE")
	b.kw("TABLE")
	if s.IfNotExists {
		b.kw("IF")
		b.kw("NOT")
		b.kw("EXISTS")
	}
	b.ident(qnameText(s.Table))
	b.punct("(")
	b.indent()
	for i := range s.Columns {
		if i > 0 {
			b.punct(",")
		}
		b.softBreak()
		emitColumnDef(b, &s.Columns[i])
	}
	for i := range s.Constraints {
		if i > 0 || len(s.Columns) > 0 {
			b.punct(",")
		}
		b.softBreak()
		emitConstraintDef(b, &s.Constraints[i])
	}
	b.dedent()
	b.softBreak()
	b.punct(")")
}

func emitCreateIndex(b *builder, s *ast.CreateIndexStmt) {
	b.kw("CREATE")
	if s.Unique {
		b.kw("UNIQUE")
	}
	b.kw("INDEX")
	if s.IfNotExists {
		b.kw("IF")
		b.kw("NOT")
		b.kw("EXISTS")
	}
	if s.Name != "" {
		b.ident(s.Name)
	}
	b.kw("ON")
	b.ident(qnameText(s.Table))
	emitIdentList(b, s.Columns)
}

func emitAlter(b *builder, s *ast.AlterStmt) {
	b.kw("ALTER")
	b.kw("TABLE")
	b.ident(qnameText(s.Table))
	switch s.Kind {
	case ast.AddColumn:
		b.kw("ADD")
		b.kw("COLUMN")
		emitColumnDef(b, s.Column)
	case ast.DropColumn:
		b.kw("DROP")
		b.kw("COLUMN")
		b.ident(s.DropName)
	case ast.AddConstraint:
		b.kw("ADD")
		emitConstraintDef(b, s.Constraint)
	case ast.DropConstraint:
		b.kw("DROP")
		b.kw("CONSTRAINT")
		b.ident(s.DropName)
	}
}

func emitFunctionCall(b *builder, f *ast.FunctionCall) {
	b.ident(qnameText(f.QName))
	b.punct("(")
	b.group(ContainerArgs)
	if f.Distinct {
		b.kw("DISTINCT")
	}
	for i, a := range f.Args {
		if i > 0 {
			b.punct(",")
			b.softBreak()
		}
		emitValue(b, a)
	}
	if f.ArgOrderBy != nil {
		b.kw("ORDER")
		b.kw("BY")
		emitOrderBy(b, f.ArgOrderBy)
	}
	b.groupEnd()
	b.punct(")")
	if f.WithinGroup != nil {
		b.kw("WITHIN")
		b.kw("GROUP")
		b.punct("(")
		b.kw("ORDER")
		b.kw("BY")
		emitOrderBy(b, f.WithinGroup)
		b.punct(")")
	}
	if f.Filter != nil {
		b.kw("FILTER")
		b.punct("(")
		b.kw("WHERE")
		emitValue(b, f.Filter)
		b.punct(")")
	}
	if f.Over != nil {
		b.kw("OVER")
		emitWindowSpec(b, f.Over)
	}
}
