package parser

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/comment"
	"github.com/ritamzico/sqlkit/internal/token"
)

// parseSelectQuery parses a WITH-prefixed or bare SELECT/VALUES query,
// folding trailing set operators (UNION/INTERSECT/EXCEPT) left-associatively.
func (p *Parser) parseSelectQuery() (ast.SelectQuery, error) {
	var with *ast.WithClause
	if p.curIsKeyword("WITH") {
		w, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		with = w
	}
	left, err := p.parseSelectPrimary(with)
	if err != nil {
		return nil, err
	}
	for p.curIsSetOp() {
		op, pos := p.consumeSetOp()
		right, err := p.parseSelectPrimary(nil)
		if err != nil {
			return nil, err
		}
		left = &ast.BinarySelectQuery{Header: ast.Header{Position: pos}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) curIsSetOp() bool {
	return p.curIsKeyword("UNION") || p.curIsKeyword("INTERSECT") || p.curIsKeyword("EXCEPT")
}

func (p *Parser) consumeSetOp() (ast.SetOp, token.Position) {
	lx := p.advance()
	pos := lx.Position
	all := p.tryKeyword("ALL")
	switch strings.ToUpper(lx.Value) {
	case "UNION":
		if all {
			return ast.UnionAll, pos
		}
		return ast.Union, pos
	case "INTERSECT":
		if all {
			return ast.IntersectAll, pos
		}
		return ast.Intersect, pos
	default: // EXCEPT
		if all {
			return ast.ExceptAll, pos
		}
		return ast.Except, pos
	}
}

func (p *Parser) parseSelectPrimary(with *ast.WithClause) (ast.SelectQuery, error) {
	if p.curIsPunct("(") {
		p.advance()
		inner, err := p.parseSelectQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	if p.curIsKeyword("VALUES") {
		return p.parseValuesQuery()
	}
	if p.curIsKeyword("SELECT") {
		return p.parseSimpleSelect(with)
	}
	return nil, unexpectedToken(p.curPos(), p.curText(), "SELECT", "VALUES", "(")
}

func (p *Parser) parseWithClause() (*ast.WithClause, error) {
	kw := p.advance() // WITH
	pos := kw.Position
	recursive := p.tryKeyword("RECURSIVE")
	var tables []ast.CTE
	for {
		cte, err := p.parseCTE()
		if err != nil {
			return nil, err
		}
		tables = append(tables, *cte)
		if !p.tryPunct(",") {
			break
		}
	}
	with := &ast.WithClause{Header: ast.Header{Position: pos}, Recursive: recursive, Tables: tables}
	comment.AttachLeadingOnly(with, kw)
	return with, nil
}

func (p *Parser) parseCTE() (*ast.CTE, error) {
	first := p.cur()
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	var cols []string
	if p.tryPunct("(") {
		for {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			cols = append(cols, id.Name)
			if !p.tryPunct(",") {
				break
			}
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
	}
	if _, err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	var materialized *bool
	if p.tryKeyword("NOT") {
		if _, err := p.expectKeyword("MATERIALIZED"); err != nil {
			return nil, err
		}
		f := false
		materialized = &f
	} else if p.tryKeyword("MATERIALIZED") {
		t := true
		materialized = &t
	}
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	q, err := p.parseSelectQuery()
	if err != nil {
		return nil, err
	}
	close_, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	cte := &ast.CTE{Header: ast.Header{Position: name.Pos()}, Name: name.Name, ColumnList: cols, Materialized: materialized, Query: q}
	attach(cte, first, close_)
	return cte, nil
}

func (p *Parser) parseValuesQuery() (*ast.ValuesQuery, error) {
	pos := p.advance().Position // VALUES
	var rows [][]ast.Value
	for {
		if _, err := p.expectPunct("("); err != nil {
			return nil, err
		}
		row, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if !p.tryPunct(",") {
			break
		}
	}
	return &ast.ValuesQuery{Header: ast.Header{Position: pos}, Rows: rows}, nil
}

func (p *Parser) parseSimpleSelect(with *ast.WithClause) (*ast.SimpleSelect, error) {
	pos := p.advance().Position // SELECT
	sel := &ast.SimpleSelect{Header: ast.Header{Position: pos}, With: with}

	for lx := p.cur(); lx != nil && lx.Kind == token.Hint; lx = p.cur() {
		sel.Hints = append(sel.Hints, p.advance().Value)
	}

	if p.tryKeyword("DISTINCT") {
		dc := &ast.DistinctClause{}
		if p.tryKeyword("ON") {
			if _, err := p.expectPunct("("); err != nil {
				return nil, err
			}
			items, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, err
			}
			dc.On = items
		}
		sel.Distinct = dc
	} else {
		p.tryKeyword("ALL")
	}

	item, err := p.parseSelectItem()
	if err != nil {
		return nil, err
	}
	sel.SelectItems = append(sel.SelectItems, *item)
	for p.tryPunct(",") {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		sel.SelectItems = append(sel.SelectItems, *item)
	}

	if p.tryKeyword("FROM") {
		from, err := p.parseTableSource()
		if err != nil {
			return nil, err
		}
		sel.From = from
	}
	if p.tryKeyword("WHERE") {
		w, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Where = w
	}
	if p.tryKeyword("GROUP") {
		gpos := p.curPos()
		if _, err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		items, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		sel.GroupBy = &ast.GroupBy{Header: ast.Header{Position: gpos}, Items: items}
	}
	if p.tryKeyword("HAVING") {
		h, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Having = h
	}
	if p.tryKeyword("WINDOW") {
		sel.Window = map[string]*ast.WindowSpec{}
		for {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKeyword("AS"); err != nil {
				return nil, err
			}
			ws, err := p.parseWindowSpecInline()
			if err != nil {
				return nil, err
			}
			sel.Window[name.Name] = ws
			if !p.tryPunct(",") {
				break
			}
		}
	}
	if p.tryKeyword("QUALIFY") {
		q, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Qualify = q
	}
	if p.tryKeyword("ORDER") {
		if _, err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		sel.OrderBy = ob
	}
	if p.tryKeyword("LIMIT") {
		lim, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Limit = lim
	}
	if p.tryKeyword("OFFSET") {
		off, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Offset = off
	}
	if p.curIsKeyword("FOR") {
		fc, err := p.parseForClause()
		if err != nil {
			return nil, err
		}
		sel.ForClause = fc
	}
	return sel, nil
}

func (p *Parser) parseSelectItem() (*ast.SelectItem, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	item := &ast.SelectItem{Header: ast.Header{Position: expr.Pos()}, Expr: expr}
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	item.Alias = alias
	return item, nil
}

// parseOptionalAlias consumes `AS name` or a bare trailing identifier alias.
func (p *Parser) parseOptionalAlias() (string, error) {
	if p.tryKeyword("AS") {
		lx, err := p.expectIdentLike()
		if err != nil {
			return "", err
		}
		return lx.Value, nil
	}
	if lx := p.cur(); lx != nil && lx.Kind == token.Identifier {
		p.advance()
		return lx.Value, nil
	}
	return "", nil
}

func (p *Parser) parseForClause() (*ast.ForClause, error) {
	pos := p.advance().Position // FOR
	var kind ast.ForClauseKind
	if p.tryKeyword("UPDATE") {
		kind = ast.ForUpdate
	} else if _, err := p.expectKeyword("SHARE"); err != nil {
		return nil, err
	} else {
		kind = ast.ForShare
	}
	fc := &ast.ForClause{Header: ast.Header{Position: pos}, Kind: kind}
	if p.tryKeyword("OF") {
		for {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			fc.Of = append(fc.Of, id)
			if !p.tryPunct(",") {
				break
			}
		}
	}
	if p.tryKeyword("NOWAIT") {
		fc.NoWait = true
	} else if p.tryKeyword("SKIP") {
		if _, err := p.expectKeyword("LOCKED"); err != nil {
			return nil, err
		}
		fc.SkipLocked = true
	}
	return fc, nil
}

// --- table sources ---

func (p *Parser) parseTableSource() (ast.TableSource, error) {
	left, err := p.parsePrimaryTableSource()
	if err != nil {
		return nil, err
	}
	for {
		joined, ok, err := p.tryParseJoin(left)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		left = joined
	}
	// implicit comma join: `FROM a, b` is sugar for `a CROSS JOIN b`.
	for p.tryPunct(",") {
		right, err := p.parsePrimaryTableSource()
		if err != nil {
			return nil, err
		}
		for {
			joined, ok, err := p.tryParseJoin(right)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			right = joined
		}
		left = &ast.JoinTable{Header: ast.Header{Position: left.Pos()}, Type: ast.CrossJoin, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) tryParseJoin(left ast.TableSource) (ast.TableSource, bool, error) {
	var jt ast.JoinType
	switch {
	case p.tryKeyword("JOIN"):
		jt = ast.InnerJoin
	case p.curIsKeyword("INNER"):
		p.advance()
		if _, err := p.expectKeyword("JOIN"); err != nil {
			return nil, false, err
		}
		jt = ast.InnerJoin
	case p.curIsKeyword("LEFT"):
		p.advance()
		p.tryKeyword("OUTER")
		if _, err := p.expectKeyword("JOIN"); err != nil {
			return nil, false, err
		}
		jt = ast.LeftJoin
	case p.curIsKeyword("RIGHT"):
		p.advance()
		p.tryKeyword("OUTER")
		if _, err := p.expectKeyword("JOIN"); err != nil {
			return nil, false, err
		}
		jt = ast.RightJoin
	case p.curIsKeyword("FULL"):
		p.advance()
		p.tryKeyword("OUTER")
		if _, err := p.expectKeyword("JOIN"); err != nil {
			return nil, false, err
		}
		jt = ast.FullJoin
	case p.curIsKeyword("CROSS"):
		p.advance()
		if _, err := p.expectKeyword("JOIN"); err != nil {
			return nil, false, err
		}
		jt = ast.CrossJoin
	default:
		return nil, false, nil
	}
	right, err := p.parsePrimaryTableSource()
	if err != nil {
		return nil, false, err
	}
	jtbl := &ast.JoinTable{Header: ast.Header{Position: left.Pos()}, Type: jt, Left: left, Right: right}
	if jt != ast.CrossJoin {
		if p.tryKeyword("ON") {
			cond, err := p.parseExpr()
			if err != nil {
				return nil, false, err
			}
			jtbl.On = cond
		} else if p.tryKeyword("USING") {
			if _, err := p.expectPunct("("); err != nil {
				return nil, false, err
			}
			for {
				id, err := p.parseIdent()
				if err != nil {
					return nil, false, err
				}
				jtbl.Using = append(jtbl.Using, id.Name)
				if !p.tryPunct(",") {
					break
				}
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, false, err
			}
		}
	}
	return jtbl, true, nil
}

func (p *Parser) parsePrimaryTableSource() (ast.TableSource, error) {
	lateral := p.tryKeyword("LATERAL")

	var src ast.TableSource
	if p.curIsPunct("(") {
		open := p.advance()
		if p.curIsKeyword("SELECT") || p.curIsKeyword("WITH") || p.curIsKeyword("VALUES") {
			q, err := p.parseSelectQuery()
			if err != nil {
				return nil, err
			}
			close_, err := p.expectPunct(")")
			if err != nil {
				return nil, err
			}
			alias, err := p.parseOptionalAlias()
			if err != nil {
				return nil, err
			}
			d := &ast.DerivedTable{Header: ast.Header{Position: open.Position}, Query: q, Alias: alias}
			attach(d, open, close_)
			src = d
		} else {
			inner, err := p.parseTableSource()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, err
			}
			src = inner
		}
	} else {
		startLx := p.cur()
		qname, err := p.parseQName()
		if err != nil {
			return nil, err
		}
		if p.curIsPunct("(") {
			fc, err := p.parseFunctionCallTail(qname, startLx.Position)
			if err != nil {
				return nil, err
			}
			alias, err := p.parseOptionalAlias()
			if err != nil {
				return nil, err
			}
			src = &ast.FunctionSource{Header: ast.Header{Position: startLx.Position}, Call: fc, Alias: alias}
		} else {
			alias, err := p.parseOptionalAlias()
			if err != nil {
				return nil, err
			}
			src = &ast.BaseTable{Header: ast.Header{Position: startLx.Position}, QName: qname, Alias: alias}
		}
	}

	if lateral {
		src = &ast.LateralSource{Header: ast.Header{Position: src.Pos()}, Inner: src}
	}
	return src, nil
}
