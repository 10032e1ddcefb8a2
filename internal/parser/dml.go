package parser

import (
	"github.com/ritamzico/sqlkit/internal/ast"
)

func (p *Parser) parseReturningClause() (*ast.ReturningClause, error) {
	pos := p.advance().Position // RETURNING
	rc := &ast.ReturningClause{Header: ast.Header{Position: pos}}
	if p.curIsOperator("*") {
		p.advance()
		rc.Star = true
		return rc, nil
	}
	item, err := p.parseSelectItem()
	if err != nil {
		return nil, err
	}
	rc.Items = append(rc.Items, *item)
	for p.tryPunct(",") {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		rc.Items = append(rc.Items, *item)
	}
	return rc, nil
}

func (p *Parser) parseInsert() (*ast.InsertStmt, error) {
	pos := p.advance().Position // INSERT
	if _, err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	table, err := p.parseQName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStmt{Header: ast.Header{Position: pos}, Table: table}

	if p.curIsPunct("(") {
		open := p.advance()
		for {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, id.Name)
			if !p.tryPunct(",") {
				break
			}
		}
		close_, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		stmt.ColumnsPos = ast.Header{Position: open.Position}
		if len(open.LeadingComments) > 0 {
			stmt.ColumnsPos.Own.Leading = append(stmt.ColumnsPos.Own.Leading, open.LeadingComments...)
			open.LeadingComments = nil
		}
		if len(close_.TrailingComments) > 0 {
			stmt.ColumnsPos.Own.Trailing = append(stmt.ColumnsPos.Own.Trailing, close_.TrailingComments...)
			close_.TrailingComments = nil
		}
	}

	source, err := p.parseInsertSource()
	if err != nil {
		return nil, err
	}
	stmt.Source = source

	if p.curIsKeyword("RETURNING") {
		rc, err := p.parseReturningClause()
		if err != nil {
			return nil, err
		}
		stmt.Returning = rc
	}
	return stmt, nil
}

func (p *Parser) parseInsertSource() (*ast.InsertSource, error) {
	pos := p.curPos()
	if p.curIsKeyword("VALUES") {
		p.advance()
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
		return &ast.InsertSource{Header: ast.Header{Position: pos}, Rows: rows}, nil
	}
	q, err := p.parseSelectQuery()
	if err != nil {
		return nil, err
	}
	return &ast.InsertSource{Header: ast.Header{Position: pos}, Query: q}, nil
}

func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	pos := p.curPos()
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if !p.curIsOperator("=") {
		return nil, missingToken(p.curPos(), "=")
	}
	p.advance()
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Header: ast.Header{Position: pos}, Column: id.Name, Value: val}, nil
}

func (p *Parser) parseUpdate() (*ast.UpdateStmt, error) {
	pos := p.advance().Position // UPDATE
	table, err := p.parseQName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.UpdateStmt{Header: ast.Header{Position: pos}, Table: table}

	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	stmt.Alias = alias

	if _, err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}
	assign, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	stmt.Assignments = append(stmt.Assignments, *assign)
	for p.tryPunct(",") {
		assign, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, *assign)
	}

	if p.tryKeyword("FROM") {
		from, err := p.parseTableSource()
		if err != nil {
			return nil, err
		}
		stmt.From = from
	}
	if p.tryKeyword("WHERE") {
		w, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = w
	}
	if p.curIsKeyword("RETURNING") {
		rc, err := p.parseReturningClause()
		if err != nil {
			return nil, err
		}
		stmt.Returning = rc
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (*ast.DeleteStmt, error) {
	pos := p.advance().Position // DELETE
	if _, err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table, err := p.parseQName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeleteStmt{Header: ast.Header{Position: pos}, Table: table}

	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	stmt.Alias = alias

	if p.tryKeyword("USING") {
		using, err := p.parseTableSource()
		if err != nil {
			return nil, err
		}
		stmt.Using = using
	}
	if p.tryKeyword("WHERE") {
		w, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = w
	}
	if p.curIsKeyword("RETURNING") {
		rc, err := p.parseReturningClause()
		if err != nil {
			return nil, err
		}
		stmt.Returning = rc
	}
	return stmt, nil
}

func (p *Parser) parseMerge() (*ast.MergeStmt, error) {
	pos := p.advance().Position // MERGE
	if _, err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	target, err := p.parsePrimaryTableSource()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("USING"); err != nil {
		return nil, err
	}
	source, err := p.parsePrimaryTableSource()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("ON"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &ast.MergeStmt{Header: ast.Header{Position: pos}, Target: target, Source: source, On: cond}

	for p.curIsKeyword("WHEN") {
		w, err := p.parseMergeWhen()
		if err != nil {
			return nil, err
		}
		stmt.Whens = append(stmt.Whens, *w)
	}
	if p.curIsKeyword("RETURNING") {
		rc, err := p.parseReturningClause()
		if err != nil {
			return nil, err
		}
		stmt.Returning = rc
	}
	return stmt, nil
}

func (p *Parser) parseMergeWhen() (*ast.MergeWhenClause, error) {
	pos := p.advance().Position // WHEN
	notMatched := p.tryKeyword("NOT")
	if _, err := p.expectKeyword("MATCHED"); err != nil {
		return nil, err
	}
	var cond ast.Value
	if p.tryKeyword("AND") {
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	action, err := p.parseMergeAction()
	if err != nil {
		return nil, err
	}
	return &ast.MergeWhenClause{Header: ast.Header{Position: pos}, Matched: !notMatched, Condition: cond, Action: *action}, nil
}

func (p *Parser) parseMergeAction() (*ast.MergeAction, error) {
	pos := p.curPos()
	switch {
	case p.tryKeyword("UPDATE"):
		if _, err := p.expectKeyword("SET"); err != nil {
			return nil, err
		}
		action := &ast.MergeAction{Header: ast.Header{Position: pos}}
		assign, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		action.Assignments = append(action.Assignments, *assign)
		for p.tryPunct(",") {
			assign, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			action.Assignments = append(action.Assignments, *assign)
		}
		return action, nil

	case p.tryKeyword("DELETE"):
		return &ast.MergeAction{Header: ast.Header{Position: pos}, IsDelete: true}, nil

	case p.tryKeyword("INSERT"):
		action := &ast.MergeAction{Header: ast.Header{Position: pos}}
		if p.curIsPunct("(") {
			p.advance()
			for {
				id, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				action.Columns = append(action.Columns, id.Name)
				if !p.tryPunct(",") {
					break
				}
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, err
			}
		}
		if _, err := p.expectKeyword("VALUES"); err != nil {
			return nil, err
		}
		if _, err := p.expectPunct("("); err != nil {
			return nil, err
		}
		vals, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		action.Values = vals
		return action, nil

	default:
		return nil, unexpectedToken(p.curPos(), p.curText(), "UPDATE", "DELETE", "INSERT")
	}
}
