package parser

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/token"
)

func (p *Parser) parseCreate() (ast.Statement, error) {
	pos := p.advance().Position // CREATE
	unique := p.tryKeyword("UNIQUE")
	switch {
	case p.curIsKeyword("TABLE"):
		return p.parseCreateTable(pos)
	case p.curIsKeyword("INDEX"):
		return p.parseCreateIndex(pos, unique)
	default:
		return nil, unexpectedToken(p.curPos(), p.curText(), "TABLE", "INDEX")
	}
}

func (p *Parser) parseCreateTable(pos token.Position) (*ast.CreateTableStmt, error) {
	if _, err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	ifNotExists, err := p.tryIfNotExists()
	if err != nil {
		return nil, err
	}
	table, err := p.parseQName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateTableStmt{Header: ast.Header{Position: pos}, IfNotExists: ifNotExists, Table: table}

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	for {
		if p.curIsKeyword("PRIMARY") || p.curIsKeyword("UNIQUE") || p.curIsKeyword("FOREIGN") || p.curIsKeyword("CHECK") || p.curIsKeyword("CONSTRAINT") {
			c, err := p.parseConstraintDef()
			if err != nil {
				return nil, err
			}
			stmt.Constraints = append(stmt.Constraints, *c)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, *col)
		}
		if !p.tryPunct(",") {
			break
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) tryIfNotExists() (bool, error) {
	if !p.tryKeyword("IF") {
		return false, nil
	}
	if _, err := p.expectKeyword("NOT"); err != nil {
		return false, err
	}
	if _, err := p.expectKeyword("EXISTS"); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	pos := p.curPos()
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	typeName, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDef{Header: ast.Header{Position: pos}, Name: id.Name, TypeName: typeName}
	for {
		switch {
		case p.tryKeyword("NOT"):
			if _, err := p.expectKeyword("NULL"); err != nil {
				return nil, err
			}
			col.NotNull = true
		case p.tryKeyword("NULL"):
			// explicit NULL is the default; nothing to record.
		case p.tryKeyword("DEFAULT"):
			v, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			col.Default = v
		case p.tryKeyword("PRIMARY"):
			if _, err := p.expectKeyword("KEY"); err != nil {
				return nil, err
			}
			col.PrimaryKey = true
		case p.tryKeyword("UNIQUE"):
			col.Unique = true
		default:
			return col, nil
		}
	}
}

func (p *Parser) parseConstraintDef() (*ast.ConstraintDef, error) {
	pos := p.curPos()
	name := ""
	if p.tryKeyword("CONSTRAINT") {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		name = id.Name
	}
	cd := &ast.ConstraintDef{Header: ast.Header{Position: pos}, Name: name}
	switch {
	case p.tryKeyword("PRIMARY"):
		if _, err := p.expectKeyword("KEY"); err != nil {
			return nil, err
		}
		cd.Kind = ast.PrimaryKeyConstraint
		cols, err := p.parseParenColumnList()
		if err != nil {
			return nil, err
		}
		cd.Columns = cols

	case p.tryKeyword("UNIQUE"):
		cd.Kind = ast.UniqueConstraint
		cols, err := p.parseParenColumnList()
		if err != nil {
			return nil, err
		}
		cd.Columns = cols

	case p.tryKeyword("FOREIGN"):
		if _, err := p.expectKeyword("KEY"); err != nil {
			return nil, err
		}
		cd.Kind = ast.ForeignKeyConstraint
		cols, err := p.parseParenColumnList()
		if err != nil {
			return nil, err
		}
		cd.Columns = cols
		if _, err := p.expectKeyword("REFERENCES"); err != nil {
			return nil, err
		}
		refTable, err := p.parseQName()
		if err != nil {
			return nil, err
		}
		cd.RefTable = refTable[len(refTable)-1].Name
		if p.curIsPunct("(") {
			refCols, err := p.parseParenColumnList()
			if err != nil {
				return nil, err
			}
			cd.RefColumns = refCols
		}

	case p.tryKeyword("CHECK"):
		cd.Kind = ast.CheckConstraint
		if _, err := p.expectPunct("("); err != nil {
			return nil, err
		}
		start := p.pos
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
		text := reconstructExprText(p.lexemes[start:p.pos])
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		cd.CheckExpr = text

	default:
		return nil, unexpectedToken(p.curPos(), p.curText(), "PRIMARY", "UNIQUE", "FOREIGN", "CHECK")
	}
	return cd, nil
}

// reconstructExprText joins the lexeme values consumed while parsing a CHECK
// predicate, single-spaced, into the text ConstraintDef.CheckExpr carries; it
// is a stable token join, not a faithful re-print.
func reconstructExprText(lxs []token.Lexeme) string {
	parts := make([]string, len(lxs))
	for i, lx := range lxs {
		parts[i] = lx.Value
	}
	return strings.Join(parts, " ")
}

func (p *Parser) parseParenColumnList() ([]string, error) {
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var cols []string
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
	return cols, nil
}

func (p *Parser) parseCreateIndex(pos token.Position, unique bool) (*ast.CreateIndexStmt, error) {
	if _, err := p.expectKeyword("INDEX"); err != nil {
		return nil, err
	}
	ifNotExists, err := p.tryIfNotExists()
	if err != nil {
		return nil, err
	}
	name := ""
	if !p.curIsKeyword("ON") {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		name = id.Name
	}
	if _, err := p.expectKeyword("ON"); err != nil {
		return nil, err
	}
	table, err := p.parseQName()
	if err != nil {
		return nil, err
	}
	cols, err := p.parseParenColumnList()
	if err != nil {
		return nil, err
	}
	return &ast.CreateIndexStmt{Header: ast.Header{Position: pos}, Unique: unique, IfNotExists: ifNotExists, Name: name, Table: table, Columns: cols}, nil
}

func (p *Parser) parseAlter() (*ast.AlterStmt, error) {
	pos := p.advance().Position // ALTER
	if _, err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	table, err := p.parseQName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AlterStmt{Header: ast.Header{Position: pos}, Table: table}

	switch {
	case p.tryKeyword("ADD"):
		if p.curIsKeyword("CONSTRAINT") || p.curIsKeyword("PRIMARY") || p.curIsKeyword("UNIQUE") || p.curIsKeyword("FOREIGN") || p.curIsKeyword("CHECK") {
			c, err := p.parseConstraintDef()
			if err != nil {
				return nil, err
			}
			stmt.Kind = ast.AddConstraint
			stmt.Constraint = c
		} else {
			p.tryKeyword("COLUMN")
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			stmt.Kind = ast.AddColumn
			stmt.Column = col
		}

	case p.tryKeyword("DROP"):
		if p.tryKeyword("CONSTRAINT") {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			stmt.Kind = ast.DropConstraint
			stmt.DropName = id.Name
		} else {
			p.tryKeyword("COLUMN")
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			stmt.Kind = ast.DropColumn
			stmt.DropName = id.Name
		}

	default:
		return nil, unexpectedToken(p.curPos(), p.curText(), "ADD", "DROP")
	}
	return stmt, nil
}
