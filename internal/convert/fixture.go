package convert

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/token"
)

var token0 token.Position

// literalFromLexeme classifies a fixture cell's raw lexeme the same way the
// lexer would: a single-quoted run is a string literal (unescaped), bare
// NULL/TRUE/FALSE are their own kinds, everything else is numeric.
func literalFromLexeme(text string) *ast.Literal {
	switch strings.ToUpper(text) {
	case "NULL":
		return ast.NewLiteral(ast.NullLit, "null", token0)
	case "TRUE":
		return ast.NewLiteral(ast.BooleanLit, "true", token0)
	case "FALSE":
		return ast.NewLiteral(ast.BooleanLit, "false", token0)
	}
	if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		return ast.NewLiteral(ast.StringLit, text[1:len(text)-1], token0)
	}
	return ast.NewLiteral(ast.NumericLit, text, token0)
}

// fixtureQuery builds a SelectQuery whose rows are table's fixture rows,
// one SELECT per row unioned together; the first row's columns are aliased to
// the fixture column names, which name the union's columns, so downstream
// projections can reference them by name. An empty
// fixture table renders as a zero-row query over the same column list.
func fixtureQuery(table FixtureTable) ast.SelectQuery {
	if len(table.Rows) == 0 {
		items := make([]ast.SelectItem, len(table.Columns))
		for i, col := range table.Columns {
			items[i] = ast.SelectItem{Expr: ast.NewLiteral(ast.NullLit, "null", token0), Alias: col.Name}
		}
		return &ast.SimpleSelect{
			SelectItems: items,
			Where:       ast.NewLiteral(ast.BooleanLit, "false", token0),
		}
	}

	var query ast.SelectQuery
	for _, row := range table.Rows {
		items := make([]ast.SelectItem, len(table.Columns))
		for i, col := range table.Columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			alias := ""
			if query == nil {
				alias = col.Name
			}
			items[i] = ast.SelectItem{Expr: literalFromLexeme(cell), Alias: alias}
		}
		sel := &ast.SimpleSelect{SelectItems: items}
		if query == nil {
			query = sel
		} else {
			query = &ast.BinarySelectQuery{Op: ast.UnionAll, Left: query, Right: sel}
		}
	}
	return query
}
