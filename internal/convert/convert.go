// Package convert derives a runnable SELECT from the post-statement rows a
// RETURNING clause would have produced, using caller-supplied fixture data
// in place of a live database.
package convert

import "github.com/ritamzico/sqlkit/internal/ast"

// ToSelectQuery converts an INSERT/UPDATE/DELETE/MERGE statement into a
// SelectQuery reading its RETURNING projection from a simulated fixture CTE.
// Statements without a RETURNING clause are returned unchanged when options
// selects StrategyPassthrough; with StrategyError, a referenced fixture
// table that is missing is always an error regardless of RETURNING.
func ToSelectQuery(stmt ast.Statement, opts Options) (ast.Node, error) {
	switch s := stmt.(type) {
	case *ast.InsertStmt:
		return convertReturning(s.TableName(), s.Returning, stmt, opts)
	case *ast.UpdateStmt:
		return convertReturning(s.TableName(), s.Returning, stmt, opts)
	case *ast.DeleteStmt:
		return convertReturning(s.TableName(), s.Returning, stmt, opts)
	case *ast.MergeStmt:
		return convertReturning(mergeTargetName(s), s.Returning, stmt, opts)
	default:
		return nil, unsupportedReturning("statement")
	}
}

func mergeTargetName(s *ast.MergeStmt) string {
	if bt, ok := s.Target.(*ast.BaseTable); ok {
		return bt.Name()
	}
	return ""
}

func convertReturning(tableName string, returning *ast.ReturningClause, stmt ast.Statement, opts Options) (ast.Node, error) {
	if returning == nil {
		if opts.MissingFixtureStrategy == StrategyPassthrough {
			return stmt, nil
		}
		if _, ok := opts.lookup(tableName); !ok {
			return nil, fixtureMissing(tableName)
		}
		return stmt, nil
	}

	table, ok := opts.lookup(tableName)
	if !ok {
		if opts.MissingFixtureStrategy == StrategyPassthrough {
			return stmt, nil
		}
		return nil, fixtureMissing(tableName)
	}

	cteName := tableName + "_returning"
	with := &ast.WithClause{Tables: []ast.CTE{{Name: cteName, Query: fixtureQuery(table)}}}

	items := returning.Items
	if returning.Star {
		items = []ast.SelectItem{{Expr: &ast.Star{}}}
	}

	outer := &ast.SimpleSelect{
		With:        with,
		SelectItems: items,
		From:        &ast.BaseTable{QName: []ast.Ident{{Name: cteName}}},
	}
	return outer, nil
}
