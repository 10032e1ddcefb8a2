package printtoken

import (
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/parser"
)

var representativeStatements = []string{
	`SELECT a, b FROM t WHERE a = 1 ORDER BY b LIMIT 10`,
	`WITH a AS (SELECT 1) SELECT * FROM a`,
	`SELECT SUM(amount) FILTER (WHERE year = 2023) OVER (PARTITION BY region) FROM sales`,
	`INSERT INTO t (a, b) VALUES (1, 2) RETURNING a`,
	`UPDATE t SET a = 1 WHERE b = 2 RETURNING a`,
	`DELETE FROM t WHERE a = 1`,
	`MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN UPDATE SET a = s.a WHEN NOT MATCHED THEN INSERT (id, a) VALUES (s.id, s.a)`,
	`CREATE TABLE t (id INT PRIMARY KEY, name TEXT NOT NULL)`,
	`CREATE UNIQUE INDEX idx_t_name ON t (name)`,
}

func TestEmit_DoesNotPanicOnRepresentativeStatements(t *testing.T) {
	for _, sql := range representativeStatements {
		stmt, err := parser.Parse(sql)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", sql, err)
		}
		toks := Emit(stmt)
		if len(toks) == 0 {
			t.Errorf("Emit(%q) produced no tokens", sql)
		}
	}
}

func TestEmitQuery_DoesNotPanicOnSelectQueries(t *testing.T) {
	sqls := []string{
		`SELECT 1`,
		`WITH a AS (SELECT 1) SELECT * FROM a`,
		`SELECT 1 UNION ALL SELECT 2`,
		`VALUES (1, 2), (3, 4)`,
	}
	for _, sql := range sqls {
		q, err := parser.ParseSelect(sql)
		if err != nil {
			t.Fatalf("ParseSelect(%q) failed: %v", sql, err)
		}
		toks := EmitQuery(q)
		if len(toks) == 0 {
			t.Errorf("EmitQuery(%q) produced no tokens", sql)
		}
	}
}

func TestEmitWith_ProducesGroupAndCTETokens(t *testing.T) {
	q, err := parser.ParseSelect(`WITH a AS (SELECT 1), b AS (SELECT 2) SELECT * FROM a`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}
	sel, ok := q.(*ast.SimpleSelect)
	if !ok || sel.With == nil {
		t.Fatalf("expected a *ast.SimpleSelect with a WITH clause, got %T", q)
	}

	toks := EmitWith(sel.With)
	var sawGroup, sawIdent bool
	for _, tok := range toks {
		if tok.Kind == Group {
			sawGroup = true
		}
		if tok.Kind == IdentifierTok && (tok.Text == "a" || tok.Text == "b") {
			sawIdent = true
		}
	}
	if !sawGroup {
		t.Error("expected EmitWith to open at least one Group token")
	}
	if !sawIdent {
		t.Error("expected EmitWith to emit the CTE names a and b as identifier tokens")
	}
}
