package parser

import (
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
)

func TestParse_InsertValuesReturning(t *testing.T) {
	stmt, err := Parse(`INSERT INTO t (a, b) VALUES (1, 2), (3, 4) RETURNING a, b`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins, ok := stmt.(*ast.InsertStmt)
	if !ok {
		t.Fatalf("expected *ast.InsertStmt, got %T", stmt)
	}
	if ins.TableName() != "t" {
		t.Errorf("expected table name t, got %q", ins.TableName())
	}
	if len(ins.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ins.Columns))
	}
	if len(ins.Source.Rows) != 2 {
		t.Fatalf("expected 2 VALUES rows, got %d", len(ins.Source.Rows))
	}
	if ins.Returning == nil || ins.Returning.Star || len(ins.Returning.Items) != 2 {
		t.Fatalf("expected a 2-column RETURNING clause, got %#v", ins.Returning)
	}
}

func TestParse_InsertFromSelect(t *testing.T) {
	stmt, err := Parse(`INSERT INTO t (a) SELECT x FROM s`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins := stmt.(*ast.InsertStmt)
	if ins.Source.Query == nil {
		t.Fatal("expected Source.Query to be populated for an INSERT ... SELECT")
	}
	if ins.Source.Rows != nil {
		t.Error("expected Source.Rows to be nil when the source is a SELECT")
	}
}

func TestParse_UpdateSetMultipleAssignments(t *testing.T) {
	stmt, err := Parse(`UPDATE t SET a = 1, b = 2 WHERE c = 3 RETURNING *`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	upd, ok := stmt.(*ast.UpdateStmt)
	if !ok {
		t.Fatalf("expected *ast.UpdateStmt, got %T", stmt)
	}
	if len(upd.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(upd.Assignments))
	}
	if upd.Where == nil {
		t.Error("expected a WHERE clause")
	}
	if upd.Returning == nil || !upd.Returning.Star {
		t.Error("expected RETURNING * to set Star=true")
	}
}

func TestParse_DeleteWithoutWhere(t *testing.T) {
	stmt, err := Parse(`DELETE FROM t`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	del, ok := stmt.(*ast.DeleteStmt)
	if !ok {
		t.Fatalf("expected *ast.DeleteStmt, got %T", stmt)
	}
	if del.Where != nil {
		t.Error("expected no WHERE clause")
	}
}

func TestParse_MergeWithMatchedAndNotMatched(t *testing.T) {
	sql := `MERGE INTO t USING s ON t.id = s.id
		WHEN MATCHED THEN UPDATE SET a = s.a
		WHEN NOT MATCHED THEN INSERT (id, a) VALUES (s.id, s.a)
		RETURNING id`
	stmt, err := Parse(sql)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	merge, ok := stmt.(*ast.MergeStmt)
	if !ok {
		t.Fatalf("expected *ast.MergeStmt, got %T", stmt)
	}
	if len(merge.Whens) != 2 {
		t.Fatalf("expected 2 WHEN clauses, got %d", len(merge.Whens))
	}
	if !merge.Whens[0].Matched || merge.Whens[1].Matched {
		t.Errorf("expected WHEN MATCHED then WHEN NOT MATCHED in order, got %+v", merge.Whens)
	}
	if merge.Whens[0].Action.IsDelete {
		t.Error("expected the first action to be an UPDATE, not a DELETE")
	}
	if merge.Returning == nil || len(merge.Returning.Items) != 1 {
		t.Fatalf("expected a 1-column RETURNING clause, got %#v", merge.Returning)
	}
}

func TestParse_MergeDeleteAction(t *testing.T) {
	stmt, err := Parse(`MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	merge := stmt.(*ast.MergeStmt)
	if !merge.Whens[0].Action.IsDelete {
		t.Error("expected a DELETE action")
	}
}

func TestParse_CreateTableWithConstraints(t *testing.T) {
	sql := `CREATE TABLE t (
		id INT NOT NULL,
		name TEXT,
		PRIMARY KEY (id),
		CONSTRAINT uq_name UNIQUE (name)
	)`
	stmt, err := Parse(sql)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ct, ok := stmt.(*ast.CreateTableStmt)
	if !ok {
		t.Fatalf("expected *ast.CreateTableStmt, got %T", stmt)
	}
	if ct.TableName() != "t" {
		t.Errorf("expected table name t, got %q", ct.TableName())
	}
	if len(ct.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ct.Columns))
	}
	if !ct.Columns[0].NotNull {
		t.Error("expected id to be NOT NULL")
	}
	if len(ct.Constraints) != 2 {
		t.Fatalf("expected 2 table-level constraints, got %d", len(ct.Constraints))
	}
	if ct.Constraints[0].Kind != ast.PrimaryKeyConstraint {
		t.Errorf("expected the first constraint to be PRIMARY KEY, got %v", ct.Constraints[0].Kind)
	}
	if ct.Constraints[1].Name != "uq_name" || ct.Constraints[1].Kind != ast.UniqueConstraint {
		t.Errorf("expected a named UNIQUE constraint uq_name, got %#v", ct.Constraints[1])
	}
}

func TestParse_CreateIndexUnique(t *testing.T) {
	stmt, err := Parse(`CREATE UNIQUE INDEX idx_t_name ON t (name)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ci, ok := stmt.(*ast.CreateIndexStmt)
	if !ok {
		t.Fatalf("expected *ast.CreateIndexStmt, got %T", stmt)
	}
	if !ci.Unique {
		t.Error("expected Unique=true")
	}
	if ci.TableName() != "t" || len(ci.Columns) != 1 || ci.Columns[0] != "name" {
		t.Errorf("unexpected index shape: %#v", ci)
	}
}

func TestParse_AlterTableAddColumn(t *testing.T) {
	stmt, err := Parse(`ALTER TABLE t ADD COLUMN email TEXT`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	alt, ok := stmt.(*ast.AlterStmt)
	if !ok {
		t.Fatalf("expected *ast.AlterStmt, got %T", stmt)
	}
	if alt.Kind != ast.AddColumn {
		t.Errorf("expected AddColumn, got %v", alt.Kind)
	}
	if alt.Column == nil || alt.Column.Name != "email" {
		t.Errorf("expected a column def named email, got %#v", alt.Column)
	}
}
