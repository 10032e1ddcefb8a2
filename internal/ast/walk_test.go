package ast_test

import (
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/parser"
)

func TestWalk_VisitsEveryNode(t *testing.T) {
	q, err := parser.ParseSelect(`SELECT a, b FROM t WHERE a = 1`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}
	count := 0
	ast.Walk(q, func(ast.Node) { count++ })
	if count < 5 {
		t.Errorf("expected Walk to visit a nontrivial number of nodes, got %d", count)
	}
}

func TestBaseTableRefs_ExcludesCTEBodiesWhenRequested(t *testing.T) {
	q, err := parser.ParseSelect(`WITH a AS (SELECT * FROM inner_table) SELECT * FROM a`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}

	without := ast.BaseTableRefs(q, false)
	var names []string
	for _, bt := range without {
		names = append(names, bt.Name())
	}
	for _, n := range names {
		if n == "inner_table" {
			t.Errorf("expected inner_table to be excluded when includeCTEBodies is false, got %v", names)
		}
	}

	with := ast.BaseTableRefs(q, true)
	var found bool
	for _, bt := range with {
		if bt.Name() == "inner_table" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected inner_table to be included when includeCTEBodies is true, got %v", with)
	}
}

func TestCloneSelectQuery_IsIndependentOfSource(t *testing.T) {
	q, err := parser.ParseSelect(`SELECT a FROM t WHERE a = 1`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}
	clone := ast.CloneSelectQuery(q)

	sel, ok := clone.(*ast.SimpleSelect)
	if !ok {
		t.Fatalf("expected *ast.SimpleSelect, got %T", clone)
	}
	lit, ok := sel.Where.(*ast.BinaryExpr).Rhs.(*ast.Literal)
	if !ok {
		t.Fatalf("expected the WHERE clause RHS to be a literal, got %#v", sel.Where)
	}
	lit.Text = "999"

	origSel := q.(*ast.SimpleSelect)
	origLit := origSel.Where.(*ast.BinaryExpr).Rhs.(*ast.Literal)
	if origLit.Text == "999" {
		t.Error("expected mutating the clone to leave the original query untouched")
	}
}
