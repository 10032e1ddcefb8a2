package parser

import (
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
)

func TestParseSelect_StringVsBareLiteralFidelity(t *testing.T) {
	q, err := ParseSelect(`SELECT 'null', null FROM t`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}
	sel, ok := q.(*ast.SimpleSelect)
	if !ok {
		t.Fatalf("expected *ast.SimpleSelect, got %T", q)
	}
	if len(sel.SelectItems) != 2 {
		t.Fatalf("expected 2 select items, got %d", len(sel.SelectItems))
	}

	lit0, ok := sel.SelectItems[0].Expr.(*ast.Literal)
	if !ok {
		t.Fatalf("item[0] expected *ast.Literal, got %T", sel.SelectItems[0].Expr)
	}
	if !lit0.IsString || lit0.Kind != ast.StringLit {
		t.Errorf("item[0] should be a string literal 'null', got IsString=%v Kind=%v", lit0.IsString, lit0.Kind)
	}

	lit1, ok := sel.SelectItems[1].Expr.(*ast.Literal)
	if !ok {
		t.Fatalf("item[1] expected *ast.Literal, got %T", sel.SelectItems[1].Expr)
	}
	if lit1.IsString || lit1.Kind != ast.NullLit {
		t.Errorf("item[1] should be a bare NULL keyword literal, got IsString=%v Kind=%v", lit1.IsString, lit1.Kind)
	}
}

func TestParseSelect_WithinGroup(t *testing.T) {
	q, err := ParseSelect(`SELECT PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY amount) FROM sales`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}
	sel := q.(*ast.SimpleSelect)
	call, ok := sel.SelectItems[0].Expr.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("expected *ast.FunctionCall, got %T", sel.SelectItems[0].Expr)
	}
	if call.WithinGroup == nil {
		t.Fatal("expected WithinGroup to be populated")
	}
	if len(call.WithinGroup.Items) != 1 {
		t.Fatalf("expected exactly one ORDER BY item, got %d", len(call.WithinGroup.Items))
	}
	col, ok := call.WithinGroup.Items[0].Expr.(*ast.Ident)
	if !ok || col.Name != "amount" {
		t.Errorf("expected WITHIN GROUP to order by amount, got %#v", call.WithinGroup.Items[0].Expr)
	}
}

func TestParseSelect_FilterAndOverCoexist(t *testing.T) {
	q, err := ParseSelect(`SELECT SUM(amount) FILTER (WHERE year = 2023) OVER () FROM t`)
	if err != nil {
		t.Fatalf("ParseSelect failed: %v", err)
	}
	sel := q.(*ast.SimpleSelect)
	call, ok := sel.SelectItems[0].Expr.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("expected *ast.FunctionCall, got %T", sel.SelectItems[0].Expr)
	}
	if call.Filter == nil {
		t.Error("expected Filter to be populated")
	}
	if call.Over == nil {
		t.Error("expected Over to be populated")
	}
}

func TestParseSelect_CaseElseOnlyIsError(t *testing.T) {
	_, err := ParseSelect(`SELECT CASE ELSE 1 END FROM t`)
	if err == nil {
		t.Fatal("expected a parse error for CASE with only ELSE and no WHEN")
	}
}

func TestParseSelect_BetweenChainedAndRejected(t *testing.T) {
	_, err := ParseSelect(`SELECT * FROM t WHERE a BETWEEN 1 AND 2 AND 3`)
	if err == nil {
		t.Fatal("expected BETWEEN a AND b AND c to be a parse error")
	}
}
