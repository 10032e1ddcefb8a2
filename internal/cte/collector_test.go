package cte

import (
	"strings"
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/parser"
)

func mustParseSelect(t *testing.T, sql string) ast.SelectQuery {
	t.Helper()
	q, err := parser.ParseSelect(sql)
	if err != nil {
		t.Fatalf("ParseSelect(%q) failed: %v", sql, err)
	}
	return q
}

func TestCollect_LinearDependency(t *testing.T) {
	q := mustParseSelect(t, `WITH a AS (SELECT 1), b AS (SELECT * FROM a) SELECT * FROM b`)

	infos, err := Collect(q)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 CTEs, got %d: %+v", len(infos), infos)
	}
	if infos[0].Name != "a" || len(infos[0].Dependencies) != 0 {
		t.Errorf("expected a with no dependencies first, got %+v", infos[0])
	}
	if infos[1].Name != "b" || len(infos[1].Dependencies) != 1 || infos[1].Dependencies[0] != "a" {
		t.Errorf("expected b to depend on a, got %+v", infos[1])
	}
	if len(infos[0].Dependents) != 1 || infos[0].Dependents[0] != "b" {
		t.Errorf("expected a to list b as a dependent, got %+v", infos[0].Dependents)
	}
}

func TestCollect_RecursiveSelfReference(t *testing.T) {
	q := mustParseSelect(t, `WITH RECURSIVE r AS (SELECT 1 AS n UNION ALL SELECT n + 1 FROM r WHERE n < 10) SELECT * FROM r`)

	infos, err := Collect(q)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(infos) != 1 || !infos[0].IsRecursive {
		t.Fatalf("expected a single recursive CTE, got %+v", infos)
	}
}

func TestCollect_RecursiveSelfReferenceWithoutRecursiveKeywordFails(t *testing.T) {
	q := mustParseSelect(t, `WITH r AS (SELECT 1 AS n UNION ALL SELECT n + 1 FROM r WHERE n < 10) SELECT * FROM r`)

	_, err := Collect(q)
	if err == nil {
		t.Fatal("expected a RecursiveMarkerMismatch error for a self-referencing non-RECURSIVE WITH")
	}
	cteErr, ok := err.(CteError)
	if !ok || cteErr.Kind != "RecursiveMarkerMismatch" {
		t.Errorf("expected CteError{Kind: RecursiveMarkerMismatch}, got %#v", err)
	}
}

func TestCollect_CyclicDependencyFails(t *testing.T) {
	q := mustParseSelect(t, `WITH a AS (SELECT * FROM b), b AS (SELECT * FROM a) SELECT * FROM a`)

	_, err := Collect(q)
	if err == nil {
		t.Fatal("expected a CyclicDependency error for mutually referencing CTEs")
	}
	cteErr, ok := err.(CteError)
	if !ok || cteErr.Kind != "CyclicDependency" {
		t.Errorf("expected CteError{Kind: CyclicDependency}, got %#v", err)
	}
}

func TestDecompose_AttachesTransitiveDeps(t *testing.T) {
	q := mustParseSelect(t, `WITH a AS (SELECT 1), b AS (SELECT * FROM a), c AS (SELECT * FROM b) SELECT * FROM c`)

	infos, err := Decompose(q)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	var cInfo *Info
	for i := range infos {
		if infos[i].Name == "c" {
			cInfo = &infos[i]
		}
	}
	if cInfo == nil {
		t.Fatal("expected an entry for c")
	}
	sel, ok := cInfo.Query.(*ast.SimpleSelect)
	if !ok || sel.With == nil {
		t.Fatalf("expected c's decomposed query to carry its own WITH clause, got %#v", cInfo.Query)
	}
	names := make([]string, len(sel.With.Tables))
	for i, tbl := range sel.With.Tables {
		names[i] = tbl.Name
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected c's synthesized WITH to carry [a, b] in dependency order, got %v", names)
	}
}

func TestExtract_ResolvesClosure(t *testing.T) {
	q := mustParseSelect(t, `WITH a AS (SELECT 1), b AS (SELECT * FROM a), c AS (SELECT * FROM b) SELECT * FROM c`)

	extracted, err := Extract(q, "c")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(extracted.Dependencies) != 2 {
		t.Fatalf("expected c to transitively depend on 2 CTEs, got %v", extracted.Dependencies)
	}
	if len(extracted.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", extracted.Warnings)
	}
	if !strings.Contains(extracted.ExecutableSQL, "a") || !strings.Contains(extracted.ExecutableSQL, "b") {
		t.Errorf("expected rendered SQL to mention both dependencies, got %q", extracted.ExecutableSQL)
	}
}

func TestExtract_UnknownNameFails(t *testing.T) {
	q := mustParseSelect(t, `WITH a AS (SELECT 1) SELECT * FROM a`)

	_, err := Extract(q, "missing")
	if err == nil {
		t.Fatal("expected an UnknownCte error")
	}
	cteErr, ok := err.(CteError)
	if !ok || cteErr.Kind != "UnknownCte" {
		t.Errorf("expected CteError{Kind: UnknownCte}, got %#v", err)
	}
}

func TestCompose_OrdersByDependency(t *testing.T) {
	out, err := Compose([]Edit{
		{Name: "b", Text: `SELECT * FROM a`},
		{Name: "a", Text: `SELECT 1`},
	}, "SELECT * FROM b")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	aIdx := strings.Index(out, `"a" as`)
	bIdx := strings.Index(out, `"b" as`)
	if aIdx == -1 || bIdx == -1 || aIdx > bIdx {
		t.Errorf("expected a's definition to precede b's in composed SQL, got %q", out)
	}
}

func TestCompose_HoistsNestedWith(t *testing.T) {
	out, err := Compose([]Edit{
		{Name: "outer", Text: `WITH inner AS (SELECT 1) SELECT * FROM inner`},
	}, "SELECT * FROM outer")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !strings.Contains(out, "inner") || !strings.Contains(out, "outer") {
		t.Errorf("expected both the hoisted inner CTE and outer to appear, got %q", out)
	}
}
