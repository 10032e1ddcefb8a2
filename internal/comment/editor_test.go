package comment_test

import (
	"strings"
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/comment"
	"github.com/ritamzico/sqlkit/internal/format"
	"github.com/ritamzico/sqlkit/internal/parser"
	"github.com/ritamzico/sqlkit/internal/printtoken"
	"github.com/ritamzico/sqlkit/internal/token"
)

func mustParseSelect(t *testing.T, sql string) ast.SelectQuery {
	t.Helper()
	q, err := parser.ParseSelect(sql)
	if err != nil {
		t.Fatalf("ParseSelect(%q) failed: %v", sql, err)
	}
	return q
}

func TestAddComment_RootAndWithClauseCarrySeparateComments(t *testing.T) {
	q := mustParseSelect(t, "/* cte block */\nWITH a AS (SELECT 1) SELECT * FROM a")
	sel, ok := q.(*ast.SimpleSelect)
	if !ok {
		t.Fatalf("expected *ast.SimpleSelect, got %T", q)
	}
	if comment.CountComments(sel.With) != 1 {
		t.Fatalf("expected the WITH clause to already own one leading comment, got %d", comment.CountComments(sel.With))
	}
	if comment.CountComments(sel) != 0 {
		t.Fatalf("expected the root to start with no comments, got %d", comment.CountComments(sel))
	}

	comment.AddComment(sel, "X", token.LineComment, comment.Leading)

	if comment.CountComments(sel) != 1 {
		t.Fatalf("expected the root to carry exactly one comment after AddComment, got %d", comment.CountComments(sel))
	}
	if got := comment.GetComments(sel)[0].Text; got != "X" {
		t.Errorf("expected root comment text %q, got %q", "X", got)
	}
	if comment.CountComments(sel.With) != 1 {
		t.Fatalf("expected the WITH clause's original comment to survive untouched, got %d", comment.CountComments(sel.With))
	}
	if got := comment.GetComments(sel.With)[0].Text; !strings.Contains(got, "cte block") {
		t.Errorf("expected the WITH clause's original comment text to survive, got %q", got)
	}
}

func TestFormat_ExportsCommentsInSourceOrder(t *testing.T) {
	q := mustParseSelect(t, "/* cte block */\nWITH a AS (SELECT 1) SELECT * FROM a")
	sel := q.(*ast.SimpleSelect)
	comment.AddComment(sel, "X", token.LineComment, comment.Leading)

	toks := printtoken.EmitQuery(sel)
	opts := format.DefaultOptions()
	opts.ExportComment = true
	opts.CommentStyle = format.CommentLine
	out, err := format.Format(toks, opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	xIdx := strings.Index(out, "-- X")
	cteIdx := strings.Index(out, "-- cte block")
	if xIdx == -1 {
		t.Fatalf("expected the root's comment to be rendered, got %q", out)
	}
	if cteIdx == -1 {
		t.Fatalf("expected the WITH clause's comment to be rendered, got %q", out)
	}
	if xIdx > cteIdx {
		t.Errorf("expected the root's leading comment to render before the WITH clause's, got %q", out)
	}
}

func TestEditAndDeleteComment_CombinedIndexing(t *testing.T) {
	q := mustParseSelect(t, "SELECT 1")
	sel := q.(*ast.SimpleSelect)
	comment.AddComment(sel, "first", token.LineComment, comment.Leading)
	comment.AddComment(sel, "second", token.LineComment, comment.Trailing)

	if err := comment.EditComment(sel, 1, "second-edited"); err != nil {
		t.Fatalf("EditComment failed: %v", err)
	}
	if got := comment.GetComments(sel)[1].Text; got != "second-edited" {
		t.Errorf("expected trailing comment to be edited, got %q", got)
	}

	if err := comment.DeleteComment(sel, 0); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if comment.CountComments(sel) != 1 {
		t.Fatalf("expected one comment left after delete, got %d", comment.CountComments(sel))
	}
	if comment.GetComments(sel)[0].Text != "second-edited" {
		t.Errorf("expected the surviving comment to be the trailing one, got %q", comment.GetComments(sel)[0].Text)
	}

	if err := comment.DeleteComment(sel, 5); err == nil {
		t.Fatal("expected an out-of-range delete to fail")
	}
}

func TestFindAndReplaceInComments(t *testing.T) {
	q := mustParseSelect(t, `WITH a AS (SELECT 1), b AS (SELECT * FROM a) SELECT * FROM b`)
	sel := q.(*ast.SimpleSelect)
	comment.AddComment(&sel.With.Tables[0], "needle here", token.LineComment, comment.Leading)
	comment.AddComment(&sel.With.Tables[1], "unrelated", token.LineComment, comment.Leading)

	found := comment.FindComponentsWithComment(sel, "needle")
	if len(found) != 1 {
		t.Fatalf("expected exactly one node to match, got %d", len(found))
	}

	n := comment.ReplaceInComments(sel, "needle", "found")
	if n != 1 {
		t.Fatalf("expected exactly one comment touched, got %d", n)
	}
	if comment.CountAllComments(sel) != 2 {
		t.Fatalf("expected 2 comments total under the tree, got %d", comment.CountAllComments(sel))
	}
}
