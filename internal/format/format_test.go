package format

import (
	"strings"
	"testing"

	"github.com/ritamzico/sqlkit/internal/parser"
	"github.com/ritamzico/sqlkit/internal/printtoken"
)

func TestFormat_InsertValuesCommaBreakBeforeLeadsWithComma(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO t (a, b) VALUES (1, 2), (3, 4), (5, 6)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	toks := printtoken.Emit(stmt)

	opts := DefaultOptions()
	opts.LineWrapping = true
	opts.ExpressionWidth = 1 // force every group to wrap
	opts.ValuesCommaBreak = BreakBefore
	opts.IdentifierEscape = EscapeNone

	out, err := Format(toks, opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	var foundLeadingComma bool
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, ",") {
			foundLeadingComma = true
		}
	}
	if !foundLeadingComma {
		t.Errorf("expected at least one line to start with a leading comma under valuesCommaBreak=before, got %q", out)
	}
	// the comma must not also appear dangling at the end of the previous line;
	// the column list before VALUES follows commaBreak (none here), so only the
	// VALUES rows are checked
	valuesAt := strings.Index(out, "values")
	if valuesAt < 0 {
		t.Fatalf("expected a VALUES clause in the output, got %q", out)
	}
	for _, line := range strings.Split(out[valuesAt:], "\n") {
		trimmed := strings.TrimRight(line, " ")
		if strings.HasSuffix(trimmed, ",") {
			t.Errorf("expected no trailing commas in the VALUES rows under valuesCommaBreak=before, got line %q", line)
		}
	}
}

// TestFormat_S5_CommaBreakAppliesUnderDefaultLineWrapping reproduces
// spec.md's S5 seed scenario literally: only commaBreak=before,
// valuesCommaBreak=before, and identifierEscape=none are set, leaving
// lineWrapping at its documented default (false). commaBreak/valuesCommaBreak
// are independent options and must still force a leading-comma break on
// every list separator even though no width-based wrap was requested.
func TestFormat_S5_CommaBreakAppliesUnderDefaultLineWrapping(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO table_a (id, value) VALUES (1, 10), (2, 20)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	toks := printtoken.Emit(stmt)

	opts := DefaultOptions()
	opts.CommaBreak = BreakBefore
	opts.ValuesCommaBreak = BreakBefore
	opts.IdentifierEscape = EscapeNone

	if opts.LineWrapping {
		t.Fatal("expected DefaultOptions().LineWrapping to be false for this scenario")
	}

	out, err := Format(toks, opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	var columnLeadingComma, valuesLeadingComma bool
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, ",") {
			continue
		}
		if strings.Contains(trimmed, "value") {
			columnLeadingComma = true
		}
		if strings.Contains(trimmed, "(2, 20)") || strings.Contains(trimmed, "2, 20") {
			valuesLeadingComma = true
		}
	}
	if !columnLeadingComma {
		t.Errorf("expected the column list's second column to start a line with a leading comma under the default lineWrapping=false, got %q", out)
	}
	if !valuesLeadingComma {
		t.Errorf("expected the second VALUES row to start a line with a leading comma under the default lineWrapping=false, got %q", out)
	}
}

func TestFormat_ValuesCommaBreakAfterKeepsTrailingComma(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO t (a, b) VALUES (1, 2), (3, 4), (5, 6)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	toks := printtoken.Emit(stmt)

	opts := DefaultOptions()
	opts.LineWrapping = true
	opts.ExpressionWidth = 1
	opts.ValuesCommaBreak = BreakAfter
	opts.IdentifierEscape = EscapeNone

	out, err := Format(toks, opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	var foundTrailingComma bool
	for _, line := range lines {
		if strings.HasSuffix(strings.TrimRight(line, " "), ",") {
			foundTrailingComma = true
		}
	}
	if !foundTrailingComma {
		t.Errorf("expected at least one line to end with a trailing comma under valuesCommaBreak=after, got %q", out)
	}
}

func TestFormat_KeywordCaseAndIdentifierEscape(t *testing.T) {
	stmt, err := parser.Parse(`SELECT a FROM t`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	toks := printtoken.Emit(stmt)

	opts := DefaultOptions()
	opts.KeywordCase = KeywordUpper
	opts.IdentifierEscape = EscapeDoubleQuote

	out, err := Format(toks, opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "SELECT") || !strings.Contains(out, "FROM") {
		t.Errorf("expected uppercased keywords, got %q", out)
	}
	if !strings.Contains(out, `"a"`) || !strings.Contains(out, `"t"`) {
		t.Errorf("expected double-quoted identifiers, got %q", out)
	}
}

func TestFormat_UnknownOptionRejected(t *testing.T) {
	stmt, err := parser.Parse(`SELECT 1`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	toks := printtoken.Emit(stmt)

	opts := DefaultOptions()
	opts.KeywordCase = KeywordCase(99)

	_, err = Format(toks, opts)
	if err == nil {
		t.Fatal("expected an UnknownOption error for an out-of-range KeywordCase")
	}
	fmtErr, ok := err.(FormatError)
	if !ok || fmtErr.Kind != "UnknownOption" {
		t.Errorf("expected FormatError{Kind: UnknownOption}, got %#v", err)
	}
}

func TestFormat_ParameterStyleRewrite(t *testing.T) {
	stmt, err := parser.Parse(`SELECT * FROM t WHERE a = :id AND b = :name`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	toks := printtoken.Emit(stmt)

	opts := DefaultOptions()
	opts.ParameterStyle = ParameterPositional

	out, err := Format(toks, opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "$1") || !strings.Contains(out, "$2") {
		t.Errorf("expected named parameters to be rewritten as positional $1/$2, got %q", out)
	}
}
