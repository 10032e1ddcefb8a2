package lexer

import (
	"testing"

	"github.com/ritamzico/sqlkit/internal/token"
)

func kinds(t *testing.T, lxs []token.Lexeme) []token.Kind {
	t.Helper()
	out := make([]token.Kind, len(lxs))
	for i, lx := range lxs {
		out[i] = lx.Kind
	}
	return out
}

func TestTokenize_BasicSelect(t *testing.T) {
	lxs, err := Tokenize(`SELECT a, 1 FROM t WHERE a = 'hi'`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []token.Kind{
		token.Keyword, token.Identifier, token.Punctuation, token.NumericLiteral,
		token.Keyword, token.Identifier, token.Keyword, token.Identifier,
		token.Operator, token.StringLiteral,
	}
	got := kinds(t, lxs)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTokenize_StringEscapesDoubledQuote(t *testing.T) {
	lxs, err := Tokenize(`SELECT 'it''s here'`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	str := lxs[len(lxs)-1]
	if str.Kind != token.StringLiteral {
		t.Fatalf("expected the last lexeme to be a string literal, got %v", str.Kind)
	}
	if str.Value != "it's here" {
		t.Errorf("expected doubled single-quote to unescape to a literal quote, got %q", str.Value)
	}
}

func TestTokenize_UnterminatedStringFails(t *testing.T) {
	_, err := Tokenize(`SELECT 'unterminated`)
	if err == nil {
		t.Fatal("expected an UnterminatedString error")
	}
	lexErr, ok := err.(LexError)
	if !ok || lexErr.Kind != "UnterminatedString" {
		t.Errorf("expected LexError{Kind: UnterminatedString}, got %#v", err)
	}
}

func TestTokenize_LeadingCommentAttachesToNextLexeme(t *testing.T) {
	lxs, err := Tokenize("-- a comment\nSELECT 1")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(lxs) == 0 {
		t.Fatal("expected at least one lexeme")
	}
	if len(lxs[0].LeadingComments) != 1 {
		t.Fatalf("expected the SELECT keyword to own the leading comment, got %+v", lxs[0].LeadingComments)
	}
	if lxs[0].LeadingComments[0].Text != " a comment" {
		t.Errorf("expected the comment text to be preserved verbatim, got %q", lxs[0].LeadingComments[0].Text)
	}
}

func TestTokenize_TrailingCommentAttachesToPriorLexeme(t *testing.T) {
	lxs, err := Tokenize("SELECT 1 -- trailing\nFROM t")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	// lxs: SELECT, 1, FROM, t
	numLit := lxs[1]
	if numLit.Kind != token.NumericLiteral {
		t.Fatalf("expected lxs[1] to be the numeric literal, got %v", numLit.Kind)
	}
	if len(numLit.TrailingComments) != 1 {
		t.Fatalf("expected the numeric literal to own the trailing comment, got %+v", numLit.TrailingComments)
	}
}

func TestTokenize_BlockCommentUnterminatedFails(t *testing.T) {
	_, err := Tokenize(`SELECT 1 /* unterminated`)
	if err == nil {
		t.Fatal("expected an UnterminatedBlockComment error")
	}
	lexErr, ok := err.(LexError)
	if !ok || lexErr.Kind != "UnterminatedBlockComment" {
		t.Errorf("expected LexError{Kind: UnterminatedBlockComment}, got %#v", err)
	}
}

func TestTokenize_HintIsNotAComment(t *testing.T) {
	lxs, err := Tokenize(`SELECT /*+ INDEX(t idx) */ a FROM t`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var sawHint bool
	for _, lx := range lxs {
		if lx.Kind == token.Hint {
			sawHint = true
			if lx.Value != "INDEX(t idx)" {
				t.Errorf("expected hint text trimmed of surrounding space, got %q", lx.Value)
			}
		}
	}
	if !sawHint {
		t.Error("expected a Hint-kind lexeme for /*+ ... */")
	}
}

func TestTokenize_NamedParameter(t *testing.T) {
	lxs, err := Tokenize(`SELECT * FROM t WHERE a = :id`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	last := lxs[len(lxs)-1]
	if last.Kind != token.Parameter || last.ParamForm != token.ParamColon {
		t.Fatalf("expected a colon-form parameter lexeme, got %+v", last)
	}
	if last.Value != ":id" {
		t.Errorf("expected the parameter lexeme value to include its marker, got %q", last.Value)
	}
}
