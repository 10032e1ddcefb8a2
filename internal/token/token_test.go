package token

import "testing"

func TestKindString_CoversEveryDefinedKind(t *testing.T) {
	cases := map[Kind]string{
		Identifier:     "Identifier",
		Keyword:        "Keyword",
		NumericLiteral: "NumericLiteral",
		StringLiteral:  "StringLiteral",
		BooleanLiteral: "BooleanLiteral",
		NullLiteral:    "NullLiteral",
		Parameter:      "Parameter",
		Operator:       "Operator",
		Punctuation:    "Punctuation",
		Hint:           "Hint",
		EOF:            "EOF",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("expected an out-of-range Kind to stringify as Unknown, got %q", got)
	}
}
