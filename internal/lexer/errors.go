package lexer

import (
	"fmt"

	"github.com/ritamzico/sqlkit/internal/token"
)

// LexError reports a tokenization failure at a specific source position.
type LexError struct {
	Kind     string
	Message  string
	Position token.Position
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error (%s) at %d:%d: %s", e.Kind, e.Position.Line, e.Position.Column, e.Message)
}

func unterminatedString(pos token.Position) error {
	return LexError{Kind: "UnterminatedString", Message: "string literal is not closed", Position: pos}
}

func unterminatedBlockComment(pos token.Position) error {
	return LexError{Kind: "UnterminatedBlockComment", Message: "block comment is not closed", Position: pos}
}

func invalidEscape(pos token.Position, got byte) error {
	return LexError{Kind: "InvalidEscape", Message: fmt.Sprintf("invalid escape sequence near %q", got), Position: pos}
}

func unexpectedChar(pos token.Position, got byte) error {
	return LexError{Kind: "UnexpectedChar", Message: fmt.Sprintf("unexpected character %q", got), Position: pos}
}
