package parser

import (
	"fmt"
	"strings"

	"github.com/ritamzico/sqlkit/internal/token"
)

// ParseError reports the first parse failure encountered; the parser never
// attempts recovery (spec'd non-goal), so only one ever surfaces per call.
type ParseError struct {
	Kind     string
	Position token.Position
	Expected []string
	Found    string
	Message  string
}

func (e ParseError) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("parse error (%s) at %d:%d: expected %s, found %q",
			e.Kind, e.Position.Line, e.Position.Column, strings.Join(e.Expected, " or "), e.Found)
	}
	return fmt.Sprintf("parse error (%s) at %d:%d: %s", e.Kind, e.Position.Line, e.Position.Column, e.Message)
}

func unexpectedToken(pos token.Position, found string, expected ...string) error {
	return ParseError{Kind: "UnexpectedToken", Position: pos, Found: found, Expected: expected}
}

func missingToken(pos token.Position, expected string) error {
	return ParseError{Kind: "MissingToken", Position: pos, Expected: []string{expected}, Message: "missing " + expected}
}

func unknownStatement(pos token.Position, found string) error {
	return ParseError{Kind: "UnknownStatement", Position: pos, Found: found, Message: "input is not a recognized statement"}
}

func invalidExpression(pos token.Position, message string) error {
	return ParseError{Kind: "InvalidExpression", Position: pos, Message: message}
}
