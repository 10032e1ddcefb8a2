// Package format implements C6: style-driven rendering of a print-token
// stream (internal/printtoken) into SQL text.
package format

// KeywordCase controls how Keyword print-tokens are cased on output.
type KeywordCase int

const (
	KeywordLower KeywordCase = iota
	KeywordUpper
	KeywordPreserve
)

// IdentifierCase controls how Identifier print-tokens are cased on output.
type IdentifierCase int

const (
	IdentifierPreserve IdentifierCase = iota
	IdentifierLower
	IdentifierUpper
)

// IdentifierEscape controls whether/how identifiers are quoted.
type IdentifierEscape int

const (
	EscapeNone IdentifierEscape = iota
	EscapeDoubleQuote
	EscapeBacktick
	EscapeBracket
)

// BreakPolicy controls where a list separator (comma) or logical operator
// (AND/OR) lands relative to a line break.
type BreakPolicy int

const (
	BreakNone BreakPolicy = iota
	BreakBefore
	BreakAfter
)

// CommentStyle selects the rendered form of exported comments.
type CommentStyle int

const (
	CommentBlock CommentStyle = iota
	CommentLine
)

// ParameterStyle controls how bind parameters are re-rendered, independent
// of the marker syntax the source used.
type ParameterStyle int

const (
	ParameterNamed ParameterStyle = iota
	ParameterPositional
	ParameterAnonymous
)

// Options configures the renderer. Every field has a documented default;
// DefaultOptions returns the zero-config baseline.
type Options struct {
	IndentChar byte
	IndentSize int
	Newline    string

	KeywordCase      KeywordCase
	IdentifierCase   IdentifierCase
	IdentifierEscape IdentifierEscape

	CommaBreak       BreakPolicy
	AndBreak         BreakPolicy
	ValuesCommaBreak BreakPolicy

	InsertColumnsOneLine bool

	ExpressionWidth int
	LineWrapping    bool

	ExportComment bool
	CommentStyle  CommentStyle

	ParameterSymbol string
	ParameterStyle  ParameterStyle
}

// DefaultOptions returns the baseline style: lowercase keywords, preserved
// identifier case, double-quote escaping, no forced breaks, and
// comments/wrapping off.
func DefaultOptions() Options {
	return Options{
		IndentChar: ' ',
		IndentSize: 4,
		Newline:    "\n",

		KeywordCase:      KeywordLower,
		IdentifierCase:   IdentifierPreserve,
		IdentifierEscape: EscapeDoubleQuote,

		CommaBreak:       BreakNone,
		AndBreak:         BreakNone,
		ValuesCommaBreak: BreakNone,

		InsertColumnsOneLine: false,

		ExpressionWidth: 50,
		LineWrapping:    false,

		ExportComment: false,
		CommentStyle:  CommentBlock,

		ParameterSymbol: ":",
		ParameterStyle:  ParameterNamed,
	}
}

func (o Options) validate() error {
	if o.KeywordCase < KeywordLower || o.KeywordCase > KeywordPreserve {
		return unknownOption("keywordCase")
	}
	if o.IdentifierCase < IdentifierPreserve || o.IdentifierCase > IdentifierUpper {
		return unknownOption("identifierCase")
	}
	if o.IdentifierEscape < EscapeNone || o.IdentifierEscape > EscapeBracket {
		return unknownOption("identifierEscape")
	}
	if o.CommaBreak < BreakNone || o.CommaBreak > BreakAfter {
		return unknownOption("commaBreak")
	}
	if o.AndBreak < BreakNone || o.AndBreak > BreakAfter {
		return unknownOption("andBreak")
	}
	if o.ValuesCommaBreak < BreakNone || o.ValuesCommaBreak > BreakAfter {
		return unknownOption("valuesCommaBreak")
	}
	if o.CommentStyle < CommentBlock || o.CommentStyle > CommentLine {
		return unknownOption("commentStyle")
	}
	if o.ParameterStyle < ParameterNamed || o.ParameterStyle > ParameterAnonymous {
		return unknownOption("parameterStyle")
	}
	if o.IndentSize < 0 {
		return unknownOption("indentSize")
	}
	return nil
}
