// Package lexer turns SQL source text into a stream of token.Lexeme values,
// preserving every comment and attaching it to a lexeme as leading or
// trailing, per spec's comment-attachment rule.
package lexer

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/token"
)

type scanner struct {
	src  string
	pos  int
	line int
	col  int

	pendingLeading []token.Comment
	lastLine       int // line of the last emitted lexeme, for trailing attachment
}

// Tokenize scans src into a lexeme stream, attaching comments to their
// owning lexeme as it goes. It never panics; malformed input is reported as
// a LexError.
func Tokenize(src string) ([]token.Lexeme, error) {
	s := &scanner{src: src, line: 1, col: 1, lastLine: -1}
	var out []token.Lexeme

	for {
		if err := s.skipWhitespaceAndComments(&out); err != nil {
			return nil, err
		}
		if s.eof() {
			break
		}

		lx, err := s.scanLexeme()
		if err != nil {
			return nil, err
		}
		lx.LeadingComments = s.pendingLeading
		s.pendingLeading = nil
		s.lastLine = lx.Position.Line
		out = append(out, lx)
	}

	if len(s.pendingLeading) > 0 && len(out) > 0 {
		out[len(out)-1].TrailingComments = append(out[len(out)-1].TrailingComments, s.pendingLeading...)
	}

	return out, nil
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peekByte() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekByteAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *scanner) pos0() token.Position {
	return token.Position{Offset: s.pos, Line: s.line, Column: s.col}
}

func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

// skipWhitespaceAndComments consumes whitespace and comments, recording
// comments as either trailing (of the most recently emitted lexeme, if on
// the same line and nothing significant intervened) or leading (of the next
// lexeme).
func (s *scanner) skipWhitespaceAndComments(out *[]token.Lexeme) error {
	for {
		switch {
		case !s.eof() && isSpace(s.peekByte()):
			s.advance()

		case s.peekByte() == '-' && s.peekByteAt(1) == '-':
			startLine := s.line
			s.advance()
			s.advance()
			start := s.pos
			for !s.eof() && s.peekByte() != '\n' {
				s.advance()
			}
			text := s.src[start:s.pos]
			s.addComment(out, token.Comment{Text: text, Style: token.LineComment}, startLine)

		case s.peekByte() == '/' && s.peekByteAt(1) == '*':
			start0 := s.pos0()
			startLine := s.line
			s.advance()
			s.advance()
			if s.peekByte() == '+' {
				// Hint lexeme, not a comment: /*+ ... */
				s.advance()
				start := s.pos
				for {
					if s.eof() {
						return unterminatedBlockComment(start0)
					}
					if s.peekByte() == '*' && s.peekByteAt(1) == '/' {
						break
					}
					s.advance()
				}
				text := strings.TrimSpace(s.src[start:s.pos])
				s.advance()
				s.advance()
				hint := token.Lexeme{Kind: token.Hint, Value: text, Position: start0}
				hint.LeadingComments = s.pendingLeading
				s.pendingLeading = nil
				s.lastLine = hint.Position.Line
				*out = append(*out, hint)
				continue
			}
			start := s.pos
			for {
				if s.eof() {
					return unterminatedBlockComment(start0)
				}
				if s.peekByte() == '*' && s.peekByteAt(1) == '/' {
					break
				}
				s.advance()
			}
			text := s.src[start:s.pos]
			s.advance()
			s.advance()
			s.addComment(out, token.Comment{Text: text, Style: token.BlockComment}, startLine)

		default:
			return nil
		}
	}
}

// addComment decides leading vs. trailing placement: a comment is trailing
// of the previous lexeme iff it starts on the same source line as that
// lexeme and no other lexeme has been emitted since.
func (s *scanner) addComment(out *[]token.Lexeme, c token.Comment, startLine int) {
	if len(*out) > 0 && startLine == s.lastLine && len(s.pendingLeading) == 0 {
		c.Placement = token.Trailing
		last := &(*out)[len(*out)-1]
		last.TrailingComments = append(last.TrailingComments, c)
		return
	}
	c.Placement = token.Leading
	s.pendingLeading = append(s.pendingLeading, c)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '$'
}

func (s *scanner) scanLexeme() (token.Lexeme, error) {
	pos := s.pos0()
	c := s.peekByte()

	switch {
	case c == '\'':
		return s.scanSingleQuoted(pos)
	case c == '"':
		return s.scanDelimitedIdent(pos, '"', '"')
	case c == '`':
		return s.scanDelimitedIdent(pos, '`', '`')
	case c == ':' && isIdentStart(s.peekByteAt(1)):
		return s.scanParamNamed(pos, token.ParamColon, ':')
	case c == '@' && isIdentStart(s.peekByteAt(1)):
		return s.scanParamNamed(pos, token.ParamAt, '@')
	case c == '$' && s.peekByteAt(1) == '{':
		return s.scanParamBraced(pos)
	case c == '$' && isDigit(s.peekByteAt(1)):
		return s.scanParamPositional(pos)
	case c == '$' && isIdentStart(s.peekByteAt(1)):
		return s.scanDollarQuoted(pos)
	case c == '?':
		s.advance()
		return token.Lexeme{Kind: token.Parameter, Value: "?", Position: pos, ParamForm: token.ParamQuestion}, nil
	case isDigit(c) || (c == '.' && isDigit(s.peekByteAt(1))):
		return s.scanNumber(pos), nil
	case isIdentStart(c):
		return s.scanIdentOrKeyword(pos), nil
	default:
		return s.scanOperatorOrPunct(pos)
	}
}

func (s *scanner) scanSingleQuoted(pos token.Position) (token.Lexeme, error) {
	s.advance() // opening '
	var b strings.Builder
	for {
		if s.eof() {
			return token.Lexeme{}, unterminatedString(pos)
		}
		if s.peekByte() == '\'' {
			if s.peekByteAt(1) == '\'' {
				b.WriteByte('\'')
				s.advance()
				s.advance()
				continue
			}
			s.advance()
			break
		}
		b.WriteByte(s.advance())
	}
	return token.Lexeme{
		Kind: token.StringLiteral, Value: b.String(), Position: pos, IsQuotedString: true,
	}, nil
}

func (s *scanner) scanDelimitedIdent(pos token.Position, open, closeCh byte) (token.Lexeme, error) {
	s.advance() // opening delimiter
	var b strings.Builder
	for {
		if s.eof() {
			return token.Lexeme{}, unterminatedString(pos)
		}
		if s.peekByte() == closeCh {
			if s.peekByteAt(1) == closeCh {
				b.WriteByte(closeCh)
				s.advance()
				s.advance()
				continue
			}
			s.advance()
			break
		}
		b.WriteByte(s.advance())
	}
	return token.Lexeme{
		Kind: token.Identifier, Value: b.String(), Position: pos, QuotedIdentifier: true,
	}, nil
}

func (s *scanner) scanDollarQuoted(pos token.Position) (token.Lexeme, error) {
	// $tag$ ... $tag$
	start := s.pos
	s.advance()
	for isIdentCont(s.peekByte()) {
		s.advance()
	}
	if s.peekByte() != '$' {
		return s.scanIdentOrKeyword(pos), nil
	}
	tag := s.src[start:s.pos]
	s.advance()
	var b strings.Builder
	for {
		if s.eof() {
			return token.Lexeme{}, unterminatedString(pos)
		}
		if strings.HasPrefix(s.src[s.pos:], tag) {
			for range tag {
				s.advance()
			}
			break
		}
		b.WriteByte(s.advance())
	}
	return token.Lexeme{Kind: token.StringLiteral, Value: b.String(), Position: pos, IsQuotedString: true}, nil
}

func (s *scanner) scanParamNamed(pos token.Position, form token.ParamForm, marker byte) (token.Lexeme, error) {
	s.advance() // marker
	start := s.pos
	for isIdentCont(s.peekByte()) {
		s.advance()
	}
	name := s.src[start:s.pos]
	return token.Lexeme{Kind: token.Parameter, Value: string(marker) + name, Position: pos, ParamForm: form}, nil
}

func (s *scanner) scanParamBraced(pos token.Position) (token.Lexeme, error) {
	s.advance() // $
	s.advance() // {
	start := s.pos
	for !s.eof() && s.peekByte() != '}' {
		s.advance()
	}
	if s.eof() {
		return token.Lexeme{}, unexpectedChar(pos, '$')
	}
	name := s.src[start:s.pos]
	s.advance() // }
	return token.Lexeme{Kind: token.Parameter, Value: "${" + name + "}", Position: pos, ParamForm: token.ParamDollarBrace}, nil
}

func (s *scanner) scanParamPositional(pos token.Position) (token.Lexeme, error) {
	s.advance() // $
	start := s.pos
	for isDigit(s.peekByte()) {
		s.advance()
	}
	return token.Lexeme{Kind: token.Parameter, Value: "$" + s.src[start:s.pos], Position: pos, ParamForm: token.ParamDollarNum}, nil
}

func (s *scanner) scanNumber(pos token.Position) token.Lexeme {
	start := s.pos
	for isDigit(s.peekByte()) {
		s.advance()
	}
	if s.peekByte() == '.' && isDigit(s.peekByteAt(1)) {
		s.advance()
		for isDigit(s.peekByte()) {
			s.advance()
		}
	}
	if s.peekByte() == 'e' || s.peekByte() == 'E' {
		save := s.pos
		saveLine, saveCol := s.line, s.col
		s.advance()
		if s.peekByte() == '+' || s.peekByte() == '-' {
			s.advance()
		}
		if isDigit(s.peekByte()) {
			for isDigit(s.peekByte()) {
				s.advance()
			}
		} else {
			s.pos, s.line, s.col = save, saveLine, saveCol
		}
	}
	return token.Lexeme{Kind: token.NumericLiteral, Value: s.src[start:s.pos], Position: pos}
}

func (s *scanner) scanIdentOrKeyword(pos token.Position) token.Lexeme {
	start := s.pos
	for !s.eof() && isIdentCont(s.peekByte()) {
		s.advance()
	}
	word := s.src[start:s.pos]
	upper := strings.ToUpper(word)
	switch upper {
	case "TRUE", "FALSE":
		return token.Lexeme{Kind: token.BooleanLiteral, Value: word, Position: pos}
	case "NULL":
		return token.Lexeme{Kind: token.NullLiteral, Value: word, Position: pos}
	}
	if IsKeyword(word) {
		return token.Lexeme{Kind: token.Keyword, Value: word, Position: pos}
	}
	return token.Lexeme{Kind: token.Identifier, Value: word, Position: pos}
}

// multiCharOperators is checked longest-first.
var multiCharOperators = []string{
	"->>", "::", "<=", ">=", "<>", "!=", "||", "->", "&&", "|&|",
}

func (s *scanner) scanOperatorOrPunct(pos token.Position) (token.Lexeme, error) {
	for _, op := range multiCharOperators {
		if strings.HasPrefix(s.src[s.pos:], op) {
			for range op {
				s.advance()
			}
			return token.Lexeme{Kind: token.Operator, Value: op, Position: pos}, nil
		}
	}

	c := s.peekByte()
	switch c {
	case '(', ')', ',', '.', ';', '{', '}', '[', ']':
		s.advance()
		return token.Lexeme{Kind: token.Punctuation, Value: string(c), Position: pos}, nil
	case '+', '-', '*', '/', '%', '=', '<', '>', '|', '&', '^', '#', '~', '!':
		s.advance()
		return token.Lexeme{Kind: token.Operator, Value: string(c), Position: pos}, nil
	default:
		return token.Lexeme{}, unexpectedChar(pos, c)
	}
}
