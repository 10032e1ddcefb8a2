package format

import (
	"strconv"
	"strings"

	"github.com/ritamzico/sqlkit/internal/printtoken"
)

// Format renders a print-token stream to text under opts.
func Format(toks []printtoken.Token, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	r := &renderer{opts: opts, wraps: precomputeWraps(toks, opts)}
	for i, t := range toks {
		r.emit(i, t)
	}
	r.flushPendingComma()
	return r.out.String(), nil
}

type groupFrame struct {
	container printtoken.Container
	wrap      bool
}

type renderer struct {
	opts    Options
	out     strings.Builder
	indent  int
	prev    *printtoken.Token
	groups  []groupFrame
	wraps   map[int]bool
	params  int

	// pendingBreakAfterNext implements andBreak=after: the AND/OR keyword
	// renders inline with its left operand, then the line breaks before
	// the next operand is emitted.
	pendingBreakAfterNext bool

	// pendingComma defers a list-separator comma's emission until the
	// SoftBreak that follows it is resolved, so commaBreak=before can move
	// the comma onto the new line instead of leaving it on the old one.
	pendingComma bool
}

func (r *renderer) flushPendingComma() {
	if r.pendingComma {
		r.pendingComma = false
		r.emitAtom(printtoken.Token{Kind: printtoken.PunctTok, Text: ","})
	}
}

func (r *renderer) currentWraps() bool {
	if len(r.groups) == 0 {
		return true // top-level clause separators (hard breaks) always break
	}
	return r.groups[len(r.groups)-1].wrap
}

func (r *renderer) currentContainer() printtoken.Container {
	if len(r.groups) == 0 {
		return printtoken.ContainerNone
	}
	return r.groups[len(r.groups)-1].container
}

func (r *renderer) emit(idx int, t printtoken.Token) {
	switch t.Kind {
	case printtoken.Group:
		r.groups = append(r.groups, groupFrame{container: t.Container, wrap: r.wraps[idx]})
	case printtoken.GroupEnd:
		if len(r.groups) > 0 {
			r.groups = r.groups[:len(r.groups)-1]
		}
	case printtoken.IndentOpen:
		r.indent++
	case printtoken.IndentClose:
		r.indent--
	case printtoken.HardBreak:
		r.flushPendingComma()
		r.breakLine()
	case printtoken.SoftBreak:
		r.emitSoftBreak(t)
	case printtoken.CommentTok:
		r.flushPendingComma()
		r.emitComment(t)
	case printtoken.PunctTok:
		if t.Text == "," {
			r.flushPendingComma()
			r.pendingComma = true
			return
		}
		r.flushPendingComma()
		r.emitAtom(t)
	default:
		r.flushPendingComma()
		r.emitAtom(t)
	}
}

func (r *renderer) emitSoftBreak(t printtoken.Token) {
	container := r.currentContainer()
	if container == printtoken.ContainerInsertCols && r.opts.InsertColumnsOneLine {
		r.flushPendingComma()
		r.writeRaw(" ")
		return
	}

	if t.Text == "and" {
		r.flushPendingComma()
		switch r.opts.AndBreak {
		case BreakBefore:
			r.breakLine()
		case BreakAfter:
			r.writeRaw(" ")
			// the keyword token that follows renders on this line; the
			// break happens after it via a trailing mark the next atom sets.
			r.pendingBreakAfterNext = true
		default:
			r.writeRaw(" ")
		}
		return
	}

	policy := r.opts.CommaBreak
	if container == printtoken.ContainerValues {
		policy = r.opts.ValuesCommaBreak
	}

	// commaBreak/valuesCommaBreak are independent style options: an explicit
	// before/after policy forces the break regardless of the width-based
	// auto-wrap decision. Only the "none" policy defers to currentWraps, the
	// same way a generic softBreak with no comma-specific instruction does.
	forced := policy == BreakBefore || policy == BreakAfter
	if !forced && !r.currentWraps() {
		r.flushPendingComma()
		r.writeRaw(" ")
		return
	}

	if r.pendingComma && policy == BreakBefore {
		r.pendingComma = false
		r.breakLine()
		r.emitAtom(printtoken.Token{Kind: printtoken.PunctTok, Text: ","})
		return
	}
	r.flushPendingComma()
	r.breakLine()
}

func (r *renderer) breakLine() {
	r.out.WriteString(r.opts.Newline)
	for i := 0; i < r.indent*r.opts.IndentSize; i++ {
		r.out.WriteByte(r.opts.IndentChar)
	}
	r.prev = nil
}

func (r *renderer) writeRaw(s string) {
	r.out.WriteString(s)
}

func (r *renderer) emitComment(t printtoken.Token) {
	if !r.opts.ExportComment {
		return
	}
	text := strings.TrimSpace(t.Text)
	style := r.opts.CommentStyle
	if style == CommentLine && strings.Contains(text, "\n") {
		style = CommentBlock
	}
	var rendered string
	if style == CommentLine {
		rendered = "-- " + text
	} else {
		rendered = "/* " + text + " */"
	}
	r.writeSpaced(rendered)
}

func (r *renderer) emitAtom(t printtoken.Token) {
	text := atomText(r, t)
	r.writeSpaced(text)
	if r.pendingBreakAfterNext {
		r.pendingBreakAfterNext = false
		r.breakLine()
	}
}

func (r *renderer) writeSpaced(text string) {
	if r.prev != nil && needsSpace(*r.prev, text) {
		r.writeRaw(" ")
	}
	r.writeRaw(text)
	r.prev = &printtoken.Token{Kind: printtoken.PunctTok, Text: text}
}

func needsSpace(prev printtoken.Token, nextText string) bool {
	switch nextText {
	case ",", ")", "]", ".", "::":
		return false
	}
	switch prev.Text {
	case "(", "[", ".", "::":
		return false
	}
	if nextText == "(" && prev.Kind == printtoken.IdentifierTok {
		return false
	}
	return true
}

func atomText(r *renderer, t printtoken.Token) string {
	switch t.Kind {
	case printtoken.KeywordTok:
		return applyKeywordCase(t.Text, r.opts.KeywordCase)
	case printtoken.IdentifierTok:
		return applyIdentifier(t.Text, r.opts)
	case printtoken.ParamTok:
		r.params++
		return renderParam(t, r.opts, r.params)
	default:
		return t.Text
	}
}

func applyKeywordCase(s string, c KeywordCase) string {
	switch c {
	case KeywordUpper:
		return strings.ToUpper(s)
	case KeywordLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

func applyIdentifier(name string, o Options) string {
	switch o.IdentifierCase {
	case IdentifierLower:
		name = strings.ToLower(name)
	case IdentifierUpper:
		name = strings.ToUpper(name)
	}
	switch o.IdentifierEscape {
	case EscapeDoubleQuote:
		return `"` + name + `"`
	case EscapeBacktick:
		return "`" + name + "`"
	case EscapeBracket:
		return "[" + name + "]"
	default:
		return name
	}
}

func renderParam(t printtoken.Token, o Options, seq int) string {
	switch o.ParameterStyle {
	case ParameterAnonymous:
		return "?"
	case ParameterPositional:
		idx := t.ParamIndex
		if idx == 0 {
			idx = seq
		}
		return "$" + strconv.Itoa(idx)
	default:
		name := t.ParamName
		if name == "" {
			name = "p" + strconv.Itoa(seq)
		}
		return o.ParameterSymbol + name
	}
}

// precomputeWraps decides, for every Group token (keyed by its index in
// toks), whether the span up to its matching GroupEnd should wrap its
// internal SoftBreaks into real line breaks.
func precomputeWraps(toks []printtoken.Token, opts Options) map[int]bool {
	decisions := map[int]bool{}
	var stack []int
	for i, t := range toks {
		switch t.Kind {
		case printtoken.Group:
			stack = append(stack, i)
		case printtoken.GroupEnd:
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			width := flatWidth(toks[start+1:i], opts)
			decisions[start] = opts.LineWrapping && width > opts.ExpressionWidth
		}
	}
	return decisions
}

func flatWidth(toks []printtoken.Token, opts Options) int {
	w := 0
	seq := 0
	for _, t := range toks {
		switch t.Kind {
		case printtoken.SoftBreak:
			w++
		case printtoken.HardBreak, printtoken.IndentOpen, printtoken.IndentClose, printtoken.Group, printtoken.GroupEnd:
			// structural only
		case printtoken.CommentTok:
			if opts.ExportComment {
				w += len(t.Text) + 1
			}
		case printtoken.ParamTok:
			seq++
			w += len(renderParam(t, opts, seq)) + 1
		default:
			w += len(t.Text) + 1
		}
	}
	return w
}
