// Package printtoken implements C5: a visitor that flattens an AST into a
// closed set of print tokens, decoupling tree structure from the
// style-driven rendering internal/format performs over that stream.
package printtoken

// Kind is the closed set of print-token kinds a formatter consumes.
type Kind int

const (
	KeywordTok Kind = iota
	IdentifierTok
	LiteralTok
	OperatorTok
	PunctTok
	CommentTok
	ParamTok
	SoftBreak  // optional line break; formatter may render as space or newline
	HardBreak  // mandatory line break
	IndentOpen // begin one indent level, takes effect at the next break
	IndentClose
	Group    // marks the start of a unit the line-wrapping policy measures together
	GroupEnd
)

// Container tags a Group/token run with the clause it came from, so the
// formatter can apply per-container policy (e.g. insertColumnsOneLine,
// commaBreak) without re-deriving it from token text.
type Container string

const (
	ContainerNone        Container = ""
	ContainerSelectItems Container = "select_items"
	ContainerFrom        Container = "from"
	ContainerWhere       Container = "where"
	ContainerGroupBy     Container = "group_by"
	ContainerHaving      Container = "having"
	ContainerOrderBy     Container = "order_by"
	ContainerInsertCols  Container = "insert_columns"
	ContainerValues      Container = "values"
	ContainerArgs        Container = "args"
	ContainerCase        Container = "case"
	ContainerWith        Container = "with"
	ContainerWindow      Container = "window"
)

// Token is one element of a print-token stream.
type Token struct {
	Kind      Kind
	Text      string
	Container Container

	// ParamKind/ParamName/ParamIndex/ParamForm carry a ParamTok's original
	// shape so the formatter can re-render it under a configured
	// parameterStyle/parameterSymbol instead of replaying Text verbatim.
	ParamKind  int
	ParamName  string
	ParamIndex int
	ParamForm  int
}
