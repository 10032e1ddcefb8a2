package ddldiff

// DiffError reports why a catalog could not be parsed or diffed.
type DiffError struct {
	Kind    string
	Message string
}

func (e DiffError) Error() string { return e.Kind + ": " + e.Message }

func catalogParseError(cause error) error {
	return DiffError{Kind: "CatalogParse", Message: cause.Error()}
}

func ambiguousRename(name string) error {
	return DiffError{Kind: "AmbiguousRename", Message: "cannot determine rename target for " + name}
}
