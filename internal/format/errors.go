package format

import "fmt"

// FormatError reports a misconfigured Options value or a print-token stream
// the renderer cannot handle.
type FormatError struct {
	Kind    string
	Option  string
	Message string
}

func (e FormatError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("format error (%s): option %q: %s", e.Kind, e.Option, e.Message)
	}
	return fmt.Sprintf("format error (%s): %s", e.Kind, e.Message)
}

func unknownOption(name string) error {
	return FormatError{Kind: "UnknownOption", Option: name, Message: "value out of range for this option"}
}
