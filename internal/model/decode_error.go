package model

import "fmt"

// DecodeError reports an unparsable field in a raw resource or event payload.
type DecodeError struct {
	Field string
	Value string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: unparsable value %q", e.Field, e.Value)
}
