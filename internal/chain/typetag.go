package chain

import (
	"fmt"
	"strings"
)

// TypeTagParseError reports a malformed address::module::name identifier.
type TypeTagParseError struct {
	Input  string
	Reason string
}

func (e *TypeTagParseError) Error() string {
	return fmt.Sprintf("parse type tag %q: %s", e.Input, e.Reason)
}

// StructTag identifies an on-chain struct type, e.g. a coin type passed as a
// type argument.
type StructTag struct {
	Address AccountAddress
	Module  string
	Name    string
}

// ParseStructTag parses the canonical address::module::name form.
func ParseStructTag(s string) (StructTag, error) {
	parts := strings.Split(strings.TrimSpace(s), "::")
	if len(parts) != 3 {
		return StructTag{}, &TypeTagParseError{Input: s, Reason: "want address::module::name"}
	}

	addr, err := ParseAddress(parts[0])
	if err != nil {
		return StructTag{}, &TypeTagParseError{Input: s, Reason: err.Error()}
	}
	if !isIdentifier(parts[1]) {
		return StructTag{}, &TypeTagParseError{Input: s, Reason: fmt.Sprintf("invalid module name %q", parts[1])}
	}
	if !isIdentifier(parts[2]) {
		return StructTag{}, &TypeTagParseError{Input: s, Reason: fmt.Sprintf("invalid struct name %q", parts[2])}
	}

	return StructTag{Address: addr, Module: parts[1], Name: parts[2]}, nil
}

func (t StructTag) String() string {
	return fmt.Sprintf("%s::%s::%s", t.Address.Hex(), t.Module, t.Name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
