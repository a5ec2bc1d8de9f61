package model

import "strings"

// Statement is the raw news statement under verification. Immutable once
// accepted by the pipeline.
type Statement string

// Assumption is one atomic, independently checkable claim derived from a
// Statement. Always non-empty and free of bullet markup.
type Assumption string

// NewStatement trims raw user input into a Statement. An empty result means
// the input was blank and must be rejected before any network call.
func NewStatement(raw string) Statement {
	return Statement(strings.TrimSpace(raw))
}

// IsEmpty reports whether the statement contains no verifiable text.
func (s Statement) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}
