package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyStatement rejects blank input before any network call is made
var ErrEmptyStatement = errors.New("statement is empty")

// ExtractionError wraps a failure to derive assumptions from the statement.
// Fatal to the run: without assumptions there is nothing to verify.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("assumption extraction failed: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// SynthesisError wraps a failure of the final synthesis call. Fatal to the
// run: per-assumption labels alone are not a meaningful verdict.
type SynthesisError struct {
	Cause error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("verdict synthesis failed: %v", e.Cause)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}
