package config

import (
	"fmt"
	"strings"
)

// Issue is a single violated configuration invariant.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// ValidationError carries the complete list of violated invariants found in
// one Validate call. Validation never aborts on the first violation.
type ValidationError struct {
	Issues []Issue
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "configuration invalid"
	}
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("configuration invalid (%d issues): %s",
		len(e.Issues), strings.Join(msgs, "; "))
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Issues = append(e.Issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

// ParseError marks malformed serialized configuration input. It is distinct
// from ValidationError: the document could not be decoded at all.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse configuration: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
