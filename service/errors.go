package services

import "fmt"

// ValidationError marks malformed caller input: an unparseable time
// string or a day category outside the recognized values. Translated to
// a 4xx at the HTTP boundary, never silently defaulted.
type ValidationError struct {
	Field string
	Value string
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Cause)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// ModelInferenceError marks a failure of the model collaborator on a
// well-formed feature row. Propagated as-is; the gateway never
// substitutes a fabricated prediction.
type ModelInferenceError struct {
	Cause error
}

func (e *ModelInferenceError) Error() string {
	return fmt.Sprintf("model inference failed: %v", e.Cause)
}

func (e *ModelInferenceError) Unwrap() error { return e.Cause }
