package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Problem codes reported in [FieldError.Problem].
const (
	ProblemRequired         = "required"
	ProblemInvalidEmail     = "invalid email"
	ProblemTooShort         = "too short"
	ProblemInvalidLatitude  = "invalid latitude"
	ProblemInvalidLongitude = "invalid longitude"
	ProblemInvalid          = "invalid"
)

// FieldError describes a single failing form field.
type FieldError struct {
	// Field is the form name of the field, e.g. "email".
	Field string

	// Problem is one of the Problem* codes.
	Problem string

	// Message is the human-readable text rendered next to the field.
	Message string
}

// ValidationError enumerates every failing field of a submitted form.
type ValidationError struct {
	Fields []FieldError
}

// Error implements error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Problem)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether field failed with problem.
func (e *ValidationError) Has(field, problem string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Problem == problem {
			return true
		}
	}
	return false
}

// ByField indexes the first message of each failing field by field name.
func (e *ValidationError) ByField() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}
