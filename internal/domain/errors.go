package domain

import "fmt"

// SchemaError reports a schema-declared field that is absent from a
// source's input headers. It aborts a run before any matching begins.
type SchemaError struct {
	Source string
	Field  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("source %s: required field %q not found in input headers", e.Source, e.Field)
}

// ConfigError reports an invalid reconciliation parameter. Rejected before
// any processing.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }
