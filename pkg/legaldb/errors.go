package legaldb

import "fmt"

// ParseError indicates the input file could not be decoded as a legal
// database document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError indicates a chapter or article record lacks a key that
// enhancement reads unconditionally.
type MissingFieldError struct {
	// Record is the kind of record, "chapter" or "article".
	Record string

	// Field is the missing JSON key.
	Field string

	// Path locates the record in the document, e.g. "chapters[2].articles[0]".
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s at %s is missing required field %q", e.Record, e.Path, e.Field)
}
