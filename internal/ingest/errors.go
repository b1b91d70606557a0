package ingest

import (
	"errors"
	"fmt"
)

var (
	ErrTooMuchData    = errors.New("ingest: too much data")
	ErrInvalidLiteral = errors.New("ingest: invalid literal")
	ErrFileAccess     = errors.New("ingest: file access")
)

// LiteralError locates a literal that could not be parsed.
type LiteralError struct {
	Source  string
	Index   int
	Literal string
	Reason  string
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("ingest: %s value %d (%q): %s", e.Source, e.Index, e.Literal, e.Reason)
}

func (e *LiteralError) Unwrap() error {
	return ErrInvalidLiteral
}
