package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source kind or match policy.
	ErrUnsupportedType = errors.New("unsupported type")

	// Source Errors.

	// ErrSourceUnavailable indicates a collaborator (spreadsheet, file, table)
	// could not be reached or read. The run treats that input as empty.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrParse indicates a collaborator returned content of an unexpected shape.
	ErrParse = errors.New("parse error")
)

// Source names used in SourceError and report failures.
const (
	SourceMissingMerchants = "missing merchants"
	SourcePortalMapping    = "portal mapping"
	SourceCompanyDirectory = "company directory"
)

// SourceError records which collaborator failed and how.
// Kind is ErrSourceUnavailable or ErrParse.
type SourceError struct {
	Source string
	Kind   error
	Err    error
}

// NewSourceError creates a SourceError.
func NewSourceError(source string, kind, err error) *SourceError {
	return &SourceError{Source: source, Kind: kind, Err: err}
}

// Unavailable wraps err as an ErrSourceUnavailable failure of source.
func Unavailable(source string, err error) error {
	return NewSourceError(source, ErrSourceUnavailable, err)
}

// Malformed wraps err as an ErrParse failure of source.
func Malformed(source string, err error) error {
	return NewSourceError(source, ErrParse, err)
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Source, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Source, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *SourceError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
