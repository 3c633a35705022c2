package sumstats

import (
	"errors"
	"fmt"
)

// ErrMissingValue is returned when a required field holds one of the missing
// value tokens. Lines failing with this error are expected to be excluded by
// the caller rather than treated as corrupt.
var ErrMissingValue = errors.New("value is missing")

// ConfigurationError reports a column mapping that is incomplete or that
// combines mutually exclusive strategies. It is raised before any line is
// parsed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid column mapping: " + e.Reason
}

// MarkerFormatError reports a marker that does not follow chr:pos or
// chr:pos_ref/alt.
type MarkerFormatError struct {
	Marker string
}

func (e *MarkerFormatError) Error() string {
	return fmt.Sprintf("could not understand marker format %q. Must be of format chr:pos or chr:pos_ref/alt", e.Marker)
}

// RangeError reports a p-value or allele frequency outside of [0,1], or a
// sample size that is not positive.
type RangeError struct {
	Field string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g is not in the allowed range", e.Field, e.Value)
}

// NumberError reports a token that should have been numeric but is not.
type NumberError struct {
	Field string
	Token string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s %q is not numeric", e.Field, e.Token)
}

func (e *NumberError) Unwrap() error { return e.Err }

// ColumnError reports a line that has fewer fields than the mapping expects.
type ColumnError struct {
	Field  string
	Column int
	Fields int
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s column %d was requested, but the line has only %d fields", e.Field, e.Column, e.Fields)
}

// FieldError attaches the name of the record field being parsed to an error.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }
