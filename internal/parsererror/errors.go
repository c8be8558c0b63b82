// Package parsererror defines the typed errors shared by the parsing
// pipeline, so callers can distinguish failure classes with errors.As.
package parsererror

import "fmt"

// SourceNotFoundError reports a statement file that could not be opened.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// MarkupSyntaxError reports body markup that could not be repaired into
// well-formed XML.
type MarkupSyntaxError struct {
	Detail string
	Err    error
}

func (e *MarkupSyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed markup: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("malformed markup: %s", e.Detail)
}

func (e *MarkupSyntaxError) Unwrap() error {
	return e.Err
}

// TimestampFormatError reports a date value that does not match the OFX
// timestamp layout in a context where the parse is strict.
type TimestampFormatError struct {
	Value string
}

func (e *TimestampFormatError) Error() string {
	return fmt.Sprintf("failed to initialize date from value: %q", e.Value)
}

// ParseError represents a failure to convert one field of an aggregate.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
