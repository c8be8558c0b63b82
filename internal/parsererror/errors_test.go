package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceNotFoundError(t *testing.T) {
	err := &SourceNotFoundError{Path: "missing.ofx"}
	assert.Equal(t, "source file not found: missing.ofx", err.Error())
}

func TestMarkupSyntaxErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &MarkupSyntaxError{Detail: "statement body is not well-formed", Err: cause}

	assert.Contains(t, err.Error(), "malformed markup")
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.ErrorIs(t, err, cause)

	bare := &MarkupSyntaxError{Detail: "missing <OFX> root element"}
	assert.Equal(t, "malformed markup: missing <OFX> root element", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestTimestampFormatError(t *testing.T) {
	err := &TimestampFormatError{Value: "yesterday"}
	assert.Contains(t, err.Error(), `"yesterday"`)

	wrapped := fmt.Errorf("parsing DTPOSTED: %w", err)
	var target *TimestampFormatError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "yesterday", target.Value)
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("not a number")
	err := &ParseError{Parser: "OFX", Field: "UNITS", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "UNITS")
	assert.Contains(t, err.Error(), "abc")
	assert.ErrorIs(t, err, cause)
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "statement.ofx",
		ExpectedFormat: "OFX",
		Msg:            "no sign-on response",
	}
	assert.Contains(t, err.Error(), "statement.ofx")
	assert.Contains(t, err.Error(), "OFX")
}
