package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetParserOFX(t *testing.T) {
	p, err := GetParser(OFX)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestGetParserUnknown(t *testing.T) {
	p, err := GetParser(ParserType("pdf"))
	assert.Error(t, err)
	assert.Nil(t, p)
}
