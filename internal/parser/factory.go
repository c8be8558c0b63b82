package parser

import (
	"fmt"

	"fjacquet/ofx-csv/internal/ofxparser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	OFX ParserType = "ofx"
)

// GetParser returns a new instance of the appropriate parser for the given
// type. It acts as a factory for creating Parser implementations.
func GetParser(parserType ParserType) (Parser, error) {
	switch parserType {
	case OFX:
		return ofxparser.NewAdapter(), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
