package ofxparser

import (
	"io"

	"fjacquet/ofx-csv/internal/models"

	"github.com/sirupsen/logrus"
)

// Adapter exposes the package-level parsing functions through the common
// parser interface used by the CLI commands.
type Adapter struct {
	parser *Parser
}

// NewAdapter creates a new adapter around a default-configured Parser.
func NewAdapter(opts ...Option) *Adapter {
	return &Adapter{parser: New(opts...)}
}

// Parse reads a complete OFX statement from r.
func (a *Adapter) Parse(r io.Reader) (*models.Document, error) {
	return a.parser.Parse(r)
}

// ParseFile parses an OFX statement file.
func (a *Adapter) ParseFile(filePath string) (*models.Document, error) {
	return a.parser.ParseFile(filePath)
}

// ValidateFormat checks whether the file is an OFX statement.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormat(filePath)
}

// ConvertToCSV converts one OFX statement file to CSV.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return ConvertToCSV(inputFile, outputFile)
}

// BatchConvert converts every OFX file in a directory to CSV.
func (a *Adapter) BatchConvert(inputDir, outputDir string) (int, error) {
	return BatchConvert(inputDir, outputDir)
}

// SetLogger sets the logger for the adapter and the whole package.
func (a *Adapter) SetLogger(logger *logrus.Logger) {
	SetLogger(logger)
}
