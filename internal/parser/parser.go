// Package parser defines the common interface implemented by statement
// parsers and the factory that selects one by type.
package parser

import (
	"io"

	"fjacquet/ofx-csv/internal/models"

	"github.com/sirupsen/logrus"
)

// Parser is the interface every statement parser implements. Parse reads a
// whole statement from r; the file-oriented methods wrap it with validation
// and CSV output.
type Parser interface {
	Parse(r io.Reader) (*models.Document, error)
	ParseFile(filePath string) (*models.Document, error)
	ValidateFormat(filePath string) (bool, error)
	ConvertToCSV(inputFile, outputFile string) error
	BatchConvert(inputDir, outputDir string) (int, error)
	SetLogger(logger *logrus.Logger)
}
