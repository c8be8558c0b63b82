// Package ofxparser parses OFX statement files into the typed document
// model: header fields, sign-on data and per-account statements.
package ofxparser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/ofx-csv/internal/common"
	"fjacquet/ofx-csv/internal/dateutils"
	"fjacquet/ofx-csv/internal/fileutils"
	"fjacquet/ofx-csv/internal/models"
	"fjacquet/ofx-csv/internal/parsererror"
	"fjacquet/ofx-csv/internal/sgmlutils"
	"fjacquet/ofx-csv/internal/xmlutils"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// Parser converts raw OFX statements into documents. The zero value is not
// usable; construct one with New.
type Parser struct {
	factory dateutils.TimestampFactory
}

// Option configures a Parser.
type Option func(*Parser)

// WithTimestampFactory replaces the UTC timestamp factory, letting callers
// place statement dates in another location.
func WithTimestampFactory(f dateutils.TimestampFactory) Option {
	return func(p *Parser) {
		if f != nil {
			p.factory = f
		}
	}
}

// New creates a Parser with the given options applied.
func New(opts ...Option) *Parser {
	p := &Parser{factory: dateutils.DefaultTimestampFactory}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a complete OFX statement and returns the parsed document.
func (p *Parser) Parse(r io.Reader) (*models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading statement: %w", err)
	}

	content, err := sgmlutils.DecodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	headerText, body, err := sgmlutils.SplitDocument(content)
	if err != nil {
		return nil, err
	}

	header := parseHeader(headerText)

	xmlText := sgmlutils.ConvertToXML(body)
	root, err := xmlutils.ParseTree(strings.NewReader(xmlText))
	if err != nil {
		return nil, &parsererror.MarkupSyntaxError{Detail: "statement body is not well-formed", Err: err}
	}

	doc, err := p.buildDocument(root, header)
	if err != nil {
		return nil, err
	}

	log.WithField("accounts", len(doc.Accounts)).Info("Successfully parsed OFX statement")
	return doc, nil
}

// ParseFile parses an OFX statement file. This is the main entry point for
// file-based conversion.
func (p *Parser) ParseFile(path string) (*models.Document, error) {
	log.WithField("file", path).Info("Parsing OFX statement file")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &parsererror.SourceNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("error opening OFX file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return p.Parse(f)
}

var defaultParser = New()

// Parse parses a statement from r using the default parser.
func Parse(r io.Reader) (*models.Document, error) {
	return defaultParser.Parse(r)
}

// ParseFile parses a statement file using the default parser.
func ParseFile(path string) (*models.Document, error) {
	return defaultParser.ParseFile(path)
}

// ValidateFormat checks whether a file looks like an OFX statement: the
// repaired body must be well-formed XML with a sign-on response under the
// OFX root.
func ValidateFormat(path string) (bool, error) {
	log.WithField("file", path).Info("Validating OFX format")

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to read file")
		return false, fmt.Errorf("error reading file: %w", err)
	}

	content, err := sgmlutils.DecodeToUTF8(data)
	if err != nil {
		log.WithError(err).Debug("File is not decodable text")
		return false, nil
	}

	_, body, err := sgmlutils.SplitDocument(content)
	if err != nil {
		log.Debug("Missing <OFX> root element, not an OFX file")
		return false, nil
	}

	root, err := xmlutils.LoadXML(strings.NewReader(sgmlutils.ConvertToXML(body)))
	if err != nil {
		log.WithError(err).Debug("Repaired body is not valid XML")
		return false, nil
	}

	ok, err := xmlutils.Exists(root, "/OFX/SIGNONMSGSRSV1/SONRS")
	if err != nil {
		return false, err
	}
	if !ok {
		log.Debug("Missing sign-on response, not a valid OFX file")
		return false, nil
	}

	log.WithField("file", path).Info("File is a valid OFX statement")
	return true, nil
}

// ConvertToCSV converts an OFX statement file to a CSV file. This is a
// convenience function that combines ParseFile and the CSV writer.
func ConvertToCSV(inputFile, outputFile string) error {
	return common.GeneralizedConvertToCSV(inputFile, outputFile, ParseFile, ValidateFormat)
}

// BatchConvert converts all OFX files in a directory to CSV files. Files
// with .ofx and .qfx extensions are processed.
func BatchConvert(inputDir, outputDir string) (int, error) {
	log.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
	}).Info("Batch converting OFX statement files")

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, []string{".ofx", ".qfx"})
	if err != nil {
		log.WithError(err).Error("Failed to read input directory")
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	var processed int
	for _, inputFile := range files {
		baseName := filepath.Base(inputFile)
		baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
		outputFile := filepath.Join(outputDir, baseName+".csv")

		if err := ConvertToCSV(inputFile, outputFile); err != nil {
			log.WithFields(logrus.Fields{
				"file":  inputFile,
				"error": err,
			}).Warning("Failed to convert file, skipping")
			continue
		}
		processed++
	}

	log.WithField("count", processed).Info("Batch conversion completed")
	return processed, nil
}
