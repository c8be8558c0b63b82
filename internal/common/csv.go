// Package common provides the CSV output layer shared by the conversion
// commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ofx-csv/internal/logging"
	"fjacquet/ofx-csv/internal/models"
	"fjacquet/ofx-csv/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// Delimiter is the global CSV delimiter, configurable via config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteDocumentToCSV flattens every transaction of every account in the
// document and writes them to a CSV file.
func WriteDocumentToCSV(doc *models.Document, csvFile string) error {
	if doc == nil {
		return fmt.Errorf("cannot write nil document to CSV")
	}
	return WriteRowsToCSV(models.FlattenDocument(doc), csvFile)
}

// WriteRowsToCSV writes flattened transaction rows to a CSV file, creating
// the target directory when needed.
func WriteRowsToCSV(rows []models.CsvTransaction, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}

// GeneralizedConvertToCSV validates, parses and writes one statement file.
// It is the shared body of every parser's ConvertToCSV.
func GeneralizedConvertToCSV(
	inputFile string,
	outputFile string,
	parseFunc func(string) (*models.Document, error),
	validateFunc func(string) (bool, error),
) error {
	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputFile,
	}).Info("Converting file to CSV")

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	if validateFunc != nil {
		isValid, err := validateFunc(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file format: %w", err)
		}
		if !isValid {
			return &parsererror.InvalidFormatError{
				FilePath:       inputFile,
				ExpectedFormat: "statement",
				Msg:            "format validation rejected the file",
			}
		}
	}

	doc, err := parseFunc(inputFile)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	if err := WriteDocumentToCSV(doc, outputFile); err != nil {
		return fmt.Errorf("error writing transactions to CSV: %w", err)
	}

	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputFile,
	}).Info("Successfully converted file to CSV")

	return nil
}
