// Package common contains shared functionality for command handlers
package common

import (
	"fjacquet/ofx-csv/internal/parser"

	"github.com/sirupsen/logrus"
)

// ProcessFile processes a single file using the given parser.
func ProcessFile(p parser.Parser, inputFile, outputFile string, validate bool, log *logrus.Logger) {
	// Set the logger on the parser
	p.SetLogger(log)

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not in a valid format")
		}
		log.Info("Validation successful.")
	}

	err := p.ConvertToCSV(inputFile, outputFile)
	if err != nil {
		log.Fatalf("Error converting to CSV: %v", err)
	}
	log.Info("Conversion completed successfully!")
}
