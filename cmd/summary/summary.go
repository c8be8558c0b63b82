// Package summary prints an overview of a parsed OFX statement file.
package summary

import (
	"fmt"

	"fjacquet/ofx-csv/cmd/root"
	"fjacquet/ofx-csv/internal/config"
	"fjacquet/ofx-csv/internal/fileutils"
	"fjacquet/ofx-csv/internal/parser"
	"fjacquet/ofx-csv/internal/report"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a summary of an OFX statement file",
	Long: `Parse an OFX statement file and print a summary of its sign-on status,
accounts, balances and transaction counts. The summary is written to the
output file when -o is given, otherwise to stdout.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: json or yaml (default from config)")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	inputFile := root.SharedFlags.Input
	if inputFile == "" {
		root.Log.Fatal("Input file must be specified")
	}

	p, err := parser.GetParser(parser.OFX)
	if err != nil {
		root.Log.Fatalf("Error getting OFX parser: %v", err)
	}
	p.SetLogger(root.Log)

	doc, err := p.ParseFile(inputFile)
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	if format == "" {
		format = config.GetReportFormat()
	}

	gen := report.NewGenerator()
	rendered, err := gen.Render(gen.Summarize(doc, inputFile), format)
	if err != nil {
		root.Log.Fatalf("Error rendering summary: %v", err)
	}

	if outputFile := root.SharedFlags.Output; outputFile != "" {
		if err := fileutils.WriteFile(outputFile, rendered, 0644); err != nil {
			root.Log.Fatalf("Error writing summary: %v", err)
		}
		root.Log.Infof("Summary written to %s", outputFile)
		return
	}

	fmt.Println(string(rendered))
}
