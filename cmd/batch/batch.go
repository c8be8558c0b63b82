// Package batch handles batch processing of files
package batch

import (
	"fjacquet/ofx-csv/cmd/root"
	"fjacquet/ofx-csv/internal/parser"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process OFX files from a directory",
	Long: `Batch process files from an input directory and output them to another directory.

The batch command processes all OFX statement files in the input directory and
converts each of them to a CSV file of the same base name. Files that fail
validation or conversion are skipped.

Example:
  ofx-csv batch -i input_dir/ -o output_dir/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	// Use the shared flags from root command
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	root.Log.Infof("Input directory: %s", inputDir)
	root.Log.Infof("Output directory: %s", outputDir)

	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	p, err := parser.GetParser(parser.OFX)
	if err != nil {
		root.Log.Fatalf("Error getting OFX parser: %v", err)
	}
	p.SetLogger(root.Log)

	count, err := p.BatchConvert(inputDir, outputDir)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}

	root.Log.Infof("Batch processing completed. %d files converted.", count)
}
