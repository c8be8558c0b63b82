// Package ofx handles OFX statement file processing commands
package ofx

import (
	"fjacquet/ofx-csv/cmd/common"
	"fjacquet/ofx-csv/cmd/root"
	"fjacquet/ofx-csv/internal/parser"

	"github.com/spf13/cobra"
)

// Cmd represents the ofx command
var Cmd = &cobra.Command{
	Use:   "ofx",
	Short: "Process OFX statement files",
	Long:  `Process OFX statement files to convert bank, credit-card and investment transactions to CSV.`,
	Run:   ofxFunc,
}

func ofxFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("OFX process command called")
	root.Log.Infof("Input OFX file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	p, err := parser.GetParser(parser.OFX)
	if err != nil {
		root.Log.Fatalf("Error getting OFX parser: %v", err)
	}
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log)
	root.Log.Info("OFX to CSV conversion completed successfully!")
}
