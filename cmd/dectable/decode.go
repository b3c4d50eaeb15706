package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulecraft/dectable"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <criteria>",
	Short: "Decode a flat-record criteria string to readable form",
	Long: `Decode accepts an expression in the flat-record encoding, plain or
base64, and prints it in readable form.

Examples:
  dectable decode ',(,amount,>,100,)<>and,(,status,==,active,)'
  dectable decode 'LCgsYW1vdW50LD4sMTAwLCk='`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	e, err := decodeCriteria(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), e.String())
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "records: %s\n", dectable.EncodeRecords(e))
		out, err := dectable.ExportJSON(e)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
