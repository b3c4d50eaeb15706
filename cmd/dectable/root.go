package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	ruleFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "dectable",
	Short: "Compile boolean rule expressions into DMN decision tables",
	Long: `Dectable turns boolean rule expressions into DMN decision tables.

A YAML rule file declares the decision metadata, parameter types and labels,
output columns, and the rules themselves. Each rule's criteria is an
expression in the flat-record encoding (plain or base64). Dectable validates
the expressions, renders them in FEEL, Java or CEL notation, and generates a
complete DMN document.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ruleFile, "file", "f", "rules.yaml", "rule file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
