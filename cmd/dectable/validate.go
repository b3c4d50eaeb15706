package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulecraft/dectable"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the rule expressions in a rule file",
	Long: `Validate decodes every rule's criteria and reports structural problems:
missing parameter names, unknown or type-incompatible operators, missing
required values, and malformed connective lists.

Examples:
  dectable validate -f rules.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := LoadRuleFile(ruleFile)
	if err != nil {
		return err
	}
	exprs, err := f.Expressions()
	if err != nil {
		return err
	}

	invalid := 0
	for i, e := range exprs {
		result := dectable.Validate(e)
		status := "ok"
		if !result.IsValid() {
			status = "INVALID"
			invalid++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rule %d: %s\n", i+1, status)
		if verbose || !result.IsValid() || result.HasWarnings() {
			fmt.Fprintf(cmd.OutOrStdout(), "  expression: %s\n", e)
		}
		for _, msg := range result.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "  error: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s\n", msg)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d rules invalid", invalid, len(exprs))
	}
	return nil
}
