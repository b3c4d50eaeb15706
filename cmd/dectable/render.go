package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulecraft/dectable"
	"github.com/rulecraft/dectable/cel"
	"github.com/rulecraft/dectable/feel"
	"github.com/rulecraft/dectable/java"
)

var renderFlags struct {
	notation string
	rule     int
	prefix   string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render rule expressions in a target notation",
	Long: `Render decodes the rules and prints each expression in the selected
notation: feel, java, cel, or the readable debugging form.

Examples:
  dectable render -f rules.yaml --notation feel
  dectable render -f rules.yaml --notation java --prefix input.
  dectable render -f rules.yaml --notation cel --rule 2`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFlags.notation, "notation", "n", "feel", "output notation: feel, java, cel, readable")
	renderCmd.Flags().IntVar(&renderFlags.rule, "rule", 0, "render only this rule (1-based, 0 = all)")
	renderCmd.Flags().StringVar(&renderFlags.prefix, "prefix", "", "variable prefix for the java notation")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := LoadRuleFile(ruleFile)
	if err != nil {
		return err
	}
	exprs, err := f.Expressions()
	if err != nil {
		return err
	}

	render, err := rendererFor(renderFlags.notation)
	if err != nil {
		return err
	}

	for i, e := range exprs {
		if renderFlags.rule > 0 && renderFlags.rule != i+1 {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rule %d: %s\n", i+1, render(e))
	}
	return nil
}

func rendererFor(notation string) (func(dectable.Expression) string, error) {
	switch notation {
	case "feel":
		return feel.Renderer{}.Render, nil
	case "java":
		return java.Renderer{Prefix: renderFlags.prefix}.Render, nil
	case "cel":
		return cel.Renderer{}.Render, nil
	case "readable":
		return func(e dectable.Expression) string { return e.String() }, nil
	}
	return nil, fmt.Errorf("unknown notation %q (want feel, java, cel or readable)", notation)
}
