package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rulecraft/dectable/dmn"
)

var generateFlags struct {
	out   string
	table bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a DMN document from a rule file",
	Long: `Generate compiles every rule and assembles the complete DMN decision
table document. Without --out the document goes to stdout.

Examples:
  dectable generate -f rules.yaml
  dectable generate -f rules.yaml -o approval.dmn
  dectable generate -f rules.yaml --table`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.out, "out", "o", "", "output file (default stdout)")
	generateCmd.Flags().BoolVar(&generateFlags.table, "table", false, "print the table in readable form instead of XML")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	f, err := LoadRuleFile(ruleFile)
	if err != nil {
		return err
	}
	defs, err := f.Definitions()
	if err != nil {
		return err
	}

	cfg := f.Config()
	if cfg.DecisionID == "" {
		cfg.DecisionID = "decision_" + uuid.NewString()[:8]
		logger.Debug("generated decision id", "id", cfg.DecisionID)
	}

	tbl := dmn.GenerateRules(defs, cfg)

	if generateFlags.table {
		fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
		return nil
	}

	doc, err := tbl.XML()
	if err != nil {
		return err
	}

	logger.Debug("generated document",
		"decision", tbl.DecisionID,
		"rules", len(tbl.Rows),
		"inputs", len(tbl.Inputs),
		"size", humanize.Bytes(uint64(len(doc))))

	if generateFlags.out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), doc)
		return nil
	}
	if err := os.WriteFile(generateFlags.out, []byte(doc), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", generateFlags.out)
	}
	logger.Info("wrote document", "path", generateFlags.out, "size", humanize.Bytes(uint64(len(doc))))
	return nil
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
