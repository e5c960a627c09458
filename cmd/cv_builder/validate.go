package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/interchange"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV data file",
	Long: "Checks a CV JSON data file against the data format and every entry against " +
		"its field rules, printing each problem found. Exits non-zero when there are problems.",
	RunE: runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to CV JSON data file (required)")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())

	doc, err := interchange.Import(data)
	if err != nil {
		var ie *interchange.ImportError
		if errors.As(err, &ie) && len(ie.Details) > 0 {
			printer.PrintProblems("DATA FORMAT", ie.Details)
			return fmt.Errorf("%s: %d problem(s)", ie.Message, len(ie.Details))
		}
		return err
	}

	if problems := validation.ValidateDocument(doc); len(problems) > 0 {
		printer.PrintProblems("FIELD VALIDATION", problems)
		return fmt.Errorf("validation failed: %d problem(s)", len(problems))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", validateInputFile)
	return nil
}
