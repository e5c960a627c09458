package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a preview of a CV data file",
	Long:  "Prints the CV summary shown before export, with section statistics and the completion checklist.",
	RunE:  runPreview,
}

var previewInputFile string

func init() {
	previewCmd.Flags().StringVarP(&previewInputFile, "in", "i", "", "Path to CV JSON data file (required)")
	_ = previewCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	doc, err := readDocument(previewInputFile)
	if err != nil {
		return err
	}
	pv, err := preview.Build(doc)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintPreview(pv)
	return nil
}
