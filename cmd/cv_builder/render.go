package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV data file as a PDF",
	Long: "Reads a CV JSON data file, lays it out with the chosen template and page format, " +
		"and writes the PDF. Identical input always produces identical bytes with the native engine.",
	RunE: runRender,
}

var (
	renderInputFile  string
	renderTemplate   string
	renderFormat     string
	renderOutputFile string
	renderEngine     string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to CV JSON data file (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template name (default from config)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Page format: Letter or A4 (default from config)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output PDF (default <Name>_CV_<Template>.pdf)")
	renderCmd.Flags().StringVar(&renderEngine, "engine", "", "Render engine: native or browser (default from config)")

	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newCLILogger(cmd.ErrOrStderr())

	renderer, err := newRenderer(cfg, renderEngine, logger)
	if err != nil {
		return err
	}

	doc, err := readDocument(renderInputFile)
	if err != nil {
		return err
	}

	template := orDefault(renderTemplate, cfg.Render.DefaultTemplate)

	pdf, err := renderer.Render(cmd.Context(), doc, template, orDefault(renderFormat, cfg.Render.DefaultFormat))
	if err != nil {
		return err
	}

	out := renderOutputFile
	if out == "" {
		out = rendering.SuggestedFilename(doc.PersonalInfo.FullName, template)
	}
	if err := writeOutput(out, pdf); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered CV\n")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", out)
	return nil
}

// writeOutput creates the parent directory if needed and writes data.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
