package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"export-template"},
	Short:   "List the available export templates",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(rendering.Templates())
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
