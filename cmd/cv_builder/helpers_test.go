package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/interchange"
	"github.com/jonathan/cv-builder/internal/types"
)

// executeCommand runs the root command in-process with fresh flag values.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// sampleDocument is a small but complete CV.
func sampleDocument() *types.CVDocument {
	doc := types.NewCVDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FullName: "Grace Hopper",
		Title:    "Computer Scientist",
		Email:    "grace@example.com",
		Location: "Arlington, VA",
		Summary:  "Compiler pioneer.",
	}
	doc.Skills.ProgrammingLanguages = []string{"COBOL", "FLOW-MATIC"}
	doc.Education = append(doc.Education, types.EducationEntry{
		Degree: "PhD Mathematics", Institution: "Yale University", StartYear: 1930, EndYear: 1934,
	})
	doc.Publications = append(doc.Publications, types.PublicationEntry{
		Title: "The Education of a Computer", Authors: "G. Hopper", Journal: "Proceedings of the ACM", Year: 1952,
		Type: types.PubConferencePaper,
	})
	return doc
}

// writeDocument exports doc into dir and returns the file path.
func writeDocument(t *testing.T, dir string, doc *types.CVDocument) string {
	t.Helper()
	data, err := interchange.Export(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
