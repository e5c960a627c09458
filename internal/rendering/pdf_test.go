package rendering

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

// plainRenderer renders uncompressed so text can be searched in the output.
func plainRenderer() *Renderer {
	return NewRenderer(&NativeEngine{Compress: false}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRenderDocument_Idempotent(t *testing.T) {
	for _, tmpl := range Templates() {
		for _, format := range []string{FormatA4, FormatLetter} {
			first, err := RenderDocument(sampleCV(), tmpl.Name, format)
			require.NoError(t, err)
			second, err := RenderDocument(sampleCV(), tmpl.Name, format)
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")), "%s/%s", tmpl.Name, format)
			assert.True(t, bytes.Equal(first, second), "%s/%s output differs between runs", tmpl.Name, format)
		}
	}
}

func TestRender_SectionOmission(t *testing.T) {
	cv := sampleCV()
	cv.Projects = []types.ProjectEntry{}
	cv.Awards = nil

	out, err := plainRenderer().Render(context.Background(), cv, TemplateScientificResearch, FormatA4)
	require.NoError(t, err)

	assert.Contains(t, string(out), "(EDUCATION)")
	assert.Contains(t, string(out), "(PUBLICATIONS)")
	assert.NotContains(t, string(out), "(PROJECTS)")
	assert.NotContains(t, string(out), "AWARDS")
}

func TestRender_UnknownTemplateFallsBack(t *testing.T) {
	r := plainRenderer()
	fallback, err := r.Render(context.Background(), sampleCV(), "Nonexistent Template", FormatA4)
	require.NoError(t, err)

	blue, err := r.Render(context.Background(), sampleCV(), TemplateProfessionalBlue, FormatA4)
	require.NoError(t, err)

	assert.Equal(t, blue, fallback)
}

func TestRender_TemplatesDiffer(t *testing.T) {
	r := plainRenderer()
	blue, err := r.Render(context.Background(), sampleCV(), TemplateProfessionalBlue, FormatA4)
	require.NoError(t, err)
	minimal, err := r.Render(context.Background(), sampleCV(), TemplateModernMinimal, FormatA4)
	require.NoError(t, err)

	assert.NotEqual(t, blue, minimal)
}

func TestRender_PublicationStorageOrder(t *testing.T) {
	out, err := plainRenderer().Render(context.Background(), sampleCV(), "", FormatA4)
	require.NoError(t, err)

	s := string(out)
	first := bytes.Index(out, []byte("(First Paper)"))
	second := bytes.Index(out, []byte("(Second Paper)"))
	third := bytes.Index(out, []byte("(Third Paper)"))
	require.True(t, first > 0 && second > 0 && third > 0, "publication titles missing from output of %d bytes", len(s))
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestRender_PageFormat(t *testing.T) {
	r := plainRenderer()

	a4, err := r.Render(context.Background(), namedCV("A"), "", FormatA4)
	require.NoError(t, err)
	assert.Contains(t, string(a4), "595.28")

	for _, format := range []string{FormatLetter, "Legal", ""} {
		out, err := r.Render(context.Background(), namedCV("A"), "", format)
		require.NoError(t, err)
		assert.Contains(t, string(out), "612.00", "format %q", format)
	}
}

func TestRender_LongDocumentPaginates(t *testing.T) {
	cv := sampleCV()
	for i := 0; i < 80; i++ {
		cv.Publications = append(cv.Publications, types.PublicationEntry{
			Title: "Repeated study", Authors: "Lovelace A", Journal: "Journal", Year: 2000 + i%20,
		})
	}

	out, err := plainRenderer().Render(context.Background(), cv, "", FormatLetter)
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(out, []byte("/Type /Page\n")), 1)
}

func TestRender_NonLatinTextDoesNotFail(t *testing.T) {
	cv := namedCV("李小龍 “Bruce” Lee")
	cv.PersonalInfo.Summary = "Martial artist — actor…"

	out, err := RenderDocument(cv, TemplateAcademicClassic, FormatA4)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderDocument_MissingName(t *testing.T) {
	out, err := RenderDocument(types.NewCVDocument(), TemplateProfessionalBlue, FormatA4)
	assert.Nil(t, out)

	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, GuidanceMissingName, re.Message)
}

type failingEngine struct{ err error }

func (f failingEngine) Name() string { return "failing" }
func (f failingEngine) Render(context.Context, *Document) ([]byte, error) {
	return nil, f.err
}

func TestRenderer_EngineErrorsBecomeRenderErrors(t *testing.T) {
	cause := errors.New("disk full")
	r := NewRenderer(failingEngine{err: cause}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := r.Render(context.Background(), sampleCV(), "", "")
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.ErrorIs(t, err, cause)
}

type nilBlockEngine struct{}

func (nilBlockEngine) Name() string { return "nil-block" }
func (nilBlockEngine) Render(ctx context.Context, doc *Document) ([]byte, error) {
	return (&NativeEngine{}).Render(ctx, &Document{Page: doc.Page, Template: doc.Template, Blocks: []Block{nil}})
}

func TestNativeEngine_UnknownBlockIgnored(t *testing.T) {
	r := NewRenderer(nilBlockEngine{}, nil)
	out, err := r.Render(context.Background(), sampleCV(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSuggestedFilename(t *testing.T) {
	assert.Equal(t, "Ada_Lovelace_CV_Professional_Blue.pdf", SuggestedFilename("Ada Lovelace", TemplateProfessionalBlue))
	assert.Equal(t, "Ada_King_Lovelace_CV_Modern_Minimal.pdf", SuggestedFilename(" Ada King Lovelace ", TemplateModernMinimal))
	assert.Equal(t, "Ada_CV_Professional_Blue.pdf", SuggestedFilename("Ada", "Retro Pink"))
}
