package rendering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func paragraphs(doc *Document) []string {
	var out []string
	for _, b := range doc.Blocks {
		if p, ok := b.(ParagraphBlock); ok {
			out = append(out, p.Text())
		}
	}
	return out
}

func TestCompose_SectionOrder(t *testing.T) {
	doc, err := Compose(sampleCV(), TemplateAcademicClassic, FormatA4)
	require.NoError(t, err)

	assert.Equal(t, []string{
		HeadingSummary,
		HeadingSkills,
		HeadingEducation,
		HeadingExperience,
		HeadingProjects,
		HeadingPublications,
		HeadingCertifications,
		HeadingAwards,
	}, doc.Headings())
	assert.Equal(t, TemplateAcademicClassic, doc.Template.Name)
	assert.Equal(t, FormatA4, doc.Page.Format)

	_, isTitle := doc.Blocks[0].(TitleBlock)
	assert.True(t, isTitle)
}

func TestCompose_EmptySectionsEmitNothing(t *testing.T) {
	doc, err := Compose(namedCV("Solo Name"), "", "")
	require.NoError(t, err)

	assert.Empty(t, doc.Headings())
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, TitleBlock{Text: "Solo Name"}, doc.Blocks[0])
}

func TestCompose_MissingNameIsGuidance(t *testing.T) {
	cv := sampleCV()
	cv.PersonalInfo.FullName = "  "

	_, err := Compose(cv, TemplateProfessionalBlue, FormatA4)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, GuidanceMissingName, re.Message)

	_, err = Compose(nil, TemplateProfessionalBlue, FormatA4)
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestContactTable_FirstColumnTakesCeilingHalf(t *testing.T) {
	tests := []struct {
		name      string
		info      types.PersonalInfo
		rows      int
		lastRight string
	}{
		{name: "one field", info: types.PersonalInfo{Email: "a@b.c"}, rows: 1, lastRight: ""},
		{name: "two fields", info: types.PersonalInfo{Email: "a@b.c", Phone: "1"}, rows: 1, lastRight: "Phone:"},
		{
			name:      "five fields",
			info:      types.PersonalInfo{Email: "a@b.c", Phone: "1", Location: "X", LinkedIn: "l", GitHub: "g"},
			rows:      3,
			lastRight: "",
		},
		{
			name:      "six fields",
			info:      types.PersonalInfo{Email: "a@b.c", Phone: "1", Location: "X", LinkedIn: "l", GitHub: "g", ORCID: "o"},
			rows:      3,
			lastRight: "ORCID:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := contactTable(tt.info)
			require.True(t, ok)
			require.Len(t, table.Rows, tt.rows)
			assert.Equal(t, "Email:", table.Rows[0].Left.Label)
			assert.Equal(t, tt.lastRight, table.Rows[tt.rows-1].Right.Label)
		})
	}

	_, ok := contactTable(types.PersonalInfo{FullName: "No Contact"})
	assert.False(t, ok)
}

func TestCompose_FiveContactsSplitThreeTwo(t *testing.T) {
	info := types.PersonalInfo{Email: "e", Phone: "p", Location: "l", LinkedIn: "in", GitHub: "gh"}
	table, ok := contactTable(info)
	require.True(t, ok)

	assert.Equal(t, []ContactRow{
		{Left: ContactCell{"Email:", "e"}, Right: ContactCell{"LinkedIn:", "in"}},
		{Left: ContactCell{"Phone:", "p"}, Right: ContactCell{"GitHub:", "gh"}},
		{Left: ContactCell{"Location:", "l"}, Right: ContactCell{}},
	}, table.Rows)
}

func TestCompose_EntryLines(t *testing.T) {
	doc, err := Compose(sampleCV(), TemplateProfessionalBlue, FormatLetter)
	require.NoError(t, err)
	lines := paragraphs(doc)

	assert.Contains(t, lines, "Programming Languages: Python, R, Go")
	assert.Contains(t, lines, "PhD Bioinformatics - University of London")
	assert.Contains(t, lines, "2015 - 2019 | London")
	assert.Contains(t, lines, "Thesis: Protein folding at scale")
	assert.Contains(t, lines, "2020-01-06 - Present | Remote | Full-time")
	assert.Contains(t, lines, "Led the sequencing platform.")
	assert.Contains(t, lines, "Mentored four students.")
	assert.Contains(t, lines, "FoldKit - Software Development")
	assert.Contains(t, lines, "2021-03-01 - Ongoing | Technologies: Go, CUDA")
	assert.Contains(t, lines, "Repository: github.com/ada/foldkit")
	assert.Contains(t, lines, "Lovelace A (2020). Nature, Vol. 12, pp. 1-9")
	assert.Contains(t, lines, "DOI: 10.1000/xyz")
	assert.Contains(t, lines, "Issued: 2022-05-01 | Expires: No Expiry")
	assert.Contains(t, lines, "Date: 2023-07-20")

	// blank summary line between paragraphs is dropped
	assert.Contains(t, lines, "Builds analysis pipelines.")
	assert.NotContains(t, lines, "")
}

func TestCompose_OptionalFieldsOmitted(t *testing.T) {
	cv := namedCV("A")
	cv.Education = []types.EducationEntry{{Degree: "BSc", Institution: "X"}}
	cv.Certifications = []types.CertificationEntry{{Name: "C", IssuingOrg: "O"}}

	doc, err := Compose(cv, "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"BSc - X", "C - O"}, paragraphs(doc))
}

func TestCompose_PublicationsKeepStorageOrder(t *testing.T) {
	doc, err := Compose(sampleCV(), "", "")
	require.NoError(t, err)

	var titles []string
	for _, b := range doc.Blocks {
		p, ok := b.(ParagraphBlock)
		if ok && len(p.Runs) == 1 && p.Runs[0].Bold {
			titles = append(titles, p.Runs[0].Text)
		}
	}
	assert.Equal(t, []string{"First Paper", "Second Paper", "Third Paper"}, titles)
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	cv := sampleCV()
	before := cv.Clone()

	_, err := Compose(cv, TemplateModernMinimal, FormatA4)
	require.NoError(t, err)
	assert.Equal(t, before, cv)
}
