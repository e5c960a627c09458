package interchange

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/types"
)

func fullCV() *types.CVDocument {
	doc := types.NewCVDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FullName: "Rosalind Franklin",
		Title:    "Crystallographer",
		Email:    "rf@example.org",
		ORCID:    "0000-0000-0000-0001",
	}
	doc.Photo = &types.Photo{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G', 0, 1, 2}}
	doc.Education = []types.EducationEntry{{Degree: "PhD", Institution: "Cambridge", StartYear: 1941, EndYear: 1945}}
	doc.Experience = []types.ExperienceEntry{{
		JobTitle: "Research Associate", Company: "King's College",
		StartDate: types.On(1951, time.January, 1), EndDate: types.Present(), JobType: types.JobFellowship,
	}}
	doc.Skills.OtherTechnical = []string{"X-ray diffraction", "X-ray diffraction"}
	doc.Projects = []types.ProjectEntry{{Name: "Photo 51", Type: types.ProjectResearch, Description: "DNA imaging", EndDate: types.Ongoing()}}
	doc.Publications = []types.PublicationEntry{
		{Title: "B", Authors: "RF", Journal: "Nature", Year: 2020, Type: types.PubJournalArticle},
		{Title: "A", Authors: "RF", Journal: "Nature", Year: 2023},
		{Title: "C", Authors: "RF", Journal: "Nature", Year: 2019},
	}
	doc.Certifications = []types.CertificationEntry{{Name: "Cert", IssuingOrg: "Org", ExpiryDate: types.NoExpiry()}}
	doc.Awards = []types.AwardEntry{{Name: "Prize", AwardingOrg: "Society", Date: types.On(1956, time.June, 1)}}
	return doc
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  *types.CVDocument
	}{
		{name: "empty document", doc: types.NewCVDocument()},
		{name: "full document", doc: fullCV()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Export(tt.doc)
			require.NoError(t, err)

			got, err := Import(data)
			require.NoError(t, err)
			assert.Equal(t, tt.doc, got)
		})
	}
}

// Whatever the editor admits must survive an export and import unchanged.
func TestRoundTrip_EditorAdmittedEdgeValues(t *testing.T) {
	entries := []any{
		types.EducationEntry{Degree: "PhD", Institution: "X", StartYear: -3},
		types.EducationEntry{Degree: "PhD", Institution: "X", EndYear: -1},
		types.EducationEntry{Degree: "PhD", Institution: "X"},
		types.EducationEntry{Degree: "BSc", Institution: "Y", StartYear: 2020, EndYear: 2020},
		types.PublicationEntry{Title: "T", Authors: "A", Journal: "J", Year: 1900},
		types.PublicationEntry{Title: "T", Authors: "A", Journal: "J", Year: 2030},
		types.PublicationEntry{Title: "T", Authors: "A", Journal: "J", Year: -2000},
		types.ExperienceEntry{JobTitle: "Łódź Lead", Company: "Zürich AG", EndDate: types.Present()},
		types.CertificationEntry{Name: "C", IssuingOrg: "O", IssueDate: types.On(2024, time.May, 1), ExpiryDate: types.On(2020, time.January, 1)},
	}

	ed := editor.New()
	admitted := 0
	for _, entry := range entries {
		if _, err := ed.Add(entry); err == nil {
			admitted++
		}
	}
	require.Equal(t, 6, admitted)

	doc := ed.Snapshot()
	data, err := Export(doc)
	require.NoError(t, err)

	got, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestExport_EveryKeyPresent(t *testing.T) {
	data, err := Export(types.NewCVDocument())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{
		"personal_info", "photo", "education", "experience", "skills",
		"projects", "publications", "certifications", "awards",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "null", string(raw["photo"]))
	assert.Equal(t, "[]", string(raw["awards"]))

	var personal map[string]string
	require.NoError(t, json.Unmarshal(raw["personal_info"], &personal))
	assert.Len(t, personal, 10)
}

func TestExport_NilListsBecomeArrays(t *testing.T) {
	doc := &types.CVDocument{}
	data, err := Export(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"education": []`)
	assert.Contains(t, string(data), `"programming_languages": []`)
	assert.Nil(t, doc.Education, "export must not modify its input")
}

func TestExport_PublicationOrderPreserved(t *testing.T) {
	data, err := Export(fullCV())
	require.NoError(t, err)

	got, err := Import(data)
	require.NoError(t, err)
	years := []int{got.Publications[0].Year, got.Publications[1].Year, got.Publications[2].Year}
	assert.Equal(t, []int{2020, 2023, 2019}, years)
}

func TestExport_PhotoIsBase64(t *testing.T) {
	data, err := Export(fullCV())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mime_type": "image/png"`)
	assert.Contains(t, string(data), `"data": "iVBORwABAg=="`)
}

func TestImport_Failures(t *testing.T) {
	valid, err := Export(types.NewCVDocument())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(valid, &raw))
	delete(raw, "awards")
	missingKey, err := json.Marshal(raw)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "not JSON", input: `personal_info: {}`, message: "not valid JSON"},
		{name: "truncated", input: string(valid[:len(valid)/2]), message: "not valid JSON"},
		{name: "array root", input: `[]`, message: "does not match"},
		{name: "missing top-level key", input: string(missingKey), message: "does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Import([]byte(tt.input))
			assert.Nil(t, doc)

			var ie *ImportError
			require.True(t, errors.As(err, &ie))
			assert.Contains(t, ie.Message, tt.message)
		})
	}
}

func TestImport_MissingKeyDetails(t *testing.T) {
	_, err := Import([]byte(`{"personal_info": {}}`))
	var ie *ImportError
	require.True(t, errors.As(err, &ie))
	assert.NotEmpty(t, ie.Details)
	assert.Contains(t, ie.Details, "(root): awards is required")
}

func TestImport_RejectsBadValues(t *testing.T) {
	doc := fullCV()
	data, err := Export(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["experience"].([]any)[0].(map[string]any)["end_date"] = "sometime"
	bad, err := json.Marshal(raw)
	require.NoError(t, err)

	_, err = Import(bad)
	var ie *ImportError
	assert.True(t, errors.As(err, &ie))
}

func TestSuggestedFilename(t *testing.T) {
	assert.Equal(t, "Rosalind_Franklin_CV_data.json", SuggestedFilename("Rosalind Franklin"))
	assert.Equal(t, "CV_data.json", SuggestedFilename(""))
	assert.Equal(t, "CV_data.json", SuggestedFilename("   "))
}
