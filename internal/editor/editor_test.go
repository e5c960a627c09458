package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

func publication(title string, year int) types.PublicationEntry {
	return types.PublicationEntry{Title: title, Authors: "A. Author", Journal: "Journal", Year: year}
}

func TestAdd_RejectsInvalidEntryWithoutMutating(t *testing.T) {
	e := New()

	key, err := e.AddEducation(types.EducationEntry{Degree: "PhD"})
	require.Error(t, err)
	assert.Empty(t, key)

	var ve *validation.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Institution is required"}, ve.Messages)
	assert.Empty(t, e.Document().Education)
}

func TestSetPersonalInfo(t *testing.T) {
	e := New()

	err := e.SetPersonalInfo(types.PersonalInfo{FullName: "A", Email: "bad"})
	require.Error(t, err)
	assert.Empty(t, e.Document().PersonalInfo.FullName)

	require.NoError(t, e.SetPersonalInfo(types.PersonalInfo{FullName: "A", Email: "a@b.com"}))
	assert.Equal(t, "A", e.Document().PersonalInfo.FullName)
}

func TestList_PublicationsNewestFirstStorageUntouched(t *testing.T) {
	e := New()
	for _, p := range []types.PublicationEntry{publication("first", 2020), publication("second", 2023), publication("third", 2019)} {
		_, err := e.AddPublication(p)
		require.NoError(t, err)
	}

	items, err := e.List(SectionPublications)
	require.NoError(t, err)

	var years []int
	for _, it := range items {
		years = append(years, it.Entry.(types.PublicationEntry).Year)
	}
	assert.Equal(t, []int{2023, 2020, 2019}, years)

	stored := e.Document().Publications
	assert.Equal(t, []int{2020, 2023, 2019}, []int{stored[0].Year, stored[1].Year, stored[2].Year})
}

func TestList_EqualYearsKeepInsertionOrder(t *testing.T) {
	e := New()
	for _, title := range []string{"a", "b", "c"} {
		_, err := e.AddPublication(publication(title, 2021))
		require.NoError(t, err)
	}

	items, err := e.List(SectionPublications)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Entry.(types.PublicationEntry).Title)
	assert.Equal(t, "c", items[2].Entry.(types.PublicationEntry).Title)
}

func TestRemove_FromSortedViewHitsIntendedEntry(t *testing.T) {
	e := New()
	for _, p := range []types.PublicationEntry{publication("old", 2019), publication("new", 2024), publication("mid", 2021)} {
		_, err := e.AddPublication(p)
		require.NoError(t, err)
	}

	items, err := e.List(SectionPublications)
	require.NoError(t, err)
	// first row of the sorted view is "new", stored at index 1
	require.NoError(t, e.Remove(SectionPublications, items[0].Key))

	titles := []string{}
	for _, p := range e.Document().Publications {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"old", "mid"}, titles)

	// remaining keys still resolve
	items, err = e.List(SectionPublications)
	require.NoError(t, err)
	require.NoError(t, e.Remove(SectionPublications, items[1].Key))
	assert.Equal(t, "mid", e.Document().Publications[0].Title)
}

func TestRemove_UnknownKey(t *testing.T) {
	e := New()
	err := e.Remove(SectionAwards, "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = e.Remove(Section("hobbies"), "x")
	var se *SectionError
	assert.True(t, errors.As(err, &se))
}

func TestAdd_Dispatch(t *testing.T) {
	e := New()

	entry, err := NewEntry(SectionAwards)
	require.NoError(t, err)
	award := entry.(*types.AwardEntry)
	award.Name = "Best Paper"
	award.AwardingOrg = "ACM"

	key, err := e.Add(entry)
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.Len(t, e.Document().Awards, 1)

	_, err = e.Add("not an entry")
	assert.Error(t, err)
}

func TestSkills(t *testing.T) {
	e := New()
	e.SetSkillCategory(types.SkillProgrammingLanguages, "Go\n\nPython\n  ")
	assert.Equal(t, []string{"Go", "Python"}, e.Document().Skills.ProgrammingLanguages)

	e.SetSkills(types.SkillSet{Databases: []string{"Postgres"}})
	assert.Empty(t, e.Document().Skills.ProgrammingLanguages)
	assert.Equal(t, []string{"Postgres"}, e.Document().Skills.Databases)
}

func TestPhotoOverwrite(t *testing.T) {
	e := New()
	e.SetPhoto(types.Photo{MIMEType: "image/png", Data: []byte{1}})
	e.SetPhoto(types.Photo{MIMEType: "image/jpeg", Data: []byte{2}})
	require.NotNil(t, e.Document().Photo)
	assert.Equal(t, "image/jpeg", e.Document().Photo.MIMEType)

	e.ClearPhoto()
	assert.Nil(t, e.Document().Photo)
}

func TestReplaceAndSnapshot(t *testing.T) {
	e := New()
	doc := types.NewCVDocument()
	doc.Awards = append(doc.Awards, types.AwardEntry{Name: "N", AwardingOrg: "O"})
	e.Replace(doc)

	items, err := e.List(SectionAwards)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].Key)

	snap := e.Snapshot()
	snap.Awards[0].Name = "changed"
	assert.Equal(t, "N", e.Document().Awards[0].Name)
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("certifications")
	require.NoError(t, err)
	assert.Equal(t, SectionCertifications, s)

	_, err = ParseSection("skills")
	assert.Error(t, err)
}
