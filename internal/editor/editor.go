// Package editor owns one CV document and exposes the add/list/remove contract
// used by the section editors.
package editor

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

// Section names a list-typed part of the document. Values match the JSON keys.
type Section string

const (
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionPublications   Section = "publications"
	SectionCertifications Section = "certifications"
	SectionAwards         Section = "awards"
)

// Sections lists the list sections in document order.
var Sections = []Section{
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionPublications,
	SectionCertifications,
	SectionAwards,
}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", &SectionError{Section: s}
}

// Item pairs an entry with the key it was stored under.
type Item struct {
	Key   string `json:"key"`
	Entry any    `json:"entry"`
}

// Editor holds a document and a stable key for every list entry. Keys are
// assigned on insertion and survive removals of other entries, so a delete
// issued from a resorted view always hits the intended entry.
//
// Editor is not safe for concurrent use; callers serialize access.
type Editor struct {
	doc  *types.CVDocument
	keys map[Section][]string
}

// New returns an editor over an empty document.
func New() *Editor {
	e := &Editor{}
	e.Replace(types.NewCVDocument())
	return e
}

// Document returns the live document. Callers must not retain it across edits.
func (e *Editor) Document() *types.CVDocument { return e.doc }

// Snapshot returns a deep copy for preview and export.
func (e *Editor) Snapshot() *types.CVDocument { return e.doc.Clone() }

// Replace swaps in a whole document, typically an import, and assigns fresh keys.
func (e *Editor) Replace(doc *types.CVDocument) {
	doc.Normalize()
	e.doc = doc
	e.keys = map[Section][]string{
		SectionEducation:      newKeys(len(doc.Education)),
		SectionExperience:     newKeys(len(doc.Experience)),
		SectionProjects:       newKeys(len(doc.Projects)),
		SectionPublications:   newKeys(len(doc.Publications)),
		SectionCertifications: newKeys(len(doc.Certifications)),
		SectionAwards:         newKeys(len(doc.Awards)),
	}
}

// SetPersonalInfo validates and replaces the header record.
func (e *Editor) SetPersonalInfo(p types.PersonalInfo) error {
	if err := validation.AsError(validation.ValidatePersonalInfo(p)); err != nil {
		return err
	}
	e.doc.PersonalInfo = p
	return nil
}

// SetPhoto overwrites the profile picture.
func (e *Editor) SetPhoto(photo types.Photo) {
	e.doc.Photo = &types.Photo{MIMEType: photo.MIMEType, Data: append([]byte{}, photo.Data...)}
}

// ClearPhoto removes the profile picture.
func (e *Editor) ClearPhoto() { e.doc.Photo = nil }

// SetSkills replaces every skill list.
func (e *Editor) SetSkills(s types.SkillSet) { e.doc.Skills = s.Clone() }

// SetSkillCategory replaces one skill list from newline-separated free text.
func (e *Editor) SetSkillCategory(c types.SkillCategory, text string) {
	e.doc.Skills.Set(c, types.ParseSkillLines(text))
}

// AddEducation validates and appends an entry, returning its key.
func (e *Editor) AddEducation(entry types.EducationEntry) (string, error) {
	return appendKeyed(e, SectionEducation, &e.doc.Education, entry, validation.ValidateEducation)
}

// AddExperience validates and appends an entry, returning its key.
func (e *Editor) AddExperience(entry types.ExperienceEntry) (string, error) {
	return appendKeyed(e, SectionExperience, &e.doc.Experience, entry, validation.ValidateExperience)
}

// AddProject validates and appends an entry, returning its key.
func (e *Editor) AddProject(entry types.ProjectEntry) (string, error) {
	return appendKeyed(e, SectionProjects, &e.doc.Projects, entry, validation.ValidateProject)
}

// AddPublication validates and appends an entry, returning its key.
func (e *Editor) AddPublication(entry types.PublicationEntry) (string, error) {
	return appendKeyed(e, SectionPublications, &e.doc.Publications, entry, validation.ValidatePublication)
}

// AddCertification validates and appends an entry, returning its key.
func (e *Editor) AddCertification(entry types.CertificationEntry) (string, error) {
	return appendKeyed(e, SectionCertifications, &e.doc.Certifications, entry, validation.ValidateCertification)
}

// AddAward validates and appends an entry, returning its key.
func (e *Editor) AddAward(entry types.AwardEntry) (string, error) {
	return appendKeyed(e, SectionAwards, &e.doc.Awards, entry, validation.ValidateAward)
}

// Add dispatches on the dynamic type of entry. It is the entry point for callers
// that decode entries generically, such as the HTTP handlers.
func (e *Editor) Add(entry any) (string, error) {
	switch v := entry.(type) {
	case types.EducationEntry:
		return e.AddEducation(v)
	case *types.EducationEntry:
		return e.AddEducation(*v)
	case types.ExperienceEntry:
		return e.AddExperience(v)
	case *types.ExperienceEntry:
		return e.AddExperience(*v)
	case types.ProjectEntry:
		return e.AddProject(v)
	case *types.ProjectEntry:
		return e.AddProject(*v)
	case types.PublicationEntry:
		return e.AddPublication(v)
	case *types.PublicationEntry:
		return e.AddPublication(*v)
	case types.CertificationEntry:
		return e.AddCertification(v)
	case *types.CertificationEntry:
		return e.AddCertification(*v)
	case types.AwardEntry:
		return e.AddAward(v)
	case *types.AwardEntry:
		return e.AddAward(*v)
	}
	return "", fmt.Errorf("unsupported entry type %T", entry)
}

// NewEntry returns a pointer to a zero entry of the section's type, ready to be
// decoded into.
func NewEntry(s Section) (any, error) {
	switch s {
	case SectionEducation:
		return &types.EducationEntry{}, nil
	case SectionExperience:
		return &types.ExperienceEntry{}, nil
	case SectionProjects:
		return &types.ProjectEntry{}, nil
	case SectionPublications:
		return &types.PublicationEntry{}, nil
	case SectionCertifications:
		return &types.CertificationEntry{}, nil
	case SectionAwards:
		return &types.AwardEntry{}, nil
	}
	return nil, &SectionError{Section: string(s)}
}

// List returns a section's entries with their keys. Storage order is kept except
// for publications, which are listed newest year first; equal years keep their
// insertion order.
func (e *Editor) List(s Section) ([]Item, error) {
	var items []Item
	switch s {
	case SectionEducation:
		items = keyed(e.keys[s], e.doc.Education)
	case SectionExperience:
		items = keyed(e.keys[s], e.doc.Experience)
	case SectionProjects:
		items = keyed(e.keys[s], e.doc.Projects)
	case SectionPublications:
		items = keyed(e.keys[s], e.doc.Publications)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Entry.(types.PublicationEntry).Year > items[j].Entry.(types.PublicationEntry).Year
		})
	case SectionCertifications:
		items = keyed(e.keys[s], e.doc.Certifications)
	case SectionAwards:
		items = keyed(e.keys[s], e.doc.Awards)
	default:
		return nil, &SectionError{Section: string(s)}
	}
	return items, nil
}

// Remove deletes the entry stored under key.
func (e *Editor) Remove(s Section, key string) error {
	switch s {
	case SectionEducation:
		return removeKeyed(e, s, &e.doc.Education, key)
	case SectionExperience:
		return removeKeyed(e, s, &e.doc.Experience, key)
	case SectionProjects:
		return removeKeyed(e, s, &e.doc.Projects, key)
	case SectionPublications:
		return removeKeyed(e, s, &e.doc.Publications, key)
	case SectionCertifications:
		return removeKeyed(e, s, &e.doc.Certifications, key)
	case SectionAwards:
		return removeKeyed(e, s, &e.doc.Awards, key)
	}
	return &SectionError{Section: string(s)}
}

func appendKeyed[T any](e *Editor, s Section, list *[]T, entry T, check func(T) []string) (string, error) {
	if err := validation.AsError(check(entry)); err != nil {
		return "", err
	}
	key := uuid.NewString()
	*list = append(*list, entry)
	e.keys[s] = append(e.keys[s], key)
	return key, nil
}

func removeKeyed[T any](e *Editor, s Section, list *[]T, key string) error {
	keys := e.keys[s]
	for i, k := range keys {
		if k == key {
			*list = append((*list)[:i], (*list)[i+1:]...)
			e.keys[s] = append(keys[:i], keys[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

func keyed[T any](keys []string, list []T) []Item {
	items := make([]Item, len(list))
	for i, entry := range list {
		items[i] = Item{Key: keys[i], Entry: entry}
	}
	return items
}

func newKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}
	return keys
}
