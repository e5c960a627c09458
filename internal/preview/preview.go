// Package preview builds the read-only summary view of a CV shown before export.
package preview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
)

const (
	maxSkillsPerCategory = 5
	maxProjects          = 3
	maxPublications      = 3
)

// SkillLine is one category with at most five skills shown.
type SkillLine struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
	More     bool     `json:"more"`
}

// SectionCount is the number of entries in one section.
type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// Stats summarizes the document.
type Stats struct {
	Counts                    []SectionCount `json:"counts"`
	LatestPublicationYear     int            `json:"latest_publication_year,omitempty"`
	MostCommonPublicationType string         `json:"most_common_publication_type"`
}

// ChecklistItem is one line of the completion checklist.
type ChecklistItem struct {
	Item string `json:"item"`
	Done bool   `json:"done"`
}

// Completion is the checklist progress.
type Completion struct {
	Done    int     `json:"done"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// Preview is the projection of a CV shown before export.
type Preview struct {
	Name         string          `json:"name"`
	Title        string          `json:"title,omitempty"`
	Contact      []string        `json:"contact"`
	Online       []string        `json:"online"`
	Summary      string          `json:"summary,omitempty"`
	HasPhoto     bool            `json:"has_photo"`
	Skills       []SkillLine     `json:"skills"`
	Education    []string        `json:"education"`
	Experience   []string        `json:"experience"`
	Projects     []string        `json:"projects"`
	Publications []string        `json:"publications"`
	Stats        Stats           `json:"stats"`
	Checklist    []ChecklistItem `json:"checklist"`
	Completion   Completion      `json:"completion"`
}

// Build projects doc into a Preview. Like export, it refuses a document without
// a name and returns the guidance error instead.
func Build(doc *types.CVDocument) (*Preview, error) {
	if doc == nil || !doc.HasName() {
		return nil, rendering.ErrMissingName
	}
	p := doc.PersonalInfo

	pv := &Preview{
		Name:         strings.TrimSpace(p.FullName),
		Title:        p.Title,
		Contact:      present(p.Email, p.Phone, p.Location),
		Online:       []string{},
		Summary:      p.Summary,
		HasPhoto:     doc.Photo != nil,
		Skills:       []SkillLine{},
		Education:    []string{},
		Experience:   []string{},
		Projects:     []string{},
		Publications: []string{},
	}
	for _, link := range []struct{ label, value string }{
		{"LinkedIn", p.LinkedIn}, {"GitHub", p.GitHub}, {"ORCID", p.ORCID},
	} {
		if strings.TrimSpace(link.value) != "" {
			pv.Online = append(pv.Online, link.label)
		}
	}

	for _, c := range types.SkillCategories {
		skills := doc.Skills.Get(c)
		if len(skills) == 0 {
			continue
		}
		n := min(len(skills), maxSkillsPerCategory)
		pv.Skills = append(pv.Skills, SkillLine{
			Category: c.Title(),
			Skills:   append([]string{}, skills[:n]...),
			More:     len(skills) > maxSkillsPerCategory,
		})
	}

	for _, e := range doc.Education {
		pv.Education = append(pv.Education, fmt.Sprintf("%s - %s (%s-%s)", e.Degree, e.Institution, year(e.StartYear), year(e.EndYear)))
	}
	for _, e := range doc.Experience {
		pv.Experience = append(pv.Experience, fmt.Sprintf("%s at %s (%s - %s)", e.JobTitle, e.Company, e.StartDate, e.EndDate))
	}
	for _, proj := range doc.Projects[:min(len(doc.Projects), maxProjects)] {
		line := proj.Name
		if proj.Type != "" {
			line += " - " + string(proj.Type)
		}
		pv.Projects = append(pv.Projects, line)
	}
	newest := NewestFirst(doc.Publications)
	for _, pub := range newest[:min(len(newest), maxPublications)] {
		pv.Publications = append(pv.Publications, fmt.Sprintf("%s (%d)", pub.Title, pub.Year))
	}

	pv.Stats = buildStats(doc)
	pv.Checklist = checklist(doc)
	pv.Completion = completion(pv.Checklist)
	return pv, nil
}

// NewestFirst returns a copy of pubs ordered by year, newest first. Equal years
// keep their stored order. pubs itself is not reordered.
func NewestFirst(pubs []types.PublicationEntry) []types.PublicationEntry {
	out := append([]types.PublicationEntry{}, pubs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

func buildStats(doc *types.CVDocument) Stats {
	s := Stats{
		Counts: []SectionCount{
			{"Education", len(doc.Education)},
			{"Experience", len(doc.Experience)},
			{"Projects", len(doc.Projects)},
			{"Publications", len(doc.Publications)},
			{"Certifications", len(doc.Certifications)},
			{"Awards", len(doc.Awards)},
		},
		MostCommonPublicationType: "None",
	}

	counts := map[types.PublicationType]int{}
	var order []types.PublicationType
	best := 0
	for _, pub := range doc.Publications {
		s.LatestPublicationYear = max(s.LatestPublicationYear, pub.Year)
		if pub.Type == "" {
			continue
		}
		if counts[pub.Type] == 0 {
			order = append(order, pub.Type)
		}
		counts[pub.Type]++
	}
	// ties go to the type seen first
	for _, t := range order {
		if counts[t] > best {
			best = counts[t]
			s.MostCommonPublicationType = string(t)
		}
	}
	return s
}

func checklist(doc *types.CVDocument) []ChecklistItem {
	p := doc.PersonalInfo
	return []ChecklistItem{
		{"Personal Information", strings.TrimSpace(p.FullName) != "" && strings.TrimSpace(p.Email) != ""},
		{"Professional Summary", strings.TrimSpace(p.Summary) != ""},
		{"Education", len(doc.Education) > 0},
		{"Work Experience", len(doc.Experience) > 0},
		{"Technical Skills", !doc.Skills.IsEmpty()},
		{"Projects", len(doc.Projects) > 0},
		{"Publications", len(doc.Publications) > 0},
	}
}

func completion(items []ChecklistItem) Completion {
	c := Completion{Total: len(items)}
	for _, it := range items {
		if it.Done {
			c.Done++
		}
	}
	if c.Total > 0 {
		c.Percent = float64(c.Done) / float64(c.Total) * 100
	}
	return c
}

func present(values ...string) []string {
	out := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func year(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}
