//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// SkillCategory names one of the six skill lists. Values match the JSON keys.
type SkillCategory string

const (
	SkillProgrammingLanguages SkillCategory = "programming_languages"
	SkillBioinformaticsTools  SkillCategory = "bioinformatics_tools"
	SkillStatisticalSoftware  SkillCategory = "statistical_software"
	SkillDatabases            SkillCategory = "databases"
	SkillCloudPlatforms       SkillCategory = "cloud_platforms"
	SkillOtherTechnical       SkillCategory = "other_technical"
)

// SkillCategories lists the categories in rendering order.
var SkillCategories = []SkillCategory{
	SkillProgrammingLanguages,
	SkillBioinformaticsTools,
	SkillStatisticalSoftware,
	SkillDatabases,
	SkillCloudPlatforms,
	SkillOtherTechnical,
}

// ParseSkillCategory validates a category key.
func ParseSkillCategory(s string) (SkillCategory, error) {
	for _, c := range SkillCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown skill category %q", s)
}

// Title returns the human-readable name, e.g. "Programming Languages".
func (c SkillCategory) Title() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SkillSet holds six ordered skill lists. Duplicates are permitted.
type SkillSet struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	BioinformaticsTools  []string `json:"bioinformatics_tools"`
	StatisticalSoftware  []string `json:"statistical_software"`
	Databases            []string `json:"databases"`
	CloudPlatforms       []string `json:"cloud_platforms"`
	OtherTechnical       []string `json:"other_technical"`
}

// ParseSkillLines splits free text on newlines, trims each line and drops blank
// ones, preserving input order.
func ParseSkillLines(text string) []string {
	skills := []string{}
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Get returns the list for a category.
func (s *SkillSet) Get(c SkillCategory) []string {
	if p := s.slot(c); p != nil {
		return *p
	}
	return nil
}

// Set replaces the list for a category.
func (s *SkillSet) Set(c SkillCategory, skills []string) {
	if p := s.slot(c); p != nil {
		*p = append([]string{}, skills...)
	}
}

// IsEmpty reports whether every category is empty.
func (s *SkillSet) IsEmpty() bool {
	for _, c := range SkillCategories {
		if len(s.Get(c)) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy with non-nil lists.
func (s SkillSet) Clone() SkillSet {
	var c SkillSet
	for _, cat := range SkillCategories {
		c.Set(cat, s.Get(cat))
	}
	return c
}

func (s *SkillSet) normalize() {
	for _, c := range SkillCategories {
		if p := s.slot(c); p != nil && *p == nil {
			*p = []string{}
		}
	}
}

func (s *SkillSet) slot(c SkillCategory) *[]string {
	switch c {
	case SkillProgrammingLanguages:
		return &s.ProgrammingLanguages
	case SkillBioinformaticsTools:
		return &s.BioinformaticsTools
	case SkillStatisticalSoftware:
		return &s.StatisticalSoftware
	case SkillDatabases:
		return &s.Databases
	case SkillCloudPlatforms:
		return &s.CloudPlatforms
	case SkillOtherTechnical:
		return &s.OtherTechnical
	}
	return nil
}
