// Package types provides type definitions for the CV data model shared by editors,
// renderers and the interchange format.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo is the singleton header record of a CV.
type PersonalInfo struct {
	FullName string `json:"full_name" validate:"notblank" label:"Full Name"`
	Title    string `json:"title"`
	Email    string `json:"email" validate:"notblank" label:"Email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	ORCID    string `json:"orcid"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

// Photo is the optional profile picture. Data is base64 encoded in JSON.
type Photo struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// EducationEntry is one academic credential. Years are 0 when absent.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"notblank" label:"Degree"`
	Institution string `json:"institution" validate:"notblank" label:"Institution"`
	Location    string `json:"location"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
	ThesisTitle string `json:"thesis_title"`
	Advisor     string `json:"advisor"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// ExperienceEntry is one position held. EndDate may be the Present sentinel.
type ExperienceEntry struct {
	JobTitle    string  `json:"job_title" validate:"notblank" label:"Job Title"`
	Company     string  `json:"company" validate:"notblank" label:"Company"`
	Location    string  `json:"location"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	JobType     JobType `json:"job_type"`
	Description string  `json:"description"`
}

// ProjectEntry is one project. EndDate may be the Ongoing sentinel.
type ProjectEntry struct {
	Name            string      `json:"name" validate:"notblank" label:"Name"`
	Type            ProjectType `json:"type"`
	StartDate       Date        `json:"start_date"`
	EndDate         Date        `json:"end_date"`
	Technologies    string      `json:"technologies"`
	GitHubLink      string      `json:"github_link"`
	PublicationLink string      `json:"publication_link"`
	Description     string      `json:"description" validate:"notblank" label:"Description"`
}

// PublicationEntry is one published work.
type PublicationEntry struct {
	Title   string          `json:"title" validate:"notblank" label:"Title"`
	Authors string          `json:"authors" validate:"notblank" label:"Authors"`
	Journal string          `json:"journal" validate:"notblank" label:"Journal"`
	Year    int             `json:"year" validate:"required" label:"Year"`
	Volume  string          `json:"volume"`
	Pages   string          `json:"pages"`
	DOI     string          `json:"doi"`
	PMID    string          `json:"pmid"`
	URL     string          `json:"url"`
	Type    PublicationType `json:"type"`
}

// CertificationEntry is one certification. ExpiryDate may be the No Expiry sentinel.
type CertificationEntry struct {
	Name         string `json:"name" validate:"notblank" label:"Name"`
	IssuingOrg   string `json:"issuing_org" validate:"notblank" label:"Issuing Org"`
	IssueDate    Date   `json:"issue_date"`
	ExpiryDate   Date   `json:"expiry_date"`
	CredentialID string `json:"credential_id"`
	URL          string `json:"url"`
}

// AwardEntry is one award or honor.
type AwardEntry struct {
	Name        string `json:"name" validate:"notblank" label:"Name"`
	AwardingOrg string `json:"awarding_org" validate:"notblank" label:"Awarding Org"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
}

// CVDocument is the root record holding all résumé content for one session.
type CVDocument struct {
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Photo          *Photo               `json:"photo"`
	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Skills         SkillSet             `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Publications   []PublicationEntry   `json:"publications"`
	Certifications []CertificationEntry `json:"certifications"`
	Awards         []AwardEntry         `json:"awards"`
}

// NewCVDocument returns an empty document whose lists are non-nil.
func NewCVDocument() *CVDocument {
	doc := &CVDocument{}
	doc.Normalize()
	return doc
}

// Normalize replaces nil lists with empty ones so the document serializes every
// list as [] and compares equal to its decoded form.
func (d *CVDocument) Normalize() {
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
	if d.Publications == nil {
		d.Publications = []PublicationEntry{}
	}
	if d.Certifications == nil {
		d.Certifications = []CertificationEntry{}
	}
	if d.Awards == nil {
		d.Awards = []AwardEntry{}
	}
	d.Skills.normalize()
}

// Clone returns a deep copy of the document.
func (d *CVDocument) Clone() *CVDocument {
	c := &CVDocument{
		PersonalInfo:   d.PersonalInfo,
		Education:      append([]EducationEntry{}, d.Education...),
		Experience:     append([]ExperienceEntry{}, d.Experience...),
		Skills:         d.Skills.Clone(),
		Projects:       append([]ProjectEntry{}, d.Projects...),
		Publications:   append([]PublicationEntry{}, d.Publications...),
		Certifications: append([]CertificationEntry{}, d.Certifications...),
		Awards:         append([]AwardEntry{}, d.Awards...),
	}
	if d.Photo != nil {
		c.Photo = &Photo{
			MIMEType: d.Photo.MIMEType,
			Data:     append([]byte{}, d.Photo.Data...),
		}
	}
	return c
}

// HasName reports whether a full name has been entered. Preview and export
// require it.
func (d *CVDocument) HasName() bool {
	return strings.TrimSpace(d.PersonalInfo.FullName) != ""
}
