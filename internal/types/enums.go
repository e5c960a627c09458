//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"slices"
)

// JobType is the closed set of employment kinds.
type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobContract   JobType = "Contract"
	JobInternship JobType = "Internship"
	JobFellowship JobType = "Fellowship"
	JobPostdoc    JobType = "Postdoc"
)

// JobTypes lists every JobType in display order.
var JobTypes = []JobType{JobFullTime, JobPartTime, JobContract, JobInternship, JobFellowship, JobPostdoc}

// ProjectType is the closed set of project categories.
type ProjectType string

const (
	ProjectResearch     ProjectType = "Research Project"
	ProjectSoftware     ProjectType = "Software Development"
	ProjectDataAnalysis ProjectType = "Data Analysis"
	ProjectWebApp       ProjectType = "Web Application"
	ProjectPublication  ProjectType = "Publication"
	ProjectOther        ProjectType = "Other"
)

// ProjectTypes lists every ProjectType in display order.
var ProjectTypes = []ProjectType{ProjectResearch, ProjectSoftware, ProjectDataAnalysis, ProjectWebApp, ProjectPublication, ProjectOther}

// PublicationType is the closed set of publication kinds.
type PublicationType string

const (
	PubJournalArticle  PublicationType = "Journal Article"
	PubConferencePaper PublicationType = "Conference Paper"
	PubBookChapter     PublicationType = "Book Chapter"
	PubPreprint        PublicationType = "Preprint"
	PubPoster          PublicationType = "Poster"
	PubAbstract        PublicationType = "Abstract"
)

// PublicationTypes lists every PublicationType in display order.
var PublicationTypes = []PublicationType{PubJournalArticle, PubConferencePaper, PubBookChapter, PubPreprint, PubPoster, PubAbstract}

// Valid reports whether t is unset or one of JobTypes.
func (t JobType) Valid() bool { return t == "" || slices.Contains(JobTypes, t) }

// Valid reports whether t is unset or one of ProjectTypes.
func (t ProjectType) Valid() bool { return t == "" || slices.Contains(ProjectTypes, t) }

// Valid reports whether t is unset or one of PublicationTypes.
func (t PublicationType) Valid() bool { return t == "" || slices.Contains(PublicationTypes, t) }

// UnmarshalText rejects values outside the closed set.
func (t *JobType) UnmarshalText(text []byte) error {
	v := JobType(text)
	if !v.Valid() {
		return fmt.Errorf("unknown job type %q", v)
	}
	*t = v
	return nil
}

// UnmarshalText rejects values outside the closed set.
func (t *ProjectType) UnmarshalText(text []byte) error {
	v := ProjectType(text)
	if !v.Valid() {
		return fmt.Errorf("unknown project type %q", v)
	}
	*t = v
	return nil
}

// UnmarshalText rejects values outside the closed set.
func (t *PublicationType) UnmarshalText(text []byte) error {
	v := PublicationType(text)
	if !v.Valid() {
		return fmt.Errorf("unknown publication type %q", v)
	}
	*t = v
	return nil
}
