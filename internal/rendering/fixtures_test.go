package rendering

import (
	"time"

	"github.com/jonathan/cv-builder/internal/types"
)

// sampleCV returns a document with every section filled.
func sampleCV() *types.CVDocument {
	doc := types.NewCVDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FullName: "Ada Lovelace",
		Title:    "Computational Biologist",
		Email:    "ada@example.com",
		Phone:    "+44 20 7946 0000",
		Location: "London",
		LinkedIn: "linkedin.com/in/ada",
		GitHub:   "github.com/ada",
		Summary:  "Builds analysis pipelines.\n\nTeaches statistics.",
	}
	doc.Skills.ProgrammingLanguages = []string{"Python", "R", "Go"}
	doc.Skills.Databases = []string{"PostgreSQL"}
	doc.Education = []types.EducationEntry{{
		Degree: "PhD Bioinformatics", Institution: "University of London", Location: "London",
		StartYear: 2015, EndYear: 2019, ThesisTitle: "Protein folding at scale", Advisor: "C. Babbage",
	}}
	doc.Experience = []types.ExperienceEntry{{
		JobTitle: "Research Scientist", Company: "Analytical Engines Ltd", Location: "Remote",
		StartDate: types.On(2020, time.January, 6), EndDate: types.Present(), JobType: types.JobFullTime,
		Description: "Led the sequencing platform.\nMentored four students.",
	}}
	doc.Projects = []types.ProjectEntry{{
		Name: "FoldKit", Type: types.ProjectSoftware, StartDate: types.On(2021, time.March, 1), EndDate: types.Ongoing(),
		Technologies: "Go, CUDA", GitHubLink: "github.com/ada/foldkit", Description: "GPU folding toolkit.",
	}}
	doc.Publications = []types.PublicationEntry{
		{Title: "First Paper", Authors: "Lovelace A", Journal: "Nature", Year: 2020, Volume: "12", Pages: "1-9"},
		{Title: "Second Paper", Authors: "Lovelace A", Journal: "Science", Year: 2023, DOI: "10.1000/xyz"},
		{Title: "Third Paper", Authors: "Lovelace A", Journal: "Cell", Year: 2019},
	}
	doc.Certifications = []types.CertificationEntry{{
		Name: "Cloud Practitioner", IssuingOrg: "AWS", IssueDate: types.On(2022, time.May, 1), ExpiryDate: types.NoExpiry(),
	}}
	doc.Awards = []types.AwardEntry{{
		Name: "Best Paper", AwardingOrg: "ISMB", Date: types.On(2023, time.July, 20), Description: "Top paper of the year.",
	}}
	return doc
}

// namedCV returns a document with only a name.
func namedCV(name string) *types.CVDocument {
	doc := types.NewCVDocument()
	doc.PersonalInfo.FullName = name
	return doc
}
