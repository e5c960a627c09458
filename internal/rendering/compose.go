package rendering

import (
	"strconv"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// Section headings, in document order.
const (
	HeadingSummary        = "PROFESSIONAL SUMMARY"
	HeadingSkills         = "TECHNICAL SKILLS"
	HeadingEducation      = "EDUCATION"
	HeadingExperience     = "WORK EXPERIENCE"
	HeadingProjects       = "PROJECTS"
	HeadingPublications   = "PUBLICATIONS"
	HeadingCertifications = "CERTIFICATIONS"
	HeadingAwards         = "AWARDS & HONORS"
)

const (
	entrySpacer   = 6.0
	contactSpacer = 12.0
)

type composer func(b *builder, cv *types.CVDocument)

// sections run in this order; each emits nothing when its data is empty.
var sections = []composer{
	composePersonal,
	composeSkills,
	composeEducation,
	composeExperience,
	composeProjects,
	composePublications,
	composeCertifications,
	composeAwards,
}

// Compose lays a CV out as blocks. It fails with ErrMissingName when no name has
// been entered. cv is only read.
func Compose(cv *types.CVDocument, template, format string) (*Document, error) {
	if cv == nil || !cv.HasName() {
		return nil, ErrMissingName
	}
	b := &builder{}
	for _, section := range sections {
		section(b, cv)
	}
	return &Document{
		Page:     ResolvePage(format),
		Template: LookupTemplate(template),
		Blocks:   b.blocks,
	}, nil
}

type builder struct {
	blocks []Block
}

func (b *builder) add(blocks ...Block) { b.blocks = append(b.blocks, blocks...) }

func (b *builder) heading(text string) { b.add(HeadingBlock{Text: text}) }

func (b *builder) spacer(h float64) { b.add(SpacerBlock{Height: h}) }

// line adds a paragraph unless every run is empty.
func (b *builder) line(runs ...Run) {
	for _, r := range runs {
		if r.Text != "" {
			b.add(ParagraphBlock{Runs: runs})
			return
		}
	}
}

// plain adds a one-run paragraph when text is non-empty.
func (b *builder) plain(text string) {
	if text != "" {
		b.add(ParagraphBlock{Runs: []Run{{Text: text}}})
	}
}

// labeled adds "<label> <value>" with an italic label when value is non-empty.
func (b *builder) labeled(label, value string) {
	if value != "" {
		b.add(ParagraphBlock{Runs: []Run{{Text: label, Italic: true}, {Text: " " + value}}})
	}
}

// prefixed adds "<prefix><value>" when value is non-empty.
func (b *builder) prefixed(prefix, value string) {
	if value != "" {
		b.plain(prefix + value)
	}
}

// description adds one paragraph per non-blank line.
func (b *builder) description(text string) {
	for _, line := range strings.Split(text, "\n") {
		b.plain(strings.TrimSpace(line))
	}
}

// titled adds the bold entry title with an optional " - <rest>".
func (b *builder) titled(bold, rest string) {
	runs := []Run{{Text: bold, Bold: true}}
	if rest != "" {
		runs = append(runs, Run{Text: " - " + rest})
	}
	b.line(runs...)
}

func composePersonal(b *builder, cv *types.CVDocument) {
	p := cv.PersonalInfo
	if name := strings.TrimSpace(p.FullName); name != "" {
		b.add(TitleBlock{Text: name})
	}
	if title := strings.TrimSpace(p.Title); title != "" {
		b.add(SubtitleBlock{Text: title})
	}

	if table, ok := contactTable(p); ok {
		b.add(table)
		b.spacer(contactSpacer)
	}

	if strings.TrimSpace(p.Summary) != "" {
		b.heading(HeadingSummary)
		b.description(p.Summary)
		b.spacer(entrySpacer)
	}
}

// contactTable splits the present contact fields into two columns, the first
// taking the larger half.
func contactTable(p types.PersonalInfo) (ContactTableBlock, bool) {
	var cells []ContactCell
	for _, c := range []ContactCell{
		{Label: "Email:", Value: p.Email},
		{Label: "Phone:", Value: p.Phone},
		{Label: "Location:", Value: p.Location},
		{Label: "LinkedIn:", Value: p.LinkedIn},
		{Label: "GitHub:", Value: p.GitHub},
		{Label: "ORCID:", Value: p.ORCID},
	} {
		if v := strings.TrimSpace(c.Value); v != "" {
			cells = append(cells, ContactCell{Label: c.Label, Value: v})
		}
	}
	if len(cells) == 0 {
		return ContactTableBlock{}, false
	}

	mid := (len(cells) + 1) / 2
	left, right := cells[:mid], cells[mid:]
	rows := make([]ContactRow, len(left))
	for i := range left {
		rows[i].Left = left[i]
		if i < len(right) {
			rows[i].Right = right[i]
		}
	}
	return ContactTableBlock{Rows: rows}, true
}

func composeSkills(b *builder, cv *types.CVDocument) {
	if cv.Skills.IsEmpty() {
		return
	}
	b.heading(HeadingSkills)
	for _, c := range types.SkillCategories {
		skills := cv.Skills.Get(c)
		if len(skills) == 0 {
			continue
		}
		b.line(Run{Text: c.Title() + ":", Bold: true}, Run{Text: " " + strings.Join(skills, ", ")})
	}
	b.spacer(entrySpacer)
}

func composeEducation(b *builder, cv *types.CVDocument) {
	if len(cv.Education) == 0 {
		return
	}
	b.heading(HeadingEducation)
	for _, e := range cv.Education {
		b.titled(e.Degree, e.Institution)
		b.plain(joinPresent(" | ", span(year(e.StartYear), year(e.EndYear)), e.Location))
		b.labeled("Thesis:", e.ThesisTitle)
		b.labeled("Advisor:", e.Advisor)
		b.labeled("GPA:", e.GPA)
		b.description(e.Description)
		b.spacer(entrySpacer)
	}
}

func composeExperience(b *builder, cv *types.CVDocument) {
	if len(cv.Experience) == 0 {
		return
	}
	b.heading(HeadingExperience)
	for _, e := range cv.Experience {
		b.titled(e.JobTitle, e.Company)
		b.plain(joinPresent(" | ", span(e.StartDate.String(), e.EndDate.String()), e.Location, string(e.JobType)))
		b.description(e.Description)
		b.spacer(entrySpacer)
	}
}

func composeProjects(b *builder, cv *types.CVDocument) {
	if len(cv.Projects) == 0 {
		return
	}
	b.heading(HeadingProjects)
	for _, p := range cv.Projects {
		b.titled(p.Name, string(p.Type))
		var tech string
		if p.Technologies != "" {
			tech = "Technologies: " + p.Technologies
		}
		b.plain(joinPresent(" | ", span(p.StartDate.String(), p.EndDate.String()), tech))
		b.description(p.Description)
		b.prefixed("Repository: ", p.GitHubLink)
		b.prefixed("Link: ", p.PublicationLink)
		b.spacer(entrySpacer)
	}
}

// composePublications keeps storage order; only listing views resort.
func composePublications(b *builder, cv *types.CVDocument) {
	if len(cv.Publications) == 0 {
		return
	}
	b.heading(HeadingPublications)
	for _, p := range cv.Publications {
		b.line(Run{Text: p.Title, Bold: true})

		var ref strings.Builder
		ref.WriteString(p.Authors)
		if p.Year != 0 {
			ref.WriteString(" (" + strconv.Itoa(p.Year) + ")")
		}
		ref.WriteString(". " + p.Journal)
		if p.Volume != "" {
			ref.WriteString(", Vol. " + p.Volume)
		}
		if p.Pages != "" {
			ref.WriteString(", pp. " + p.Pages)
		}
		b.plain(ref.String())

		b.prefixed("DOI: ", p.DOI)
		b.prefixed("PMID: ", p.PMID)
		b.prefixed("URL: ", p.URL)
		b.spacer(entrySpacer)
	}
}

func composeCertifications(b *builder, cv *types.CVDocument) {
	if len(cv.Certifications) == 0 {
		return
	}
	b.heading(HeadingCertifications)
	for _, c := range cv.Certifications {
		b.titled(c.Name, c.IssuingOrg)
		b.plain(joinPresent(" | ", prefix("Issued: ", c.IssueDate.String()), prefix("Expires: ", c.ExpiryDate.String())))
		b.prefixed("Credential ID: ", c.CredentialID)
		b.prefixed("URL: ", c.URL)
		b.spacer(entrySpacer)
	}
}

func composeAwards(b *builder, cv *types.CVDocument) {
	if len(cv.Awards) == 0 {
		return
	}
	b.heading(HeadingAwards)
	for _, a := range cv.Awards {
		b.titled(a.Name, a.AwardingOrg)
		b.prefixed("Date: ", a.Date.String())
		b.description(a.Description)
		b.spacer(entrySpacer)
	}
}

func year(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}

// span renders "start - end", or whichever side is present.
func span(start, end string) string {
	return joinPresent(" - ", start, end)
}

func prefix(p, v string) string {
	if v == "" {
		return ""
	}
	return p + v
}

func joinPresent(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
