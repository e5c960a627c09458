// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-builder/internal/preview"
	"github.com/jonathan/cv-builder/internal/rendering"
)

const (
	// boxWidth is the minimum width for formatted output boxes
	boxWidth = 60
	// maxBoxWidth is where boxes stop growing and long lines wrap instead
	maxBoxWidth = 100
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. The box grows to
// fit its longest line up to maxBoxWidth; longer lines wrap, nothing is cut.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(content, "\n")
	width := boxWidth
	for _, line := range append(lines, title) {
		width = max(width, min(utf8.RuneCountInString(line)+4, maxBoxWidth))
	}
	inner := width - 4

	border := strings.Repeat("─", width-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	for _, row := range wrap(title, inner) {
		fmt.Fprintf(p.out, "│ %s │\n", pad(row, inner))
	}
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range lines {
		for _, row := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(row, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads line to width runes.
func pad(line string, width int) string {
	return line + strings.Repeat(" ", max(width-utf8.RuneCountInString(line), 0))
}

// wrap breaks line at spaces so no row exceeds width runes. Continuation rows
// keep the line's indent plus two spaces. A word longer than a row is split.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	body := strings.TrimLeft(line, " ")
	lead := line[:len(line)-len(body)]
	if len(lead) > width/2 {
		lead = strings.Repeat(" ", width/2)
	}
	indent := lead + "  "
	if len(indent) > width/2 {
		indent = strings.Repeat(" ", width/2)
	}

	var rows []string
	cur, curLen, started := lead, utf8.RuneCountInString(lead), false
	for _, word := range strings.Fields(body) {
		wordLen := utf8.RuneCountInString(word)
		if started && curLen+1+wordLen > width {
			rows = append(rows, cur)
			cur, curLen, started = indent, len(indent), false
		}
		if started {
			cur += " "
			curLen++
		}
		for curLen+wordLen > width {
			room := width - curLen
			r := []rune(word)
			rows = append(rows, cur+string(r[:room]))
			word, wordLen = string(r[room:]), len(r)-room
			cur, curLen = indent, len(indent)
		}
		cur += word
		curLen += wordLen
		started = true
	}
	return append(rows, cur)
}

// PrintPreview outputs the CV preview followed by statistics and the
// completion checklist.
func (p *Printer) PrintPreview(pv *preview.Preview) {
	if pv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(pv.Name + "\n")
	if pv.Title != "" {
		sb.WriteString(pv.Title + "\n")
	}
	if len(pv.Contact) > 0 {
		sb.WriteString(strings.Join(pv.Contact, " | ") + "\n")
	}
	if len(pv.Online) > 0 {
		sb.WriteString(strings.Join(pv.Online, " | ") + "\n")
	}
	if pv.Summary != "" {
		sb.WriteString("\nProfessional Summary:\n")
		sb.WriteString(pv.Summary + "\n")
	}

	if len(pv.Skills) > 0 {
		sb.WriteString("\nTechnical Skills:\n")
		for _, s := range pv.Skills {
			more := ""
			if s.More {
				more = "..."
			}
			sb.WriteString(fmt.Sprintf("  %s: %s%s\n", s.Category, strings.Join(s.Skills, ", "), more))
		}
	}
	writeList(&sb, "Education", pv.Education)
	writeList(&sb, "Work Experience", pv.Experience)
	writeList(&sb, "Projects", pv.Projects)
	writeList(&sb, "Publications", pv.Publications)

	p.printBox("CV PREVIEW", strings.TrimSuffix(sb.String(), "\n"))

	sb.Reset()
	for _, c := range pv.Stats.Counts {
		sb.WriteString(fmt.Sprintf("%-16s %d\n", c.Section+":", c.Count))
	}
	if pv.Stats.LatestPublicationYear > 0 {
		sb.WriteString(fmt.Sprintf("Latest publication:      %d\n", pv.Stats.LatestPublicationYear))
	}
	sb.WriteString(fmt.Sprintf("Most common publication: %s", pv.Stats.MostCommonPublicationType))
	p.printBox("CV STATS", sb.String())

	sb.Reset()
	for _, item := range pv.Checklist {
		mark := "[ ]"
		if item.Done {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, item.Item))
	}
	sb.WriteString(fmt.Sprintf("\nCV Completion: %d/%d sections (%.1f%%)",
		pv.Completion.Done, pv.Completion.Total, pv.Completion.Percent))
	p.printBox("COMPLETION CHECKLIST", sb.String())
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + title + ":\n")
	for _, it := range items {
		sb.WriteString("  • " + it + "\n")
	}
}

// PrintTemplates outputs the available export templates.
func (p *Printer) PrintTemplates(templates []rendering.Template) {
	if len(templates) == 0 {
		return
	}

	var sb strings.Builder
	for i, t := range templates {
		sb.WriteString(t.Name)
		if t.Name == rendering.DefaultTemplate {
			sb.WriteString(" (default)")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", t.Description))
		sb.WriteString(fmt.Sprintf("  title %s  section %s  border %s", t.Palette.Title, t.Palette.Section, t.Palette.Border))
		if i < len(templates)-1 {
			sb.WriteString("\n\n")
		}
	}
	p.printBox("EXPORT TEMPLATES", sb.String())
}

// PrintProblems outputs every validation message.
func (p *Printer) PrintProblems(title string, messages []string) {
	if len(messages) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problem(s):\n\n", len(messages)))
	for _, m := range messages {
		sb.WriteString(fmt.Sprintf("✗ %s\n", m))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
