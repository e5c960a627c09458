package rendering

import (
	"fmt"
	"strconv"
	"strings"
)

// Template names.
const (
	TemplateProfessionalBlue   = "Professional Blue"
	TemplateAcademicClassic    = "Academic Classic"
	TemplateModernMinimal      = "Modern Minimal"
	TemplateScientificResearch = "Scientific Research"

	// DefaultTemplate is used for any name not in the table.
	DefaultTemplate = TemplateProfessionalBlue
)

// Palette holds the four template colors as #rrggbb.
type Palette struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Section  string `json:"section"`
	Border   string `json:"border"`
}

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes one paragraph style. Sizes and spacing are in points.
type TextStyle struct {
	FontSize      float64
	Bold          bool
	Align         Align
	Color         string
	SpaceBefore   float64
	SpaceAfter    float64
	BorderWidth   float64
	BorderColor   string
	BorderPadding float64
}

// Leading is the line height for the style.
func (s TextStyle) Leading() float64 { return s.FontSize * 1.2 }

// Styles is the set of paragraph styles a template derives from its palette.
type Styles struct {
	Title    TextStyle
	Subtitle TextStyle
	Section  TextStyle
	Body     TextStyle
	Contact  TextStyle
}

// Template is a named color and typography bundle.
type Template struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Palette     Palette `json:"palette"`
	Styles      Styles  `json:"-"`
}

const textBlack = "#000000"

var templateOrder = []string{
	TemplateProfessionalBlue,
	TemplateAcademicClassic,
	TemplateModernMinimal,
	TemplateScientificResearch,
}

var templateTable = map[string]Template{
	TemplateProfessionalBlue: newTemplate(TemplateProfessionalBlue,
		"Corporate/Industry focused with blue accents",
		Palette{Title: "#1e3a8a", Subtitle: "#1e40af", Section: "#1e40af", Border: "#3b82f6"}, false),
	TemplateAcademicClassic: newTemplate(TemplateAcademicClassic,
		"Traditional academic format with conservative styling",
		Palette{Title: "#0f172a", Subtitle: "#374151", Section: "#374151", Border: "#6b7280"}, false),
	TemplateModernMinimal: newTemplate(TemplateModernMinimal,
		"Clean, contemporary design with minimal borders",
		Palette{Title: "#111827", Subtitle: "#4b5563", Section: "#6b7280", Border: "#d1d5db"}, true),
	TemplateScientificResearch: newTemplate(TemplateScientificResearch,
		"Research-focused with green accents",
		Palette{Title: "#065f46", Subtitle: "#047857", Section: "#059669", Border: "#10b981"}, false),
}

func newTemplate(name, description string, p Palette, minimal bool) Template {
	t := Template{
		Name:        name,
		Description: description,
		Palette:     p,
		Styles: Styles{
			Title:    TextStyle{FontSize: 24, Bold: true, Align: AlignCenter, Color: p.Title, SpaceAfter: 6},
			Subtitle: TextStyle{FontSize: 14, Bold: true, Align: AlignCenter, Color: p.Subtitle, SpaceAfter: 12},
			Section: TextStyle{
				FontSize: 14, Bold: true, Color: p.Section, SpaceBefore: 12, SpaceAfter: 6,
				BorderWidth: 1, BorderColor: p.Border, BorderPadding: 3,
			},
			Body:    TextStyle{FontSize: 10, Color: textBlack, SpaceBefore: 3, SpaceAfter: 3},
			Contact: TextStyle{FontSize: 9, Color: textBlack},
		},
	}
	if minimal {
		t.Styles.Title.FontSize = 22
		t.Styles.Section.FontSize = 12
		t.Styles.Section.BorderWidth = 0
		t.Styles.Section.BorderColor = ""
		t.Styles.Section.BorderPadding = 0
	}
	return t
}

// LookupTemplate returns the named template, or the default template for an
// unknown name. It never fails.
func LookupTemplate(name string) Template {
	if t, ok := templateTable[name]; ok {
		return t
	}
	return templateTable[DefaultTemplate]
}

// IsKnownTemplate reports whether name is in the table.
func IsKnownTemplate(name string) bool {
	_, ok := templateTable[name]
	return ok
}

// Templates lists every template in display order.
func Templates() []Template {
	out := make([]Template, 0, len(templateOrder))
	for _, name := range templateOrder {
		out = append(out, templateTable[name])
	}
	return out
}

// parseHexColor converts #rrggbb into 0-255 components.
func parseHexColor(hex string) (r, g, b int, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}
