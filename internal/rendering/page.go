package rendering

// Page format names accepted from callers.
const (
	FormatA4     = "A4"
	FormatLetter = "Letter"
)

// Margin is the fixed page margin on all four sides, 0.75in in points.
const Margin = 54.0

// PageSetup is the resolved paper size in points.
type PageSetup struct {
	Format string
	Width  float64
	Height float64
	Margin float64
}

// ResolvePage maps a format name to its paper size. Only "A4" selects A4; every
// other value, including "", selects Letter.
func ResolvePage(format string) PageSetup {
	if format == FormatA4 {
		return PageSetup{Format: FormatA4, Width: 595.28, Height: 841.89, Margin: Margin}
	}
	return PageSetup{Format: FormatLetter, Width: 612, Height: 792, Margin: Margin}
}

// ContentWidth is the width between the side margins.
func (p PageSetup) ContentWidth() float64 { return p.Width - 2*p.Margin }

// WidthInches and HeightInches give the paper size for engines that take inches.
func (p PageSetup) WidthInches() float64  { return p.Width / 72 }
func (p PageSetup) HeightInches() float64 { return p.Height / 72 }
