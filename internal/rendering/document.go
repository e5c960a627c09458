package rendering

// Document is the engine-neutral layout produced by composition: page setup,
// the resolved template, and a linear list of blocks. Engines paginate it.
type Document struct {
	Page     PageSetup
	Template Template
	Blocks   []Block
}

// Block is one unit of the document body.
type Block interface {
	blockKind() string
}

// Run is a span of text inside a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// TitleBlock is the document title, the person's name.
type TitleBlock struct{ Text string }

// SubtitleBlock is the professional title under the name.
type SubtitleBlock struct{ Text string }

// HeadingBlock opens a section.
type HeadingBlock struct{ Text string }

// ParagraphBlock is one body line made of styled runs.
type ParagraphBlock struct{ Runs []Run }

// ContactCell is one label/value pair of the contact table.
type ContactCell struct {
	Label string
	Value string
}

// ContactTableBlock lays contact pairs out in two label/value column pairs.
// Right may be empty on the last row.
type ContactTableBlock struct {
	Rows []ContactRow
}

// ContactRow is one row of the contact table.
type ContactRow struct {
	Left  ContactCell
	Right ContactCell
}

// SpacerBlock is fixed vertical space in points.
type SpacerBlock struct{ Height float64 }

func (TitleBlock) blockKind() string        { return "title" }
func (SubtitleBlock) blockKind() string     { return "subtitle" }
func (HeadingBlock) blockKind() string      { return "heading" }
func (ParagraphBlock) blockKind() string    { return "paragraph" }
func (ContactTableBlock) blockKind() string { return "contact" }
func (SpacerBlock) blockKind() string       { return "spacer" }

// Text returns the plain text of a paragraph.
func (p ParagraphBlock) Text() string {
	var n int
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Headings returns the section headings in order, mainly for inspection.
func (d *Document) Headings() []string {
	var out []string
	for _, b := range d.Blocks {
		if h, ok := b.(HeadingBlock); ok {
			out = append(out, h.Text)
		}
	}
	return out
}
