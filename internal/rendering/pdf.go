package rendering

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Engine lays a composed Document out as PDF bytes. Pagination is the engine's
// job; composition has already fixed content and order.
type Engine interface {
	Name() string
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// Engine names accepted by configuration and the CLI.
const (
	EngineNative  = "native"
	EngineBrowser = "browser"
)

// fixedStamp is written as both creation and modification date so identical
// input yields identical bytes.
var fixedStamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const fontFamily = "Helvetica"

// Contact table column widths: label, value, label, value.
var contactColumns = [4]float64{72, 144, 72, 144}

// NativeEngine renders with go-pdf/fpdf using the core Helvetica family.
type NativeEngine struct {
	// Compress enables stream compression. Uncompressed output is easier to
	// inspect.
	Compress bool
}

// NewNativeEngine returns an engine with compression on.
func NewNativeEngine() *NativeEngine {
	return &NativeEngine{Compress: true}
}

// Name implements Engine.
func (e *NativeEngine) Name() string { return EngineNative }

// Render implements Engine. Panics inside the layout library are returned as
// *RenderError.
func (e *NativeEngine) Render(_ context.Context, doc *Document) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &RenderError{Message: "layout engine failed", Cause: fmt.Errorf("%v", r)}
		}
	}()

	w := newPDFWriter(doc, e.Compress)
	for _, b := range doc.Blocks {
		w.block(b)
	}
	return w.output()
}

type pdfWriter struct {
	pdf    *fpdf.Fpdf
	doc    *Document
	styles Styles
	tr     func(string) string
}

func newPDFWriter(doc *Document, compress bool) *pdfWriter {
	size := "Letter"
	if doc.Page.Format == FormatA4 {
		size = "A4"
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        size,
	})
	m := doc.Page.Margin
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(true, m)
	pdf.SetCompression(compress)
	pdf.SetCreationDate(fixedStamp)
	pdf.SetModificationDate(fixedStamp)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("cv_builder", false)
	pdf.SetTitle(titleOf(doc), true)
	pdf.AddPage()

	return &pdfWriter{
		pdf:    pdf,
		doc:    doc,
		styles: doc.Template.Styles,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func titleOf(doc *Document) string {
	for _, b := range doc.Blocks {
		if t, ok := b.(TitleBlock); ok {
			return t.Text + " - CV"
		}
	}
	return "CV"
}

func (w *pdfWriter) output() ([]byte, error) {
	if err := w.pdf.Error(); err != nil {
		return nil, &RenderError{Message: "failed to lay out document", Cause: err}
	}
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

func (w *pdfWriter) block(b Block) {
	switch v := b.(type) {
	case TitleBlock:
		w.centered(v.Text, w.styles.Title)
	case SubtitleBlock:
		w.centered(v.Text, w.styles.Subtitle)
	case HeadingBlock:
		w.heading(v.Text)
	case ParagraphBlock:
		w.paragraph(v)
	case ContactTableBlock:
		w.contactTable(v)
	case SpacerBlock:
		w.pdf.Ln(v.Height)
	}
}

func (w *pdfWriter) setStyle(s TextStyle, fontStyle string) {
	w.pdf.SetFont(fontFamily, fontStyle, s.FontSize)
	w.setColor(s.Color, w.pdf.SetTextColor)
}

func (w *pdfWriter) setColor(hex string, set func(r, g, b int)) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		w.pdf.SetError(err)
		return
	}
	set(r, g, b)
}

func (w *pdfWriter) centered(text string, s TextStyle) {
	w.space(s.SpaceBefore)
	w.setStyle(s, boldStyle(s.Bold))
	w.pdf.SetX(w.doc.Page.Margin)
	w.pdf.MultiCell(0, s.Leading(), w.tr(SanitizeText(text)), "", "C", false)
	w.space(s.SpaceAfter)
}

func (w *pdfWriter) heading(text string) {
	s := w.styles.Section
	height := s.Leading() + 2*s.BorderPadding
	// keep the heading with at least one body line
	w.ensureRoom(s.SpaceBefore + height + s.SpaceAfter + w.styles.Body.Leading())

	w.space(s.SpaceBefore)
	w.setStyle(s, boldStyle(s.Bold))
	border := ""
	if s.BorderWidth > 0 {
		border = "1"
		w.pdf.SetLineWidth(s.BorderWidth)
		w.setColor(s.BorderColor, w.pdf.SetDrawColor)
	}
	margin := w.pdf.GetCellMargin()
	if s.BorderPadding > 0 {
		w.pdf.SetCellMargin(s.BorderPadding)
	}
	w.pdf.SetX(w.doc.Page.Margin)
	w.pdf.CellFormat(w.doc.Page.ContentWidth(), height, w.tr(SanitizeText(text)), border, 1, "L", false, 0, "")
	w.pdf.SetCellMargin(margin)
	w.space(s.SpaceAfter)
}

func (w *pdfWriter) paragraph(p ParagraphBlock) {
	s := w.styles.Body
	w.space(s.SpaceBefore)
	w.pdf.SetX(w.doc.Page.Margin)
	for _, r := range p.Runs {
		w.setStyle(s, runStyle(r))
		w.pdf.Write(s.Leading(), w.tr(SanitizeText(r.Text)))
	}
	w.pdf.Ln(s.Leading())
	w.space(s.SpaceAfter)
}

// contactTable draws rows of four cells; long values wrap within their column.
func (w *pdfWriter) contactTable(t ContactTableBlock) {
	s := w.styles.Contact
	leading := s.Leading()
	left := w.doc.Page.Margin

	for _, row := range t.Rows {
		cells := [4]string{row.Left.Label, row.Left.Value, row.Right.Label, row.Right.Value}
		var lines [4][]string
		rowLines := 1
		for i, text := range cells {
			w.setStyle(s, contactCellStyle(i))
			lines[i] = w.pdf.SplitText(SanitizeText(text), contactColumns[i])
			if len(lines[i]) > rowLines {
				rowLines = len(lines[i])
			}
		}
		w.ensureRoom(float64(rowLines) * leading)

		y := w.pdf.GetY()
		x := left
		for i := range cells {
			w.setStyle(s, contactCellStyle(i))
			for j, line := range lines[i] {
				w.pdf.SetXY(x, y+float64(j)*leading)
				w.pdf.CellFormat(contactColumns[i], leading, w.tr(line), "", 0, "L", false, 0, "")
			}
			x += contactColumns[i]
		}
		w.pdf.SetXY(left, y+float64(rowLines)*leading)
	}
}

// space adds vertical space, skipping it at the top of a page.
func (w *pdfWriter) space(h float64) {
	if h <= 0 {
		return
	}
	if w.pdf.GetY() <= w.doc.Page.Margin {
		return
	}
	w.pdf.Ln(h)
}

// ensureRoom starts a new page when less than h points remain.
func (w *pdfWriter) ensureRoom(h float64) {
	if w.pdf.GetY()+h > w.doc.Page.Height-w.doc.Page.Margin {
		w.pdf.AddPage()
	}
}

func boldStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}

func runStyle(r Run) string {
	switch {
	case r.Bold && r.Italic:
		return "BI"
	case r.Bold:
		return "B"
	case r.Italic:
		return "I"
	}
	return ""
}

// contactCellStyle bolds the label columns.
func contactCellStyle(col int) string {
	if col%2 == 0 {
		return "B"
	}
	return ""
}
