package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"sync"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var (
	htmlOnce sync.Once
	htmlTmpl *template.Template
	htmlErr  error
)

type htmlBlock struct {
	Kind   string
	Text   string
	Runs   []Run
	Rows   []ContactRow
	Height float64
}

type htmlView struct {
	Title        string
	PageWidth    float64
	PageHeight   float64
	MarginInches float64
	Styles       Styles
	Blocks       []htmlBlock
}

func loadHTMLTemplate() (*template.Template, error) {
	htmlOnce.Do(func() {
		htmlTmpl, htmlErr = template.ParseFS(templateFiles, "templates/cv.html.tmpl")
	})
	if htmlErr != nil {
		return nil, &TemplateError{Message: "failed to parse HTML template", Cause: htmlErr}
	}
	return htmlTmpl, nil
}

// RenderHTML writes the document as a standalone HTML page styled by its
// template. The browser engine prints this page.
func RenderHTML(doc *Document) ([]byte, error) {
	tmpl, err := loadHTMLTemplate()
	if err != nil {
		return nil, err
	}

	view := htmlView{
		Title:        titleOf(doc),
		PageWidth:    doc.Page.WidthInches(),
		PageHeight:   doc.Page.HeightInches(),
		MarginInches: doc.Page.Margin / 72,
		Styles:       doc.Template.Styles,
		Blocks:       make([]htmlBlock, 0, len(doc.Blocks)),
	}
	for _, b := range doc.Blocks {
		hb := htmlBlock{Kind: b.blockKind()}
		switch v := b.(type) {
		case TitleBlock:
			hb.Text = v.Text
		case SubtitleBlock:
			hb.Text = v.Text
		case HeadingBlock:
			hb.Text = v.Text
		case ParagraphBlock:
			hb.Runs = v.Runs
		case ContactTableBlock:
			hb.Rows = v.Rows
		case SpacerBlock:
			hb.Height = v.Height
		}
		view.Blocks = append(view.Blocks, hb)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, &TemplateError{Message: "failed to execute HTML template", Cause: err}
	}
	return buf.Bytes(), nil
}
