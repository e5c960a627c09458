// Package rendering turns a CV document into a styled, paginated PDF.
package rendering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonathan/cv-builder/internal/types"
)

// MIMEType of every rendered document.
const MIMEType = "application/pdf"

// Renderer composes a CV and hands the layout to an engine.
type Renderer struct {
	engine Engine
	logger *slog.Logger
}

// NewRenderer returns a renderer over engine. A nil logger uses slog.Default.
func NewRenderer(engine Engine, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{engine: engine, logger: logger}
}

// NewEngine builds an engine by name. Unknown names are an error.
func NewEngine(name string, compress bool, chromePath string, timeout time.Duration) (Engine, error) {
	switch name {
	case "", EngineNative:
		return &NativeEngine{Compress: compress}, nil
	case EngineBrowser:
		e := NewBrowserEngine(chromePath)
		if timeout > 0 {
			e.Timeout = timeout
		}
		return e, nil
	}
	return nil, fmt.Errorf("unknown render engine %q", name)
}

// Engine returns the engine in use.
func (r *Renderer) Engine() Engine { return r.engine }

// Render produces the PDF for cv using the named template and page format.
// Unknown templates fall back to the default and unknown formats to Letter.
// Every failure is a *RenderError; cv is never modified.
func (r *Renderer) Render(ctx context.Context, cv *types.CVDocument, template, format string) ([]byte, error) {
	doc, err := Compose(cv, template, format)
	if err != nil {
		return nil, err
	}
	if !IsKnownTemplate(template) {
		r.logger.Warn("unknown template, using default", "template", template, "default", DefaultTemplate)
	}

	start := time.Now()
	out, err := r.engine.Render(ctx, doc)
	if err != nil {
		var re *RenderError
		if !errors.As(err, &re) {
			err = &RenderError{Message: "failed to render document", Cause: err}
		}
		r.logger.Error("render failed", "engine", r.engine.Name(), "template", doc.Template.Name, "error", err)
		return nil, err
	}

	r.logger.Info("rendered document",
		"engine", r.engine.Name(),
		"template", doc.Template.Name,
		"format", doc.Page.Format,
		"blocks", len(doc.Blocks),
		"bytes", len(out),
		"duration", time.Since(start),
	)
	return out, nil
}

var defaultRenderer = NewRenderer(NewNativeEngine(), slog.New(slog.DiscardHandler))

// RenderDocument renders with the native engine. Output is byte-identical for
// identical input.
func RenderDocument(cv *types.CVDocument, template, pageFormat string) ([]byte, error) {
	return defaultRenderer.Render(context.Background(), cv, template, pageFormat)
}

// SuggestedFilename returns "<Full_Name>_CV_<Template_Name>.pdf" using the
// template that will actually be applied.
func SuggestedFilename(fullName, template string) string {
	name := strings.ReplaceAll(strings.TrimSpace(fullName), " ", "_")
	return fmt.Sprintf("%s_CV_%s.pdf", name, strings.ReplaceAll(LookupTemplate(template).Name, " ", "_"))
}
