package rendering

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultBrowserTimeout bounds one print job, including Chrome start-up.
const DefaultBrowserTimeout = 60 * time.Second

// BrowserEngine prints the HTML rendition with headless Chrome. It needs a
// Chrome or Chromium binary on the host.
type BrowserEngine struct {
	// ChromePath overrides the browser binary. Empty uses the default lookup.
	ChromePath string
	Timeout    time.Duration
	Logger     *slog.Logger
}

// NewBrowserEngine returns a browser engine with the default timeout.
func NewBrowserEngine(chromePath string) *BrowserEngine {
	return &BrowserEngine{ChromePath: chromePath, Timeout: DefaultBrowserTimeout, Logger: slog.Default()}
}

// Name implements Engine.
func (e *BrowserEngine) Name() string { return EngineBrowser }

// Render implements Engine.
func (e *BrowserEngine) Render(ctx context.Context, doc *Document) ([]byte, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return nil, &RenderError{Message: "failed to build HTML", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(doc.Page.WidthInches()).
				WithPaperHeight(doc.Page.HeightInches()).
				WithMarginTop(doc.Page.Margin / 72).
				WithMarginBottom(doc.Page.Margin / 72).
				WithMarginLeft(doc.Page.Margin / 72).
				WithMarginRight(doc.Page.Margin / 72).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser failed to print the document", Cause: err}
	}

	if e.Logger != nil {
		e.Logger.Debug("browser render complete", "bytes", len(pdf), "duration", time.Since(start))
	}
	return normalizeDates(pdf), nil
}

var pdfDateStamp = regexp.MustCompile(`/(CreationDate|ModDate)\s*\(D:\d{14}`)

// normalizeDates overwrites the 14-digit timestamps in the info dictionary with a
// fixed value of the same length, so xref offsets stay valid.
func normalizeDates(pdf []byte) []byte {
	fixed := []byte(fixedStamp.Format("20060102150405"))
	return pdfDateStamp.ReplaceAllFunc(pdf, func(m []byte) []byte {
		out := append([]byte{}, m...)
		copy(out[len(out)-len(fixed):], fixed)
		return out
	})
}
