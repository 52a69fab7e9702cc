package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
)

// pdfTimeout bounds a whole export run, including browser startup.
const pdfTimeout = 60 * time.Second

// PDFExporter drives a headless Chrome instance to turn rendered resume
// HTML into a PDF. The zero value is usable; ChromePath overrides browser
// discovery and falls back to the CHROME_PATH environment variable.
type PDFExporter struct {
	ChromePath string
}

// PDF renders the resume with its selected template and prints it to an
// A4 PDF. The HTML is first rasterized to a full-page screenshot and the
// image is embedded into the printed page, so the PDF reproduces the
// preview pixel for pixel.
func (e *PDFExporter) PDF(ctx context.Context, d types.ResumeData) ([]byte, error) {
	html, err := render.Render(d)
	if err != nil {
		return nil, fmt.Errorf("failed to render resume for pdf export: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	chromePath := e.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfTimeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir for pdf export: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write resume html: %w", err)
	}

	// First pass: rasterize the rendered resume to a PNG.
	var shot []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture resume screenshot: %w", err)
	}

	// Second pass: embed the screenshot in a print page and print to A4.
	printPath := filepath.Join(tmpDir, "print.html")
	if err := os.WriteFile(printPath, []byte(printPage(shot)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write print page: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+printPath),
		chromedp.WaitReady("img", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPageRanges("1").
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print resume to pdf: %w", err)
	}
	return pdf, nil
}

// printPage wraps a PNG screenshot in a minimal HTML page sized for
// printing. The image is stretched to exactly one A4 page (210mm x 297mm)
// so a long resume compresses onto a single page instead of paginating.
func printPage(shot []byte) string {
	return fmt.Sprintf(
		`<!DOCTYPE html><html><head><style>@page{size:A4;margin:0}body{margin:0}img{width:210mm;height:297mm;display:block}</style></head><body><img src="data:image/png;base64,%s"></body></html>`,
		base64.StdEncoding.EncodeToString(shot),
	)
}
