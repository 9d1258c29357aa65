package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/camilogonzalez/resumeia/internal/types"
)

// RenderTimeout bounds a single PDF print, browser startup included.
const RenderTimeout = 60 * time.Second

// A4 paper size in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// Render renders CV content to a PDF document. Requires Chrome/Chromium on
// the system.
func Render(ctx context.Context, cv *types.CVContent, templateName string) ([]byte, error) {
	html, err := RenderHTML(cv, templateName)
	if err != nil {
		return nil, err
	}
	return printHTML(ctx, html)
}

// printHTML loads an HTML document in a headless browser and prints it.
func printHTML(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, RenderTimeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("PDF rendering failed: %w", err)
	}

	return pdf, nil
}
