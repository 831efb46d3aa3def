package screenshot

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// capture drives a headless browser to the URL and returns the PNG
// bytes plus the page title.
func capture(ctx context.Context, req Request, headless bool) ([]byte, string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.WindowSize(req.Width, req.Height),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var png []byte
	var title string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(req.URL),
		chromedp.Title(&title),
		chromedp.FullScreenshot(&png, 90),
	)
	if err != nil {
		return nil, "", fmt.Errorf("capture %s: %w", req.URL, err)
	}
	return png, title, nil
}
