package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBackground = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	placeholderBanner     = color.RGBA{R: 0x2b, G: 0x3b, B: 0x55, A: 0xff}
	placeholderText       = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
)

// renderPlaceholder draws a labelled stand-in image for a page that
// could not be captured, so the run still produces visual evidence.
func renderPlaceholder(req Request, at time.Time, reason string) ([]byte, error) {
	width, height := req.Width, req.Height
	if width <= 0 {
		width = 1920
	}
	if height <= 0 {
		height = 1080
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)
	banner := image.Rect(0, height/2-60, width, height/2+60)
	draw.Draw(img, banner, image.NewUniform(placeholderBanner), image.Point{}, draw.Src)

	lines := []string{
		"SCREENSHOT PLACEHOLDER",
		req.Description,
		req.URL,
		at.UTC().Format(time.RFC3339),
		reason,
	}
	y := height/2 - 30
	for _, line := range lines {
		if line == "" {
			continue
		}
		drawLine(img, width/2, y, line)
		y += basicfont.Face7x13.Height + 6
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLine centers one line of text horizontally around x.
func drawLine(img *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderText),
		Face: face,
		Dot:  fixed.P(x-width/2, y),
	}
	drawer.DrawString(text)
}
