package screenshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const fileStamp = "20060102_150405"

// Generator writes screenshot artifacts into Dir. The capture and
// render functions are swappable so tests can force a tier without a
// browser.
type Generator struct {
	Dir      string
	Headless bool
	Timeout  time.Duration
	Log      *zap.Logger

	now     func() time.Time
	capture func(ctx context.Context, req Request, headless bool) ([]byte, string, error)
	render  func(req Request, at time.Time, reason string) ([]byte, error)
}

// NewGenerator builds a generator with the real browser capture and
// placeholder renderer wired in.
func NewGenerator(dir string, headless bool, timeout time.Duration, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Generator{
		Dir:      dir,
		Headless: headless,
		Timeout:  timeout,
		Log:      log,
		now:      time.Now,
		capture:  capture,
		render:   renderPlaceholder,
	}
}

// Take produces one artifact for the request, degrading through the
// tiers: real capture, then placeholder image, then error log. The
// metadata sidecar is written in every case.
func (g *Generator) Take(ctx context.Context, req Request) (Artifact, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("create screenshot dir: %w", err)
	}
	at := g.now()
	base := fmt.Sprintf("%s_%s", sanitizeName(req.Name), at.UTC().Format(fileStamp))

	captureCtx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	png, title, captureErr := g.capture(captureCtx, req, g.Headless)
	if captureErr == nil {
		return g.write(req, at, base+".png", png, KindReal, "", title)
	}
	g.Log.Warn("browser capture failed, rendering placeholder",
		zap.String("url", req.URL), zap.Error(captureErr))

	png, renderErr := g.render(req, at, captureErr.Error())
	if renderErr == nil {
		return g.write(req, at, base+".png", png, KindPlaceholder, captureErr.Error(), "")
	}
	g.Log.Warn("placeholder render failed, writing error log",
		zap.String("url", req.URL), zap.Error(renderErr))

	log := fmt.Sprintf("screenshot failed for %s at %s\ncapture: %v\nrender: %v\n",
		req.URL, at.UTC().Format(time.RFC3339), captureErr, renderErr)
	return g.write(req, at, base+".txt", []byte(log), KindErrorLog,
		fmt.Sprintf("capture: %v; render: %v", captureErr, renderErr), "")
}

func (g *Generator) write(req Request, at time.Time, filename string, body []byte, kind Kind, reason, title string) (Artifact, error) {
	path := filepath.Join(g.Dir, filename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("write artifact: %w", err)
	}

	meta := Metadata{
		Filename:    filename,
		Timestamp:   at.UTC().Format(time.RFC3339),
		Description: req.Description,
		Type:        kind,
		Reason:      reason,
		URL:         req.URL,
		Title:       title,
		WindowSize:  Dimensions{Width: req.Width, Height: req.Height},
	}
	encoded, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("encode metadata: %w", err)
	}
	sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	if err := os.WriteFile(sidecar, encoded, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("write metadata: %w", err)
	}

	g.Log.Info("screenshot artifact written",
		zap.String("file", filename), zap.String("type", string(kind)))
	return Artifact{Path: path, SidecarPath: sidecar, Kind: kind, Reason: reason}, nil
}

// sanitizeName keeps artifact names filesystem-safe.
func sanitizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		name = "screenshot"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "\"", "", "'", "")
	return replacer.Replace(name)
}
