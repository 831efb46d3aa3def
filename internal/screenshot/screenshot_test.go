package screenshot

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"bddkit/internal/testutil"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, _ := testGeneratorWithClock(t)
	return gen
}

func testGeneratorWithClock(t *testing.T) (*Generator, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock(time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC))
	gen := NewGenerator(t.TempDir(), true, time.Second, zap.NewNop())
	gen.now = clock.Now
	return gen, clock
}

func readMetadata(t *testing.T, path string) Metadata {
	t.Helper()
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		t.Fatalf("decode sidecar: %v", err)
	}
	return meta
}

func TestTakeRealCapture(t *testing.T) {
	gen := testGenerator(t)
	gen.capture = func(context.Context, Request, bool) ([]byte, string, error) {
		return []byte("png-bytes"), "Demo Dashboard", nil
	}

	artifact, err := gen.Take(context.Background(), Request{
		URL:         "http://127.0.0.1:8001/dashboard",
		Name:        "Dashboard View",
		Description: "dashboard after load",
		Width:       1920,
		Height:      1080,
	})
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if artifact.Kind != KindReal {
		t.Fatalf("expected real capture, got %s", artifact.Kind)
	}
	if got := filepath.Base(artifact.Path); got != "dashboard_view_20240301_123045.png" {
		t.Fatalf("unexpected filename %q", got)
	}

	meta := readMetadata(t, artifact.SidecarPath)
	if meta.Type != KindReal || meta.Title != "Demo Dashboard" || meta.Reason != "" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta.Timestamp != "2024-03-01T12:30:45Z" {
		t.Fatalf("unexpected timestamp %q", meta.Timestamp)
	}
	if meta.WindowSize.Width != 1920 || meta.WindowSize.Height != 1080 {
		t.Fatalf("unexpected window size %+v", meta.WindowSize)
	}
}

func TestTakeFallsBackToPlaceholder(t *testing.T) {
	gen := testGenerator(t)
	gen.capture = func(context.Context, Request, bool) ([]byte, string, error) {
		return nil, "", errors.New("no browser available")
	}

	artifact, err := gen.Take(context.Background(), Request{
		URL:         "http://127.0.0.1:8001/dashboard",
		Name:        "dashboard",
		Description: "dashboard after load",
		Width:       640,
		Height:      480,
	})
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if artifact.Kind != KindPlaceholder {
		t.Fatalf("expected placeholder, got %s", artifact.Kind)
	}
	if !strings.HasSuffix(artifact.Path, ".png") {
		t.Fatalf("expected png artifact, got %q", artifact.Path)
	}

	meta := readMetadata(t, artifact.SidecarPath)
	if meta.Type != KindPlaceholder || !strings.Contains(meta.Reason, "no browser available") {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}

func TestTakeFallsBackToErrorLog(t *testing.T) {
	gen := testGenerator(t)
	gen.capture = func(context.Context, Request, bool) ([]byte, string, error) {
		return nil, "", errors.New("no browser available")
	}
	gen.render = func(Request, time.Time, string) ([]byte, error) {
		return nil, errors.New("encoder broken")
	}

	artifact, err := gen.Take(context.Background(), Request{
		URL:  "http://127.0.0.1:8001/dashboard",
		Name: "dashboard",
	})
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if artifact.Kind != KindErrorLog {
		t.Fatalf("expected error log, got %s", artifact.Kind)
	}
	if !strings.HasSuffix(artifact.Path, ".txt") {
		t.Fatalf("expected txt artifact, got %q", artifact.Path)
	}
	body, err := os.ReadFile(artifact.Path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(body), "no browser available") ||
		!strings.Contains(string(body), "encoder broken") {
		t.Fatalf("log missing failure detail: %s", body)
	}

	meta := readMetadata(t, artifact.SidecarPath)
	if meta.Type != KindErrorLog {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}

func TestTakeTimestampsKeepArtifactsDistinct(t *testing.T) {
	gen, clock := testGeneratorWithClock(t)
	gen.capture = func(context.Context, Request, bool) ([]byte, string, error) {
		return []byte("png-bytes"), "Demo Dashboard", nil
	}
	req := Request{URL: "http://127.0.0.1:8001/dashboard", Name: "dashboard"}

	first, err := gen.Take(context.Background(), req)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	clock.Advance(time.Second)
	second, err := gen.Take(context.Background(), req)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if first.Path == second.Path {
		t.Fatalf("expected distinct artifact paths, both %q", first.Path)
	}
	if first.SidecarPath == second.SidecarPath {
		t.Fatalf("expected distinct sidecar paths, both %q", first.SidecarPath)
	}
}

func TestRenderPlaceholderProducesPNG(t *testing.T) {
	body, err := renderPlaceholder(Request{
		URL:         "http://127.0.0.1:8001/dashboard",
		Description: "dashboard",
		Width:       320,
		Height:      240,
	}, time.Now(), "offline")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(body) < 8 || string(body[1:4]) != "PNG" {
		t.Fatalf("expected PNG signature, got %d bytes", len(body))
	}
}

func TestSanitizeName(t *testing.T) {
	if got := sanitizeName(`Client "A" / Dashboard`); got != "client_a___dashboard" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
	if got := sanitizeName("  "); got != "screenshot" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
