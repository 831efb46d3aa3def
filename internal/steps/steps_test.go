package steps

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"bddkit/internal/duckdb"
	"bddkit/internal/gherkin"
	"bddkit/internal/mockapi"
	"bddkit/internal/screenshot"
	"bddkit/internal/testutil"
)

// fakeScreenshotter records requests without touching a browser.
type fakeScreenshotter struct {
	requests []screenshot.Request
}

func (f *fakeScreenshotter) Take(_ context.Context, req screenshot.Request) (screenshot.Artifact, error) {
	f.requests = append(f.requests, req)
	return screenshot.Artifact{Path: "fake.png", Kind: screenshot.KindPlaceholder}, nil
}

// testEnv starts a mock API on an ephemeral port and seeds an
// in-memory database for the suite.
func testEnv(t *testing.T) (*Env, *fakeScreenshotter) {
	t.Helper()
	db, err := duckdb.Open("")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := duckdb.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	srv, err := mockapi.NewServer("127.0.0.1:0", zap.NewNop())
	if err != nil {
		t.Fatalf("mock api: %v", err)
	}
	stop := srv.Start(context.Background())
	t.Cleanup(func() { _ = stop() })
	testutil.WaitForHTTP(t, srv.BaseURL(), "/health", 2*time.Second)

	shots := &fakeScreenshotter{}
	return &Env{
		DB:          db,
		BaseURL:     srv.BaseURL(),
		Screenshots: shots,
	}, shots
}

// writeFeature generates a skeleton for the requirement and saves it.
func writeFeature(t *testing.T, dir, requirement string, category gherkin.Category) string {
	t.Helper()
	doc, err := gherkin.Generate(requirement, category)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	path, err := gherkin.Save(doc, dir, time.Now())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	return path
}

func runSuite(t *testing.T, env *Env, featurePaths []string) {
	t.Helper()
	suite := godog.TestSuite{
		Name:                "steps",
		ScenarioInitializer: Initialize(env),
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     featurePaths,
			Output:    io.Discard,
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

func TestDatabaseScenarios(t *testing.T) {
	env, _ := testEnv(t)
	dir := t.TempDir()
	path := writeFeature(t, dir, "Revenue for Client A must be positive", gherkin.CategoryDatabase)
	runSuite(t, env, []string{path})
}

func TestAPIScenarios(t *testing.T) {
	env, _ := testEnv(t)
	dir := t.TempDir()
	path := writeFeature(t, dir, "The API must return valid JSON responses", gherkin.CategoryAPI)
	runSuite(t, env, []string{path})
}

func TestUIScenarios(t *testing.T) {
	env, shots := testEnv(t)
	dir := t.TempDir()
	path := writeFeature(t, dir, "The dashboard must show revenue for Client A", gherkin.CategoryUI)
	runSuite(t, env, []string{path})

	if len(shots.requests) != 1 {
		t.Fatalf("expected 1 screenshot request, got %d", len(shots.requests))
	}
	if filepath.Base(shots.requests[0].URL) != "dashboard" {
		t.Fatalf("unexpected screenshot URL %q", shots.requests[0].URL)
	}
}
