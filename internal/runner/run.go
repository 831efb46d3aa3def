package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"bddkit/internal/config"
	"bddkit/internal/duckdb"
	"bddkit/internal/mockapi"
	"bddkit/internal/report"
	"bddkit/internal/results"
	"bddkit/internal/screenshot"
	"bddkit/internal/steps"
)

// Params configures one validation run.
type Params struct {
	Cfg          config.Config
	Root         string
	FeaturePaths []string
	Observer     Observer
	Screenshots  steps.Screenshotter
	Log          *zap.Logger

	now func() time.Time
}

// Outcome collects everything one run produced.
type Outcome struct {
	RunID       string
	Run         results.RunResults
	Features    []CukeFeature
	ReportPaths report.Paths
	CukePath    string
}

// Run executes the feature files against the mock environment and
// writes the report artifacts. The in-process environment is torn down
// before Run returns.
func Run(ctx context.Context, p Params) (Outcome, error) {
	if p.Observer == nil {
		p.Observer = NopObserver{}
	}
	if p.Log == nil {
		p.Log = zap.NewNop()
	}
	if p.now == nil {
		p.now = time.Now
	}

	runID, err := NewRunID()
	if err != nil {
		return Outcome{}, err
	}

	featureEntries := p.FeaturePaths
	if len(featureEntries) == 0 {
		featureEntries = []string{p.Cfg.Dirs.Features}
	}
	featurePaths, err := ExpandFeaturePaths(p.Root, featureEntries)
	if err != nil {
		return Outcome{}, err
	}
	if len(featurePaths) == 0 {
		return Outcome{}, fmt.Errorf("no feature files found")
	}

	env, cleanup, err := buildEnv(ctx, p)
	if err != nil {
		return Outcome{}, err
	}
	defer cleanup()

	p.Observer.RunStarted(runID, featurePaths)
	p.Log.Info("run started",
		zap.String("run_id", runID),
		zap.Int("features", len(featurePaths)))

	var output bytes.Buffer
	suite := godog.TestSuite{
		Name:                "bddkit",
		ScenarioInitializer: p.observedInitializer(env),
		Options: &godog.Options{
			Format:    "cucumber",
			Paths:     featurePaths,
			Output:    &output,
			Randomize: 0,
		},
	}
	// Non-zero status means scenarios failed; those failures land in
	// the report rather than aborting the run.
	_ = suite.Run()

	features, err := ParseCukeJSON(output.Bytes())
	if err != nil {
		return Outcome{}, err
	}

	finishedAt := p.now()
	cukePath, err := saveCukeJSON(config.ResolveDir(p.Root, p.Cfg.Dirs.Reports), output.Bytes(), finishedAt)
	if err != nil {
		return Outcome{}, err
	}

	run := results.NewRunResults(runID, finishedAt, scenarioChecks(features, finishedAt))
	writer := report.NewWriter(config.ResolveDir(p.Root, p.Cfg.Dirs.Reports), p.Cfg.Report.IndexLimit)
	paths, err := writer.Write(run, finishedAt)
	if err != nil {
		return Outcome{}, err
	}

	p.Observer.RunFinished(run.Summary)
	p.Log.Info("run finished",
		zap.String("run_id", runID),
		zap.Int("total", run.Summary.Total),
		zap.Int("failed", run.Summary.Failed))

	return Outcome{
		RunID:       runID,
		Run:         run,
		Features:    features,
		ReportPaths: paths,
		CukePath:    cukePath,
	}, nil
}

// buildEnv seeds the database, starts the mock API, and wires the step
// dependencies. The returned cleanup stops the server and closes the
// database.
func buildEnv(ctx context.Context, p Params) (*steps.Env, func(), error) {
	db, err := duckdb.Open(databasePath(p))
	if err != nil {
		return nil, nil, err
	}
	if err := duckdb.Seed(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	srv, err := mockapi.NewServer(p.Cfg.API.Addr(), p.Log)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	stop := srv.Start(ctx)

	shots := p.Screenshots
	if shots == nil {
		shots = screenshot.NewGenerator(
			config.ResolveDir(p.Root, p.Cfg.Dirs.Screenshots),
			p.Cfg.Browser.Headless,
			time.Duration(p.Cfg.Browser.TimeoutSeconds)*time.Second,
			p.Log,
		)
	}

	env := &steps.Env{
		DB:          db,
		BaseURL:     srv.BaseURL(),
		Screenshots: shots,
		Log:         p.Log,
	}
	cleanup := func() {
		_ = stop()
		_ = db.Close()
	}
	return env, cleanup, nil
}

// databasePath picks the on-disk demo database, or in-memory when no
// data directory is configured.
func databasePath(p Params) string {
	dir := config.ResolveDir(p.Root, p.Cfg.Dirs.Data)
	if dir == "" {
		return ""
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return filepath.Join(dir, "demo.duckdb")
}

// observedInitializer wraps the step initializer with observer hooks.
func (p Params) observedInitializer(env *steps.Env) func(*godog.ScenarioContext) {
	base := steps.Initialize(env)
	return func(sc *godog.ScenarioContext) {
		base(sc)
		sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
			p.Observer.ScenarioStarted(ScenarioEvent{
				Name:      scenario.Name,
				URI:       scenario.Uri,
				EmittedAt: p.now(),
			})
			return ctx, nil
		})
		sc.After(func(ctx context.Context, scenario *godog.Scenario, err error) (context.Context, error) {
			status := "passed"
			if err != nil {
				status = "failed"
			}
			p.Observer.ScenarioFinished(ScenarioEvent{
				Name:      scenario.Name,
				URI:       scenario.Uri,
				Status:    status,
				EmittedAt: p.now(),
			})
			return ctx, nil
		})
	}
}

// scenarioChecks converts parsed cucumber scenarios to check records.
func scenarioChecks(features []CukeFeature, at time.Time) []results.CheckResult {
	checks := make([]results.CheckResult, 0)
	for _, feature := range features {
		for _, element := range feature.Elements {
			passed := ScenarioPassed(element)
			detail := "all steps passed"
			if !passed {
				detail = FailureDetail(element)
				if detail == "" {
					detail = "scenario status: " + DeriveScenarioStatus(element.Steps)
				}
			}
			name := fmt.Sprintf("%s: %s", feature.Name, element.Name)
			checks = append(checks, results.NewCheckResult(name, passed, detail, at))
		}
	}
	return checks
}

// saveCukeJSON keeps the raw formatter output alongside the reports.
func saveCukeJSON(dir string, payload []byte, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("cucumber_report_%s.json", at.UTC().Format("20060102_150405")))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write cucumber report: %w", err)
	}
	return path, nil
}
