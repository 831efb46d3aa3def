// Package steps implements the step definitions behind the generated
// feature skeletons: database revenue checks, mock API probes, and
// dashboard inspection with screenshot evidence.
package steps

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"bddkit/internal/checks"
	"bddkit/internal/duckdb"
	"bddkit/internal/results"
	"bddkit/internal/screenshot"
)

// Screenshotter saves page evidence during UI scenarios.
type Screenshotter interface {
	Take(ctx context.Context, req screenshot.Request) (screenshot.Artifact, error)
}

// Env carries the run-wide dependencies shared by every scenario.
type Env struct {
	DB          *sql.DB
	BaseURL     string
	Screenshots Screenshotter
	Checker     *checks.Checker
	Client      *http.Client
	Log         *zap.Logger
}

// state is the per-scenario working memory.
type state struct {
	env *Env

	clientName  string
	requirement string
	revenue     float64
	checks      []results.CheckResult

	lastStatus int
	lastBody   []byte

	dashboardHTML string
	artifact      screenshot.Artifact
}

var displayedRevenuePattern = regexp.MustCompile(`\$([0-9]+(?:\.[0-9]+)?)`)

// Initialize registers the step definitions against a scenario context.
// Each scenario gets fresh state; the Env is shared.
func Initialize(env *Env) func(*godog.ScenarioContext) {
	if env.Client == nil {
		env.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if env.Checker == nil {
		env.Checker = checks.New(nil)
	}
	if env.Log == nil {
		env.Log = zap.NewNop()
	}
	return func(ctx *godog.ScenarioContext) {
		s := &state{env: env}
		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			*s = state{env: env}
			return ctx, nil
		})

		ctx.Step(`^I have client "([^"]*)"$`, s.givenClient)
		ctx.Step(`^I have the requirement "([^"]*)"$`, s.givenRequirement)
		ctx.Step(`^I query the revenue for the client$`, s.whenQueryRevenue)
		ctx.Step(`^the revenue should be a positive number$`, s.thenRevenuePositive)
		ctx.Step(`^I run the data quality checks$`, s.whenRunDataQualityChecks)
		ctx.Step(`^every check should pass$`, s.thenEveryCheckPasses)

		ctx.Step(`^the mock API is available$`, s.givenAPIAvailable)
		ctx.Step(`^I call the mock API health endpoint$`, s.whenCallHealth)
		ctx.Step(`^I make a GET request to "([^"]*)"$`, s.whenGet)
		ctx.Step(`^the response status should be (\d+)$`, s.thenResponseStatus)
		ctx.Step(`^the response should be valid JSON$`, s.thenResponseValidJSON)
		ctx.Step(`^the response data should pass quality checks$`, s.thenResponseDataQuality)

		ctx.Step(`^I open the dashboard page$`, s.whenOpenDashboard)
		ctx.Step(`^I should see client "([^"]*)" on the dashboard$`, s.thenSeeClient)
		ctx.Step(`^the displayed revenue should be a positive number$`, s.thenDisplayedRevenuePositive)
		ctx.Step(`^a screenshot of the page is saved$`, s.thenScreenshotSaved)
	}
}

func (s *state) givenClient(name string) error {
	s.clientName = name
	return nil
}

func (s *state) givenRequirement(requirement string) error {
	s.requirement = requirement
	return nil
}

func (s *state) whenQueryRevenue() error {
	if s.clientName == "" {
		return fmt.Errorf("no client set")
	}
	revenue, err := duckdb.ClientRevenue(s.env.DB, s.clientName)
	if err != nil {
		return err
	}
	s.revenue = revenue
	return nil
}

func (s *state) thenRevenuePositive() error {
	if s.revenue <= 0 {
		return fmt.Errorf("revenue %v is not positive", s.revenue)
	}
	return nil
}

func (s *state) whenRunDataQualityChecks() error {
	tableChecks, err := s.env.Checker.ValidateClientsTable(s.env.DB, len(duckdb.SampleClients))
	if err != nil {
		return err
	}
	s.checks = tableChecks
	if s.clientName != "" {
		check, err := s.env.Checker.ValidateClientRevenue(s.env.DB, s.clientName)
		if err != nil {
			return err
		}
		s.checks = append(s.checks, check)
	}
	return nil
}

func (s *state) thenEveryCheckPasses() error {
	if len(s.checks) == 0 {
		return fmt.Errorf("no checks were run")
	}
	for _, check := range s.checks {
		if check.Status != results.StatusPass {
			return fmt.Errorf("check %q failed: %s", check.Name, check.Detail)
		}
	}
	return nil
}

func (s *state) get(path string) error {
	resp, err := s.env.Client.Get(s.env.BaseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	s.lastStatus = resp.StatusCode
	s.lastBody = body
	return nil
}

func (s *state) givenAPIAvailable() error {
	if err := s.get("/health"); err != nil {
		return err
	}
	if s.lastStatus != http.StatusOK {
		return fmt.Errorf("mock API unhealthy: status %d", s.lastStatus)
	}
	return nil
}

func (s *state) whenCallHealth() error {
	return s.get("/health")
}

func (s *state) whenGet(endpoint string) error {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return s.get(endpoint)
}

func (s *state) thenResponseStatus(expected int) error {
	if s.lastStatus != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.lastStatus)
	}
	return nil
}

func (s *state) thenResponseValidJSON() error {
	if len(s.lastBody) == 0 {
		return fmt.Errorf("response body is empty")
	}
	var decoded any
	if err := json.Unmarshal(s.lastBody, &decoded); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (s *state) thenResponseDataQuality() error {
	if len(s.lastBody) == 0 {
		return fmt.Errorf("no response captured")
	}
	qualityChecks, err := s.env.Checker.ValidateAPIData(s.lastBody)
	if err != nil {
		return err
	}
	s.checks = qualityChecks
	return s.thenEveryCheckPasses()
}

func (s *state) whenOpenDashboard() error {
	if err := s.get("/dashboard"); err != nil {
		return err
	}
	if s.lastStatus != http.StatusOK {
		return fmt.Errorf("dashboard returned status %d", s.lastStatus)
	}
	s.dashboardHTML = string(s.lastBody)
	return nil
}

func (s *state) thenSeeClient(name string) error {
	if !strings.Contains(s.dashboardHTML, name) {
		return fmt.Errorf("client %q not found on dashboard", name)
	}
	s.clientName = name
	return nil
}

func (s *state) thenDisplayedRevenuePositive() error {
	matches := displayedRevenuePattern.FindAllStringSubmatch(s.dashboardHTML, -1)
	if len(matches) == 0 {
		return fmt.Errorf("no revenue figures on dashboard")
	}
	for _, match := range matches {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return fmt.Errorf("parse revenue %q: %w", match[1], err)
		}
		if value <= 0 {
			return fmt.Errorf("displayed revenue %v is not positive", value)
		}
	}
	return nil
}

func (s *state) thenScreenshotSaved() error {
	if s.env.Screenshots == nil {
		return fmt.Errorf("no screenshot generator configured")
	}
	name := "dashboard"
	if s.clientName != "" {
		name = "dashboard_" + s.clientName
	}
	artifact, err := s.env.Screenshots.Take(context.Background(), screenshot.Request{
		URL:         s.env.BaseURL + "/dashboard",
		Name:        name,
		Description: "dashboard page during UI validation",
		Width:       1920,
		Height:      1080,
	})
	if err != nil {
		return err
	}
	s.artifact = artifact
	return nil
}
