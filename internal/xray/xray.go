// Package xray submits execution results to a test-management backend.
// Only a mock implementation exists; it fabricates issue keys locally
// while keeping the shape of a real upload.
package xray

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bddkit/internal/runner"
)

// Client uploads cucumber results and returns the created execution.
type Client interface {
	SubmitResults(ctx context.Context, features []runner.CukeFeature) (ExecutionReport, error)
}

// TestIssue is one scenario mapped to a tracker issue.
type TestIssue struct {
	Key      string `json:"key"`
	Summary  string `json:"summary"`
	Status   string `json:"status"`
	Feature  string `json:"feature"`
	Scenario string `json:"scenario"`
}

// Statistics summarizes an execution upload.
type Statistics struct {
	TotalTests  int     `json:"total_tests"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// ExecutionReport is the response for one submission.
type ExecutionReport struct {
	RequestID        string      `json:"request_id"`
	TestExecutionKey string      `json:"test_execution_key"`
	TestPlanKey      string      `json:"test_plan_key"`
	ExecutionURL     string      `json:"execution_url"`
	UploadTimestamp  string      `json:"upload_timestamp"`
	Statistics       Statistics  `json:"statistics"`
	TestIssues       []TestIssue `json:"test_issues"`
}

// MockClient fabricates execution reports without any network calls.
type MockClient struct {
	BaseURL    string
	ProjectKey string
	Log        *zap.Logger

	now     func() time.Time
	randInt func(n int) int
}

// NewMockClient builds the mock submission client.
func NewMockClient(baseURL, projectKey string, log *zap.Logger) *MockClient {
	if log == nil {
		log = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &MockClient{
		BaseURL:    baseURL,
		ProjectKey: projectKey,
		Log:        log,
		now:        time.Now,
		randInt:    rng.Intn,
	}
}

// SubmitResults converts parsed cucumber features into an execution
// report. A scenario counts as passed only when every step passed.
func (c *MockClient) SubmitResults(ctx context.Context, features []runner.CukeFeature) (ExecutionReport, error) {
	if err := ctx.Err(); err != nil {
		return ExecutionReport{}, err
	}
	if len(features) == 0 {
		return ExecutionReport{}, fmt.Errorf("xray: no features to submit")
	}

	executionKey := c.issueKey()
	report := ExecutionReport{
		RequestID:        uuid.NewString(),
		TestExecutionKey: executionKey,
		TestPlanKey:      c.issueKey(),
		ExecutionURL:     fmt.Sprintf("%s/browse/%s", c.BaseURL, executionKey),
		UploadTimestamp:  c.now().UTC().Format(time.RFC3339),
	}

	for _, feature := range features {
		for _, element := range feature.Elements {
			status := "FAILED"
			if runner.ScenarioPassed(element) {
				status = "PASSED"
				report.Statistics.Passed++
			} else {
				report.Statistics.Failed++
			}
			report.Statistics.TotalTests++
			report.TestIssues = append(report.TestIssues, TestIssue{
				Key:      c.issueKey(),
				Summary:  element.Name,
				Status:   status,
				Feature:  feature.Name,
				Scenario: element.Name,
			})
		}
	}
	if report.Statistics.TotalTests > 0 {
		report.Statistics.SuccessRate =
			float64(report.Statistics.Passed) / float64(report.Statistics.TotalTests) * 100
	}

	c.Log.Info("submitted execution results",
		zap.String("execution", report.TestExecutionKey),
		zap.Int("tests", report.Statistics.TotalTests),
		zap.Int("failed", report.Statistics.Failed))
	return report, nil
}

// issueKey fabricates a tracker key in the configured project.
func (c *MockClient) issueKey() string {
	return fmt.Sprintf("%s-%d", c.ProjectKey, 1000+c.randInt(9000))
}
