package runner

import (
	"testing"
)

const sampleCukeJSON = `[
  {
    "uri": "features/data_validation.feature",
    "id": "data-validation",
    "name": "Data Validation",
    "elements": [
      {
        "id": "data-validation;validate-client-revenue",
        "name": "Validate client revenue",
        "line": 4,
        "type": "scenario",
        "steps": [
          {"keyword": "Given ", "name": "I have client \"Client A\"", "result": {"status": "passed"}},
          {"keyword": "When ", "name": "I query the revenue for the client", "result": {"status": "passed"}},
          {"keyword": "Then ", "name": "the revenue should be a positive number", "result": {"status": "passed"}}
        ]
      },
      {
        "id": "data-validation;validate-requirement-coverage",
        "name": "Validate requirement coverage",
        "line": 9,
        "type": "scenario",
        "steps": [
          {"keyword": "Given ", "name": "I have the requirement \"x\"", "result": {"status": "passed"}},
          {"keyword": "When ", "name": "I run the data quality checks", "result": {"status": "failed", "error_message": "check failed"}},
          {"keyword": "Then ", "name": "every check should pass", "result": {"status": "skipped"}}
        ]
      }
    ]
  }
]`

func TestParseCukeJSON(t *testing.T) {
	features, err := ParseCukeJSON([]byte(sampleCukeJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(features))
	}
	if features[0].Name != "Data Validation" {
		t.Fatalf("unexpected feature name %q", features[0].Name)
	}
	if len(features[0].Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(features[0].Elements))
	}
}

func TestParseCukeJSONWithNoise(t *testing.T) {
	noisy := "\x1b[32msome progress output\x1b[0m\n" + sampleCukeJSON + "\n"
	features, err := ParseCukeJSON([]byte(noisy))
	if err != nil {
		t.Fatalf("parse noisy output: %v", err)
	}
	if len(features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(features))
	}
}

func TestDeriveScenarioStatus(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"all passed", []string{"passed", "passed"}, "passed"},
		{"failed wins", []string{"passed", "failed", "undefined"}, "failed"},
		{"undefined over pending", []string{"undefined", "pending"}, "undefined"},
		{"pending over skipped", []string{"pending", "skipped"}, "pending"},
		{"skipped only", []string{"passed", "skipped"}, "skipped"},
		{"empty is passed", nil, "passed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps := make([]CukeStep, 0, len(tc.statuses))
			for _, status := range tc.statuses {
				steps = append(steps, CukeStep{Result: CukeResult{Status: status}})
			}
			if got := DeriveScenarioStatus(steps); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFailureDetail(t *testing.T) {
	features, err := ParseCukeJSON([]byte(sampleCukeJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	passed := features[0].Elements[0]
	if detail := FailureDetail(passed); detail != "" {
		t.Fatalf("expected no detail for passing scenario, got %q", detail)
	}
	failed := features[0].Elements[1]
	want := "When I run the data quality checks: check failed"
	if detail := FailureDetail(failed); detail != want {
		t.Fatalf("expected %q, got %q", want, detail)
	}
}
