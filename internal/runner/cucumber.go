package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CukeFeature matches godog's cucumber-format JSON for one feature.
type CukeFeature struct {
	URI      string        `json:"uri"`
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Elements []CukeElement `json:"elements"`
}

// CukeElement is one scenario from cucumber JSON.
type CukeElement struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Line  int        `json:"line"`
	Type  string     `json:"type"`
	Steps []CukeStep `json:"steps"`
}

// CukeStep carries one step's text and outcome.
type CukeStep struct {
	Keyword string     `json:"keyword"`
	Name    string     `json:"name"`
	Result  CukeResult `json:"result"`
}

// CukeResult is a step execution status.
type CukeResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ParseCukeJSON parses cucumber-format output, tolerating ANSI escape
// sequences and leading noise ahead of the JSON document.
func ParseCukeJSON(data []byte) ([]CukeFeature, error) {
	data = cleanCukeOutput(data)
	var features []CukeFeature
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("parse cucumber output: %w", err)
	}
	return features, nil
}

// cleanCukeOutput strips non-JSON noise from formatter output.
func cleanCukeOutput(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	stripped := bytes.TrimSpace(stripANSICodes(data))
	if len(stripped) == 0 {
		return stripped
	}
	if stripped[0] == '[' || stripped[0] == '{' {
		return stripped
	}
	for i, b := range stripped {
		if b == '[' || b == '{' {
			return bytes.TrimSpace(stripped[i:])
		}
	}
	return stripped
}

// stripANSICodes removes ANSI escape sequences from output.
func stripANSICodes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] == 0x1b && i+1 < len(data) && data[i+1] == '[' {
			i += 2
			for i < len(data) {
				ch := data[i]
				i++
				if ch >= 0x40 && ch <= 0x7e {
					break
				}
			}
			continue
		}
		out = append(out, data[i])
		i++
	}
	return out
}

// DeriveScenarioStatus reduces step statuses to a scenario status.
// Failure dominates, then undefined, pending, and skipped.
func DeriveScenarioStatus(steps []CukeStep) string {
	hasPending := false
	hasUndefined := false
	hasSkipped := false
	for _, step := range steps {
		switch strings.ToLower(strings.TrimSpace(step.Result.Status)) {
		case "failed":
			return "failed"
		case "undefined":
			hasUndefined = true
		case "pending":
			hasPending = true
		case "skipped":
			hasSkipped = true
		}
	}
	switch {
	case hasUndefined:
		return "undefined"
	case hasPending:
		return "pending"
	case hasSkipped:
		return "skipped"
	default:
		return "passed"
	}
}

// ScenarioPassed reports whether every step of the element passed.
func ScenarioPassed(element CukeElement) bool {
	return DeriveScenarioStatus(element.Steps) == "passed"
}

// FailureDetail extracts the first step failure message, if any.
func FailureDetail(element CukeElement) string {
	for _, step := range element.Steps {
		if strings.EqualFold(step.Result.Status, "failed") {
			if step.Result.ErrorMessage != "" {
				return fmt.Sprintf("%s%s: %s", step.Keyword, step.Name, step.Result.ErrorMessage)
			}
			return fmt.Sprintf("%s%s failed", step.Keyword, step.Name)
		}
	}
	return ""
}
