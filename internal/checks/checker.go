// Package checks builds validation result records from API payloads and
// the demo database, in the spirit of an expectation suite: each check
// is named, passes or fails, and carries a human-readable detail.
package checks

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"bddkit/internal/results"
)

// maxValueLength bounds string column values, matching the clients
// schema where names and regions are short labels.
const maxValueLength = 255

// Checker runs data-quality checks. The clock is injectable so report
// timestamps are deterministic in tests.
type Checker struct {
	now func() time.Time
}

// New builds a checker; a nil clock falls back to time.Now.
func New(now func() time.Time) *Checker {
	if now == nil {
		now = time.Now
	}
	return &Checker{now: now}
}

// ValidateAPIData inspects a JSON payload of flat records and produces
// one result per column-level expectation. Payloads may be a list of
// objects, a single object, or an envelope with a "data" list.
func (c *Checker) ValidateAPIData(payload []byte) ([]results.CheckResult, error) {
	records, err := decodeRecords(payload)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []results.CheckResult{
			results.NewCheckResult("records present", false, "payload contains no records", c.now()),
		}, nil
	}

	checks := []results.CheckResult{
		results.NewCheckResult("records present", true, fmt.Sprintf("%d records", len(records)), c.now()),
	}
	for _, column := range columnNames(records) {
		checks = append(checks, c.validateColumn(records, column)...)
	}
	return checks, nil
}

func (c *Checker) validateColumn(records []map[string]any, column string) []results.CheckResult {
	numeric := 0
	nulls := 0
	strs := 0
	emptyStrings := 0
	minValue := 0.0
	maxLen := 0
	for _, record := range records {
		value, ok := record[column]
		if !ok || value == nil {
			nulls++
			continue
		}
		switch typed := value.(type) {
		case float64:
			if numeric == 0 || typed < minValue {
				minValue = typed
			}
			numeric++
		case string:
			strs++
			if strings.TrimSpace(typed) == "" {
				emptyStrings++
			}
			if len(typed) > maxLen {
				maxLen = len(typed)
			}
		}
	}

	checks := []results.CheckResult{
		results.NewCheckResult(
			fmt.Sprintf("column %q has no nulls", column),
			nulls == 0,
			fmt.Sprintf("%d null values", nulls),
			c.now(),
		),
	}
	if numeric > 0 && isAmountColumn(column) {
		checks = append(checks, results.NewCheckResult(
			fmt.Sprintf("column %q is non-negative", column),
			minValue >= 0,
			fmt.Sprintf("minimum value %v", minValue),
			c.now(),
		))
	}
	if numeric == 0 && emptyStrings > 0 {
		checks = append(checks, results.NewCheckResult(
			fmt.Sprintf("column %q has no empty strings", column),
			false,
			fmt.Sprintf("%d empty strings", emptyStrings),
			c.now(),
		))
	}
	if strs > 0 {
		checks = append(checks, results.NewCheckResult(
			fmt.Sprintf("column %q values fit within %d characters", column, maxValueLength),
			maxLen <= maxValueLength,
			fmt.Sprintf("longest value %d characters", maxLen),
			c.now(),
		))
	}
	return checks
}

// isAmountColumn flags revenue-like numeric columns that must stay
// non-negative.
func isAmountColumn(column string) bool {
	lowered := strings.ToLower(column)
	return strings.Contains(lowered, "revenue") || strings.Contains(lowered, "amount")
}

func decodeRecords(payload []byte) ([]map[string]any, error) {
	var list []map[string]any
	if err := json.Unmarshal(payload, &list); err == nil {
		return list, nil
	}
	var object map[string]any
	if err := json.Unmarshal(payload, &object); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if data, ok := object["data"].([]any); ok {
		records := make([]map[string]any, 0, len(data))
		for _, item := range data {
			if record, ok := item.(map[string]any); ok {
				records = append(records, record)
			}
		}
		return records, nil
	}
	return []map[string]any{object}, nil
}

func columnNames(records []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for column := range record {
			seen[column] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for column := range seen {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
