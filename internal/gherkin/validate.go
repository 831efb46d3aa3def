package gherkin

import (
	"fmt"
	"strings"

	parser "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

// SyntaxReport is the outcome of validating generated Gherkin text.
type SyntaxReport struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateSyntax parses content with the Gherkin parser and reports
// structural problems. A document without scenarios is a warning, not
// an error, matching how the runner treats it (nothing to execute).
func ValidateSyntax(content string) SyntaxReport {
	report := SyntaxReport{}
	doc, err := parser.ParseGherkinDocument(strings.NewReader(content), (&messages.Incrementing{}).NewId)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("parse: %v", err))
		return report
	}
	if doc.Feature == nil {
		report.Errors = append(report.Errors, "no Feature declaration found")
		return report
	}
	if countScenarios(doc.Feature) == 0 {
		report.Warnings = append(report.Warnings, "no Scenario found")
	}
	report.Valid = true
	return report
}

func countScenarios(feature *messages.Feature) int {
	count := 0
	for _, child := range feature.Children {
		if child == nil {
			continue
		}
		if child.Scenario != nil {
			count++
		}
		if child.Rule != nil {
			for _, ruleChild := range child.Rule.Children {
				if ruleChild != nil && ruleChild.Scenario != nil {
					count++
				}
			}
		}
	}
	return count
}
