package gherkin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrEmptyRequirement is returned for blank input; no file is written.
var ErrEmptyRequirement = errors.New("gherkin: requirement is empty")

// DefaultClient is used when the requirement names no client.
const DefaultClient = "Client A"

var clientPattern = regexp.MustCompile(`Client\s+([A-Z][\w-]*)`)

// Document is a generated Gherkin feature, immutable after creation.
type Document struct {
	Requirement string
	Category    Category
	FeatureName string
	Client      string
	Content     string
}

// Generate renders the skeleton for a requirement. CategoryAuto infers
// the category from keywords; an explicit category always wins.
func Generate(requirement string, category Category) (Document, error) {
	requirement = collapseWhitespace(requirement)
	if requirement == "" {
		return Document{}, ErrEmptyRequirement
	}
	if category == CategoryAuto || category == "" {
		category = DetectCategory(requirement)
	}
	sk, ok := skeletons[category]
	if !ok {
		return Document{}, fmt.Errorf("gherkin: unknown category %q", category)
	}

	client := extractClient(requirement)
	content := sk.template
	content = strings.Replace(content, "%REQUIREMENT%", requirement, 1)
	content = strings.ReplaceAll(content, "%CLIENT%", client)

	return Document{
		Requirement: requirement,
		Category:    category,
		FeatureName: sk.featureName,
		Client:      client,
		Content:     content,
	}, nil
}

// Filename returns the timestamped feature file name for a document.
func (d Document) Filename(at time.Time) string {
	return fmt.Sprintf("%s_%s.feature", SanitizeFilename(d.FeatureName), at.UTC().Format("20060102_150405"))
}

// Save writes the document under featuresDir and returns the file path.
func Save(doc Document, featuresDir string, at time.Time) (string, error) {
	if err := os.MkdirAll(featuresDir, 0o755); err != nil {
		return "", fmt.Errorf("create features dir: %w", err)
	}
	path := filepath.Join(featuresDir, doc.Filename(at))
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return "", fmt.Errorf("write feature: %w", err)
	}
	return path, nil
}

// SanitizeFilename strips characters that are unsafe in file names.
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"<", "_", ">", "_", ":", "_", "\"", "_",
		"/", "_", "\\", "_", "|", "_", "?", "_", "*", "_",
		" ", "_",
	)
	return strings.TrimSpace(replacer.Replace(name))
}

func extractClient(requirement string) string {
	if match := clientPattern.FindStringSubmatch(requirement); match != nil {
		return "Client " + match[1]
	}
	return DefaultClient
}

func collapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
