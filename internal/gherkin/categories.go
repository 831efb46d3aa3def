package gherkin

import "strings"

// Category selects which scenario skeleton a requirement maps to.
type Category string

const (
	// CategoryAuto defers to keyword detection.
	CategoryAuto     Category = "auto"
	CategoryDatabase Category = "database"
	CategoryAPI      Category = "api"
	CategoryUI       Category = "ui"
)

// Keyword lists checked in order; the first match wins, database is the
// fallback for requirements that match nothing.
var (
	databaseKeywords = []string{"data", "database", "csv", "feed", "count", "records"}
	apiKeywords      = []string{"api", "endpoint", "response", "json"}
	uiKeywords       = []string{"ui", "interface", "page", "dashboard", "display"}
)

// ParseCategory maps a user-supplied category name to a Category.
func ParseCategory(value string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryAuto, "":
		return CategoryAuto, true
	case CategoryDatabase:
		return CategoryDatabase, true
	case CategoryAPI:
		return CategoryAPI, true
	case CategoryUI:
		return CategoryUI, true
	default:
		return "", false
	}
}

// DetectCategory infers a category from requirement keywords.
func DetectCategory(requirement string) Category {
	lowered := strings.ToLower(requirement)
	for _, keyword := range databaseKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryDatabase
		}
	}
	for _, keyword := range apiKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryAPI
		}
	}
	for _, keyword := range uiKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryUI
		}
	}
	return CategoryDatabase
}
