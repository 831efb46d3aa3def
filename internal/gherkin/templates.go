package gherkin

// Skeletons per category. The requirement is interpolated into exactly
// one step of each skeleton; the client placeholder is resolved from
// the requirement text.

const databaseTemplate = `Feature: Data Validation
  As a data analyst
  I want to validate data quality
  So that I can trust the demo dataset

  Scenario: Validate client revenue
    Given I have client "%CLIENT%"
    When I query the revenue for the client
    Then the revenue should be a positive number

  Scenario: Validate requirement coverage
    Given I have the requirement "%REQUIREMENT%"
    When I run the data quality checks
    Then every check should pass
`

const apiTemplate = `Feature: API Data Quality
  As a QA engineer
  I want to test API data quality
  So that I can trust API responses

  Scenario: Validate requirement coverage
    Given I have the requirement "%REQUIREMENT%"
    When I call the mock API health endpoint
    Then the response status should be 200

  Scenario: Validate client data quality
    Given the mock API is available
    When I make a GET request to "/clients"
    Then the response data should pass quality checks

  Scenario Outline: Validate API endpoints
    Given the mock API is available
    When I make a GET request to "<endpoint>"
    Then the response status should be 200
    And the response should be valid JSON

    Examples:
      | endpoint |
      | /health  |
      | /clients |
      | /metrics |
`

const uiTemplate = `Feature: UI Validation
  As a user
  I want to verify the dashboard displays correctly
  So that I can trust the application interface

  Scenario: Validate dashboard revenue display
    Given I have the requirement "%REQUIREMENT%"
    When I open the dashboard page
    Then I should see client "%CLIENT%" on the dashboard
    And the displayed revenue should be a positive number
    And a screenshot of the page is saved
`

type skeleton struct {
	featureName string
	template    string
}

var skeletons = map[Category]skeleton{
	CategoryDatabase: {featureName: "data_validation", template: databaseTemplate},
	CategoryAPI:      {featureName: "api_quality", template: apiTemplate},
	CategoryUI:       {featureName: "ui_validation", template: uiTemplate},
}
