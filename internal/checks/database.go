package checks

import (
	"database/sql"
	"errors"
	"fmt"

	"bddkit/internal/duckdb"
	"bddkit/internal/results"
)

// ValidateClientsTable runs the table-level expectations against the
// demo database: row count, non-negative revenue, and non-empty names.
func (c *Checker) ValidateClientsTable(db *sql.DB, expectedCount int) ([]results.CheckResult, error) {
	count, err := duckdb.CountClients(db)
	if err != nil {
		return nil, err
	}
	minRevenue, err := duckdb.MinRevenue(db)
	if err != nil {
		return nil, err
	}
	emptyNames, err := duckdb.EmptyNameCount(db)
	if err != nil {
		return nil, err
	}

	return []results.CheckResult{
		results.NewCheckResult(
			"clients table row count",
			count == expectedCount,
			fmt.Sprintf("expected %d rows, found %d", expectedCount, count),
			c.now(),
		),
		results.NewCheckResult(
			"revenue is non-negative",
			minRevenue >= 0,
			fmt.Sprintf("minimum revenue %v", minRevenue),
			c.now(),
		),
		results.NewCheckResult(
			"client names are non-empty",
			emptyNames == 0,
			fmt.Sprintf("%d empty names", emptyNames),
			c.now(),
		),
	}, nil
}

// ValidateClientRevenue checks a single client's revenue is present and
// positive. An unknown client yields a failing result, not an error.
func (c *Checker) ValidateClientRevenue(db *sql.DB, name string) (results.CheckResult, error) {
	revenue, err := duckdb.ClientRevenue(db, name)
	if errors.Is(err, duckdb.ErrClientNotFound) {
		return results.NewCheckResult(
			fmt.Sprintf("revenue for %s is positive", name),
			false,
			fmt.Sprintf("client %q not found", name),
			c.now(),
		), nil
	}
	if err != nil {
		return results.CheckResult{}, err
	}
	return results.NewCheckResult(
		fmt.Sprintf("revenue for %s is positive", name),
		revenue > 0,
		fmt.Sprintf("revenue %v", revenue),
		c.now(),
	), nil
}
