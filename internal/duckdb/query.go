package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrClientNotFound reports a lookup for an unknown client name.
var ErrClientNotFound = errors.New("duckdb: client not found")

// CountClients returns the number of rows in the clients table.
func CountClients(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow("SELECT count(*) FROM clients").Scan(&count); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}

// ClientRevenue looks up the revenue for a client by exact name.
func ClientRevenue(db *sql.DB, name string) (float64, error) {
	var revenue float64
	err := db.QueryRow("SELECT revenue FROM clients WHERE client_name = ?", name).Scan(&revenue)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrClientNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("query revenue: %w", err)
	}
	return revenue, nil
}

// MinRevenue returns the smallest revenue in the table.
func MinRevenue(db *sql.DB) (float64, error) {
	var minValue float64
	if err := db.QueryRow("SELECT min(revenue) FROM clients").Scan(&minValue); err != nil {
		return 0, fmt.Errorf("min revenue: %w", err)
	}
	return minValue, nil
}

// EmptyNameCount counts rows whose client_name is blank.
func EmptyNameCount(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow("SELECT count(*) FROM clients WHERE trim(client_name) = ''").Scan(&count); err != nil {
		return 0, fmt.Errorf("count empty names: %w", err)
	}
	return count, nil
}
