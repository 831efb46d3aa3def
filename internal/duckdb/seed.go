package duckdb

import (
	"database/sql"
	"fmt"
)

// SampleClient is one row of the demo dataset.
type SampleClient struct {
	ID          int
	Name        string
	Revenue     float64
	Region      string
	Active      bool
	LastUpdated string
}

// SampleClients is the canonical demo dataset, shared with the mock API.
var SampleClients = []SampleClient{
	{ID: 1, Name: "Client A", Revenue: 150000.50, Region: "North", Active: true, LastUpdated: "2024-01-15T10:30:00Z"},
	{ID: 2, Name: "Client B", Revenue: 275000.75, Region: "South", Active: true, LastUpdated: "2024-01-14T14:20:00Z"},
	{ID: 3, Name: "Client C", Revenue: 89000.25, Region: "East", Active: false, LastUpdated: "2024-01-13T09:15:00Z"},
	{ID: 4, Name: "Client D", Revenue: 420000.00, Region: "West", Active: true, LastUpdated: "2024-01-16T16:45:00Z"},
	{ID: 5, Name: "Client E", Revenue: 195000.30, Region: "Central", Active: true, LastUpdated: "2024-01-12T11:30:00Z"},
}

// Seed loads the sample clients. Seeding an already-populated database
// is a no-op so repeated runs keep the dataset stable.
func Seed(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	count, err := CountClients(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, client := range SampleClients {
		_, err := db.Exec(
			"INSERT INTO clients (client_id, client_name, revenue, region, active, last_updated) VALUES (?, ?, ?, ?, ?, ?)",
			client.ID, client.Name, client.Revenue, client.Region, client.Active, client.LastUpdated,
		)
		if err != nil {
			return fmt.Errorf("seed client %q: %w", client.Name, err)
		}
	}
	return nil
}
