// Package mockapi serves the demo client dataset over HTTP so runs can
// exercise API and UI scenarios without any external service.
package mockapi

import (
	"bddkit/internal/duckdb"
)

// Client is the wire form of one demo client record.
type Client struct {
	ClientID    int     `json:"client_id"`
	ClientName  string  `json:"client_name"`
	Revenue     float64 `json:"revenue"`
	Region      string  `json:"region"`
	Active      bool    `json:"active"`
	LastUpdated string  `json:"last_updated"`
}

// sampleClients converts the shared demo dataset to wire records.
func sampleClients() []Client {
	clients := make([]Client, 0, len(duckdb.SampleClients))
	for _, row := range duckdb.SampleClients {
		clients = append(clients, Client{
			ClientID:    row.ID,
			ClientName:  row.Name,
			Revenue:     row.Revenue,
			Region:      row.Region,
			Active:      row.Active,
			LastUpdated: row.LastUpdated,
		})
	}
	return clients
}
