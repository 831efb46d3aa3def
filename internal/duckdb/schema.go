package duckdb

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the demo database schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the DDL used for initializing demo databases.
func SchemaDDL() string {
	return schemaDDL
}

// Open opens a DuckDB database at path; an empty path opens an
// in-memory database. The pool is pinned to one connection so an
// in-memory database is shared by every statement.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// EnsureSchema applies the schema DDL to the provided database.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
