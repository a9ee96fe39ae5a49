// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB(), which loads db.GetSchemaSQL() so
// tests run against the authoritative schema. Do not hardcode CREATE TABLE
// statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/skylark/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection would otherwise get its own empty :memory: database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPilot inserts a pilot row at position.
func seedPilot(t *testing.T, db *sql.DB, position int, name, status, assignment string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO pilot_roster (position, pilot_id, name, skills, certifications, location, status, current_assignment) VALUES (?, ?, ?, 'Mapping', 'DGCA', 'Bangalore', ?, ?)",
		position, "P-"+name, name, status, assignment,
	)
	if err != nil {
		t.Fatalf("failed to seed pilot: %v", err)
	}
}

// seedDrone inserts a drone row at position.
func seedDrone(t *testing.T, db *sql.DB, position int, id, status string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO drone_fleet (position, drone_id, model, capabilities, location, status) VALUES (?, ?, 'DJI M300', 'RGB', 'Bangalore', ?)",
		position, id, status,
	)
	if err != nil {
		t.Fatalf("failed to seed drone: %v", err)
	}
}
