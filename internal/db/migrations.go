package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_roster_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "create_assignment_log",
		Up:      migrationV2,
	},
}

func createSchemaVersion(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// RunMigrations applies every migration newer than the recorded schema version.
func RunMigrations(conn *sql.DB) error {
	if err := createSchemaVersion(conn); err != nil {
		return err
	}

	var currentVersion int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func migrationV1(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS missions (
			position INTEGER NOT NULL,
			project_id TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			required_skills TEXT NOT NULL DEFAULT '',
			required_certs TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			end_date TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS pilot_roster (
			position INTEGER NOT NULL,
			pilot_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '',
			certifications TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			current_assignment TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS drone_fleet (
			position INTEGER NOT NULL,
			drone_id TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL DEFAULT '',
			capabilities TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			current_assignment TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_missions_position ON missions(position)`,
		`CREATE INDEX IF NOT EXISTS idx_pilot_roster_position ON pilot_roster(position)`,
		`CREATE INDEX IF NOT EXISTS idx_drone_fleet_position ON drone_fleet(position)`,
	}
	return execAll(tx, stmts)
}

func migrationV2(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS assignment_log (
			id TEXT PRIMARY KEY,
			actor_id TEXT,
			entity_type TEXT NOT NULL CHECK(entity_type IN ('pilot', 'drone')),
			entity_id TEXT NOT NULL,
			action TEXT NOT NULL CHECK(action IN ('update')),
			field_name TEXT,
			old_value TEXT,
			new_value TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assignment_log_entity ON assignment_log(entity_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignment_log_created ON assignment_log(created_at)`,
	}
	return execAll(tx, stmts)
}

func execAll(tx *sql.Tx, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
