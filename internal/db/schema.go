package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// It reflects the state after every migration in migrations.go.
//
// Tests use this schema via GetSchemaSQL() instead of hardcoding their own,
// so a repository that references a missing column fails immediately with
// "no such column".
//
// The three roster tables mirror the operations workbook sheets. Every cell is
// TEXT; typing and validation happen when a snapshot is decoded. position keeps
// the sheet's row order.
const SchemaSQL = `
-- Missions (one row per project)
CREATE TABLE IF NOT EXISTS missions (
	position INTEGER NOT NULL,
	project_id TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	required_skills TEXT NOT NULL DEFAULT '',
	required_certs TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT ''
);

-- Pilot roster
CREATE TABLE IF NOT EXISTS pilot_roster (
	position INTEGER NOT NULL,
	pilot_id TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT '',
	certifications TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	current_assignment TEXT NOT NULL DEFAULT ''
);

-- Drone fleet
CREATE TABLE IF NOT EXISTS drone_fleet (
	position INTEGER NOT NULL,
	drone_id TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL DEFAULT '',
	capabilities TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	current_assignment TEXT NOT NULL DEFAULT ''
);

-- Assignment log (audit trail of committed cell writes)
CREATE TABLE IF NOT EXISTS assignment_log (
	id TEXT PRIMARY KEY,
	actor_id TEXT,
	entity_type TEXT NOT NULL CHECK(entity_type IN ('pilot', 'drone')),
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('update')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_missions_position ON missions(position);
CREATE INDEX IF NOT EXISTS idx_pilot_roster_position ON pilot_roster(position);
CREATE INDEX IF NOT EXISTS idx_drone_fleet_position ON drone_fleet(position);
CREATE INDEX IF NOT EXISTS idx_assignment_log_entity ON assignment_log(entity_id);
CREATE INDEX IF NOT EXISTS idx_assignment_log_created ON assignment_log(created_at);
`

// InitSchema creates the schema on a fresh database, or runs pending
// migrations on an existing one.
func InitSchema(conn *sql.DB) error {
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(conn)
	}

	// Fresh install - create schema directly and mark every migration applied
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := createSchemaVersion(conn); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests use this rather than a hand-written copy of the schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
