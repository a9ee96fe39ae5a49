package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates an empty roster with a small demo fleet.
// It refuses to run when any roster table already has rows.
func SeedFixtures(database *sql.DB) error {
	for _, table := range []string{"missions", "pilot_roster", "drone_fleet"} {
		var n int
		if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
		if n > 0 {
			return fmt.Errorf("seed %s: table is not empty", table)
		}
	}

	missions := []struct{ id, location, skill, cert, priority, start, end string }{
		{"PRJ001", "Bangalore", "Mapping", "DGCA", "High", "2026-02-01", "2026-02-05"},
		{"PRJ002", "Mumbai", "Inspection", "DGCA", "Low", "2026-02-03", "2026-02-04"},
		{"PRJ003", "Bangalore", "Thermal", "Night Ops", "Urgent", "2026-02-10", "2026-02-12"},
	}
	for i, m := range missions {
		if _, err := database.Exec(
			"INSERT INTO missions (position, project_id, location, required_skills, required_certs, priority, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			i, m.id, m.location, m.skill, m.cert, m.priority, m.start, m.end,
		); err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}
	}

	pilots := []struct{ id, name, skills, certs, location, status, assignment string }{
		{"P001", "Arjun", "Mapping, Survey", "DGCA, Night Ops", "Bangalore", "Available", ""},
		{"P002", "Neha", "Inspection", "DGCA", "Mumbai", "Assigned", "PRJ002"},
		{"P003", "Rohit", "Inspection, Mapping", "DGCA", "Mumbai", "Available", ""},
		{"P004", "Sneha", "Survey, Thermal", "DGCA, Night Ops", "Bangalore", "On Leave", ""},
	}
	for i, p := range pilots {
		if _, err := database.Exec(
			"INSERT INTO pilot_roster (position, pilot_id, name, skills, certifications, location, status, current_assignment) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			i, p.id, p.name, p.skills, p.certs, p.location, p.status, p.assignment,
		); err != nil {
			return fmt.Errorf("seed pilot_roster: %w", err)
		}
	}

	drones := []struct{ id, model, capabilities, location, status, assignment string }{
		{"D001", "DJI M300", "LiDAR, RGB", "Bangalore", "Available", ""},
		{"D002", "DJI Mavic 3", "RGB", "Mumbai", "In Maintenance", ""},
		{"D003", "DJI Mavic 3T", "Thermal", "Mumbai", "Deployed", "PRJ002"},
		{"D004", "Skydio X2", "RGB, Mapping", "Bangalore", "Available", ""},
	}
	for i, d := range drones {
		if _, err := database.Exec(
			"INSERT INTO drone_fleet (position, drone_id, model, capabilities, location, status, current_assignment) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i, d.id, d.model, d.capabilities, d.location, d.status, d.assignment,
		); err != nil {
			return fmt.Errorf("seed drone_fleet: %w", err)
		}
	}

	return nil
}
