// Package roster defines the typed mission, pilot and drone records that the
// evaluators work on. This is part of the Functional Core - no I/O, only pure functions.
package roster

import (
	"strings"

	"github.com/example/skylark/internal/core/schedule"
)

// Priority is a mission priority as written in the missions table.
// Comparisons are case-insensitive; unknown values are kept verbatim.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsUrgent reports whether the priority enables urgent reassignment (high or urgent).
func (p Priority) IsUrgent() bool {
	switch Priority(Fold(string(p))) {
	case PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsLow reports whether the priority is low.
func (p Priority) IsLow() bool {
	return Priority(Fold(string(p))) == PriorityLow
}

// PilotStatus is compared with exact case.
type PilotStatus string

const (
	PilotAvailable   PilotStatus = "Available"
	PilotAssigned    PilotStatus = "Assigned"
	PilotOnLeave     PilotStatus = "On Leave"
	PilotUnavailable PilotStatus = "Unavailable"
)

// DroneStatus is compared case-insensitively.
type DroneStatus string

const (
	DroneAvailable     DroneStatus = "Available"
	DroneDeployed      DroneStatus = "Deployed"
	DroneInMaintenance DroneStatus = "In Maintenance"
)

// IsMaintenance reports whether the drone is grounded for maintenance.
func (s DroneStatus) IsMaintenance() bool {
	switch Fold(string(s)) {
	case "maintenance", "in maintenance":
		return true
	}
	return false
}

// IsDeployed reports whether the drone is out on a mission.
func (s DroneStatus) IsDeployed() bool {
	return Fold(string(s)) == "deployed"
}

// Mission is one row of the missions table.
type Mission struct {
	Row           int // index in the loaded snapshot
	ProjectID     string
	Location      string
	RequiredSkill string
	RequiredCert  string
	Priority      Priority
	StartDate     string
	EndDate       string
}

// Window parses the mission's date range.
func (m Mission) Window() (schedule.Window, error) {
	return schedule.ParseWindow(m.StartDate, m.EndDate)
}

// Pilot is one row of the pilot_roster table.
type Pilot struct {
	Row               int
	PilotID           string
	Name              string
	Location          string
	Skills            TokenSet
	Certifications    TokenSet
	Status            PilotStatus
	CurrentAssignment string
}

// HasAssignment reports whether the pilot points at a mission.
func (p Pilot) HasAssignment() bool {
	return strings.TrimSpace(p.CurrentAssignment) != ""
}

// Drone is one row of the drone_fleet table.
type Drone struct {
	Row               int
	DroneID           string
	Model             string
	Capabilities      string // free text, substring matched
	Location          string
	Status            DroneStatus
	CurrentAssignment string
}

// HasAssignment reports whether the drone points at a mission.
func (d Drone) HasAssignment() bool {
	return strings.TrimSpace(d.CurrentAssignment) != ""
}

// HasCapability reports whether skill appears anywhere in the capabilities text.
func (d Drone) HasCapability(skill string) bool {
	return strings.Contains(Fold(d.Capabilities), Fold(skill))
}

// Snapshot is one freshly loaded copy of the three tables, in roster order.
type Snapshot struct {
	Missions []Mission
	Pilots   []Pilot
	Drones   []Drone
}

// MissionByID resolves a project identifier. A miss is how stale references surface.
func (s Snapshot) MissionByID(projectID string) (Mission, bool) {
	id := strings.TrimSpace(projectID)
	for _, m := range s.Missions {
		if m.ProjectID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// PilotByName looks a pilot up by roster name.
func (s Snapshot) PilotByName(name string) (Pilot, bool) {
	for _, p := range s.Pilots {
		if p.Name == name {
			return p, true
		}
	}
	return Pilot{}, false
}

// DroneByID looks a drone up by identifier.
func (s Snapshot) DroneByID(droneID string) (Drone, bool) {
	for _, d := range s.Drones {
		if d.DroneID == droneID {
			return d, true
		}
	}
	return Drone{}, false
}
