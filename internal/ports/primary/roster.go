package primary

import "context"

// RosterService defines the primary port for reading and importing the roster tables.
type RosterService interface {
	// ListMissions lists missions in table order.
	ListMissions(ctx context.Context) ([]*Mission, error)

	// GetMission retrieves a mission by project ID.
	GetMission(ctx context.Context, projectID string) (*Mission, error)

	// ListPilots lists pilots in roster order.
	ListPilots(ctx context.Context) ([]*Pilot, error)

	// ListDrones lists drones in fleet order.
	ListDrones(ctx context.Context) ([]*Drone, error)

	// Import replaces the roster tables with the contents of a workbook file.
	Import(ctx context.Context, req ImportRequest) (*ImportResponse, error)

	// History lists recent assignment log entries.
	History(ctx context.Context, filters HistoryFilters) ([]*HistoryEntry, error)
}

// Mission represents a mission at the port boundary.
type Mission struct {
	ProjectID     string
	Location      string
	RequiredSkill string
	RequiredCert  string
	Priority      string
	StartDate     string
	EndDate       string
}

// Pilot represents a pilot at the port boundary.
type Pilot struct {
	PilotID           string
	Name              string
	Location          string
	Skills            []string
	Certifications    []string
	Status            string
	CurrentAssignment string
}

// Drone represents a drone at the port boundary.
type Drone struct {
	DroneID           string
	Model             string
	Capabilities      string
	Location          string
	Status            string
	CurrentAssignment string
}

// ImportRequest contains parameters for importing a workbook.
type ImportRequest struct {
	Path string
}

// ImportResponse reports how many rows were imported per table.
type ImportResponse struct {
	Missions int
	Pilots   int
	Drones   int
}

// HistoryFilters contains filter options for the assignment log.
type HistoryFilters struct {
	EntityID string
	Limit    int
}

// HistoryEntry represents an assignment log entry at the port boundary.
type HistoryEntry struct {
	ID         string
	ActorID    string
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
