package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the operator from context.
type LogWriter interface {
	// LogUpdate logs an update operation for an entity field.
	// fieldName, oldValue, newValue describe what changed.
	LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error
}

// AssignmentLogRepository defines the secondary port for audit log persistence.
type AssignmentLogRepository interface {
	// Create persists a new log entry. ID must be pre-populated.
	Create(ctx context.Context, entry *AssignmentLogRecord) error

	// List retrieves log entries, newest first.
	List(ctx context.Context, filters AssignmentLogFilters) ([]*AssignmentLogRecord, error)
}

// AssignmentLogRecord represents an audit log entry as stored in persistence.
type AssignmentLogRecord struct {
	ID         string
	ActorID    string // Empty string means null
	EntityType string // pilot, drone
	EntityID   string
	Action     string // update
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}

// AssignmentLogFilters contains filter options for querying the audit log.
type AssignmentLogFilters struct {
	EntityType string
	EntityID   string
	Limit      int
}
