package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/skylark/internal/ports/secondary"
)

// AssignmentLogRepository implements secondary.AssignmentLogRepository with SQLite.
type AssignmentLogRepository struct {
	db *sql.DB
}

// NewAssignmentLogRepository creates a new SQLite assignment log repository.
func NewAssignmentLogRepository(db *sql.DB) *AssignmentLogRepository {
	return &AssignmentLogRepository{db: db}
}

// Create persists a new assignment log entry.
func (r *AssignmentLogRepository) Create(ctx context.Context, log *secondary.AssignmentLogRecord) error {
	var actorID, fieldName, oldValue, newValue sql.NullString
	if log.ActorID != "" {
		actorID = sql.NullString{String: log.ActorID, Valid: true}
	}
	if log.FieldName != "" {
		fieldName = sql.NullString{String: log.FieldName, Valid: true}
	}
	if log.OldValue != "" {
		oldValue = sql.NullString{String: log.OldValue, Valid: true}
	}
	if log.NewValue != "" {
		newValue = sql.NullString{String: log.NewValue, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assignment_log (id, actor_id, entity_type, entity_id, action, field_name, old_value, new_value) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID,
		actorID,
		log.EntityType,
		log.EntityID,
		log.Action,
		fieldName,
		oldValue,
		newValue,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment log: %w", err)
	}

	return nil
}

// List retrieves log entries matching the given filters, newest first.
func (r *AssignmentLogRepository) List(ctx context.Context, filters secondary.AssignmentLogFilters) ([]*secondary.AssignmentLogRecord, error) {
	query := `SELECT id, actor_id, entity_type, entity_id, action, field_name, old_value, new_value, created_at FROM assignment_log WHERE 1=1`
	args := []any{}

	if filters.EntityType != "" {
		query += " AND entity_type = ?"
		args = append(args, filters.EntityType)
	}

	if filters.EntityID != "" {
		query += " AND entity_id = ?"
		args = append(args, filters.EntityID)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment log: %w", err)
	}
	defer rows.Close()

	var logs []*secondary.AssignmentLogRecord
	for rows.Next() {
		var (
			actorID   sql.NullString
			fieldName sql.NullString
			oldValue  sql.NullString
			newValue  sql.NullString
			createdAt time.Time
		)

		record := &secondary.AssignmentLogRecord{}
		err := rows.Scan(&record.ID,
			&actorID,
			&record.EntityType,
			&record.EntityID,
			&record.Action,
			&fieldName,
			&oldValue,
			&newValue,
			&createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment log: %w", err)
		}
		record.ActorID = actorID.String
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		logs = append(logs, record)
	}

	return logs, rows.Err()
}

// Ensure AssignmentLogRepository implements the interface
var _ secondary.AssignmentLogRepository = (*AssignmentLogRepository)(nil)
