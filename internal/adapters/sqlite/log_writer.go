package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/skylark/internal/ctxutil"
	"github.com/example/skylark/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using AssignmentLogRepository.
type LogWriterAdapter struct {
	logRepo secondary.AssignmentLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logRepo secondary.AssignmentLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{logRepo: logRepo}
}

// LogUpdate logs an update operation for an entity field.
// The operator is taken from context; an empty operator is stored as null.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	record := &secondary.AssignmentLogRecord{
		ID:         "AL-" + uuid.NewString(),
		ActorID:    ctxutil.OperatorFromContext(ctx),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     "update",
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	return w.logRepo.Create(ctx, record)
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
