// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/core/effects"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// Logger is the application log sink.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// WriteFailure reports a single cell write that the record store rejected.
type WriteFailure struct {
	Table  string
	Key    string
	Column string
	Err    error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("failed to write %s.%s for %s: %v", e.Table, e.Column, e.Key, e.Err)
}

func (e *WriteFailure) Unwrap() error { return e.Err }

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place writes happen.
type EffectExecutor interface {
	// Execute attempts every effect and reports one FieldWrite per cell write.
	// A failed write never stops or rolls back the others.
	Execute(ctx context.Context, handles map[string]secondary.TableHandle, effs []effects.Effect) []primary.FieldWrite
}

// DefaultEffectExecutor implements EffectExecutor against a RecordStore.
type DefaultEffectExecutor struct {
	store     secondary.RecordStore
	logWriter secondary.LogWriter
	logger    Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
// logWriter and logger may be nil.
func NewEffectExecutor(store secondary.RecordStore, logWriter secondary.LogWriter, logger Logger) *DefaultEffectExecutor {
	if logger == nil {
		logger = nopLogger{}
	}
	return &DefaultEffectExecutor{store: store, logWriter: logWriter, logger: logger}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, handles map[string]secondary.TableHandle, effs []effects.Effect) []primary.FieldWrite {
	var writes []primary.FieldWrite
	for _, eff := range effs {
		switch typed := eff.(type) {
		case effects.CellWriteEffect:
			writes = append(writes, e.executeCellWrite(ctx, handles, typed))
		case effects.LogEffect:
			e.logger.Printf("[%s] %s", typed.Level, typed.Message)
		default:
			e.logger.Printf("[error] unknown effect type: %T", eff)
		}
	}
	return writes
}

func (e *DefaultEffectExecutor) executeCellWrite(ctx context.Context, handles map[string]secondary.TableHandle, eff effects.CellWriteEffect) primary.FieldWrite {
	result := primary.FieldWrite{
		Entity: eff.Entity,
		Key:    eff.Key,
		Column: eff.Column,
		Value:  eff.Value,
	}

	handle, ok := handles[eff.Table]
	if !ok {
		result.Err = &WriteFailure{Table: eff.Table, Key: eff.Key, Column: eff.Column, Err: fmt.Errorf("no handle for table %s", eff.Table)}
		e.logger.Printf("[error] %v", result.Err)
		return result
	}

	if err := e.store.WriteCell(ctx, handle, eff.Row, eff.Column, eff.Value); err != nil {
		result.Err = &WriteFailure{Table: eff.Table, Key: eff.Key, Column: eff.Column, Err: err}
		e.logger.Printf("[error] %v", result.Err)
		return result
	}

	if e.logWriter != nil {
		if err := e.logWriter.LogUpdate(ctx, eff.Entity, eff.Key, eff.Column, eff.Previous, eff.Value); err != nil {
			// The cell is already written; the audit trail is best effort.
			e.logger.Printf("[warn] audit log for %s %s.%s: %v", eff.Entity, eff.Key, eff.Column, err)
		}
	}

	return result
}
