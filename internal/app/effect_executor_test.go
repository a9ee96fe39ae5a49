package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/skylark/internal/core/effects"
	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/ports/secondary"
)

func TestEffectExecutor_Execute(t *testing.T) {
	store := newMockRecordStore()
	seedRoster(store)
	logWriter := &mockLogWriter{}
	logger := &recordingLogger{}
	executor := NewEffectExecutor(store, logWriter, logger)

	handles := map[string]secondary.TableHandle{
		roster.TablePilots: {Table: roster.TablePilots},
	}
	effs := []effects.Effect{
		effects.CellWriteEffect{Entity: "pilot", Table: roster.TablePilots, Row: 3, Key: "Sneha", Column: "status", Value: "On Leave", Previous: "Available"},
		effects.CellWriteEffect{Entity: "drone", Table: roster.TableDrones, Row: 0, Key: "D001", Column: "status", Value: "Deployed", Previous: "Available"},
		effects.LogEffect{Level: "info", Message: "done"},
	}

	writes := executor.Execute(context.Background(), handles, effs)

	if len(writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(writes))
	}
	if writes[0].Err != nil {
		t.Errorf("pilot write failed: %v", writes[0].Err)
	}
	if got := store.cell(roster.TablePilots, 3, "status"); got != "On Leave" {
		t.Errorf("status = %q, want On Leave", got)
	}

	var wf *WriteFailure
	if !errors.As(writes[1].Err, &wf) || wf.Table != roster.TableDrones {
		t.Errorf("missing handle error = %v, want WriteFailure for drone_fleet", writes[1].Err)
	}

	if len(logWriter.entries) != 1 || logWriter.entries[0] != `pilot Sneha status "Available"->"On Leave"` {
		t.Errorf("audit entries = %v", logWriter.entries)
	}
	if last := logger.lines[len(logger.lines)-1]; last != "[info] done" {
		t.Errorf("last log line = %q, want [info] done", last)
	}
}

func TestEffectExecutor_AuditFailureKeepsWrite(t *testing.T) {
	store := newMockRecordStore()
	seedRoster(store)
	logger := &recordingLogger{}
	executor := NewEffectExecutor(store, &mockLogWriter{err: errors.New("locked")}, logger)

	handles := map[string]secondary.TableHandle{roster.TableDrones: {Table: roster.TableDrones}}
	writes := executor.Execute(context.Background(), handles, []effects.Effect{
		effects.CellWriteEffect{Entity: "drone", Table: roster.TableDrones, Row: 1, Key: "D002", Column: "status", Value: "Available"},
	})

	if len(writes) != 1 || writes[0].Err != nil {
		t.Fatalf("writes = %+v, want one success", writes)
	}
	if got := store.cell(roster.TableDrones, 1, "status"); got != "Available" {
		t.Errorf("status = %q, want Available", got)
	}
	if len(logger.lines) != 1 || !strings.HasPrefix(logger.lines[0], "[warn] audit log for drone D002.status") {
		t.Errorf("log lines = %v", logger.lines)
	}
}
