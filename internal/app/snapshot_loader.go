package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/ports/secondary"
)

// loadedSnapshot is one evaluation pass worth of roster data plus the handles
// needed to write back to the rows it was read from.
type loadedSnapshot struct {
	roster.Snapshot
	handles map[string]secondary.TableHandle
}

// loadSnapshot reads all three tables fresh from the store and validates them
// into typed records. Nothing is cached between passes.
func loadSnapshot(ctx context.Context, store secondary.RecordStore) (*loadedSnapshot, error) {
	loaded := &loadedSnapshot{handles: make(map[string]secondary.TableHandle, 3)}

	missions, err := loadTable(ctx, store, roster.TableMissions, loaded)
	if err != nil {
		return nil, err
	}
	if loaded.Missions, err = decodeMissions(missions); err != nil {
		return nil, err
	}

	pilots, err := loadTable(ctx, store, roster.TablePilots, loaded)
	if err != nil {
		return nil, err
	}
	if loaded.Pilots, err = decodePilots(pilots); err != nil {
		return nil, err
	}

	drones, err := loadTable(ctx, store, roster.TableDrones, loaded)
	if err != nil {
		return nil, err
	}
	if loaded.Drones, err = decodeDrones(drones); err != nil {
		return nil, err
	}

	return loaded, nil
}

func loadTable(ctx context.Context, store secondary.RecordStore, table string, loaded *loadedSnapshot) ([]secondary.Row, error) {
	snap, err := store.Load(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	loaded.handles[table] = snap.Handle
	return snap.Rows, nil
}

// keyTracker enforces a non-empty, unique key column per table.
type keyTracker struct {
	table  string
	column string
	seen   map[string]int
}

func newKeyTracker(table string) *keyTracker {
	return &keyTracker{table: table, column: roster.KeyColumn(table), seen: make(map[string]int)}
}

func (k *keyTracker) check(i int, row secondary.Row) (string, error) {
	key := cell(row, k.column)
	if key == "" {
		return "", fmt.Errorf("%s row %d: missing %s", k.table, i+1, k.column)
	}
	if prev, dup := k.seen[key]; dup {
		return "", fmt.Errorf("%s row %d: duplicate %s %q (first seen at row %d)", k.table, i+1, k.column, key, prev+1)
	}
	k.seen[key] = i
	return key, nil
}

func decodeMissions(rows []secondary.Row) ([]roster.Mission, error) {
	keys := newKeyTracker(roster.TableMissions)
	missions := make([]roster.Mission, 0, len(rows))
	for i, row := range rows {
		id, err := keys.check(i, row)
		if err != nil {
			return nil, err
		}
		missions = append(missions, roster.Mission{
			Row:           i,
			ProjectID:     id,
			Location:      cell(row, roster.ColLocation),
			RequiredSkill: cell(row, roster.ColRequiredSkills),
			RequiredCert:  cell(row, roster.ColRequiredCerts),
			Priority:      roster.Priority(cell(row, roster.ColPriority)),
			StartDate:     cell(row, roster.ColStartDate),
			EndDate:       cell(row, roster.ColEndDate),
		})
	}
	return missions, nil
}

func decodePilots(rows []secondary.Row) ([]roster.Pilot, error) {
	keys := newKeyTracker(roster.TablePilots)
	pilots := make([]roster.Pilot, 0, len(rows))
	for i, row := range rows {
		name, err := keys.check(i, row)
		if err != nil {
			return nil, err
		}
		pilots = append(pilots, roster.Pilot{
			Row:               i,
			PilotID:           cell(row, roster.ColPilotID),
			Name:              name,
			Location:          cell(row, roster.ColLocation),
			Skills:            roster.ParseTokens(row[roster.ColSkills]),
			Certifications:    roster.ParseTokens(row[roster.ColCertifications]),
			Status:            roster.PilotStatus(cell(row, roster.ColStatus)),
			CurrentAssignment: cell(row, roster.ColCurrentAssignment),
		})
	}
	return pilots, nil
}

func decodeDrones(rows []secondary.Row) ([]roster.Drone, error) {
	keys := newKeyTracker(roster.TableDrones)
	drones := make([]roster.Drone, 0, len(rows))
	for i, row := range rows {
		id, err := keys.check(i, row)
		if err != nil {
			return nil, err
		}
		drones = append(drones, roster.Drone{
			Row:               i,
			DroneID:           id,
			Model:             cell(row, roster.ColModel),
			Capabilities:      cell(row, roster.ColCapabilities),
			Location:          cell(row, roster.ColLocation),
			Status:            roster.DroneStatus(cell(row, roster.ColStatus)),
			CurrentAssignment: cell(row, roster.ColCurrentAssignment),
		})
	}
	return drones, nil
}

// cell reads a column with surrounding whitespace removed. Case is preserved.
func cell(row secondary.Row, column string) string {
	return strings.TrimSpace(row[column])
}
