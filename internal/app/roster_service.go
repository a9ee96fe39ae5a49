package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// defaultHistoryLimit caps history listings when the caller gives no limit.
const defaultHistoryLimit = 50

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	store    secondary.RecordStore
	importer secondary.RosterImporter
	reader   secondary.WorkbookReader
	logRepo  secondary.AssignmentLogRepository
	logger   Logger
}

// NewRosterService creates a new RosterService with injected dependencies.
// logger may be nil.
func NewRosterService(
	store secondary.RecordStore,
	importer secondary.RosterImporter,
	reader secondary.WorkbookReader,
	logRepo secondary.AssignmentLogRepository,
	logger Logger,
) *RosterServiceImpl {
	if logger == nil {
		logger = nopLogger{}
	}
	return &RosterServiceImpl{
		store:    store,
		importer: importer,
		reader:   reader,
		logRepo:  logRepo,
		logger:   logger,
	}
}

// ListMissions lists missions in table order.
func (s *RosterServiceImpl) ListMissions(ctx context.Context) ([]*primary.Mission, error) {
	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}
	missions := make([]*primary.Mission, len(snap.Missions))
	for i, m := range snap.Missions {
		missions[i] = missionToPort(m)
	}
	return missions, nil
}

// GetMission retrieves a mission by project ID.
func (s *RosterServiceImpl) GetMission(ctx context.Context, projectID string) (*primary.Mission, error) {
	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}
	m, ok := snap.MissionByID(projectID)
	if !ok {
		return nil, fmt.Errorf("mission %s: %w", projectID, secondary.ErrNotFound)
	}
	return missionToPort(m), nil
}

// ListPilots lists pilots in roster order.
func (s *RosterServiceImpl) ListPilots(ctx context.Context) ([]*primary.Pilot, error) {
	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}
	pilots := make([]*primary.Pilot, len(snap.Pilots))
	for i, p := range snap.Pilots {
		pilots[i] = pilotToPort(p)
	}
	return pilots, nil
}

// ListDrones lists drones in fleet order.
func (s *RosterServiceImpl) ListDrones(ctx context.Context) ([]*primary.Drone, error) {
	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}
	drones := make([]*primary.Drone, len(snap.Drones))
	for i, d := range snap.Drones {
		drones[i] = droneToPort(d)
	}
	return drones, nil
}

// Import replaces the roster tables with the workbook's rows.
// The workbook is validated before any table is touched.
func (s *RosterServiceImpl) Import(ctx context.Context, req primary.ImportRequest) (*primary.ImportResponse, error) {
	wb, err := s.reader.Read(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	if _, err := decodeMissions(wb.Missions); err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	if _, err := decodePilots(wb.Pilots); err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	if _, err := decodeDrones(wb.Drones); err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}

	tables := []struct {
		name string
		rows []secondary.Row
	}{
		{roster.TableMissions, wb.Missions},
		{roster.TablePilots, wb.Pilots},
		{roster.TableDrones, wb.Drones},
	}
	for _, t := range tables {
		if err := s.importer.ReplaceTable(ctx, t.name, t.rows); err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", t.name, err)
		}
	}

	s.logger.Printf("[info] imported %s: %d missions, %d pilots, %d drones", req.Path, len(wb.Missions), len(wb.Pilots), len(wb.Drones))

	return &primary.ImportResponse{
		Missions: len(wb.Missions),
		Pilots:   len(wb.Pilots),
		Drones:   len(wb.Drones),
	}, nil
}

// History lists recent assignment log entries, newest first.
func (s *RosterServiceImpl) History(ctx context.Context, filters primary.HistoryFilters) ([]*primary.HistoryEntry, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.logRepo.List(ctx, secondary.AssignmentLogFilters{
		EntityID: filters.EntityID,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.HistoryEntry{
			ID:         r.ID,
			ActorID:    r.ActorID,
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			Action:     r.Action,
			FieldName:  r.FieldName,
			OldValue:   r.OldValue,
			NewValue:   r.NewValue,
			CreatedAt:  r.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure RosterServiceImpl implements the interface
var _ primary.RosterService = (*RosterServiceImpl)(nil)
