package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/skylark/internal/ports/primary"
)

// mockRosterService implements primary.RosterService for testing
type mockRosterService struct {
	missions []*primary.Mission
	pilots   []*primary.Pilot
	drones   []*primary.Drone
	history  []*primary.HistoryEntry
	err      error

	lastImportReq primary.ImportRequest
	lastFilters   primary.HistoryFilters
}

func (m *mockRosterService) ListMissions(ctx context.Context) ([]*primary.Mission, error) {
	return m.missions, m.err
}

func (m *mockRosterService) GetMission(ctx context.Context, projectID string) (*primary.Mission, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, mission := range m.missions {
		if mission.ProjectID == projectID {
			return mission, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockRosterService) ListPilots(ctx context.Context) ([]*primary.Pilot, error) {
	return m.pilots, m.err
}

func (m *mockRosterService) ListDrones(ctx context.Context) ([]*primary.Drone, error) {
	return m.drones, m.err
}

func (m *mockRosterService) Import(ctx context.Context, req primary.ImportRequest) (*primary.ImportResponse, error) {
	m.lastImportReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &primary.ImportResponse{Missions: len(m.missions), Pilots: len(m.pilots), Drones: len(m.drones)}, nil
}

func (m *mockRosterService) History(ctx context.Context, filters primary.HistoryFilters) ([]*primary.HistoryEntry, error) {
	m.lastFilters = filters
	return m.history, m.err
}

func newMockRoster() *mockRosterService {
	return &mockRosterService{
		missions: []*primary.Mission{{ProjectID: "PRJ001", Location: "Bangalore", RequiredSkill: "Mapping", RequiredCert: "DGCA", Priority: "High", StartDate: "2026-02-01", EndDate: "2026-02-05"}},
		pilots:   []*primary.Pilot{{Name: "Arjun", Location: "Bangalore", Status: "Available", Skills: []string{"mapping", "survey"}, Certifications: []string{"dgca"}}},
		drones:   []*primary.Drone{{DroneID: "D001", Model: "DJI M300", Location: "Bangalore", Status: "Available", Capabilities: "LiDAR, RGB"}},
	}
}

func TestRosterAdapter_Lists(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *RosterAdapter) error
		want string
	}{
		{"missions", func(a *RosterAdapter) error { return a.ListMissions(context.Background()) }, "2026-02-01 → 2026-02-05"},
		{"pilots", func(a *RosterAdapter) error { return a.ListPilots(context.Background()) }, "mapping,survey"},
		{"drones", func(a *RosterAdapter) error { return a.ListDrones(context.Background()) }, "LiDAR, RGB"},
		{"show mission", func(a *RosterAdapter) error { return a.ShowMission(context.Background(), "PRJ001") }, "Requires: Mapping / DGCA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := tt.run(NewRosterAdapter(newMockRoster(), &out)); err != nil {
				t.Fatalf("failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestRosterAdapter_EmptyLists(t *testing.T) {
	var out bytes.Buffer
	adapter := NewRosterAdapter(&mockRosterService{}, &out)

	if err := adapter.ListPilots(context.Background()); err != nil {
		t.Fatalf("ListPilots failed: %v", err)
	}
	if !strings.Contains(out.String(), "No pilots found") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRosterAdapter_Import(t *testing.T) {
	service := newMockRoster()
	var out bytes.Buffer

	if err := NewRosterAdapter(service, &out).Import(context.Background(), "fleet.yaml"); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if service.lastImportReq.Path != "fleet.yaml" {
		t.Errorf("path = %q", service.lastImportReq.Path)
	}
	if !strings.Contains(out.String(), "Imported fleet.yaml: 1 missions, 1 pilots, 1 drones") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRosterAdapter_History(t *testing.T) {
	service := &mockRosterService{history: []*primary.HistoryEntry{
		{CreatedAt: "2026-02-01T10:00:00Z", EntityType: "pilot", EntityID: "Arjun", FieldName: "status", OldValue: "Available", NewValue: "Assigned"},
	}}
	var out bytes.Buffer

	if err := NewRosterAdapter(service, &out).History(context.Background(), "Arjun", 10); err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if service.lastFilters.EntityID != "Arjun" || service.lastFilters.Limit != 10 {
		t.Errorf("filters = %+v", service.lastFilters)
	}
	if !strings.Contains(out.String(), `status: "Available" → "Assigned"`) {
		t.Errorf("output = %q", out.String())
	}
}
