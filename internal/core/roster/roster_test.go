package roster

import "testing"

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{name: "single token", cell: "Mapping", want: []string{"mapping"}},
		{name: "trims and folds", cell: " Mapping , THERMAL,inspection ", want: []string{"mapping", "thermal", "inspection"}},
		{name: "drops empties", cell: "mapping,, ,survey", want: []string{"mapping", "survey"}},
		{name: "drops duplicates", cell: "mapping, MAPPING", want: []string{"mapping"}},
		{name: "empty cell", cell: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTokens(tt.cell)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTokens(%q) = %v, want %v", tt.cell, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTokens(%q)[%d] = %q, want %q", tt.cell, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenSet_Has(t *testing.T) {
	set := ParseTokens("Mapping, Part107")

	if !set.Has("mapping") {
		t.Error("expected exact folded match")
	}
	if !set.Has(" PART107 ") {
		t.Error("expected trimmed, folded match")
	}
	if set.Has("map") {
		t.Error("tokens must match whole, not by substring")
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		priority   Priority
		wantUrgent bool
		wantLow    bool
	}{
		{priority: "Low", wantLow: true},
		{priority: "low", wantLow: true},
		{priority: "Normal"},
		{priority: "HIGH", wantUrgent: true},
		{priority: "urgent", wantUrgent: true},
		{priority: "critical"},
		{priority: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.IsUrgent(); got != tt.wantUrgent {
				t.Errorf("IsUrgent() = %v, want %v", got, tt.wantUrgent)
			}
			if got := tt.priority.IsLow(); got != tt.wantLow {
				t.Errorf("IsLow() = %v, want %v", got, tt.wantLow)
			}
		})
	}
}

func TestDroneStatus(t *testing.T) {
	tests := []struct {
		status          DroneStatus
		wantMaintenance bool
		wantDeployed    bool
	}{
		{status: "Maintenance", wantMaintenance: true},
		{status: "in maintenance", wantMaintenance: true},
		{status: "In Maintenance", wantMaintenance: true},
		{status: "Deployed", wantDeployed: true},
		{status: "Available"},
		{status: "maintenance due"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsMaintenance(); got != tt.wantMaintenance {
				t.Errorf("IsMaintenance() = %v, want %v", got, tt.wantMaintenance)
			}
			if got := tt.status.IsDeployed(); got != tt.wantDeployed {
				t.Errorf("IsDeployed() = %v, want %v", got, tt.wantDeployed)
			}
		})
	}
}

func TestDrone_HasCapability(t *testing.T) {
	d := Drone{Capabilities: "LiDAR, RGB Mapping, Thermal"}

	if !d.HasCapability("mapping") {
		t.Error("expected folded substring match on capabilities")
	}
	if !d.HasCapability("Lidar") {
		t.Error("expected folded match for LiDAR")
	}
	if d.HasCapability("inspection") {
		t.Error("unexpected capability match")
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	snap := Snapshot{
		Missions: []Mission{{ProjectID: "PRJ001"}, {ProjectID: "PRJ002"}},
		Pilots:   []Pilot{{Name: "Arjun"}, {Name: "Neha"}},
		Drones:   []Drone{{DroneID: "D001"}},
	}

	if m, ok := snap.MissionByID(" PRJ002 "); !ok || m.ProjectID != "PRJ002" {
		t.Errorf("MissionByID(PRJ002) = %v, %v", m, ok)
	}
	if _, ok := snap.MissionByID("PRJ404"); ok {
		t.Error("expected stale reference to miss")
	}
	if p, ok := snap.PilotByName("Neha"); !ok || p.Name != "Neha" {
		t.Errorf("PilotByName(Neha) = %v, %v", p, ok)
	}
	if _, ok := snap.DroneByID("D999"); ok {
		t.Error("expected unknown drone to miss")
	}
}
