package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/skylark/internal/ports/primary"
)

// RosterAdapter is a thin adapter that translates CLI operations to RosterService calls.
type RosterAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewRosterAdapter creates a new RosterAdapter with the given service.
func NewRosterAdapter(service primary.RosterService, out io.Writer) *RosterAdapter {
	return &RosterAdapter{
		service: service,
		out:     out,
	}
}

// ListMissions lists missions in table order.
func (a *RosterAdapter) ListMissions(ctx context.Context) error {
	missions, err := a.service.ListMissions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list missions: %w", err)
	}

	if len(missions) == 0 {
		fmt.Fprintln(a.out, "No missions found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-12s %-14s %-12s %-8s %s\n", "ID", "LOCATION", "SKILL", "CERT", "PRIORITY", "DATES")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, m := range missions {
		fmt.Fprintf(a.out, "%-10s %-12s %-14s %-12s %-8s %s → %s\n", m.ProjectID, m.Location, m.RequiredSkill, m.RequiredCert, m.Priority, m.StartDate, m.EndDate)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ShowMission displays details for a single mission.
func (a *RosterAdapter) ShowMission(ctx context.Context, projectID string) error {
	mission, err := a.service.GetMission(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get mission: %w", err)
	}
	renderMission(a.out, mission)
	fmt.Fprintln(a.out)
	return nil
}

// ListPilots lists pilots in roster order.
func (a *RosterAdapter) ListPilots(ctx context.Context) error {
	pilots, err := a.service.ListPilots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pilots: %w", err)
	}

	if len(pilots) == 0 {
		fmt.Fprintln(a.out, "No pilots found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-15s %-12s %-12s %-22s %-18s %s\n", "NAME", "LOCATION", "STATUS", "SKILLS", "CERTS", "ASSIGNMENT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────────────")
	for _, p := range pilots {
		fmt.Fprintf(a.out, "%-15s %-12s %-12s %-22s %-18s %s\n", p.Name, p.Location, p.Status,
			strings.Join(p.Skills, ","), strings.Join(p.Certifications, ","), p.CurrentAssignment)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ListDrones lists drones in fleet order.
func (a *RosterAdapter) ListDrones(ctx context.Context) error {
	drones, err := a.service.ListDrones(ctx)
	if err != nil {
		return fmt.Errorf("failed to list drones: %w", err)
	}

	if len(drones) == 0 {
		fmt.Fprintln(a.out, "No drones found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-8s %-14s %-12s %-16s %-22s %s\n", "ID", "MODEL", "LOCATION", "STATUS", "CAPABILITIES", "ASSIGNMENT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────────────")
	for _, d := range drones {
		fmt.Fprintf(a.out, "%-8s %-14s %-12s %-16s %-22s %s\n", d.DroneID, d.Model, d.Location, d.Status, d.Capabilities, d.CurrentAssignment)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Import replaces the roster with a workbook file.
func (a *RosterAdapter) Import(ctx context.Context, path string) error {
	resp, err := a.service.Import(ctx, primary.ImportRequest{Path: path})
	if err != nil {
		return err
	}
	success(a.out, "Imported %s: %d missions, %d pilots, %d drones", path, resp.Missions, resp.Pilots, resp.Drones)
	return nil
}

// History lists recent assignment log entries.
func (a *RosterAdapter) History(ctx context.Context, entityID string, limit int) error {
	entries, err := a.service.History(ctx, primary.HistoryFilters{EntityID: entityID, Limit: limit})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No history")
		return nil
	}

	for _, e := range entries {
		actor := e.ActorID
		if actor == "" {
			actor = "-"
		}
		fmt.Fprintf(a.out, "%s  %-10s %-6s %-12s %s: %q → %q\n", e.CreatedAt, actor, e.EntityType, e.EntityID, e.FieldName, e.OldValue, e.NewValue)
	}
	return nil
}
