package assignment

import (
	"fmt"

	"github.com/example/skylark/internal/core/effects"
	"github.com/example/skylark/internal/core/roster"
)

// Entity names recorded on cell writes.
const (
	EntityPilot = "pilot"
	EntityDrone = "drone"
)

// CommitPlanInput contains the inputs needed to generate a commit plan.
// All values are pre-fetched by the caller - no I/O in the planner.
type CommitPlanInput struct {
	MissionID string
	Pilot     roster.Pilot
	Drone     *roster.Drone // nil for a pilot-only commit
}

// CommitPlan represents the planned cell writes for one operator action.
// Each write is independent: none is rolled back if another fails.
type CommitPlan struct {
	Summary string
	Writes  []effects.CellWriteEffect
}

// Effects returns all effects as a flat slice for execution.
func (p CommitPlan) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, len(p.Writes)+1)
	for _, w := range p.Writes {
		result = append(result, w)
	}
	if p.Summary != "" {
		result = append(result, effects.LogEffect{Level: "info", Message: p.Summary})
	}
	return result
}

// GenerateCommitPlan creates the writes that put a pilot (and optionally a drone) on a mission.
func GenerateCommitPlan(input CommitPlanInput) CommitPlan {
	plan := CommitPlan{
		Writes: pilotWrites(input.Pilot, string(roster.PilotAssigned), input.MissionID),
	}
	plan.Summary = fmt.Sprintf("assign pilot %s to %s", input.Pilot.Name, input.MissionID)

	if input.Drone != nil {
		plan.Writes = append(plan.Writes, droneWrites(*input.Drone, string(roster.DroneDeployed), input.MissionID)...)
		plan.Summary = fmt.Sprintf("assign pilot %s and drone %s to %s", input.Pilot.Name, input.Drone.DroneID, input.MissionID)
	}

	return plan
}

// GeneratePilotReleasePlan creates the writes that free a pilot.
func GeneratePilotReleasePlan(p roster.Pilot) CommitPlan {
	return CommitPlan{
		Summary: fmt.Sprintf("release pilot %s from %s", p.Name, p.CurrentAssignment),
		Writes:  pilotWrites(p, string(roster.PilotAvailable), ""),
	}
}

// GenerateDroneReleasePlan creates the writes that free a drone.
func GenerateDroneReleasePlan(d roster.Drone) CommitPlan {
	return CommitPlan{
		Summary: fmt.Sprintf("release drone %s from %s", d.DroneID, d.CurrentAssignment),
		Writes:  droneWrites(d, string(roster.DroneAvailable), ""),
	}
}

func pilotWrites(p roster.Pilot, status, assignment string) []effects.CellWriteEffect {
	return []effects.CellWriteEffect{
		{Entity: EntityPilot, Table: roster.TablePilots, Row: p.Row, Key: p.Name, Column: roster.ColStatus, Value: status, Previous: string(p.Status)},
		{Entity: EntityPilot, Table: roster.TablePilots, Row: p.Row, Key: p.Name, Column: roster.ColCurrentAssignment, Value: assignment, Previous: p.CurrentAssignment},
	}
}

func droneWrites(d roster.Drone, status, assignment string) []effects.CellWriteEffect {
	return []effects.CellWriteEffect{
		{Entity: EntityDrone, Table: roster.TableDrones, Row: d.Row, Key: d.DroneID, Column: roster.ColStatus, Value: status, Previous: string(d.Status)},
		{Entity: EntityDrone, Table: roster.TableDrones, Row: d.Row, Key: d.DroneID, Column: roster.ColCurrentAssignment, Value: assignment, Previous: d.CurrentAssignment},
	}
}
