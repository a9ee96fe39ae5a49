// Package drone contains the pure conflict rules for putting a drone on a mission.
// This is part of the Functional Core - no I/O, only pure functions.
package drone

import (
	"fmt"

	"github.com/example/skylark/internal/core/roster"
)

// Severity classifies a finding.
type Severity string

const (
	// SeverityConflict blocks the assignment.
	SeverityConflict Severity = "conflict"
	// SeverityAdvisory is informational: the operator may act on it.
	SeverityAdvisory Severity = "advisory"
	// SeverityWarning is a soft warning that never blocks.
	SeverityWarning Severity = "warning"
)

// Finding reasons.
const (
	ReasonMaintenance       = "under maintenance"
	ReasonDoubleBooked      = "double-booked"
	ReasonReassignable      = "reassignable from low-priority mission"
	ReasonMissingCapability = "lacks required capability"
	ReasonLocationMismatch  = "location mismatch"
)

// Finding is one human-readable outcome of a conflict check.
type Finding struct {
	Severity Severity
	Reason   string
	Detail   string
}

// ConflictContext is the input to CheckConflict. All values are pre-fetched by the caller.
type ConflictContext struct {
	Drone    roster.Drone
	Mission  roster.Mission
	Snapshot roster.Snapshot // resolves the drone's current assignment
	Urgent   bool
}

// ConflictResult is the outcome of CheckConflict.
type ConflictResult struct {
	Conflict bool
	Findings []Finding
	// StaleReference is the drone's current assignment when it names no loaded mission.
	StaleReference string
}

// Reasons returns the reasons of all findings in evaluation order.
func (r ConflictResult) Reasons() []string {
	reasons := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		reasons[i] = f.Reason
	}
	return reasons
}

// CheckConflict evaluates a drone against a mission.
// Every rule runs; each one that fires contributes its own finding.
// Malformed dates on the mission, or on the mission the drone is booked on,
// abort the check with a *schedule.DateFormatError.
func CheckConflict(ctx ConflictContext) (ConflictResult, error) {
	var result ConflictResult

	window, err := ctx.Mission.Window()
	if err != nil {
		return ConflictResult{}, fmt.Errorf("mission %s: %w", ctx.Mission.ProjectID, err)
	}

	// Rule 1: maintenance
	if ctx.Drone.Status.IsMaintenance() {
		result.add(Finding{
			Severity: SeverityConflict,
			Reason:   ReasonMaintenance,
			Detail:   fmt.Sprintf("drone %s status is %q", ctx.Drone.DroneID, ctx.Drone.Status),
		})
	}

	// Rule 2: double-booking against the drone's current assignment
	if ctx.Drone.HasAssignment() {
		existing, found := ctx.Snapshot.MissionByID(ctx.Drone.CurrentAssignment)
		if !found {
			result.StaleReference = ctx.Drone.CurrentAssignment
		} else {
			existingWindow, err := existing.Window()
			if err != nil {
				return ConflictResult{}, fmt.Errorf("mission %s: %w", existing.ProjectID, err)
			}
			if window.Overlaps(existingWindow) {
				detail := fmt.Sprintf("drone %s is on %s (%s → %s, priority %s)",
					ctx.Drone.DroneID, existing.ProjectID, existing.StartDate, existing.EndDate, existing.Priority)
				if ctx.Urgent && existing.Priority.IsLow() {
					result.add(Finding{Severity: SeverityAdvisory, Reason: ReasonReassignable, Detail: detail})
				} else {
					result.add(Finding{Severity: SeverityConflict, Reason: ReasonDoubleBooked, Detail: detail})
				}
			}
		}
	}

	// Rule 3: capability
	if !ctx.Drone.HasCapability(ctx.Mission.RequiredSkill) {
		result.add(Finding{
			Severity: SeverityConflict,
			Reason:   ReasonMissingCapability,
			Detail:   fmt.Sprintf("%q not found in %q", roster.Fold(ctx.Mission.RequiredSkill), ctx.Drone.Capabilities),
		})
	}

	// Rule 4: location (exact, case-sensitive; soft)
	if ctx.Drone.Location != ctx.Mission.Location {
		result.add(Finding{
			Severity: SeverityWarning,
			Reason:   ReasonLocationMismatch,
			Detail:   fmt.Sprintf("drone is in %q, mission is in %q", ctx.Drone.Location, ctx.Mission.Location),
		})
	}

	return result, nil
}

func (r *ConflictResult) add(f Finding) {
	r.Findings = append(r.Findings, f)
	if f.Severity == SeverityConflict {
		r.Conflict = true
	}
}
