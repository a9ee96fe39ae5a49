package assignment

import (
	"fmt"

	"github.com/example/skylark/internal/core/roster"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CommitContext provides context for the commit guard.
// Populated by the caller from a fresh evaluation pass.
type CommitContext struct {
	MissionID     string
	PilotName     string // pilot the operator confirmed
	Decision      Decision
	IncludeDrone  bool
	DroneID       string // empty when no drone was evaluated
	DroneConflict bool
}

// CanCommitAssignment evaluates whether a confirmed assignment may be written.
// Rule: only a recommendation commits; reassignment suggestions are advisory.
// Rule: the confirmed pilot must still be the recommended pilot.
// Rule: a combined commit needs a conflict-free drone.
func CanCommitAssignment(ctx CommitContext) GuardResult {
	if ctx.IncludeDrone && ctx.DroneID == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot commit drone for mission %s: no drone selected", ctx.MissionID),
		}
	}
	if ctx.DroneConflict || ctx.Decision.Kind == KindDroneBlocked {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot assign mission %s: %s", ctx.MissionID, MessageResolveDrone),
		}
	}

	switch ctx.Decision.Kind {
	case KindRecommend:
	case KindReassign:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot assign mission %s: %s is only a reassignment suggestion and needs operator action on their current mission", ctx.MissionID, ctx.Decision.PilotName()),
		}
	default:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot assign mission %s: %s", ctx.MissionID, MessageNoPilot),
		}
	}

	if ctx.PilotName != "" && ctx.PilotName != ctx.Decision.PilotName() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot assign %s to mission %s: current recommendation is %s", ctx.PilotName, ctx.MissionID, ctx.Decision.PilotName()),
		}
	}

	return GuardResult{Allowed: true}
}

// CanReleasePilot evaluates whether a pilot can be freed from their mission.
// Rule: only Assigned pilots can be released.
func CanReleasePilot(p roster.Pilot) GuardResult {
	if p.Status != roster.PilotAssigned {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot release pilot %s: status is %q, not %q", p.Name, p.Status, roster.PilotAssigned),
		}
	}
	return GuardResult{Allowed: true}
}

// CanReleaseDrone evaluates whether a drone can be freed from its mission.
// Rule: only Deployed drones can be released.
func CanReleaseDrone(d roster.Drone) GuardResult {
	if !d.Status.IsDeployed() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot release drone %s: status is %q, not %q", d.DroneID, d.Status, roster.DroneDeployed),
		}
	}
	return GuardResult{Allowed: true}
}
