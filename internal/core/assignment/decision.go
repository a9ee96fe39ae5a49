// Package assignment contains the pure business logic for turning evaluation
// results into a recommendation and a commit plan.
// This is part of the Functional Core - no I/O, only pure functions.
package assignment

import (
	"fmt"

	"github.com/example/skylark/internal/core/pilot"
	"github.com/example/skylark/internal/core/roster"
)

// DecisionKind tags which branch of the policy was taken.
type DecisionKind string

const (
	KindDroneBlocked DecisionKind = "drone_blocked"
	KindRecommend    DecisionKind = "recommend"
	KindReassign     DecisionKind = "reassign"
	KindNoPilot      DecisionKind = "no_pilot"
)

const (
	MessageResolveDrone = "resolve drone conflicts first"
	MessageNoPilot      = "no suitable pilot found"
)

// DecisionInput combines the drone and pilot evaluations.
type DecisionInput struct {
	DroneConflict bool
	Evaluation    pilot.Evaluation
}

// Decision is the single outcome of an evaluation pass.
// Pilot is set for KindRecommend and KindReassign.
type Decision struct {
	Kind    DecisionKind
	Pilot   *roster.Pilot
	Message string
}

// Decide applies the assignment policy; the first applicable branch wins.
// Selection is first-fit in roster order with no secondary ranking.
func Decide(in DecisionInput) Decision {
	if in.DroneConflict {
		return Decision{Kind: KindDroneBlocked, Message: MessageResolveDrone}
	}

	if len(in.Evaluation.Eligible) > 0 {
		chosen := in.Evaluation.Eligible[0]
		return Decision{
			Kind:    KindRecommend,
			Pilot:   &chosen,
			Message: fmt.Sprintf("recommended pilot: %s (%s)", chosen.Name, chosen.Status),
		}
	}

	if len(in.Evaluation.ReassignCandidates) > 0 {
		candidate := in.Evaluation.ReassignCandidates[0]
		return Decision{
			Kind:    KindReassign,
			Pilot:   &candidate,
			Message: fmt.Sprintf("no free pilots; suggested reassignment: %s (currently on low-priority mission %s)", candidate.Name, candidate.CurrentAssignment),
		}
	}

	return Decision{Kind: KindNoPilot, Message: MessageNoPilot}
}

// PilotName returns the chosen pilot's name, or "" when there is none.
func (d Decision) PilotName() string {
	if d.Pilot == nil {
		return ""
	}
	return d.Pilot.Name
}
