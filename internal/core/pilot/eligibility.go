// Package pilot contains the pure eligibility rules for staffing a mission with pilots.
// This is part of the Functional Core - no I/O, only pure functions.
package pilot

import (
	"fmt"

	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/core/schedule"
)

// Outcome tags a pilot's classification against a mission.
type Outcome string

const (
	OutcomeEligible     Outcome = "eligible"
	OutcomeReassignable Outcome = "reassignable"
	OutcomeRejected     Outcome = "rejected"
)

// Rejection reasons. Status rejections use StatusReason.
const (
	ReasonMissingSkill       = "missing skill"
	ReasonMissingCert        = "missing certification"
	ReasonLocationMismatch   = "location mismatch"
	ReasonOverlappingMission = "overlapping mission"
)

// StatusReason is the rejection reason for a pilot whose status rules them out.
func StatusReason(status roster.PilotStatus) string {
	return fmt.Sprintf("Status: %s", status)
}

// Classification is the tagged outcome for one pilot.
type Classification struct {
	Outcome Outcome
	Reason  string // set when rejected
	// StaleReference is the pilot's current assignment when it names no loaded mission.
	StaleReference string
}

// Rejection pairs a pilot name with the reason they were ruled out.
type Rejection struct {
	Name   string
	Reason string
}

// EvaluationInput is the input to Evaluate. All values are pre-fetched by the caller.
type EvaluationInput struct {
	Mission  roster.Mission
	Snapshot roster.Snapshot // pilots in roster order plus missions for reference lookups
	Urgent   bool
}

// Evaluation partitions the roster. Each list keeps roster order.
type Evaluation struct {
	Eligible           []roster.Pilot
	ReassignCandidates []roster.Pilot
	Rejected           []Rejection
	// StaleReferences lists pilot name → missing mission id pairs seen during the pass.
	StaleReferences []Rejection
}

// Classify applies the decision sequence to one pilot. The first matching rule wins.
// window is the candidate mission's parsed date range.
func Classify(p roster.Pilot, mission roster.Mission, window schedule.Window, snap roster.Snapshot, urgent bool) (Classification, error) {
	if !p.Skills.Has(mission.RequiredSkill) {
		return rejected(ReasonMissingSkill), nil
	}
	if !p.Certifications.Has(mission.RequiredCert) {
		return rejected(ReasonMissingCert), nil
	}
	if p.Location != mission.Location {
		return rejected(ReasonLocationMismatch), nil
	}

	if p.Status == roster.PilotAvailable {
		return Classification{Outcome: OutcomeEligible}, nil
	}

	if p.Status == roster.PilotAssigned && p.HasAssignment() {
		existing, found := snap.MissionByID(p.CurrentAssignment)
		if !found {
			return Classification{Outcome: OutcomeEligible, StaleReference: p.CurrentAssignment}, nil
		}

		existingWindow, err := existing.Window()
		if err != nil {
			return Classification{}, fmt.Errorf("mission %s: %w", existing.ProjectID, err)
		}
		if !window.Overlaps(existingWindow) {
			return Classification{Outcome: OutcomeEligible}, nil
		}
		if urgent && existing.Priority.IsLow() {
			return Classification{Outcome: OutcomeReassignable}, nil
		}
		return rejected(ReasonOverlappingMission), nil
	}

	return rejected(StatusReason(p.Status)), nil
}

// Evaluate classifies every pilot in roster order in a single pass.
// A malformed date on the candidate mission, or on a mission a pilot is
// booked on, aborts the pass with a *schedule.DateFormatError.
func Evaluate(input EvaluationInput) (Evaluation, error) {
	window, err := input.Mission.Window()
	if err != nil {
		return Evaluation{}, fmt.Errorf("mission %s: %w", input.Mission.ProjectID, err)
	}

	var eval Evaluation
	for _, p := range input.Snapshot.Pilots {
		c, err := Classify(p, input.Mission, window, input.Snapshot, input.Urgent)
		if err != nil {
			return Evaluation{}, fmt.Errorf("pilot %s: %w", p.Name, err)
		}

		if c.StaleReference != "" {
			eval.StaleReferences = append(eval.StaleReferences, Rejection{Name: p.Name, Reason: c.StaleReference})
		}

		switch c.Outcome {
		case OutcomeEligible:
			eval.Eligible = append(eval.Eligible, p)
		case OutcomeReassignable:
			eval.ReassignCandidates = append(eval.ReassignCandidates, p)
		default:
			eval.Rejected = append(eval.Rejected, Rejection{Name: p.Name, Reason: c.Reason})
		}
	}

	return eval, nil
}

func rejected(reason string) Classification {
	return Classification{Outcome: OutcomeRejected, Reason: reason}
}
