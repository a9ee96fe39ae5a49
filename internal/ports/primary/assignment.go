// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// AssignmentService defines the primary port for evaluating and committing mission assignments.
// Every call works on a freshly loaded snapshot of the roster tables.
type AssignmentService interface {
	// Evaluate runs the drone conflict check and pilot evaluation for a mission.
	Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error)

	// Commit writes a confirmed assignment back to the record store.
	Commit(ctx context.Context, req CommitRequest) (*CommitResponse, error)

	// Release frees a pilot or a drone from its current mission.
	Release(ctx context.Context, req ReleaseRequest) (*CommitResponse, error)
}

// EvaluateRequest contains parameters for an evaluation pass.
type EvaluateRequest struct {
	MissionID string
	DroneID   string // optional; no drone means no drone conflict
}

// EvaluateResponse contains the full outcome of an evaluation pass.
type EvaluateResponse struct {
	Mission            *Mission
	Urgent             bool
	Drone              *Drone // nil when no drone was evaluated
	DroneConflict      bool
	DroneFindings      []Finding
	Eligible           []*Pilot
	ReassignCandidates []*Pilot
	Rejected           []Rejection
	Decision           Decision
	StaleReferences    []StaleReference
}

// Finding is one drone check outcome. Severity is conflict, advisory or warning.
type Finding struct {
	Severity string
	Reason   string
	Detail   string
}

// Rejection pairs a pilot name with the reason they were ruled out.
type Rejection struct {
	Name   string
	Reason string
}

// Decision is the recommendation issued for the mission.
type Decision struct {
	Kind      string // drone_blocked, recommend, reassign, no_pilot
	PilotName string
	Message   string
}

// StaleReference records a current-assignment pointer to a mission that no longer exists.
type StaleReference struct {
	Holder    string // pilot name or drone id
	MissionID string
}

// CommitRequest contains parameters for committing a confirmed assignment.
type CommitRequest struct {
	MissionID    string
	PilotName    string // the pilot the operator confirmed; empty accepts the recommendation
	DroneID      string
	IncludeDrone bool // also deploy the drone (combined commit)
}

// ReleaseRequest names exactly one pilot or drone to free.
type ReleaseRequest struct {
	PilotName string
	DroneID   string
}

// CommitResponse reports every attempted cell write.
type CommitResponse struct {
	Summary string
	Writes  []FieldWrite
}

// FieldWrite is the outcome of one cell write. Err is nil on success.
type FieldWrite struct {
	Entity string
	Key    string
	Column string
	Value  string
	Err    error
}

// Failed returns the writes that did not apply.
func (r *CommitResponse) Failed() []FieldWrite {
	var failed []FieldWrite
	for _, w := range r.Writes {
		if w.Err != nil {
			failed = append(failed, w)
		}
	}
	return failed
}
