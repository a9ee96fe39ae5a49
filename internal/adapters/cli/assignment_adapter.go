package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/skylark/internal/ports/primary"
)

// EvaluateOptions controls what happens after the report is printed.
type EvaluateOptions struct {
	Confirm   bool // offer to commit the recommendation
	WithDrone bool // commit the drone as well (combined commit)
}

// AssignmentAdapter is a thin adapter that translates CLI operations to AssignmentService calls.
type AssignmentAdapter struct {
	service   primary.AssignmentService
	confirmer Confirmer
	out       io.Writer
}

// NewAssignmentAdapter creates a new AssignmentAdapter.
func NewAssignmentAdapter(service primary.AssignmentService, confirmer Confirmer, out io.Writer) *AssignmentAdapter {
	return &AssignmentAdapter{
		service:   service,
		confirmer: confirmer,
		out:       out,
	}
}

// Evaluate prints the evaluation report and, when asked, commits the recommendation.
func (a *AssignmentAdapter) Evaluate(ctx context.Context, missionID, droneID string, opts EvaluateOptions) error {
	if opts.WithDrone && droneID == "" {
		return fmt.Errorf("--with-drone needs --drone")
	}

	resp, err := a.service.Evaluate(ctx, primary.EvaluateRequest{MissionID: missionID, DroneID: droneID})
	if err != nil {
		return fmt.Errorf("failed to evaluate mission %s: %w", missionID, err)
	}
	renderEvaluation(a.out, resp)

	if !opts.Confirm {
		return nil
	}
	if resp.Decision.Kind != "recommend" {
		warning(a.out, "Nothing to confirm: %s", resp.Decision.Message)
		return nil
	}

	question := fmt.Sprintf("Assign %s to %s?", resp.Decision.PilotName, resp.Mission.ProjectID)
	if opts.WithDrone {
		question = fmt.Sprintf("Assign %s and drone %s to %s?", resp.Decision.PilotName, droneID, resp.Mission.ProjectID)
	}
	ok, err := a.confirmer.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled; nothing written.")
		return nil
	}

	commit, err := a.service.Commit(ctx, primary.CommitRequest{
		MissionID:    resp.Mission.ProjectID,
		PilotName:    resp.Decision.PilotName,
		DroneID:      droneID,
		IncludeDrone: opts.WithDrone,
	})
	if err != nil {
		return err
	}
	return renderWrites(a.out, commit)
}

// ReleasePilot frees a pilot after confirmation.
func (a *AssignmentAdapter) ReleasePilot(ctx context.Context, name string) error {
	return a.release(ctx, fmt.Sprintf("Release pilot %s?", name), primary.ReleaseRequest{PilotName: name})
}

// ReleaseDrone frees a drone after confirmation.
func (a *AssignmentAdapter) ReleaseDrone(ctx context.Context, droneID string) error {
	return a.release(ctx, fmt.Sprintf("Release drone %s?", droneID), primary.ReleaseRequest{DroneID: droneID})
}

func (a *AssignmentAdapter) release(ctx context.Context, question string, req primary.ReleaseRequest) error {
	ok, err := a.confirmer.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled; nothing written.")
		return nil
	}

	resp, err := a.service.Release(ctx, req)
	if err != nil {
		return err
	}
	return renderWrites(a.out, resp)
}
