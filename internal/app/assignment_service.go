package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/core/assignment"
	"github.com/example/skylark/internal/core/drone"
	"github.com/example/skylark/internal/core/pilot"
	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface.
type AssignmentServiceImpl struct {
	store    secondary.RecordStore
	executor EffectExecutor
	logger   Logger
}

// NewAssignmentService creates a new AssignmentService with injected dependencies.
// logger may be nil.
func NewAssignmentService(store secondary.RecordStore, executor EffectExecutor, logger Logger) *AssignmentServiceImpl {
	if logger == nil {
		logger = nopLogger{}
	}
	return &AssignmentServiceImpl{
		store:    store,
		executor: executor,
		logger:   logger,
	}
}

// passResult is the combined outcome of the two evaluators and the decision.
type passResult struct {
	mission    roster.Mission
	drone      *roster.Drone
	urgent     bool
	conflicts  drone.ConflictResult
	evaluation pilot.Evaluation
	decision   assignment.Decision
}

// Evaluate runs one evaluation pass for a mission.
func (s *AssignmentServiceImpl) Evaluate(ctx context.Context, req primary.EvaluateRequest) (*primary.EvaluateResponse, error) {
	// 1. Fresh snapshot
	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}

	// 2. Evaluate
	pass, err := s.runPass(snap.Snapshot, req.MissionID, req.DroneID)
	if err != nil {
		return nil, err
	}

	// 3. Translate
	return s.passToResponse(pass), nil
}

// Commit writes a confirmed assignment after re-evaluating on a fresh snapshot.
func (s *AssignmentServiceImpl) Commit(ctx context.Context, req primary.CommitRequest) (*primary.CommitResponse, error) {
	// 1. Fresh snapshot; the operator confirmed against an earlier one
	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}

	// 2. Re-run the evaluation
	pass, err := s.runPass(snap.Snapshot, req.MissionID, req.DroneID)
	if err != nil {
		return nil, err
	}

	// 3. Guard
	guardCtx := assignment.CommitContext{
		MissionID:     pass.mission.ProjectID,
		PilotName:     req.PilotName,
		Decision:      pass.decision,
		IncludeDrone:  req.IncludeDrone,
		DroneID:       req.DroneID,
		DroneConflict: pass.conflicts.Conflict,
	}
	if result := assignment.CanCommitAssignment(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	// 4. Plan (pure)
	planInput := assignment.CommitPlanInput{
		MissionID: pass.mission.ProjectID,
		Pilot:     *pass.decision.Pilot,
	}
	if req.IncludeDrone {
		planInput.Drone = pass.drone
	}
	plan := assignment.GenerateCommitPlan(planInput)

	// 5. Execute; every write is attempted
	return &primary.CommitResponse{
		Summary: plan.Summary,
		Writes:  s.executor.Execute(ctx, snap.handles, plan.Effects()),
	}, nil
}

// Release frees exactly one pilot or drone.
func (s *AssignmentServiceImpl) Release(ctx context.Context, req primary.ReleaseRequest) (*primary.CommitResponse, error) {
	if (req.PilotName == "") == (req.DroneID == "") {
		return nil, fmt.Errorf("release needs exactly one of pilot or drone")
	}

	snap, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}

	var plan assignment.CommitPlan
	if req.PilotName != "" {
		p, ok := snap.PilotByName(req.PilotName)
		if !ok {
			return nil, fmt.Errorf("pilot %s: %w", req.PilotName, secondary.ErrNotFound)
		}
		if result := assignment.CanReleasePilot(p); !result.Allowed {
			return nil, result.Error()
		}
		plan = assignment.GeneratePilotReleasePlan(p)
	} else {
		d, ok := snap.DroneByID(req.DroneID)
		if !ok {
			return nil, fmt.Errorf("drone %s: %w", req.DroneID, secondary.ErrNotFound)
		}
		if result := assignment.CanReleaseDrone(d); !result.Allowed {
			return nil, result.Error()
		}
		plan = assignment.GenerateDroneReleasePlan(d)
	}

	return &primary.CommitResponse{
		Summary: plan.Summary,
		Writes:  s.executor.Execute(ctx, snap.handles, plan.Effects()),
	}, nil
}

// runPass resolves the selection and runs both evaluators and the decision.
// The drone check and pilot evaluation are independent of each other.
func (s *AssignmentServiceImpl) runPass(snap roster.Snapshot, missionID, droneID string) (*passResult, error) {
	mission, ok := snap.MissionByID(missionID)
	if !ok {
		return nil, fmt.Errorf("mission %s: %w", missionID, secondary.ErrNotFound)
	}

	pass := &passResult{
		mission: mission,
		urgent:  mission.Priority.IsUrgent(),
	}

	if droneID != "" {
		d, ok := snap.DroneByID(droneID)
		if !ok {
			return nil, fmt.Errorf("drone %s: %w", droneID, secondary.ErrNotFound)
		}
		pass.drone = &d

		conflicts, err := drone.CheckConflict(drone.ConflictContext{
			Drone:    d,
			Mission:  mission,
			Snapshot: snap,
			Urgent:   pass.urgent,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to check drone %s: %w", d.DroneID, err)
		}
		pass.conflicts = conflicts
		if conflicts.StaleReference != "" {
			s.logger.Printf("[warn] stale reference: drone %s points at missing mission %s", d.DroneID, conflicts.StaleReference)
		}
	}

	evaluation, err := pilot.Evaluate(pilot.EvaluationInput{
		Mission:  mission,
		Snapshot: snap,
		Urgent:   pass.urgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate pilots: %w", err)
	}
	pass.evaluation = evaluation
	for _, stale := range evaluation.StaleReferences {
		s.logger.Printf("[warn] stale reference: pilot %s points at missing mission %s", stale.Name, stale.Reason)
	}

	pass.decision = assignment.Decide(assignment.DecisionInput{
		DroneConflict: pass.conflicts.Conflict,
		Evaluation:    evaluation,
	})

	s.logger.Printf("[info] evaluated %s: eligible=%d reassign=%d rejected=%d decision=%s %s",
		mission.ProjectID, len(evaluation.Eligible), len(evaluation.ReassignCandidates),
		len(evaluation.Rejected), pass.decision.Kind, pass.decision.PilotName())

	return pass, nil
}

func (s *AssignmentServiceImpl) passToResponse(pass *passResult) *primary.EvaluateResponse {
	resp := &primary.EvaluateResponse{
		Mission:       missionToPort(pass.mission),
		Urgent:        pass.urgent,
		DroneConflict: pass.conflicts.Conflict,
		Decision: primary.Decision{
			Kind:      string(pass.decision.Kind),
			PilotName: pass.decision.PilotName(),
			Message:   pass.decision.Message,
		},
	}

	if pass.drone != nil {
		resp.Drone = droneToPort(*pass.drone)
		if pass.conflicts.StaleReference != "" {
			resp.StaleReferences = append(resp.StaleReferences, primary.StaleReference{
				Holder:    pass.drone.DroneID,
				MissionID: pass.conflicts.StaleReference,
			})
		}
	}
	for _, f := range pass.conflicts.Findings {
		resp.DroneFindings = append(resp.DroneFindings, primary.Finding{
			Severity: string(f.Severity),
			Reason:   f.Reason,
			Detail:   f.Detail,
		})
	}

	for _, p := range pass.evaluation.Eligible {
		resp.Eligible = append(resp.Eligible, pilotToPort(p))
	}
	for _, p := range pass.evaluation.ReassignCandidates {
		resp.ReassignCandidates = append(resp.ReassignCandidates, pilotToPort(p))
	}
	for _, r := range pass.evaluation.Rejected {
		resp.Rejected = append(resp.Rejected, primary.Rejection{Name: r.Name, Reason: r.Reason})
	}
	for _, stale := range pass.evaluation.StaleReferences {
		resp.StaleReferences = append(resp.StaleReferences, primary.StaleReference{
			Holder:    stale.Name,
			MissionID: stale.Reason,
		})
	}

	return resp
}

func missionToPort(m roster.Mission) *primary.Mission {
	return &primary.Mission{
		ProjectID:     m.ProjectID,
		Location:      m.Location,
		RequiredSkill: m.RequiredSkill,
		RequiredCert:  m.RequiredCert,
		Priority:      string(m.Priority),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
	}
}

func pilotToPort(p roster.Pilot) *primary.Pilot {
	return &primary.Pilot{
		PilotID:           p.PilotID,
		Name:              p.Name,
		Location:          p.Location,
		Skills:            []string(p.Skills),
		Certifications:    []string(p.Certifications),
		Status:            string(p.Status),
		CurrentAssignment: p.CurrentAssignment,
	}
}

func droneToPort(d roster.Drone) *primary.Drone {
	return &primary.Drone{
		DroneID:           d.DroneID,
		Model:             d.Model,
		Capabilities:      d.Capabilities,
		Location:          d.Location,
		Status:            string(d.Status),
		CurrentAssignment: d.CurrentAssignment,
	}
}

// Ensure AssignmentServiceImpl implements the interface
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
