// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/skylark/internal/ports/primary"
)

var (
	successStyle = color.New(color.FgGreen)
	warningStyle = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	infoStyle    = color.New(color.FgCyan)
)

func success(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, successStyle.Sprint("✓ "+fmt.Sprintf(format, args...)))
}

func warning(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, warningStyle.Sprint("⚠ "+fmt.Sprintf(format, args...)))
}

func failure(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, errorStyle.Sprint("✗ "+fmt.Sprintf(format, args...)))
}

func info(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, infoStyle.Sprint(fmt.Sprintf(format, args...)))
}

func renderMission(out io.Writer, m *primary.Mission) {
	fmt.Fprintf(out, "\nMission:  %s\n", m.ProjectID)
	fmt.Fprintf(out, "Location: %s\n", m.Location)
	fmt.Fprintf(out, "Requires: %s / %s\n", m.RequiredSkill, m.RequiredCert)
	fmt.Fprintf(out, "Priority: %s\n", m.Priority)
	fmt.Fprintf(out, "Dates:    %s → %s\n", m.StartDate, m.EndDate)
}

// renderEvaluation writes the full report for one evaluation pass.
func renderEvaluation(out io.Writer, resp *primary.EvaluateResponse) {
	renderMission(out, resp.Mission)
	if resp.Urgent {
		warning(out, "Urgent mission: reassignment from low-priority missions enabled")
	}
	fmt.Fprintln(out)

	if resp.Drone != nil {
		fmt.Fprintf(out, "Drone %s (%s, %s, %s)\n", resp.Drone.DroneID, resp.Drone.Model, resp.Drone.Status, resp.Drone.Location)
		if len(resp.DroneFindings) == 0 {
			success(out, "No drone conflicts")
		}
		for _, f := range resp.DroneFindings {
			line := f.Reason
			if f.Detail != "" {
				line += ": " + f.Detail
			}
			switch f.Severity {
			case "conflict":
				failure(out, "%s", line)
			case "advisory":
				info(out, "ℹ %s", line)
			default:
				warning(out, "%s", line)
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Eligible:     %s\n", namesOrDash(resp.Eligible))
	fmt.Fprintf(out, "Reassignable: %s\n\n", namesOrDash(resp.ReassignCandidates))

	switch resp.Decision.Kind {
	case "recommend":
		success(out, "%s", resp.Decision.Message)
	case "reassign":
		warning(out, "%s", resp.Decision.Message)
	default:
		failure(out, "%s", resp.Decision.Message)
	}

	if len(resp.Rejected) > 0 {
		fmt.Fprintln(out, "\nRejected pilots:")
		for _, r := range resp.Rejected {
			fmt.Fprintf(out, "  %-15s %s\n", r.Name, r.Reason)
		}
	}

	if len(resp.StaleReferences) > 0 {
		fmt.Fprintln(out, "\nStale assignments (treated as free):")
		for _, s := range resp.StaleReferences {
			fmt.Fprintf(out, "  %-15s → %s (mission not found)\n", s.Holder, s.MissionID)
		}
	}
	fmt.Fprintln(out)
}

// renderWrites reports each attempted cell write. It returns an error when
// any write failed so the command exits non-zero.
func renderWrites(out io.Writer, resp *primary.CommitResponse) error {
	for _, w := range resp.Writes {
		if w.Err != nil {
			failure(out, "%s %s: %s not updated: %v", w.Entity, w.Key, w.Column, w.Err)
			continue
		}
		success(out, "%s %s: %s = %q", w.Entity, w.Key, w.Column, w.Value)
	}

	failed := resp.Failed()
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d writes failed for %s; applied writes were kept", len(failed), len(resp.Writes), resp.Summary)
	}
	success(out, "Done: %s", resp.Summary)
	return nil
}

func namesOrDash(pilots []*primary.Pilot) string {
	if len(pilots) == 0 {
		return "-"
	}
	names := make([]string, len(pilots))
	for i, p := range pilots {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
