package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/electa/internal/ports/primary"
)

// ReportAdapter translates CLI operations to the report access and report services.
type ReportAdapter struct {
	access  primary.ReportAccessService
	reports primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given services.
func NewReportAdapter(access primary.ReportAccessService, reports primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{access: access, reports: reports, out: out}
}

// Request queues the caller for report access.
func (a *ReportAdapter) Request(ctx context.Context) error {
	req, err := a.access.RequestAccess(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Requested report access as %s (%s, queue position %d)\n", req.Requester, req.ID, req.Position)
	return nil
}

// Approve grants the request at a 1-indexed queue position.
func (a *ReportAdapter) Approve(ctx context.Context, position int) error {
	req, err := a.access.ApproveAccess(ctx, position)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Granted report access to %s (%s)\n", req.Requester, req.ID)
	return nil
}

// Reject drops the request at a 1-indexed queue position.
func (a *ReportAdapter) Reject(ctx context.Context, position int) error {
	req, err := a.access.RejectAccess(ctx, position)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Rejected report access for %s (%s)\n", req.Requester, req.ID)
	return nil
}

// Requests lists pending requests in queue order.
func (a *ReportAdapter) Requests(ctx context.Context) error {
	requests, err := a.access.ListRequests(ctx)
	if err != nil {
		return err
	}

	if len(requests) == 0 {
		fmt.Fprintln(a.out, "No pending report requests")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-4s %-10s %-20s %s\n", "POS", "ID", "REQUESTER", "REQUESTED")
	fmt.Fprintln(a.out, rule)
	for _, r := range requests {
		fmt.Fprintf(a.out, "%-4d %-10s %-20s %s\n", r.Position, r.ID, r.Requester, formatTime(r.RequestedAt))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Grants lists identities with report access.
func (a *ReportAdapter) Grants(ctx context.Context) error {
	grants, err := a.access.ListGrants(ctx)
	if err != nil {
		return err
	}

	if len(grants) == 0 {
		fmt.Fprintln(a.out, "No report grants")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %s\n", "IDENTITY", "GRANTED")
	fmt.Fprintln(a.out, rule)
	for _, g := range grants {
		fmt.Fprintf(a.out, "%-20s %s\n", g.Identity, formatTime(g.GrantedAt))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Revoke removes an identity's report access.
func (a *ReportAdapter) Revoke(ctx context.Context, identity string) error {
	if err := a.access.RevokeAccess(ctx, identity); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Revoked report access for %s\n", identity)
	return nil
}

// Election prints the full report of a closed election.
func (a *ReportAdapter) Election(ctx context.Context, electionID string) error {
	e, err := a.reports.GetElectionReport(ctx, electionID)
	if err != nil {
		return err
	}
	printElection(a.out, e)
	return nil
}

// Participation prints turnout for a closed election.
func (a *ReportAdapter) Participation(ctx context.Context, electionID string) error {
	r, err := a.reports.GetParticipationReport(ctx, electionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nElection:        %s\n", r.ElectionID)
	fmt.Fprintf(a.out, "Votes cast:      %d\n", r.VotesCast)
	fmt.Fprintf(a.out, "Eligible voters: %d\n", r.EligibleVoters)
	fmt.Fprintf(a.out, "Participation:   %.2f%%\n\n", r.ParticipationPct)
	return nil
}

// Results prints candidates ranked by votes.
func (a *ReportAdapter) Results(ctx context.Context, electionID string) error {
	results, err := a.reports.GetResultReport(ctx, electionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%-5s %-12s %-24s %s\n", "RANK", "PERSON", "NAME", "VOTES")
	fmt.Fprintln(a.out, rule)
	for i, c := range results {
		fmt.Fprintf(a.out, "%-5d %-12s %-24s %d\n", i+1, c.PersonID, c.Name+" "+c.Surname, c.Votes)
	}
	fmt.Fprintln(a.out)
	return nil
}
