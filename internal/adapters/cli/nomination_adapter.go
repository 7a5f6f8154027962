package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/electa/internal/ports/primary"
)

// NominationAdapter translates CLI operations to the nomination, approval and voting services.
type NominationAdapter struct {
	nominations primary.NominationService
	approvals   primary.ApprovalService
	voting      primary.VotingService
	out         io.Writer
}

// NewNominationAdapter creates a new NominationAdapter with the given services.
func NewNominationAdapter(nominations primary.NominationService, approvals primary.ApprovalService, voting primary.VotingService, out io.Writer) *NominationAdapter {
	return &NominationAdapter{
		nominations: nominations,
		approvals:   approvals,
		voting:      voting,
		out:         out,
	}
}

// Postulate nominates a person as voter, or as candidate when asCandidate is set.
func (a *NominationAdapter) Postulate(ctx context.Context, personID, electionID string, asCandidate bool) error {
	err := a.nominations.Postulate(ctx, primary.PostulateRequest{
		PersonID:   personID,
		ElectionID: electionID,
		AsVoter:    !asCandidate,
	})
	if err != nil {
		return err
	}

	role := "voter"
	if asCandidate {
		role = "candidate"
	}
	fmt.Fprintf(a.out, "✓ %s postulated as %s in %s (pending approval)\n", personID, role, electionID)
	return nil
}

// Approve approves a pending nomination, or rejects it when reject is set.
func (a *NominationAdapter) Approve(ctx context.Context, personID, electionID string, reject bool) error {
	resp, err := a.approvals.ApproveParticipant(ctx, primary.ApproveParticipantRequest{
		PersonID:   personID,
		ElectionID: electionID,
		Approve:    !reject,
	})
	if err != nil {
		return err
	}

	if reject {
		fmt.Fprintf(a.out, "✓ Rejected %s as %s in %s\n", resp.PersonID, resp.PreviousRole, resp.ElectionID)
		return nil
	}
	fmt.Fprintf(a.out, "✓ Approved %s as %s in %s\n", resp.PersonID, resp.Role, resp.ElectionID)
	return nil
}

// Vote casts a voter's ballot for the candidate at a 1-indexed position.
func (a *NominationAdapter) Vote(ctx context.Context, voterID, electionID string, position int) error {
	err := a.voting.Vote(ctx, primary.VoteRequest{
		VoterID:           voterID,
		ElectionID:        electionID,
		CandidatePosition: position,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Ballot cast by %s in %s\n", voterID, electionID)
	return nil
}
