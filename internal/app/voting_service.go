package app

import (
	"context"

	"github.com/example/electa/internal/core/audit"
	coreelection "github.com/example/electa/internal/core/election"
	coreperson "github.com/example/electa/internal/core/person"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// VotingServiceImpl implements the VotingService interface.
type VotingServiceImpl struct {
	deps Deps
}

// NewVotingService creates a new VotingService with injected dependencies.
func NewVotingService(deps Deps) *VotingServiceImpl {
	return &VotingServiceImpl{deps: deps}
}

// Vote casts the ballot of a voter owned by the caller.
func (s *VotingServiceImpl) Vote(ctx context.Context, req primary.VoteRequest) error {
	attrs := []any{"person_id", req.VoterID, "election_id", req.ElectionID}

	return s.deps.mutate(ctx, "ballot_cast", attrs, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}

		// 1. Caller must own the voter
		p := l.Persons[req.VoterID]
		if result := coreperson.CanActAs(actAsContext(op, req.VoterID, p)); !result.Allowed {
			return result.Error()
		}

		// 2. Ballot guards; the position is resolved to a candidate before mutating
		e := l.Elections[req.ElectionID]
		guardCtx := coreelection.VoteContext{
			ElectionID:        req.ElectionID,
			PersonID:          req.VoterID,
			Exists:            e != nil,
			Now:               op.now,
			CandidatePosition: req.CandidatePosition,
		}
		var voter *secondary.ParticipantRecord
		var candidates []*secondary.ParticipantRecord
		if e != nil {
			guardCtx.Status = coreelection.Status(e.Status)
			guardCtx.Start = e.StartAt
			guardCtx.End = e.EndAt
			if voter = e.Participants[req.VoterID]; voter != nil {
				guardCtx.Role = coreelection.Role(voter.Role)
				guardCtx.HasVoted = voter.HasVoted
			}
			candidates = e.ParticipantsWithRole(string(coreelection.RoleCandidate))
			guardCtx.CandidateCount = len(candidates)
		}
		if result := coreelection.CanVote(guardCtx); !result.Allowed {
			return result.Error()
		}

		// 3. Tally with checked arithmetic, then mark the voter
		candidate := candidates[req.CandidatePosition-1]
		votes, err := coreelection.IncrementTally(candidate.Votes)
		if err != nil {
			return err
		}
		candidate.Votes = votes
		voter.HasVoted = true

		op.record(l, audit.ActionVote, audit.EntityElection, e.ID, p.ID+" voted")
		return nil
	})
}

var _ primary.VotingService = (*VotingServiceImpl)(nil)
