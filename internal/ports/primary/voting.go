package primary

import "context"

// VotingService defines the primary port for casting ballots.
type VotingService interface {
	// Vote casts the ballot of a voter owned by the caller.
	Vote(ctx context.Context, req VoteRequest) error
}

// VoteRequest contains the parameters for casting a ballot.
type VoteRequest struct {
	VoterID           string
	ElectionID        string
	CandidatePosition int // 1-indexed position in the election's candidate list
}
