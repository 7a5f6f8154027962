package primary

import (
	"context"

	"github.com/example/electa/internal/core/calendar"
)

// ElectionService defines the primary port for the election catalog.
type ElectionService interface {
	// CreateElection creates an election in the created state.
	CreateElection(ctx context.Context, req CreateElectionRequest) (*CreateElectionResponse, error)

	// StartElection opens an election for voting.
	StartElection(ctx context.Context, electionID string) error

	// FinalizeElection closes an open election.
	FinalizeElection(ctx context.Context, electionID string) error

	// DeleteElection removes an election and every person's participation slot for it.
	DeleteElection(ctx context.Context, electionID string) error

	// GetElection retrieves an election. The bool is false when it does not exist.
	GetElection(ctx context.Context, electionID string) (*Election, bool, error)

	// ListElections lists elections ordered by ID.
	ListElections(ctx context.Context, filters ElectionFilters) ([]*Election, error)
}

// CreateElectionRequest contains the parameters for creating an election.
type CreateElectionRequest struct {
	Title string
	Start calendar.Date
	End   calendar.Date
}

// CreateElectionResponse contains the result of creating an election.
type CreateElectionResponse struct {
	ElectionID string
	Election   *Election
}

// ElectionFilters contains filter options for listing elections.
type ElectionFilters struct {
	Status string
}

// Election represents an election at the port boundary.
// Participant lists are ordered by the time each entry joined its list.
type Election struct {
	ID                string
	Title             string
	Start             int64
	End               int64
	Status            string
	CreatedAt         int64
	PendingVoters     []*Participant
	Voters            []*Voter
	PendingCandidates []*Participant
	Candidates        []*Candidate
}

// Participant is the snapshot of a person taken when they nominated themselves.
type Participant struct {
	PersonID   string
	Name       string
	Surname    string
	NationalID string
}

// Voter is an approved voter.
type Voter struct {
	Participant
	HasVoted bool
}

// Candidate is an approved candidate with its 1-indexed ballot position.
type Candidate struct {
	Participant
	Position int
	Votes    uint32
}
