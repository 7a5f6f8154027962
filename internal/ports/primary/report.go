package primary

import "context"

// ReportAccessService defines the primary port for the report access registry.
type ReportAccessService interface {
	// RequestAccess queues the caller for report access.
	RequestAccess(ctx context.Context) (*ReportRequest, error)

	// ApproveAccess grants access to the request at a 1-indexed queue position.
	ApproveAccess(ctx context.Context, position int) (*ReportRequest, error)

	// RejectAccess drops the request at a 1-indexed queue position.
	RejectAccess(ctx context.Context, position int) (*ReportRequest, error)

	// ListRequests lists pending requests in queue order.
	ListRequests(ctx context.Context) ([]*ReportRequest, error)

	// ListGrants lists identities with report access.
	ListGrants(ctx context.Context) ([]*ReportGrant, error)

	// RevokeAccess removes an identity's report access.
	RevokeAccess(ctx context.Context, identity string) error
}

// ReportRequest is a queued report access request.
type ReportRequest struct {
	ID          string
	Position    int
	Requester   string
	RequestedAt int64
}

// ReportGrant is an identity allowed to read reports.
type ReportGrant struct {
	Identity  string
	GrantedAt int64
}

// ReportService defines the primary port for post-election reports.
type ReportService interface {
	// GetElectionReport returns the full closed election.
	GetElectionReport(ctx context.Context, electionID string) (*Election, error)

	// GetParticipationReport returns turnout for a closed election.
	GetParticipationReport(ctx context.Context, electionID string) (*ParticipationReport, error)

	// GetResultReport returns candidates ranked by votes, highest first.
	GetResultReport(ctx context.Context, electionID string) ([]*Candidate, error)
}

// ParticipationReport is the turnout of a closed election.
type ParticipationReport struct {
	ElectionID       string
	VotesCast        uint64
	EligibleVoters   int
	ParticipationPct float64
}
