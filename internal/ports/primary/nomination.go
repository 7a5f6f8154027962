package primary

import "context"

// NominationService defines the primary port for self-nomination.
type NominationService interface {
	// Postulate nominates a person owned by the caller as voter or candidate.
	Postulate(ctx context.Context, req PostulateRequest) error
}

// PostulateRequest contains the parameters for a self-nomination.
type PostulateRequest struct {
	PersonID   string
	ElectionID string
	AsVoter    bool
}

// ApprovalService defines the primary port for resolving pending nominations.
type ApprovalService interface {
	// ApproveParticipant approves (Approve=true) or rejects a pending nomination.
	ApproveParticipant(ctx context.Context, req ApproveParticipantRequest) (*ApproveParticipantResponse, error)
}

// ApproveParticipantRequest contains the parameters for resolving a nomination.
type ApproveParticipantRequest struct {
	PersonID   string
	ElectionID string
	Approve    bool
}

// ApproveParticipantResponse describes the outcome of resolving a nomination.
type ApproveParticipantResponse struct {
	PersonID     string
	ElectionID   string
	PreviousRole string
	Role         string // empty when the nomination was rejected
}
