package app

import (
	"context"

	"github.com/example/electa/internal/core/audit"
	coreelection "github.com/example/electa/internal/core/election"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// ApprovalServiceImpl implements the ApprovalService interface.
type ApprovalServiceImpl struct {
	deps Deps
}

// NewApprovalService creates a new ApprovalService with injected dependencies.
func NewApprovalService(deps Deps) *ApprovalServiceImpl {
	return &ApprovalServiceImpl{deps: deps}
}

// ApproveParticipant approves or rejects a pending nomination.
// Approval moves the participant to the tail of its approved list; rejection
// removes the nomination and frees the person to postulate again.
func (s *ApprovalServiceImpl) ApproveParticipant(ctx context.Context, req primary.ApproveParticipantRequest) (*primary.ApproveParticipantResponse, error) {
	event := "participant_approve"
	if !req.Approve {
		event = "participant_reject"
	}
	attrs := []any{"person_id", req.PersonID, "election_id", req.ElectionID}

	var resp *primary.ApproveParticipantResponse
	err := s.deps.mutate(ctx, event, attrs, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}

		// 1. Resolve the pending nomination
		p := l.Persons[req.PersonID]
		e := l.Elections[req.ElectionID]
		guardCtx := coreelection.ApprovalContext{
			ElectionID:     req.ElectionID,
			PersonID:       req.PersonID,
			PersonExists:   p != nil,
			ElectionExists: e != nil,
		}
		var participant *secondary.ParticipantRecord
		if e != nil {
			guardCtx.Status = coreelection.Status(e.Status)
			if participant = e.Participants[req.PersonID]; participant != nil {
				guardCtx.Role = coreelection.Role(participant.Role)
			}
		}

		resp = &primary.ApproveParticipantResponse{
			PersonID:     req.PersonID,
			ElectionID:   req.ElectionID,
			PreviousRole: string(guardCtx.Role),
		}

		// 2. Approve: promote and move to the tail of the approved list
		if req.Approve {
			if result := coreelection.CanApprove(guardCtx); !result.Allowed {
				return result.Error()
			}
			promoted, _ := guardCtx.Role.Promoted()
			participant.Role = string(promoted)
			participant.Seq = e.NextParticipantSeq()
			resp.Role = string(promoted)

			op.record(l, audit.ActionApprove, audit.EntityElection, e.ID, p.ID+" as "+string(promoted))
			return nil
		}

		// 3. Reject: drop the nomination and clear the participation flag
		if result := coreelection.CanReject(guardCtx); !result.Allowed {
			return result.Error()
		}
		delete(e.Participants, p.ID)
		p.Participation[e.ID] = false

		op.record(l, audit.ActionReject, audit.EntityElection, e.ID, p.ID+" as "+string(guardCtx.Role))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

var _ primary.ApprovalService = (*ApprovalServiceImpl)(nil)
