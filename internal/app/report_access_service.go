package app

import (
	"context"
	"sort"
	"strings"

	"github.com/example/electa/internal/core/audit"
	"github.com/example/electa/internal/core/reportaccess"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// ReportAccessServiceImpl implements the ReportAccessService interface.
type ReportAccessServiceImpl struct {
	deps Deps
}

// NewReportAccessService creates a new ReportAccessService with injected dependencies.
func NewReportAccessService(deps Deps) *ReportAccessServiceImpl {
	return &ReportAccessServiceImpl{deps: deps}
}

// RequestAccess queues the caller for report access.
func (s *ReportAccessServiceImpl) RequestAccess(ctx context.Context) (*primary.ReportRequest, error) {
	var out *primary.ReportRequest
	err := s.deps.mutate(ctx, "report_access_request", nil, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}
		if result := reportaccess.CanRequest(reportaccess.RequestContext{CallerID: op.caller}); !result.Allowed {
			return result.Error()
		}

		record := &secondary.ReportRequestRecord{
			ID:          reportaccess.GenerateRequestID(l.Seq.ReportRequest),
			Requester:   op.caller,
			RequestedAt: op.now,
		}
		l.Seq.ReportRequest++
		l.ReportRequests = append(l.ReportRequests, record)

		op.record(l, audit.ActionReportRequest, audit.EntityReportRequest, record.ID, op.caller)
		out = reportRequestFromRecord(record, len(l.ReportRequests))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveAccess grants access to the request at a 1-indexed queue position.
// Approving an identity that already holds a grant only drops the request.
func (s *ReportAccessServiceImpl) ApproveAccess(ctx context.Context, position int) (*primary.ReportRequest, error) {
	var out *primary.ReportRequest
	err := s.deps.mutate(ctx, "report_access_approve", []any{"position", position}, func(op operation, l *secondary.Ledger) error {
		record, err := dequeueAt(op, l, position)
		if err != nil {
			return err
		}
		if _, granted := l.ReportGrants[record.Requester]; !granted {
			l.ReportGrants[record.Requester] = op.now
		}

		op.record(l, audit.ActionReportApprove, audit.EntityReportRequest, record.ID, record.Requester)
		out = reportRequestFromRecord(record, position)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RejectAccess drops the request at a 1-indexed queue position.
func (s *ReportAccessServiceImpl) RejectAccess(ctx context.Context, position int) (*primary.ReportRequest, error) {
	var out *primary.ReportRequest
	err := s.deps.mutate(ctx, "report_access_reject", []any{"position", position}, func(op operation, l *secondary.Ledger) error {
		record, err := dequeueAt(op, l, position)
		if err != nil {
			return err
		}

		op.record(l, audit.ActionReportReject, audit.EntityReportRequest, record.ID, record.Requester)
		out = reportRequestFromRecord(record, position)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListRequests lists pending requests in queue order.
func (s *ReportAccessServiceImpl) ListRequests(ctx context.Context) ([]*primary.ReportRequest, error) {
	var out []*primary.ReportRequest
	err := s.deps.read(ctx, "report_access_list_requests", nil, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}
		for i, r := range l.ReportRequests {
			out = append(out, reportRequestFromRecord(r, i+1))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListGrants lists identities with report access, ordered by identity.
func (s *ReportAccessServiceImpl) ListGrants(ctx context.Context) ([]*primary.ReportGrant, error) {
	var out []*primary.ReportGrant
	err := s.deps.read(ctx, "report_access_list_grants", nil, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}
		for identity, at := range l.ReportGrants {
			out = append(out, &primary.ReportGrant{Identity: identity, GrantedAt: at})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RevokeAccess removes an identity's report access.
func (s *ReportAccessServiceImpl) RevokeAccess(ctx context.Context, identity string) error {
	identity = strings.TrimSpace(identity)
	return s.deps.mutate(ctx, "report_access_revoke", []any{"identity", identity}, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}
		_, granted := l.ReportGrants[identity]
		if result := reportaccess.CanRevoke(reportaccess.RevokeContext{Identity: identity, Granted: granted}); !result.Allowed {
			return result.Error()
		}

		delete(l.ReportGrants, identity)
		op.record(l, audit.ActionReportRevoke, audit.EntityReportGrant, identity, "revoked")
		return nil
	})
}

// dequeueAt removes and returns the request at a 1-indexed position.
// The position is resolved to its record before the queue is modified.
func dequeueAt(op operation, l *secondary.Ledger, position int) (*secondary.ReportRequestRecord, error) {
	if err := requireAdmin(op, l); err != nil {
		return nil, err
	}
	guardCtx := reportaccess.PositionContext{Position: position, QueueLength: len(l.ReportRequests)}
	if result := reportaccess.CanResolve(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	record := l.ReportRequests[position-1]
	queue := make([]*secondary.ReportRequestRecord, 0, len(l.ReportRequests)-1)
	queue = append(queue, l.ReportRequests[:position-1]...)
	queue = append(queue, l.ReportRequests[position:]...)
	l.ReportRequests = queue
	return record, nil
}

func reportRequestFromRecord(r *secondary.ReportRequestRecord, position int) *primary.ReportRequest {
	return &primary.ReportRequest{
		ID:          r.ID,
		Position:    position,
		Requester:   r.Requester,
		RequestedAt: r.RequestedAt,
	}
}

var _ primary.ReportAccessService = (*ReportAccessServiceImpl)(nil)
