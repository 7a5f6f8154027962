package app

import (
	"context"
	"fmt"

	"github.com/example/electa/internal/core/audit"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	deps Deps
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(deps Deps) *AuditServiceImpl {
	return &AuditServiceImpl{deps: deps}
}

// ListAuditLog retrieves audit entries matching the given filters, newest first.
func (s *AuditServiceImpl) ListAuditLog(ctx context.Context, filters primary.AuditFilters) ([]*primary.AuditEntry, error) {
	// 1. Only the administrator reads the trail
	err := s.deps.read(ctx, "audit_list", []any{"entity_type", filters.EntityType, "entity_id", filters.EntityID}, func(op operation, l *secondary.Ledger) error {
		return requireAdmin(op, l)
	})
	if err != nil {
		return nil, err
	}

	// 2. Query the store
	records, err := s.deps.Store.ListAudit(ctx, secondary.AuditFilters{
		EntityType: filters.EntityType,
		EntityID:   filters.EntityID,
		Actor:      filters.Actor,
		Limit:      audit.EffectiveLimit(filters.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	entries := make([]*primary.AuditEntry, len(records))
	for i, r := range records {
		entries[i] = auditEntryFromRecord(r)
	}
	return entries, nil
}

var _ primary.AuditService = (*AuditServiceImpl)(nil)
