package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/electa/internal/ports/primary"
)

// AuditAdapter translates CLI operations to AuditService calls.
type AuditAdapter struct {
	service primary.AuditService
	out     io.Writer
}

// NewAuditAdapter creates a new AuditAdapter with the given service.
func NewAuditAdapter(service primary.AuditService, out io.Writer) *AuditAdapter {
	return &AuditAdapter{service: service, out: out}
}

// Log prints audit entries, newest first.
func (a *AuditAdapter) Log(ctx context.Context, filters primary.AuditFilters) error {
	entries, err := a.service.ListAuditLog(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to fetch audit log: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries found")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "[%s] %s %-12s %-22s %s:%s %s\n",
			formatTime(e.OccurredAt), e.ID, e.Actor, e.Action, e.EntityType, e.EntityID, e.Detail)
	}
	return nil
}
