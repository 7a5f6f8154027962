package primary

import "context"

// AuditService defines the primary port for reading the audit trail.
type AuditService interface {
	// ListAuditLog retrieves audit entries matching the given filters, newest first.
	ListAuditLog(ctx context.Context, filters AuditFilters) ([]*AuditEntry, error)
}

// AuditEntry represents an audit trail entry at the port boundary.
type AuditEntry struct {
	ID         string
	OpID       string
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	OccurredAt int64
}

// AuditFilters contains filter options for querying the audit trail.
type AuditFilters struct {
	EntityType string
	EntityID   string
	Actor      string
	Limit      int
}
