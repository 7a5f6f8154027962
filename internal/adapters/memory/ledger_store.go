// Package memory contains an in-process ledger store.
// State lives only as long as the process; it backs --store memory and tests.
package memory

import (
	"context"
	"sync"

	"github.com/example/electa/internal/ports/secondary"
)

// LedgerStore implements secondary.LedgerStore in memory.
// Update runs fn on a deep copy and swaps it in only when fn succeeds.
type LedgerStore struct {
	mu     sync.RWMutex
	ledger *secondary.Ledger
	audit  []*secondary.AuditRecord
}

// NewLedgerStore creates an empty in-memory ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{ledger: secondary.NewLedger()}
}

// View passes a copy of the ledger to fn.
func (s *LedgerStore) View(ctx context.Context, fn func(*secondary.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	working := s.ledger.Clone()
	s.mu.RUnlock()

	return fn(working)
}

// Update applies fn to a copy of the ledger and keeps the copy on success.
func (s *LedgerStore) Update(ctx context.Context, fn func(*secondary.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.ledger.Clone()
	if err := fn(working); err != nil {
		return err
	}

	s.audit = append(s.audit, working.Audit...)
	working.Audit = nil
	s.ledger = working
	return nil
}

// ListAudit retrieves audit entries matching the filters, newest first.
func (s *LedgerStore) ListAudit(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*secondary.AuditRecord
	for i := len(s.audit) - 1; i >= 0; i-- {
		r := s.audit[i]
		if !matches(r, filters) {
			continue
		}
		copied := *r
		out = append(out, &copied)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}

func matches(r *secondary.AuditRecord, filters secondary.AuditFilters) bool {
	if filters.EntityType != "" && r.EntityType != filters.EntityType {
		return false
	}
	if filters.EntityID != "" && r.EntityID != filters.EntityID {
		return false
	}
	if filters.Actor != "" && r.Actor != filters.Actor {
		return false
	}
	return true
}

var _ secondary.LedgerStore = (*LedgerStore)(nil)
