// Package app holds the application services: each loads the ledger, runs the
// pure guards from internal/core and saves the result in one store transaction.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	coreadmin "github.com/example/electa/internal/core/admin"
	"github.com/example/electa/internal/core/audit"
	"github.com/example/electa/internal/core/domainerr"
	"github.com/example/electa/internal/ports/secondary"
)

const logModule = "electa/app"

// Deps bundles the secondary ports every ledger service needs.
type Deps struct {
	Store  secondary.LedgerStore
	Caller secondary.CallerProvider
	Clock  secondary.Clock
	Logger *slog.Logger
}

// operation is the per-call context resolved before the ledger is touched.
type operation struct {
	id     string
	caller string
	now    int64
}

func (d Deps) begin(ctx context.Context) (operation, error) {
	caller, err := d.Caller.CurrentCaller(ctx)
	if err != nil {
		return operation{}, fmt.Errorf("failed to resolve caller: %w", err)
	}
	return operation{
		id:     uuid.NewString(),
		caller: caller,
		now:    d.Clock.Now().Unix(),
	}, nil
}

// mutate runs fn inside a store Update and logs the outcome under event.
func (d Deps) mutate(ctx context.Context, event string, attrs []any, fn func(op operation, l *secondary.Ledger) error) error {
	op, err := d.begin(ctx)
	if err != nil {
		return err
	}
	err = d.Store.Update(ctx, func(l *secondary.Ledger) error {
		return fn(op, l)
	})
	d.logOutcome(ctx, op, event, attrs, err, slog.LevelInfo)
	return err
}

// read runs fn inside a store View and logs the outcome under event.
func (d Deps) read(ctx context.Context, event string, attrs []any, fn func(op operation, l *secondary.Ledger) error) error {
	op, err := d.begin(ctx)
	if err != nil {
		return err
	}
	err = d.Store.View(ctx, func(l *secondary.Ledger) error {
		return fn(op, l)
	})
	d.logOutcome(ctx, op, event, attrs, err, slog.LevelDebug)
	return err
}

func (d Deps) logOutcome(ctx context.Context, op operation, event string, attrs []any, err error, successLevel slog.Level) {
	logger := ResolveLogger(d.Logger)
	fields := make([]any, 0, len(attrs)+10)
	fields = append(fields,
		"module", logModule,
		"layer", "application",
		"op_id", op.id,
		"actor", op.caller,
	)
	fields = append(fields, attrs...)

	switch {
	case err == nil:
		logger.Log(ctx, successLevel, "ledger operation completed", append(fields, "event", event)...)
	case domainerr.IsDomain(err):
		logger.Warn("ledger operation rejected", append(fields, "event", event+"_rejected", "error", err.Error())...)
	default:
		logger.Error("ledger operation failed", append(fields, "event", event+"_failed", "error", err.Error())...)
	}
}

// record appends an audit entry for the current operation.
func (op operation) record(l *secondary.Ledger, action, entityType, entityID, detail string) {
	id := audit.GenerateEntryID(l.Seq.Audit)
	l.Seq.Audit++
	l.Audit = append(l.Audit, &secondary.AuditRecord{
		ID:         id,
		OpID:       op.id,
		Actor:      op.caller,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		OccurredAt: op.now,
	})
}

func requireInitialized(l *secondary.Ledger) error {
	return coreadmin.RequireInitialized(coreadmin.LedgerContext{AdminID: l.Admin}).Error()
}

// requireAdmin checks the ledger is initialized and the caller administers it.
func requireAdmin(op operation, l *secondary.Ledger) error {
	if err := requireInitialized(l); err != nil {
		return err
	}
	return coreadmin.CanAdminister(coreadmin.AdminContext{CallerID: op.caller, AdminID: l.Admin}).Error()
}

// errNotFound builds the NotFound error for a missing entity.
func errNotFound(entity, id string) error {
	return domainerr.New(domainerr.ErrNotFound, "%s %s not found", entity, id)
}

// isNotFound reports whether err is a NotFound domain error.
func isNotFound(err error) bool {
	return errors.Is(err, domainerr.ErrNotFound)
}
