// Package admin contains the pure rules around the single ledger administrator.
// Guards are pure functions that evaluate preconditions without side effects.
package admin

import (
	"strings"

	"github.com/example/electa/internal/core/domainerr"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    error
	Reason  string
}

// Error converts the guard result to a domain error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return &domainerr.Error{Kind: r.Kind, Reason: r.Reason}
}

func deny(kind error, reason string) GuardResult {
	return GuardResult{Allowed: false, Kind: kind, Reason: reason}
}

// InitializeContext provides context for ledger initialization.
type InitializeContext struct {
	CallerID string
	AdminID  string // empty until the ledger has been initialized
}

// LedgerContext provides context for any operation on an initialized ledger.
type LedgerContext struct {
	AdminID string
}

// AdminContext provides context for administrator-only operations.
type AdminContext struct {
	CallerID string
	AdminID  string
}

// TransferContext provides context for handing the administrator role over.
type TransferContext struct {
	CallerID   string
	AdminID    string
	NewAdminID string
}

// CanInitialize evaluates whether the caller may become the first administrator.
// Rules:
// - Ledger must not already have an administrator
// - Caller identity must not be blank
func CanInitialize(ctx InitializeContext) GuardResult {
	if ctx.AdminID != "" {
		return deny(domainerr.ErrInvalidState, "ledger already initialized")
	}
	if strings.TrimSpace(ctx.CallerID) == "" {
		return deny(domainerr.ErrUnauthorized, "caller identity is required to initialize the ledger")
	}
	return GuardResult{Allowed: true}
}

// RequireInitialized evaluates whether the ledger has been initialized.
func RequireInitialized(ctx LedgerContext) GuardResult {
	if ctx.AdminID == "" {
		return deny(domainerr.ErrInvalidState, "ledger not initialized (run: electa init)")
	}
	return GuardResult{Allowed: true}
}

// IsAdministrator reports whether the caller holds the administrator role.
func IsAdministrator(ctx AdminContext) bool {
	return ctx.AdminID != "" && ctx.CallerID == ctx.AdminID
}

// CanAdminister evaluates whether the caller may run an administrator-only operation.
func CanAdminister(ctx AdminContext) GuardResult {
	if !IsAdministrator(ctx) {
		return deny(domainerr.ErrUnauthorized, "only the administrator can perform this operation")
	}
	return GuardResult{Allowed: true}
}

// CanTransfer evaluates whether the administrator role can move to a new identity.
// Rules:
// - Caller must be the current administrator
// - New identity must not be blank
func CanTransfer(ctx TransferContext) GuardResult {
	if result := CanAdminister(AdminContext{CallerID: ctx.CallerID, AdminID: ctx.AdminID}); !result.Allowed {
		return result
	}
	if strings.TrimSpace(ctx.NewAdminID) == "" {
		return deny(domainerr.ErrInvalidInput, "new administrator identity is required")
	}
	return GuardResult{Allowed: true}
}
