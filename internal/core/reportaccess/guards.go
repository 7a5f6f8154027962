// Package reportaccess contains the pure rules for the report access queue and grants.
// Guards are pure functions that evaluate preconditions without side effects.
package reportaccess

import (
	"fmt"
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

// RequestContext provides context for queueing an access request.
type RequestContext struct {
	CallerID string
}

// PositionContext provides context for resolving a queued request by position.
type PositionContext struct {
	Position    int // 1-indexed
	QueueLength int
}

// ReadContext provides context for report read guards.
type ReadContext struct {
	CallerID string
	AdminID  string
	Granted  bool
}

// RevokeContext provides context for grant revocation.
type RevokeContext struct {
	Identity string
	Granted  bool
}

// CanRequest evaluates whether the caller can queue a report access request.
func CanRequest(ctx RequestContext) GuardResult {
	if strings.TrimSpace(ctx.CallerID) == "" {
		return GuardResult{Kind: domainerr.ErrUnauthorized, Reason: "caller identity is required to request report access"}
	}
	return GuardResult{Allowed: true}
}

// CanResolve evaluates whether a queued request exists at the given position.
// Rules:
// - Positions start at 1
// - A request must sit at that position
func CanResolve(ctx PositionContext) GuardResult {
	if ctx.Position < 1 {
		return GuardResult{
			Kind:   domainerr.ErrInvalidInput,
			Reason: fmt.Sprintf("request position must be at least 1 (got %d)", ctx.Position),
		}
	}
	if ctx.Position > ctx.QueueLength {
		return GuardResult{
			Kind:   domainerr.ErrNotFound,
			Reason: fmt.Sprintf("no report access request at position %d (%d pending)", ctx.Position, ctx.QueueLength),
		}
	}
	return GuardResult{Allowed: true}
}

// CanRead evaluates whether the caller may read election reports.
// Rules:
// - Administrator always may
// - Anyone else needs an approved grant
func CanRead(ctx ReadContext) GuardResult {
	if ctx.CallerID != "" && ctx.CallerID == ctx.AdminID {
		return GuardResult{Allowed: true}
	}
	if ctx.CallerID != "" && ctx.Granted {
		return GuardResult{Allowed: true}
	}
	return GuardResult{
		Kind:   domainerr.ErrUnauthorized,
		Reason: fmt.Sprintf("caller %q has no report access (request it with: electa report request)", ctx.CallerID),
	}
}

// CanRevoke evaluates whether a grant can be revoked.
func CanRevoke(ctx RevokeContext) GuardResult {
	if strings.TrimSpace(ctx.Identity) == "" {
		return GuardResult{Kind: domainerr.ErrInvalidInput, Reason: "identity is required"}
	}
	if !ctx.Granted {
		return GuardResult{Kind: domainerr.ErrNotFound, Reason: fmt.Sprintf("%q has no report access grant", ctx.Identity)}
	}
	return GuardResult{Allowed: true}
}
