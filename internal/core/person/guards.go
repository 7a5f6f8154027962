package person

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

// RegisterContext provides context for person registration guards.
type RegisterContext struct {
	CallerID        string
	Name            string
	Surname         string
	NationalID      string
	NationalIDTaken bool
}

// ActAsContext provides context for operations a person performs on their own behalf.
type ActAsContext struct {
	PersonID     string
	PersonExists bool
	OwnerID      string
	CallerID     string
}

// CanRegister evaluates whether a person can be registered.
// Rules:
// - Caller identity must be known (it becomes the owner)
// - Name, surname and national id must not be blank
// - National id must not already be registered
func CanRegister(ctx RegisterContext) GuardResult {
	if strings.TrimSpace(ctx.CallerID) == "" {
		return GuardResult{Kind: domainerr.ErrUnauthorized, Reason: "caller identity is required to register a person"}
	}

	var missing []string
	if strings.TrimSpace(ctx.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(ctx.Surname) == "" {
		missing = append(missing, "surname")
	}
	if strings.TrimSpace(ctx.NationalID) == "" {
		missing = append(missing, "national id")
	}
	if len(missing) > 0 {
		return GuardResult{
			Kind:   domainerr.ErrInvalidInput,
			Reason: fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")),
		}
	}

	if ctx.NationalIDTaken {
		return GuardResult{
			Kind:   domainerr.ErrInvalidInput,
			Reason: fmt.Sprintf("national id %s is already registered", ctx.NationalID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanActAs evaluates whether the caller may act as the given person.
// Rules:
// - Person must exist
// - Caller must be the identity bound to the person at registration
func CanActAs(ctx ActAsContext) GuardResult {
	if !ctx.PersonExists {
		return GuardResult{Kind: domainerr.ErrNotFound, Reason: fmt.Sprintf("person %s not found", ctx.PersonID)}
	}
	if ctx.CallerID == "" || ctx.CallerID != ctx.OwnerID {
		return GuardResult{
			Kind:   domainerr.ErrUnauthorized,
			Reason: fmt.Sprintf("caller %q is not the owner of person %s", ctx.CallerID, ctx.PersonID),
		}
	}
	return GuardResult{Allowed: true}
}
