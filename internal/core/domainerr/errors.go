// Package domainerr defines the error kinds every ledger operation can fail with.
// Callers match kinds with errors.Is; the reason carries the human message.
package domainerr

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrNotFound               = errors.New("not found")
	ErrInvalidState           = errors.New("invalid state")
	ErrInvalidInput           = errors.New("invalid input")
	ErrAlreadyParticipating   = errors.New("already participating")
	ErrAlreadyVoted           = errors.New("already voted")
	ErrInsufficientCandidates = errors.New("insufficient candidates")
	ErrOutsideVotingWindow    = errors.New("outside voting window")
	ErrNotApprovedVoter       = errors.New("not an approved voter")
	ErrInvalidCandidate       = errors.New("invalid candidate")
	ErrOverflow               = errors.New("arithmetic overflow")
	ErrDivisionByZero         = errors.New("division by zero")
)

// Kinds lists every error kind in a stable order.
var Kinds = []error{
	ErrUnauthorized,
	ErrNotFound,
	ErrInvalidState,
	ErrInvalidInput,
	ErrAlreadyParticipating,
	ErrAlreadyVoted,
	ErrInsufficientCandidates,
	ErrOutsideVotingWindow,
	ErrNotApprovedVoter,
	ErrInvalidCandidate,
	ErrOverflow,
	ErrDivisionByZero,
}

// Error is a domain failure of a given kind with a human-readable reason.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return e.Reason
}

// Unwrap exposes the kind so errors.Is matches it.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New returns an *Error of the given kind with a formatted reason.
func New(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// KindOf returns the domain kind wrapped by err, or nil for infrastructure errors.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range Kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// IsDomain reports whether err carries one of the domain kinds.
func IsDomain(err error) bool {
	return KindOf(err) != nil
}
