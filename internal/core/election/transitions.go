// Package election contains the pure business logic for election operations.
// This is part of the Functional Core - no I/O, only pure functions.
package election

// Status represents the lifecycle state of an election.
type Status string

const (
	StatusCreated Status = "created"
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
)

// Role is the place a participant holds in an election.
type Role string

const (
	RolePendingVoter     Role = "pending_voter"
	RoleVoter            Role = "voter"
	RolePendingCandidate Role = "pending_candidate"
	RoleCandidate        Role = "candidate"
)

// MinCandidates is the number of approved candidates an election needs to open.
const MinCandidates = 2

// InitialStatus returns the status of a newly created election.
func InitialStatus() Status {
	return StatusCreated
}

// ValidStatus reports whether s names a known status. Empty is not valid.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusCreated, StatusOpen, StatusClosed:
		return true
	}
	return false
}

// NominationRole returns the pending role a self-nomination lands in.
func NominationRole(asVoter bool) Role {
	if asVoter {
		return RolePendingVoter
	}
	return RolePendingCandidate
}

// IsPending reports whether the role still awaits administrator approval.
func (r Role) IsPending() bool {
	return r == RolePendingVoter || r == RolePendingCandidate
}

// Promoted returns the approved role for a pending role.
// The second result is false when r is not pending.
func (r Role) Promoted() (Role, bool) {
	switch r {
	case RolePendingVoter:
		return RoleVoter, true
	case RolePendingCandidate:
		return RoleCandidate, true
	}
	return r, false
}
