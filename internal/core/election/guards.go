package election

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

func allow() GuardResult {
	return GuardResult{Allowed: true}
}

func deny(kind error, format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func notFound(electionID string) GuardResult {
	return deny(domainerr.ErrNotFound, "election %s not found", electionID)
}

// CreateContext provides context for election creation guards.
// Start and End are already-validated Unix seconds.
type CreateContext struct {
	Title string
	Start int64
	End   int64
}

// StatusContext provides context for guards that only look at the election's state.
type StatusContext struct {
	ElectionID         string
	Exists             bool
	Status             Status
	ApprovedCandidates int
}

// PostulateContext provides context for self-nomination guards.
type PostulateContext struct {
	ElectionID           string
	Exists               bool
	Status               Status
	Now                  int64
	Start                int64
	AlreadyParticipating bool
}

// ApprovalContext provides context for approving or rejecting a pending participant.
type ApprovalContext struct {
	ElectionID     string
	PersonID       string
	PersonExists   bool
	ElectionExists bool
	Status         Status
	Role           Role // empty when the person is not in the election
}

// VoteContext provides context for vote casting guards.
type VoteContext struct {
	ElectionID        string
	PersonID          string
	Exists            bool
	Status            Status
	Now               int64
	Start             int64
	End               int64
	Role              Role // empty when the person is not in the election
	HasVoted          bool
	CandidatePosition int // 1-indexed
	CandidateCount    int
}

// CanCreate evaluates whether an election can be created.
// Rules:
// - Title must not be blank
// - Start must be strictly before End
func CanCreate(ctx CreateContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return deny(domainerr.ErrInvalidInput, "election title is required")
	}
	if ctx.Start >= ctx.End {
		return deny(domainerr.ErrInvalidInput, "election start must be before its end")
	}
	return allow()
}

// CanStart evaluates whether an election can be opened.
// Rules:
// - Election must exist and still be created
// - At least MinCandidates candidates must be approved
func CanStart(ctx StatusContext) GuardResult {
	if !ctx.Exists {
		return notFound(ctx.ElectionID)
	}
	if ctx.Status != StatusCreated {
		return deny(domainerr.ErrInvalidState, "election %s is %s, only created elections can be started", ctx.ElectionID, ctx.Status)
	}
	if ctx.ApprovedCandidates < MinCandidates {
		return deny(domainerr.ErrInsufficientCandidates,
			"election %s has %d approved candidate(s), at least %d required", ctx.ElectionID, ctx.ApprovedCandidates, MinCandidates)
	}
	return allow()
}

// CanFinalize evaluates whether an election can be closed.
// Rules:
// - Election must exist and be open
func CanFinalize(ctx StatusContext) GuardResult {
	if !ctx.Exists {
		return notFound(ctx.ElectionID)
	}
	if ctx.Status != StatusOpen {
		return deny(domainerr.ErrInvalidState, "election %s is %s, only open elections can be finalized", ctx.ElectionID, ctx.Status)
	}
	return allow()
}

// CanDelete evaluates whether an election can be deleted.
func CanDelete(ctx StatusContext) GuardResult {
	if !ctx.Exists {
		return notFound(ctx.ElectionID)
	}
	return allow()
}

// CanReport evaluates whether reports can be produced for an election.
// Rules:
// - Election must exist and be closed
func CanReport(ctx StatusContext) GuardResult {
	if !ctx.Exists {
		return notFound(ctx.ElectionID)
	}
	if ctx.Status != StatusClosed {
		return deny(domainerr.ErrInvalidState, "election %s is %s, reports are only available once it is closed", ctx.ElectionID, ctx.Status)
	}
	return allow()
}

// CanPostulate evaluates whether a person can nominate themselves.
// Rules (checked in order):
// - Election must exist
// - Election must still be created
// - Nominations close when the voting window starts
// - Person must not already hold a role in the election
func CanPostulate(ctx PostulateContext) GuardResult {
	if !ctx.Exists {
		return notFound(ctx.ElectionID)
	}
	if ctx.Status != StatusCreated {
		return deny(domainerr.ErrInvalidState, "election %s is %s, nominations are closed", ctx.ElectionID, ctx.Status)
	}
	if ctx.Now >= ctx.Start {
		return deny(domainerr.ErrInvalidState, "nominations for election %s closed when its voting window started", ctx.ElectionID)
	}
	if ctx.AlreadyParticipating {
		return deny(domainerr.ErrAlreadyParticipating, "person already participates in election %s", ctx.ElectionID)
	}
	return allow()
}

func canResolvePending(ctx ApprovalContext) GuardResult {
	if !ctx.PersonExists {
		return deny(domainerr.ErrNotFound, "person %s not found", ctx.PersonID)
	}
	if !ctx.ElectionExists {
		return notFound(ctx.ElectionID)
	}
	if ctx.Status != StatusCreated {
		return deny(domainerr.ErrInvalidState, "election %s is %s, participants can only be approved before it opens", ctx.ElectionID, ctx.Status)
	}
	if !ctx.Role.IsPending() {
		return deny(domainerr.ErrNotFound, "person %s has no pending nomination in election %s", ctx.PersonID, ctx.ElectionID)
	}
	return allow()
}

// CanApprove evaluates whether a pending participant can be promoted.
// Rules:
// - Person and election must exist
// - Election must still be created
// - Person must be a pending voter or pending candidate
func CanApprove(ctx ApprovalContext) GuardResult {
	return canResolvePending(ctx)
}

// CanReject evaluates whether a pending participant can be turned down.
// Same rules as CanApprove.
func CanReject(ctx ApprovalContext) GuardResult {
	return canResolvePending(ctx)
}

// CanVote evaluates whether a ballot can be cast.
// Rules (checked in order):
// - Election must exist and be open
// - Now must fall inside [Start, End]
// - Person must be an approved voter
// - Candidate position must name an approved candidate
// - Voter must not have voted already
func CanVote(ctx VoteContext) GuardResult {
	if !ctx.Exists {
		return notFound(ctx.ElectionID)
	}
	if ctx.Status != StatusOpen {
		return deny(domainerr.ErrInvalidState, "election %s is %s, votes are only accepted while it is open", ctx.ElectionID, ctx.Status)
	}
	if ctx.Now < ctx.Start || ctx.Now > ctx.End {
		return deny(domainerr.ErrOutsideVotingWindow, "election %s is not accepting votes at this time", ctx.ElectionID)
	}
	if ctx.Role != RoleVoter {
		return deny(domainerr.ErrNotApprovedVoter, "person %s is not an approved voter in election %s", ctx.PersonID, ctx.ElectionID)
	}
	if ctx.CandidatePosition < 1 || ctx.CandidatePosition > ctx.CandidateCount {
		return deny(domainerr.ErrInvalidCandidate,
			"candidate position %d out of range (election %s has %d candidate(s))", ctx.CandidatePosition, ctx.ElectionID, ctx.CandidateCount)
	}
	if ctx.HasVoted {
		return deny(domainerr.ErrAlreadyVoted, "person %s already voted in election %s", ctx.PersonID, ctx.ElectionID)
	}
	return allow()
}
