package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/electa/internal/core/audit"
	"github.com/example/electa/internal/core/calendar"
	"github.com/example/electa/internal/core/domainerr"
	coreelection "github.com/example/electa/internal/core/election"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// ElectionServiceImpl implements the ElectionService interface.
type ElectionServiceImpl struct {
	deps Deps
}

// NewElectionService creates a new ElectionService with injected dependencies.
func NewElectionService(deps Deps) *ElectionServiceImpl {
	return &ElectionServiceImpl{deps: deps}
}

// CreateElection creates an election in the created state.
func (s *ElectionServiceImpl) CreateElection(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error) {
	title := strings.TrimSpace(req.Title)

	var resp *primary.CreateElectionResponse
	err := s.deps.mutate(ctx, "election_create", []any{"title", title}, func(op operation, l *secondary.Ledger) error {
		// 1. Guard check
		if err := requireAdmin(op, l); err != nil {
			return err
		}

		start, err := calendar.Timestamp(req.Start)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		end, err := calendar.Timestamp(req.End)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}

		guardCtx := coreelection.CreateContext{Title: title, Start: start, End: end}
		if result := coreelection.CanCreate(guardCtx); !result.Allowed {
			return result.Error()
		}

		// 2. Allocate ID and add the election with its initial status from core
		id := coreelection.GenerateElectionID(l.Seq.Election)
		l.Seq.Election++

		record := &secondary.ElectionRecord{
			ID:           id,
			Title:        title,
			StartAt:      start,
			EndAt:        end,
			Status:       string(coreelection.InitialStatus()),
			CreatedAt:    op.now,
			Participants: make(map[string]*secondary.ParticipantRecord),
		}
		l.Elections[id] = record

		// 3. Every person gets a participation slot for the new election
		for _, p := range l.Persons {
			p.Participation[id] = false
		}

		op.record(l, audit.ActionElectionCreate, audit.EntityElection, id,
			fmt.Sprintf("%s (%s - %s)", title, calendar.Format(start), calendar.Format(end)))

		resp = &primary.CreateElectionResponse{ElectionID: id, Election: electionFromRecord(record)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// StartElection opens an election for voting.
func (s *ElectionServiceImpl) StartElection(ctx context.Context, electionID string) error {
	return s.deps.mutate(ctx, "election_start", []any{"election_id", electionID}, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}

		e := l.Elections[electionID]
		guardCtx := statusContext(electionID, e)
		if result := coreelection.CanStart(guardCtx); !result.Allowed {
			return result.Error()
		}

		e.Status = string(coreelection.StatusOpen)
		op.record(l, audit.ActionElectionStart, audit.EntityElection, electionID,
			fmt.Sprintf("opened with %d candidate(s)", guardCtx.ApprovedCandidates))
		return nil
	})
}

// FinalizeElection closes an open election.
func (s *ElectionServiceImpl) FinalizeElection(ctx context.Context, electionID string) error {
	return s.deps.mutate(ctx, "election_finalize", []any{"election_id", electionID}, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}

		e := l.Elections[electionID]
		if result := coreelection.CanFinalize(statusContext(electionID, e)); !result.Allowed {
			return result.Error()
		}

		e.Status = string(coreelection.StatusClosed)
		op.record(l, audit.ActionElectionFinalize, audit.EntityElection, electionID, "closed")
		return nil
	})
}

// DeleteElection removes an election and every person's participation slot for it.
func (s *ElectionServiceImpl) DeleteElection(ctx context.Context, electionID string) error {
	return s.deps.mutate(ctx, "election_delete", []any{"election_id", electionID}, func(op operation, l *secondary.Ledger) error {
		if err := requireAdmin(op, l); err != nil {
			return err
		}

		e := l.Elections[electionID]
		if result := coreelection.CanDelete(statusContext(electionID, e)); !result.Allowed {
			return result.Error()
		}

		delete(l.Elections, electionID)
		for _, p := range l.Persons {
			delete(p.Participation, electionID)
		}

		op.record(l, audit.ActionElectionDelete, audit.EntityElection, electionID, e.Title)
		return nil
	})
}

// GetElection retrieves an election. The bool is false when it does not exist.
func (s *ElectionServiceImpl) GetElection(ctx context.Context, electionID string) (*primary.Election, bool, error) {
	var election *primary.Election
	err := s.deps.read(ctx, "election_get", []any{"election_id", electionID}, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}
		e, ok := l.Elections[electionID]
		if !ok {
			return errNotFound("election", electionID)
		}
		election = electionFromRecord(e)
		return nil
	})
	if isNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return election, true, nil
}

// ListElections lists elections ordered by ID.
func (s *ElectionServiceImpl) ListElections(ctx context.Context, filters primary.ElectionFilters) ([]*primary.Election, error) {
	if filters.Status != "" && !coreelection.ValidStatus(filters.Status) {
		return nil, domainerr.New(domainerr.ErrInvalidInput, "unknown election status %q (want created, open or closed)", filters.Status)
	}

	var elections []*primary.Election
	err := s.deps.read(ctx, "election_list", []any{"status", filters.Status}, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}
		for _, id := range l.SortedElectionIDs() {
			e := l.Elections[id]
			if filters.Status != "" && e.Status != filters.Status {
				continue
			}
			elections = append(elections, electionFromRecord(e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return elections, nil
}

// statusContext builds the status guard context for a possibly missing election.
func statusContext(electionID string, e *secondary.ElectionRecord) coreelection.StatusContext {
	if e == nil {
		return coreelection.StatusContext{ElectionID: electionID}
	}
	return coreelection.StatusContext{
		ElectionID:         electionID,
		Exists:             true,
		Status:             coreelection.Status(e.Status),
		ApprovedCandidates: len(e.ParticipantsWithRole(string(coreelection.RoleCandidate))),
	}
}

var _ primary.ElectionService = (*ElectionServiceImpl)(nil)
