package app

import (
	"context"

	coreelection "github.com/example/electa/internal/core/election"
	"github.com/example/electa/internal/core/reportaccess"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	deps Deps
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(deps Deps) *ReportServiceImpl {
	return &ReportServiceImpl{deps: deps}
}

// GetElectionReport returns the full closed election.
func (s *ReportServiceImpl) GetElectionReport(ctx context.Context, electionID string) (*primary.Election, error) {
	var out *primary.Election
	err := s.reportable(ctx, "report_election", electionID, func(e *secondary.ElectionRecord) error {
		out = electionFromRecord(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetParticipationReport returns turnout for a closed election.
func (s *ReportServiceImpl) GetParticipationReport(ctx context.Context, electionID string) (*primary.ParticipationReport, error) {
	var out *primary.ParticipationReport
	err := s.reportable(ctx, "report_participation", electionID, func(e *secondary.ElectionRecord) error {
		candidates := e.ParticipantsWithRole(string(coreelection.RoleCandidate))
		tallies := make([]uint32, len(candidates))
		for i, c := range candidates {
			tallies[i] = c.Votes
		}

		cast, err := coreelection.CountVotesCast(tallies)
		if err != nil {
			return err
		}
		eligible := len(e.ParticipantsWithRole(string(coreelection.RoleVoter)))
		pct, err := coreelection.ParticipationPct(cast, eligible)
		if err != nil {
			return err
		}

		out = &primary.ParticipationReport{
			ElectionID:       e.ID,
			VotesCast:        cast,
			EligibleVoters:   eligible,
			ParticipationPct: pct,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetResultReport returns candidates ranked by votes, highest first.
// Ties keep approval order. Position is the candidate's ballot position.
func (s *ReportServiceImpl) GetResultReport(ctx context.Context, electionID string) ([]*primary.Candidate, error) {
	var out []*primary.Candidate
	err := s.reportable(ctx, "report_results", electionID, func(e *secondary.ElectionRecord) error {
		candidates := candidatesFromRecord(e)
		byID := make(map[string]*primary.Candidate, len(candidates))
		standings := make([]coreelection.Standing, len(candidates))
		for i, c := range candidates {
			byID[c.PersonID] = c
			standings[i] = coreelection.Standing{PersonID: c.PersonID, Seq: c.Position, Votes: c.Votes}
		}

		for _, st := range coreelection.RankStandings(standings) {
			out = append(out, byID[st.PersonID])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// reportable runs fn on a closed election the caller may read reports for.
func (s *ReportServiceImpl) reportable(ctx context.Context, event, electionID string, fn func(e *secondary.ElectionRecord) error) error {
	return s.deps.read(ctx, event, []any{"election_id", electionID}, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}

		// 1. Access gate: administrator or granted identity
		_, granted := l.ReportGrants[op.caller]
		readCtx := reportaccess.ReadContext{CallerID: op.caller, AdminID: l.Admin, Granted: granted}
		if result := reportaccess.CanRead(readCtx); !result.Allowed {
			return result.Error()
		}

		// 2. Election must exist and be closed
		e := l.Elections[electionID]
		if result := coreelection.CanReport(statusContext(electionID, e)); !result.Allowed {
			return result.Error()
		}

		return fn(e)
	})
}

var _ primary.ReportService = (*ReportServiceImpl)(nil)
