package app

import (
	"context"

	"github.com/example/electa/internal/core/audit"
	coreelection "github.com/example/electa/internal/core/election"
	coreperson "github.com/example/electa/internal/core/person"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// NominationServiceImpl implements the NominationService interface.
type NominationServiceImpl struct {
	deps Deps
}

// NewNominationService creates a new NominationService with injected dependencies.
func NewNominationService(deps Deps) *NominationServiceImpl {
	return &NominationServiceImpl{deps: deps}
}

// Postulate nominates a person owned by the caller as voter or candidate.
func (s *NominationServiceImpl) Postulate(ctx context.Context, req primary.PostulateRequest) error {
	role := coreelection.NominationRole(req.AsVoter)
	attrs := []any{"person_id", req.PersonID, "election_id", req.ElectionID, "role", string(role)}

	return s.deps.mutate(ctx, "participant_postulate", attrs, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}

		// 1. Caller must own the person
		p := l.Persons[req.PersonID]
		if result := coreperson.CanActAs(actAsContext(op, req.PersonID, p)); !result.Allowed {
			return result.Error()
		}

		// 2. Election must accept nominations
		e := l.Elections[req.ElectionID]
		guardCtx := coreelection.PostulateContext{
			ElectionID:           req.ElectionID,
			Exists:               e != nil,
			Now:                  op.now,
			AlreadyParticipating: p.Participation[req.ElectionID],
		}
		if e != nil {
			guardCtx.Status = coreelection.Status(e.Status)
			guardCtx.Start = e.StartAt
		}
		if result := coreelection.CanPostulate(guardCtx); !result.Allowed {
			return result.Error()
		}

		// 3. Add to the pending list with a snapshot of the person
		e.Participants[p.ID] = &secondary.ParticipantRecord{
			PersonID:   p.ID,
			Name:       p.Name,
			Surname:    p.Surname,
			NationalID: p.NationalID,
			Role:       string(role),
			Seq:        e.NextParticipantSeq(),
		}
		p.Participation[e.ID] = true

		op.record(l, audit.ActionPostulate, audit.EntityElection, e.ID, p.ID+" as "+string(role))
		return nil
	})
}

// actAsContext builds the ownership guard context for a possibly missing person.
func actAsContext(op operation, personID string, p *secondary.PersonRecord) coreperson.ActAsContext {
	guardCtx := coreperson.ActAsContext{PersonID: personID, CallerID: op.caller}
	if p != nil {
		guardCtx.PersonExists = true
		guardCtx.OwnerID = p.Owner
	}
	return guardCtx
}

var _ primary.NominationService = (*NominationServiceImpl)(nil)
