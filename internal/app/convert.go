package app

import (
	coreelection "github.com/example/electa/internal/core/election"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

func personFromRecord(r *secondary.PersonRecord) *primary.Person {
	participation := make(map[string]bool, len(r.Participation))
	for electionID, flag := range r.Participation {
		participation[electionID] = flag
	}
	return &primary.Person{
		ID:            r.ID,
		Name:          r.Name,
		Surname:       r.Surname,
		NationalID:    r.NationalID,
		Owner:         r.Owner,
		RegisteredAt:  r.RegisteredAt,
		Participation: participation,
	}
}

func participantFromRecord(r *secondary.ParticipantRecord) primary.Participant {
	return primary.Participant{
		PersonID:   r.PersonID,
		Name:       r.Name,
		Surname:    r.Surname,
		NationalID: r.NationalID,
	}
}

func candidatesFromRecord(e *secondary.ElectionRecord) []*primary.Candidate {
	var candidates []*primary.Candidate
	for i, r := range e.ParticipantsWithRole(string(coreelection.RoleCandidate)) {
		candidates = append(candidates, &primary.Candidate{
			Participant: participantFromRecord(r),
			Position:    i + 1,
			Votes:       r.Votes,
		})
	}
	return candidates
}

func electionFromRecord(e *secondary.ElectionRecord) *primary.Election {
	out := &primary.Election{
		ID:        e.ID,
		Title:     e.Title,
		Start:     e.StartAt,
		End:       e.EndAt,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}

	for _, r := range e.ParticipantsWithRole(string(coreelection.RolePendingVoter)) {
		p := participantFromRecord(r)
		out.PendingVoters = append(out.PendingVoters, &p)
	}
	for _, r := range e.ParticipantsWithRole(string(coreelection.RoleVoter)) {
		out.Voters = append(out.Voters, &primary.Voter{
			Participant: participantFromRecord(r),
			HasVoted:    r.HasVoted,
		})
	}
	for _, r := range e.ParticipantsWithRole(string(coreelection.RolePendingCandidate)) {
		p := participantFromRecord(r)
		out.PendingCandidates = append(out.PendingCandidates, &p)
	}
	out.Candidates = candidatesFromRecord(e)

	return out
}

func auditEntryFromRecord(r *secondary.AuditRecord) *primary.AuditEntry {
	return &primary.AuditEntry{
		ID:         r.ID,
		OpID:       r.OpID,
		Actor:      r.Actor,
		Action:     r.Action,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Detail:     r.Detail,
		OccurredAt: r.OccurredAt,
	}
}
