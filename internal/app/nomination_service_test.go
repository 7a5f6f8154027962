package app

import (
	"testing"

	"github.com/example/electa/internal/core/domainerr"
	"github.com/example/electa/internal/ports/primary"
)

func TestPostulate(t *testing.T) {
	h := newInitializedHarness(t)
	id := h.createElection(t, "Treasurer")
	voter := h.register(t, "vera", "Vera", "1")
	candidate := h.register(t, "cato", "Cato", "2")

	h.postulate(t, "vera", voter, id, true)
	h.postulate(t, "cato", candidate, id, false)

	e, _, err := h.elections.GetElection(as("anyone"), id)
	if err != nil {
		t.Fatalf("GetElection() unexpected error: %v", err)
	}
	if len(e.PendingVoters) != 1 || e.PendingVoters[0].PersonID != voter {
		t.Errorf("PendingVoters = %+v, want [%s]", e.PendingVoters, voter)
	}
	if len(e.PendingCandidates) != 1 || e.PendingCandidates[0].PersonID != candidate {
		t.Errorf("PendingCandidates = %+v, want [%s]", e.PendingCandidates, candidate)
	}
	if e.PendingVoters[0].Name != "Vera" || e.PendingVoters[0].NationalID != "1" {
		t.Errorf("PendingVoters[0] snapshot = %+v, want Vera / 1", e.PendingVoters[0])
	}

	person, _ := h.persons.GetPerson(as("vera"), voter)
	if !person.Participation[id] {
		t.Errorf("Participation[%s] = false after postulating, want true", id)
	}
}

func TestPostulate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, h *harness, personID, electionID string)
		caller   string
		personID string
		election string
		wantKind error
	}{
		{name: "unknown person", caller: "vera", personID: "PERSON-404", wantKind: domainerr.ErrNotFound},
		{name: "not the owner", caller: "mallory", wantKind: domainerr.ErrUnauthorized},
		{name: "unknown election", caller: "vera", election: "ELEC-404", wantKind: domainerr.ErrNotFound},
		{
			name:   "already participating",
			caller: "vera",
			setup: func(t *testing.T, h *harness, personID, electionID string) {
				h.postulate(t, "vera", personID, electionID, false)
			},
			wantKind: domainerr.ErrAlreadyParticipating,
		},
		{
			name:   "voting window started",
			caller: "vera",
			setup: func(t *testing.T, h *harness, personID, electionID string) {
				h.setNow(t, date(2024, 1, 1))
			},
			wantKind: domainerr.ErrInvalidState,
		},
		{
			name:   "election already open",
			caller: "vera",
			setup: func(t *testing.T, h *harness, personID, electionID string) {
				h.store.ledger.Elections[electionID].Status = "open"
			},
			wantKind: domainerr.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newInitializedHarness(t)
			electionID := h.createElection(t, "Treasurer")
			personID := h.register(t, "vera", "Vera", "1")
			if tt.setup != nil {
				tt.setup(t, h, personID, electionID)
			}
			if tt.personID != "" {
				personID = tt.personID
			}
			if tt.election != "" {
				electionID = tt.election
			}

			before := h.store.updates
			err := h.nominations.Postulate(as(tt.caller), primary.PostulateRequest{PersonID: personID, ElectionID: electionID, AsVoter: true})
			assertKind(t, "Postulate()", err, tt.wantKind)
			if h.store.updates != before {
				t.Errorf("rejected Postulate() committed a ledger update")
			}
		})
	}
}

func TestApproveParticipant(t *testing.T) {
	h := newInitializedHarness(t)
	id := h.createElection(t, "Treasurer")
	v := h.register(t, "vera", "Vera", "1")
	c := h.register(t, "cato", "Cato", "2")
	h.postulate(t, "vera", v, id, true)
	h.postulate(t, "cato", c, id, false)

	resp, err := h.approvals.ApproveParticipant(as(testAdmin), primary.ApproveParticipantRequest{PersonID: v, ElectionID: id, Approve: true})
	if err != nil {
		t.Fatalf("ApproveParticipant() unexpected error: %v", err)
	}
	if resp.PreviousRole != "pending_voter" || resp.Role != "voter" {
		t.Errorf("ApproveParticipant() = %+v, want pending_voter -> voter", resp)
	}
	h.approve(t, c, id)

	e, _, _ := h.elections.GetElection(as("anyone"), id)
	if len(e.PendingVoters) != 0 || len(e.PendingCandidates) != 0 {
		t.Errorf("pending lists not empty after approval: %+v / %+v", e.PendingVoters, e.PendingCandidates)
	}
	if len(e.Voters) != 1 || e.Voters[0].PersonID != v || e.Voters[0].HasVoted {
		t.Errorf("Voters = %+v, want [%s] without a vote", e.Voters, v)
	}
	if len(e.Candidates) != 1 || e.Candidates[0].PersonID != c || e.Candidates[0].Position != 1 {
		t.Errorf("Candidates = %+v, want [%s at position 1]", e.Candidates, c)
	}

	person, _ := h.persons.GetPerson(as("vera"), v)
	if !person.Participation[id] {
		t.Errorf("Participation[%s] = false after approval, want true", id)
	}
}

func TestApproveParticipant_CandidatePositionsFollowApprovalOrder(t *testing.T) {
	h := newInitializedHarness(t)
	id := h.createElection(t, "Treasurer")
	first := h.register(t, "p1", "First", "1")
	second := h.register(t, "p2", "Second", "2")

	h.postulate(t, "p1", first, id, false)
	h.postulate(t, "p2", second, id, false)
	h.approve(t, second, id)
	h.approve(t, first, id)

	e, _, _ := h.elections.GetElection(as("anyone"), id)
	if len(e.Candidates) != 2 || e.Candidates[0].PersonID != second || e.Candidates[1].PersonID != first {
		t.Errorf("Candidates order = %+v, want [%s, %s]", e.Candidates, second, first)
	}
}

func TestApproveParticipant_Reject(t *testing.T) {
	h := newInitializedHarness(t)
	id := h.createElection(t, "Treasurer")
	v := h.register(t, "vera", "Vera", "1")
	h.postulate(t, "vera", v, id, true)

	resp, err := h.approvals.ApproveParticipant(as(testAdmin), primary.ApproveParticipantRequest{PersonID: v, ElectionID: id, Approve: false})
	if err != nil {
		t.Fatalf("ApproveParticipant(reject) unexpected error: %v", err)
	}
	if resp.Role != "" || resp.PreviousRole != "pending_voter" {
		t.Errorf("ApproveParticipant(reject) = %+v, want pending_voter -> removed", resp)
	}

	e, _, _ := h.elections.GetElection(as("anyone"), id)
	if len(e.PendingVoters) != 0 {
		t.Errorf("PendingVoters = %+v after rejection, want empty", e.PendingVoters)
	}
	person, _ := h.persons.GetPerson(as("vera"), v)
	if person.Participation[id] {
		t.Errorf("Participation[%s] = true after rejection, want false", id)
	}

	// A rejected person may try again.
	h.postulate(t, "vera", v, id, false)
}

func TestApproveParticipant_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		caller   string
		personID string
		election string
		approve  bool
		wantKind error
	}{
		{name: "non administrator", caller: "vera", approve: true, wantKind: domainerr.ErrUnauthorized},
		{name: "unknown person", caller: testAdmin, personID: "PERSON-404", approve: true, wantKind: domainerr.ErrNotFound},
		{name: "unknown election", caller: testAdmin, election: "ELEC-404", approve: true, wantKind: domainerr.ErrNotFound},
		{name: "not nominated", caller: testAdmin, personID: "PERSON-002", approve: true, wantKind: domainerr.ErrNotFound},
		{name: "reject not nominated", caller: testAdmin, personID: "PERSON-002", approve: false, wantKind: domainerr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newInitializedHarness(t)
			electionID := h.createElection(t, "Treasurer")
			personID := h.register(t, "vera", "Vera", "1")
			h.register(t, "otto", "Otto", "2")
			h.postulate(t, "vera", personID, electionID, true)
			if tt.personID != "" {
				personID = tt.personID
			}
			if tt.election != "" {
				electionID = tt.election
			}

			_, err := h.approvals.ApproveParticipant(as(tt.caller), primary.ApproveParticipantRequest{
				PersonID:   personID,
				ElectionID: electionID,
				Approve:    tt.approve,
			})
			assertKind(t, "ApproveParticipant()", err, tt.wantKind)
		})
	}
}

func TestApproveParticipant_AfterOpenIsInvalidState(t *testing.T) {
	h := newInitializedHarness(t)
	open := h.setupOpenElection(t)

	_, err := h.approvals.ApproveParticipant(as(testAdmin), primary.ApproveParticipantRequest{PersonID: open.voter, ElectionID: open.electionID, Approve: true})
	assertKind(t, "ApproveParticipant() on open election", err, domainerr.ErrInvalidState)
}
