package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/electa/internal/core/calendar"
	"github.com/example/electa/internal/ctxutil"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// fakeLedgerStore implements secondary.LedgerStore in memory for testing.
// Update works on a clone and only keeps it when fn succeeds.
type fakeLedgerStore struct {
	ledger *secondary.Ledger
	audit  []*secondary.AuditRecord

	viewErr   error
	updateErr error
	updates   int
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{ledger: secondary.NewLedger()}
}

func (m *fakeLedgerStore) View(ctx context.Context, fn func(*secondary.Ledger) error) error {
	if m.viewErr != nil {
		return m.viewErr
	}
	return fn(m.ledger.Clone())
}

func (m *fakeLedgerStore) Update(ctx context.Context, fn func(*secondary.Ledger) error) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	working := m.ledger.Clone()
	if err := fn(working); err != nil {
		return err
	}
	m.audit = append(m.audit, working.Audit...)
	working.Audit = nil
	m.ledger = working
	m.updates++
	return nil
}

func (m *fakeLedgerStore) ListAudit(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	var out []*secondary.AuditRecord
	for i := len(m.audit) - 1; i >= 0; i-- {
		r := m.audit[i]
		if filters.EntityType != "" && r.EntityType != filters.EntityType {
			continue
		}
		if filters.EntityID != "" && r.EntityID != filters.EntityID {
			continue
		}
		if filters.Actor != "" && r.Actor != filters.Actor {
			continue
		}
		out = append(out, r)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}

var _ secondary.LedgerStore = (*fakeLedgerStore)(nil)

// ctxCaller implements secondary.CallerProvider from the context actor.
type ctxCaller struct{}

func (ctxCaller) CurrentCaller(ctx context.Context) (string, error) {
	return ctxutil.ActorFromContext(ctx), nil
}

// fakeClock implements secondary.Clock with a settable time.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// harness wires every service to one fake store.
type harness struct {
	store *fakeLedgerStore
	clock *fakeClock

	admin       *AdminServiceImpl
	persons     *PersonServiceImpl
	elections   *ElectionServiceImpl
	nominations *NominationServiceImpl
	approvals   *ApprovalServiceImpl
	voting      *VotingServiceImpl
	access      *ReportAccessServiceImpl
	reports     *ReportServiceImpl
	audit       *AuditServiceImpl
}

const testAdmin = "admin"

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := newFakeLedgerStore()
	clock := &fakeClock{now: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)}
	deps := Deps{Store: store, Caller: ctxCaller{}, Clock: clock}

	return &harness{
		store:       store,
		clock:       clock,
		admin:       NewAdminService(deps),
		persons:     NewPersonService(deps),
		elections:   NewElectionService(deps),
		nominations: NewNominationService(deps),
		approvals:   NewApprovalService(deps),
		voting:      NewVotingService(deps),
		access:      NewReportAccessService(deps),
		reports:     NewReportService(deps),
		audit:       NewAuditService(deps),
	}
}

// newInitializedHarness returns a harness whose ledger is administered by testAdmin.
func newInitializedHarness(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t)
	if _, err := h.admin.InitializeLedger(as(testAdmin)); err != nil {
		t.Fatalf("InitializeLedger() unexpected error: %v", err)
	}
	return h
}

func as(identity string) context.Context {
	return ctxutil.WithActorID(context.Background(), identity)
}

func date(year, month, day int) calendar.Date {
	return calendar.Date{Year: year, Month: month, Day: day}
}

func (h *harness) setNow(t *testing.T, d calendar.Date) {
	t.Helper()
	ts, err := calendar.Timestamp(d)
	if err != nil {
		t.Fatalf("calendar.Timestamp(%s) unexpected error: %v", d, err)
	}
	h.clock.now = time.Unix(ts, 0).UTC()
}

func (h *harness) register(t *testing.T, owner, name, nationalID string) string {
	t.Helper()
	resp, err := h.persons.RegisterPerson(as(owner), primary.RegisterPersonRequest{
		Name:       name,
		Surname:    "Test",
		NationalID: nationalID,
	})
	if err != nil {
		t.Fatalf("RegisterPerson(%s) unexpected error: %v", name, err)
	}
	return resp.PersonID
}

// createElection creates an election running through January 2024.
func (h *harness) createElection(t *testing.T, title string) string {
	t.Helper()
	resp, err := h.elections.CreateElection(as(testAdmin), primary.CreateElectionRequest{
		Title: title,
		Start: date(2024, 1, 1),
		End:   date(2024, 1, 10),
	})
	if err != nil {
		t.Fatalf("CreateElection(%s) unexpected error: %v", title, err)
	}
	return resp.ElectionID
}

func (h *harness) postulate(t *testing.T, owner, personID, electionID string, asVoter bool) {
	t.Helper()
	err := h.nominations.Postulate(as(owner), primary.PostulateRequest{PersonID: personID, ElectionID: electionID, AsVoter: asVoter})
	if err != nil {
		t.Fatalf("Postulate(%s, %s) unexpected error: %v", personID, electionID, err)
	}
}

func (h *harness) approve(t *testing.T, personID, electionID string) {
	t.Helper()
	_, err := h.approvals.ApproveParticipant(as(testAdmin), primary.ApproveParticipantRequest{PersonID: personID, ElectionID: electionID, Approve: true})
	if err != nil {
		t.Fatalf("ApproveParticipant(%s, %s) unexpected error: %v", personID, electionID, err)
	}
}

// openElection is a ready-to-vote election: two candidates, one voter, clock inside the window.
type openElection struct {
	electionID string
	candidateA string
	candidateB string
	voter      string
}

func (h *harness) setupOpenElection(t *testing.T) openElection {
	t.Helper()
	id := h.createElection(t, "Treasurer")
	a := h.register(t, "ana", "A", "100")
	b := h.register(t, "bruno", "B", "200")
	c := h.register(t, "carla", "C", "300")

	h.postulate(t, "ana", a, id, false)
	h.postulate(t, "bruno", b, id, false)
	h.postulate(t, "carla", c, id, true)
	h.approve(t, a, id)
	h.approve(t, b, id)
	h.approve(t, c, id)

	if err := h.elections.StartElection(as(testAdmin), id); err != nil {
		t.Fatalf("StartElection() unexpected error: %v", err)
	}
	h.setNow(t, date(2024, 1, 5))

	return openElection{electionID: id, candidateA: a, candidateB: b, voter: c}
}

func assertKind(t *testing.T, name string, err error, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s error = %v, want kind %v", name, err, want)
	}
}
