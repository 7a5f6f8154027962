package cli

import (
	"context"
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/example/electa/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// mockAdminService implements primary.AdminService for testing
type mockAdminService struct {
	initFn     func(ctx context.Context) (*primary.AdminInfo, error)
	getFn      func(ctx context.Context) (*primary.AdminInfo, error)
	transferFn func(ctx context.Context, req primary.TransferAdminRequest) (*primary.AdminInfo, error)

	lastTransferReq primary.TransferAdminRequest
}

func (m *mockAdminService) InitializeLedger(ctx context.Context) (*primary.AdminInfo, error) {
	if m.initFn != nil {
		return m.initFn(ctx)
	}
	return &primary.AdminInfo{Identity: "admin"}, nil
}

func (m *mockAdminService) GetAdmin(ctx context.Context) (*primary.AdminInfo, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return &primary.AdminInfo{Identity: "admin"}, nil
}

func (m *mockAdminService) TransferAdmin(ctx context.Context, req primary.TransferAdminRequest) (*primary.AdminInfo, error) {
	m.lastTransferReq = req
	if m.transferFn != nil {
		return m.transferFn(ctx, req)
	}
	return &primary.AdminInfo{Identity: req.NewAdmin}, nil
}

// mockPersonService implements primary.PersonService for testing
type mockPersonService struct {
	registerFn func(ctx context.Context, req primary.RegisterPersonRequest) (*primary.RegisterPersonResponse, error)
	getFn      func(ctx context.Context, personID string) (*primary.Person, error)
	listFn     func(ctx context.Context) ([]*primary.Person, error)

	lastRegisterReq primary.RegisterPersonRequest
}

func (m *mockPersonService) RegisterPerson(ctx context.Context, req primary.RegisterPersonRequest) (*primary.RegisterPersonResponse, error) {
	m.lastRegisterReq = req
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return &primary.RegisterPersonResponse{
		PersonID: "PERSON-001",
		Person:   &primary.Person{ID: "PERSON-001", Name: req.Name, Surname: req.Surname, NationalID: req.NationalID},
	}, nil
}

func (m *mockPersonService) GetPerson(ctx context.Context, personID string) (*primary.Person, error) {
	if m.getFn != nil {
		return m.getFn(ctx, personID)
	}
	return &primary.Person{ID: personID, Name: "Ana", Surname: "Lopez", NationalID: "100", Owner: "ana"}, nil
}

func (m *mockPersonService) ListPersons(ctx context.Context) ([]*primary.Person, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockElectionService implements primary.ElectionService for testing
type mockElectionService struct {
	createFn   func(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error)
	startFn    func(ctx context.Context, electionID string) error
	finalizeFn func(ctx context.Context, electionID string) error
	deleteFn   func(ctx context.Context, electionID string) error
	getFn      func(ctx context.Context, electionID string) (*primary.Election, bool, error)
	listFn     func(ctx context.Context, filters primary.ElectionFilters) ([]*primary.Election, error)

	lastCreateReq   primary.CreateElectionRequest
	lastListFilters primary.ElectionFilters
}

func (m *mockElectionService) CreateElection(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error) {
	m.lastCreateReq = req
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &primary.CreateElectionResponse{
		ElectionID: "ELEC-001",
		Election:   &primary.Election{ID: "ELEC-001", Title: req.Title, Status: "created"},
	}, nil
}

func (m *mockElectionService) StartElection(ctx context.Context, electionID string) error {
	if m.startFn != nil {
		return m.startFn(ctx, electionID)
	}
	return nil
}

func (m *mockElectionService) FinalizeElection(ctx context.Context, electionID string) error {
	if m.finalizeFn != nil {
		return m.finalizeFn(ctx, electionID)
	}
	return nil
}

func (m *mockElectionService) DeleteElection(ctx context.Context, electionID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, electionID)
	}
	return nil
}

func (m *mockElectionService) GetElection(ctx context.Context, electionID string) (*primary.Election, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, electionID)
	}
	return &primary.Election{ID: electionID, Title: "Treasurer", Status: "open"}, true, nil
}

func (m *mockElectionService) ListElections(ctx context.Context, filters primary.ElectionFilters) ([]*primary.Election, error) {
	m.lastListFilters = filters
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return nil, nil
}

// mockNominationService implements primary.NominationService, ApprovalService
// and VotingService for testing
type mockNominationService struct {
	postulateFn func(ctx context.Context, req primary.PostulateRequest) error
	approveFn   func(ctx context.Context, req primary.ApproveParticipantRequest) (*primary.ApproveParticipantResponse, error)
	voteFn      func(ctx context.Context, req primary.VoteRequest) error

	lastPostulateReq primary.PostulateRequest
	lastApproveReq   primary.ApproveParticipantRequest
	lastVoteReq      primary.VoteRequest
}

func (m *mockNominationService) Postulate(ctx context.Context, req primary.PostulateRequest) error {
	m.lastPostulateReq = req
	if m.postulateFn != nil {
		return m.postulateFn(ctx, req)
	}
	return nil
}

func (m *mockNominationService) ApproveParticipant(ctx context.Context, req primary.ApproveParticipantRequest) (*primary.ApproveParticipantResponse, error) {
	m.lastApproveReq = req
	if m.approveFn != nil {
		return m.approveFn(ctx, req)
	}
	resp := &primary.ApproveParticipantResponse{PersonID: req.PersonID, ElectionID: req.ElectionID, PreviousRole: "pending_voter"}
	if req.Approve {
		resp.Role = "voter"
	}
	return resp, nil
}

func (m *mockNominationService) Vote(ctx context.Context, req primary.VoteRequest) error {
	m.lastVoteReq = req
	if m.voteFn != nil {
		return m.voteFn(ctx, req)
	}
	return nil
}

// mockReportService implements primary.ReportAccessService and ReportService for testing
type mockReportService struct {
	requests []*primary.ReportRequest
	grants   []*primary.ReportGrant
	err      error

	election      *primary.Election
	participation *primary.ParticipationReport
	results       []*primary.Candidate

	lastPosition int
	lastRevoked  string
}

func (m *mockReportService) RequestAccess(ctx context.Context) (*primary.ReportRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &primary.ReportRequest{ID: "RREQ-001", Position: 1, Requester: "auditor"}, nil
}

func (m *mockReportService) ApproveAccess(ctx context.Context, position int) (*primary.ReportRequest, error) {
	m.lastPosition = position
	if m.err != nil {
		return nil, m.err
	}
	return &primary.ReportRequest{ID: "RREQ-001", Position: position, Requester: "auditor"}, nil
}

func (m *mockReportService) RejectAccess(ctx context.Context, position int) (*primary.ReportRequest, error) {
	m.lastPosition = position
	if m.err != nil {
		return nil, m.err
	}
	return &primary.ReportRequest{ID: "RREQ-001", Position: position, Requester: "auditor"}, nil
}

func (m *mockReportService) ListRequests(ctx context.Context) ([]*primary.ReportRequest, error) {
	return m.requests, m.err
}

func (m *mockReportService) ListGrants(ctx context.Context) ([]*primary.ReportGrant, error) {
	return m.grants, m.err
}

func (m *mockReportService) RevokeAccess(ctx context.Context, identity string) error {
	m.lastRevoked = identity
	return m.err
}

func (m *mockReportService) GetElectionReport(ctx context.Context, electionID string) (*primary.Election, error) {
	return m.election, m.err
}

func (m *mockReportService) GetParticipationReport(ctx context.Context, electionID string) (*primary.ParticipationReport, error) {
	return m.participation, m.err
}

func (m *mockReportService) GetResultReport(ctx context.Context, electionID string) ([]*primary.Candidate, error) {
	return m.results, m.err
}

// mockAuditService implements primary.AuditService for testing
type mockAuditService struct {
	entries     []*primary.AuditEntry
	err         error
	lastFilters primary.AuditFilters
}

func (m *mockAuditService) ListAuditLog(ctx context.Context, filters primary.AuditFilters) ([]*primary.AuditEntry, error) {
	m.lastFilters = filters
	return m.entries, m.err
}

var (
	_ primary.AdminService        = (*mockAdminService)(nil)
	_ primary.PersonService       = (*mockPersonService)(nil)
	_ primary.ElectionService     = (*mockElectionService)(nil)
	_ primary.NominationService   = (*mockNominationService)(nil)
	_ primary.ApprovalService     = (*mockNominationService)(nil)
	_ primary.VotingService       = (*mockNominationService)(nil)
	_ primary.ReportAccessService = (*mockReportService)(nil)
	_ primary.ReportService       = (*mockReportService)(nil)
	_ primary.AuditService        = (*mockAuditService)(nil)
)
