package postgres

import (
	coreelection "github.com/example/electa/internal/core/election"
	"github.com/example/electa/internal/ports/secondary"
)

var participantRoles = []coreelection.Role{
	coreelection.RolePendingVoter,
	coreelection.RoleVoter,
	coreelection.RolePendingCandidate,
	coreelection.RoleCandidate,
}

type ledgerMetaModel struct {
	ID                int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Admin             string `gorm:"column:admin"`
	NextPerson        int    `gorm:"column:next_person"`
	NextElection      int    `gorm:"column:next_election"`
	NextReportRequest int    `gorm:"column:next_report_request"`
	NextAudit         int    `gorm:"column:next_audit"`
}

func (ledgerMetaModel) TableName() string {
	return "ledger_meta"
}

type personModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Surname      string `gorm:"column:surname"`
	NationalID   string `gorm:"column:national_id;uniqueIndex"`
	Owner        string `gorm:"column:owner"`
	RegisteredAt int64  `gorm:"column:registered_at"`
}

func (personModel) TableName() string {
	return "persons"
}

type electionModel struct {
	ID        string `gorm:"column:id;primaryKey"`
	Title     string `gorm:"column:title"`
	StartAt   int64  `gorm:"column:start_at"`
	EndAt     int64  `gorm:"column:end_at"`
	Status    string `gorm:"column:status"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime:false"`
}

func (electionModel) TableName() string {
	return "elections"
}

type participationModel struct {
	PersonID      string `gorm:"column:person_id;primaryKey"`
	ElectionID    string `gorm:"column:election_id;primaryKey"`
	Participating bool   `gorm:"column:participating"`
}

func (participationModel) TableName() string {
	return "participation"
}

type participantModel struct {
	ElectionID string `gorm:"column:election_id;primaryKey"`
	PersonID   string `gorm:"column:person_id;primaryKey"`
	Role       string `gorm:"column:role"`
	Seq        int    `gorm:"column:seq"`
	HasVoted   bool   `gorm:"column:has_voted"`
	Votes      int64  `gorm:"column:votes"`
	Name       string `gorm:"column:name"`
	Surname    string `gorm:"column:surname"`
	NationalID string `gorm:"column:national_id"`
}

func (participantModel) TableName() string {
	return "election_participants"
}

type reportRequestModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	Position    int    `gorm:"column:position"`
	Requester   string `gorm:"column:requester"`
	RequestedAt int64  `gorm:"column:requested_at"`
}

func (reportRequestModel) TableName() string {
	return "report_requests"
}

type reportGrantModel struct {
	Identity  string `gorm:"column:identity;primaryKey"`
	GrantedAt int64  `gorm:"column:granted_at"`
}

func (reportGrantModel) TableName() string {
	return "report_grants"
}

type auditModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	Seq        int    `gorm:"column:seq;uniqueIndex"`
	OpID       string `gorm:"column:op_id"`
	Actor      string `gorm:"column:actor;index"`
	Action     string `gorm:"column:action"`
	EntityType string `gorm:"column:entity_type;index:idx_audit_entity"`
	EntityID   string `gorm:"column:entity_id;index:idx_audit_entity"`
	Detail     string `gorm:"column:detail"`
	OccurredAt int64  `gorm:"column:occurred_at"`
}

func (auditModel) TableName() string {
	return "audit_log"
}

func (m auditModel) toRecord() *secondary.AuditRecord {
	return &secondary.AuditRecord{
		ID:         m.ID,
		OpID:       m.OpID,
		Actor:      m.Actor,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Detail:     m.Detail,
		OccurredAt: m.OccurredAt,
	}
}

// ledgerRows is the table-shaped form of a ledger.
type ledgerRows struct {
	Meta           ledgerMetaModel
	Persons        []personModel
	Elections      []electionModel
	Participation  []participationModel
	Participants   []participantModel
	ReportRequests []reportRequestModel
	ReportGrants   []reportGrantModel
}

func rowsFromLedger(l *secondary.Ledger) ledgerRows {
	rows := ledgerRows{
		Meta: ledgerMetaModel{
			ID:                1,
			Admin:             l.Admin,
			NextPerson:        l.Seq.Person,
			NextElection:      l.Seq.Election,
			NextReportRequest: l.Seq.ReportRequest,
			NextAudit:         l.Seq.Audit,
		},
	}

	for _, id := range l.SortedPersonIDs() {
		p := l.Persons[id]
		rows.Persons = append(rows.Persons, personModel{
			ID:           p.ID,
			Name:         p.Name,
			Surname:      p.Surname,
			NationalID:   p.NationalID,
			Owner:        p.Owner,
			RegisteredAt: p.RegisteredAt,
		})
		for _, electionID := range l.SortedElectionIDs() {
			flag, ok := p.Participation[electionID]
			if !ok {
				continue
			}
			rows.Participation = append(rows.Participation, participationModel{PersonID: p.ID, ElectionID: electionID, Participating: flag})
		}
	}

	for _, id := range l.SortedElectionIDs() {
		e := l.Elections[id]
		rows.Elections = append(rows.Elections, electionModel{
			ID:        e.ID,
			Title:     e.Title,
			StartAt:   e.StartAt,
			EndAt:     e.EndAt,
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
		})
		for _, role := range participantRoles {
			for _, p := range e.ParticipantsWithRole(string(role)) {
				rows.Participants = append(rows.Participants, participantModel{
					ElectionID: e.ID,
					PersonID:   p.PersonID,
					Role:       p.Role,
					Seq:        p.Seq,
					HasVoted:   p.HasVoted,
					Votes:      int64(p.Votes),
					Name:       p.Name,
					Surname:    p.Surname,
					NationalID: p.NationalID,
				})
			}
		}
	}

	for i, r := range l.ReportRequests {
		rows.ReportRequests = append(rows.ReportRequests, reportRequestModel{
			ID:          r.ID,
			Position:    i + 1,
			Requester:   r.Requester,
			RequestedAt: r.RequestedAt,
		})
	}
	for identity, grantedAt := range l.ReportGrants {
		rows.ReportGrants = append(rows.ReportGrants, reportGrantModel{Identity: identity, GrantedAt: grantedAt})
	}

	return rows
}

// ledgerFromRows rebuilds a ledger. ReportRequests must be ordered by Position.
func ledgerFromRows(rows ledgerRows) *secondary.Ledger {
	l := secondary.NewLedger()
	l.Admin = rows.Meta.Admin
	l.Seq = secondary.Sequences{
		Person:        rows.Meta.NextPerson,
		Election:      rows.Meta.NextElection,
		ReportRequest: rows.Meta.NextReportRequest,
		Audit:         rows.Meta.NextAudit,
	}

	for _, m := range rows.Persons {
		l.Persons[m.ID] = &secondary.PersonRecord{
			ID:            m.ID,
			Name:          m.Name,
			Surname:       m.Surname,
			NationalID:    m.NationalID,
			Owner:         m.Owner,
			RegisteredAt:  m.RegisteredAt,
			Participation: make(map[string]bool),
		}
	}
	for _, m := range rows.Elections {
		l.Elections[m.ID] = &secondary.ElectionRecord{
			ID:           m.ID,
			Title:        m.Title,
			StartAt:      m.StartAt,
			EndAt:        m.EndAt,
			Status:       m.Status,
			CreatedAt:    m.CreatedAt,
			Participants: make(map[string]*secondary.ParticipantRecord),
		}
	}
	for _, m := range rows.Participation {
		if p, ok := l.Persons[m.PersonID]; ok {
			p.Participation[m.ElectionID] = m.Participating
		}
	}
	for _, m := range rows.Participants {
		e, ok := l.Elections[m.ElectionID]
		if !ok {
			continue
		}
		e.Participants[m.PersonID] = &secondary.ParticipantRecord{
			PersonID:   m.PersonID,
			Name:       m.Name,
			Surname:    m.Surname,
			NationalID: m.NationalID,
			Role:       m.Role,
			Seq:        m.Seq,
			HasVoted:   m.HasVoted,
			Votes:      uint32(m.Votes),
		}
	}
	for _, m := range rows.ReportRequests {
		l.ReportRequests = append(l.ReportRequests, &secondary.ReportRequestRecord{
			ID:          m.ID,
			Requester:   m.Requester,
			RequestedAt: m.RequestedAt,
		})
	}
	for _, m := range rows.ReportGrants {
		l.ReportGrants[m.Identity] = m.GrantedAt
	}

	return l
}

// auditRows converts the operation's audit entries; they carry the last
// len(l.Audit) numbers of the audit sequence.
func auditRows(l *secondary.Ledger) []auditModel {
	first := l.Seq.Audit - len(l.Audit) + 1
	rows := make([]auditModel, 0, len(l.Audit))
	for i, a := range l.Audit {
		rows = append(rows, auditModel{
			ID:         a.ID,
			Seq:        first + i,
			OpID:       a.OpID,
			Actor:      a.Actor,
			Action:     a.Action,
			EntityType: a.EntityType,
			EntityID:   a.EntityID,
			Detail:     a.Detail,
			OccurredAt: a.OccurredAt,
		})
	}
	return rows
}
