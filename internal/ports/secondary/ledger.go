package secondary

import (
	"context"
	"sort"
)

// LedgerStore defines the secondary port for persisting the election ledger.
// The ledger is a single root aggregate; every operation loads it, works on it
// and saves it inside one storage transaction.
type LedgerStore interface {
	// View loads the ledger and passes it to fn. Changes made by fn are discarded.
	View(ctx context.Context, fn func(*Ledger) error) error

	// Update loads the ledger, passes it to fn and saves the result atomically.
	// If fn returns an error nothing is written and that error is returned.
	Update(ctx context.Context, fn func(*Ledger) error) error

	// ListAudit retrieves audit entries matching the filters, newest first.
	ListAudit(ctx context.Context, filters AuditFilters) ([]*AuditRecord, error)
}

// Ledger is the root aggregate of the election engine.
type Ledger struct {
	Admin          string
	Seq            Sequences
	Persons        map[string]*PersonRecord
	Elections      map[string]*ElectionRecord
	ReportRequests []*ReportRequestRecord // FIFO, head first
	ReportGrants   map[string]int64       // identity -> granted at (Unix seconds)

	// Audit holds entries appended by the current operation.
	// Stores persist them on Update and always load the ledger with it empty.
	Audit []*AuditRecord
}

// Sequences holds the last issued number for each id family.
type Sequences struct {
	Person        int
	Election      int
	ReportRequest int
	Audit         int
}

// PersonRecord represents a registered person as stored in persistence.
type PersonRecord struct {
	ID           string
	Name         string
	Surname      string
	NationalID   string
	Owner        string
	RegisteredAt int64
	// Participation has one key per existing election.
	Participation map[string]bool
}

// ElectionRecord represents an election as stored in persistence.
type ElectionRecord struct {
	ID           string
	Title        string
	StartAt      int64
	EndAt        int64
	Status       string
	CreatedAt    int64
	Participants map[string]*ParticipantRecord // keyed by person ID
}

// ParticipantRecord is a person's place in one election.
type ParticipantRecord struct {
	PersonID   string
	Name       string
	Surname    string
	NationalID string
	Role       string
	Seq        int
	HasVoted   bool
	Votes      uint32
}

// ReportRequestRecord is a queued request for report access.
type ReportRequestRecord struct {
	ID          string
	Requester   string
	RequestedAt int64
}

// AuditRecord is one entry of the audit trail.
type AuditRecord struct {
	ID         string
	OpID       string
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	OccurredAt int64
}

// AuditFilters contains filter options for querying the audit trail.
type AuditFilters struct {
	EntityType string
	EntityID   string
	Actor      string
	Limit      int
}

// NewLedger returns an empty, uninitialized ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Persons:      make(map[string]*PersonRecord),
		Elections:    make(map[string]*ElectionRecord),
		ReportGrants: make(map[string]int64),
	}
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	c.Admin = l.Admin
	c.Seq = l.Seq

	for id, p := range l.Persons {
		cp := *p
		cp.Participation = make(map[string]bool, len(p.Participation))
		for electionID, flag := range p.Participation {
			cp.Participation[electionID] = flag
		}
		c.Persons[id] = &cp
	}

	for id, e := range l.Elections {
		ce := *e
		ce.Participants = make(map[string]*ParticipantRecord, len(e.Participants))
		for personID, part := range e.Participants {
			cpart := *part
			ce.Participants[personID] = &cpart
		}
		c.Elections[id] = &ce
	}

	for _, r := range l.ReportRequests {
		cr := *r
		c.ReportRequests = append(c.ReportRequests, &cr)
	}
	for identity, at := range l.ReportGrants {
		c.ReportGrants[identity] = at
	}
	for _, a := range l.Audit {
		ca := *a
		c.Audit = append(c.Audit, &ca)
	}
	return c
}

// ParticipantsWithRole returns the election's participants holding role,
// ordered by Seq.
func (e *ElectionRecord) ParticipantsWithRole(role string) []*ParticipantRecord {
	var out []*ParticipantRecord
	for _, p := range e.Participants {
		if p.Role == role {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seq == out[j].Seq {
			return out[i].PersonID < out[j].PersonID
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

// NextParticipantSeq returns a Seq greater than every participant's.
func (e *ElectionRecord) NextParticipantSeq() int {
	last := 0
	for _, p := range e.Participants {
		if p.Seq > last {
			last = p.Seq
		}
	}
	return last + 1
}

// SortedPersonIDs returns person IDs in ascending order.
func (l *Ledger) SortedPersonIDs() []string {
	ids := make([]string, 0, len(l.Persons))
	for id := range l.Persons {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// SortedElectionIDs returns election IDs in ascending order.
func (l *Ledger) SortedElectionIDs() []string {
	ids := make([]string, 0, len(l.Elections))
	for id := range l.Elections {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// sortIDs orders PREFIX-NNN ids numerically; padding stops at three digits.
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
}
