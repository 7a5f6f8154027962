// Package sqlite contains the SQLite implementation of the ledger store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/electa/internal/ports/secondary"
)

// LedgerStore implements secondary.LedgerStore with SQLite.
// Every call runs in its own transaction; with _txlock=immediate the write
// lock is taken at BEGIN so concurrent processes serialize.
type LedgerStore struct {
	db *sql.DB
}

// NewLedgerStore creates a new SQLite ledger store.
func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// View loads the ledger and passes it to fn. Nothing is written.
func (s *LedgerStore) View(ctx context.Context, fn func(*secondary.Ledger) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	l, err := loadLedger(ctx, tx)
	if err != nil {
		return err
	}
	return fn(l)
}

// Update loads the ledger, applies fn and writes the result in one transaction.
func (s *LedgerStore) Update(ctx context.Context, fn func(*secondary.Ledger) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	l, err := loadLedger(ctx, tx)
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		return err
	}
	if err := saveLedger(ctx, tx, l); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger: %w", err)
	}
	return nil
}

// ListAudit retrieves audit entries matching the filters, newest first.
func (s *LedgerStore) ListAudit(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	query := "SELECT id, op_id, actor, action, entity_type, entity_id, detail, occurred_at FROM audit_log WHERE 1=1"
	var args []any

	if filters.EntityType != "" {
		query += " AND entity_type = ?"
		args = append(args, filters.EntityType)
	}
	if filters.EntityID != "" {
		query += " AND entity_id = ?"
		args = append(args, filters.EntityID)
	}
	if filters.Actor != "" {
		query += " AND actor = ?"
		args = append(args, filters.Actor)
	}
	query += " ORDER BY seq DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.AuditRecord
	for rows.Next() {
		var detail sql.NullString
		r := &secondary.AuditRecord{}
		if err := rows.Scan(&r.ID, &r.OpID, &r.Actor, &r.Action, &r.EntityType, &r.EntityID, &detail, &r.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		r.Detail = detail.String
		entries = append(entries, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	return entries, nil
}

func loadLedger(ctx context.Context, tx *sql.Tx) (*secondary.Ledger, error) {
	l := secondary.NewLedger()

	err := tx.QueryRowContext(ctx,
		"SELECT admin, next_person, next_election, next_report_request, next_audit FROM ledger_meta WHERE id = 1",
	).Scan(&l.Admin, &l.Seq.Person, &l.Seq.Election, &l.Seq.ReportRequest, &l.Seq.Audit)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger meta: %w", err)
	}

	steps := []struct {
		name string
		load func(context.Context, *sql.Tx, *secondary.Ledger) error
	}{
		{"persons", loadPersons},
		{"elections", loadElections},
		{"participation", loadParticipation},
		{"participants", loadParticipants},
		{"report requests", loadReportRequests},
		{"report grants", loadReportGrants},
	}
	for _, step := range steps {
		if err := step.load(ctx, tx, l); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", step.name, err)
		}
	}
	return l, nil
}

func loadPersons(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	rows, err := tx.QueryContext(ctx, "SELECT id, name, surname, national_id, owner, registered_at FROM persons")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p := &secondary.PersonRecord{Participation: make(map[string]bool)}
		if err := rows.Scan(&p.ID, &p.Name, &p.Surname, &p.NationalID, &p.Owner, &p.RegisteredAt); err != nil {
			return err
		}
		l.Persons[p.ID] = p
	}
	return rows.Err()
}

func loadElections(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	rows, err := tx.QueryContext(ctx, "SELECT id, title, start_at, end_at, status, created_at FROM elections")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		e := &secondary.ElectionRecord{Participants: make(map[string]*secondary.ParticipantRecord)}
		if err := rows.Scan(&e.ID, &e.Title, &e.StartAt, &e.EndAt, &e.Status, &e.CreatedAt); err != nil {
			return err
		}
		l.Elections[e.ID] = e
	}
	return rows.Err()
}

func loadParticipation(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	rows, err := tx.QueryContext(ctx, "SELECT person_id, election_id, participating FROM participation")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var personID, electionID string
		var participating bool
		if err := rows.Scan(&personID, &electionID, &participating); err != nil {
			return err
		}
		p, ok := l.Persons[personID]
		if !ok {
			return fmt.Errorf("participation row for unknown person %s", personID)
		}
		p.Participation[electionID] = participating
	}
	return rows.Err()
}

func loadParticipants(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	rows, err := tx.QueryContext(ctx,
		"SELECT election_id, person_id, role, seq, has_voted, votes, name, surname, national_id FROM election_participants",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var electionID string
		var votes int64
		p := &secondary.ParticipantRecord{}
		if err := rows.Scan(&electionID, &p.PersonID, &p.Role, &p.Seq, &p.HasVoted, &votes, &p.Name, &p.Surname, &p.NationalID); err != nil {
			return err
		}
		e, ok := l.Elections[electionID]
		if !ok {
			return fmt.Errorf("participant row for unknown election %s", electionID)
		}
		p.Votes = uint32(votes)
		e.Participants[p.PersonID] = p
	}
	return rows.Err()
}

func loadReportRequests(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	rows, err := tx.QueryContext(ctx, "SELECT id, requester, requested_at FROM report_requests ORDER BY position")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		r := &secondary.ReportRequestRecord{}
		if err := rows.Scan(&r.ID, &r.Requester, &r.RequestedAt); err != nil {
			return err
		}
		l.ReportRequests = append(l.ReportRequests, r)
	}
	return rows.Err()
}

func loadReportGrants(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	rows, err := tx.QueryContext(ctx, "SELECT identity, granted_at FROM report_grants")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var identity string
		var grantedAt int64
		if err := rows.Scan(&identity, &grantedAt); err != nil {
			return err
		}
		l.ReportGrants[identity] = grantedAt
	}
	return rows.Err()
}

// saveLedger rewrites the aggregate tables and appends the operation's audit entries.
func saveLedger(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE ledger_meta SET admin = ?, next_person = ?, next_election = ?, next_report_request = ?, next_audit = ? WHERE id = 1",
		l.Admin, l.Seq.Person, l.Seq.Election, l.Seq.ReportRequest, l.Seq.Audit,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger meta: %w", err)
	}

	// Children first so foreign keys hold at every step.
	for _, table := range []string{"participation", "election_participants", "elections", "persons", "report_requests", "report_grants"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, id := range l.SortedPersonIDs() {
		p := l.Persons[id]
		_, err := tx.ExecContext(ctx,
			"INSERT INTO persons (id, name, surname, national_id, owner, registered_at) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Surname, p.NationalID, p.Owner, p.RegisteredAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save person %s: %w", p.ID, err)
		}
	}

	for _, id := range l.SortedElectionIDs() {
		e := l.Elections[id]
		_, err := tx.ExecContext(ctx,
			"INSERT INTO elections (id, title, start_at, end_at, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			e.ID, e.Title, e.StartAt, e.EndAt, e.Status, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save election %s: %w", e.ID, err)
		}
		for _, p := range e.Participants {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO election_participants (election_id, person_id, role, seq, has_voted, votes, name, surname, national_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
				e.ID, p.PersonID, p.Role, p.Seq, p.HasVoted, int64(p.Votes), p.Name, p.Surname, p.NationalID,
			)
			if err != nil {
				return fmt.Errorf("failed to save participant %s in %s: %w", p.PersonID, e.ID, err)
			}
		}
	}

	for _, p := range l.Persons {
		for electionID, participating := range p.Participation {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO participation (person_id, election_id, participating) VALUES (?, ?, ?)",
				p.ID, electionID, participating,
			)
			if err != nil {
				return fmt.Errorf("failed to save participation %s/%s: %w", p.ID, electionID, err)
			}
		}
	}

	for i, r := range l.ReportRequests {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO report_requests (id, position, requester, requested_at) VALUES (?, ?, ?, ?)",
			r.ID, i+1, r.Requester, r.RequestedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save report request %s: %w", r.ID, err)
		}
	}

	for identity, grantedAt := range l.ReportGrants {
		if _, err := tx.ExecContext(ctx, "INSERT INTO report_grants (identity, granted_at) VALUES (?, ?)", identity, grantedAt); err != nil {
			return fmt.Errorf("failed to save report grant %s: %w", identity, err)
		}
	}

	return appendAudit(ctx, tx, l)
}

// appendAudit inserts the entries recorded by this operation.
// They carry the last len(l.Audit) numbers of the audit sequence.
func appendAudit(ctx context.Context, tx *sql.Tx, l *secondary.Ledger) error {
	if len(l.Audit) == 0 {
		return nil
	}

	first := l.Seq.Audit - len(l.Audit) + 1
	placeholders := make([]string, len(l.Audit))
	args := make([]any, 0, len(l.Audit)*9)
	for i, a := range l.Audit {
		placeholders[i] = "(?, ?, ?, ?, ?, ?, ?, ?, ?)"
		args = append(args, a.ID, first+i, a.OpID, a.Actor, a.Action, a.EntityType, a.EntityID, a.Detail, a.OccurredAt)
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO audit_log (id, seq, op_id, actor, action, entity_type, entity_id, detail, occurred_at) VALUES "+strings.Join(placeholders, ", "),
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

var _ secondary.LedgerStore = (*LedgerStore)(nil)
