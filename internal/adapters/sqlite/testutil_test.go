// Package sqlite_test contains tests for the SQLite ledger store.
//
// This file is the single point where the database schema is loaded for
// tests. setupTestDB uses db.GetSchemaSQL() so tests run against the
// authoritative schema.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/electa/internal/db"
	"github.com/example/electa/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// A second connection would see a different :memory: database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedLedger builds an administered ledger with two persons and one election
// holding a candidate and a pending voter.
func seedLedger(l *secondary.Ledger) {
	l.Admin = "admin"
	l.Seq = secondary.Sequences{Person: 2, Election: 1, ReportRequest: 1, Audit: 0}

	l.Persons["PERSON-001"] = &secondary.PersonRecord{
		ID: "PERSON-001", Name: "Ana", Surname: "Lopez", NationalID: "100", Owner: "ana", RegisteredAt: 1700000000,
		Participation: map[string]bool{"ELEC-001": true},
	}
	l.Persons["PERSON-002"] = &secondary.PersonRecord{
		ID: "PERSON-002", Name: "Bruno", Surname: "Diaz", NationalID: "200", Owner: "bruno", RegisteredAt: 1700000100,
		Participation: map[string]bool{"ELEC-001": true},
	}
	l.Elections["ELEC-001"] = &secondary.ElectionRecord{
		ID: "ELEC-001", Title: "Treasurer", StartAt: 1704067200, EndAt: 1704844800, Status: "created", CreatedAt: 1700000200,
		Participants: map[string]*secondary.ParticipantRecord{
			"PERSON-001": {PersonID: "PERSON-001", Name: "Ana", Surname: "Lopez", NationalID: "100", Role: "candidate", Seq: 1, Votes: 7},
			"PERSON-002": {PersonID: "PERSON-002", Name: "Bruno", Surname: "Diaz", NationalID: "200", Role: "pending_voter", Seq: 2},
		},
	}
	l.ReportRequests = []*secondary.ReportRequestRecord{
		{ID: "RREQ-001", Requester: "auditor", RequestedAt: 1700000300},
	}
	l.ReportGrants["observer"] = 1700000400
}

// recordAudit appends an audit entry the way the application layer does.
func recordAudit(l *secondary.Ledger, actor, action, entityType, entityID string) {
	l.Seq.Audit++
	l.Audit = append(l.Audit, &secondary.AuditRecord{
		ID:         auditID(l.Seq.Audit),
		OpID:       "op",
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OccurredAt: int64(1700000000 + l.Seq.Audit),
	})
}
