package db

// SchemaVersion is the version recorded in schema_version for SchemaSQL.
const SchemaVersion = 1

// SchemaSQL is the complete schema for the electa ledger.
//
// This is the single source of truth for the sqlite layout. Adapter tests
// build their in-memory databases from GetSchemaSQL(), so a repository query
// that references a missing column fails at test time with "no such column".
//
// When adding columns or tables:
//  1. Update SchemaSQL here
//  2. Bump SchemaVersion
//  3. Update the row mapping in internal/adapters/sqlite
const SchemaSQL = `
-- Singleton row holding the administrator and id counters
CREATE TABLE IF NOT EXISTS ledger_meta (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	admin TEXT NOT NULL DEFAULT '',
	next_person INTEGER NOT NULL DEFAULT 0,
	next_election INTEGER NOT NULL DEFAULT 0,
	next_report_request INTEGER NOT NULL DEFAULT 0,
	next_audit INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS persons (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	surname TEXT NOT NULL,
	national_id TEXT NOT NULL UNIQUE,
	owner TEXT NOT NULL,
	registered_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS elections (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	start_at INTEGER NOT NULL,
	end_at INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('created', 'open', 'closed')) DEFAULT 'created',
	created_at INTEGER NOT NULL
);

-- One slot per (person, election); participating mirrors election_participants
CREATE TABLE IF NOT EXISTS participation (
	person_id TEXT NOT NULL,
	election_id TEXT NOT NULL,
	participating INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (person_id, election_id),
	FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE,
	FOREIGN KEY (election_id) REFERENCES elections(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS election_participants (
	election_id TEXT NOT NULL,
	person_id TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('pending_voter', 'voter', 'pending_candidate', 'candidate')),
	seq INTEGER NOT NULL,
	has_voted INTEGER NOT NULL DEFAULT 0,
	votes INTEGER NOT NULL DEFAULT 0,
	name TEXT NOT NULL,
	surname TEXT NOT NULL,
	national_id TEXT NOT NULL,
	PRIMARY KEY (election_id, person_id),
	FOREIGN KEY (election_id) REFERENCES elections(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_requests (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	requester TEXT NOT NULL,
	requested_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS report_grants (
	identity TEXT PRIMARY KEY,
	granted_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL UNIQUE,
	op_id TEXT NOT NULL,
	actor TEXT NOT NULL,
	action TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	detail TEXT,
	occurred_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participants_election ON election_participants(election_id, role, seq);
CREATE INDEX IF NOT EXISTS idx_audit_entity ON audit_log(entity_type, entity_id);
CREATE INDEX IF NOT EXISTS idx_audit_actor ON audit_log(actor);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

INSERT OR IGNORE INTO ledger_meta (id) VALUES (1);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
