// Package audit contains the pure rules for the append-only audit trail.
package audit

import "fmt"

// Actions recorded in the audit trail.
const (
	ActionLedgerInit       = "ledger.init"
	ActionAdminTransfer    = "admin.transfer"
	ActionPersonRegister   = "person.register"
	ActionElectionCreate   = "election.create"
	ActionElectionStart    = "election.start"
	ActionElectionFinalize = "election.finalize"
	ActionElectionDelete   = "election.delete"
	ActionPostulate        = "participant.postulate"
	ActionApprove          = "participant.approve"
	ActionReject           = "participant.reject"
	ActionVote             = "ballot.cast"
	ActionReportRequest    = "report_access.request"
	ActionReportApprove    = "report_access.approve"
	ActionReportReject     = "report_access.reject"
	ActionReportRevoke     = "report_access.revoke"
)

// Entity types recorded in the audit trail.
const (
	EntityLedger        = "ledger"
	EntityPerson        = "person"
	EntityElection      = "election"
	EntityReportRequest = "report_request"
	EntityReportGrant   = "report_grant"
)

// DefaultLimit caps audit listings when the caller does not ask for a limit.
const DefaultLimit = 50

// GenerateEntryID generates an audit entry ID from the last issued sequence number.
// The format is AUD-XXXX where XXXX is a zero-padded 4-digit number.
func GenerateEntryID(lastSeq int) string {
	return fmt.Sprintf("AUD-%04d", lastSeq+1)
}

// EffectiveLimit returns the listing limit to apply for a requested limit.
func EffectiveLimit(requested int) int {
	if requested <= 0 {
		return DefaultLimit
	}
	return requested
}
