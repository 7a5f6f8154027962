package cli

import (
	"github.com/example/electa/internal/core/domainerr"
)

// Exit codes returned by the electa binary.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitDomainRejected = 2
)

// ExitCode maps an error to the process exit code: rejected operations
// exit 2, everything else (usage, storage, config) exits 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domainerr.IsDomain(err):
		return ExitDomainRejected
	default:
		return ExitFailure
	}
}
