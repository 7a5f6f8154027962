// Package primary defines the primary ports (driving adapters) of the election engine.
// Each service interface is one boundary component; DTOs live next to it.
package primary

import "context"

// AdminService defines the primary port for ledger administration.
type AdminService interface {
	// InitializeLedger makes the caller the first administrator.
	InitializeLedger(ctx context.Context) (*AdminInfo, error)

	// GetAdmin returns the current administrator.
	GetAdmin(ctx context.Context) (*AdminInfo, error)

	// TransferAdmin hands the administrator role to another identity.
	TransferAdmin(ctx context.Context, req TransferAdminRequest) (*AdminInfo, error)
}

// AdminInfo describes the ledger administrator.
type AdminInfo struct {
	Identity string
}

// TransferAdminRequest contains the parameters for handing over administration.
type TransferAdminRequest struct {
	NewAdmin string
}
