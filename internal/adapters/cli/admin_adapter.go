package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/electa/internal/ports/primary"
)

// AdminAdapter translates CLI operations to AdminService calls.
type AdminAdapter struct {
	service primary.AdminService
	out     io.Writer
}

// NewAdminAdapter creates a new AdminAdapter with the given service.
func NewAdminAdapter(service primary.AdminService, out io.Writer) *AdminAdapter {
	return &AdminAdapter{service: service, out: out}
}

// Init makes the caller the ledger administrator.
func (a *AdminAdapter) Init(ctx context.Context) error {
	info, err := a.service.InitializeLedger(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Ledger initialized, administrator: %s\n", info.Identity)
	return nil
}

// Show prints the current administrator.
func (a *AdminAdapter) Show(ctx context.Context) error {
	info, err := a.service.GetAdmin(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Administrator: %s\n", info.Identity)
	return nil
}

// Transfer hands administration to newAdmin.
func (a *AdminAdapter) Transfer(ctx context.Context, newAdmin string) error {
	info, err := a.service.TransferAdmin(ctx, primary.TransferAdminRequest{NewAdmin: newAdmin})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Administration transferred to %s\n", info.Identity)
	return nil
}
