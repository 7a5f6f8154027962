package app

import (
	"context"
	"fmt"
	"strings"

	coreadmin "github.com/example/electa/internal/core/admin"
	"github.com/example/electa/internal/core/audit"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// AdminServiceImpl implements the AdminService interface.
type AdminServiceImpl struct {
	deps Deps
}

// NewAdminService creates a new AdminService with injected dependencies.
func NewAdminService(deps Deps) *AdminServiceImpl {
	return &AdminServiceImpl{deps: deps}
}

// InitializeLedger makes the caller the first administrator.
func (s *AdminServiceImpl) InitializeLedger(ctx context.Context) (*primary.AdminInfo, error) {
	var info *primary.AdminInfo
	err := s.deps.mutate(ctx, "ledger_initialize", nil, func(op operation, l *secondary.Ledger) error {
		// 1. Guard check
		guardCtx := coreadmin.InitializeContext{CallerID: op.caller, AdminID: l.Admin}
		if result := coreadmin.CanInitialize(guardCtx); !result.Allowed {
			return result.Error()
		}

		// 2. Apply
		l.Admin = op.caller
		op.record(l, audit.ActionLedgerInit, audit.EntityLedger, "ledger", fmt.Sprintf("administrator %s", op.caller))

		info = &primary.AdminInfo{Identity: l.Admin}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// GetAdmin returns the current administrator.
func (s *AdminServiceImpl) GetAdmin(ctx context.Context) (*primary.AdminInfo, error) {
	var info *primary.AdminInfo
	err := s.deps.read(ctx, "admin_get", nil, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}
		info = &primary.AdminInfo{Identity: l.Admin}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// TransferAdmin hands the administrator role to another identity.
func (s *AdminServiceImpl) TransferAdmin(ctx context.Context, req primary.TransferAdminRequest) (*primary.AdminInfo, error) {
	newAdmin := strings.TrimSpace(req.NewAdmin)

	var info *primary.AdminInfo
	err := s.deps.mutate(ctx, "admin_transfer", []any{"new_admin", newAdmin}, func(op operation, l *secondary.Ledger) error {
		if err := requireInitialized(l); err != nil {
			return err
		}

		guardCtx := coreadmin.TransferContext{CallerID: op.caller, AdminID: l.Admin, NewAdminID: newAdmin}
		if result := coreadmin.CanTransfer(guardCtx); !result.Allowed {
			return result.Error()
		}

		previous := l.Admin
		l.Admin = newAdmin
		op.record(l, audit.ActionAdminTransfer, audit.EntityLedger, "ledger", fmt.Sprintf("%s -> %s", previous, newAdmin))

		info = &primary.AdminInfo{Identity: l.Admin}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

var _ primary.AdminService = (*AdminServiceImpl)(nil)
