package admin

import (
	"errors"
	"testing"

	"github.com/example/electa/internal/core/domainerr"
)

func TestCanInitialize(t *testing.T) {
	tests := []struct {
		name        string
		ctx         InitializeContext
		wantAllowed bool
		wantKind    error
	}{
		{name: "fresh ledger", ctx: InitializeContext{CallerID: "alice"}, wantAllowed: true},
		{name: "already initialized", ctx: InitializeContext{CallerID: "bob", AdminID: "alice"}, wantKind: domainerr.ErrInvalidState},
		{name: "blank caller", ctx: InitializeContext{CallerID: "  "}, wantKind: domainerr.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanInitialize(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanInitialize() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), tt.wantKind) {
				t.Errorf("CanInitialize() Error() = %v, want kind %v", result.Error(), tt.wantKind)
			}
		})
	}
}

func TestRequireInitialized(t *testing.T) {
	if result := RequireInitialized(LedgerContext{}); result.Allowed || !errors.Is(result.Error(), domainerr.ErrInvalidState) {
		t.Errorf("RequireInitialized(empty) = %+v, want InvalidState", result)
	}
	if result := RequireInitialized(LedgerContext{AdminID: "alice"}); !result.Allowed || result.Error() != nil {
		t.Errorf("RequireInitialized(alice) = %+v, want allowed", result)
	}
}

func TestCanAdminister(t *testing.T) {
	tests := []struct {
		name        string
		ctx         AdminContext
		wantAllowed bool
	}{
		{name: "administrator", ctx: AdminContext{CallerID: "alice", AdminID: "alice"}, wantAllowed: true},
		{name: "other caller", ctx: AdminContext{CallerID: "bob", AdminID: "alice"}},
		{name: "no administrator", ctx: AdminContext{CallerID: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAdminister(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanAdminister() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), domainerr.ErrUnauthorized) {
				t.Errorf("CanAdminister() Error() = %v, want ErrUnauthorized", result.Error())
			}
		})
	}
}

func TestCanTransfer(t *testing.T) {
	tests := []struct {
		name        string
		ctx         TransferContext
		wantAllowed bool
		wantKind    error
	}{
		{name: "administrator hands over", ctx: TransferContext{CallerID: "alice", AdminID: "alice", NewAdminID: "bob"}, wantAllowed: true},
		{name: "non administrator", ctx: TransferContext{CallerID: "bob", AdminID: "alice", NewAdminID: "bob"}, wantKind: domainerr.ErrUnauthorized},
		{name: "blank new identity", ctx: TransferContext{CallerID: "alice", AdminID: "alice", NewAdminID: " "}, wantKind: domainerr.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanTransfer(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanTransfer() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), tt.wantKind) {
				t.Errorf("CanTransfer() Error() = %v, want kind %v", result.Error(), tt.wantKind)
			}
		})
	}
}
