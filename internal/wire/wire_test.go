package wire

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/electa/internal/config"
)

func TestInit_MemoryStore(t *testing.T) {
	Configure(Options{Config: &config.Config{Store: config.StoreMemory, Actor: "admin"}})
	if err := Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	var out bytes.Buffer
	if err := AdminAdapterWithOutput(&out).Init(context.Background()); err != nil {
		t.Fatalf("Init() through adapter unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "administrator: admin") {
		t.Errorf("output = %q, want administrator admin", out.String())
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	sqliteCfg := &config.Config{Store: config.StoreSQLite, DBPath: filepath.Join(t.TempDir(), "electa.db")}
	store, err := openStore(ctx, sqliteCfg, logger)
	if err != nil {
		t.Fatalf("openStore(sqlite) unexpected error: %v", err)
	}
	if store == nil {
		t.Fatal("openStore(sqlite) returned nil store")
	}
	if sqlDB != nil {
		_ = sqlDB.Close()
		sqlDB = nil
	}

	if _, err := openStore(ctx, &config.Config{Store: "mysql"}, logger); err == nil {
		t.Error("openStore(mysql) succeeded, want error")
	}
	if _, err := openStore(ctx, &config.Config{Store: config.StorePostgres}, logger); err == nil {
		t.Error("openStore(postgres without dsn) succeeded, want error")
	}
}
