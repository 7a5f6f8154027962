// Package wire provides dependency injection for the electa application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"gorm.io/gorm"

	cliadapter "github.com/example/electa/internal/adapters/cli"
	"github.com/example/electa/internal/adapters/identity"
	"github.com/example/electa/internal/adapters/memory"
	"github.com/example/electa/internal/adapters/postgres"
	"github.com/example/electa/internal/adapters/sqlite"
	"github.com/example/electa/internal/app"
	"github.com/example/electa/internal/config"
	"github.com/example/electa/internal/db"
	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/ports/secondary"
)

// Options select the store and identity used by the singleton services.
// Configure must be called before the first service is requested.
type Options struct {
	Config *config.Config
	// At pins the clock; zero means the wall clock.
	At     time.Time
	Logger *slog.Logger
}

var (
	opts    Options
	once    sync.Once
	initErr error

	sqlDB  *sql.DB
	gormDB *gorm.DB

	adminService        primary.AdminService
	personService       primary.PersonService
	electionService     primary.ElectionService
	nominationService   primary.NominationService
	approvalService     primary.ApprovalService
	votingService       primary.VotingService
	reportAccessService primary.ReportAccessService
	reportService       primary.ReportService
	auditService        primary.AuditService
)

// Configure sets the options used by Init.
func Configure(o Options) {
	opts = o
}

// Init builds every service once and reports any initialization failure.
func Init() error {
	once.Do(initServices)
	return initErr
}

// Close releases the open database handle, if any.
func Close() error {
	if sqlDB != nil {
		return sqlDB.Close()
	}
	if gormDB != nil {
		return postgres.Close(gormDB)
	}
	return nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := app.ResolveLogger(opts.Logger)

	store, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		initErr = err
		return
	}

	var clock secondary.Clock = identity.SystemClock{}
	if !opts.At.IsZero() {
		clock = identity.FixedClock{At: opts.At}
	}

	deps := app.Deps{
		Store:  store,
		Caller: identity.NewCallerProvider(cfg.Actor),
		Clock:  clock,
		Logger: logger,
	}

	adminService = app.NewAdminService(deps)
	personService = app.NewPersonService(deps)
	electionService = app.NewElectionService(deps)
	nominationService = app.NewNominationService(deps)
	approvalService = app.NewApprovalService(deps)
	votingService = app.NewVotingService(deps)
	reportAccessService = app.NewReportAccessService(deps)
	reportService = app.NewReportService(deps)
	auditService = app.NewAuditService(deps)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (secondary.LedgerStore, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewLedgerStore(), nil

	case config.StorePostgres:
		database, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, database); err != nil {
			_ = postgres.Close(database)
			return nil, err
		}
		gormDB = database
		return postgres.NewLedgerStore(database, logger), nil

	case config.StoreSQLite, "":
		path := cfg.DBPath
		if path == "" {
			defaultPath, err := config.DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
		database, err := db.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		sqlDB = database
		return sqlite.NewLedgerStore(database), nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func mustInit() {
	if err := Init(); err != nil {
		fmt.Fprintf(os.Stderr, "electa: %v\n", err)
		os.Exit(1)
	}
}

// AdminAdapter returns a new AdminAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func AdminAdapter() *cliadapter.AdminAdapter {
	return AdminAdapterWithOutput(os.Stdout)
}

// AdminAdapterWithOutput returns a new AdminAdapter writing to the given output.
func AdminAdapterWithOutput(out io.Writer) *cliadapter.AdminAdapter {
	mustInit()
	return cliadapter.NewAdminAdapter(adminService, out)
}

// PersonAdapter returns a new PersonAdapter writing to stdout.
func PersonAdapter() *cliadapter.PersonAdapter {
	mustInit()
	return cliadapter.NewPersonAdapter(personService, os.Stdout)
}

// ElectionAdapter returns a new ElectionAdapter writing to stdout.
func ElectionAdapter() *cliadapter.ElectionAdapter {
	mustInit()
	return cliadapter.NewElectionAdapter(electionService, os.Stdout)
}

// NominationAdapter returns a new NominationAdapter writing to stdout.
func NominationAdapter() *cliadapter.NominationAdapter {
	mustInit()
	return cliadapter.NewNominationAdapter(nominationService, approvalService, votingService, os.Stdout)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	mustInit()
	return cliadapter.NewReportAdapter(reportAccessService, reportService, os.Stdout)
}

// AuditAdapter returns a new AuditAdapter writing to stdout.
func AuditAdapter() *cliadapter.AuditAdapter {
	mustInit()
	return cliadapter.NewAuditAdapter(auditService, os.Stdout)
}
