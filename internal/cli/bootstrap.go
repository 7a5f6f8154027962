// Package cli provides the cobra commands of the electa CLI.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/electa/internal/config"
	"github.com/example/electa/internal/core/calendar"
	"github.com/example/electa/internal/ctxutil"
	"github.com/example/electa/internal/wire"
)

// globalActorID stores the caller identity for the current CLI invocation.
// Set once at startup by Bootstrap.
var globalActorID string

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	As       string
	At       string
	Store    string
	DBPath   string
	DSN      string
	LogLevel string
}

// Register binds the flags to cmd's persistent flag set.
func (f *GlobalFlags) Register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.As, "as", "", "Caller identity (overrides config actor and ELECTA_ACTOR)")
	pf.StringVar(&f.At, "at", "", "Pin the clock to YYYY-MM-DD[ HH:MM[:SS]] or Unix seconds")
	pf.StringVar(&f.Store, "store", "", "Ledger store: sqlite, postgres or memory")
	pf.StringVar(&f.DBPath, "db", "", "SQLite database path (default ~/.electa/electa.db)")
	pf.StringVar(&f.DSN, "dsn", "", "PostgreSQL connection string")
	pf.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// Bootstrap resolves configuration from the working directory, environment
// and flags, then configures logging and the service container.
func Bootstrap(flags *GlobalFlags, stderr io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	applyFlags(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var at time.Time
	if flags.At != "" {
		at, err = parseAt(flags.At)
		if err != nil {
			return err
		}
	}

	globalActorID = cfg.Actor
	wire.Configure(wire.Options{Config: cfg, At: at, Logger: logger})
	return wire.Init()
}

// NewContext creates a context with the current caller embedded.
// Commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	ctx := context.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}

func applyFlags(cfg *config.Config, flags *GlobalFlags) {
	if flags.As != "" {
		cfg.Actor = flags.As
	}
	if flags.Store != "" {
		cfg.Store = flags.Store
	}
	if flags.DBPath != "" {
		cfg.DBPath = flags.DBPath
	}
	if flags.DSN != "" {
		cfg.PostgresDSN = flags.DSN
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if raw == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return level, nil
}

// parseAt accepts a calendar date or Unix seconds.
func parseAt(raw string) (time.Time, error) {
	d, dateErr := calendar.ParseDate(raw)
	if dateErr == nil {
		ts, err := calendar.Timestamp(d)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at: %w", err)
		}
		return time.Unix(ts, 0).UTC(), nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at: %w", dateErr)
	}
	return time.Unix(seconds, 0).UTC(), nil
}
