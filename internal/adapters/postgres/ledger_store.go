package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/electa/internal/core/domainerr"
	"github.com/example/electa/internal/ports/secondary"
)

// LedgerStore implements secondary.LedgerStore on PostgreSQL.
// Update locks the ledger_meta row so concurrent writers serialize.
type LedgerStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewLedgerStore creates a new PostgreSQL ledger store.
func NewLedgerStore(db *gorm.DB, logger *slog.Logger) *LedgerStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerStore{db: db, logger: logger}
}

// View loads the ledger and passes it to fn. Nothing is written.
func (s *LedgerStore) View(ctx context.Context, fn func(*secondary.Ledger) error) error {
	var l *secondary.Ledger
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		l, err = s.load(tx, false)
		return err
	})
	if err != nil {
		return err
	}
	return fn(l)
}

// Update loads the ledger under a row lock, applies fn and writes the result.
func (s *LedgerStore) Update(ctx context.Context, fn func(*secondary.Ledger) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := s.load(tx, true)
		if err != nil {
			return err
		}
		if err := fn(l); err != nil {
			return err
		}
		return s.save(tx, l)
	})
}

// ListAudit retrieves audit entries matching the filters, newest first.
func (s *LedgerStore) ListAudit(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	tx := s.db.WithContext(ctx).Model(&auditModel{})
	if filters.EntityType != "" {
		tx = tx.Where("entity_type = ?", filters.EntityType)
	}
	if filters.EntityID != "" {
		tx = tx.Where("entity_id = ?", filters.EntityID)
	}
	if filters.Actor != "" {
		tx = tx.Where("actor = ?", filters.Actor)
	}
	if filters.Limit > 0 {
		tx = tx.Limit(filters.Limit)
	}

	var rows []auditModel
	if err := tx.Order("seq DESC").Find(&rows).Error; err != nil {
		return nil, s.logError("ledger_store_list_audit_failed", err,
			"entity_type", filters.EntityType,
			"entity_id", filters.EntityID,
			"actor", filters.Actor,
		)
	}

	entries := make([]*secondary.AuditRecord, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toRecord())
	}
	return entries, nil
}

func (s *LedgerStore) load(tx *gorm.DB, forUpdate bool) (*secondary.Ledger, error) {
	// The singleton row may not exist yet on a fresh database.
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ledgerMetaModel{ID: 1}).Error; err != nil {
		return nil, s.logError("ledger_store_seed_meta_failed", err)
	}

	var rows ledgerRows
	meta := tx.Where("id = ?", 1)
	if forUpdate {
		meta = meta.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := meta.First(&rows.Meta).Error; err != nil {
		return nil, s.logError("ledger_store_load_meta_failed", err)
	}

	if err := tx.Find(&rows.Persons).Error; err != nil {
		return nil, s.logError("ledger_store_load_persons_failed", err)
	}
	if err := tx.Find(&rows.Elections).Error; err != nil {
		return nil, s.logError("ledger_store_load_elections_failed", err)
	}
	if err := tx.Find(&rows.Participation).Error; err != nil {
		return nil, s.logError("ledger_store_load_participation_failed", err)
	}
	if err := tx.Find(&rows.Participants).Error; err != nil {
		return nil, s.logError("ledger_store_load_participants_failed", err)
	}
	if err := tx.Order("position ASC").Find(&rows.ReportRequests).Error; err != nil {
		return nil, s.logError("ledger_store_load_report_requests_failed", err)
	}
	if err := tx.Find(&rows.ReportGrants).Error; err != nil {
		return nil, s.logError("ledger_store_load_report_grants_failed", err)
	}

	return ledgerFromRows(rows), nil
}

func (s *LedgerStore) save(tx *gorm.DB, l *secondary.Ledger) error {
	rows := rowsFromLedger(l)

	if err := tx.Save(&rows.Meta).Error; err != nil {
		return s.logError("ledger_store_save_meta_failed", err)
	}

	// Children first; the aggregate is rewritten as a whole.
	tables := []any{&participationModel{}, &participantModel{}, &electionModel{}, &personModel{}, &reportRequestModel{}, &reportGrantModel{}}
	for _, model := range tables {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return s.logError("ledger_store_clear_failed", err)
		}
	}

	inserts := []struct {
		event string
		rows  any
		count int
	}{
		{"ledger_store_save_persons_failed", &rows.Persons, len(rows.Persons)},
		{"ledger_store_save_elections_failed", &rows.Elections, len(rows.Elections)},
		{"ledger_store_save_participation_failed", &rows.Participation, len(rows.Participation)},
		{"ledger_store_save_participants_failed", &rows.Participants, len(rows.Participants)},
		{"ledger_store_save_report_requests_failed", &rows.ReportRequests, len(rows.ReportRequests)},
		{"ledger_store_save_report_grants_failed", &rows.ReportGrants, len(rows.ReportGrants)},
	}
	for _, ins := range inserts {
		if ins.count == 0 {
			continue
		}
		if err := tx.Create(ins.rows).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerr.New(domainerr.ErrInvalidInput, "duplicate key: %s", uniqueDetail(err))
			}
			return s.logError(ins.event, err)
		}
	}

	if audit := auditRows(l); len(audit) > 0 {
		if err := tx.Create(&audit).Error; err != nil {
			return s.logError("ledger_store_append_audit_failed", err)
		}
	}
	return nil
}

func (s *LedgerStore) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "electa/postgres",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	s.logger.Error("ledger store operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func uniqueDetail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		return pgErr.Detail
	}
	return err.Error()
}

var _ secondary.LedgerStore = (*LedgerStore)(nil)
