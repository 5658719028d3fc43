package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"osow-feasibility-service/internal/domain"
)

// SQLite-backed implementation of the DecisionStore port. Reports and quotes
// are archived as JSON payloads keyed by their generated IDs.
type SqliteDecisionStore struct{ DB *sql.DB }

func NewSqliteDecisionStore(db *sql.DB) *SqliteDecisionStore {
	return &SqliteDecisionStore{DB: db}
}

func (s *SqliteDecisionStore) SaveReport(ctx context.Context, report *domain.FeasibilityReport) error {
	if report == nil {
		return errors.New("save report: report is nil")
	}
	return s.save(ctx, report.ReportID, "assessment", report)
}

func (s *SqliteDecisionStore) SaveQuote(ctx context.Context, quote *domain.Quote) error {
	if quote == nil {
		return errors.New("save quote: quote is nil")
	}
	return s.save(ctx, quote.QuoteID, "quote", quote)
}

func (s *SqliteDecisionStore) save(ctx context.Context, recordID, kind string, payload any) error {
	if s.DB == nil {
		return errors.New("sqlite decision store: DB is nil")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("save %s %s: marshal payload: %w", kind, recordID, err)
	}

	query := `
	INSERT INTO decisions (record_id, kind, created_at, payload)
	VALUES ($1, $2, $3, $4);
	`
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.DB.ExecContext(ctx, query, recordID, kind, now, string(data)); err != nil {
		return fmt.Errorf("save %s %s: insert decision row: %w", kind, recordID, err)
	}

	return nil
}
