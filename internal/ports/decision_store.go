package ports

import (
	"context"

	"osow-feasibility-service/internal/domain"
)

// Port: best-effort persistence of computed decisions.
// Failures must not abort an already-computed assessment; callers log and continue.
type DecisionStore interface {
	SaveReport(ctx context.Context, report *domain.FeasibilityReport) error
	SaveQuote(ctx context.Context, quote *domain.Quote) error
}
