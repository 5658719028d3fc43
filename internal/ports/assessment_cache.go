package ports

import (
	"context"

	"osow-feasibility-service/internal/domain"
)

// Port: optional cache of feasibility reports keyed by a request fingerprint.
// A miss is (nil, nil); cache errors are advisory and never block an assessment.
type AssessmentCache interface {
	Get(ctx context.Context, key string) (*domain.FeasibilityReport, error)
	Put(ctx context.Context, key string, report *domain.FeasibilityReport) error
}
