package ports

import (
	"context"

	"osow-feasibility-service/internal/domain"
)

// A permit application handed to a jurisdiction's portal.
type PermitRequest struct {
	Region     string
	PermitType domain.PermitType
	Portal     string
	CarrierID  string
	Dimensions domain.LoadDimensions
}

// Portal response for a submitted permit request.
type SubmissionOutcome struct {
	ConfirmationID string
	Status         string
	EstimatedHours int
}

// Port: contract for submitting permit requests to external portals.
// The core never depends on the concrete transport behind a portal.
type PermitSubmitter interface {
	Submit(ctx context.Context, req PermitRequest) (SubmissionOutcome, error)
}
