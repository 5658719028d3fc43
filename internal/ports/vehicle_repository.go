package ports

import (
	"context"
	"errors"

	"osow-feasibility-service/internal/domain"
)

// ErrProfileNotFound is returned when no profile exists for a carrier/unit pair.
var ErrProfileNotFound = errors.New("vehicle profile not found")

// Port: a boundary for retrieving carrier vehicle profiles.
type VehicleProfileRepository interface {
	// Lookup resolves a stored profile; ErrProfileNotFound when absent.
	Lookup(ctx context.Context, carrierID, unitNumber string) (*domain.VehicleProfile, error)
	// ListFleet returns all stored profiles for a carrier.
	ListFleet(ctx context.Context, carrierID string) ([]*domain.VehicleProfile, error)
	// RecordUse increments the profile's usage count and stamps last-used.
	RecordUse(ctx context.Context, carrierID, unitNumber string) error
}
