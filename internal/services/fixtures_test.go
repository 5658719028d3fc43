package services

import (
	"context"
	"fmt"
	"time"

	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/ports"
)

func testRuleTable() *domain.JurisdictionRuleTable {
	return domain.NewJurisdictionRuleTable(map[string]domain.JurisdictionRule{
		"TX": {
			MaxWidthNoPermitFt:    8.5,
			MaxHeightNoPermitFt:   14.0,
			MaxLengthNoPermitFt:   59.0,
			MaxWeightNoPermitLbs:  80000,
			SuperloadWeightLbs:    254300,
			SuperloadWidthFt:      20.0,
			EscortRequiredWidthFt: 14.0,
			LawEnforcementWidthFt: 16.0,
			AvgProcessingHours:    4,
			SingleTripCostBase:    60.00,
			TravelRestrictions:    []string{"30 min before sunrise to 30 min after sunset"},
			PermitPortal:          "TxDMV OSOW Online",
			AnnualPermitAvailable: true,
		},
		"LA": {
			MaxWidthNoPermitFt:    8.5,
			MaxHeightNoPermitFt:   13.5,
			MaxLengthNoPermitFt:   59.5,
			MaxWeightNoPermitLbs:  80000,
			SuperloadWeightLbs:    180000,
			SuperloadWidthFt:      16.0,
			EscortRequiredWidthFt: 12.0,
			LawEnforcementWidthFt: 14.0,
			AvgProcessingHours:    12,
			SingleTripCostBase:    75.00,
			TravelRestrictions:    []string{"Daylight only"},
			PermitPortal:          "LA DOTD Permit Office",
		},
		"GA": {
			MaxWidthNoPermitFt:    8.5,
			MaxHeightNoPermitFt:   13.5,
			MaxLengthNoPermitFt:   60.0,
			MaxWeightNoPermitLbs:  80000,
			SuperloadWeightLbs:    200000,
			SuperloadWidthFt:      18.0,
			EscortRequiredWidthFt: 12.0,
			LawEnforcementWidthFt: 16.0,
			AvgProcessingHours:    8,
			SingleTripCostBase:    50.00,
			TravelRestrictions:    []string{"No holiday travel"},
			PermitPortal:          "GA OSOW Permit System",
			AnnualPermitAvailable: true,
		},
	})
}

func testSegmentTable() *domain.SegmentTable {
	return domain.NewSegmentTable(map[string]domain.SegmentInfrastructure{
		"I-10 E (TX)": {ClearanceFt: 16.0, WeightLimitLbs: 200000, WidthLimitFt: 18.0},
		"Hwy 59 (TX)": {ClearanceFt: 16.2, WeightLimitLbs: 210000, WidthLimitFt: 18.0},
		"I-16 E (GA)": {ClearanceFt: 15.8, WeightLimitLbs: 200000, WidthLimitFt: 18.0},
		"I-75 S (GA)": {ClearanceFt: 15.2, WeightLimitLbs: 185000, WidthLimitFt: 16.0},
		"I-20 W (LA)": {
			ClearanceFt:    14.5,
			WeightLimitLbs: 150000,
			WidthLimitFt:   14.0,
			Restriction: &domain.RestrictionOverlay{
				Type:                 "WEIGHT_RESTRICTION",
				Until:                time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
				MaxWeightOverrideLbs: 120000,
			},
		},
		"I-35 N (TX)": {
			ClearanceFt:    15.0,
			WeightLimitLbs: 170000,
			WidthLimitFt:   14.0,
			Restriction: &domain.RestrictionOverlay{
				Type:   "CONSTRUCTION",
				Until:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				Detour: "Hwy 59 (TX)",
			},
		},
	})
}

// In-memory vehicle repository for quoting tests.
type fakeVehicleRepo struct {
	profiles map[string]*domain.VehicleProfile
	uses     map[string]int
	useErr   error
}

func newFakeVehicleRepo(profiles ...*domain.VehicleProfile) *fakeVehicleRepo {
	r := &fakeVehicleRepo{
		profiles: make(map[string]*domain.VehicleProfile, len(profiles)),
		uses:     make(map[string]int),
	}
	for _, p := range profiles {
		r.profiles[p.CarrierID+"/"+p.UnitNumber] = p
	}
	return r
}

func (r *fakeVehicleRepo) Lookup(_ context.Context, carrierID, unitNumber string) (*domain.VehicleProfile, error) {
	p, ok := r.profiles[carrierID+"/"+unitNumber]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", carrierID, unitNumber, ports.ErrProfileNotFound)
	}
	return p, nil
}

func (r *fakeVehicleRepo) ListFleet(_ context.Context, carrierID string) ([]*domain.VehicleProfile, error) {
	out := []*domain.VehicleProfile{}
	for _, p := range r.profiles {
		if p.CarrierID == carrierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) RecordUse(_ context.Context, carrierID, unitNumber string) error {
	if r.useErr != nil {
		return r.useErr
	}
	r.uses[carrierID+"/"+unitNumber]++
	return nil
}

func testProfile() *domain.VehicleProfile {
	return &domain.VehicleProfile{
		CarrierID:   "ELITE_HEAVY_77",
		UnitNumber:  "TRK-101",
		VehicleType: "9-Axle Lowboy",
		Make:        "Trail King",
		Year:        2022,
		AxleConfig:  "9-axle",
		Dimensions: domain.VehicleDimensions{
			HeightFt:       12.8,
			WidthFt:        8.5,
			LengthFt:       53.0,
			EmptyWeightLbs: 42000,
		},
		MaxPayloadLbs: 180000,
	}
}
