package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"osow-feasibility-service/internal/domain"
)

type jurisdictionSeed struct {
	MaxWidthNoPermitFt    float64  `yaml:"max_width_no_permit_ft"`
	MaxHeightNoPermitFt   float64  `yaml:"max_height_no_permit_ft"`
	MaxLengthNoPermitFt   float64  `yaml:"max_length_no_permit_ft"`
	MaxWeightNoPermitLbs  int      `yaml:"max_weight_no_permit_lbs"`
	SuperloadWeightLbs    int      `yaml:"superload_weight_lbs"`
	SuperloadWidthFt      float64  `yaml:"superload_width_ft"`
	EscortRequiredWidthFt float64  `yaml:"escort_required_width_ft"`
	LawEnforcementWidthFt float64  `yaml:"law_enforcement_width_ft"`
	AvgProcessingHours    int      `yaml:"avg_processing_hours"`
	SingleTripCostBase    float64  `yaml:"single_trip_cost_base"`
	TravelRestrictions    []string `yaml:"travel_restrictions"`
	PermitPortal          string   `yaml:"permit_portal"`
	AnnualPermitAvailable bool     `yaml:"annual_permit_available"`
}

type restrictionSeed struct {
	Type                 string `yaml:"type"`
	Until                string `yaml:"until"` // YYYY-MM-DD
	Detour               string `yaml:"detour"`
	MaxWeightOverrideLbs int    `yaml:"max_weight_override_lbs"`
}

type segmentSeed struct {
	ClearanceFt    float64          `yaml:"clearance_ft"`
	WeightLimitLbs int              `yaml:"weight_limit_lbs"`
	WidthLimitFt   float64          `yaml:"width_limit_ft"`
	Restriction    *restrictionSeed `yaml:"restriction"`
}

// LoadJurisdictionRules parses the per-region legal-limit seed table.
func LoadJurisdictionRules(path string) (*domain.JurisdictionRuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load jurisdictions: read %q: %w", path, err)
	}

	var seeds map[string]jurisdictionSeed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("load jurisdictions: parse %q: %w", path, err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("load jurisdictions: %q contains no regions", path)
	}

	rules := make(map[string]domain.JurisdictionRule, len(seeds))
	for code, s := range seeds {
		if s.MaxWeightNoPermitLbs <= 0 {
			return nil, fmt.Errorf("load jurisdictions: region %q: max_weight_no_permit_lbs must be positive", code)
		}
		rules[code] = domain.JurisdictionRule{
			MaxWidthNoPermitFt:    s.MaxWidthNoPermitFt,
			MaxHeightNoPermitFt:   s.MaxHeightNoPermitFt,
			MaxLengthNoPermitFt:   s.MaxLengthNoPermitFt,
			MaxWeightNoPermitLbs:  s.MaxWeightNoPermitLbs,
			SuperloadWeightLbs:    s.SuperloadWeightLbs,
			SuperloadWidthFt:      s.SuperloadWidthFt,
			EscortRequiredWidthFt: s.EscortRequiredWidthFt,
			LawEnforcementWidthFt: s.LawEnforcementWidthFt,
			AvgProcessingHours:    s.AvgProcessingHours,
			SingleTripCostBase:    s.SingleTripCostBase,
			TravelRestrictions:    s.TravelRestrictions,
			PermitPortal:          s.PermitPortal,
			AnnualPermitAvailable: s.AnnualPermitAvailable,
		}
	}

	return domain.NewJurisdictionRuleTable(rules), nil
}

// LoadSegments parses the segment infrastructure seed table, including any
// active restriction overlays.
func LoadSegments(path string) (*domain.SegmentTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load segments: read %q: %w", path, err)
	}

	var seeds map[string]segmentSeed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("load segments: parse %q: %w", path, err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("load segments: %q contains no segments", path)
	}

	segments := make(map[string]domain.SegmentInfrastructure, len(seeds))
	for id, s := range seeds {
		if s.ClearanceFt <= 0 || s.WeightLimitLbs <= 0 || s.WidthLimitFt <= 0 {
			return nil, fmt.Errorf("load segments: segment %q: limits must be positive", id)
		}

		seg := domain.SegmentInfrastructure{
			ClearanceFt:    s.ClearanceFt,
			WeightLimitLbs: s.WeightLimitLbs,
			WidthLimitFt:   s.WidthLimitFt,
		}

		if r := s.Restriction; r != nil {
			until, err := time.Parse("2006-01-02", r.Until)
			if err != nil {
				return nil, fmt.Errorf("load segments: segment %q: restriction until %q: %w", id, r.Until, err)
			}
			seg.Restriction = &domain.RestrictionOverlay{
				Type:                 r.Type,
				Until:                until,
				Detour:               r.Detour,
				MaxWeightOverrideLbs: r.MaxWeightOverrideLbs,
			}
		}

		segments[id] = seg
	}

	return domain.NewSegmentTable(segments), nil
}
