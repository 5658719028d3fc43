package services

import (
	"fmt"
	"time"

	"osow-feasibility-service/internal/domain"
)

// Superload complexity is modeled as a multiplier on the region's standard
// base values, not a separate table.
const (
	superloadHoursFactor = 3
	superloadCostFactor  = 5
)

// Renewal alert windows in days.
const (
	renewalCriticalDays = 7
	renewalWarningDays  = 30
)

// RegulatoryEngine classifies loads against per-jurisdiction legal limits
// and derives permit requirements.
type RegulatoryEngine struct {
	rules *domain.JurisdictionRuleTable
}

func NewRegulatoryEngine(rules *domain.JurisdictionRuleTable) *RegulatoryEngine {
	return &RegulatoryEngine{rules: rules}
}

// Classify determines whether a permit is required for dims in region, and of
// what type. A region absent from the rule table yields PermitUnknown together
// with an explanatory error; this is a non-fatal outcome callers must branch
// on explicitly rather than read as "no permit needed".
func (e *RegulatoryEngine) Classify(region string, dims domain.LoadDimensions) (domain.PermitClassification, error) {
	rule, ok := e.rules.Rule(region)
	if !ok {
		err := fmt.Errorf("classify: region %q not in regulatory database", region)
		return domain.PermitClassification{
			Region:       region,
			Type:         domain.PermitUnknown,
			Requirements: domain.PermitRequirements{Message: err.Error()},
		}, err
	}

	// A permit is required when any single axis exceeds the no-permit limit.
	needsPermit := dims.WidthFt > rule.MaxWidthNoPermitFt ||
		dims.HeightFt > rule.MaxHeightNoPermitFt ||
		dims.LengthFt > rule.MaxLengthNoPermitFt ||
		dims.WeightLbs > rule.MaxWeightNoPermitLbs

	if !needsPermit {
		return domain.PermitClassification{
			Region: region,
			Type:   domain.PermitNone,
			Requirements: domain.PermitRequirements{
				Message: "No permit required. Load is within legal limits.",
			},
		}, nil
	}

	// Escort and law-enforcement flags are independent width comparisons
	// against the region's own thresholds; the data drives their ordering.
	reqs := domain.PermitRequirements{
		EscortRequired:         dims.WidthFt >= rule.EscortRequiredWidthFt,
		LawEnforcementRequired: dims.WidthFt >= rule.LawEnforcementWidthFt,
		TravelRestrictions:     rule.TravelRestrictions,
		Portal:                 rule.PermitPortal,
		EstProcessingHours:     rule.AvgProcessingHours,
		BaseCost:               rule.SingleTripCostBase,
	}

	// Weight alone or width alone triggers superload classification.
	if dims.WeightLbs >= rule.SuperloadWeightLbs || dims.WidthFt >= rule.SuperloadWidthFt {
		reqs.EstProcessingHours = rule.AvgProcessingHours * superloadHoursFactor
		reqs.BaseCost = rule.SingleTripCostBase * superloadCostFactor
		return domain.PermitClassification{Region: region, Type: domain.PermitSuperload, Requirements: reqs}, nil
	}

	return domain.PermitClassification{Region: region, Type: domain.PermitStandard, Requirements: reqs}, nil
}

// CheckRenewalAlerts scans permits for upcoming expirations relative to today.
// CRITICAL within 7 days, WARNING within 30; pure function, no side effects.
func (e *RegulatoryEngine) CheckRenewalAlerts(permits []domain.Permit, today time.Time) []domain.RenewalAlert {
	alerts := make([]domain.RenewalAlert, 0)
	for _, p := range permits {
		days := int(p.Expiration.Sub(today).Hours() / 24)
		if days > renewalWarningDays {
			continue
		}

		urgency := domain.UrgencyWarning
		if days <= renewalCriticalDays {
			urgency = domain.UrgencyCritical
		}

		alerts = append(alerts, domain.RenewalAlert{
			PermitID:      p.PermitID,
			Region:        p.Region,
			DaysRemaining: days,
			Urgency:       urgency,
		})
	}
	return alerts
}
