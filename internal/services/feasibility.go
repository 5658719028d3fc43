package services

import (
	"math"
	"time"

	"github.com/google/uuid"

	"osow-feasibility-service/internal/domain"
)

// Permit-probability model: additive penalties off a fixed baseline, clamped
// last. Penalties apply per qualifying region with no cap, so raw values may
// fall below the floor before clamping.
const (
	baselineProbability   = 85
	superloadProbPenalty  = 15
	unknownProbPenalty    = 10
	nonviableRoutePenalty = 20
	routeRiskProbWeight   = 15
	minProbability        = 5
	maxProbability        = 99
)

// Composite risk blend and regulatory complexity contributions.
const (
	routeRiskWeight     = 0.6
	regComplexityWeight = 0.4
	superloadComplexity = 0.3
	standardComplexity  = 0.1
)

// Cost-estimate line items. Escort and law-enforcement estimates are either
// fully applied across all regions or fully absent, never pro-rated.
const (
	escortEstimatePerRegion = 1700.00
	leEstimatePerRegion     = 850.00
	heavyFuelSurcharge      = 2500.00
	midFuelSurcharge        = 1500.00
	heavyFuelThresholdLbs   = 150000
	midFuelThresholdLbs     = 100000
	basePlatformFee         = 150.00
)

// FeasibilityEngine combines regulatory classification and route scoring
// into a single feasibility report and go/no-go decision.
type FeasibilityEngine struct {
	reg     *RegulatoryEngine
	routing *RoutingCore
}

func NewFeasibilityEngine(reg *RegulatoryEngine, routing *RoutingCore) *FeasibilityEngine {
	return &FeasibilityEngine{reg: reg, routing: routing}
}

// Assess runs the full decision pipeline for one load request.
// No failure escapes as an error: unknown regions and segments are
// represented in the report itself.
func (e *FeasibilityEngine) Assess(req domain.LoadRequest) *domain.FeasibilityReport {
	dims := req.Dimensions

	classifications := make(map[string]domain.PermitClassification, len(req.RegionsCrossed))
	totalPermitFees := 0.0
	escortNeeded := false
	leNeeded := false
	bottleneckRegion := ""
	bottleneckHours := 0

	for _, region := range req.RegionsCrossed {
		cls, err := e.reg.Classify(region, dims)
		classifications[region] = cls
		if err != nil {
			// One bad region code degrades the assessment instead of aborting it.
			continue
		}

		totalPermitFees += cls.Requirements.BaseCost
		if h := cls.Requirements.EstProcessingHours; h > bottleneckHours {
			bottleneckHours = h
			bottleneckRegion = region
		}
		if cls.Requirements.EscortRequired {
			escortNeeded = true
		}
		if cls.Requirements.LawEnforcementRequired {
			leNeeded = true
		}
	}

	scored := e.routing.FindBestRoute(req.CandidateRoutes, dims)

	var best *domain.RouteScore
	if len(scored) > 0 {
		best = &scored[0]
	}

	anyViable := false
	viableCount := 0
	for _, r := range scored {
		if r.Viable {
			anyViable = true
			viableCount++
		}
	}

	prob := permitProbability(classifications, best)
	risk := compositeRisk(scored, classifications)

	recommended := "NONE"
	if best != nil {
		recommended = best.RouteName
	}

	return &domain.FeasibilityReport{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),

		Shipper:       req.Shipper,
		Origin:        req.Origin,
		Destination:   req.Destination,
		EquipmentType: req.EquipmentType,
		Dimensions:    dims,

		Classifications:        classifications,
		RegionsAnalyzed:        len(req.RegionsCrossed),
		TotalPermitFees:        totalPermitFees,
		EscortRequired:         escortNeeded,
		LawEnforcementRequired: leNeeded,
		BottleneckRegion:       bottleneckRegion,
		BottleneckHours:        bottleneckHours,

		RoutesEvaluated:  len(scored),
		ViableRoutes:     viableCount,
		RecommendedRoute: recommended,
		BestRoute:        best,
		ScoredRoutes:     scored,

		PermitProbability: prob,
		RiskScore:         risk,
		RiskGrade:         domain.GradeRisk(risk),
		CostEstimate:      costEstimate(totalPermitFees, escortNeeded, leNeeded, len(req.RegionsCrossed), dims),
		Decision:          makeDecision(prob, risk, anyViable),
	}
}

func permitProbability(classifications map[string]domain.PermitClassification, best *domain.RouteScore) int {
	prob := baselineProbability

	for _, cls := range classifications {
		switch cls.Type {
		case domain.PermitSuperload:
			prob -= superloadProbPenalty
		case domain.PermitUnknown:
			prob -= unknownProbPenalty
		}
	}

	if best != nil && !best.Viable {
		prob -= nonviableRoutePenalty
	}
	if best != nil {
		prob -= int(best.AvgRisk * routeRiskProbWeight)
	}

	if prob > maxProbability {
		prob = maxProbability
	}
	if prob < minProbability {
		prob = minProbability
	}
	return prob
}

func compositeRisk(scored []domain.RouteScore, classifications map[string]domain.PermitClassification) float64 {
	routeRisk := unknownSegmentRisk
	if len(scored) > 0 {
		routeRisk = scored[0].AvgRisk
	}

	complexity := 0.0
	for _, cls := range classifications {
		switch cls.Type {
		case domain.PermitSuperload:
			complexity += superloadComplexity
		case domain.PermitStandard:
			complexity += standardComplexity
		}
	}

	n := len(classifications)
	if n == 0 {
		n = 1
	}
	complexity = math.Min(complexity/float64(n), 1.0)

	return round3(routeRisk*routeRiskWeight + complexity*regComplexityWeight)
}

func costEstimate(permitFees float64, escorts, lawEnforcement bool, numRegions int, dims domain.LoadDimensions) float64 {
	cost := permitFees

	if escorts {
		cost += escortEstimatePerRegion * float64(numRegions)
	}
	if lawEnforcement {
		cost += leEstimatePerRegion * float64(numRegions)
	}

	if dims.WeightLbs > heavyFuelThresholdLbs {
		cost += heavyFuelSurcharge
	} else if dims.WeightLbs > midFuelThresholdLbs {
		cost += midFuelSurcharge
	}

	return cost + basePlatformFee
}

// makeDecision applies the verdict rules in order; the first match wins.
func makeDecision(prob int, risk float64, anyViable bool) domain.Decision {
	switch {
	case prob >= 75 && risk <= 0.4 && anyViable:
		return domain.Decision{Verdict: domain.VerdictGo, Summary: "High confidence. Accept freight."}
	case prob >= 50 && risk <= 0.6:
		return domain.Decision{Verdict: domain.VerdictConditional, Summary: "Manual review recommended before acceptance."}
	default:
		return domain.Decision{Verdict: domain.VerdictNoGo, Summary: "Risk too high. Consider alternative dimensions or routing."}
	}
}
