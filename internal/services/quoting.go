package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/ports"
)

// Pricing model. Platform fees are revenue; passthrough rows are estimated
// at cost and not marked up.
const (
	baseAutomationFee     = 49.00
	perRegionFee          = 35.00
	quoteSuperloadFee     = 150.00
	escortCoordinationFee = 75.00
	leCoordinationFee     = 125.00
	rushSurcharge         = 50.00
	routeAnalysisFee      = 25.00

	escortPassthroughPerRegion = 1200.00
	lePassthroughPerRegion     = 850.00
)

const quoteValidity = "24 hours"

// QuoteRequest is the carrier's minimal input: unit, load weight, lane.
// Everything else is auto-filled from the stored vehicle profile.
type QuoteRequest struct {
	CarrierID       string
	UnitNumber      string
	LoadWeightLbs   int
	Origin          string
	Destination     string
	RegionsCrossed  []string
	CandidateRoutes []domain.CandidateRoute
	Rush            bool
}

// QuotingEngine specializes the feasibility pipeline for a single
// carrier and vehicle, producing a priced, decision-bearing quote.
type QuotingEngine struct {
	reg      *RegulatoryEngine
	routing  *RoutingCore
	vehicles ports.VehicleProfileRepository
}

func NewQuotingEngine(reg *RegulatoryEngine, routing *RoutingCore, vehicles ports.VehicleProfileRepository) *QuotingEngine {
	return &QuotingEngine{reg: reg, routing: routing, vehicles: vehicles}
}

// GenerateQuote resolves the vehicle profile, derives the loaded envelope,
// runs the regulatory and routing pipeline, and prices the move.
// A missing profile aborts immediately: pricing without one is meaningless.
func (e *QuotingEngine) GenerateQuote(ctx context.Context, req QuoteRequest) (*domain.Quote, error) {
	profile, err := e.vehicles.Lookup(ctx, req.CarrierID, req.UnitNumber)
	if err != nil {
		return nil, fmt.Errorf("generate quote: lookup profile %s/%s: %w", req.CarrierID, req.UnitNumber, err)
	}

	// Auto-fill: loaded weight is empty weight plus the carrier-supplied cargo.
	dims := domain.LoadDimensions{
		HeightFt:  profile.Dimensions.HeightFt,
		WidthFt:   profile.Dimensions.WidthFt,
		LengthFt:  profile.Dimensions.LengthFt,
		WeightLbs: profile.Dimensions.EmptyWeightLbs + req.LoadWeightLbs,
	}

	classifications := make(map[string]domain.PermitClassification, len(req.RegionsCrossed))
	for _, region := range req.RegionsCrossed {
		// UNKNOWN regions are recorded in the quote, not fatal.
		cls, _ := e.reg.Classify(region, dims)
		classifications[region] = cls
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

	prob := quoteProbability(classifications, best)

	// A looser bar than the feasibility GO: a quote is advisory pending
	// manual confirmation.
	status := domain.QuoteStatusNeedsReview
	if prob >= 50 && anyViable {
		status = domain.QuoteStatusQuotable
	}

	recommended := "NONE"
	grade := "F"
	if best != nil {
		recommended = best.RouteName
		grade = domain.GradeRisk(best.AvgRisk)
	}

	quote := &domain.Quote{
		QuoteID:     fmt.Sprintf("Q-%s-%s", req.CarrierID, uuid.NewString()[:8]),
		GeneratedAt: time.Now().UTC(),

		CarrierID:   req.CarrierID,
		UnitNumber:  req.UnitNumber,
		VehicleType: profile.VehicleType,
		Origin:      req.Origin,
		Destination: req.Destination,
		Regions:     req.RegionsCrossed,
		Dimensions:  dims,

		Classifications:   classifications,
		Pricing:           buildPricing(classifications, len(req.RegionsCrossed), req.Rush),
		PermitProbability: prob,
		RiskGrade:         grade,
		RoutesEvaluated:   len(scored),
		ViableRoutes:      viableCount,
		RecommendedRoute:  recommended,
		Timeline:          estimateTimeline(classifications, req.RegionsCrossed, req.Rush),

		Status:   status,
		ValidFor: quoteValidity,
	}

	// Usage accounting is best-effort; a failed increment never blocks a quote.
	if err := e.vehicles.RecordUse(ctx, req.CarrierID, req.UnitNumber); err != nil {
		log.Printf("record profile use failed: carrier=%s unit=%s err=%v", req.CarrierID, req.UnitNumber, err)
	}

	return quote, nil
}

func buildPricing(classifications map[string]domain.PermitClassification, numRegions int, rush bool) domain.QuotePricing {
	p := domain.QuotePricing{
		PlatformFee:      baseAutomationFee,
		PerRegionFees:    perRegionFee * float64(numRegions),
		RouteAnalysisFee: routeAnalysisFee,
	}

	for _, cls := range classifications {
		if cls.Type == domain.PermitUnknown {
			continue
		}
		if cls.Type == domain.PermitSuperload {
			p.SuperloadSurcharge += quoteSuperloadFee
		}

		p.PermitFees += cls.Requirements.BaseCost
		if cls.Requirements.EscortRequired {
			p.EscortCoordinationFee += escortCoordinationFee
			p.EscortPassthrough += escortPassthroughPerRegion
		}
		if cls.Requirements.LawEnforcementRequired {
			p.LECoordinationFee += leCoordinationFee
			p.LEPassthrough += lePassthroughPerRegion
		}
	}

	if rush {
		p.RushFee = rushSurcharge
	}

	p.PlatformSubtotal = p.PlatformFee + p.PerRegionFees + p.RouteAnalysisFee +
		p.SuperloadSurcharge + p.EscortCoordinationFee + p.LECoordinationFee + p.RushFee
	p.PassthroughSubtotal = p.PermitFees + p.EscortPassthrough + p.LEPassthrough
	p.Total = p.PlatformSubtotal + p.PassthroughSubtotal

	return p
}

// quoteProbability deliberately uses a smaller deduction set than the
// feasibility formula: superload regions and a nonviable best route.
func quoteProbability(classifications map[string]domain.PermitClassification, best *domain.RouteScore) int {
	prob := baselineProbability

	for _, cls := range classifications {
		if cls.Type == domain.PermitSuperload {
			prob -= superloadProbPenalty
		}
	}
	if best != nil && !best.Viable {
		prob -= nonviableRoutePenalty
	}

	if prob > maxProbability {
		prob = maxProbability
	}
	if prob < minProbability {
		prob = minProbability
	}
	return prob
}

func estimateTimeline(classifications map[string]domain.PermitClassification, regions []string, rush bool) domain.QuoteTimeline {
	maxHours := 0
	bottleneck := "N/A"

	// Iterate in request order so ties resolve deterministically.
	for _, region := range regions {
		cls, ok := classifications[region]
		if !ok {
			continue
		}
		if h := cls.Requirements.EstProcessingHours; h > maxHours {
			maxHours = h
			bottleneck = region
		}
	}

	if rush {
		maxHours = maxHours / 2
		if maxHours < 2 {
			maxHours = 2
		}
	}

	return domain.QuoteTimeline{
		EstimatedHours:   maxHours,
		BottleneckRegion: bottleneck,
		RushAvailable:    maxHours > 4,
	}
}
