package domain

import "time"

// Platform revenue and passthrough cost subtotals for one quote.
// Platform fees are margin; passthrough costs (permit fees, escort and
// law-enforcement services) are estimated at cost and not marked up.
type QuotePricing struct {
	PlatformFee           float64
	PerRegionFees         float64
	RouteAnalysisFee      float64
	SuperloadSurcharge    float64
	EscortCoordinationFee float64
	LECoordinationFee     float64
	RushFee               float64
	PlatformSubtotal      float64

	PermitFees          float64
	EscortPassthrough   float64
	LEPassthrough       float64
	PassthroughSubtotal float64

	Total float64
}

type QuoteTimeline struct {
	EstimatedHours   int
	BottleneckRegion string
	RushAvailable    bool
}

type QuoteStatus string

const (
	QuoteStatusQuotable    QuoteStatus = "QUOTABLE"
	QuoteStatusNeedsReview QuoteStatus = "NEEDS REVIEW"
)

// A priced, decision-bearing quote for a single carrier and unit.
type Quote struct {
	QuoteID     string
	GeneratedAt time.Time

	CarrierID   string
	UnitNumber  string
	VehicleType string
	Origin      string
	Destination string
	Regions     []string
	Dimensions  LoadDimensions

	Classifications   map[string]PermitClassification
	Pricing           QuotePricing
	PermitProbability int
	RiskGrade         string
	RoutesEvaluated   int
	ViableRoutes      int
	RecommendedRoute  string
	Timeline          QuoteTimeline

	Status   QuoteStatus
	ValidFor string
}
