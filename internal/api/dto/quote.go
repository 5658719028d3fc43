package dto

import "time"

type QuoteRequest struct {
	CarrierID       string                  `json:"carrier_id"`
	UnitNumber      string                  `json:"unit_number"`
	LoadWeightLbs   int                     `json:"load_weight_lbs"`
	Origin          string                  `json:"origin"`
	Destination     string                  `json:"destination"`
	RegionsCrossed  []string                `json:"regions_crossed"`
	CandidateRoutes []CandidateRouteRequest `json:"candidate_routes"`
	Rush            bool                    `json:"rush"`
}

type QuotePricingResponse struct {
	PlatformFee           float64 `json:"platform_fee"`
	PerRegionFees         float64 `json:"per_region_fees"`
	RouteAnalysisFee      float64 `json:"route_analysis_fee"`
	SuperloadSurcharge    float64 `json:"superload_surcharge,omitempty"`
	EscortCoordinationFee float64 `json:"escort_coordination_fee,omitempty"`
	LECoordinationFee     float64 `json:"le_coordination_fee,omitempty"`
	RushFee               float64 `json:"rush_fee,omitempty"`
	PlatformSubtotal      float64 `json:"platform_subtotal"`

	PermitFees          float64 `json:"permit_fees"`
	EscortPassthrough   float64 `json:"escort_passthrough,omitempty"`
	LEPassthrough       float64 `json:"le_passthrough,omitempty"`
	PassthroughSubtotal float64 `json:"passthrough_subtotal"`

	Total float64 `json:"total"`
}

type QuoteTimelineResponse struct {
	EstimatedHours   int    `json:"estimated_hours"`
	BottleneckRegion string `json:"bottleneck_region"`
	RushAvailable    bool   `json:"rush_available"`
}

type QuoteResponse struct {
	QuoteID     string    `json:"quote_id"`
	GeneratedAt time.Time `json:"generated_at"`

	CarrierID   string            `json:"carrier_id"`
	UnitNumber  string            `json:"unit_number"`
	VehicleType string            `json:"vehicle_type"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Regions     []string          `json:"regions"`
	Dimensions  DimensionsRequest `json:"dimensions"`

	Classifications   map[string]ClassificationResponse `json:"classifications"`
	Pricing           QuotePricingResponse              `json:"pricing"`
	PermitProbability int                               `json:"permit_probability"`
	RiskGrade         string                            `json:"risk_grade"`
	RoutesEvaluated   int                               `json:"routes_evaluated"`
	ViableRoutes      int                               `json:"viable_routes"`
	RecommendedRoute  string                            `json:"recommended_route"`
	Timeline          QuoteTimelineResponse             `json:"timeline"`

	Status   string `json:"status"`
	ValidFor string `json:"valid_for"`
}
