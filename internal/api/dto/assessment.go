package dto

import "time"

type DimensionsRequest struct {
	HeightFt  float64 `json:"height_ft"`
	WidthFt   float64 `json:"width_ft"`
	LengthFt  float64 `json:"length_ft"`
	WeightLbs int     `json:"weight_lbs"`
}

type CandidateRouteRequest struct {
	Name     string   `json:"name"`
	Segments []string `json:"segments"`
}

type AssessmentRequest struct {
	Shipper         string                  `json:"shipper"`
	Origin          string                  `json:"origin"`
	Destination     string                  `json:"destination"`
	RegionsCrossed  []string                `json:"regions_crossed"`
	Dimensions      DimensionsRequest       `json:"dimensions"`
	CandidateRoutes []CandidateRouteRequest `json:"candidate_routes"`
	EquipmentType   string                  `json:"equipment_type"`
}

type ClassificationResponse struct {
	PermitType             string   `json:"permit_type"`
	EscortRequired         bool     `json:"escort_required"`
	LawEnforcementRequired bool     `json:"law_enforcement_required"`
	TravelRestrictions     []string `json:"travel_restrictions,omitempty"`
	Portal                 string   `json:"portal,omitempty"`
	EstProcessingHours     int      `json:"est_processing_hours"`
	BaseCost               float64  `json:"base_cost"`
	Message                string   `json:"message,omitempty"`
}

type SegmentEvaluationResponse struct {
	SegmentID string   `json:"segment_id"`
	Passable  bool     `json:"passable"`
	Risk      float64  `json:"risk"`
	Issues    []string `json:"issues,omitempty"`
}

type RouteScoreResponse struct {
	RouteName string                      `json:"route_name"`
	Viable    bool                        `json:"viable"`
	AvgRisk   float64                     `json:"avg_risk"`
	Segments  []SegmentEvaluationResponse `json:"segments"`
}

type AssessmentResponse struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Cached      bool      `json:"cached"`

	Shipper       string            `json:"shipper"`
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	EquipmentType string            `json:"equipment_type,omitempty"`
	Dimensions    DimensionsRequest `json:"dimensions"`

	Classifications        map[string]ClassificationResponse `json:"classifications"`
	RegionsAnalyzed        int                               `json:"regions_analyzed"`
	TotalPermitFees        float64                           `json:"total_permit_fees"`
	EscortRequired         bool                              `json:"escort_required"`
	LawEnforcementRequired bool                              `json:"law_enforcement_required"`
	BottleneckRegion       string                            `json:"bottleneck_region,omitempty"`
	BottleneckHours        int                               `json:"bottleneck_hours"`

	RoutesEvaluated  int                  `json:"routes_evaluated"`
	ViableRoutes     int                  `json:"viable_routes"`
	RecommendedRoute string               `json:"recommended_route"`
	ScoredRoutes     []RouteScoreResponse `json:"scored_routes"`

	PermitProbability int     `json:"permit_probability"`
	RiskScore         float64 `json:"risk_score"`
	RiskGrade         string  `json:"risk_grade"`
	CostEstimate      float64 `json:"cost_estimate"`
	Verdict           string  `json:"verdict"`
	Summary           string  `json:"summary"`
}
