package domain

import "time"

// A carrier's request for a feasibility assessment.
type LoadRequest struct {
	Shipper         string
	Origin          string
	Destination     string
	RegionsCrossed  []string
	Dimensions      LoadDimensions
	CandidateRoutes []CandidateRoute
	EquipmentType   string
}

type Verdict string

const (
	VerdictGo          Verdict = "GO"
	VerdictConditional Verdict = "CONDITIONAL"
	VerdictNoGo        Verdict = "NO-GO"
)

// Decision is the go/no-go outcome with its human-readable summary.
type Decision struct {
	Verdict Verdict
	Summary string
}

// The aggregated decision artifact combining regulatory and routing analysis.
// Produced fresh per assessment; not mutated after creation.
type FeasibilityReport struct {
	ReportID    string
	GeneratedAt time.Time

	Shipper       string
	Origin        string
	Destination   string
	EquipmentType string
	Dimensions    LoadDimensions

	Classifications        map[string]PermitClassification
	RegionsAnalyzed        int
	TotalPermitFees        float64
	EscortRequired         bool
	LawEnforcementRequired bool
	BottleneckRegion       string
	BottleneckHours        int

	RoutesEvaluated  int
	ViableRoutes     int
	RecommendedRoute string
	BestRoute        *RouteScore
	ScoredRoutes     []RouteScore

	PermitProbability int
	RiskScore         float64
	RiskGrade         string
	CostEstimate      float64
	Decision          Decision
}

// GradeRisk maps a composite risk score to its letter grade.
// Thresholds are closed and ordered with inclusive upper bounds.
func GradeRisk(risk float64) string {
	switch {
	case risk <= 0.2:
		return "A (LOW RISK)"
	case risk <= 0.4:
		return "B (MODERATE)"
	case risk <= 0.6:
		return "C (ELEVATED)"
	case risk <= 0.8:
		return "D (HIGH RISK)"
	default:
		return "F (CRITICAL)"
	}
}
