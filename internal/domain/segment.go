package domain

import (
	"strings"
	"time"
)

// Time-bounded active constraint layered onto a segment's static limits
// (construction zone, temporary weight restriction).
type RestrictionOverlay struct {
	Type   string
	Until  time.Time
	Detour string
	// MaxWeightOverrideLbs is the reduced limit for weight restrictions; 0 means none.
	MaxWeightOverrideLbs int
}

// Static infrastructure limits for one named route segment.
type SegmentInfrastructure struct {
	ClearanceFt    float64
	WeightLimitLbs int
	WidthLimitFt   float64
	Restriction    *RestrictionOverlay
}

// Read-only lookup table of segment infrastructure keyed by segment identifier.
type SegmentTable struct {
	segments map[string]SegmentInfrastructure
}

func NewSegmentTable(segments map[string]SegmentInfrastructure) *SegmentTable {
	m := make(map[string]SegmentInfrastructure, len(segments))
	for id, s := range segments {
		m[strings.TrimSpace(id)] = s
	}
	return &SegmentTable{segments: m}
}

func (t *SegmentTable) Segment(id string) (SegmentInfrastructure, bool) {
	s, ok := t.segments[strings.TrimSpace(id)]
	return s, ok
}

// Result of checking one load against one segment.
type SegmentEvaluation struct {
	SegmentID string
	Passable  bool
	Issues    []string
	Risk      float64
}

// A named candidate route: an ordered list of segment identifiers.
// Candidates are a slice rather than a map so the input order is defined;
// the best-route sort relies on it as a stable tie-break.
type CandidateRoute struct {
	Name     string
	Segments []string
}

// Scored result for one candidate route.
// AvgRisk is the arithmetic mean of per-segment risk contributions.
type RouteScore struct {
	RouteName string
	Viable    bool
	AvgRisk   float64
	Segments  []SegmentEvaluation
}
