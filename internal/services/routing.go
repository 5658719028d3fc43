package services

import (
	"fmt"
	"math"
	"slices"

	"osow-feasibility-service/internal/domain"
)

// Per-segment risk contributions. Failing checks contribute full risk; tight
// but passing margins contribute partial risk. Contributions are summed, not
// short-circuited, so one segment can carry several simultaneous warnings.
const (
	segmentFailRisk    = 1.0
	heightWarnRisk     = 0.4
	widthWarnRisk      = 0.3
	restrictionRisk    = 0.6
	unknownSegmentRisk = 0.5

	heightWarnMarginFt = 1.0
	widthWarnMarginFt  = 2.0
)

// RoutingCore scores candidate routes segment-by-segment against
// infrastructure limits and active restriction overlays.
type RoutingCore struct {
	segments *domain.SegmentTable
}

func NewRoutingCore(segments *domain.SegmentTable) *RoutingCore {
	return &RoutingCore{segments: segments}
}

// EvaluateSegment checks one load against one segment's limits.
//
// A segment missing from the table is never rejected outright: it yields a
// fixed moderate risk and an advisory issue, favoring conservative completion
// over blocking the whole route on missing data.
func (c *RoutingCore) EvaluateSegment(segmentID string, dims domain.LoadDimensions) domain.SegmentEvaluation {
	seg, ok := c.segments.Segment(segmentID)
	if !ok {
		return domain.SegmentEvaluation{
			SegmentID: segmentID,
			Passable:  true,
			Issues: []string{
				fmt.Sprintf("Segment %q not in infrastructure table - manual verification recommended", segmentID),
			},
			Risk: unknownSegmentRisk,
		}
	}

	issues := []string{}
	risk := 0.0

	marginH := seg.ClearanceFt - dims.HeightFt
	if marginH < 0 {
		issues = append(issues, fmt.Sprintf("HEIGHT FAIL: load %.1fft vs clearance %.1fft", dims.HeightFt, seg.ClearanceFt))
		risk += segmentFailRisk
	} else if marginH < heightWarnMarginFt {
		issues = append(issues, fmt.Sprintf("HEIGHT WARNING: only %.1fft clearance margin", marginH))
		risk += heightWarnRisk
	}

	marginW := seg.WidthLimitFt - dims.WidthFt
	if marginW < 0 {
		issues = append(issues, fmt.Sprintf("WIDTH FAIL: load %.1fft vs width limit %.1fft", dims.WidthFt, seg.WidthLimitFt))
		risk += segmentFailRisk
	} else if marginW < widthWarnMarginFt {
		issues = append(issues, fmt.Sprintf("WIDTH WARNING: only %.1fft margin", marginW))
		risk += widthWarnRisk
	}

	if dims.WeightLbs > seg.WeightLimitLbs {
		issues = append(issues, fmt.Sprintf("WEIGHT FAIL: load %dlbs vs limit %dlbs", dims.WeightLbs, seg.WeightLimitLbs))
		risk += segmentFailRisk
	}

	// An active overlay always contributes, independent of the margin checks.
	if r := seg.Restriction; r != nil {
		issue := fmt.Sprintf("ACTIVE RESTRICTION: %s until %s", r.Type, r.Until.Format("2006-01-02"))
		if r.MaxWeightOverrideLbs > 0 {
			issue += fmt.Sprintf(" (weight limit reduced to %dlbs)", r.MaxWeightOverrideLbs)
		}
		issues = append(issues, issue)
		if r.Detour != "" {
			issues = append(issues, fmt.Sprintf("suggested detour: %s", r.Detour))
		}
		risk += restrictionRisk
	}

	return domain.SegmentEvaluation{
		SegmentID: segmentID,
		Passable:  risk < 1.0,
		Issues:    issues,
		Risk:      math.Min(risk, 1.0),
	}
}

// ScoreRoute evaluates each segment in order. A single failing segment vetoes
// the whole route; average risk is a straight arithmetic mean over segments.
func (c *RoutingCore) ScoreRoute(name string, segmentIDs []string, dims domain.LoadDimensions) domain.RouteScore {
	evals := make([]domain.SegmentEvaluation, 0, len(segmentIDs))
	totalRisk := 0.0
	viable := true

	for _, id := range segmentIDs {
		ev := c.EvaluateSegment(id, dims)
		evals = append(evals, ev)
		totalRisk += ev.Risk
		if !ev.Passable {
			viable = false
		}
	}

	n := len(segmentIDs)
	if n == 0 {
		n = 1
	}

	return domain.RouteScore{
		RouteName: name,
		Viable:    viable,
		AvgRisk:   round3(totalRisk / float64(n)),
		Segments:  evals,
	}
}

// FindBestRoute scores every candidate and sorts viable routes first, then by
// ascending average risk. The head of the result is the recommended route.
// Empty candidates return an empty slice, not an error.
func (c *RoutingCore) FindBestRoute(candidates []domain.CandidateRoute, dims domain.LoadDimensions) []domain.RouteScore {
	scored := make([]domain.RouteScore, 0, len(candidates))
	for _, cand := range candidates {
		scored = append(scored, c.ScoreRoute(cand.Name, cand.Segments, dims))
	}

	// Stable sort keeps the original input order as the tie-break.
	slices.SortStableFunc(scored, func(a, b domain.RouteScore) int {
		if a.Viable != b.Viable {
			if a.Viable {
				return -1
			}
			return 1
		}
		if a.AvgRisk < b.AvgRisk {
			return -1
		}
		if a.AvgRisk > b.AvgRisk {
			return 1
		}
		return 0
	})

	return scored
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
