package handlers

import (
	"osow-feasibility-service/internal/api/dto"
	"osow-feasibility-service/internal/domain"
)

func toDimensions(d dto.DimensionsRequest) domain.LoadDimensions {
	return domain.LoadDimensions{
		HeightFt:  d.HeightFt,
		WidthFt:   d.WidthFt,
		LengthFt:  d.LengthFt,
		WeightLbs: d.WeightLbs,
	}
}

func fromDimensions(d domain.LoadDimensions) dto.DimensionsRequest {
	return dto.DimensionsRequest{
		HeightFt:  d.HeightFt,
		WidthFt:   d.WidthFt,
		LengthFt:  d.LengthFt,
		WeightLbs: d.WeightLbs,
	}
}

func toCandidateRoutes(routes []dto.CandidateRouteRequest) []domain.CandidateRoute {
	out := make([]domain.CandidateRoute, 0, len(routes))
	for _, r := range routes {
		out = append(out, domain.CandidateRoute{Name: r.Name, Segments: r.Segments})
	}
	return out
}

func fromClassifications(m map[string]domain.PermitClassification) map[string]dto.ClassificationResponse {
	out := make(map[string]dto.ClassificationResponse, len(m))
	for region, cls := range m {
		out[region] = dto.ClassificationResponse{
			PermitType:             string(cls.Type),
			EscortRequired:         cls.Requirements.EscortRequired,
			LawEnforcementRequired: cls.Requirements.LawEnforcementRequired,
			TravelRestrictions:     cls.Requirements.TravelRestrictions,
			Portal:                 cls.Requirements.Portal,
			EstProcessingHours:     cls.Requirements.EstProcessingHours,
			BaseCost:               cls.Requirements.BaseCost,
			Message:                cls.Requirements.Message,
		}
	}
	return out
}

func fromRouteScores(scores []domain.RouteScore) []dto.RouteScoreResponse {
	out := make([]dto.RouteScoreResponse, 0, len(scores))
	for _, s := range scores {
		segs := make([]dto.SegmentEvaluationResponse, 0, len(s.Segments))
		for _, seg := range s.Segments {
			segs = append(segs, dto.SegmentEvaluationResponse{
				SegmentID: seg.SegmentID,
				Passable:  seg.Passable,
				Risk:      seg.Risk,
				Issues:    seg.Issues,
			})
		}
		out = append(out, dto.RouteScoreResponse{
			RouteName: s.RouteName,
			Viable:    s.Viable,
			AvgRisk:   s.AvgRisk,
			Segments:  segs,
		})
	}
	return out
}

func fromReport(report *domain.FeasibilityReport, cached bool) dto.AssessmentResponse {
	return dto.AssessmentResponse{
		ReportID:    report.ReportID,
		GeneratedAt: report.GeneratedAt,
		Cached:      cached,

		Shipper:       report.Shipper,
		Origin:        report.Origin,
		Destination:   report.Destination,
		EquipmentType: report.EquipmentType,
		Dimensions:    fromDimensions(report.Dimensions),

		Classifications:        fromClassifications(report.Classifications),
		RegionsAnalyzed:        report.RegionsAnalyzed,
		TotalPermitFees:        report.TotalPermitFees,
		EscortRequired:         report.EscortRequired,
		LawEnforcementRequired: report.LawEnforcementRequired,
		BottleneckRegion:       report.BottleneckRegion,
		BottleneckHours:        report.BottleneckHours,

		RoutesEvaluated:  report.RoutesEvaluated,
		ViableRoutes:     report.ViableRoutes,
		RecommendedRoute: report.RecommendedRoute,
		ScoredRoutes:     fromRouteScores(report.ScoredRoutes),

		PermitProbability: report.PermitProbability,
		RiskScore:         report.RiskScore,
		RiskGrade:         report.RiskGrade,
		CostEstimate:      report.CostEstimate,
		Verdict:           string(report.Decision.Verdict),
		Summary:           report.Decision.Summary,
	}
}

func fromQuote(q *domain.Quote) dto.QuoteResponse {
	p := q.Pricing
	return dto.QuoteResponse{
		QuoteID:     q.QuoteID,
		GeneratedAt: q.GeneratedAt,

		CarrierID:   q.CarrierID,
		UnitNumber:  q.UnitNumber,
		VehicleType: q.VehicleType,
		Origin:      q.Origin,
		Destination: q.Destination,
		Regions:     q.Regions,
		Dimensions:  fromDimensions(q.Dimensions),

		Classifications: fromClassifications(q.Classifications),
		Pricing: dto.QuotePricingResponse{
			PlatformFee:           p.PlatformFee,
			PerRegionFees:         p.PerRegionFees,
			RouteAnalysisFee:      p.RouteAnalysisFee,
			SuperloadSurcharge:    p.SuperloadSurcharge,
			EscortCoordinationFee: p.EscortCoordinationFee,
			LECoordinationFee:     p.LECoordinationFee,
			RushFee:               p.RushFee,
			PlatformSubtotal:      p.PlatformSubtotal,
			PermitFees:            p.PermitFees,
			EscortPassthrough:     p.EscortPassthrough,
			LEPassthrough:         p.LEPassthrough,
			PassthroughSubtotal:   p.PassthroughSubtotal,
			Total:                 p.Total,
		},
		PermitProbability: q.PermitProbability,
		RiskGrade:         q.RiskGrade,
		RoutesEvaluated:   q.RoutesEvaluated,
		ViableRoutes:      q.ViableRoutes,
		RecommendedRoute:  q.RecommendedRoute,
		Timeline: dto.QuoteTimelineResponse{
			EstimatedHours:   q.Timeline.EstimatedHours,
			BottleneckRegion: q.Timeline.BottleneckRegion,
			RushAvailable:    q.Timeline.RushAvailable,
		},

		Status:   string(q.Status),
		ValidFor: q.ValidFor,
	}
}

func fromProfile(p *domain.VehicleProfile) dto.VehicleProfileResponse {
	return dto.VehicleProfileResponse{
		CarrierID:   p.CarrierID,
		UnitNumber:  p.UnitNumber,
		VehicleType: p.VehicleType,
		Make:        p.Make,
		Year:        p.Year,
		VIN:         p.VIN,
		Plate:       p.Plate,
		PlateState:  p.PlateState,
		AxleConfig:  p.AxleConfig,

		HeightFt:       p.Dimensions.HeightFt,
		WidthFt:        p.Dimensions.WidthFt,
		LengthFt:       p.Dimensions.LengthFt,
		EmptyWeightLbs: p.Dimensions.EmptyWeightLbs,
		MaxPayloadLbs:  p.MaxPayloadLbs,

		InsuranceExpiry:    p.InsuranceExpiry,
		RegistrationExpiry: p.RegistrationExpiry,

		CreatedAt:   p.CreatedAt,
		LastUsed:    p.LastUsed,
		PermitCount: p.PermitCount,
	}
}
