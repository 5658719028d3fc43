package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"osow-feasibility-service/internal/adapters/portal"
	"osow-feasibility-service/internal/api/dto"
	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/ports"
	"osow-feasibility-service/internal/services"
)

func testRules() *domain.JurisdictionRuleTable {
	return domain.NewJurisdictionRuleTable(map[string]domain.JurisdictionRule{
		"TX": {
			MaxWidthNoPermitFt: 8.5, MaxHeightNoPermitFt: 14.0,
			MaxLengthNoPermitFt: 59.0, MaxWeightNoPermitLbs: 80000,
			SuperloadWeightLbs: 254300, SuperloadWidthFt: 20.0,
			EscortRequiredWidthFt: 14.0, LawEnforcementWidthFt: 16.0,
			AvgProcessingHours: 4, SingleTripCostBase: 60.00,
			PermitPortal: "TxDMV OSOW Online", AnnualPermitAvailable: true,
		},
		"LA": {
			MaxWidthNoPermitFt: 8.5, MaxHeightNoPermitFt: 13.5,
			MaxLengthNoPermitFt: 59.5, MaxWeightNoPermitLbs: 80000,
			SuperloadWeightLbs: 180000, SuperloadWidthFt: 16.0,
			EscortRequiredWidthFt: 12.0, LawEnforcementWidthFt: 14.0,
			AvgProcessingHours: 12, SingleTripCostBase: 75.00,
			PermitPortal: "LA DOTD Permits",
		},
	})
}

func testSegments() *domain.SegmentTable {
	return domain.NewSegmentTable(map[string]domain.SegmentInfrastructure{
		"I-10 E (TX)": {ClearanceFt: 16.0, WeightLimitLbs: 200000, WidthLimitFt: 18.0},
		"I-20 W (LA)": {
			ClearanceFt: 15.5, WeightLimitLbs: 160000, WidthLimitFt: 15.0,
			Restriction: &domain.RestrictionOverlay{
				Type:                 "WEIGHT_RESTRICTION",
				Until:                time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
				MaxWeightOverrideLbs: 120000,
			},
		},
	})
}

type memoryVehicleRepo struct {
	profiles map[string]*domain.VehicleProfile
}

func (r *memoryVehicleRepo) key(carrierID, unitNumber string) string {
	return carrierID + "/" + unitNumber
}

func (r *memoryVehicleRepo) Lookup(_ context.Context, carrierID, unitNumber string) (*domain.VehicleProfile, error) {
	p, ok := r.profiles[r.key(carrierID, unitNumber)]
	if !ok {
		return nil, ports.ErrProfileNotFound
	}
	return p, nil
}

func (r *memoryVehicleRepo) ListFleet(_ context.Context, carrierID string) ([]*domain.VehicleProfile, error) {
	out := make([]*domain.VehicleProfile, 0)
	for _, p := range r.profiles {
		if p.CarrierID == carrierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryVehicleRepo) RecordUse(_ context.Context, carrierID, unitNumber string) error {
	p, ok := r.profiles[r.key(carrierID, unitNumber)]
	if !ok {
		return ports.ErrProfileNotFound
	}
	p.PermitCount++
	return nil
}

func testVehicleRepo() *memoryVehicleRepo {
	return &memoryVehicleRepo{profiles: map[string]*domain.VehicleProfile{
		"ELITE_HEAVY_77/TRK-101": {
			CarrierID: "ELITE_HEAVY_77", UnitNumber: "TRK-101",
			VehicleType: "9-Axle Lowboy",
			Dimensions: domain.VehicleDimensions{
				HeightFt: 12.8, WidthFt: 8.5, LengthFt: 53.0, EmptyWeightLbs: 42000,
			},
			CreatedAt: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
}

func newTestAssessmentHandler() *AssessmentHandler {
	reg := services.NewRegulatoryEngine(testRules())
	routing := services.NewRoutingCore(testSegments())
	return &AssessmentHandler{Engine: services.NewFeasibilityEngine(reg, routing)}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAssessEndpoint(t *testing.T) {
	h := newTestAssessmentHandler()

	body := `{
		"shipper": "Acme Turbines",
		"origin": "Houston, TX",
		"destination": "Baton Rouge, LA",
		"regions_crossed": ["TX", "LA"],
		"dimensions": {"height_ft": 14.2, "width_ft": 12.0, "length_ft": 85.0, "weight_lbs": 150000},
		"candidate_routes": [{"name": "primary", "segments": ["I-10 E (TX)"]}]
	}`

	rr := postJSON(t, h.Assess, "/assessments", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res dto.AssessmentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.ReportID == "" {
		t.Error("report_id missing")
	}
	if res.Classifications["TX"].PermitType != "STANDARD" {
		t.Errorf("TX classification = %s, want STANDARD", res.Classifications["TX"].PermitType)
	}
	if res.RecommendedRoute != "primary" {
		t.Errorf("recommended route = %q", res.RecommendedRoute)
	}
	if res.Cached {
		t.Error("fresh assessment must not be marked cached")
	}
}

func TestAssessEndpointRejectsBadInput(t *testing.T) {
	h := newTestAssessmentHandler()

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"unknown field", `{"bogus": 1}`},
		{"no regions", `{"dimensions": {"height_ft": 1, "width_ft": 1, "length_ft": 1, "weight_lbs": 1}}`},
		{"zero dimensions", `{"regions_crossed": ["TX"], "dimensions": {"height_ft": 0, "width_ft": 1, "length_ft": 1, "weight_lbs": 1}}`},
		{"two objects", `{"regions_crossed": ["TX"], "dimensions": {"height_ft": 1, "width_ft": 1, "length_ft": 1, "weight_lbs": 1}}{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postJSON(t, h.Assess, "/assessments", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestQuoteEndpointMissingProfile(t *testing.T) {
	reg := services.NewRegulatoryEngine(testRules())
	routing := services.NewRoutingCore(testSegments())
	h := &QuoteHandler{Engine: services.NewQuotingEngine(reg, routing, testVehicleRepo())}

	body := `{
		"carrier_id": "ELITE_HEAVY_77",
		"unit_number": "TRK-404",
		"load_weight_lbs": 100000,
		"regions_crossed": ["TX"]
	}`

	rr := postJSON(t, h.Quote, "/quotes", body)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	reg := services.NewRegulatoryEngine(testRules())
	routing := services.NewRoutingCore(testSegments())
	h := &QuoteHandler{Engine: services.NewQuotingEngine(reg, routing, testVehicleRepo())}

	body := `{
		"carrier_id": "ELITE_HEAVY_77",
		"unit_number": "TRK-101",
		"load_weight_lbs": 140000,
		"origin": "Houston, TX",
		"destination": "Baton Rouge, LA",
		"regions_crossed": ["TX", "LA"],
		"candidate_routes": [{"name": "primary", "segments": ["I-10 E (TX)"]}]
	}`

	rr := postJSON(t, h.Quote, "/quotes", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res dto.QuoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Dimensions.WeightLbs != 182000 {
		t.Errorf("weight = %d, want empty weight plus cargo", res.Dimensions.WeightLbs)
	}
	if res.Classifications["LA"].PermitType != "SUPERLOAD" {
		t.Errorf("LA classification = %s, want SUPERLOAD", res.Classifications["LA"].PermitType)
	}
	if !strings.HasPrefix(res.QuoteID, "Q-ELITE_HEAVY_77-") {
		t.Errorf("quote_id = %q", res.QuoteID)
	}
}

func TestListFleetEndpoint(t *testing.T) {
	h := &VehicleHandler{Repo: testVehicleRepo()}

	req := httptest.NewRequest(http.MethodGet, "/vehicles?carrier_id=ELITE_HEAVY_77", nil)
	rr := httptest.NewRecorder()
	h.ListFleet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var res dto.ListVehiclesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Vehicles) != 1 || res.Vehicles[0].UnitNumber != "TRK-101" {
		t.Errorf("fleet = %+v", res.Vehicles)
	}

	missing := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	rr = httptest.NewRecorder()
	h.ListFleet(rr, missing)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status without carrier_id = %d, want 400", rr.Code)
	}
}

func TestCheckRenewalsEndpoint(t *testing.T) {
	h := &RenewalHandler{
		Engine: services.NewRegulatoryEngine(testRules()),
		Now:    func() time.Time { return time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC) },
	}

	body := `{
		"permits": [
			{"permit_id": "TX-001", "region": "TX", "expiration": "2026-02-14"},
			{"permit_id": "LA-002", "region": "LA", "expiration": "2026-03-05"},
			{"permit_id": "GA-003", "region": "GA", "expiration": "2026-08-01"}
		]
	}`

	rr := postJSON(t, h.CheckRenewals, "/renewals", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res dto.RenewalCheckResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(res.Alerts))
	}
	if res.Alerts[0].Urgency != "CRITICAL" || res.Alerts[0].DaysRemaining != 4 {
		t.Errorf("first alert = %+v", res.Alerts[0])
	}
	if res.Alerts[1].Urgency != "WARNING" {
		t.Errorf("second alert = %+v", res.Alerts[1])
	}
}

func TestSubmitPermitEndpoint(t *testing.T) {
	h := &PermitHandler{
		Engine:    services.NewRegulatoryEngine(testRules()),
		Submitter: portal.NewMockPermitSubmitter(),
	}

	body := `{
		"carrier_id": "ELITE_HEAVY_77",
		"region": "TX",
		"dimensions": {"height_ft": 14.2, "width_ft": 12.0, "length_ft": 85.0, "weight_lbs": 150000}
	}`

	rr := postJSON(t, h.Submit, "/permits/submissions", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res dto.PermitSubmissionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Submitted || res.PermitType != "STANDARD" {
		t.Errorf("response = %+v", res)
	}
	if res.ConfirmationID == "" || res.Status != "RECEIVED" {
		t.Errorf("portal outcome = %+v", res)
	}
}

func TestSubmitPermitEndpointWithinLimits(t *testing.T) {
	h := &PermitHandler{
		Engine:    services.NewRegulatoryEngine(testRules()),
		Submitter: portal.NewMockPermitSubmitter(),
	}

	body := `{
		"region": "TX",
		"dimensions": {"height_ft": 13.0, "width_ft": 8.0, "length_ft": 48.0, "weight_lbs": 60000}
	}`

	rr := postJSON(t, h.Submit, "/permits/submissions", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var res dto.PermitSubmissionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Submitted {
		t.Error("no submission expected for a legal load")
	}
	if res.PermitType != "NONE" {
		t.Errorf("permit type = %s, want NONE", res.PermitType)
	}
}

func TestSubmitPermitEndpointUnknownRegion(t *testing.T) {
	h := &PermitHandler{
		Engine:    services.NewRegulatoryEngine(testRules()),
		Submitter: portal.NewMockPermitSubmitter(),
	}

	body := `{
		"region": "ZZ",
		"dimensions": {"height_ft": 14.2, "width_ft": 12.0, "length_ft": 85.0, "weight_lbs": 150000}
	}`

	rr := postJSON(t, h.Submit, "/permits/submissions", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
