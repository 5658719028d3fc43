package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"osow-feasibility-service/internal/api/dto"
	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/ports"
	"osow-feasibility-service/internal/services"
)

type AssessmentHandler struct {
	Engine *services.FeasibilityEngine
	Cache  ports.AssessmentCache // optional
	Store  ports.DecisionStore   // optional
}

// Assess runs the full feasibility pipeline for one load request.
// Cache and archive failures degrade to a fresh computation; only malformed
// input produces an error response.
func (h *AssessmentHandler) Assess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AssessmentRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.RegionsCrossed) == 0 {
		writeError(w, r, http.StatusBadRequest, "regions_crossed is required")
		return
	}
	d := req.Dimensions
	if d.HeightFt <= 0 || d.WidthFt <= 0 || d.LengthFt <= 0 || d.WeightLbs <= 0 {
		writeError(w, r, http.StatusBadRequest, "dimensions must all be positive")
		return
	}

	key := fingerprint(req)

	if h.Cache != nil {
		cached, err := h.Cache.Get(r.Context(), key)
		if err != nil {
			log.Printf("assessment cache get failed: key=%s err=%v", key, err)
		}
		if cached != nil {
			writeJSON(w, r, http.StatusOK, fromReport(cached, true))
			return
		}
	}

	report := h.Engine.Assess(domain.LoadRequest{
		Shipper:         strings.TrimSpace(req.Shipper),
		Origin:          strings.TrimSpace(req.Origin),
		Destination:     strings.TrimSpace(req.Destination),
		RegionsCrossed:  req.RegionsCrossed,
		Dimensions:      toDimensions(req.Dimensions),
		CandidateRoutes: toCandidateRoutes(req.CandidateRoutes),
		EquipmentType:   strings.TrimSpace(req.EquipmentType),
	})

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), key, report); err != nil {
			log.Printf("assessment cache put failed: key=%s err=%v", key, err)
		}
	}
	if h.Store != nil {
		if err := h.Store.SaveReport(r.Context(), report); err != nil {
			log.Printf("archive report failed: report_id=%s err=%v", report.ReportID, err)
		}
	}

	writeJSON(w, r, http.StatusOK, fromReport(report, false))
}

// fingerprint derives a stable cache key from the request payload.
// Struct field order is fixed, so identical requests hash identically.
func fingerprint(req dto.AssessmentRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
