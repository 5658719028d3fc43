package handlers

import (
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

type PermitHandler struct {
	Engine    *services.RegulatoryEngine
	Submitter ports.PermitSubmitter
}

// Submit classifies the load for one region and, when a permit is needed,
// files it with the region's portal.
func (h *PermitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PermitSubmissionRequest

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

	region := strings.TrimSpace(req.Region)
	if region == "" {
		writeError(w, r, http.StatusBadRequest, "region is required")
		return
	}
	d := req.Dimensions
	if d.HeightFt <= 0 || d.WidthFt <= 0 || d.LengthFt <= 0 || d.WeightLbs <= 0 {
		writeError(w, r, http.StatusBadRequest, "dimensions must all be positive")
		return
	}

	dims := toDimensions(req.Dimensions)

	cls, err := h.Engine.Classify(region, dims)
	if cls.Type == domain.PermitUnknown {
		log.Printf("permit submission for unknown region: region=%s err=%v", region, err)
		writeError(w, r, http.StatusBadRequest, "region not in regulatory database")
		return
	}

	if cls.Type == domain.PermitNone {
		writeJSON(w, r, http.StatusOK, dto.PermitSubmissionResponse{
			Region:     region,
			PermitType: string(cls.Type),
			Submitted:  false,
			Message:    cls.Requirements.Message,
		})
		return
	}

	outcome, err := h.Submitter.Submit(r.Context(), ports.PermitRequest{
		Region:     region,
		PermitType: cls.Type,
		Portal:     cls.Requirements.Portal,
		CarrierID:  strings.TrimSpace(req.CarrierID),
		Dimensions: dims,
	})
	if err != nil {
		log.Printf("permit submission failed: region=%s type=%s err=%v", region, cls.Type, err)
		writeError(w, r, http.StatusBadGateway, "permit portal submission failed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PermitSubmissionResponse{
		Region:         region,
		PermitType:     string(cls.Type),
		Submitted:      true,
		ConfirmationID: outcome.ConfirmationID,
		Status:         outcome.Status,
		EstimatedHours: outcome.EstimatedHours,
	})
}
