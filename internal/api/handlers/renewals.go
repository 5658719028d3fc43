package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"osow-feasibility-service/internal/api/dto"
	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/services"
)

type RenewalHandler struct {
	Engine *services.RegulatoryEngine

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// CheckRenewals reports which of the submitted permits need renewal attention.
func (h *RenewalHandler) CheckRenewals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RenewalCheckRequest

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

	if len(req.Permits) == 0 {
		writeError(w, r, http.StatusBadRequest, "permits is required")
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if h.Now != nil {
		today = h.Now().UTC().Truncate(24 * time.Hour)
	}
	if req.AsOf != "" {
		t, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
			return
		}
		today = t
	}

	permits := make([]domain.Permit, 0, len(req.Permits))
	for i, p := range req.Permits {
		exp, err := time.Parse("2006-01-02", p.Expiration)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("permits[%d].expiration must be YYYY-MM-DD", i))
			return
		}
		permits = append(permits, domain.Permit{
			PermitID:   p.PermitID,
			Region:     p.Region,
			Expiration: exp,
		})
	}

	alerts := h.Engine.CheckRenewalAlerts(permits, today)

	res := dto.RenewalCheckResponse{Alerts: make([]dto.RenewalAlertResponse, 0, len(alerts))}
	for _, a := range alerts {
		res.Alerts = append(res.Alerts, dto.RenewalAlertResponse{
			PermitID:      a.PermitID,
			Region:        a.Region,
			DaysRemaining: a.DaysRemaining,
			Urgency:       string(a.Urgency),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
