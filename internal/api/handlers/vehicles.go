package handlers

import (
	"log"
	"net/http"
	"strings"

	"osow-feasibility-service/internal/api/dto"
	"osow-feasibility-service/internal/ports"
)

type VehicleHandler struct {
	Repo ports.VehicleProfileRepository
}

// ListFleet returns every registered profile for a carrier.
func (h *VehicleHandler) ListFleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	carrierID := strings.TrimSpace(r.URL.Query().Get("carrier_id"))
	if carrierID == "" {
		writeError(w, r, http.StatusBadRequest, "carrier_id query parameter is required")
		return
	}

	fleet, err := h.Repo.ListFleet(r.Context(), carrierID)
	if err != nil {
		log.Printf("list fleet failed: carrier=%s err=%v", carrierID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		CarrierID: carrierID,
		Vehicles:  make([]dto.VehicleProfileResponse, 0, len(fleet)),
	}
	for _, p := range fleet {
		res.Vehicles = append(res.Vehicles, fromProfile(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}
