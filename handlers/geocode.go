package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"streampick/services/geocode"
)

// geocoder resolves coordinates to an ISO country code.
type geocoder interface {
	CountryCode(ctx context.Context, latitude, longitude float64) (string, error)
}

var _ geocoder = (*geocode.Client)(nil)

// GeocodeHandler resolves the caller's coordinates to a watch region.
type GeocodeHandler struct {
	Geocoder geocoder
}

func NewGeocodeHandler(g geocoder) *GeocodeHandler {
	return &GeocodeHandler{Geocoder: g}
}

type geocodeRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type geocodeResponse struct {
	CountryCode string `json:"countryCode"`
}

// Resolve handles POST with {latitude, longitude}. Bounds are validated
// before any downstream call; the boundary values themselves are valid.
func (h *GeocodeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorEnvelope{Error: "Method not allowed"})
		return
	}

	var req geocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Invalid JSON in request body"})
		return
	}
	if req.Latitude == nil || *req.Latitude < -90 || *req.Latitude > 90 {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Invalid latitude: must be between -90 and 90"})
		return
	}
	if req.Longitude == nil || *req.Longitude < -180 || *req.Longitude > 180 {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Invalid longitude: must be between -180 and 180"})
		return
	}

	code, err := h.Geocoder.CountryCode(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		log.Printf("[geocode] lookup failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "Failed to determine country from coordinates"})
		return
	}
	writeJSON(w, http.StatusOK, geocodeResponse{CountryCode: code})
}
