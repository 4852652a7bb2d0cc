// Package handler exposes the risk assessment API over HTTP.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tessera/internal/risk/service"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/platform/httputil"
)

// Handler serves risk endpoints.
type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

// New creates the risk handler.
func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the risk routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/assets/{assetID}/risk", h.assess)
}

// assess returns the asset's risk assessment. Optional query parameters:
// lat/lng enable the weather lookup, refresh=true bypasses the cache.
func (h *Handler) assess(w http.ResponseWriter, r *http.Request) {
	assetID, err := domain.ParseAssetID(chi.URLParam(r, "assetID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	params := service.AssessParams{
		Refresh: r.URL.Query().Get("refresh") == "true",
	}
	latStr, lngStr := r.URL.Query().Get("lat"), r.URL.Query().Get("lng")
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "lat and lng must both be valid numbers"))
			return
		}
		params.Coordinates = &service.Coordinates{Lat: lat, Lng: lng}
	}

	assessment, err := h.svc.Assess(r.Context(), assetID, params)
	if err != nil {
		h.logger.WarnContext(r.Context(), "risk assessment failed",
			"asset_id", assetID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, assessment)
}
