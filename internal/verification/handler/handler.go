// Package handler exposes the verification API over HTTP.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tessera/internal/verification/service"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/platform/httputil"
)

// Handler serves verification endpoints.
type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

// New creates the verification handler.
func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the verification routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/assets/{assetID}/verify", h.verify)
	r.Get("/assets/{assetID}/verifications", h.history)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	assetID, err := domain.ParseAssetID(chi.URLParam(r, "assetID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.svc.Verify(r.Context(), assetID, req.DeclaredValue, req.Evidence)
	if err != nil {
		h.logger.WarnContext(r.Context(), "verification failed",
			"asset_id", assetID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newVerifyResponse(result))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	assetID, err := domain.ParseAssetID(chi.URLParam(r, "assetID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	records, err := h.svc.History(r.Context(), assetID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newRecordResponses(records))
}
