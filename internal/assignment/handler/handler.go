// Package handler exposes the AMC assignment API over HTTP.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tessera/internal/assignment"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/platform/httputil"
)

// Handler serves assignment endpoints.
type Handler struct {
	svc    *assignment.Service
	logger *slog.Logger
}

// New creates the assignment handler.
func New(svc *assignment.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the assignment routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/assets/{assetID}/assign", h.assign)
}

// AssignRequest names the candidate managers to choose between.
type AssignRequest struct {
	Candidates []string `json:"candidates"`
}

const maxCandidates = 100

func (r *AssignRequest) validate() error {
	if len(r.Candidates) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "candidates cannot be empty")
	}
	if len(r.Candidates) > maxCandidates {
		return dErrors.New(dErrors.CodeInvalidInput, "too many candidates")
	}
	for i, c := range r.Candidates {
		if strings.TrimSpace(c) == "" {
			return dErrors.Newf(dErrors.CodeInvalidInput, "candidate %d is empty", i)
		}
	}
	return nil
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	assetID, err := domain.ParseAssetID(chi.URLParam(r, "assetID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if err := req.validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.svc.Assign(r.Context(), assetID, req.Candidates)
	if err != nil {
		h.logger.WarnContext(r.Context(), "assignment failed",
			"asset_id", assetID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
