// Package handler exposes asset registration and lookup over HTTP.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tessera/internal/asset/models"
	"tessera/internal/asset/service"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/platform/httputil"
)

// Handler serves asset endpoints.
type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

// New creates the asset handler.
func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the asset routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/assets", h.create)
	r.Get("/assets", h.list)
	r.Get("/assets/{assetID}", h.get)
}

// CreateRequest declares a new asset.
type CreateRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	DeclaredValue float64 `json:"declared_value"`
	ExpectedAPY   float64 `json:"expected_apy"`
}

// AssetResponse is the wire shape of an asset.
type AssetResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	DeclaredValue     float64   `json:"declared_value"`
	ExpectedAPY       float64   `json:"expected_apy"`
	Status            string    `json:"status"`
	VerificationScore float64   `json:"verification_score"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newAssetResponse(a *models.Asset) AssetResponse {
	return AssetResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		Category:          string(a.Category),
		Location:          a.Location,
		DeclaredValue:     a.DeclaredValue,
		ExpectedAPY:       a.ExpectedAPY,
		Status:            string(a.Status),
		VerificationScore: a.VerificationScore,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	asset, err := h.svc.Register(r.Context(), req.Name, category, req.Location, req.DeclaredValue, req.ExpectedAPY)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, newAssetResponse(asset))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	assetID, err := domain.ParseAssetID(chi.URLParam(r, "assetID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	asset, err := h.svc.Get(r.Context(), assetID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newAssetResponse(asset))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, newAssetResponse(a))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
