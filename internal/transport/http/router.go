// Package http wires the module handlers into the service router.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assethandler "tessera/internal/asset/handler"
	assignmenthandler "tessera/internal/assignment/handler"
	"tessera/internal/platform/middleware"
	riskhandler "tessera/internal/risk/handler"
	verificationhandler "tessera/internal/verification/handler"
	"tessera/pkg/platform/httputil"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports one dependency's health.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Deps carries everything the router needs.
type Deps struct {
	Assets       *assethandler.Handler
	Verification *verificationhandler.Handler
	Risk         *riskhandler.Handler
	Assignment   *assignmenthandler.Handler
	AdminToken   string
	Logger       *slog.Logger
	Health       []HealthCheck
}

// NewRouter builds the full service router: health and metrics surfaces plus
// the versioned API. Mutating endpoints sit behind the admin token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestContext)

	r.Get("/healthz", healthHandler(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(deps.AdminToken, deps.Logger))
		for _, h := range []Registrar{deps.Assets, deps.Verification, deps.Risk, deps.Assignment} {
			h.Register(r)
		}
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				resp.Checks[check.Name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[check.Name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
