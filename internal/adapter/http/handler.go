package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"funnel-engine/internal/core/port"
	"funnel-engine/internal/metrics"
)

// DefaultCookieTTL is the lifetime of the fv_{campaignId} visitor cookie.
const DefaultCookieTTL = 90 * 24 * time.Hour

// Options tune a Handler. The zero value is usable.
type Options struct {
	// CookieTTL overrides DefaultCookieTTL.
	CookieTTL time.Duration
	// Metrics, when set, instruments every route and serves /metrics.
	Metrics *metrics.Metrics
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: the public funnel routes used by landing pages and the player, and
// the reporting routes under /api/v1.
type Handler struct {
	funnel    port.FunnelUseCase
	analytics port.AnalyticsUseCase
	logger    *slog.Logger
	validate  *validator.Validate
	cookieTTL time.Duration
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(funnel port.FunnelUseCase, analytics port.AnalyticsUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		funnel:    funnel,
		analytics: analytics,
		logger:    logger,
		validate:  newValidator(),
		cookieTTL: opts.CookieTTL,
	}
	if h.cookieTTL <= 0 {
		h.cookieTTL = DefaultCookieTTL
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/healthz", h.handleHealth)

	r.Route("/funnel", func(r chi.Router) {
		r.Get("/c/{slug}", h.handleVisit)
		r.Post("/c/{slug}/register", h.handleRegister)
		r.Get("/c/{slug}/watch", h.handleWatch)
		r.Post("/track", h.handleTrack)
	})

	r.Route("/api/v1/campaigns/{id}", func(r chi.Router) {
		r.Get("/metrics", h.handleMetrics)
		r.Get("/significance", h.handleSignificance)
		r.Get("/dropoff", h.handleDropOff)
		r.Get("/export.csv", h.handleExport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
