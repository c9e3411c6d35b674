package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type rootHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          Pinger
	startupTime time.Time
}

func newRootHandler(db Pinger, startupTime time.Time) rootHandler {
	logger := log.With().Str("handlerName", "rootHandler").Logger()

	return rootHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		startupTime: startupTime,
	}
}

// APIIndexResponse lists the public endpoints and example filters
type APIIndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Filters   map[string]string `json:"filters"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Uptime string `json:"uptime" example:"3h12m5s"`
}

// apiIndex describes the API
// @Summary API index
// @Tags Root
// @Produce json
// @Success 200 {object} APIIndexResponse
// @Router /api/ [get]
func (h rootHandler) apiIndex() http.HandlerFunc {
	index := APIIndexResponse{
		Message: "Portfolio API",
		Endpoints: map[string]string{
			"projects":     "/api/projects/",
			"technologies": "/api/technologies/",
			"blog":         "/api/blog/",
			"skills":       "/api/skills/",
			"contact":      "/api/contact/",
		},
		Filters: map[string]string{
			"projects":     "?featured=true&technology=django&status=completed",
			"technologies": "?category=frontend",
			"blog":         "?category=learning",
			"skills":       "?category=programming",
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, index)
	}
}

// healthz reports liveness and database reachability
// @Summary Health check
// @Tags Root
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h rootHandler) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(h.startupTime).Round(time.Second).String()

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("database ping failed")
			h.responder.WriteJSONWithStatus(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Uptime: uptime,
			})
			return
		}

		h.responder.WriteJSON(w, HealthResponse{Status: "ok", Uptime: uptime})
	}
}
