package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fitbook/pkg/config"
	apperrors "fitbook/pkg/errors"
	httputil "fitbook/pkg/http"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/health", h.Health)
	router.HandlerFunc(http.MethodGet, "/ready", h.Ready)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, map[string]string{
		"status":  "ok",
		"service": h.cfg.ServiceName,
	})
}

// Ready reports readiness only when the database answers a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cfg.Client.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.cfg.Log.Error("Readiness check failed", "error", err)
		httputil.WriteError(w, apperrors.New(apperrors.CodeInternal, "Database unavailable", http.StatusServiceUnavailable))
		return
	}

	httputil.WriteOK(w, map[string]string{"status": "ready"})
}
