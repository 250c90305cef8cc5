package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"fitbook/internal/classes/service"
	"fitbook/pkg/config"
	apperrors "fitbook/pkg/errors"
	httputil "fitbook/pkg/http"
	"fitbook/pkg/model"
)

type ClassHandler struct {
	service service.ClassService
	cfg     *config.Config
}

func NewClassHandler(service service.ClassService, cfg *config.Config) *ClassHandler {
	return &ClassHandler{
		service: service,
		cfg:     cfg,
	}
}

func (h *ClassHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/classes/", h.ListUpcoming)
	router.HandlerFunc(http.MethodGet, "/classes", h.ListUpcoming)
	router.HandlerFunc(http.MethodPost, "/timezone/", h.ShiftTimezone)
	router.HandlerFunc(http.MethodPost, "/timezone", h.ShiftTimezone)
}

func (h *ClassHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if classes == nil {
		classes = []*model.FitnessClass{}
	}
	httputil.WriteOK(w, classes)
}

func (h *ClassHandler) ShiftTimezone(w http.ResponseWriter, r *http.Request) {
	var req model.TimezoneShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Request body must be valid JSON"))
		return
	}

	classes, err := h.service.ShiftTimezone(r.Context(), req.Timezone)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if classes == nil {
		classes = []*model.FitnessClass{}
	}
	httputil.WriteOK(w, classes)
}
