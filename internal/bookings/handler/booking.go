package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"fitbook/internal/bookings/service"
	"fitbook/pkg/config"
	apperrors "fitbook/pkg/errors"
	httputil "fitbook/pkg/http"
	"fitbook/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	cfg     *config.Config
}

func NewBookingHandler(service service.BookingService, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		service: service,
		cfg:     cfg,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/book/", h.Create)
	router.HandlerFunc(http.MethodPost, "/book", h.Create)
	router.HandlerFunc(http.MethodGet, "/bookings/", h.ListByEmail)
	router.HandlerFunc(http.MethodGet, "/bookings", h.ListByEmail)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Request body must be valid JSON"))
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *BookingHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	bookings, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	httputil.WriteOK(w, bookings)
}
