package booking

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pranavthakur-code/get-health-help/internal/service/booking"
	"github.com/pranavthakur-code/get-health-help/pkg/utils"
)

// Handler exposes appointment booking.
type Handler struct {
	bookings *booking.Service
}

// New creates the booking handler.
func New(bookings *booking.Service) *Handler {
	return &Handler{bookings: bookings}
}

// RegisterRoutes mounts the booking routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/doctors/{doctorID}/slots", h.handleSlots)
	r.Get("/bookings", h.handleListBookings)
	r.Post("/bookings", h.handleBook)
}

func (h *Handler) handleSlots(w http.ResponseWriter, r *http.Request) {
	avail, err := h.bookings.Slots(r.Context(), chi.URLParam(r, "doctorID"))
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, avail)
}

func (h *Handler) handleListBookings(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.bookings.Appointments())
}

func (h *Handler) handleBook(w http.ResponseWriter, r *http.Request) {
	var req booking.Request
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appt, err := h.bookings.Book(r.Context(), req)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, appt)
}

func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrDoctorNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrDoctorUnavailable):
		utils.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrSlotRequired),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrContactRequired):
		utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
