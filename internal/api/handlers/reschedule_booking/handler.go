package reschedule_booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/reschedule_booking"
)

// Handler обработчик самостоятельного переноса брони клиентом
type Handler struct {
	rescheduler BookingRescheduler
	logger      Logger
}

// New создает новый обработчик переноса брони
func New(rescheduler BookingRescheduler, logger Logger) *Handler {
	return &Handler{rescheduler: rescheduler, logger: logger}
}

// Handle обрабатывает PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}
	email := strings.TrimSpace(req.ClientEmail)
	if email == "" || strings.TrimSpace(req.NewSlotID) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMissingFields})
		return
	}

	booking, err := h.rescheduler.RescheduleBooking(r.Context(), uc.RescheduleBookingData{
		BookingID:    bookingID,
		ClientEmail:  email,
		NewSlotID:    strings.TrimSpace(req.NewSlotID),
		NewTrainerID: req.NewTrainerID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NewBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, uc.ErrSlotTrainerMismatch):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgTrainerMismatch})
	case errors.Is(err, uc.ErrBookingNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgBookingNotFound})
	case errors.Is(err, uc.ErrTrainerNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgTrainerNotFound})
	case errors.Is(err, uc.ErrTooLateToChange):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: msgTooLate, Code: codeTooLate})
	case errors.Is(err, uc.ErrSlotConflict):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: msgSlotNotAvailable, Code: codeSlotTaken})
	default:
		h.logger.Error("reschedule_booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
