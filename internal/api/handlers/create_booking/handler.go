package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/create_booking"
)

// Handler обработчик публичного создания брони. Новая бронь всегда
// создаётся в статусе pending и ждёт подтверждения тренером.
type Handler struct {
	creator BookingCreator
	logger  Logger
}

// New создает новый обработчик создания брони
func New(creator BookingCreator, logger Logger) *Handler {
	return &Handler{creator: creator, logger: logger}
}

// Handle обрабатывает POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidDate})
		return
	}

	booking, err := h.creator.CreateBooking(r.Context(), uc.CreateBookingData{
		TrainerID:     req.TrainerID,
		Date:          date,
		Time:          req.Time,
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientEmail:   strings.TrimSpace(req.ClientEmail),
		ClientPhone:   strings.TrimSpace(req.ClientPhone),
		InitialStatus: domain.StatusPending,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, NewBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, uc.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, uc.ErrInvalidTime):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidTime})
	case errors.Is(err, uc.ErrDateInPast):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgDateInPast})
	case errors.Is(err, uc.ErrTrainerNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgTrainerNotFound})
	case errors.Is(err, uc.ErrSlotConflict):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: msgSlotTaken, Code: codeSlotTaken})
	default:
		h.logger.Error("create_booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
