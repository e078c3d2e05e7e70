package transition_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/bookings"
)

// Handler обработчик подтверждения или отклонения заявки.
// Переход разрешён только из статуса pending.
type Handler struct {
	transitioner BookingTransitioner
	logger       Logger
}

// New создает новый обработчик переходов статуса брони
func New(transitioner BookingTransitioner, logger Logger) *Handler {
	return &Handler{transitioner: transitioner, logger: logger}
}

// Handle обрабатывает PATCH /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	action, ok := domain.ValidTransitionAction(req.Action)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidAction})
		return
	}

	booking, err := h.transitioner.Transition(r.Context(), bookingID, action)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgBookingNotFound})
		case errors.Is(err, bookings.ErrAlreadyProcessed):
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: msgAlreadyProcessed, Code: codeAlreadyProcessed})
		case errors.Is(err, bookings.ErrInvalidAction):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidAction})
		default:
			h.logger.Error("transition_booking: %v", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		}
		return
	}

	writeJSON(w, http.StatusOK, NewBookingResponse(booking))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
