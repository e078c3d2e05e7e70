package cancel_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TecWeb-Studio/newbodyline2/internal/service/bookings"
)

// Handler обработчик отмены брони. Бронь удаляется, её слот снова
// становится доступным для записи.
type Handler struct {
	canceller BookingCanceller
	logger    Logger
}

// New создает новый обработчик отмены брони
func New(canceller BookingCanceller, logger Logger) *Handler {
	return &Handler{canceller: canceller, logger: logger}
}

// Handle обрабатывает DELETE /api/v1/bookings?id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMissingID})
		return
	}

	err := h.canceller.Cancel(r.Context(), id)
	if errors.Is(err, bookings.ErrBookingNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgBookingNotFound})
		return
	}
	if err != nil {
		h.logger.Error("cancel_booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	writeJSON(w, http.StatusOK, CancelResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
