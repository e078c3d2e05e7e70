package get_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TecWeb-Studio/newbodyline2/internal/service/bookings"
)

// Handler обработчик получения брони клиентом. Владение подтверждается
// email: чужая бронь неотличима от несуществующей.
type Handler struct {
	provider BookingProvider
	logger   Logger
}

// New создает новый обработчик получения брони
func New(provider BookingProvider, logger Logger) *Handler {
	return &Handler{provider: provider, logger: logger}
}

// Handle обрабатывает GET /api/v1/bookings/{bookingId}?email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMissingEmail})
		return
	}

	booking, err := h.provider.GetByIDAndEmail(r.Context(), bookingID, email)
	if errors.Is(err, bookings.ErrBookingNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgBookingNotFound})
		return
	}
	if err != nil {
		h.logger.Error("get_booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	writeJSON(w, http.StatusOK, NewBookingResponse(booking))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
