package list_bookings

import (
	"encoding/json"
	"net/http"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
)

// Handler обработчик списка броней для администратора
type Handler struct {
	lister BookingLister
	logger Logger
}

// New создает новый обработчик списка броней
func New(lister BookingLister, logger Logger) *Handler {
	return &Handler{lister: lister, logger: logger}
}

// Handle обрабатывает GET /api/v1/admin/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.BookingStatus(raw)
		if s != domain.StatusPending && s != domain.StatusConfirmed && s != domain.StatusRejected {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidStatus})
			return
		}
		status = &s
	}

	list, err := h.lister.List(r.Context(), status)
	if err != nil {
		h.logger.Error("list_bookings: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	resp := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, NewBookingResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
