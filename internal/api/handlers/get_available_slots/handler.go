package get_available_slots

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/get_available_slots"
)

// Handler обработчик выдачи доступных слотов тренера на дату
type Handler struct {
	slots  SlotsProvider
	logger Logger
}

// New создает новый обработчик доступных слотов
func New(slots SlotsProvider, logger Logger) *Handler {
	return &Handler{slots: slots, logger: logger}
}

// Handle обрабатывает GET /api/v1/slots/{trainerId}?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID := mux.Vars(r)["trainerId"]

	dateRaw := r.URL.Query().Get("date")
	if dateRaw == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMissingDate})
		return
	}
	date, err := time.Parse(domain.DateFormat, dateRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidDate})
		return
	}

	result, err := h.slots.GetAvailableSlots(r.Context(), uc.GetAvailableSlotsData{
		TrainerID: trainerID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrTrainerNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgTrainerNotFound})
		case errors.Is(err, uc.ErrInvalidDate):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidDate})
		default:
			h.logger.Error("get_available_slots: %v", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		}
		return
	}

	resp := SlotsResponse{
		Slots:      make([]SlotResponse, 0, len(result.Slots)),
		OnVacation: result.OnVacation,
	}
	for _, s := range result.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{ID: s.ID, Time: s.Time})
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
