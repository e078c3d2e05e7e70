package manage_schedules

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability/models"
)

// Handler обработчик управления недельным шаблоном расписания
type Handler struct {
	schedules ScheduleManager
	logger    Logger
}

// New создает новый обработчик управления расписаниями
func New(schedules ScheduleManager, logger Logger) *Handler {
	return &Handler{schedules: schedules, logger: logger}
}

// HandleList обрабатывает GET /api/v1/admin/schedules
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.schedules.ListScheduleEntries(r.Context())
	if err != nil {
		h.logger.Error("manage_schedules list: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, EntryResponse{
			ID:        e.ID,
			TrainerID: e.TrainerID,
			Weekday:   e.Weekday,
			Time:      e.Time,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAdd обрабатывает POST /api/v1/admin/schedules
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	created, err := h.schedules.AddScheduleEntry(r.Context(), models.AddScheduleEntryData{
		TrainerID: req.TrainerID,
		Weekday:   req.Weekday,
		Time:      req.Time,
	})
	if err != nil {
		h.respondError(w, err, "add")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, MutationResponse{Changed: created})
}

// HandleRemove обрабатывает DELETE /api/v1/admin/schedules
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	deleted, err := h.schedules.RemoveScheduleEntry(r.Context(), models.RemoveScheduleEntryData{
		TrainerID: req.TrainerID,
		Weekday:   req.Weekday,
		Time:      req.Time,
	})
	if err != nil {
		h.respondError(w, err, "remove")
		return
	}

	writeJSON(w, http.StatusOK, MutationResponse{Changed: deleted})
}

func (h *Handler) respondError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, availability.ErrInvalidWeekday):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidWeekday})
	case errors.Is(err, availability.ErrInvalidTime):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidTime})
	case errors.Is(err, availability.ErrTrainerNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgTrainerNotFound})
	default:
		h.logger.Error("manage_schedules %s: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
