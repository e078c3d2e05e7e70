package manage_vacations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability"
	"github.com/TecWeb-Studio/newbodyline2/internal/service/availability/models"
)

// Handler обработчик управления отпусками тренеров
type Handler struct {
	vacations VacationManager
	logger    Logger
}

// New создает новый обработчик управления отпусками
func New(vacations VacationManager, logger Logger) *Handler {
	return &Handler{vacations: vacations, logger: logger}
}

// HandleList обрабатывает GET /api/v1/admin/vacations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.vacations.ListVacations(r.Context())
	if err != nil {
		h.logger.Error("manage_vacations list: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	resp := make([]VacationResponse, 0, len(list))
	for _, v := range list {
		resp = append(resp, NewVacationResponse(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAdd обрабатывает POST /api/v1/admin/vacations
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req VacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidDate})
		return
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidDate})
		return
	}

	vacation, err := h.vacations.AddVacation(r.Context(), models.AddVacationData{
		TrainerID: req.TrainerID,
		StartDate: startDate,
		EndDate:   endDate,
		Note:      req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDateRange):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidDateRange})
		case errors.Is(err, availability.ErrTrainerNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgTrainerNotFound})
		default:
			h.logger.Error("manage_vacations add: %v", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		}
		return
	}

	writeJSON(w, http.StatusCreated, NewVacationResponse(vacation))
}

// HandleRemove обрабатывает DELETE /api/v1/admin/vacations?id=
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
		return
	}

	err = h.vacations.RemoveVacation(r.Context(), id)
	if errors.Is(err, availability.ErrVacationNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgVacationNotFound})
		return
	}
	if err != nil {
		h.logger.Error("manage_vacations remove: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
