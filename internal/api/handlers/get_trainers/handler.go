package get_trainers

import (
	"encoding/json"
	"net/http"
)

// Handler обработчик получения списка тренеров
type Handler struct {
	trainers TrainerProvider
	logger   Logger
}

// New создает новый обработчик списка тренеров
func New(trainers TrainerProvider, logger Logger) *Handler {
	return &Handler{trainers: trainers, logger: logger}
}

// Handle обрабатывает GET /api/v1/trainers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.trainers.List(r.Context())
	if err != nil {
		h.logger.Error("get_trainers: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	resp := make([]TrainerResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, TrainerResponse{
			ID:          t.ID,
			Name:        t.Name,
			Specialty:   t.Specialty,
			Image:       t.Image,
			Description: t.Description,
			Rating:      t.Rating,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
