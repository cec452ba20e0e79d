package activity

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type EntryDTO struct {
	Id        int       `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ActivityHandler struct {
	service *ActivityService
}

func NewActivityHandler(service *ActivityService) *ActivityHandler {
	return &ActivityHandler{service}
}

func (handler *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	entries := handler.service.GetForEvent(r.Context(), eventId)
	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, EntryDTO{
			Id:        entry.Id,
			Kind:      entry.Kind,
			Message:   entry.Message,
			Actor:     entry.Actor,
			Timestamp: entry.Timestamp,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
