package calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planhive/planhive/internal/utils"
	"github.com/planhive/planhive/pkg/event"
	"github.com/planhive/planhive/pkg/task"
	log "github.com/sirupsen/logrus"
)

type FeedHandler struct {
	events event.EventService
	tasks  task.TaskService
	clock  utils.Clock
}

func NewFeedHandler(events event.EventService, tasks task.TaskService, clock utils.Clock) *FeedHandler {
	return &FeedHandler{events: events, tasks: tasks, clock: clock}
}

// GetFeed serves the event's tasks as a downloadable ICS calendar.
func (handler *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	eventId := mux.Vars(r)["eventId"]

	ev, err := handler.events.Get(r.Context(), eventId)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tasks, err := handler.tasks.ListForEvent(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	feed, err := BuildFeed(ev, tasks, handler.clock.Now())
	if err != nil {
		log.Errorf("failed to build calendar feed for event %s: %v", eventId, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"tasks.ics\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Errorf("failed to write calendar feed: %v", err)
	}
}
