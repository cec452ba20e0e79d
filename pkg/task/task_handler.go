package task

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type TaskDTO struct {
	Id          string   `json:"id"`
	EventId     string   `json:"eventId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category,omitempty"`
	Completed   bool     `json:"completed"`
	AssignedTo  []string `json:"assignedTo"`
}

type TaskUpdateDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type DateGroupDTO struct {
	Date  string    `json:"date"`
	Tasks []TaskDTO `json:"tasks"`
}

type ProgressDTO struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

type TaskHandler struct {
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service}
}

// Create godoc
// @Summary Create a task
// @Description Create a new task for an event; title, date and time are required
// @Tags Task
// @Accept json
// @Produce json
// @Param task body TaskDTO true "Task"
// @Success 201 {object} TaskDTO
// @Failure 400 {string} string "Bad Request"
// @Router /api/event/{eventId}/task [post]
func (handler *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new task")
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto.EventId = eventId

	created, err := handler.service.Create(r.Context(), DTOToTask(dto))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TaskToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// List godoc
// @Summary List tasks of an event
// @Description List tasks, optionally filtered by category ("all" disables), completion status (all/active/completed) and date
// @Tags Task
// @Produce json
// @Success 200 {array} TaskDTO
// @Router /api/event/{eventId}/task [get]
func (handler *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	tasks, err := handler.service.ListForEvent(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		tasks = FilterByCategory(tasks, category)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		tasks = FilterByCompletion(tasks, CompletionFilter(status))
	}
	if date := r.URL.Query().Get("date"); date != "" {
		tasks = TasksForDate(tasks, date)
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, TaskToDTO(task))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	tasks, err := handler.service.ListForEvent(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	groups := GroupByDate(tasks)
	groupDTOs := make([]DateGroupDTO, 0, len(groups))
	for _, date := range SortedDates(groups) {
		group := groups[date]
		taskDTOs := make([]TaskDTO, 0, len(group))
		for _, task := range group {
			taskDTOs = append(taskDTOs, TaskToDTO(task))
		}
		groupDTOs = append(groupDTOs, DateGroupDTO{Date: date, Tasks: taskDTOs})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(groupDTOs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) Markers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}

	tasks, err := handler.service.ListForEvent(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	markers := DayMarkers(tasks, date)
	markerStrings := make([]string, 0, len(markers))
	for _, marker := range markers {
		markerStrings = append(markerStrings, string(marker))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(markerStrings); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Generating tasks from categories")
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var request struct {
		Date       string   `json:"date"`
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tasks, err := handler.service.GenerateForCategories(r.Context(), eventId, request.Date, request.Categories)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, TaskToDTO(task))
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	taskId := mux.Vars(r)["taskId"]

	var dto TaskUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := TaskUpdate{
		Title:       dto.Title,
		Description: dto.Description,
		Date:        dto.Date,
		Time:        dto.Time,
		Category:    dto.Category,
	}
	if dto.Priority != nil {
		priority := Priority(*dto.Priority)
		update.Priority = &priority
	}

	updated, err := handler.service.Update(r.Context(), taskId, update)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TaskToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	taskId := mux.Vars(r)["taskId"]

	task, err := handler.service.ToggleCompletion(r.Context(), taskId)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TaskToDTO(task)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	taskId := mux.Vars(r)["taskId"]

	var request struct {
		AssignedTo []string `json:"assignedTo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := handler.service.Assign(r.Context(), taskId, request.AssignedTo)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TaskToDTO(task)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskId := mux.Vars(r)["taskId"]

	if err := handler.service.Delete(r.Context(), taskId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func TaskToDTO(task Task) TaskDTO {
	assignedTo := task.AssignedTo
	if assignedTo == nil {
		assignedTo = []string{}
	}
	return TaskDTO{
		Id:          task.Id,
		EventId:     task.EventId,
		Title:       task.Title,
		Description: task.Description,
		Date:        task.Date,
		Time:        task.Time,
		Priority:    string(task.Priority),
		Category:    task.Category,
		Completed:   task.Completed,
		AssignedTo:  assignedTo,
	}
}

func DTOToTask(dto TaskDTO) Task {
	return Task{
		Id:          dto.Id,
		EventId:     dto.EventId,
		Title:       dto.Title,
		Description: dto.Description,
		Date:        dto.Date,
		Time:        dto.Time,
		Priority:    Priority(dto.Priority),
		Category:    dto.Category,
		Completed:   dto.Completed,
		AssignedTo:  dto.AssignedTo,
	}
}
