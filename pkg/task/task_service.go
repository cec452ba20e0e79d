package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planhive/planhive/internal/actor"
	"github.com/planhive/planhive/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrValidation = errors.New("validation failed")

// TaskUpdate is a partial update: nil fields are left untouched. The owning
// event can never be changed.
type TaskUpdate struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Priority    *Priority
	Category    *string
}

type TaskService interface {
	Create(ctx context.Context, task Task) (Task, error)
	Update(ctx context.Context, taskId string, update TaskUpdate) (Task, error)
	ToggleCompletion(ctx context.Context, taskId string) (Task, error)
	Delete(ctx context.Context, taskId string) error
	Assign(ctx context.Context, taskId string, assignees []string) (Task, error)
	ListForEvent(ctx context.Context, eventId string) ([]Task, error)
	GenerateForCategories(ctx context.Context, eventId string, date string, categories []string) ([]Task, error)
}

type TaskServiceImpl struct {
	repo     TaskRepo
	eventBus *event_bus.EventBus
}

func NewTaskService(repo TaskRepo, eventBus *event_bus.EventBus) *TaskServiceImpl {
	return &TaskServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *TaskServiceImpl) Create(ctx context.Context, task Task) (Task, error) {
	if err := validateTask(task); err != nil {
		return Task{}, err
	}

	task.Id = uuid.NewString()
	task.Completed = false
	if task.AssignedTo == nil {
		task.AssignedTo = []string{}
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	if err := s.repo.Store(ctx, task); err != nil {
		return Task{}, err
	}

	s.publish(ctx, event_bus.TypeTaskCreated, event_bus.TaskCreated{
		TaskId:   task.Id,
		EventId:  task.EventId,
		Title:    task.Title,
		Category: task.Category,
		Date:     task.Date,
	})
	return task, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, taskId string, update TaskUpdate) (Task, error) {
	task, err := s.repo.Get(ctx, taskId)
	if err != nil {
		return Task{}, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Date != nil {
		task.Date = *update.Date
	}
	if update.Time != nil {
		task.Time = *update.Time
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Category != nil {
		task.Category = *update.Category
	}

	if err := validateTask(task); err != nil {
		return Task{}, err
	}

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return Task{}, err
	}
	if !updated {
		return Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ToggleCompletion(ctx context.Context, taskId string) (Task, error) {
	task, err := s.repo.Get(ctx, taskId)
	if err != nil {
		return Task{}, err
	}
	task.Completed = !task.Completed

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return Task{}, err
	}
	if !updated {
		return Task{}, ErrTaskNotFound
	}

	s.publish(ctx, event_bus.TypeTaskCompletionToggle, event_bus.TaskCompletionToggled{
		TaskId:    task.Id,
		EventId:   task.EventId,
		Title:     task.Title,
		Completed: task.Completed,
	})
	return task, nil
}

// Delete is idempotent: deleting an already removed task is not an error.
func (s *TaskServiceImpl) Delete(ctx context.Context, taskId string) error {
	deleted, err := s.repo.Delete(ctx, taskId)
	if err != nil {
		return err
	}
	if !deleted {
		log.Debugf("task %s already absent, nothing to delete", taskId)
	}
	return nil
}

// Assign replaces the assignee list wholesale. An empty list is valid and means
// the task falls back to the acting user.
func (s *TaskServiceImpl) Assign(ctx context.Context, taskId string, assignees []string) (Task, error) {
	task, err := s.repo.Get(ctx, taskId)
	if err != nil {
		return Task{}, err
	}
	if assignees == nil {
		assignees = []string{}
	}
	task.AssignedTo = assignees

	if len(assignees) == 0 {
		if actorId, err := actor.CurrentId(ctx); err == nil {
			log.Debugf("task %s has no assignees, implicitly assigned to %s", taskId, actorId)
		}
	}

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return Task{}, err
	}
	if !updated {
		return Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ListForEvent(ctx context.Context, eventId string) ([]Task, error) {
	return s.repo.GetAllForEvent(ctx, eventId)
}

// GenerateForCategories seeds one planning task per category, all scheduled on
// the given date. Used when an event is created from a category checklist.
func (s *TaskServiceImpl) GenerateForCategories(ctx context.Context, eventId string, date string, categories []string) ([]Task, error) {
	tasks := make([]Task, 0, len(categories))
	for _, category := range categories {
		if strings.TrimSpace(category) == "" {
			continue
		}
		task, err := s.Create(ctx, Task{
			EventId:  eventId,
			Title:    fmt.Sprintf("Plan %s", category),
			Date:     date,
			Time:     "09:00",
			Priority: PriorityMedium,
			Category: category,
		})
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s event: %v", eventType, err)
	}
}

func validateTask(task Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: task title must not be empty", ErrValidation)
	}
	if task.EventId == "" {
		return fmt.Errorf("%w: task must belong to an event", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", task.Date); err != nil {
		return fmt.Errorf("%w: task date must be YYYY-MM-DD, got %q", ErrValidation, task.Date)
	}
	if _, err := time.Parse("15:04", task.Time); err != nil {
		return fmt.Errorf("%w: task time must be HH:MM, got %q", ErrValidation, task.Time)
	}
	if task.Priority != "" && !task.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, task.Priority)
	}
	return nil
}
