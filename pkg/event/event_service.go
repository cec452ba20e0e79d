package event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrValidation = errors.New("validation failed")

type EventService interface {
	Create(ctx context.Context, event Event) (Event, error)
	Get(ctx context.Context, eventId string) (Event, error)
	List(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, eventId string) (bool, error)
	TotalBudget(ctx context.Context, eventId string) (float64, error)
}

type EventServiceImpl struct {
	repo EventRepo
}

func NewEventService(repo EventRepo) *EventServiceImpl {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) Create(ctx context.Context, event Event) (Event, error) {
	if err := validate(event); err != nil {
		return Event{}, err
	}
	event.Id = uuid.NewString()
	if err := s.repo.Store(ctx, event); err != nil {
		return Event{}, err
	}
	return event, nil
}

func (s *EventServiceImpl) Get(ctx context.Context, eventId string) (Event, error) {
	return s.repo.Get(ctx, eventId)
}

func (s *EventServiceImpl) List(ctx context.Context) ([]Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *EventServiceImpl) Update(ctx context.Context, event Event) (Event, error) {
	if err := validate(event); err != nil {
		return Event{}, err
	}
	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return Event{}, err
	}
	if !updated {
		log.Warnf("event not updated, probably because it does not exist (%s)", event.Id)
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, eventId string) (bool, error) {
	return s.repo.Delete(ctx, eventId)
}

// TotalBudget returns the nominal total budget of the event. Budget category
// allocations may sum to a different number; that is surfaced, not reconciled.
func (s *EventServiceImpl) TotalBudget(ctx context.Context, eventId string) (float64, error) {
	event, err := s.repo.Get(ctx, eventId)
	if err != nil {
		return 0, err
	}
	return event.TotalBudget, nil
}

func validate(event Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("%w: event name must not be empty", ErrValidation)
	}
	if event.TotalBudget < 0 {
		return fmt.Errorf("%w: total budget must not be negative", ErrValidation)
	}
	return nil
}
