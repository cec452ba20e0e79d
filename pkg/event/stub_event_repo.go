package event

import "context"

type StubEventRepo struct {
	data map[string]Event
}

func NewStubEventRepo() *StubEventRepo {
	return &StubEventRepo{data: map[string]Event{}}
}

func (s *StubEventRepo) Store(ctx context.Context, event Event) error {
	s.data[event.Id] = event
	return nil
}

func (s *StubEventRepo) Get(ctx context.Context, eventId string) (Event, error) {
	event, ok := s.data[eventId]
	if !ok {
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (s *StubEventRepo) GetAll(ctx context.Context) ([]Event, error) {
	events := make([]Event, 0, len(s.data))
	for _, event := range s.data {
		events = append(events, event)
	}
	return events, nil
}

func (s *StubEventRepo) Update(ctx context.Context, event Event) (bool, error) {
	if _, ok := s.data[event.Id]; !ok {
		return false, nil
	}
	s.data[event.Id] = event
	return true, nil
}

func (s *StubEventRepo) Delete(ctx context.Context, eventId string) (bool, error) {
	if _, ok := s.data[eventId]; !ok {
		return false, nil
	}
	delete(s.data, eventId)
	return true, nil
}

func (s *StubEventRepo) Cleanup() {
	s.data = map[string]Event{}
}
