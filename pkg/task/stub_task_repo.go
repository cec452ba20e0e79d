package task

import (
	"context"
	"sort"
)

type StubTaskRepo struct {
	data map[string]Task
}

func NewStubTaskRepo() *StubTaskRepo {
	return &StubTaskRepo{data: map[string]Task{}}
}

func (s *StubTaskRepo) Store(ctx context.Context, task Task) error {
	s.data[task.Id] = task
	return nil
}

func (s *StubTaskRepo) Get(ctx context.Context, taskId string) (Task, error) {
	task, ok := s.data[taskId]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *StubTaskRepo) GetAllForEvent(ctx context.Context, eventId string) ([]Task, error) {
	tasks := make([]Task, 0)
	for _, task := range s.data {
		if task.EventId == eventId {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date < tasks[j].Date
		}
		if tasks[i].Time != tasks[j].Time {
			return tasks[i].Time < tasks[j].Time
		}
		return tasks[i].Id < tasks[j].Id
	})
	return tasks, nil
}

func (s *StubTaskRepo) Update(ctx context.Context, task Task) (bool, error) {
	if _, ok := s.data[task.Id]; !ok {
		return false, nil
	}
	s.data[task.Id] = task
	return true, nil
}

func (s *StubTaskRepo) Delete(ctx context.Context, taskId string) (bool, error) {
	if _, ok := s.data[taskId]; !ok {
		return false, nil
	}
	delete(s.data, taskId)
	return true, nil
}

func (s *StubTaskRepo) Cleanup() {
	s.data = map[string]Task{}
}
