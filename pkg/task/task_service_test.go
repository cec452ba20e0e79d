package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and defaults priority to medium", func(t *testing.T) {
		repo := NewStubTaskRepo()
		service := NewTaskService(repo, nil)

		created, err := service.Create(ctx, Task{
			EventId: "event-1",
			Title:   "Book venue",
			Date:    "2026-05-01",
			Time:    "10:00",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, PriorityMedium, created.Priority)
		assert.False(t, created.Completed)
		assert.Equal(t, []string{}, created.AssignedTo)

		stored, err := repo.Get(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, created, stored)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		repo := NewStubTaskRepo()
		service := NewTaskService(repo, nil)

		valid := Task{EventId: "event-1", Title: "Book venue", Date: "2026-05-01", Time: "10:00"}

		invalid := valid
		invalid.Title = "   "
		_, err := service.Create(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.EventId = ""
		_, err = service.Create(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.Date = "01/05/2026"
		_, err = service.Create(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.Time = "25:99"
		_, err = service.Create(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)

		invalid = valid
		invalid.Priority = Priority("urgent")
		_, err = service.Create(ctx, invalid)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only the provided fields", func(t *testing.T) {
		// given
		repo := NewStubTaskRepo()
		service := NewTaskService(repo, nil)
		created, err := service.Create(ctx, Task{
			EventId:     "event-1",
			Title:       "Book venue",
			Description: "call three places",
			Date:        "2026-05-01",
			Time:        "10:00",
			Priority:    PriorityLow,
		})
		require.NoError(t, err)

		// when
		newTitle := "Book the venue"
		newPriority := PriorityHigh
		updated, err := service.Update(ctx, created.Id, TaskUpdate{Title: &newTitle, Priority: &newPriority})

		// then
		require.NoError(t, err)
		assert.Equal(t, "Book the venue", updated.Title)
		assert.Equal(t, PriorityHigh, updated.Priority)
		assert.Equal(t, "call three places", updated.Description)
		assert.Equal(t, "2026-05-01", updated.Date)
		assert.Equal(t, "event-1", updated.EventId)
	})

	t.Run("returns not found for unknown task", func(t *testing.T) {
		service := NewTaskService(NewStubTaskRepo(), nil)

		newTitle := "whatever"
		_, err := service.Update(ctx, "missing", TaskUpdate{Title: &newTitle})

		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("rejects an update that would invalidate the task", func(t *testing.T) {
		repo := NewStubTaskRepo()
		service := NewTaskService(repo, nil)
		created, err := service.Create(ctx, Task{EventId: "event-1", Title: "Book venue", Date: "2026-05-01", Time: "10:00"})
		require.NoError(t, err)

		badDate := "not-a-date"
		_, err = service.Update(ctx, created.Id, TaskUpdate{Date: &badDate})

		assert.ErrorIs(t, err, ErrValidation)
		stored, _ := repo.Get(ctx, created.Id)
		assert.Equal(t, "2026-05-01", stored.Date)
	})
}

func TestTaskService_ToggleCompletion(t *testing.T) {
	ctx := context.Background()
	repo := NewStubTaskRepo()
	service := NewTaskService(repo, nil)

	created, err := service.Create(ctx, Task{EventId: "event-1", Title: "Book venue", Date: "2026-05-01", Time: "10:00"})
	require.NoError(t, err)

	toggled, err := service.ToggleCompletion(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = service.ToggleCompletion(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewStubTaskRepo()
	service := NewTaskService(repo, nil)

	created, err := service.Create(ctx, Task{EventId: "event-1", Title: "Book venue", Date: "2026-05-01", Time: "10:00"})
	require.NoError(t, err)

	// deleting twice is fine, the second call is a no-op
	assert.NoError(t, service.Delete(ctx, created.Id))
	assert.NoError(t, service.Delete(ctx, created.Id))

	_, err = repo.Get(ctx, created.Id)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_Assign(t *testing.T) {
	ctx := context.Background()
	repo := NewStubTaskRepo()
	service := NewTaskService(repo, nil)

	created, err := service.Create(ctx, Task{EventId: "event-1", Title: "Book venue", Date: "2026-05-01", Time: "10:00"})
	require.NoError(t, err)

	t.Run("replaces the assignee list wholesale", func(t *testing.T) {
		assigned, err := service.Assign(ctx, created.Id, []string{"ana@example.com", "ben@example.com"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ana@example.com", "ben@example.com"}, assigned.AssignedTo)

		assigned, err = service.Assign(ctx, created.Id, []string{"ben@example.com"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ben@example.com"}, assigned.AssignedTo)
	})

	t.Run("empty list is valid and clears assignees", func(t *testing.T) {
		assigned, err := service.Assign(ctx, created.Id, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{}, assigned.AssignedTo)
	})
}

func TestTaskService_GenerateForCategories(t *testing.T) {
	ctx := context.Background()
	repo := NewStubTaskRepo()
	service := NewTaskService(repo, nil)

	// given categories with a blank entry that must be skipped
	tasks, err := service.GenerateForCategories(ctx, "event-1", "2026-05-01", []string{"Venue", "  ", "Catering"})

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Plan Venue", tasks[0].Title)
	assert.Equal(t, "Plan Catering", tasks[1].Title)
	for _, generated := range tasks {
		assert.Equal(t, "2026-05-01", generated.Date)
		assert.Equal(t, "09:00", generated.Time)
		assert.Equal(t, PriorityMedium, generated.Priority)
	}

	stored, err := service.ListForEvent(ctx, "event-1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
