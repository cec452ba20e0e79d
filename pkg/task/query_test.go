package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	t.Run("no tasks means zero percent", func(t *testing.T) {
		progress := ComputeProgress([]Task{})

		assert.Equal(t, Progress{Completed: 0, Total: 0, Percent: 0}, progress)
	})

	t.Run("all tasks completed means hundred percent", func(t *testing.T) {
		tasks := []Task{
			{Id: "1", Completed: true},
			{Id: "2", Completed: true},
		}

		progress := ComputeProgress(tasks)

		assert.Equal(t, Progress{Completed: 2, Total: 2, Percent: 100}, progress)
	})

	t.Run("percent is rounded to nearest integer", func(t *testing.T) {
		// 1 of 3 completed -> 33.33 -> 33
		tasks := []Task{
			{Id: "1", Completed: true},
			{Id: "2"},
			{Id: "3"},
		}

		progress := ComputeProgress(tasks)

		assert.Equal(t, 33, progress.Percent)

		// 2 of 3 completed -> 66.67 -> 67
		tasks[1].Completed = true
		progress = ComputeProgress(tasks)

		assert.Equal(t, 67, progress.Percent)
	})
}

func TestFilterByCategory(t *testing.T) {
	tasks := []Task{
		{Id: "1", Category: "Photography"},
		{Id: "2", Category: "photography "},
		{Id: "3", Category: "Venue"},
	}

	t.Run("matches case-insensitively on trimmed names", func(t *testing.T) {
		filtered := FilterByCategory(tasks, "PHOTOGRAPHY")

		assert.Len(t, filtered, 2)
		assert.Equal(t, "1", filtered[0].Id)
		assert.Equal(t, "2", filtered[1].Id)
	})

	t.Run("category all disables filtering", func(t *testing.T) {
		assert.Len(t, FilterByCategory(tasks, CategoryAll), 3)
		assert.Len(t, FilterByCategory(tasks, ""), 3)
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(tasks, "catering"))
	})
}

func TestFilterByCompletion(t *testing.T) {
	tasks := []Task{
		{Id: "1", Completed: true},
		{Id: "2"},
		{Id: "3", Completed: true},
	}

	assert.Len(t, FilterByCompletion(tasks, CompletionActive), 1)
	assert.Len(t, FilterByCompletion(tasks, CompletionCompleted), 2)
	assert.Len(t, FilterByCompletion(tasks, CompletionAll), 3)
	// unknown mode behaves like all
	assert.Len(t, FilterByCompletion(tasks, CompletionFilter("bogus")), 3)
}

func TestGroupByDate(t *testing.T) {
	// given tasks out of order across two days
	tasks := []Task{
		{Id: "1", Date: "2026-05-02", Time: "14:00"},
		{Id: "2", Date: "2026-05-01", Time: "18:00"},
		{Id: "3", Date: "2026-05-01", Time: "09:00"},
		{Id: "4", Date: "2026-05-02", Time: "08:30"},
	}

	// when
	groups := GroupByDate(tasks)

	// then every group is sorted by time of day
	assert.Len(t, groups, 2)
	assert.Equal(t, "3", groups["2026-05-01"][0].Id)
	assert.Equal(t, "2", groups["2026-05-01"][1].Id)
	assert.Equal(t, "4", groups["2026-05-02"][0].Id)
	assert.Equal(t, "1", groups["2026-05-02"][1].Id)

	// and dates come back in calendar order
	assert.Equal(t, []string{"2026-05-01", "2026-05-02"}, SortedDates(groups))
}

func TestDayMarkers(t *testing.T) {
	t.Run("markers are capped at three, highest priority first", func(t *testing.T) {
		tasks := []Task{
			{Id: "1", Date: "2026-05-01", Time: "09:00", Priority: PriorityLow},
			{Id: "2", Date: "2026-05-01", Time: "10:00", Priority: PriorityHigh},
			{Id: "3", Date: "2026-05-01", Time: "11:00", Priority: PriorityMedium},
			{Id: "4", Date: "2026-05-01", Time: "12:00", Priority: PriorityHigh},
			{Id: "5", Date: "2026-05-02", Time: "09:00", Priority: PriorityHigh},
		}

		markers := DayMarkers(tasks, "2026-05-01")

		assert.Equal(t, []Priority{PriorityHigh, PriorityHigh, PriorityMedium}, markers)
	})

	t.Run("empty day has no markers", func(t *testing.T) {
		assert.Empty(t, DayMarkers([]Task{}, "2026-05-01"))
	})

	t.Run("equal priorities keep their time order", func(t *testing.T) {
		tasks := []Task{
			{Id: "late", Date: "2026-05-01", Time: "16:00", Priority: PriorityMedium},
			{Id: "early", Date: "2026-05-01", Time: "08:00", Priority: PriorityMedium},
		}

		markers := DayMarkers(tasks, "2026-05-01")

		assert.Equal(t, []Priority{PriorityMedium, PriorityMedium}, markers)
	})
}
