package task

import (
	"math"
	"sort"
	"strings"
)

// CategoryAll is the sentinel category meaning "no category filtering".
const CategoryAll = "all"

type CompletionFilter string

const (
	CompletionAll       CompletionFilter = "all"
	CompletionActive    CompletionFilter = "active"
	CompletionCompleted CompletionFilter = "completed"
)

type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// FilterByCategory returns the tasks whose category matches. Matching is
// case-insensitive on trimmed names; CategoryAll disables filtering.
func FilterByCategory(tasks []Task, category string) []Task {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return tasks
	}
	filtered := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.EqualFold(strings.TrimSpace(task.Category), strings.TrimSpace(category)) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// FilterByCompletion keeps tasks matching the mode; "active" means not completed.
// Unknown modes behave like CompletionAll.
func FilterByCompletion(tasks []Task, mode CompletionFilter) []Task {
	switch mode {
	case CompletionActive:
		filtered := make([]Task, 0, len(tasks))
		for _, task := range tasks {
			if !task.Completed {
				filtered = append(filtered, task)
			}
		}
		return filtered
	case CompletionCompleted:
		filtered := make([]Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Completed {
				filtered = append(filtered, task)
			}
		}
		return filtered
	default:
		return tasks
	}
}

// GroupByDate groups tasks by their date. Each group is sorted by time of day,
// ascending; the lexical sort is correct because times are fixed-width HH:MM.
func GroupByDate(tasks []Task) map[string][]Task {
	groups := make(map[string][]Task)
	for _, task := range tasks {
		groups[task.Date] = append(groups[task.Date], task)
	}
	for date := range groups {
		group := groups[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Time < group[j].Time
		})
	}
	return groups
}

// SortedDates returns the group keys in ascending calendar order.
func SortedDates(groups map[string][]Task) []string {
	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// TasksForDate returns the tasks scheduled on the given date, sorted by time.
func TasksForDate(tasks []Task, date string) []Task {
	result := make([]Task, 0)
	for _, task := range tasks {
		if task.Date == date {
			result = append(result, task)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time < result[j].Time
	})
	return result
}

// ComputeProgress aggregates completion over the task set. Percent is rounded
// to the nearest integer and 0 when there are no tasks.
func ComputeProgress(tasks []Task) Progress {
	progress := Progress{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			progress.Completed++
		}
	}
	if progress.Total > 0 {
		progress.Percent = int(math.Round(float64(progress.Completed) / float64(progress.Total) * 100))
	}
	return progress
}

// DayMarkers computes the calendar day decoration for the given date: at most
// three priority markers, highest priority first. The sort is stable so tasks
// of equal priority keep their order.
func DayMarkers(tasks []Task, date string) []Priority {
	dayTasks := TasksForDate(tasks, date)
	sort.SliceStable(dayTasks, func(i, j int) bool {
		return priorityOrder[dayTasks[i].Priority] < priorityOrder[dayTasks[j].Priority]
	})

	markers := make([]Priority, 0, 3)
	for _, task := range dayTasks {
		markers = append(markers, task.Priority)
		if len(markers) == 3 {
			break
		}
	}
	return markers
}
