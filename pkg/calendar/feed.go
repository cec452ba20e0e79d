package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/planhive/planhive/pkg/event"
	"github.com/planhive/planhive/pkg/task"
)

const productId = "-//Planhive//Task Calendar//EN"

// taskDuration is the calendar block reserved per task; tasks carry only a
// start time.
const taskDuration = time.Hour

// BuildFeed renders the event's tasks as an ICS calendar, one VEVENT per task.
// Tasks with dates or times that fail to parse are skipped rather than
// corrupting the whole feed.
func BuildFeed(ev event.Event, tasks []task.Task, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productId)
	cal.SetName(fmt.Sprintf("%s tasks", ev.Name))

	for _, t := range tasks {
		start, err := time.ParseInLocation("2006-01-02 15:04", t.Date+" "+t.Time, time.Local)
		if err != nil {
			continue
		}

		vevent := cal.AddEvent(fmt.Sprintf("%s@planhive", t.Id))
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(taskDuration))
		vevent.SetSummary(t.Title)
		if t.Description != "" {
			vevent.SetDescription(t.Description)
		}
		if t.Category != "" {
			vevent.SetProperty(ical.ComponentProperty(ical.PropertyCategories), t.Category)
		}
		if t.Completed {
			vevent.SetStatus(ical.ObjectStatusCompleted)
		} else {
			vevent.SetStatus(ical.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize(), nil
}
