package scheduler

import (
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// CalendarItem is one scheduled verse on a calendar day.
type CalendarItem struct {
	Chapter   int
	Verse     int
	Completed bool
}

// CalendarReview is one review entry on a calendar day.
type CalendarReview struct {
	Chapter   int
	Target    domain.ReviewTarget
	Completed bool
}

// CalendarMonth holds a plan's work for one month keyed by day of month.
type CalendarMonth struct {
	Year    int
	Month   time.Month
	Days    map[int][]CalendarItem
	Reviews map[int][]CalendarReview
}

// BuildCalendar collects the schedule and review entries of a plan falling
// in the given month. A review counts as completed when a session exists on
// its calendar day.
func BuildCalendar(plan *domain.Plan, idx ProgressIndex, history map[string]*domain.ReviewHistory, year int, month time.Month) CalendarMonth {
	cal := CalendarMonth{
		Year:    year,
		Month:   month,
		Days:    make(map[int][]CalendarItem),
		Reviews: make(map[int][]CalendarReview),
	}
	if plan == nil {
		return cal
	}
	for _, e := range plan.Schedule {
		if e.Date.Year() != year || e.Date.Month() != month {
			continue
		}
		cal.Days[e.Date.Day()] = append(cal.Days[e.Date.Day()], CalendarItem{
			Chapter:   e.Chapter,
			Verse:     e.Verse,
			Completed: idx.IsMemorized(e.Chapter, e.Verse),
		})
	}
	for _, r := range plan.ReviewSchedule {
		if r.Date.Year() != year || r.Date.Month() != month {
			continue
		}
		key := plan.RangeKeyFor(r.Chapter, r.Target).String()
		_, done := history[key].CompletedOn(r.Date)
		cal.Reviews[r.Date.Day()] = append(cal.Reviews[r.Date.Day()], CalendarReview{
			Chapter:   r.Chapter,
			Target:    r.Target,
			Completed: done,
		})
	}
	return cal
}
