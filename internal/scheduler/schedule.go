package scheduler

import (
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// BuildSchedule assigns verses 1..totalVerses of a chapter to consecutive
// calendar days starting at startDate, versesPerDay per day. The last day
// receives the remainder. A pace below 1 is treated as 1.
func BuildSchedule(chapter, totalVerses int, startDate time.Time, versesPerDay int) []domain.ScheduleEntry {
	if totalVerses <= 0 {
		return nil
	}
	if versesPerDay < 1 {
		versesPerDay = 1
	}

	day := domain.DateOf(startDate)
	entries := make([]domain.ScheduleEntry, 0, totalVerses)
	for verse := 1; verse <= totalVerses; verse++ {
		offset := (verse - 1) / versesPerDay
		entries = append(entries, domain.ScheduleEntry{
			Date:    day.AddDate(0, 0, offset),
			Chapter: chapter,
			Verse:   verse,
		})
	}
	return entries
}
