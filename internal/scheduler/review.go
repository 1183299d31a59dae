package scheduler

import (
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// NextReviewDate is when a target reviewed (or memorized) at when is due again.
func NextReviewDate(when time.Time, settings domain.Settings) time.Time {
	return when.Add(settings.ReviewInterval())
}

// NewReviewEntry builds a review schedule entry with its range key filled in.
func NewReviewEntry(planID string, chapter int, target domain.ReviewTarget, date time.Time) domain.ReviewEntry {
	key := domain.RangeKey{PlanID: planID, Chapter: chapter, Target: target}
	return domain.ReviewEntry{
		Date:    date,
		Chapter: chapter,
		Target:  target,
		Key:     key.String(),
	}
}

// UpsertReview removes every entry for the same chapter and target dated
// after now, then appends entry. Entries dated at or before now stay as
// history, so at most one future entry exists per target afterwards.
func UpsertReview(schedule []domain.ReviewEntry, entry domain.ReviewEntry, now time.Time) []domain.ReviewEntry {
	kept := make([]domain.ReviewEntry, 0, len(schedule)+1)
	for _, e := range schedule {
		if e.Chapter == entry.Chapter && e.Target == entry.Target && e.Date.After(now) {
			continue
		}
		kept = append(kept, e)
	}
	return append(kept, entry)
}

// FutureReviews returns the entries dated after now, in schedule order.
func FutureReviews(schedule []domain.ReviewEntry, now time.Time) []domain.ReviewEntry {
	var out []domain.ReviewEntry
	for _, e := range schedule {
		if e.Date.After(now) {
			out = append(out, e)
		}
	}
	return out
}
