package domain

import (
	"fmt"
	"time"
)

// ScheduleEntry assigns one verse to one calendar day.
type ScheduleEntry struct {
	Date    time.Time
	Chapter int
	Verse   int
}

// ReviewEntry is one scheduled murajaah session. Date keeps its time of day:
// it is derived from the completion moment plus the review frequency.
type ReviewEntry struct {
	Date    time.Time
	Chapter int
	Target  ReviewTarget
	Key     string
}

type Plan struct {
	ID                string
	ChapterNumber     int
	ChapterName       string
	ChapterNameNative string
	TotalVerses       int
	StartDate         time.Time
	VersesPerDay      int
	Schedule          []ScheduleEntry
	ReviewSchedule    []ReviewEntry
	Active            bool
	Status            PlanStatus
	CompletedAt       *time.Time
	DaysEarly         int
	CompletedEarly    bool
	CreatedAt         time.Time
}

// Validate checks the identity fields a plan needs before it is scheduled.
func (p *Plan) Validate() error {
	if p.ChapterNumber < 1 || p.ChapterNumber > ChapterCount {
		return fmt.Errorf("%w: got %d", ErrInvalidChapter, p.ChapterNumber)
	}
	if p.VersesPerDay < 1 || p.VersesPerDay > MaxVersesPerDay {
		return fmt.Errorf("%w: got %d", ErrInvalidPace, p.VersesPerDay)
	}
	if p.TotalVerses < 1 {
		return fmt.Errorf("plan for chapter %d has no verses", p.ChapterNumber)
	}
	return nil
}

// LastScheduledDate returns the date of the final schedule entry, the
// plan's original end date.
func (p *Plan) LastScheduledDate() (time.Time, bool) {
	if len(p.Schedule) == 0 {
		return time.Time{}, false
	}
	return p.Schedule[len(p.Schedule)-1].Date, true
}

// EstimatedDays returns how many calendar days the schedule spans.
func (p *Plan) EstimatedDays() int {
	if p.VersesPerDay < 1 {
		return p.TotalVerses
	}
	return (p.TotalVerses + p.VersesPerDay - 1) / p.VersesPerDay
}

// IsCompleted reports whether the plan has been marked completed.
func (p *Plan) IsCompleted() bool {
	return p.Status == PlanCompleted
}

// DisplayID returns the first 8 characters of the plan ID.
func (p *Plan) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// RangeKeyFor builds the review history key for a target in this plan.
func (p *Plan) RangeKeyFor(chapter int, target ReviewTarget) RangeKey {
	return RangeKey{PlanID: p.ID, Chapter: chapter, Target: target}
}
