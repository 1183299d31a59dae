package domain

import "time"

// VerseProgress records that a verse of a plan was memorized.
type VerseProgress struct {
	PlanID      string
	Chapter     int
	Verse       int
	Memorized   bool
	MemorizedAt time.Time
	// Day is the calendar day of MemorizedAt in DateLayout.
	Day string
}

// NewVerseProgress builds a memorized record stamped at when.
func NewVerseProgress(planID string, chapter, verse int, when time.Time) VerseProgress {
	return VerseProgress{
		PlanID:      planID,
		Chapter:     chapter,
		Verse:       verse,
		Memorized:   true,
		MemorizedAt: when,
		Day:         DayKey(when),
	}
}

// MemorizedRange is a run of consecutive memorized verses within one chapter.
type MemorizedRange struct {
	Chapter int
	Start   int
	End     int
	Verses  []VerseProgress
}

// Target returns the range as a review target.
func (r MemorizedRange) Target() ReviewTarget {
	return VerseRange(r.Start, r.End)
}

func (r MemorizedRange) Size() int {
	return r.End - r.Start + 1
}

// Contains reports whether verse of chapter lies in the range.
func (r MemorizedRange) Contains(chapter, verse int) bool {
	return r.Chapter == chapter && verse >= r.Start && verse <= r.End
}

// ReviewSession is one completed murajaah of a target.
type ReviewSession struct {
	CompletedAt time.Time
	Day         string
}

// ReviewHistory holds every completed session for one range key.
type ReviewHistory struct {
	Key      RangeKey
	Sessions []ReviewSession
}

// CompletedOn returns the first session completed on the calendar day of t.
func (h *ReviewHistory) CompletedOn(t time.Time) (ReviewSession, bool) {
	if h == nil {
		return ReviewSession{}, false
	}
	for _, s := range h.Sessions {
		if SameDay(s.CompletedAt, t) {
			return s, true
		}
	}
	return ReviewSession{}, false
}

// LastCompleted returns the most recent completion time, if any.
func (h *ReviewHistory) LastCompleted() *time.Time {
	if h == nil || len(h.Sessions) == 0 {
		return nil
	}
	last := h.Sessions[0].CompletedAt
	for _, s := range h.Sessions[1:] {
		if s.CompletedAt.After(last) {
			last = s.CompletedAt
		}
	}
	return &last
}
