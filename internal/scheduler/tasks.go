package scheduler

import (
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

type verseRef struct {
	chapter int
	verse   int
}

// ProgressIndex answers memorization lookups for one plan.
type ProgressIndex struct {
	byVerse map[verseRef]domain.VerseProgress
}

// IndexProgress builds a lookup over memorized records.
func IndexProgress(progress []domain.VerseProgress) ProgressIndex {
	idx := ProgressIndex{byVerse: make(map[verseRef]domain.VerseProgress, len(progress))}
	for _, p := range progress {
		if p.Memorized {
			idx.byVerse[verseRef{p.Chapter, p.Verse}] = p
		}
	}
	return idx
}

// Lookup returns the memorized record for a verse.
func (idx ProgressIndex) Lookup(chapter, verse int) (domain.VerseProgress, bool) {
	p, ok := idx.byVerse[verseRef{chapter, verse}]
	return p, ok
}

func (idx ProgressIndex) IsMemorized(chapter, verse int) bool {
	_, ok := idx.Lookup(chapter, verse)
	return ok
}

func (idx ProgressIndex) Len() int {
	return len(idx.byVerse)
}

// HafazanTask is a schedule entry surfaced for memorization.
type HafazanTask struct {
	Entry       domain.ScheduleEntry
	CompletedAt *time.Time
}

// MurajaahTask is a review entry surfaced for today.
type MurajaahTask struct {
	Entry       domain.ReviewEntry
	CompletedAt *time.Time
}

// TodayTasks is the work list for one plan on one day.
type TodayTasks struct {
	Hafazan           []HafazanTask
	Murajaah          []MurajaahTask
	CompletedHafazan  []HafazanTask
	CompletedMurajaah []MurajaahTask
	CanProgress       bool
	NextAyah          *HafazanTask
}

// TaskInput carries the state ComputeTodayTasks reads.
type TaskInput struct {
	Plan     *domain.Plan
	Progress ProgressIndex
	// History maps RangeKey strings to completed review sessions.
	History map[string]*domain.ReviewHistory
	Today   time.Time
}

// ComputeTodayTasks derives today's memorization and review work.
//
// Memorization surfaces the single oldest entry due on or before today that
// is still unmemorized, so overdue work comes before new work. Only when
// nothing is due does it offer the next future entry as forward progress.
// Reviews surface only entries dated exactly today; an entry whose day has
// passed without completion is not carried forward.
func ComputeTodayTasks(in TaskInput) TodayTasks {
	var tasks TodayTasks
	if in.Plan == nil {
		return tasks
	}
	today := in.Today

	var pending *domain.ScheduleEntry
	pendingCount := 0
	for i := range in.Plan.Schedule {
		e := &in.Plan.Schedule[i]
		memorized, done := in.Progress.Lookup(e.Chapter, e.Verse)

		if domain.CompareDays(e.Date, today) <= 0 && !done {
			pendingCount++
			if pending == nil || domain.CompareDays(e.Date, pending.Date) < 0 {
				pending = e
			}
		}
		if done && domain.SameDay(e.Date, today) {
			at := memorized.MemorizedAt
			tasks.CompletedHafazan = append(tasks.CompletedHafazan, HafazanTask{Entry: *e, CompletedAt: &at})
		}
	}
	if pending != nil {
		tasks.Hafazan = append(tasks.Hafazan, HafazanTask{Entry: *pending})
	}

	if pendingCount == 0 {
		var next *domain.ScheduleEntry
		for i := range in.Plan.Schedule {
			e := &in.Plan.Schedule[i]
			if domain.CompareDays(e.Date, today) > 0 && !in.Progress.IsMemorized(e.Chapter, e.Verse) {
				if next == nil || domain.CompareDays(e.Date, next.Date) < 0 {
					next = e
				}
			}
		}
		if next != nil {
			tasks.CanProgress = true
			tasks.NextAyah = &HafazanTask{Entry: *next}
		}
	}

	for _, r := range in.Plan.ReviewSchedule {
		if !domain.SameDay(r.Date, today) {
			continue
		}
		key := domain.RangeKey{PlanID: in.Plan.ID, Chapter: r.Chapter, Target: r.Target}
		if session, ok := in.History[key.String()].CompletedOn(today); ok {
			at := session.CompletedAt
			tasks.CompletedMurajaah = append(tasks.CompletedMurajaah, MurajaahTask{Entry: r, CompletedAt: &at})
			continue
		}
		tasks.Murajaah = append(tasks.Murajaah, MurajaahTask{Entry: r})
	}

	return tasks
}
