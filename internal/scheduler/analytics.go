package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// StreakData summarizes day-over-day memorization consistency.
type StreakData struct {
	Current int
	Longest int
}

// Streak computes current and longest streaks over the distinct calendar
// days on which verses were memorized. The current streak is zero unless the
// most recent day is today or yesterday.
func Streak(progress []domain.VerseProgress, today time.Time) StreakData {
	days := distinctDays(progress)
	if len(days) == 0 {
		return StreakData{}
	}

	var s StreakData
	if gap := domain.DaysBetween(days[0], today); gap == 0 || gap == 1 {
		s.Current = 1
		for i := 1; i < len(days); i++ {
			if domain.DaysBetween(days[i], days[i-1]) != 1 {
				break
			}
			s.Current++
		}
	}

	run := 1
	s.Longest = 1
	for i := 1; i < len(days); i++ {
		if domain.DaysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		s.Longest = max(s.Longest, run)
	}
	return s
}

// distinctDays returns the memorization days newest first.
func distinctDays(progress []domain.VerseProgress) []time.Time {
	seen := make(map[string]bool)
	var days []time.Time
	for _, p := range progress {
		if !p.Memorized {
			continue
		}
		key := p.Day
		if key == "" {
			key = domain.DayKey(p.MemorizedAt)
		}
		if seen[key] {
			continue
		}
		d, err := domain.ParseDay(key)
		if err != nil {
			continue
		}
		seen[key] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// CompletionStatus describes whether and how early a plan was finished.
type CompletionStatus struct {
	Completed       bool
	Progress        int
	Total           int
	CompletionDate  time.Time
	OriginalEndDate time.Time
	DaysEarly       int
	CompletedEarly  bool
}

// ComputeCompletion derives a plan's completion status from its progress.
// The latest MemorizedAt is the completion moment; days early is measured
// against the last scheduled date and never reported below zero.
func ComputeCompletion(plan *domain.Plan, progress []domain.VerseProgress) CompletionStatus {
	idx := IndexProgress(progress)
	st := CompletionStatus{Progress: idx.Len(), Total: plan.TotalVerses}
	if idx.Len() < plan.TotalVerses || idx.Len() == 0 {
		return st
	}
	st.Completed = true

	for _, p := range idx.byVerse {
		if p.MemorizedAt.After(st.CompletionDate) {
			st.CompletionDate = p.MemorizedAt
		}
	}
	end, ok := plan.LastScheduledDate()
	if !ok {
		return st
	}
	st.OriginalEndDate = end

	days := int(math.Ceil(end.Sub(st.CompletionDate).Hours() / 24))
	if days > 0 {
		st.DaysEarly = days
		st.CompletedEarly = true
	}
	return st
}

// Achievement maps days finished ahead of schedule to a tier.
func Achievement(daysEarly int) domain.AchievementLevel {
	switch {
	case daysEarly >= 14:
		return domain.AchievementExceptional
	case daysEarly >= 7:
		return domain.AchievementExcellent
	case daysEarly >= 3:
		return domain.AchievementGreat
	case daysEarly >= 1:
		return domain.AchievementGood
	default:
		return domain.AchievementCompleted
	}
}

// PlanProgress is the completed share of a plan's verses.
type PlanProgress struct {
	Completed  int
	Total      int
	Percentage float64
}

func ComputeProgress(plan *domain.Plan, progress []domain.VerseProgress) PlanProgress {
	p := PlanProgress{Completed: IndexProgress(progress).Len(), Total: plan.TotalVerses}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// OverallStats aggregates progress across every plan.
type OverallStats struct {
	Plans          int
	ActivePlans    int
	CompletedPlans int
	TotalVerses    int
	Memorized      int
	Percentage     float64
	// AverageDaily is memorized verses per distinct day with any memorization.
	AverageDaily float64
}

// ComputeOverall folds per-plan progress into OverallStats. progress maps
// plan IDs to that plan's records.
func ComputeOverall(plans []domain.Plan, progress map[string][]domain.VerseProgress) OverallStats {
	var st OverallStats
	var all []domain.VerseProgress
	for i := range plans {
		p := &plans[i]
		st.Plans++
		if p.Active {
			st.ActivePlans++
		}
		if p.IsCompleted() {
			st.CompletedPlans++
		}
		pp := ComputeProgress(p, progress[p.ID])
		st.TotalVerses += pp.Total
		st.Memorized += pp.Completed
		all = append(all, progress[p.ID]...)
	}
	if st.TotalVerses > 0 {
		st.Percentage = float64(st.Memorized) / float64(st.TotalVerses) * 100
	}
	if days := len(distinctDays(all)); days > 0 {
		st.AverageDaily = float64(st.Memorized) / float64(days)
	}
	return st
}
