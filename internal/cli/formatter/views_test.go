package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
	"github.com/alexanderramin/hafazan/internal/service"
	"github.com/alexanderramin/hafazan/internal/testutil"
)

func TestFormatPlanList(t *testing.T) {
	active := testutil.NewTestPlan(testutil.WithPlanID("0195aaaa-active"))
	active.Active = true
	done := testutil.NewTestPlan(testutil.WithPlanID("0195bbbb-done"), testutil.WithChapter(114, "An-Naas", 6))
	done.Status = domain.PlanCompleted

	out := stripANSI(FormatPlanList([]PlanSummary{
		{Plan: active, Progress: &scheduler.PlanProgress{Completed: 2, Total: 7, Percentage: 28.57}},
		{Plan: done},
	}))

	assert.Contains(t, out, "PLANS")
	assert.Contains(t, out, "0195aaaa")
	assert.Contains(t, out, "1. Al-Faatiha")
	assert.Contains(t, out, "2/7")
	assert.Contains(t, out, "● Active")
	assert.Contains(t, out, "114. An-Naas")
	assert.Contains(t, out, "✔ Completed")
}

func TestFormatPlanDetail_CompletedPlanShowsAchievement(t *testing.T) {
	p := testutil.NewTestPlan()
	finished := fmtNow
	p.Status = domain.PlanCompleted
	p.CompletedAt = &finished
	p.DaysEarly = 8

	out := stripANSI(FormatPlanDetail(PlanDetail{Plan: p, Now: fmtNow}))

	assert.Contains(t, out, "Al-Faatiha")
	assert.Contains(t, out, "EXCELLENT")
	assert.Contains(t, out, "8 days early")
}

func TestFormatPlanDetail_PromptsToCloseFinishedPlan(t *testing.T) {
	p := testutil.NewTestPlan()
	out := stripANSI(FormatPlanDetail(PlanDetail{
		Plan:       p,
		Progress:   &scheduler.PlanProgress{Completed: 7, Total: 7, Percentage: 100},
		Completion: &scheduler.CompletionStatus{Completed: true},
		Now:        fmtNow,
	}))
	assert.Contains(t, out, "hafazan plan complete")
	assert.Contains(t, out, "7/7 ayahs")
}

func TestFormatToday(t *testing.T) {
	p := testutil.NewTestPlan()
	memorizedAt := fmtNow.Add(-time.Hour)
	tasks := &scheduler.TodayTasks{
		Hafazan: []scheduler.HafazanTask{{Entry: domain.ScheduleEntry{Date: fmtNow.AddDate(0, 0, -2), Chapter: 1, Verse: 3}}},
		Murajaah: []scheduler.MurajaahTask{{
			Entry: domain.ReviewEntry{Date: fmtNow, Chapter: 1, Target: domain.VerseRange(1, 2)},
		}},
		CompletedHafazan: []scheduler.HafazanTask{{
			Entry:       domain.ScheduleEntry{Date: fmtNow, Chapter: 1, Verse: 2},
			CompletedAt: &memorizedAt,
		}},
	}

	out := stripANSI(FormatToday(p, tasks, fmtNow))

	assert.Contains(t, out, "Ayah 3")
	assert.Contains(t, out, "overdue since")
	assert.Contains(t, out, "Ayahs 1-2")
	assert.Contains(t, out, "at 08:00")
}

func TestFormatToday_ForwardProgress(t *testing.T) {
	p := testutil.NewTestPlan()
	next := scheduler.HafazanTask{Entry: domain.ScheduleEntry{Date: fmtNow.AddDate(0, 0, 1), Chapter: 1, Verse: 2}}

	out := stripANSI(FormatToday(p, &scheduler.TodayTasks{CanProgress: true, NextAyah: &next}, fmtNow))

	assert.Contains(t, out, "Today's ayahs are done.")
	assert.Contains(t, out, "ahead of schedule")
	assert.Contains(t, out, "No reviews today.")
}

func TestFormatCalendar(t *testing.T) {
	p := testutil.NewTestPlan()
	cal := &scheduler.CalendarMonth{
		Year:  2025,
		Month: time.March,
		Days: map[int][]scheduler.CalendarItem{
			10: {{Chapter: 1, Verse: 1, Completed: true}},
			11: {{Chapter: 1, Verse: 2}},
		},
		Reviews: map[int][]scheduler.CalendarReview{
			17: {{Chapter: 1, Target: domain.VerseRange(1, 1)}},
		},
	}

	out := stripANSI(FormatCalendar(p, cal, fmtNow))

	assert.Contains(t, out, "MARCH 2025")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "17*")
	assert.Contains(t, out, "✔ 1:1")
	assert.Contains(t, out, "· 1:2")
	assert.Contains(t, out, "review 1-1")
}

func TestFormatCalendar_EmptyMonth(t *testing.T) {
	p := testutil.NewTestPlan()
	cal := &scheduler.CalendarMonth{Year: 2025, Month: time.April}
	assert.Contains(t, stripANSI(FormatCalendar(p, cal, fmtNow)), "Nothing scheduled this month.")
}

func TestFormatPlanStats(t *testing.T) {
	p := testutil.NewTestPlan()
	out := stripANSI(FormatPlanStats(PlanStats{
		Plan:       p,
		Progress:   &scheduler.PlanProgress{Completed: 7, Total: 7, Percentage: 100},
		Streak:     &scheduler.StreakData{Current: 1, Longest: 4},
		Completion: &scheduler.CompletionStatus{Completed: true, DaysEarly: 3},
		NextSteps: &scheduler.NextSteps{
			MurajaahContinues: true,
			Suggestions:       scheduler.SuggestNext(7),
		},
	}))

	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "longest 4 days")
	assert.Contains(t, out, "GREAT")
	assert.Contains(t, out, "2. Al-Baqarah")
	assert.Contains(t, out, "Murajaah of this surah continues")
}

func TestFormatOverallStats(t *testing.T) {
	out := stripANSI(FormatOverallStats(&scheduler.OverallStats{
		Plans: 2, ActivePlans: 1, TotalVerses: 13, Memorized: 3, Percentage: 23.08, AverageDaily: 1.5,
	}))
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "23%")
}

func TestFormatActivities(t *testing.T) {
	a := &domain.Activity{
		ID:            "0195cccc-activity",
		ChapterName:   "Al-Faatiha",
		Target:        domain.SingleVerse(4),
		SessionType:   domain.SessionHafazan,
		StartTime:     fmtNow.AddDate(0, 0, -1),
		TotalReps:     8,
		CompletedReps: 3,
		DurationSec:   95,
	}
	out := stripANSI(FormatActivityList([]*domain.Activity{a}, fmtNow))
	assert.Contains(t, out, "0195cccc")
	assert.Contains(t, out, "hafazan")
	assert.Contains(t, out, "●●●○○○○○")
	assert.Contains(t, out, "1m 35s")
	assert.Contains(t, out, "Yesterday")

	stats := stripANSI(FormatActivityStats(&service.ActivityStats{Total: 3, Completed: 1, Hafazan: 2, Murajaah: 1, DurationSec: 120}))
	assert.Contains(t, stats, "(1 completed)")
	assert.Contains(t, stats, "2m")

	rp := stripANSI(FormatResumePoint(&service.ResumePoint{Set: 2, Repetition: 3, Phase: domain.PhaseHidden, CompletedReps: 5, TotalReps: 8}))
	assert.Contains(t, rp, "set 2, repetition 3")
	assert.Contains(t, rp, "HIDDEN")
}

func TestFormatSettings(t *testing.T) {
	out := stripANSI(FormatSettings(domain.DefaultSettings()))
	assert.Contains(t, out, "hafazan.visibleSets")
	assert.Contains(t, out, "8 repetitions per drill")
	assert.Contains(t, out, "2 repetitions per drill")
	assert.Contains(t, out, "general.murajaahFrequency")
	assert.Contains(t, out, "7 days")
}

func TestFormatSessionText(t *testing.T) {
	st := &domain.SessionText{
		ChapterName: "Al-Ikhlaas",
		Target:      domain.VerseRange(1, 2),
		Arabic:      "arabic-112:1 arabic-112:2",
		Translation: "(1) translation-112:1 (2) translation-112:2",
	}
	out := stripANSI(FormatSessionText(st, true))
	assert.Contains(t, out, "AL-IKHLAAS · AYAHS 1-2")
	assert.Contains(t, out, "arabic-112:1")
	assert.Contains(t, out, "(2) translation-112:2")

	assert.NotContains(t, stripANSI(FormatSessionText(st, false)), "translation-112")
}

func TestFormatReviewRanges(t *testing.T) {
	next := fmtNow.AddDate(0, 0, 3)
	out := stripANSI(FormatReviewRanges([]ReviewRangeRow{
		{Range: domain.MemorizedRange{Chapter: 1, Start: 1, End: 5}, Next: &next},
		{Range: domain.MemorizedRange{Chapter: 1, Start: 6, End: 7}},
	}, fmtNow))
	assert.Contains(t, out, "1-5")
	assert.Contains(t, out, "In 3d")
	assert.Contains(t, out, "never")
}
