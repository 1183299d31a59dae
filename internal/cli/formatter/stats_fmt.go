package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

// PlanStats holds the analytics shown for a single plan.
type PlanStats struct {
	Plan       *domain.Plan
	Progress   *scheduler.PlanProgress
	Streak     *scheduler.StreakData
	Completion *scheduler.CompletionStatus
	NextSteps  *scheduler.NextSteps
}

// FormatPlanStats renders progress, streaks and post-completion guidance.
func FormatPlanStats(s PlanStats) string {
	var b strings.Builder
	b.WriteString(Bold(s.Plan.ChapterName) + "\n\n")

	if s.Progress != nil {
		fmt.Fprintf(&b, "%s %s  %s\n", StyleDim.Render("Progress "),
			RenderProgress(s.Progress.Percentage, 24),
			Dim(fmt.Sprintf("%d/%d", s.Progress.Completed, s.Progress.Total)))
	}
	if s.Streak != nil {
		fmt.Fprintf(&b, "%s %s  %s\n", StyleDim.Render("Streak   "),
			StyleYellow.Render(pluralDays(s.Streak.Current)),
			Dim("longest "+pluralDays(s.Streak.Longest)))
	}
	if s.Completion != nil && s.Completion.Completed {
		fmt.Fprintf(&b, "%s %s  %s\n", StyleDim.Render("Result   "),
			AchievementBadge(scheduler.Achievement(s.Completion.DaysEarly)),
			Dim(daysEarlyText(s.Completion.DaysEarly)))
	}

	if n := s.NextSteps; n != nil {
		b.WriteString("\n" + Header("Next steps") + "\n")
		if n.MurajaahContinues {
			fmt.Fprintf(&b, "  %s\n", Dim("Murajaah of this surah continues on its schedule."))
		}
		if n.HasOtherActivePlans {
			fmt.Fprintf(&b, "  %s\n", Dim("Another plan is in progress."))
		}
		for _, sg := range n.Suggestions {
			fmt.Fprintf(&b, "  %s %s  %s\n", StyleBlue.Render("→"),
				Bold(fmt.Sprintf("%d. %s", sg.Chapter, sg.Name)), Dim(sg.Reason))
		}
	}
	return RenderBox("Stats", b.String())
}

// FormatOverallStats renders totals across every plan.
func FormatOverallStats(st *scheduler.OverallStats) string {
	headers := []string{"PLANS", "ACTIVE", "COMPLETED", "AYAHS", "MEMORIZED", "AVG/DAY"}
	rows := [][]string{{
		fmt.Sprintf("%d", st.Plans),
		fmt.Sprintf("%d", st.ActivePlans),
		fmt.Sprintf("%d", st.CompletedPlans),
		fmt.Sprintf("%d", st.TotalVerses),
		fmt.Sprintf("%d", st.Memorized),
		fmt.Sprintf("%.1f", st.AverageDaily),
	}}
	body := RenderTable(headers, rows) + "\n" + RenderProgress(st.Percentage, 30)
	return RenderBox("Overall", body)
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
