package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

// PlanSummary pairs a plan with its completed share for list views.
type PlanSummary struct {
	Plan     *domain.Plan
	Progress *scheduler.PlanProgress
}

// FormatChapters renders the chapters available for new plans.
func FormatChapters(chapters []domain.Chapter) string {
	headers := []string{"#", "NAME", "ARABIC", "MEANING", "AYAHS", "REVEALED"}
	rows := make([][]string, 0, len(chapters))
	for _, c := range chapters {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Number),
			Bold(c.Name),
			c.NativeName,
			Dim(c.EnglishTranslation),
			fmt.Sprintf("%d", c.VerseCount),
			Dim(c.RevelationType),
		})
	}
	return RenderBox("Chapters", RenderTable(headers, rows))
}

// FormatPlanList renders every plan with its status and progress bar.
func FormatPlanList(plans []PlanSummary) string {
	headers := []string{"ID", "SURAH", "PACE", "PROGRESS", "STATUS"}
	rows := make([][]string, 0, len(plans))
	for _, s := range plans {
		p := s.Plan
		progress := Dim("--")
		if s.Progress != nil {
			progress = fmt.Sprintf("%s %s",
				RenderProgress(s.Progress.Percentage, 12),
				Dim(fmt.Sprintf("%d/%d", s.Progress.Completed, s.Progress.Total)))
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(fmt.Sprintf("%d. %s", p.ChapterNumber, p.ChapterName)),
			fmt.Sprintf("%d/day", p.VersesPerDay),
			progress,
			PlanStatusPill(p),
		})
	}
	return RenderBox("Plans", RenderTable(headers, rows))
}

// PlanDetail holds everything shown by the plan detail card.
type PlanDetail struct {
	Plan       *domain.Plan
	Progress   *scheduler.PlanProgress
	Completion *scheduler.CompletionStatus
	Now        time.Time
}

// FormatPlanDetail renders a plan card with schedule bounds and progress.
func FormatPlanDetail(d PlanDetail) string {
	p := d.Plan
	var b strings.Builder

	title := Bold(fmt.Sprintf("%d. %s", p.ChapterNumber, p.ChapterName))
	if p.ChapterNameNative != "" {
		title += "  " + StyleArabic.Render(p.ChapterNameNative)
	}
	b.WriteString(title + "\n\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value)
	}
	row("ID", p.ID)
	row("Status", PlanStatusPill(p))
	row("Pace", fmt.Sprintf("%d ayahs/day over %d days", p.VersesPerDay, p.EstimatedDays()))
	row("Started", HumanDate(p.StartDate, d.Now))
	if end, ok := p.LastScheduledDate(); ok {
		row("Ends", fmt.Sprintf("%s %s", HumanDate(end, d.Now), Dim("("+RelativeDateFrom(end, d.Now)+")")))
	}
	if d.Progress != nil {
		row("Progress", fmt.Sprintf("%s %s",
			RenderProgress(d.Progress.Percentage, 20),
			Dim(fmt.Sprintf("%d/%d ayahs", d.Progress.Completed, d.Progress.Total))))
	}
	row("Reviews", fmt.Sprintf("%d scheduled", len(scheduler.FutureReviews(p.ReviewSchedule, d.Now))))

	if p.CompletedAt != nil {
		row("Completed", HumanDate(*p.CompletedAt, d.Now))
		level := scheduler.Achievement(p.DaysEarly)
		row("Result", fmt.Sprintf("%s %s", AchievementBadge(level), Dim(daysEarlyText(p.DaysEarly))))
	} else if d.Completion != nil && d.Completion.Completed {
		b.WriteString("\n" + StyleGreen.Render("All ayahs memorized. Run 'hafazan plan complete' to close the plan.") + "\n")
	}

	return RenderBox("Plan", b.String())
}

// FormatCompletion renders the result of closing a finished plan.
func FormatCompletion(p *domain.Plan, st *scheduler.CompletionStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", StyleGreen.Render("✔"), Bold("Completed "+p.ChapterName))
	fmt.Fprintf(&b, "%s %s\n", AchievementBadge(scheduler.Achievement(st.DaysEarly)), Dim(daysEarlyText(st.DaysEarly)))
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("Finished %s, scheduled for %s",
		domain.DayKey(st.CompletionDate), domain.DayKey(st.OriginalEndDate))))
	return RenderBox("Plan Complete", b.String())
}

func daysEarlyText(days int) string {
	switch days {
	case 0:
		return "finished on schedule"
	case 1:
		return "1 day early"
	}
	return fmt.Sprintf("%d days early", days)
}
