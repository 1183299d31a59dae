package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/service"
)

// FormatActivityList renders the drill log, newest first as given.
func FormatActivityList(activities []*domain.Activity, now time.Time) string {
	headers := []string{"ID", "TYPE", "SURAH", "TARGET", "REPS", "TIME", "STARTED"}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		reps := RenderRepetitionDots(a.CompletedReps, a.TotalReps)
		if a.Completed {
			reps = StyleGreen.Render("✔ done")
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			SessionTypeBadge(a.SessionType),
			a.ChapterName,
			TargetLabel(a.Target),
			reps,
			FormatDuration(a.DurationSec),
			RelativeDateFrom(a.StartTime, now),
		})
	}
	return RenderBox("Activities", RenderTable(headers, rows))
}

// FormatActivity renders a single drill after a state change.
func FormatActivity(a *domain.Activity) string {
	status := fmt.Sprintf("%d/%d reps", a.CompletedReps, a.TotalReps)
	if a.Completed {
		status = StyleGreen.Render("completed")
	}
	return fmt.Sprintf("%s %s %s · %s · %s\n",
		TruncID(a.ID), SessionTypeBadge(a.SessionType),
		Bold(a.ChapterName+" "+TargetLabel(a.Target)),
		status, FormatDuration(a.DurationSec))
}

// FormatActivityStats renders drill log totals.
func FormatActivityStats(st *service.ActivityStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d  %s\n", StyleDim.Render("Sessions "), st.Total,
		Dim(fmt.Sprintf("(%d completed)", st.Completed)))
	fmt.Fprintf(&b, "%s %s %d  %s %d\n", StyleDim.Render("By type  "),
		SessionTypeBadge(domain.SessionHafazan), st.Hafazan,
		SessionTypeBadge(domain.SessionMurajaah), st.Murajaah)
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Time     "), FormatDuration(st.DurationSec))
	return b.String()
}

// FormatResumePoint describes where an unfinished drill picks up.
func FormatResumePoint(rp *service.ResumePoint) string {
	return fmt.Sprintf("Resume at set %d, repetition %d %s  %s\n",
		rp.Set, rp.Repetition, PhaseBadge(rp.Phase),
		RenderRepetitionDots(rp.CompletedReps, rp.TotalReps))
}
