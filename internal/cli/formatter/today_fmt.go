package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

// FormatToday renders one plan's work list for a day.
func FormatToday(p *domain.Plan, tasks *scheduler.TodayTasks, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(p.ChapterName), Dim(today.Format("Monday, Jan 2")))

	b.WriteString(Header("Hafazan") + "\n")
	switch {
	case len(tasks.Hafazan) > 0:
		for _, t := range tasks.Hafazan {
			due := Dim("due today")
			if domain.CompareDays(t.Entry.Date, today) < 0 {
				due = StyleRed.Render("overdue since " + HumanDate(t.Entry.Date, today))
			}
			fmt.Fprintf(&b, "  %s %s  %s\n", StyleYellow.Render("○"), Bold("Ayah "+fmt.Sprint(t.Entry.Verse)), due)
		}
	case tasks.CanProgress && tasks.NextAyah != nil:
		fmt.Fprintf(&b, "  %s\n", StyleGreen.Render("Today's ayahs are done."))
		fmt.Fprintf(&b, "  %s %s  %s\n", StyleBlue.Render("→"), Bold("Ayah "+fmt.Sprint(tasks.NextAyah.Entry.Verse)),
			Dim("ahead of schedule ("+HumanDate(tasks.NextAyah.Entry.Date, today)+")"))
	default:
		fmt.Fprintf(&b, "  %s\n", Dim("Nothing to memorize."))
	}
	for _, t := range tasks.CompletedHafazan {
		fmt.Fprintf(&b, "  %s %s  %s\n", StyleGreen.Render("✔"), "Ayah "+fmt.Sprint(t.Entry.Verse), Dim(completedAt(t.CompletedAt)))
	}

	b.WriteString("\n" + Header("Murajaah") + "\n")
	if len(tasks.Murajaah) == 0 && len(tasks.CompletedMurajaah) == 0 {
		fmt.Fprintf(&b, "  %s\n", Dim("No reviews today."))
	}
	for _, t := range tasks.Murajaah {
		fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("○"), Bold(TargetLabel(t.Entry.Target)))
	}
	for _, t := range tasks.CompletedMurajaah {
		fmt.Fprintf(&b, "  %s %s  %s\n", StyleGreen.Render("✔"), TargetLabel(t.Entry.Target), Dim(completedAt(t.CompletedAt)))
	}

	return RenderBox("Today", b.String())
}

func completedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return "at " + t.Format("15:04")
}
