package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

const calendarCellWidth = 6

// FormatCalendar renders a month grid followed by the per-day agenda.
// Day cells are green when all scheduled ayahs are memorized, yellow when
// some are, and marked with * when a review falls on them.
func FormatCalendar(p *domain.Plan, cal *scheduler.CalendarMonth, today time.Time) string {
	var b strings.Builder
	first := time.Date(cal.Year, cal.Month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cell := lipgloss.NewStyle().Width(calendarCellWidth)
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(cell.Render(StyleHeader.Render(wd)))
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", int(first.Weekday())*calendarCellWidth))
	for day := 1; day <= daysInMonth; day++ {
		b.WriteString(cell.Render(calendarDay(cal, day, today)))
		if (int(first.Weekday())+day)%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")

	agenda := calendarAgenda(cal, daysInMonth)
	if agenda == "" {
		b.WriteString(Dim("Nothing scheduled this month."))
	} else {
		b.WriteString(agenda)
	}

	title := fmt.Sprintf("%s %d · %s", cal.Month, cal.Year, p.ChapterName)
	return RenderBox(title, b.String())
}

func calendarDay(cal *scheduler.CalendarMonth, day int, today time.Time) string {
	label := fmt.Sprintf("%2d", day)
	if len(cal.Reviews[day]) > 0 {
		label += "*"
	}

	items := cal.Days[day]
	done := 0
	for _, it := range items {
		if it.Completed {
			done++
		}
	}

	style := StyleFg
	switch {
	case len(items) == 0 && len(cal.Reviews[day]) == 0:
		style = StyleDim
	case len(items) > 0 && done == len(items):
		style = StyleGreen
	case done > 0:
		style = StyleYellow
	}
	if today.Year() == cal.Year && today.Month() == cal.Month && today.Day() == day {
		style = style.Underline(true).Bold(true)
	}
	return style.Render(label)
}

func calendarAgenda(cal *scheduler.CalendarMonth, daysInMonth int) string {
	var b strings.Builder
	for day := 1; day <= daysInMonth; day++ {
		items, reviews := cal.Days[day], cal.Reviews[day]
		if len(items) == 0 && len(reviews) == 0 {
			continue
		}
		parts := make([]string, 0, len(items)+len(reviews))
		for _, it := range items {
			parts = append(parts, checkmark(it.Completed)+" "+VerseRef(it.Chapter, it.Verse))
		}
		for _, r := range reviews {
			parts = append(parts, checkmark(r.Completed)+" "+StylePurple.Render("review "+r.Target.String()))
		}
		fmt.Fprintf(&b, "%s  %s\n", Dim(fmt.Sprintf("%2d", day)), strings.Join(parts, "  "))
	}
	return b.String()
}
