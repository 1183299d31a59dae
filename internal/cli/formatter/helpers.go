package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content) + "\n"
	}
	return boxStyle.Render(content) + "\n"
}

// RelativeDateFrom returns a human-friendly relative date string measured
// in calendar days from now.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := domain.DaysBetween(now, t)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// HumanDate returns "Today", "Yesterday" or a short absolute date.
func HumanDate(t time.Time, now time.Time) string {
	switch domain.DaysBetween(now, t) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatDuration converts drill seconds into a compact form like 1h 5m or 42s.
func FormatDuration(sec int) string {
	if sec <= 0 {
		return "0s"
	}
	h, m, s := sec/3600, sec/60%60, sec%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// TargetLabel renders a review target as "Ayah 7" or "Ayahs 5-9".
func TargetLabel(t domain.ReviewTarget) string {
	if t.IsRange() && t.Start != t.End {
		return fmt.Sprintf("Ayahs %d-%d", t.Start, t.End)
	}
	return fmt.Sprintf("Ayah %d", t.Start)
}

// VerseRef renders chapter:verse.
func VerseRef(chapter, verse int) string {
	return fmt.Sprintf("%d:%d", chapter, verse)
}

func checkmark(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return Dim("·")
}
