package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	// StyleArabic renders verse text; terminals handle the right-to-left
	// shaping themselves.
	StyleArabic = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PlanStatusPill returns a colored indicator for a plan's lifecycle state.
func PlanStatusPill(p *domain.Plan) string {
	switch {
	case p.IsCompleted():
		return StyleDim.Render("✔ Completed")
	case p.Active:
		return StyleGreen.Render("● Active")
	default:
		return StyleBlue.Render("○ Paused")
	}
}

// PhaseBadge marks whether the current repetition shows the text.
func PhaseBadge(phase domain.Phase) string {
	if phase == domain.PhaseHidden {
		return StylePurple.Render("◌ HIDDEN")
	}
	return StyleBlue.Render("◉ VISIBLE")
}

// AchievementBadge renders a completion tier with its color.
func AchievementBadge(level domain.AchievementLevel) string {
	label := strings.ToUpper(string(level))
	switch level {
	case domain.AchievementExceptional:
		return StylePurple.Render("★ " + label)
	case domain.AchievementExcellent:
		return StyleGreen.Render("★ " + label)
	case domain.AchievementGreat:
		return StyleYellow.Render("☆ " + label)
	case domain.AchievementGood:
		return StyleBlue.Render("☆ " + label)
	default:
		return StyleFg.Render("✔ " + label)
	}
}

// SessionTypeBadge labels a drill as memorization or review.
func SessionTypeBadge(t domain.SessionType) string {
	if t == domain.SessionMurajaah {
		return StylePurple.Render("murajaah")
	}
	return StyleBlue.Render("hafazan")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
