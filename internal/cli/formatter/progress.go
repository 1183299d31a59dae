package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for a 0..100 percentage.
// Green from two thirds up, yellow from one third, red below.
func RenderProgress(pct float64, width int) string {
	frac := min(max(pct/100, 0), 1)
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(frac, width), frac*100)
}

// RenderCompactBar renders only the colored blocks for a 0..1 fraction.
func RenderCompactBar(frac float64, width int) string {
	frac = min(max(frac, 0), 1)
	width = max(width, 2)
	filled := min(int(frac*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case frac < 0.33:
		style = StyleRed
	case frac < 0.66:
		style = StyleYellow
	}
	return style.Render(bar)
}

// RenderRepetitionDots draws one dot per repetition of a drill, filled for
// those already done, e.g. ●●●○○○○○.
func RenderRepetitionDots(completed, total int) string {
	completed = min(max(completed, 0), total)
	return StyleGreen.Render(strings.Repeat("●", completed)) + Dim(strings.Repeat("○", total-completed))
}
