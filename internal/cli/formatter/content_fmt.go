package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// FormatSessionText renders the Arabic text and translation for a drill.
func FormatSessionText(st *domain.SessionText, showTranslation bool) string {
	var b strings.Builder
	b.WriteString(StyleArabic.Render(st.Arabic) + "\n")
	if showTranslation && st.Translation != "" {
		b.WriteString("\n" + StyleFg.Render(st.Translation) + "\n")
	}
	title := fmt.Sprintf("%s · %s", st.ChapterName, TargetLabel(st.Target))
	return RenderBox(title, b.String())
}

// ReviewRangeRow is one review range with its next scheduled date.
type ReviewRangeRow struct {
	Range domain.MemorizedRange
	Next  *time.Time
	Last  *time.Time
}

// FormatReviewRanges renders the plan's review ranges and their schedule.
func FormatReviewRanges(rows []ReviewRangeRow, now time.Time) string {
	headers := []string{"SURAH", "AYAHS", "SIZE", "LAST REVIEW", "NEXT REVIEW"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		last, next := Dim("never"), Dim("--")
		if r.Last != nil {
			last = RelativeDateFrom(*r.Last, now)
		}
		if r.Next != nil {
			next = StylePurple.Render(RelativeDateFrom(*r.Next, now))
		}
		out = append(out, []string{
			fmt.Sprintf("%d", r.Range.Chapter),
			Bold(r.Range.Target().String()),
			fmt.Sprintf("%d", r.Range.Size()),
			last,
			next,
		})
	}
	return RenderBox("Review Ranges", RenderTable(headers, out))
}
