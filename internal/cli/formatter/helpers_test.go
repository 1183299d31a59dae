package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/hafazan/internal/domain"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

var fmtNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestRelativeDateFrom(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"later today", fmtNow.Add(10 * time.Hour), "Today"},
		{"tomorrow", fmtNow.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", fmtNow.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", fmtNow.AddDate(0, 0, 3), "In 3d"},
		{"3 days past", fmtNow.AddDate(0, 0, -3), "3d ago"},
		{"3 weeks future", fmtNow.AddDate(0, 0, 21), "In 3w"},
		{"3 months future", fmtNow.AddDate(0, 0, 90), "In 3mo"},
		{"2 weeks past", fmtNow.AddDate(0, 0, -14), "2w ago"},
		{"3 months past", fmtNow.AddDate(0, 0, -90), "3mo ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, fmtNow))
		})
	}
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Today", HumanDate(fmtNow.Add(time.Hour), fmtNow))
	assert.Equal(t, "Yesterday", HumanDate(fmtNow.AddDate(0, 0, -1), fmtNow))
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), fmtNow))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "0s"},
		{-5, "0s"},
		{42, "42s"},
		{60, "1m"},
		{125, "2m 5s"},
		{3600, "1h"},
		{3900, "1h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.sec), "sec=%d", tt.sec)
	}
}

func TestTargetLabel(t *testing.T) {
	assert.Equal(t, "Ayah 7", TargetLabel(domain.SingleVerse(7)))
	assert.Equal(t, "Ayahs 5-9", TargetLabel(domain.VerseRange(5, 9)))
	assert.Equal(t, "Ayah 3", TargetLabel(domain.VerseRange(3, 3)))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "01953a7b", stripANSI(TruncID("01953a7b-1234-7000-8000-000000000000")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONGER"}, [][]string{
		{StyleGreen.Render("wide cell"), "x"},
		{"y"},
	}))
	lines := splitLines(out)
	assert.Len(t, lines, 4)
	assert.Equal(t, "A          LONGER", lines[0])
	assert.Equal(t, "wide cell  x", lines[2])
	assert.Equal(t, "y          ", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
