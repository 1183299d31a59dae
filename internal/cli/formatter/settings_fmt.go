package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// FormatSettings renders the learner settings grouped by section.
func FormatSettings(s domain.Settings) string {
	var b strings.Builder
	for _, sec := range []struct {
		name string
		typ  domain.SessionType
		cfg  domain.RepetitionConfig
	}{
		{"Hafazan", domain.SessionHafazan, s.Hafazan},
		{"Murajaah", domain.SessionMurajaah, s.Murajaah},
	} {
		b.WriteString(Header(sec.name) + "\n")
		rows := [][]string{
			{string(sec.typ) + ".visibleSets", fmt.Sprint(sec.cfg.VisibleSets)},
			{string(sec.typ) + ".repetitionsPerVisibleSet", fmt.Sprint(sec.cfg.RepetitionsPerVisibleSet)},
			{string(sec.typ) + ".hiddenSets", fmt.Sprint(sec.cfg.HiddenSets)},
			{string(sec.typ) + ".repetitionsPerHiddenSet", fmt.Sprint(sec.cfg.RepetitionsPerHiddenSet)},
		}
		writeSettingRows(&b, rows)
		fmt.Fprintf(&b, "  %s\n\n", Dim(fmt.Sprintf("%d repetitions per drill", sec.cfg.TotalReps())))
	}

	g := s.General
	b.WriteString(Header("General") + "\n")
	writeSettingRows(&b, [][]string{
		{"general.autoPlayAudio", fmt.Sprint(g.AutoPlayAudio)},
		{"general.showAudioPlayer", fmt.Sprint(g.ShowAudioPlayer)},
		{"general.showTransliteration", fmt.Sprint(g.ShowTransliteration)},
		{"general.showTranslation", fmt.Sprint(g.ShowTranslation)},
		{"general.enableMurajaah", fmt.Sprint(g.MurajaahEnabled)},
		{"general.murajaahFrequency", fmt.Sprintf("%d days", g.MurajaahFrequencyDays)},
		{"general.murajaahRangeSize", fmt.Sprintf("%d ayahs", g.MurajaahRangeSize)},
	})
	return RenderBox("Settings", b.String())
}

func writeSettingRows(b *strings.Builder, rows [][]string) {
	for _, r := range rows {
		fmt.Fprintf(b, "  %-36s %s\n", r[0], StyleBold.Render(r[1]))
	}
}
