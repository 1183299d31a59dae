package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RepetitionConfig describes the visible/hidden drill sets for one session type.
type RepetitionConfig struct {
	VisibleSets              int
	RepetitionsPerVisibleSet int
	HiddenSets               int
	RepetitionsPerHiddenSet  int
}

// TotalReps is the number of repetitions needed to finish a drill.
func (c RepetitionConfig) TotalReps() int {
	return c.VisibleSets*c.RepetitionsPerVisibleSet + c.HiddenSets*c.RepetitionsPerHiddenSet
}

// RepsPerSet is the visible plus hidden repetitions performed in one set.
func (c RepetitionConfig) RepsPerSet() int {
	return c.RepetitionsPerVisibleSet + c.RepetitionsPerHiddenSet
}

// TotalSets is the number of sets a drill walks through.
func (c RepetitionConfig) TotalSets() int {
	return max(c.VisibleSets, c.HiddenSets)
}

// PositionFromReps maps a completed repetition count to the 1-based set and
// repetition where a resumed drill continues.
func (c RepetitionConfig) PositionFromReps(completed int) (set, rep int) {
	per := c.RepsPerSet()
	if completed <= 0 || per <= 0 {
		return 1, 1
	}
	return completed/per + 1, completed%per + 1
}

// PhaseAt returns whether the 1-based repetition within a set shows the text.
func (c RepetitionConfig) PhaseAt(rep int) Phase {
	if rep <= c.RepetitionsPerVisibleSet {
		return PhaseVisible
	}
	return PhaseHidden
}

func (c RepetitionConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"visible sets", c.VisibleSets},
		{"repetitions per visible set", c.RepetitionsPerVisibleSet},
		{"hidden sets", c.HiddenSets},
		{"repetitions per hidden set", c.RepetitionsPerHiddenSet},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative (got %d)", f.name, f.value)
		}
	}
	if c.TotalReps() == 0 {
		return fmt.Errorf("repetition config must require at least one repetition")
	}
	return nil
}

type GeneralSettings struct {
	AutoPlayAudio         bool
	ShowAudioPlayer       bool
	ShowTransliteration   bool
	ShowTranslation       bool
	MurajaahEnabled       bool
	MurajaahFrequencyDays int
	MurajaahRangeSize     int
}

// Settings is the learner's process-wide configuration.
type Settings struct {
	Hafazan  RepetitionConfig
	Murajaah RepetitionConfig
	General  GeneralSettings
}

// DefaultSettings returns the settings used before the learner saves any.
func DefaultSettings() Settings {
	return Settings{
		Hafazan: RepetitionConfig{
			VisibleSets:              3,
			RepetitionsPerVisibleSet: 2,
			HiddenSets:               2,
			RepetitionsPerHiddenSet:  1,
		},
		Murajaah: RepetitionConfig{
			VisibleSets:              1,
			RepetitionsPerVisibleSet: 1,
			HiddenSets:               1,
			RepetitionsPerHiddenSet:  1,
		},
		General: GeneralSettings{
			AutoPlayAudio:         true,
			ShowAudioPlayer:       true,
			ShowTransliteration:   true,
			ShowTranslation:       true,
			MurajaahEnabled:       true,
			MurajaahFrequencyDays: 7,
			MurajaahRangeSize:     5,
		},
	}
}

// Repetitions returns the drill config for a session type.
func (s Settings) Repetitions(t SessionType) RepetitionConfig {
	if t == SessionMurajaah {
		return s.Murajaah
	}
	return s.Hafazan
}

// RangeSize returns the maximum review range width, defaulting to 5.
func (s Settings) RangeSize() int {
	if s.General.MurajaahRangeSize < 1 {
		return 5
	}
	return s.General.MurajaahRangeSize
}

// ReviewInterval is the spacing between consecutive reviews of a range.
func (s Settings) ReviewInterval() time.Duration {
	days := s.General.MurajaahFrequencyDays
	if days < 1 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

func (s Settings) Validate() error {
	if err := s.Hafazan.Validate(); err != nil {
		return fmt.Errorf("hafazan: %w", err)
	}
	if err := s.Murajaah.Validate(); err != nil {
		return fmt.Errorf("murajaah: %w", err)
	}
	if s.General.MurajaahFrequencyDays < 1 {
		return fmt.Errorf("murajaah frequency must be at least 1 day")
	}
	if s.General.MurajaahRangeSize < 1 {
		return fmt.Errorf("murajaah range size must be at least 1 verse")
	}
	return nil
}

// SettingKeys lists the dotted keys accepted by Apply.
var SettingKeys = []string{
	"hafazan.visibleSets", "hafazan.repetitionsPerVisibleSet",
	"hafazan.hiddenSets", "hafazan.repetitionsPerHiddenSet",
	"murajaah.visibleSets", "murajaah.repetitionsPerVisibleSet",
	"murajaah.hiddenSets", "murajaah.repetitionsPerHiddenSet",
	"general.autoPlayAudio", "general.showAudioPlayer",
	"general.showTransliteration", "general.showTranslation",
	"general.enableMurajaah", "general.murajaahFrequency", "general.murajaahRangeSize",
}

// Apply sets one dotted key (e.g. "general.murajaahFrequency") from its
// string form. The result is not validated; call Validate before saving.
func (s *Settings) Apply(key, value string) error {
	section, field, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("setting key %q must look like section.field", key)
	}

	switch section {
	case "hafazan", "murajaah":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("setting %s: %q is not an integer", key, value)
		}
		cfg := &s.Hafazan
		if section == "murajaah" {
			cfg = &s.Murajaah
		}
		switch field {
		case "visibleSets":
			cfg.VisibleSets = n
		case "repetitionsPerVisibleSet":
			cfg.RepetitionsPerVisibleSet = n
		case "hiddenSets":
			cfg.HiddenSets = n
		case "repetitionsPerHiddenSet":
			cfg.RepetitionsPerHiddenSet = n
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
		return nil
	case "general":
		return s.General.apply(key, field, value)
	default:
		return fmt.Errorf("unknown setting section %q", section)
	}
}

func (g *GeneralSettings) apply(key, field, value string) error {
	switch field {
	case "murajaahFrequency", "murajaahRangeSize":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("setting %s: %q is not an integer", key, value)
		}
		if field == "murajaahFrequency" {
			g.MurajaahFrequencyDays = n
		} else {
			g.MurajaahRangeSize = n
		}
		return nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("setting %s: %q is not a boolean", key, value)
	}
	switch field {
	case "autoPlayAudio":
		g.AutoPlayAudio = b
	case "showAudioPlayer":
		g.ShowAudioPlayer = b
	case "showTransliteration":
		g.ShowTransliteration = b
	case "showTranslation":
		g.ShowTranslation = b
	case "enableMurajaah":
		g.MurajaahEnabled = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
