package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// planDocument is the hafazan_plans document. Older installs stored a bare
// array of plans with a per-plan active flag; UnmarshalJSON accepts both.
type planDocument struct {
	ActivePlanID string       `json:"activePlanId,omitempty"`
	Plans        []planRecord `json:"plans"`
}

func (d *planDocument) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var plans []planRecord
		if err := json.Unmarshal(trimmed, &plans); err != nil {
			return err
		}
		d.Plans = plans
		d.ActivePlanID = ""
		for _, p := range plans {
			if p.Active != nil && *p.Active {
				d.ActivePlanID = p.ID
			}
		}
		return nil
	}
	type plain planDocument
	return json.Unmarshal(data, (*plain)(d))
}

type planRecord struct {
	ID               string           `json:"id"`
	SurahNumber      int              `json:"surahNumber"`
	SurahName        string           `json:"surahName"`
	SurahNameArabic  string           `json:"surahNameArabic,omitempty"`
	TotalAyahs       int              `json:"totalAyahs"`
	StartDate        time.Time        `json:"startDate"`
	AyahsPerDay      int              `json:"ayahsPerDay"`
	Schedule         []scheduleRecord `json:"schedule"`
	MurajaahSchedule []reviewRecord   `json:"murajaahSchedule,omitempty"`
	Active           *bool            `json:"active,omitempty"`
	Status           string           `json:"status,omitempty"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
	DaysEarly        int              `json:"daysEarly,omitempty"`
	CompletedEarly   bool             `json:"completedEarly,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type scheduleRecord struct {
	Date        time.Time `json:"date"`
	SurahNumber int       `json:"surahNumber"`
	AyahNumber  int       `json:"ayahNumber"`
}

// reviewRecord holds either startAyah/endAyah (range) or ayahNumber
// (legacy single verse).
type reviewRecord struct {
	Date        time.Time `json:"date"`
	SurahNumber int       `json:"surahNumber"`
	StartAyah   *int      `json:"startAyah,omitempty"`
	EndAyah     *int      `json:"endAyah,omitempty"`
	AyahNumber  *int      `json:"ayahNumber,omitempty"`
	Type        string    `json:"type"`
	RangeID     string    `json:"rangeId,omitempty"`
}

func (r reviewRecord) target() (domain.ReviewTarget, error) {
	switch {
	case r.StartAyah != nil && r.EndAyah != nil:
		return domain.VerseRange(*r.StartAyah, *r.EndAyah), nil
	case r.AyahNumber != nil:
		return domain.SingleVerse(*r.AyahNumber), nil
	default:
		return domain.ReviewTarget{}, fmt.Errorf("review entry for surah %d has no verse target", r.SurahNumber)
	}
}

func newReviewRecord(e domain.ReviewEntry) reviewRecord {
	rec := reviewRecord{
		Date:        e.Date,
		SurahNumber: e.Chapter,
		Type:        string(domain.SessionMurajaah),
	}
	if e.Target.IsRange() {
		rec.StartAyah = intPtr(e.Target.Start)
		rec.EndAyah = intPtr(e.Target.End)
		rec.RangeID = e.Key
	} else {
		rec.AyahNumber = intPtr(e.Target.Start)
	}
	return rec
}

func newPlanRecord(p *domain.Plan) planRecord {
	rec := planRecord{
		ID:              p.ID,
		SurahNumber:     p.ChapterNumber,
		SurahName:       p.ChapterName,
		SurahNameArabic: p.ChapterNameNative,
		TotalAyahs:      p.TotalVerses,
		StartDate:       p.StartDate,
		AyahsPerDay:     p.VersesPerDay,
		Schedule:        make([]scheduleRecord, 0, len(p.Schedule)),
		Status:          string(p.Status),
		CompletedAt:     p.CompletedAt,
		DaysEarly:       p.DaysEarly,
		CompletedEarly:  p.CompletedEarly,
		CreatedAt:       p.CreatedAt,
	}
	for _, e := range p.Schedule {
		rec.Schedule = append(rec.Schedule, scheduleRecord{Date: e.Date, SurahNumber: e.Chapter, AyahNumber: e.Verse})
	}
	for _, e := range p.ReviewSchedule {
		rec.MurajaahSchedule = append(rec.MurajaahSchedule, newReviewRecord(e))
	}
	return rec
}

// toDomain converts the record. Review entries without a usable target are
// returned in skipped rather than failing the whole plan.
func (r planRecord) toDomain(activeID string) (p *domain.Plan, skipped []error) {
	p = &domain.Plan{
		ID:                r.ID,
		ChapterNumber:     r.SurahNumber,
		ChapterName:       r.SurahName,
		ChapterNameNative: r.SurahNameArabic,
		TotalVerses:       r.TotalAyahs,
		StartDate:         r.StartDate,
		VersesPerDay:      r.AyahsPerDay,
		Schedule:          make([]domain.ScheduleEntry, 0, len(r.Schedule)),
		Active:            activeID != "" && r.ID == activeID,
		Status:            domain.PlanStatus(r.Status),
		CompletedAt:       r.CompletedAt,
		DaysEarly:         r.DaysEarly,
		CompletedEarly:    r.CompletedEarly,
		CreatedAt:         r.CreatedAt,
	}
	if p.Status == "" {
		p.Status = domain.PlanInProgress
	}
	for _, e := range r.Schedule {
		p.Schedule = append(p.Schedule, domain.ScheduleEntry{Date: e.Date, Chapter: e.SurahNumber, Verse: e.AyahNumber})
	}
	for _, e := range r.MurajaahSchedule {
		target, err := e.target()
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		key := domain.RangeKey{PlanID: r.ID, Chapter: e.SurahNumber, Target: target}
		p.ReviewSchedule = append(p.ReviewSchedule, domain.ReviewEntry{
			Date:    e.Date,
			Chapter: e.SurahNumber,
			Target:  target,
			Key:     key.String(),
		})
	}
	return p, skipped
}

// progressDocument maps plan_chapter_verse keys to records.
type progressDocument map[string]progressRecord

type progressRecord struct {
	Memorized   bool      `json:"memorized"`
	MemorizedAt time.Time `json:"memorizedAt"`
	Date        string    `json:"date"`
	Type        string    `json:"type,omitempty"`
}

func progressKey(planID string, chapter, verse int) string {
	return domain.RangeKey{PlanID: planID, Chapter: chapter, Target: domain.SingleVerse(verse)}.String()
}

func (r progressRecord) toDomain(key string) (domain.VerseProgress, error) {
	k, err := domain.ParseRangeKey(key)
	if err != nil {
		return domain.VerseProgress{}, err
	}
	if k.Target.IsRange() {
		return domain.VerseProgress{}, fmt.Errorf("progress key %q names a range", key)
	}
	day := r.Date
	if _, err := domain.ParseDay(day); err != nil {
		day = domain.DayKey(r.MemorizedAt)
	}
	return domain.VerseProgress{
		PlanID:      k.PlanID,
		Chapter:     k.Chapter,
		Verse:       k.Target.Start,
		Memorized:   r.Memorized,
		MemorizedAt: r.MemorizedAt,
		Day:         day,
	}, nil
}

// murajaahDocument maps range keys to their completed sessions.
type murajaahDocument map[string]historyRecord

type historyRecord struct {
	Sessions []sessionRecord `json:"sessions"`
}

type sessionRecord struct {
	CompletedAt time.Time `json:"completedAt"`
	Date        string    `json:"date"`
	StartAyah   *int      `json:"startAyah,omitempty"`
	EndAyah     *int      `json:"endAyah,omitempty"`
}

func newSessionRecord(key domain.RangeKey, s domain.ReviewSession) sessionRecord {
	rec := sessionRecord{CompletedAt: s.CompletedAt, Date: s.Day}
	if rec.Date == "" {
		rec.Date = domain.DayKey(s.CompletedAt)
	}
	if key.Target.IsRange() {
		rec.StartAyah = intPtr(key.Target.Start)
		rec.EndAyah = intPtr(key.Target.End)
	}
	return rec
}

func (r historyRecord) toDomain(key domain.RangeKey) *domain.ReviewHistory {
	h := &domain.ReviewHistory{Key: key, Sessions: make([]domain.ReviewSession, 0, len(r.Sessions))}
	for _, s := range r.Sessions {
		day := s.Date
		if _, err := domain.ParseDay(day); err != nil {
			day = domain.DayKey(s.CompletedAt)
		}
		h.Sessions = append(h.Sessions, domain.ReviewSession{CompletedAt: s.CompletedAt, Day: day})
	}
	return h
}

type settingsDocument struct {
	Hafazan  repetitionRecord `json:"hafazan"`
	Murajaah repetitionRecord `json:"murajaah"`
	General  generalRecord    `json:"general"`
}

type repetitionRecord struct {
	VisibleSets              int `json:"visibleSets"`
	RepetitionsPerVisibleSet int `json:"repetitionsPerVisibleSet"`
	HiddenSets               int `json:"hiddenSets"`
	RepetitionsPerHiddenSet  int `json:"repetitionsPerHiddenSet"`
}

type generalRecord struct {
	AutoPlayAudio       bool `json:"autoPlayAudio"`
	ShowAudioPlayer     bool `json:"showAudioPlayer"`
	ShowTransliteration bool `json:"showTransliteration"`
	ShowTranslation     bool `json:"showTranslation"`
	EnableMurajaah      bool `json:"enableMurajaah"`
	MurajaahFrequency   int  `json:"murajaahFrequency"`
	MurajaahRangeSize   int  `json:"murajaahRangeSize"`
}

func newSettingsDocument(s domain.Settings) settingsDocument {
	return settingsDocument{
		Hafazan:  repetitionRecord(s.Hafazan),
		Murajaah: repetitionRecord(s.Murajaah),
		General: generalRecord{
			AutoPlayAudio:       s.General.AutoPlayAudio,
			ShowAudioPlayer:     s.General.ShowAudioPlayer,
			ShowTransliteration: s.General.ShowTransliteration,
			ShowTranslation:     s.General.ShowTranslation,
			EnableMurajaah:      s.General.MurajaahEnabled,
			MurajaahFrequency:   s.General.MurajaahFrequencyDays,
			MurajaahRangeSize:   s.General.MurajaahRangeSize,
		},
	}
}

func (d settingsDocument) toDomain() domain.Settings {
	return domain.Settings{
		Hafazan:  domain.RepetitionConfig(d.Hafazan),
		Murajaah: domain.RepetitionConfig(d.Murajaah),
		General: domain.GeneralSettings{
			AutoPlayAudio:         d.General.AutoPlayAudio,
			ShowAudioPlayer:       d.General.ShowAudioPlayer,
			ShowTransliteration:   d.General.ShowTransliteration,
			ShowTranslation:       d.General.ShowTranslation,
			MurajaahEnabled:       d.General.EnableMurajaah,
			MurajaahFrequencyDays: d.General.MurajaahFrequency,
			MurajaahRangeSize:     d.General.MurajaahRangeSize,
		},
	}
}

// activityRecord keeps epoch-millisecond stamps for startTime and timestamp.
type activityRecord struct {
	ID            string `json:"id"`
	PlanID        string `json:"planId"`
	SurahNumber   int    `json:"surahNumber"`
	SurahName     string `json:"surahName"`
	AyahNumber    int    `json:"ayahNumber"`
	StartAyah     *int   `json:"startAyah,omitempty"`
	EndAyah       *int   `json:"endAyah,omitempty"`
	IsRange       bool   `json:"isRange"`
	SessionType   string `json:"sessionType"`
	StartTime     int64  `json:"startTime"`
	TotalReps     int    `json:"totalReps"`
	CompletedReps int    `json:"completedReps"`
	Completed     bool   `json:"completed"`
	Duration      int    `json:"duration"`
	Timestamp     int64  `json:"timestamp"`
}

func newActivityRecord(a *domain.Activity) activityRecord {
	rec := activityRecord{
		ID:            a.ID,
		PlanID:        a.PlanID,
		SurahNumber:   a.Chapter,
		SurahName:     a.ChapterName,
		AyahNumber:    a.Target.Start,
		IsRange:       a.Target.IsRange(),
		SessionType:   string(a.SessionType),
		StartTime:     timeToMillis(a.StartTime),
		TotalReps:     a.TotalReps,
		CompletedReps: a.CompletedReps,
		Completed:     a.Completed,
		Duration:      a.DurationSec,
		Timestamp:     timeToMillis(a.Timestamp),
	}
	if rec.IsRange {
		rec.StartAyah = intPtr(a.Target.Start)
		rec.EndAyah = intPtr(a.Target.End)
	}
	return rec
}

func (r activityRecord) toDomain() *domain.Activity {
	target := domain.SingleVerse(r.AyahNumber)
	if r.IsRange && r.StartAyah != nil && r.EndAyah != nil {
		target = domain.VerseRange(*r.StartAyah, *r.EndAyah)
	}
	return &domain.Activity{
		ID:            r.ID,
		PlanID:        r.PlanID,
		Chapter:       r.SurahNumber,
		ChapterName:   r.SurahName,
		Target:        target,
		SessionType:   domain.SessionType(r.SessionType),
		StartTime:     millisToTime(r.StartTime),
		TotalReps:     r.TotalReps,
		CompletedReps: r.CompletedReps,
		Completed:     r.Completed,
		DurationSec:   r.Duration,
		Timestamp:     millisToTime(r.Timestamp),
	}
}
