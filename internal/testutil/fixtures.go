package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

// PlanOption customizes a fixture plan.
type PlanOption func(*domain.Plan)

func WithStartDate(d time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.StartDate = d
	}
}

func WithPace(versesPerDay int) PlanOption {
	return func(p *domain.Plan) {
		p.VersesPerDay = versesPerDay
	}
}

func WithChapter(number int, name string, verses int) PlanOption {
	return func(p *domain.Plan) {
		p.ChapterNumber = number
		p.ChapterName = name
		p.TotalVerses = verses
	}
}

func WithPlanID(id string) PlanOption {
	return func(p *domain.Plan) {
		p.ID = id
	}
}

func WithReviews(entries ...domain.ReviewEntry) PlanOption {
	return func(p *domain.Plan) {
		p.ReviewSchedule = append(p.ReviewSchedule, entries...)
	}
}

// NewTestPlan returns a plan for Al-Fatiha (7 verses, one per day) starting
// today unless options say otherwise. The schedule is built after options
// apply.
func NewTestPlan(opts ...PlanOption) *domain.Plan {
	now := time.Now()
	p := &domain.Plan{
		ID:                uuid.Must(uuid.NewV7()).String(),
		ChapterNumber:     1,
		ChapterName:       "Al-Faatiha",
		ChapterNameNative: "سُورَةُ ٱلْفَاتِحَةِ",
		TotalVerses:       7,
		StartDate:         domain.DateOf(now),
		VersesPerDay:      1,
		Status:            domain.PlanInProgress,
		CreatedAt:         now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Schedule = scheduler.BuildSchedule(p.ChapterNumber, p.TotalVerses, p.StartDate, p.VersesPerDay)
	return p
}

// ActivityOption customizes a fixture activity.
type ActivityOption func(*domain.Activity)

func WithSessionType(t domain.SessionType) ActivityOption {
	return func(a *domain.Activity) {
		a.SessionType = t
	}
}

func WithTarget(target domain.ReviewTarget) ActivityOption {
	return func(a *domain.Activity) {
		a.Target = target
	}
}

func WithCompleted(reps int) ActivityOption {
	return func(a *domain.Activity) {
		a.CompletedReps = reps
		a.Completed = true
	}
}

func WithTimestamp(ts time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.StartTime = ts
		a.Timestamp = ts
	}
}

func NewTestActivity(planID string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().Truncate(time.Millisecond)
	a := &domain.Activity{
		ID:          uuid.New().String(),
		PlanID:      planID,
		Chapter:     1,
		ChapterName: "Al-Faatiha",
		Target:      domain.SingleVerse(1),
		SessionType: domain.SessionHafazan,
		StartTime:   now,
		TotalReps:   domain.DefaultSettings().Hafazan.TotalReps(),
		Timestamp:   now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
