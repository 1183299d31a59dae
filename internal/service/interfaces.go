package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/importer"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

// CreatePlanRequest describes a new memorization plan. A zero StartDate
// means today.
type CreatePlanRequest struct {
	Chapter      int
	StartDate    time.Time
	VersesPerDay int
}

type PlanService interface {
	Chapters(ctx context.Context) ([]domain.Chapter, error)
	Create(ctx context.Context, req CreatePlanRequest) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	// Resolve finds a plan by full ID or unique ID prefix; "" selects the
	// active plan.
	Resolve(ctx context.Context, ref string) (*domain.Plan, error)
	SetActive(ctx context.Context, id string) error
	// Delete removes the plan along with its progress, review history and
	// activities.
	Delete(ctx context.Context, id string) error
	// MarkCompleted returns nil status when the plan is not yet complete.
	MarkCompleted(ctx context.Context, id string, when time.Time) (*scheduler.CompletionStatus, error)
}

type ProgressService interface {
	MarkMemorized(ctx context.Context, planID string, chapter, verse int, when time.Time) error
	IsMemorized(ctx context.Context, planID string, chapter, verse int) (bool, error)
	CompletedVerses(ctx context.Context, planID string) ([]domain.VerseProgress, error)
	MemorizedRanges(ctx context.Context, planID string) ([]domain.MemorizedRange, error)
	// ReviewRanges uses the saved range size when maxSize is not positive.
	ReviewRanges(ctx context.Context, planID string, maxSize int) ([]domain.MemorizedRange, error)
	ScheduleRangeReview(ctx context.Context, planID string, chapter, start, end int, date time.Time) error
	MarkReviewRangeComplete(ctx context.Context, planID string, chapter, start, end int, when time.Time) error
	MarkReviewComplete(ctx context.Context, planID string, chapter, verse int, when time.Time) error
	ReviewHistory(ctx context.Context, planID string, chapter int, target domain.ReviewTarget) (*domain.ReviewHistory, error)
}

type TaskService interface {
	TodayTasks(ctx context.Context, planID string, today time.Time) (*scheduler.TodayTasks, error)
	CalendarData(ctx context.Context, planID string, year int, month time.Month) (*scheduler.CalendarMonth, error)
	Progress(ctx context.Context, planID string) (*scheduler.PlanProgress, error)
	OverallStats(ctx context.Context) (*scheduler.OverallStats, error)
}

type AnalyticsService interface {
	IsPlanCompleted(ctx context.Context, planID string) (bool, error)
	CompletionStatus(ctx context.Context, planID string) (*scheduler.CompletionStatus, error)
	Streak(ctx context.Context, planID string, today time.Time) (*scheduler.StreakData, error)
	NextSteps(ctx context.Context, planID string) (*scheduler.NextSteps, error)
}

// StartActivityRequest opens a drill over a target of a plan.
type StartActivityRequest struct {
	PlanID      string
	Target      domain.ReviewTarget
	SessionType domain.SessionType
}

// ActivityStats summarises the drill log.
type ActivityStats struct {
	Total       int
	Completed   int
	Hafazan     int
	Murajaah    int
	DurationSec int
}

// ResumePoint is where an unfinished drill continues.
type ResumePoint struct {
	ActivityID    string
	Set           int
	Repetition    int
	Phase         domain.Phase
	CompletedReps int
	TotalReps     int
}

type ActivityService interface {
	Start(ctx context.Context, req StartActivityRequest) (*domain.Activity, error)
	RecordRepetition(ctx context.Context, id string, completedReps, durationSec int) (*domain.Activity, error)
	// Complete finishes the drill and records the memorization or review it
	// stands for in the same transaction.
	Complete(ctx context.Context, id string, durationSec int) (*domain.Activity, error)
	Abandon(ctx context.Context, id string, completedReps, durationSec int) (*domain.Activity, error)
	Reset(ctx context.Context, id string) (*domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error)
	Stats(ctx context.Context) (*ActivityStats, error)
	ResumePoint(ctx context.Context, id string) (*ResumePoint, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
	// Set applies one dotted key and returns the saved result.
	Set(ctx context.Context, key, value string) (domain.Settings, error)
	Reset(ctx context.Context) (domain.Settings, error)
}

type ContentService interface {
	Chapter(ctx context.Context, number int) (*domain.Chapter, error)
	// SessionText joins the Arabic text of start..end and numbers each
	// translation when the target spans more than one verse.
	SessionText(ctx context.Context, chapter, start, end int) (*domain.SessionText, error)
	Available(ctx context.Context) bool
}

// ImportResult reports what an import created.
type ImportResult struct {
	Plan       *domain.Plan
	Memorized  int
	Reviews    int
	Completion *scheduler.CompletionStatus
}

type ImportService interface {
	// ImportPlan reads a JSON file and creates a plan with its recorded
	// memorizations and reviews replayed in order.
	ImportPlan(ctx context.Context, path string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
