package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

// findPlan returns nil, nil when the plan does not exist.
func findPlan(ctx context.Context, plans repository.PlanRepo, id string) (*domain.Plan, error) {
	p, err := plans.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", id, err)
	}
	return p, nil
}

func requirePlan(ctx context.Context, plans repository.PlanRepo, id string) (*domain.Plan, error) {
	p, err := findPlan(ctx, plans, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	return p, nil
}

// memorize records a verse of plan and reschedules the review of the range
// that now contains it.
func memorize(ctx context.Context, r repository.Repos, plan *domain.Plan, chapter, verse int, when, now time.Time) error {
	if verse < 1 || verse > plan.TotalVerses {
		return fmt.Errorf("%w: verse %d outside 1-%d", domain.ErrInvalidRange, verse, plan.TotalVerses)
	}
	if err := r.Progress.Upsert(ctx, domain.NewVerseProgress(plan.ID, chapter, verse, when)); err != nil {
		return fmt.Errorf("recording verse %d:%d: %w", chapter, verse, err)
	}
	return rescheduleContaining(ctx, r, plan, chapter, verse, when, now)
}

// rescheduleContaining schedules the review range holding verse at when
// plus the review interval. A verse in no range is a no-op.
func rescheduleContaining(ctx context.Context, r repository.Repos, plan *domain.Plan, chapter, verse int, when, now time.Time) error {
	settings, err := r.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	progress, err := r.Progress.ListByPlan(ctx, plan.ID)
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}
	rng, ok := scheduler.FindRange(scheduler.ReviewRanges(progress, settings.RangeSize()), chapter, verse)
	if !ok {
		return nil
	}
	return scheduleReview(ctx, r, plan, chapter, rng.Target(), scheduler.NextReviewDate(when, settings), now)
}

func scheduleReview(ctx context.Context, r repository.Repos, plan *domain.Plan, chapter int, target domain.ReviewTarget, date, now time.Time) error {
	entry := scheduler.NewReviewEntry(plan.ID, chapter, target, date)
	plan.ReviewSchedule = scheduler.UpsertReview(plan.ReviewSchedule, entry, now)
	if err := r.Plans.Update(ctx, plan); err != nil {
		return fmt.Errorf("saving review schedule: %w", err)
	}
	return nil
}

// completeReview appends a session for target and schedules the next one.
// Single-verse targets reschedule the range containing the verse.
func completeReview(ctx context.Context, r repository.Repos, plan *domain.Plan, chapter int, target domain.ReviewTarget, when, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	session := domain.ReviewSession{CompletedAt: when, Day: domain.DayKey(when)}
	if err := r.Reviews.AppendSession(ctx, plan.RangeKeyFor(chapter, target), session); err != nil {
		return fmt.Errorf("recording review %d:%s: %w", chapter, target, err)
	}
	if !target.IsRange() {
		return rescheduleContaining(ctx, r, plan, chapter, target.Start, when, now)
	}

	settings, err := r.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	return scheduleReview(ctx, r, plan, chapter, target, scheduler.NextReviewDate(when, settings), now)
}

// buildPlan lays out a new active plan for a chapter starting on the
// calendar day of start.
func buildPlan(meta *domain.Chapter, start time.Time, versesPerDay int, now time.Time) (*domain.Plan, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating plan id: %w", err)
	}
	start = domain.DateOf(start)
	plan := &domain.Plan{
		ID:                id.String(),
		ChapterNumber:     meta.Number,
		ChapterName:       meta.Name,
		ChapterNameNative: meta.NativeName,
		TotalVerses:       meta.VerseCount,
		StartDate:         start,
		VersesPerDay:      versesPerDay,
		Schedule:          scheduler.BuildSchedule(meta.Number, meta.VerseCount, start, versesPerDay),
		Active:            true,
		Status:            domain.PlanInProgress,
		CreatedAt:         now,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// insertPlan stores plan and makes it the active plan. Only one plan per
// chapter may exist.
func insertPlan(ctx context.Context, r repository.Repos, plan *domain.Plan) error {
	existing, err := r.Plans.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.ChapterNumber == plan.ChapterNumber {
			return fmt.Errorf("%w: %s (plan %s)", ErrDuplicatePlan, p.ChapterName, p.DisplayID())
		}
	}
	if err := r.Plans.Create(ctx, plan); err != nil {
		return err
	}
	return r.Plans.SetActive(ctx, plan.ID)
}

// closeIfComplete marks plan completed at when once every verse is
// memorized, clearing it as the active plan. It returns nil while verses
// remain.
func closeIfComplete(ctx context.Context, r repository.Repos, plan *domain.Plan, when time.Time) (*scheduler.CompletionStatus, error) {
	progress, err := r.Progress.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	st := scheduler.ComputeCompletion(plan, progress)
	if !st.Completed {
		return nil, nil
	}

	completedAt := when
	plan.Status = domain.PlanCompleted
	plan.CompletedAt = &completedAt
	plan.DaysEarly = st.DaysEarly
	plan.CompletedEarly = st.CompletedEarly
	if err := r.Plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	activeID, err := r.Plans.ActivePlanID(ctx)
	if err != nil {
		return nil, err
	}
	if activeID == plan.ID {
		if err := r.Plans.SetActive(ctx, ""); err != nil {
			return nil, err
		}
	}
	return &st, nil
}
