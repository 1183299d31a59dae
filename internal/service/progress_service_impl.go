package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

type progressService struct {
	base
}

// NewProgressService records memorization and review completions. Every
// write re-derives the review ranges from the plan's progress and commits
// the record together with the reschedule it triggers. Unknown plans are
// silently ignored.
func NewProgressService(repos repository.Repos, uow db.UnitOfWork, opts ...Option) ProgressService {
	return &progressService{base: newBase(repos, uow, opts)}
}

func (s *progressService) MarkMemorized(ctx context.Context, planID string, chapter, verse int, when time.Time) (err error) {
	startedAt := s.now()
	fields := map[string]any{"plan_id": planID, "chapter": chapter, "verse": verse}
	defer func() {
		s.observe(ctx, "mark-memorized", startedAt, fields, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		plan, err := findPlan(ctx, r.Plans, planID)
		if err != nil || plan == nil {
			return err
		}
		return memorize(ctx, r, plan, chapter, verse, when, s.now())
	})
}

func (s *progressService) IsMemorized(ctx context.Context, planID string, chapter, verse int) (bool, error) {
	p, err := s.repos.Progress.Get(ctx, planID, chapter, verse)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Memorized, nil
}

func (s *progressService) CompletedVerses(ctx context.Context, planID string) ([]domain.VerseProgress, error) {
	progress, err := s.repos.Progress.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	return progress, nil
}

func (s *progressService) MemorizedRanges(ctx context.Context, planID string) ([]domain.MemorizedRange, error) {
	progress, err := s.CompletedVerses(ctx, planID)
	if err != nil {
		return nil, err
	}
	return scheduler.MergeRanges(progress), nil
}

func (s *progressService) ReviewRanges(ctx context.Context, planID string, maxSize int) ([]domain.MemorizedRange, error) {
	if maxSize <= 0 {
		settings, err := s.repos.Settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		maxSize = settings.RangeSize()
	}
	progress, err := s.CompletedVerses(ctx, planID)
	if err != nil {
		return nil, err
	}
	return scheduler.ReviewRanges(progress, maxSize), nil
}

func (s *progressService) ScheduleRangeReview(ctx context.Context, planID string, chapter, start, end int, date time.Time) (err error) {
	startedAt := s.now()
	defer func() {
		s.observe(ctx, "schedule-range-review", startedAt, map[string]any{
			"plan_id": planID, "chapter": chapter, "start": start, "end": end,
		}, err)
	}()

	target := domain.VerseRange(start, end)
	if err := target.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		plan, err := findPlan(ctx, r.Plans, planID)
		if err != nil || plan == nil {
			return err
		}
		return scheduleReview(ctx, r, plan, chapter, target, date, s.now())
	})
}

func (s *progressService) MarkReviewRangeComplete(ctx context.Context, planID string, chapter, start, end int, when time.Time) error {
	return s.markReview(ctx, "mark-review-range-complete", planID, chapter, domain.VerseRange(start, end), when)
}

func (s *progressService) MarkReviewComplete(ctx context.Context, planID string, chapter, verse int, when time.Time) error {
	return s.markReview(ctx, "mark-review-complete", planID, chapter, domain.SingleVerse(verse), when)
}

func (s *progressService) markReview(ctx context.Context, name, planID string, chapter int, target domain.ReviewTarget, when time.Time) (err error) {
	startedAt := s.now()
	defer func() {
		s.observe(ctx, name, startedAt, map[string]any{
			"plan_id": planID, "chapter": chapter, "target": target.String(),
		}, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		plan, err := findPlan(ctx, r.Plans, planID)
		if err != nil || plan == nil {
			return err
		}
		return completeReview(ctx, r, plan, chapter, target, when, s.now())
	})
}

func (s *progressService) ReviewHistory(ctx context.Context, planID string, chapter int, target domain.ReviewTarget) (*domain.ReviewHistory, error) {
	key := domain.RangeKey{PlanID: planID, Chapter: chapter, Target: target}
	h, err := s.repos.Reviews.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}
