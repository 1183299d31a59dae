package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/quran"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

type planService struct {
	base
	content quran.Client
}

func NewPlanService(repos repository.Repos, content quran.Client, uow db.UnitOfWork, opts ...Option) PlanService {
	return &planService{base: newBase(repos, uow, opts), content: content}
}

func (s *planService) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	chapters, err := s.content.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching chapter list: %w", err)
	}
	return chapters, nil
}

func (s *planService) Create(ctx context.Context, req CreatePlanRequest) (plan *domain.Plan, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"chapter":        req.Chapter,
		"verses_per_day": req.VersesPerDay,
	}
	defer func() {
		s.observe(ctx, "create-plan", startedAt, fields, err)
	}()

	if req.Chapter < 1 || req.Chapter > domain.ChapterCount {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidChapter, req.Chapter)
	}
	if req.VersesPerDay < 1 || req.VersesPerDay > domain.MaxVersesPerDay {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPace, req.VersesPerDay)
	}

	meta, err := s.content.Chapter(ctx, req.Chapter)
	if err != nil {
		return nil, fmt.Errorf("fetching chapter %d: %w", req.Chapter, err)
	}

	start := req.StartDate
	if start.IsZero() {
		start = s.now()
	}
	plan, err = buildPlan(meta, start, req.VersesPerDay, s.now())
	if err != nil {
		return nil, err
	}
	fields["plan_id"] = plan.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return insertPlan(ctx, s.txRepos(tx), plan)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return requirePlan(ctx, s.repos.Plans, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.repos.Plans.List(ctx)
}

func (s *planService) Resolve(ctx context.Context, ref string) (*domain.Plan, error) {
	if ref == "" {
		activeID, err := s.repos.Plans.ActivePlanID(ctx)
		if err != nil {
			return nil, err
		}
		if activeID == "" {
			return nil, ErrNoActivePlan
		}
		return requirePlan(ctx, s.repos.Plans, activeID)
	}

	p, err := findPlan(ctx, s.repos.Plans, ref)
	if err != nil || p != nil {
		return p, err
	}

	plans, err := s.repos.Plans.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *domain.Plan
	for _, candidate := range plans {
		if !strings.HasPrefix(candidate.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousPlan, ref)
		}
		match = candidate
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, ref)
	}
	return match, nil
}

func (s *planService) SetActive(ctx context.Context, id string) (err error) {
	startedAt := s.now()
	defer func() {
		s.observe(ctx, "set-active-plan", startedAt, map[string]any{"plan_id": id}, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		if _, err := requirePlan(ctx, r.Plans, id); err != nil {
			return err
		}
		return r.Plans.SetActive(ctx, id)
	})
}

func (s *planService) Delete(ctx context.Context, id string) (err error) {
	startedAt := s.now()
	defer func() {
		s.observe(ctx, "delete-plan", startedAt, map[string]any{"plan_id": id}, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		if _, err := requirePlan(ctx, r.Plans, id); err != nil {
			return err
		}
		if err := r.Plans.Delete(ctx, id); err != nil {
			return err
		}
		if err := r.Progress.DeleteByPlan(ctx, id); err != nil {
			return fmt.Errorf("deleting progress: %w", err)
		}
		if err := r.Reviews.DeleteByPlan(ctx, id); err != nil {
			return fmt.Errorf("deleting review history: %w", err)
		}
		if err := r.Activities.DeleteByPlan(ctx, id); err != nil {
			return fmt.Errorf("deleting activities: %w", err)
		}
		return nil
	})
}

func (s *planService) MarkCompleted(ctx context.Context, id string, when time.Time) (status *scheduler.CompletionStatus, err error) {
	startedAt := s.now()
	fields := map[string]any{"plan_id": id}
	defer func() {
		s.observe(ctx, "mark-plan-completed", startedAt, fields, err)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		plan, err := requirePlan(ctx, r.Plans, id)
		if err != nil {
			return err
		}
		status, err = closeIfComplete(ctx, r, plan, when)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["completed"] = status != nil
	return status, nil
}
