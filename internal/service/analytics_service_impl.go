package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

type analyticsService struct {
	base
}

func NewAnalyticsService(repos repository.Repos, uow db.UnitOfWork, opts ...Option) AnalyticsService {
	return &analyticsService{base: newBase(repos, uow, opts)}
}

func (s *analyticsService) IsPlanCompleted(ctx context.Context, planID string) (bool, error) {
	st, err := s.CompletionStatus(ctx, planID)
	if err != nil || st == nil {
		return false, err
	}
	return st.Completed, nil
}

func (s *analyticsService) CompletionStatus(ctx context.Context, planID string) (*scheduler.CompletionStatus, error) {
	st, err := s.loadPlanState(ctx, planID, false)
	if err != nil || st == nil {
		return nil, err
	}
	status := scheduler.ComputeCompletion(st.plan, st.progress)
	return &status, nil
}

// Streak returns a zero streak for unknown plans.
func (s *analyticsService) Streak(ctx context.Context, planID string, today time.Time) (*scheduler.StreakData, error) {
	progress, err := s.repos.Progress.ListByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	streak := scheduler.Streak(progress, today)
	return &streak, nil
}

func (s *analyticsService) NextSteps(ctx context.Context, planID string) (*scheduler.NextSteps, error) {
	st, err := s.loadPlanState(ctx, planID, false)
	if err != nil || st == nil {
		return nil, err
	}
	status := scheduler.ComputeCompletion(st.plan, st.progress)
	plans, err := s.repos.Plans.List(ctx)
	if err != nil {
		return nil, err
	}
	others := make([]domain.Plan, 0, len(plans))
	for _, p := range plans {
		others = append(others, *p)
	}
	return scheduler.ComputeNextSteps(st.plan, status, others), nil
}
