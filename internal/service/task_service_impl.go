package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/scheduler"
)

type taskService struct {
	base
}

func NewTaskService(repos repository.Repos, uow db.UnitOfWork, opts ...Option) TaskService {
	return &taskService{base: newBase(repos, uow, opts)}
}

// planState is the read snapshot the task and analytics views work from.
type planState struct {
	plan     *domain.Plan
	progress []domain.VerseProgress
	history  map[string]*domain.ReviewHistory
}

// loadPlanState returns nil when the plan does not exist.
func (b *base) loadPlanState(ctx context.Context, planID string, withHistory bool) (*planState, error) {
	plan, err := findPlan(ctx, b.repos.Plans, planID)
	if err != nil || plan == nil {
		return nil, err
	}
	progress, err := b.repos.Progress.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	st := &planState{plan: plan, progress: progress}
	if withHistory {
		st.history, err = b.repos.Reviews.ListByPlan(ctx, planID)
		if err != nil {
			return nil, fmt.Errorf("loading review history: %w", err)
		}
	}
	return st, nil
}

func (s *taskService) TodayTasks(ctx context.Context, planID string, today time.Time) (*scheduler.TodayTasks, error) {
	st, err := s.loadPlanState(ctx, planID, true)
	if err != nil || st == nil {
		return nil, err
	}
	tasks := scheduler.ComputeTodayTasks(scheduler.TaskInput{
		Plan:     st.plan,
		Progress: scheduler.IndexProgress(st.progress),
		History:  st.history,
		Today:    today,
	})
	return &tasks, nil
}

func (s *taskService) CalendarData(ctx context.Context, planID string, year int, month time.Month) (*scheduler.CalendarMonth, error) {
	st, err := s.loadPlanState(ctx, planID, true)
	if err != nil || st == nil {
		return nil, err
	}
	cal := scheduler.BuildCalendar(st.plan, scheduler.IndexProgress(st.progress), st.history, year, month)
	return &cal, nil
}

func (s *taskService) Progress(ctx context.Context, planID string) (*scheduler.PlanProgress, error) {
	st, err := s.loadPlanState(ctx, planID, false)
	if err != nil || st == nil {
		return nil, err
	}
	p := scheduler.ComputeProgress(st.plan, st.progress)
	return &p, nil
}

func (s *taskService) OverallStats(ctx context.Context) (*scheduler.OverallStats, error) {
	plans, err := s.repos.Plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}
	progress, err := s.repos.Progress.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	values := make([]domain.Plan, 0, len(plans))
	for _, p := range plans {
		values = append(values, *p)
	}
	st := scheduler.ComputeOverall(values, progress)
	return &st, nil
}
