package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
)

type activityService struct {
	base
}

func NewActivityService(repos repository.Repos, uow db.UnitOfWork, opts ...Option) ActivityService {
	return &activityService{base: newBase(repos, uow, opts)}
}

func requireActivity(ctx context.Context, activities repository.ActivityRepo, id string) (*domain.Activity, error) {
	a, err := activities.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading activity %s: %w", id, err)
	}
	return a, nil
}

func (s *activityService) Start(ctx context.Context, req StartActivityRequest) (activity *domain.Activity, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"plan_id":      req.PlanID,
		"session_type": string(req.SessionType),
		"target":       req.Target.String(),
	}
	defer func() {
		s.observe(ctx, "start-activity", startedAt, fields, err)
	}()

	if !domain.ValidSessionTypes[string(req.SessionType)] {
		return nil, fmt.Errorf("invalid session type %q", req.SessionType)
	}
	if err := req.Target.Validate(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating activity id: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		plan, err := requirePlan(ctx, r.Plans, req.PlanID)
		if err != nil {
			return err
		}
		if req.Target.End > plan.TotalVerses {
			return fmt.Errorf("%w: %s outside 1-%d", domain.ErrInvalidRange, req.Target, plan.TotalVerses)
		}
		settings, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		now := s.now()
		activity = &domain.Activity{
			ID:          id.String(),
			PlanID:      plan.ID,
			Chapter:     plan.ChapterNumber,
			ChapterName: plan.ChapterName,
			Target:      req.Target,
			SessionType: req.SessionType,
			StartTime:   now,
			TotalReps:   settings.Repetitions(req.SessionType).TotalReps(),
			Timestamp:   now,
		}
		return r.Activities.Create(ctx, activity)
	})
	if err != nil {
		return nil, err
	}
	fields["activity_id"] = activity.ID
	return activity, nil
}

// mutate applies fn to an unfinished activity and saves it.
func (s *activityService) mutate(ctx context.Context, id string, fn func(r repository.Repos, a *domain.Activity) error) (*domain.Activity, error) {
	var out *domain.Activity
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		a, err := requireActivity(ctx, r.Activities, id)
		if err != nil {
			return err
		}
		if a.Completed {
			return fmt.Errorf("%w: %s", ErrActivityCompleted, id)
		}
		if err := fn(r, a); err != nil {
			return err
		}
		a.Timestamp = s.now()
		if err := r.Activities.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func clampReps(completed, total int) int {
	return min(max(completed, 0), total)
}

func (s *activityService) RecordRepetition(ctx context.Context, id string, completedReps, durationSec int) (*domain.Activity, error) {
	return s.mutate(ctx, id, func(_ repository.Repos, a *domain.Activity) error {
		a.CompletedReps = clampReps(completedReps, a.TotalReps)
		a.DurationSec = max(durationSec, 0)
		return nil
	})
}

func (s *activityService) Complete(ctx context.Context, id string, durationSec int) (activity *domain.Activity, err error) {
	startedAt := s.now()
	defer func() {
		s.observe(ctx, "complete-activity", startedAt, map[string]any{"activity_id": id}, err)
	}()

	return s.mutate(ctx, id, func(r repository.Repos, a *domain.Activity) error {
		a.Completed = true
		a.CompletedReps = a.TotalReps
		a.DurationSec = max(durationSec, 0)

		plan, err := findPlan(ctx, r.Plans, a.PlanID)
		if err != nil || plan == nil {
			return err
		}
		now := s.now()
		if a.SessionType == domain.SessionMurajaah {
			return completeReview(ctx, r, plan, a.Chapter, a.Target, now, now)
		}
		for v := a.Target.Start; v <= a.Target.End; v++ {
			if err := memorize(ctx, r, plan, a.Chapter, v, now, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// Abandon saves the position of a drill left unfinished so it can resume.
func (s *activityService) Abandon(ctx context.Context, id string, completedReps, durationSec int) (*domain.Activity, error) {
	return s.RecordRepetition(ctx, id, completedReps, durationSec)
}

func (s *activityService) Reset(ctx context.Context, id string) (*domain.Activity, error) {
	return s.mutate(ctx, id, func(_ repository.Repos, a *domain.Activity) error {
		a.CompletedReps = 0
		a.DurationSec = 0
		a.StartTime = s.now()
		return nil
	})
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return requireActivity(ctx, s.repos.Activities, id)
}

func (s *activityService) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	if filter == "" {
		filter = domain.FilterAll
	}
	if !domain.ValidActivityFilters[string(filter)] {
		return nil, fmt.Errorf("invalid activity filter %q", filter)
	}
	return s.repos.Activities.List(ctx, filter)
}

func (s *activityService) Stats(ctx context.Context) (*ActivityStats, error) {
	all, err := s.repos.Activities.List(ctx, domain.FilterAll)
	if err != nil {
		return nil, err
	}
	st := &ActivityStats{Total: len(all)}
	for _, a := range all {
		if a.Completed {
			st.Completed++
		}
		if a.SessionType == domain.SessionMurajaah {
			st.Murajaah++
		} else {
			st.Hafazan++
		}
		st.DurationSec += a.DurationSec
	}
	return st, nil
}

func (s *activityService) ResumePoint(ctx context.Context, id string) (*ResumePoint, error) {
	a, err := requireActivity(ctx, s.repos.Activities, id)
	if err != nil {
		return nil, err
	}
	if a.Completed {
		return nil, fmt.Errorf("%w: %s", ErrActivityCompleted, id)
	}
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg := settings.Repetitions(a.SessionType)
	set, rep := cfg.PositionFromReps(a.CompletedReps)
	return &ResumePoint{
		ActivityID:    a.ID,
		Set:           set,
		Repetition:    rep,
		Phase:         cfg.PhaseAt(rep),
		CompletedReps: a.CompletedReps,
		TotalReps:     a.TotalReps,
	}, nil
}
