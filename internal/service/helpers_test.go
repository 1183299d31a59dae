package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/testutil"
)

// day0 is a Monday morning; every test clock starts here.
var day0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func daysAfter(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

type testEnv struct {
	db       *sql.DB
	repos    repository.Repos
	uow      db.UnitOfWork
	content  *testutil.FakeContent
	clock    *fakeClock
	observer *recordingObserver

	plans      PlanService
	progress   ProgressService
	tasks      TaskService
	analytics  AnalyticsService
	activities ActivityService
	settings   SettingsService
	text       ContentService
	imports    ImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:       database,
		repos:    repository.NewKVRepos(database, nil),
		uow:      testutil.NewTestUoW(database),
		content:  testutil.NewFakeContent(),
		clock:    &fakeClock{now: day0},
		observer: &recordingObserver{},
	}
	opts := env.options()
	env.plans = NewPlanService(env.repos, env.content, env.uow, opts...)
	env.progress = NewProgressService(env.repos, env.uow, opts...)
	env.tasks = NewTaskService(env.repos, env.uow, opts...)
	env.analytics = NewAnalyticsService(env.repos, env.uow, opts...)
	env.activities = NewActivityService(env.repos, env.uow, opts...)
	env.settings = NewSettingsService(env.repos, env.uow, opts...)
	env.text = NewContentService(env.content)
	env.imports = NewImportService(env.repos, env.content, env.uow, opts...)
	return env
}

func (e *testEnv) options() []Option {
	return []Option{WithClock(e.clock.Now), WithObservers(e.observer)}
}

// createPlan creates a plan for Al-Faatiha through the service.
func (e *testEnv) createPlan(t *testing.T, pace int, start time.Time) *domain.Plan {
	t.Helper()
	plan, err := e.plans.Create(context.Background(), CreatePlanRequest{
		Chapter:      1,
		StartDate:    start,
		VersesPerDay: pace,
	})
	require.NoError(t, err)
	return plan
}

func (e *testEnv) reload(t *testing.T, planID string) *domain.Plan {
	t.Helper()
	p, err := e.repos.Plans.GetByID(context.Background(), planID)
	require.NoError(t, err)
	return p
}

// futureReviews returns the plan's review entries for target dated after
// the test clock.
func (e *testEnv) futureReviews(t *testing.T, planID string, target domain.ReviewTarget) []domain.ReviewEntry {
	t.Helper()
	var out []domain.ReviewEntry
	for _, r := range e.reload(t, planID).ReviewSchedule {
		if r.Target == target && r.Date.After(e.clock.Now()) {
			out = append(out, r)
		}
	}
	return out
}
