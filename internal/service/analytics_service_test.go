package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hafazan/internal/domain"
)

func memorizeAll(t *testing.T, env *testEnv, plan *domain.Plan, when func(verse int) (at int)) {
	t.Helper()
	for v := 1; v <= plan.TotalVerses; v++ {
		require.NoError(t, env.progress.MarkMemorized(context.Background(), plan.ID, plan.ChapterNumber, v, daysAfter(when(v))))
	}
}

func TestCompletionStatus_Early(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, 1, day0)

	done, err := env.analytics.IsPlanCompleted(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, done)

	memorizeAll(t, env, plan, func(int) int { return 0 })

	done, err = env.analytics.IsPlanCompleted(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, done)

	st, err := env.analytics.CompletionStatus(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, st.Completed)
	assert.Equal(t, 7, st.Progress)
	assert.Equal(t, 6, st.DaysEarly)
	assert.True(t, st.CompletedEarly)
	assert.Equal(t, "2025-03-16", domain.DayKey(st.OriginalEndDate))
}

func TestCompletionStatus_LateIsFlooredAtZero(t *testing.T) {
	env := newTestEnv(t)
	plan := env.createPlan(t, 1, day0)

	memorizeAll(t, env, plan, func(v int) int { return v + 3 })

	st, err := env.analytics.CompletionStatus(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.True(t, st.Completed)
	assert.Equal(t, 0, st.DaysEarly)
	assert.False(t, st.CompletedEarly)
}

func TestCompletionStatus_UnknownPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	st, err := env.analytics.CompletionStatus(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, st)

	done, err := env.analytics.IsPlanCompleted(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestStreak(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, 1, day0)
	for _, d := range []int{0, 1, 2, 4, 5} {
		require.NoError(t, env.progress.MarkMemorized(ctx, plan.ID, 1, d+1, daysAfter(d)))
	}

	s, err := env.analytics.Streak(ctx, plan.ID, daysAfter(5))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 3, s.Longest)

	s, err = env.analytics.Streak(ctx, plan.ID, daysAfter(6))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Current, "yesterday still counts")

	s, err = env.analytics.Streak(ctx, plan.ID, daysAfter(7))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Current, "a missed day resets the streak")
	assert.Equal(t, 3, s.Longest)
}

func TestNextSteps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, 1, day0)

	steps, err := env.analytics.NextSteps(ctx, plan.ID)
	require.NoError(t, err)
	assert.Nil(t, steps, "no next steps before completion")

	memorizeAll(t, env, plan, func(int) int { return 0 })
	_, err = env.plans.Create(ctx, CreatePlanRequest{Chapter: 114, VersesPerDay: 1})
	require.NoError(t, err)

	steps, err = env.analytics.NextSteps(ctx, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, steps)
	assert.True(t, steps.CanCreateNewPlan)
	assert.True(t, steps.HasOtherActivePlans)
	assert.True(t, steps.MurajaahContinues)
	assert.Equal(t, domain.AchievementGreat, steps.Achievement)
	require.NotEmpty(t, steps.Suggestions)
	assert.Equal(t, 2, steps.Suggestions[0].Chapter)
}
