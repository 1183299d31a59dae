package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CreateUpdateGet(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	a := testutil.NewTestActivity("p1", testutil.WithTarget(domain.VerseRange(1, 5)), testutil.WithSessionType(domain.SessionMurajaah))
	require.NoError(t, repos.Activities.Create(ctx, a))

	a.CompletedReps = 2
	a.DurationSec = 90
	require.NoError(t, repos.Activities.Update(ctx, a))

	got, err := repos.Activities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerseRange(1, 5), got.Target)
	assert.Equal(t, domain.SessionMurajaah, got.SessionType)
	assert.Equal(t, 2, got.CompletedReps)
	assert.Equal(t, 90, got.DurationSec)
	assert.True(t, a.StartTime.Equal(got.StartTime))

	missing := testutil.NewTestActivity("p1")
	assert.ErrorIs(t, repos.Activities.Update(ctx, missing), ErrNotFound)
	_, err = repos.Activities.GetByID(ctx, missing.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_ListFiltersNewestFirst(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	old := testutil.NewTestActivity("p1", testutil.WithTimestamp(base), testutil.WithCompleted(8))
	mid := testutil.NewTestActivity("p1", testutil.WithTimestamp(base.Add(time.Hour)), testutil.WithSessionType(domain.SessionMurajaah))
	recent := testutil.NewTestActivity("p2", testutil.WithTimestamp(base.Add(2*time.Hour)))
	for _, a := range []*domain.Activity{old, mid, recent} {
		require.NoError(t, repos.Activities.Create(ctx, a))
	}

	all, err := repos.Activities.List(ctx, domain.FilterAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, recent.ID, all[0].ID)
	assert.Equal(t, old.ID, all[2].ID)

	incomplete, err := repos.Activities.List(ctx, domain.FilterIncomplete)
	require.NoError(t, err)
	assert.Len(t, incomplete, 2)

	review, err := repos.Activities.List(ctx, domain.FilterMurajaah)
	require.NoError(t, err)
	require.Len(t, review, 1)
	assert.Equal(t, mid.ID, review[0].ID)

	require.NoError(t, repos.Activities.DeleteByPlan(ctx, "p1"))
	all, err = repos.Activities.List(ctx, domain.FilterAll)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, recent.ID, all[0].ID)
}
