package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepo_AppendCreatesThenExtends(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	key := domain.RangeKey{PlanID: "p1", Chapter: 1, Target: domain.VerseRange(1, 5)}

	_, err := repos.Reviews.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	first := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Reviews.AppendSession(ctx, key, domain.ReviewSession{CompletedAt: first}))
	require.NoError(t, repos.Reviews.AppendSession(ctx, key, domain.ReviewSession{CompletedAt: first.AddDate(0, 0, 7)}))

	h, err := repos.Reviews.Get(ctx, key)
	require.NoError(t, err)
	require.Len(t, h.Sessions, 2)
	assert.Equal(t, "2025-03-08", h.Sessions[0].Day)
	assert.Equal(t, key, h.Key)
}

func TestReviewRepo_ListByPlanKeepsLegacyKeysDistinct(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	when := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)
	ranged := domain.RangeKey{PlanID: "p1", Chapter: 1, Target: domain.VerseRange(3, 3)}
	legacy := domain.RangeKey{PlanID: "p1", Chapter: 1, Target: domain.SingleVerse(3)}
	other := domain.RangeKey{PlanID: "p2", Chapter: 1, Target: domain.VerseRange(1, 2)}

	for _, k := range []domain.RangeKey{ranged, legacy, other} {
		require.NoError(t, repos.Reviews.AppendSession(ctx, k, domain.ReviewSession{CompletedAt: when}))
	}

	histories, err := repos.Reviews.ListByPlan(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, histories, 2)
	assert.Contains(t, histories, "p1_1_3_3")
	assert.Contains(t, histories, "p1_1_3")

	require.NoError(t, repos.Reviews.DeleteByPlan(ctx, "p1"))
	histories, err = repos.Reviews.ListByPlan(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, histories)
	_, err = repos.Reviews.Get(ctx, other)
	assert.NoError(t, err)
}
