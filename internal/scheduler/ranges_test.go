package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memorized(chapter int, verses ...int) []domain.VerseProgress {
	when := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	out := make([]domain.VerseProgress, 0, len(verses))
	for _, v := range verses {
		out = append(out, domain.NewVerseProgress("plan", chapter, v, when))
	}
	return out
}

type span struct{ chapter, start, end int }

func spans(ranges []domain.MemorizedRange) []span {
	out := make([]span, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, span{r.Chapter, r.Start, r.End})
	}
	return out
}

func TestMergeRanges_GapsSplitRuns(t *testing.T) {
	ranges := MergeRanges(memorized(1, 1, 2, 3, 5, 6))
	assert.Equal(t, []span{{1, 1, 3}, {1, 5, 6}}, spans(ranges))
	assert.Len(t, ranges[0].Verses, 3)
}

func TestMergeRanges_ChaptersNeverMerge(t *testing.T) {
	progress := append(memorized(1, 6, 7), memorized(2, 1, 2)...)
	assert.Equal(t, []span{{1, 6, 7}, {2, 1, 2}}, spans(MergeRanges(progress)))
}

func TestMergeRanges_IgnoresUnmemorizedAndDuplicates(t *testing.T) {
	progress := memorized(1, 1, 2, 2, 3)
	progress = append(progress, domain.VerseProgress{Chapter: 1, Verse: 4})
	assert.Equal(t, []span{{1, 1, 3}}, spans(MergeRanges(progress)))
}

func TestMergeRanges_Empty(t *testing.T) {
	assert.Nil(t, MergeRanges(nil))
}

func TestMergeRanges_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := append(memorized(3, 1, 2, 3, 4, 8, 9, 12), memorized(4, 2, 3)...)
	want := spans(MergeRanges(base))

	for trial := 0; trial < 50; trial++ {
		shuffled := append([]domain.VerseProgress(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, spans(MergeRanges(shuffled)), "trial %d", trial)
	}
}

func TestSplitRanges_Boundary(t *testing.T) {
	verses := make([]int, 12)
	for i := range verses {
		verses[i] = i + 1
	}
	got := ReviewRanges(memorized(1, verses...), 5)
	assert.Equal(t, []span{{1, 1, 5}, {1, 6, 10}, {1, 11, 12}}, spans(got))
	assert.Len(t, got[2].Verses, 2)

	exact := ReviewRanges(memorized(1, 1, 2, 3, 4, 5), 5)
	assert.Equal(t, []span{{1, 1, 5}}, spans(exact))
}

func TestSplitRanges_NonPositiveMax(t *testing.T) {
	got := SplitRanges(MergeRanges(memorized(1, 1, 2)), 0)
	assert.Equal(t, []span{{1, 1, 1}, {1, 2, 2}}, spans(got))
}

func TestFindRange(t *testing.T) {
	ranges := ReviewRanges(memorized(1, 1, 2, 3, 4, 5, 6, 7), 5)

	r, ok := FindRange(ranges, 1, 7)
	require.True(t, ok)
	assert.Equal(t, span{1, 6, 7}, span{r.Chapter, r.Start, r.End})

	_, ok = FindRange(ranges, 2, 1)
	assert.False(t, ok)
}
