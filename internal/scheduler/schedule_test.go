package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule_RemainderOnLastDay(t *testing.T) {
	start := time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)
	entries := BuildSchedule(112, 7, start, 3)

	require.Len(t, entries, 7)
	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, e := range entries {
		assert.Equal(t, 112, e.Chapter)
		assert.Equal(t, i+1, e.Verse)
	}
	assert.Equal(t, day1, entries[0].Date)
	assert.Equal(t, day1, entries[2].Date)
	assert.Equal(t, day1.AddDate(0, 0, 1), entries[3].Date)
	assert.Equal(t, day1.AddDate(0, 0, 2), entries[6].Date, "verse 7 alone on the third day")
}

func TestBuildSchedule_ClampsPace(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, pace := range []int{0, -3} {
		entries := BuildSchedule(1, 3, start, pace)
		require.Len(t, entries, 3)
		assert.Equal(t, start.AddDate(0, 0, 2), entries[2].Date)
	}
}

func TestBuildSchedule_Empty(t *testing.T) {
	assert.Empty(t, BuildSchedule(1, 0, time.Now(), 2))
}

func TestBuildSchedule_CrossesMonthBoundary(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	entries := BuildSchedule(1, 2, start, 1)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), entries[1].Date)
}

// TestBuildSchedule_Invariants_Partition property-tests that the schedule is
// a contiguous 1..N partition with at most pace verses per day on
// consecutive days.
func TestBuildSchedule_Invariants_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		total := rng.Intn(286) + 1
		pace := rng.Intn(10) + 1
		start := base.AddDate(0, 0, rng.Intn(365)).Add(time.Duration(rng.Intn(24)) * time.Hour)

		entries := BuildSchedule(2, total, start, pace)
		require.Len(t, entries, total, "trial %d", trial)

		perDay := map[string]int{}
		for i, e := range entries {
			assert.Equal(t, i+1, e.Verse, "trial %d: verses must be 1..N in order", trial)
			perDay[domain.DayKey(e.Date)]++
			if i > 0 {
				gap := domain.DaysBetween(entries[i-1].Date, e.Date)
				assert.True(t, gap == 0 || gap == 1, "trial %d: days must be consecutive", trial)
			}
		}
		for day, n := range perDay {
			assert.LessOrEqual(t, n, pace, "trial %d: day %s over pace", trial, day)
		}
		wantDays := (total + pace - 1) / pace
		assert.Len(t, perDay, wantDays, "trial %d", trial)
		assert.True(t, domain.SameDay(entries[0].Date, start))
	}
}
