package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_DefaultsWhenUnsaved(t *testing.T) {
	repos := newTestRepos(t)
	got, err := repos.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsRepo_SaveRoundTrip(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	s := domain.DefaultSettings()
	s.General.MurajaahFrequencyDays = 3
	s.General.ShowTranslation = false
	s.Hafazan.HiddenSets = 4

	require.NoError(t, repos.Settings.Save(ctx, s))
	got, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSettingsRepo_PartialDocumentKeepsDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repos := NewKVRepos(database, nil)
	ctx := context.Background()
	require.NoError(t, NewSQLiteKVStore(database).Put(ctx, KeySettings, []byte(`{"general":{"murajaahFrequency":2}}`)))

	got, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.General.MurajaahFrequencyDays)
	assert.Equal(t, 5, got.General.MurajaahRangeSize)
	assert.Equal(t, domain.DefaultSettings().Hafazan, got.Hafazan)
}

func TestSettingsRepo_MalformedFallsBackToDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repos := NewKVRepos(database, nil)
	ctx := context.Background()
	require.NoError(t, NewSQLiteKVStore(database).Put(ctx, KeySettings, []byte(`not json`)))

	got, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}
