package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/alexanderramin/gesta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCompletionRepo(db)
	ctx := context.Background()
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	daily := testutil.NewTestQuest("stretch", testutil.Daily(), testutil.WithStat(domain.StatStrength))
	other := testutil.NewTestQuest("read")
	testutil.SeedQuests(t, db, daily, other)

	first := &domain.Completion{QuestID: daily.ID, PlayerID: "default", XPAwarded: 42, TargetStat: domain.StatStrength, StatPoints: 4, CompletedAt: day}
	second := &domain.Completion{QuestID: daily.ID, PlayerID: "default", XPAwarded: 42, TargetStat: domain.StatStrength, StatPoints: 4, CompletedAt: day.AddDate(0, 0, 1)}
	third := &domain.Completion{QuestID: other.ID, PlayerID: "default", XPAwarded: 50, CompletedAt: day.AddDate(0, 0, 2)}
	for _, c := range []*domain.Completion{first, second, third} {
		require.NoError(t, repo.Create(ctx, c))
		assert.NotZero(t, c.ID)
	}

	byQuest, err := repo.ListByQuest(ctx, daily.ID)
	require.NoError(t, err)
	require.Len(t, byQuest, 2)
	assert.True(t, day.Equal(byQuest[0].CompletedAt))
	assert.Equal(t, domain.StatStrength, byQuest[0].TargetStat)
	assert.Equal(t, 4, byQuest[0].StatPoints)

	recent, err := repo.ListRecent(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, other.ID, recent[0].QuestID, "newest first")
	assert.Equal(t, domain.StatNone, recent[0].TargetStat)
}

func TestCompletionRepo_RequiresExistingQuest(t *testing.T) {
	repo := repository.NewSQLiteCompletionRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), &domain.Completion{
		QuestID: "missing", PlayerID: "default", XPAwarded: 10, CompletedAt: time.Now(),
	})
	assert.Error(t, err)
}
