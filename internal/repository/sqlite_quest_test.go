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

func TestQuestRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteQuestRepo(db)
	ctx := context.Background()

	q := testutil.NewTestQuest("Ir al gimnasio",
		testutil.WithDifficulty(domain.DifficultyLong),
		testutil.WithStat(domain.StatStrength),
		testutil.WithReward(110),
		testutil.WithTags("gym", "fallback"),
		testutil.WithEpic(domain.EpicElements{Realm: "templo del hierro", Enemy: "la pereza", Weapon: "barra", Reward: "fuerza"}),
		testutil.Daily(),
	)
	q.GeneratedBy = domain.ProvenanceFallback
	q.EnhancedBy = domain.ProvenanceAIEnhancer
	require.NoError(t, repo.Create(ctx, q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)

	assert.Equal(t, q.Title, got.Title)
	assert.Equal(t, q.Description, got.Description)
	assert.Equal(t, domain.DifficultyLong, got.Difficulty)
	assert.Equal(t, domain.StatStrength, got.TargetStat)
	assert.Equal(t, 110, got.ExperienceReward)
	assert.True(t, got.IsDaily)
	assert.Equal(t, domain.ProvenanceFallback, got.GeneratedBy)
	assert.Equal(t, domain.ProvenanceAIEnhancer, got.EnhancedBy)
	assert.Equal(t, []string{"gym", "fallback"}, got.Tags)
	require.NotNil(t, got.Epic)
	assert.Equal(t, *q.Epic, *got.Epic)
	assert.True(t, q.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, q.EnhancedAt.Equal(got.EnhancedAt))
	assert.Nil(t, got.CompletedAt)
}

func TestQuestRepo_NoStatNoEpicRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteQuestRepo(db)
	ctx := context.Background()

	q := testutil.NewTestQuest("Ordenar el escritorio", testutil.WithTags())
	q.Tags = nil
	require.NoError(t, repo.Create(ctx, q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatNone, got.TargetStat)
	assert.Nil(t, got.Epic)
	assert.Equal(t, []string{}, got.Tags)
}

func TestQuestRepo_GetByID_NotFound(t *testing.T) {
	repo := repository.NewSQLiteQuestRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuestRepo_List_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteQuestRepo(db)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	gym := testutil.NewTestQuest("gym", testutil.WithStat(domain.StatStrength), testutil.WithCreatedAt(base))
	read := testutil.NewTestQuest("read", testutil.WithStat(domain.StatWisdom), testutil.WithCreatedAt(base.Add(time.Hour)),
		testutil.CompletedAt(base.Add(2*time.Hour)))
	call := testutil.NewTestQuest("call", testutil.WithStat(domain.StatCharisma), testutil.Daily(),
		testutil.WithCreatedAt(base.Add(3*time.Hour)))
	testutil.SeedQuests(t, db, gym, read, call)

	all, err := repo.List(ctx, repository.QuestFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"call", "read", "gym"}, titles(all), "newest first")

	open, err := repo.List(ctx, repository.QuestFilter{State: repository.QuestStateOpen})
	require.NoError(t, err)
	assert.Equal(t, []string{"call", "gym"}, titles(open))

	done, err := repo.List(ctx, repository.QuestFilter{State: repository.QuestStateCompleted})
	require.NoError(t, err)
	assert.Equal(t, []string{"read"}, titles(done))

	dailies, err := repo.List(ctx, repository.QuestFilter{DailyOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"call"}, titles(dailies))

	strength, err := repo.List(ctx, repository.QuestFilter{Stat: domain.StatStrength})
	require.NoError(t, err)
	assert.Equal(t, []string{"gym"}, titles(strength))

	limited, err := repo.List(ctx, repository.QuestFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"call"}, titles(limited))
}

func TestQuestRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteQuestRepo(db)
	ctx := context.Background()

	q := testutil.NewTestQuest("Leer")
	testutil.SeedQuests(t, db, q)

	done := time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC)
	q.Title = "Leer dos capítulos"
	q.TargetStat = domain.StatWisdom
	q.ExperienceReward = 60
	q.CompletedAt = &done
	require.NoError(t, repo.Update(ctx, q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leer dos capítulos", got.Title)
	assert.Equal(t, domain.StatWisdom, got.TargetStat)
	assert.Equal(t, 60, got.ExperienceReward)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, done.Equal(*got.CompletedAt))
}

func TestQuestRepo_UpdateAndDelete_NotFound(t *testing.T) {
	repo := repository.NewSQLiteQuestRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	err := repo.Update(ctx, testutil.NewTestQuest("ghost"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuestRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteQuestRepo(db)
	ctx := context.Background()

	q := testutil.NewTestQuest("Borrar")
	testutil.SeedQuests(t, db, q)

	require.NoError(t, repo.Delete(ctx, q.ID))
	_, err := repo.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuestRepo_ReopenDailiesBefore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteQuestRepo(db)
	ctx := context.Background()
	today := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	yesterday := testutil.NewTestQuest("yesterday", testutil.Daily(), testutil.CompletedAt(today.Add(-2*time.Hour)))
	thisMorning := testutil.NewTestQuest("this morning", testutil.Daily(), testutil.CompletedAt(today.Add(8*time.Hour)))
	oneOff := testutil.NewTestQuest("one-off", testutil.CompletedAt(today.Add(-48*time.Hour)))
	testutil.SeedQuests(t, db, yesterday, thisMorning, oneOff)

	n, err := repo.ReopenDailiesBefore(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := repo.GetByID(ctx, yesterday.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CompletedAt)

	got, err = repo.GetByID(ctx, thisMorning.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.CompletedAt)

	got, err = repo.GetByID(ctx, oneOff.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.CompletedAt, "non-daily quests stay completed")
}

func titles(qs []*domain.Quest) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Title)
	}
	return out
}
