package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/importer"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/alexanderramin/gesta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_StoresEveryQuest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	file, err := importer.ParseImportFile([]byte(`{"quests": [
		{"title": "go to gym", "difficulty": "quick"},
		{"description": "ordenar el armario", "difficulty": "long", "experienceReward": 5, "tags": ["casa"]}
	]}`))
	require.NoError(t, err)

	res, err := f.svc.Import(ctx, file)
	require.NoError(t, err)
	require.Len(t, res.Quests, 2)

	assert.Equal(t, domain.StatStrength, res.Quests[0].TargetStat)
	assert.Equal(t, 35, res.Quests[0].ExperienceReward)
	assert.Equal(t, "Misión: ordenar el armario", res.Quests[1].Title)
	assert.Equal(t, 100, res.Quests[1].ExperienceReward, "reward floor applies to imports")
	assert.NotEqual(t, res.Quests[0].ID, res.Quests[1].ID)

	stored, err := f.quests.List(ctx, repository.QuestFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, 2, f.obs.last().Fields["count"])
}

func TestImport_RejectsInvalidFileBeforeWriting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	file := &importer.ImportFile{Quests: []domain.QuestDraft{
		{Title: strPtr("ok")},
		{Difficulty: "legendary"},
	}}

	_, err := f.svc.Import(ctx, file)
	require.ErrorIs(t, err, ErrInvalidImport)
	assert.Contains(t, err.Error(), "(2 errors)")
	assert.Contains(t, err.Error(), "quests[1]: title or description is required")

	stored, err := f.quests.List(ctx, repository.QuestFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestImport_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	errDisk := errors.New("disk full")
	f := newFixtureWithUoW(t, database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errDisk})
	ctx := context.Background()
	file := &importer.ImportFile{Quests: []domain.QuestDraft{
		{Title: strPtr("uno")},
		{Title: strPtr("dos")},
	}}

	_, err := f.svc.Import(ctx, file)
	require.ErrorIs(t, err, errDisk)

	stored, err := f.quests.List(ctx, repository.QuestFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored, "first quest is rolled back with the second")
}
