package enhance

import (
	"testing"
	"time"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/generation"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEnhancer() *Enhancer {
	return New(classify.Default(), progression.Default(), WithClock(func() time.Time { return fixedNow }))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestEnhanceManual_DetectsStatAndRecomputesXP(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceManual(&domain.QuestDraft{
		Title:      strPtr("Go to gym and workout"),
		Difficulty: "STANDARD",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatStrength, q.TargetStat)
	assert.Greater(t, q.ExperienceReward, 50)
	assert.Equal(t, 60, q.ExperienceReward)
	assert.Equal(t, domain.ProvenanceManualEnhancer, q.EnhancedBy)
	assert.Equal(t, domain.ProvenanceManual, q.GeneratedBy)
	assert.Equal(t, fixedNow, q.EnhancedAt)
}

func TestEnhanceManual_StatOverridesCallerReward(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceManual(&domain.QuestDraft{
		Title:            strPtr("Practice piano"),
		Difficulty:       "LONG",
		TargetStat:       "dexterity",
		IsDaily:          true,
		ExperienceReward: intPtr(9999),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatDexterity, q.TargetStat)
	assert.Equal(t, 130, q.ExperienceReward)
}

func TestEnhanceManual_NoStatLeavesRewardAlone(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceManual(&domain.QuestDraft{
		Title:            strPtr("Water the plants"),
		Difficulty:       "QUICK",
		ExperienceReward: intPtr(40),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatNone, q.TargetStat)
	assert.Equal(t, 40, q.ExperienceReward)

	q, err = e.EnhanceManual(&domain.QuestDraft{Title: strPtr("Water the plants")})
	require.NoError(t, err)
	assert.Equal(t, 0, q.ExperienceReward)
}

func TestEnhanceManual_FillsMissingFields(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceManual(&domain.QuestDraft{Title: strPtr("  Water the plants "), Difficulty: "nope"})

	require.NoError(t, err)
	assert.Equal(t, "Water the plants", q.Title)
	assert.Equal(t, "Completa esta importante misión: Water the plants", q.Description)
	assert.Equal(t, domain.DifficultyStandard, q.Difficulty)
	assert.Equal(t, []string{TagManual}, q.Tags)

	q, err = e.EnhanceManual(&domain.QuestDraft{})
	require.NoError(t, err)
	assert.Equal(t, UntitledQuestTitle, q.Title)
	assert.NotEmpty(t, q.Description)
}

func TestEnhanceManual_KeepsProvenanceTag(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceManual(&domain.QuestDraft{Title: strPtr("Go to gym"), Tags: domain.Tags("custom")})
	require.NoError(t, err)
	assert.Equal(t, []string{"custom", TagManual}, q.Tags)

	again, err := e.EnhanceManual(q.Draft())
	require.NoError(t, err)
	assert.Equal(t, []string{"custom", TagManual}, again.Tags)

	q, err = e.EnhanceManual(&domain.QuestDraft{Title: strPtr("Go to gym"), Tags: domain.Tags(TagManual, "gym")})
	require.NoError(t, err)
	assert.Equal(t, []string{TagManual, "gym"}, q.Tags)
}

func TestEnhanceManual_NegativeRewardCoerced(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceManual(&domain.QuestDraft{Title: strPtr("Water the plants"), ExperienceReward: intPtr(-5)})

	require.NoError(t, err)
	assert.Equal(t, 0, q.ExperienceReward)
}

func TestEnhanceAI_ShortTitleReplaced(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceAI(&domain.QuestDraft{Title: strPtr("Go"), Difficulty: "STANDARD"}, "go to gym")

	require.NoError(t, err)
	assert.Equal(t, "Misión: go to gym", q.Title)
	assert.Equal(t, "Completa esta importante misión: go to gym", q.Description)
	assert.Equal(t, domain.ProvenanceAIEnhancer, q.EnhancedBy)
	assert.Equal(t, domain.ProvenanceAI, q.GeneratedBy)
	assert.Equal(t, fixedNow, q.EnhancedAt)
}

func TestEnhanceAI_MissingTitleReplaced(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceAI(&domain.QuestDraft{}, "read a book")

	require.NoError(t, err)
	assert.Equal(t, "Misión: read a book", q.Title)
}

func TestEnhanceAI_InvalidDifficulty(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceAI(&domain.QuestDraft{Title: strPtr("Valid title"), Difficulty: "INVALID"}, "x")

	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyStandard, q.Difficulty)
	assert.Equal(t, "Valid title", q.Title)
}

func TestEnhanceAI_Tags(t *testing.T) {
	e := newTestEnhancer()

	q, err := e.EnhanceAI(&domain.QuestDraft{Title: strPtr("Valid title"), Tags: domain.TagField{Present: true}}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai-generated"}, q.Tags)

	q, err = e.EnhanceAI(&domain.QuestDraft{Title: strPtr("Valid title")}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai-generated"}, q.Tags)

	q, err = e.EnhanceAI(&domain.QuestDraft{Title: strPtr("Valid title"), Tags: domain.Tags("custom-tag")}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"custom-tag"}, q.Tags)
}

func TestEnhance_NilDraft(t *testing.T) {
	e := newTestEnhancer()

	_, err := e.EnhanceManual(nil)
	assert.ErrorIs(t, err, ErrNilDraft)

	_, err = e.EnhanceAI(nil, "x")
	assert.ErrorIs(t, err, ErrNilDraft)
}

func TestEnhance_Idempotent(t *testing.T) {
	e := newTestEnhancer()

	drafts := []*domain.QuestDraft{
		{Title: strPtr("Go"), Difficulty: "weird", Tags: domain.TagField{Present: true}},
		{Title: strPtr("Study chemistry"), Description: strPtr("chapter 3"), Difficulty: "EPIC", IsDaily: true},
		{},
	}
	for _, d := range drafts {
		first, err := e.EnhanceAI(d, "go to gym")
		require.NoError(t, err)
		second, err := e.EnhanceAI(first.Draft(), "something else")
		require.NoError(t, err)
		assertSameNarrative(t, first, second)

		first, err = e.EnhanceManual(d)
		require.NoError(t, err)
		second, err = e.EnhanceManual(first.Draft())
		require.NoError(t, err)
		assertSameNarrative(t, first, second)
		assert.Equal(t, first.ExperienceReward, second.ExperienceReward)
		assert.Equal(t, first.TargetStat, second.TargetStat)
	}
}

func TestEnhanceAI_GeneratedQuestRoundTrip(t *testing.T) {
	e := newTestEnhancer()
	g := generation.NewGenerator(classify.Default(), progression.Default(), generation.DefaultLore(), generation.NewSeededPicker(3))

	for _, prompt := range []string{"go to gym", "random text", "call a friend", ""} {
		for _, d := range domain.AllDifficulties {
			generated := g.GenerateQuest(prompt, domain.StatNone, d)
			enhanced, err := e.EnhanceAI(generated.Draft(), prompt)
			require.NoError(t, err)

			assertSameNarrative(t, &generated, enhanced)
			assert.Equal(t, generated.TargetStat, enhanced.TargetStat)
			assert.Equal(t, generated.ExperienceReward, enhanced.ExperienceReward)
			assert.Equal(t, domain.ProvenanceFallback, enhanced.GeneratedBy)
			assert.Equal(t, generated.Epic, enhanced.Epic)
		}
	}
}

func assertSameNarrative(t *testing.T, want, got *domain.Quest) {
	t.Helper()
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Difficulty, got.Difficulty)
	assert.Equal(t, want.Tags, got.Tags)
}
