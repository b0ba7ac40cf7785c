package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/enhance"
	"github.com/alexanderramin/gesta/internal/generation"
	"github.com/alexanderramin/gesta/internal/llm"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	last     llm.GenerateRequest
	calls    int
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

// firstPicker always picks index 0.
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService(client llm.LLMClient) QuestDraftService {
	c := classify.Default()
	r := progression.Default()
	gen := generation.NewGenerator(c, r, generation.DefaultLore(), firstPicker{})
	enh := enhance.New(c, r, enhance.WithClock(func() time.Time { return fixedNow }))
	return NewQuestDraftService(client, gen, enh, nil)
}

func TestDraft_UsesModelOutput(t *testing.T) {
	client := &mockLLMClient{response: `{
		"title": "Forja del Titán",
		"description": "Levanta el hierro antes del alba.",
		"difficulty": "LONG",
		"targetStat": "STRENGTH",
		"experienceReward": 110,
		"isDaily": false,
		"tags": ["gym"],
		"epicElements": {"realm": "templo del hierro", "enemy": "la pereza", "weapon": "barra", "reward": "fuerza"}
	}`}
	svc := newTestService(client)

	q, err := svc.Draft(context.Background(), "go to gym", domain.StatNone, domain.DifficultyStandard)

	require.NoError(t, err)
	assert.Equal(t, "Forja del Titán", q.Title)
	assert.Equal(t, domain.DifficultyLong, q.Difficulty)
	assert.Equal(t, domain.StatStrength, q.TargetStat)
	assert.Equal(t, 110, q.ExperienceReward)
	assert.Equal(t, []string{"gym"}, q.Tags)
	assert.Equal(t, domain.ProvenanceAI, q.GeneratedBy)
	assert.Equal(t, domain.ProvenanceAIEnhancer, q.EnhancedBy)
	require.NotNil(t, q.Epic)
	assert.Equal(t, "templo del hierro", q.Epic.Realm)
	assert.Equal(t, fixedNow, q.EnhancedAt)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, llm.TaskQuestGenerate, client.last.Task)
	assert.True(t, client.last.JSON)
	assert.Contains(t, client.last.UserPrompt, "Task: go to gym")
	assert.Contains(t, client.last.UserPrompt, "Difficulty: STANDARD")
	assert.NotContains(t, client.last.UserPrompt, "Target stat")
}

func TestDraft_RepairsPartialModelOutput(t *testing.T) {
	client := &mockLLMClient{response: "```json\n{\"title\": \"ab\", \"tags\": \"gym\"}\n```"}
	svc := newTestService(client)

	q, err := svc.Draft(context.Background(), "go to gym", domain.StatDexterity, domain.DifficultyQuick)

	require.NoError(t, err)
	assert.Equal(t, "Misión: go to gym", q.Title)
	assert.Equal(t, "Completa esta importante misión: go to gym", q.Description)
	assert.Equal(t, domain.DifficultyQuick, q.Difficulty)
	assert.Equal(t, domain.StatDexterity, q.TargetStat)
	assert.Equal(t, []string{"ai-generated"}, q.Tags)
	assert.Equal(t, domain.ProvenanceAI, q.GeneratedBy)
}

func TestDraft_FallbackWhenLLMDown(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrOllamaUnavailable}
	svc := newTestService(client)

	q, err := svc.Draft(context.Background(), "go to gym", domain.StatNone, domain.DifficultyStandard)

	require.NoError(t, err)
	assert.Equal(t, "Aventura Noble: Forjar en la Arena de Acero", q.Title)
	assert.Equal(t, domain.StatStrength, q.TargetStat)
	assert.Equal(t, 70, q.ExperienceReward)
	assert.Equal(t, []string{"fallback", "standard", "strength"}, q.Tags)
	assert.Equal(t, domain.ProvenanceFallback, q.GeneratedBy)
	assert.Equal(t, domain.ProvenanceAIEnhancer, q.EnhancedBy)
	require.NotNil(t, q.Epic)
}

func TestDraft_FallbackOnInvalidOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose", "I am unable to help with that."},
		{"empty object", "{}"},
		{"no usable field", `{"title": 42, "description": false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&mockLLMClient{response: tt.response})

			q, err := svc.Draft(context.Background(), "study math", domain.StatNone, domain.DifficultyLong)

			require.NoError(t, err)
			assert.Equal(t, domain.ProvenanceFallback, q.GeneratedBy)
			assert.Equal(t, domain.StatWisdom, q.TargetStat)
			assert.Equal(t, 120, q.ExperienceReward)
		})
	}
}

func TestDraft_RepairsWrongFieldTypes(t *testing.T) {
	client := &mockLLMClient{response: `{"title":"Forja tu cuerpo en el gimnasio","description":"Levanta pesas","difficulty":3,"tags":["gym"]}`}
	svc := newTestService(client)

	q, err := svc.Draft(context.Background(), "go to gym", domain.StatNone, domain.DifficultyQuick)

	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceAI, q.GeneratedBy)
	assert.Equal(t, "Forja tu cuerpo en el gimnasio", q.Title)
	assert.Equal(t, "Levanta pesas", q.Description)
	assert.Equal(t, domain.DifficultyStandard, q.Difficulty)
	assert.Equal(t, []string{"gym"}, q.Tags)
}

func TestDraft_NilClientAlwaysFallsBack(t *testing.T) {
	svc := newTestService(nil)

	q, err := svc.Draft(context.Background(), "random text", domain.StatNone, domain.DifficultyEpic)

	require.NoError(t, err)
	assert.Equal(t, "Saga Mítica: random text", q.Title)
	assert.Equal(t, domain.StatNone, q.TargetStat)
	assert.Equal(t, 210, q.ExperienceReward)
	assert.Equal(t, domain.ProvenanceFallback, q.GeneratedBy)
}

func TestBuildQuestPrompt_IncludesHints(t *testing.T) {
	p := buildQuestPrompt("  call mom  ", domain.StatCharisma, domain.DifficultyQuick)

	assert.Equal(t, "Task: call mom\nDifficulty: QUICK\nTarget stat: CHARISMA\n", p)
}
