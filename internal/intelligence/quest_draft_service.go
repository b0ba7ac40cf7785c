package intelligence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/enhance"
	"github.com/alexanderramin/gesta/internal/generation"
	"github.com/alexanderramin/gesta/internal/llm"
)

// errNoClient marks a draft request made while the model is disabled.
var errNoClient = errors.New("llm disabled")

// QuestDraftService turns a free-text request into a normalized quest.
type QuestDraftService interface {
	// Draft asks the model for a quest and falls back to the procedural
	// generator on any failure. It only errors on programming faults.
	Draft(ctx context.Context, prompt string, preferred domain.Stat, difficulty domain.Difficulty) (*domain.Quest, error)
}

type questDraftService struct {
	client    llm.LLMClient
	generator *generation.Generator
	enhancer  *enhance.Enhancer
	logger    *slog.Logger
}

// NewQuestDraftService wires the AI path. client may be nil, in which case
// every request is served by the generator.
func NewQuestDraftService(client llm.LLMClient, gen *generation.Generator, enh *enhance.Enhancer, logger *slog.Logger) QuestDraftService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &questDraftService{client: client, generator: gen, enhancer: enh, logger: logger}
}

func (s *questDraftService) Draft(ctx context.Context, prompt string, preferred domain.Stat, difficulty domain.Difficulty) (*domain.Quest, error) {
	draft, err := s.fromModel(ctx, prompt, preferred, difficulty)
	if err != nil {
		s.logger.Info("quest_fallback", "reason", llm.ErrorCode(err), "error", err.Error())
		generated := s.generator.GenerateQuest(prompt, preferred, difficulty)
		draft = generated.Draft()
	}
	return s.enhancer.EnhanceAI(draft, prompt)
}

func (s *questDraftService) fromModel(ctx context.Context, prompt string, preferred domain.Stat, difficulty domain.Difficulty) (*domain.QuestDraft, error) {
	if s.client == nil {
		return nil, errNoClient
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuestGenerate,
		SystemPrompt: questSystemPrompt,
		UserPrompt:   buildQuestPrompt(prompt, preferred, difficulty),
		JSON:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("llm quest generation failed: %w", err)
	}

	draft, err := llm.ExtractJSON[domain.QuestDraft](resp.Text, validateQuestDraft)
	if err != nil {
		return nil, err
	}

	// Hints the user fixed explicitly win over what the model left out.
	if strings.TrimSpace(draft.Difficulty) == "" && difficulty.IsValid() {
		draft.Difficulty = string(difficulty)
	}
	if strings.TrimSpace(draft.TargetStat) == "" && preferred.IsValid() {
		draft.TargetStat = string(preferred)
	}
	draft.Source = domain.ProvenanceAI
	return &draft, nil
}

// validateQuestDraft rejects output that carries no quest at all. Anything
// partially usable is left for the enhancer to repair.
func validateQuestDraft(d domain.QuestDraft) error {
	if d.Title == nil && d.Description == nil {
		return fmt.Errorf("title or description is required")
	}
	return nil
}
