package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/enhance"
	"github.com/alexanderramin/gesta/internal/intelligence"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/google/uuid"
)

type questService struct {
	quests   repository.QuestRepo
	players  repository.PlayerRepo
	uow      db.UnitOfWork
	rules    *progression.Rules
	enhancer *enhance.Enhancer
	drafts   intelligence.QuestDraftService
	now      func() time.Time
	observer UseCaseObserver
}

// Option configures the quest and player services.
type Option func(*options)

type options struct {
	now      func() time.Time
	observer UseCaseObserver
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver records every use case.
func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewQuestService(
	quests repository.QuestRepo,
	players repository.PlayerRepo,
	uow db.UnitOfWork,
	rules *progression.Rules,
	enhancer *enhance.Enhancer,
	drafts intelligence.QuestDraftService,
	opts ...Option,
) QuestService {
	o := buildOptions(opts)
	return &questService{
		quests:   quests,
		players:  players,
		uow:      uow,
		rules:    rules,
		enhancer: enhancer,
		drafts:   drafts,
		now:      o.now,
		observer: o.observer,
	}
}

func (s *questService) CreateManual(ctx context.Context, draft *domain.QuestDraft) (q *domain.Quest, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "create-quest", fields, time.Now(), &err)

	q, err = s.enhancer.EnhanceManual(draft)
	if err != nil {
		return nil, err
	}
	s.finalize(q)
	fields["difficulty"] = string(q.Difficulty)
	fields["stat"] = string(q.TargetStat)

	if err = s.quests.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *questService) CreateFromPrompt(ctx context.Context, req GenerateRequest) (q *domain.Quest, err error) {
	fields := map[string]any{"difficulty": string(req.Difficulty)}
	defer observe(ctx, s.observer, "generate-quest", fields, time.Now(), &err)

	player, err := s.players.Get(ctx, db.DefaultPlayerID)
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}
	if err = s.rules.RequireUnlocked(domain.FeatureAIQuestGeneration, s.rules.LevelFromXP(player.XP)); err != nil {
		return nil, err
	}

	q, err = s.drafts.Draft(ctx, req.Prompt, req.Preferred, req.Difficulty)
	if err != nil {
		return nil, err
	}
	s.finalize(q)
	fields["source"] = string(q.GeneratedBy)
	fields["stat"] = string(q.TargetStat)

	if err = s.quests.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// finalize assigns identity and guarantees the stored reward is never below
// what the quest's difficulty, daily flag and stat are worth.
func (s *questService) finalize(q *domain.Quest) {
	q.ID = uuid.New().String()
	q.CreatedAt = s.now().UTC().Truncate(time.Second)
	floor := s.rules.QuestXP(s.rules.BaseXP(q.Difficulty), q.IsDaily, q.TargetStat)
	if q.ExperienceReward < floor {
		q.ExperienceReward = floor
	}
}

func (s *questService) Get(ctx context.Context, ref string) (*domain.Quest, error) {
	id, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.quests.GetByID(ctx, id)
}

func (s *questService) List(ctx context.Context, f repository.QuestFilter) ([]*domain.Quest, error) {
	return s.quests.List(ctx, f)
}

func (s *questService) Complete(ctx context.Context, ref string) (result *CompletionResult, err error) {
	fields := map[string]any{"ref": ref}
	defer observe(ctx, s.observer, "complete-quest", fields, time.Now(), &err)

	id, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Second)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txQuests := repository.NewSQLiteQuestRepo(tx)
		txPlayers := repository.NewSQLitePlayerRepo(tx)
		txCompletions := repository.NewSQLiteCompletionRepo(tx)

		q, err := txQuests.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if q.IsCompleted() {
			return fmt.Errorf("%q: %w", q.Title, ErrAlreadyCompleted)
		}

		player, err := txPlayers.Get(ctx, db.DefaultPlayerID)
		if err != nil {
			return fmt.Errorf("loading player: %w", err)
		}

		result = s.award(q, player, now)

		q.CompletedAt = &now
		if err := txQuests.Update(ctx, q); err != nil {
			return err
		}
		if err := txPlayers.Upsert(ctx, player); err != nil {
			return err
		}
		return txCompletions.Create(ctx, &domain.Completion{
			QuestID:     q.ID,
			PlayerID:    player.ID,
			XPAwarded:   result.XPAwarded,
			TargetStat:  result.StatAwarded,
			StatPoints:  result.StatPoints,
			CompletedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	fields["xp"] = result.XPAwarded
	fields["level"] = result.LevelAfter
	return result, nil
}

// award applies the quest reward to player in memory.
func (s *questService) award(q *domain.Quest, p *domain.Player, now time.Time) *CompletionResult {
	before := s.rules.LevelFromXP(p.XP)

	p.XP += q.ExperienceReward
	p.QuestsCompleted++
	p.LastCompletedAt = &now
	p.UpdatedAt = now

	res := &CompletionResult{
		Quest:       q,
		Player:      p,
		XPAwarded:   q.ExperienceReward,
		LevelBefore: before,
		LevelAfter:  s.rules.LevelFromXP(p.XP),
	}

	if q.TargetStat.IsValid() {
		statBefore := s.rules.StatLevelFromPoints(p.StatPoints[q.TargetStat])
		res.StatAwarded = q.TargetStat
		res.StatPoints = s.rules.StatPointsForReward(q.ExperienceReward)
		p.StatPoints[q.TargetStat] += res.StatPoints
		res.StatLevel = s.rules.StatLevelFromPoints(p.StatPoints[q.TargetStat])
		res.StatLevelUp = res.StatLevel > statBefore
	}

	res.NewlyUnlocks = s.rules.NewlyUnlocked(res.LevelBefore, res.LevelAfter)
	return res
}

func (s *questService) Delete(ctx context.Context, ref string) (err error) {
	defer observe(ctx, s.observer, "delete-quest", map[string]any{"ref": ref}, time.Now(), &err)

	id, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}
	return s.quests.Delete(ctx, id)
}

func (s *questService) ResetDailies(ctx context.Context) (n int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "reset-dailies", fields, time.Now(), &err)

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n, err = s.quests.ReopenDailiesBefore(ctx, startOfDay)
	fields["reopened"] = n
	return n, err
}

// resolve maps a full ID or unique prefix to a quest ID.
func (s *questService) resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if _, err := uuid.Parse(ref); err == nil {
		return ref, nil
	}
	if len(ref) < MinRefLength {
		return "", fmt.Errorf("quest %q: %w", ref, repository.ErrNotFound)
	}

	all, err := s.quests.List(ctx, repository.QuestFilter{})
	if err != nil {
		return "", err
	}
	var match string
	for _, q := range all {
		if !strings.HasPrefix(q.ID, ref) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%q: %w", ref, ErrAmbiguousRef)
		}
		match = q.ID
	}
	if match == "" {
		return "", fmt.Errorf("quest %q: %w", ref, repository.ErrNotFound)
	}
	return match, nil
}
