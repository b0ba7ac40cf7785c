package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/repository"
)

type playerService struct {
	players     repository.PlayerRepo
	quests      repository.QuestRepo
	completions repository.CompletionRepo
	rules       *progression.Rules
	now         func() time.Time
}

func NewPlayerService(
	players repository.PlayerRepo,
	quests repository.QuestRepo,
	completions repository.CompletionRepo,
	rules *progression.Rules,
	opts ...Option,
) PlayerService {
	o := buildOptions(opts)
	return &playerService{
		players:     players,
		quests:      quests,
		completions: completions,
		rules:       rules,
		now:         o.now,
	}
}

func (s *playerService) Status(ctx context.Context) (*StatusView, error) {
	p, err := s.players.Get(ctx, db.DefaultPlayerID)
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}

	level := s.rules.LevelFromXP(p.XP)
	view := &StatusView{
		PlayerID:        p.ID,
		Level:           level,
		XP:              p.XP,
		XPToNext:        s.rules.XPToNextLevel(p.XP),
		LevelProgress:   s.rules.LevelProgress(p.XP),
		IsMaxLevel:      s.rules.IsMaxLevel(level),
		QuestsCompleted: p.QuestsCompleted,
		Unlocked:        s.rules.UnlockedFeatures(level),
	}
	if next, ok := s.rules.NextUnlock(level); ok {
		view.NextUnlock = &next
	}

	for _, stat := range domain.AllStats {
		points := p.StatPoints[stat]
		view.Stats = append(view.Stats, StatView{
			Stat:         stat,
			Points:       points,
			Level:        s.rules.StatLevelFromPoints(points),
			PointsToNext: s.rules.PointsToNextStatLevel(points),
			Progress:     s.rules.StatLevelProgress(points),
		})
	}

	open, err := s.quests.List(ctx, repository.QuestFilter{State: repository.QuestStateOpen})
	if err != nil {
		return nil, err
	}
	view.OpenQuests = len(open)

	now := s.now()
	today, err := s.completions.ListRecent(ctx, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()))
	if err != nil {
		return nil, err
	}
	view.CompletedToday = len(today)

	return view, nil
}

func (s *playerService) History(ctx context.Context, days int) ([]*domain.Completion, error) {
	if days <= 0 {
		days = 7
	}
	return s.completions.ListRecent(ctx, s.now().AddDate(0, 0, -days))
}
