package testutil

import (
	"time"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/google/uuid"
)

// QuestOption customizes a fixture quest.
type QuestOption func(*domain.Quest)

func WithDifficulty(d domain.Difficulty) QuestOption {
	return func(q *domain.Quest) {
		q.Difficulty = d
	}
}

func WithStat(s domain.Stat) QuestOption {
	return func(q *domain.Quest) {
		q.TargetStat = s
	}
}

func WithReward(xp int) QuestOption {
	return func(q *domain.Quest) {
		q.ExperienceReward = xp
	}
}

func WithTags(tags ...string) QuestOption {
	return func(q *domain.Quest) {
		q.Tags = tags
	}
}

func WithEpic(e domain.EpicElements) QuestOption {
	return func(q *domain.Quest) {
		q.Epic = &e
	}
}

func WithCreatedAt(t time.Time) QuestOption {
	return func(q *domain.Quest) {
		q.CreatedAt = t.UTC().Truncate(time.Second)
	}
}

func Daily() QuestOption {
	return func(q *domain.Quest) {
		q.IsDaily = true
	}
}

func CompletedAt(t time.Time) QuestOption {
	return func(q *domain.Quest) {
		ts := t.UTC().Truncate(time.Second)
		q.CompletedAt = &ts
	}
}

// NewTestQuest returns a manual STANDARD quest worth its base reward.
func NewTestQuest(title string, opts ...QuestOption) *domain.Quest {
	now := time.Now().UTC().Truncate(time.Second)
	q := &domain.Quest{
		ID:               uuid.New().String(),
		Title:            title,
		Description:      "Completa esta importante misión: " + title,
		Difficulty:       domain.DifficultyStandard,
		ExperienceReward: 50,
		GeneratedBy:      domain.ProvenanceManual,
		EnhancedBy:       domain.ProvenanceManualEnhancer,
		Tags:             []string{"manual"},
		EnhancedAt:       now,
		CreatedAt:        now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// NewTestPlayer returns the default player with the given progress.
func NewTestPlayer(xp int, points map[domain.Stat]int) *domain.Player {
	p := domain.NewPlayer("default")
	p.XP = xp
	for s, v := range points {
		p.StatPoints[s] = v
	}
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return p
}
