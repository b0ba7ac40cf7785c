package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/gesta/internal/domain"
)

// QuestState selects quests by completion.
type QuestState string

const (
	QuestStateAll       QuestState = ""
	QuestStateOpen      QuestState = "open"
	QuestStateCompleted QuestState = "completed"
)

// QuestFilter narrows List. The zero value lists every quest, newest first.
type QuestFilter struct {
	State     QuestState
	DailyOnly bool
	Stat      domain.Stat
	Limit     int
}

type QuestRepo interface {
	Create(ctx context.Context, q *domain.Quest) error
	GetByID(ctx context.Context, id string) (*domain.Quest, error)
	List(ctx context.Context, f QuestFilter) ([]*domain.Quest, error)
	Update(ctx context.Context, q *domain.Quest) error
	Delete(ctx context.Context, id string) error
	// ReopenDailiesBefore clears completed_at on daily quests completed
	// before cutoff and returns how many were reopened.
	ReopenDailiesBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type PlayerRepo interface {
	Get(ctx context.Context, id string) (*domain.Player, error)
	Upsert(ctx context.Context, p *domain.Player) error
}

type CompletionRepo interface {
	Create(ctx context.Context, c *domain.Completion) error
	ListByQuest(ctx context.Context, questID string) ([]*domain.Completion, error)
	ListRecent(ctx context.Context, since time.Time) ([]*domain.Completion, error)
}
