package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/importer"
	"github.com/alexanderramin/gesta/internal/repository"
)

var (
	// ErrAlreadyCompleted is returned when a quest is turned in twice.
	ErrAlreadyCompleted = errors.New("quest already completed")

	// ErrAmbiguousRef is returned when a short quest reference matches
	// more than one quest.
	ErrAmbiguousRef = errors.New("quest reference is ambiguous")

	// ErrInvalidImport wraps the validation report of a rejected import file.
	ErrInvalidImport = errors.New("import validation failed")
)

// MinRefLength is the shortest ID prefix accepted as a quest reference.
const MinRefLength = 4

// GenerateRequest is a free-text quest request for the AI path.
type GenerateRequest struct {
	Prompt     string
	Preferred  domain.Stat
	Difficulty domain.Difficulty
}

type QuestService interface {
	CreateManual(ctx context.Context, draft *domain.QuestDraft) (*domain.Quest, error)
	CreateFromPrompt(ctx context.Context, req GenerateRequest) (*domain.Quest, error)
	// Get accepts a full ID or a unique prefix of at least MinRefLength.
	Get(ctx context.Context, ref string) (*domain.Quest, error)
	List(ctx context.Context, f repository.QuestFilter) ([]*domain.Quest, error)
	Complete(ctx context.Context, ref string) (*CompletionResult, error)
	Delete(ctx context.Context, ref string) error
	// ResetDailies reopens daily quests completed before today.
	ResetDailies(ctx context.Context) (int, error)
	// Import stores every quest in f or none of them.
	Import(ctx context.Context, f *importer.ImportFile) (*ImportResult, error)
}

type PlayerService interface {
	Status(ctx context.Context) (*StatusView, error)
	History(ctx context.Context, days int) ([]*domain.Completion, error)
}
