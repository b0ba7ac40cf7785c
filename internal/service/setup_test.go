package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/enhance"
	"github.com/alexanderramin/gesta/internal/generation"
	"github.com/alexanderramin/gesta/internal/intelligence"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/alexanderramin/gesta/internal/testutil"
)

var testNow = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// firstPicker always picks index 0.
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

type fixture struct {
	db      *sql.DB
	quests  *repository.SQLiteQuestRepo
	players *repository.SQLitePlayerRepo
	history *repository.SQLiteCompletionRepo
	rules   *progression.Rules
	obs     *captureObserver
	svc     QuestService
	status  PlayerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newFixtureWithUoW(t, database, testutil.NewTestUoW(database))
}

func newFixtureWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *fixture {
	t.Helper()
	c := classify.Default()
	rules := progression.Default()
	gen := generation.NewGenerator(c, rules, generation.DefaultLore(), firstPicker{})
	enh := enhance.New(c, rules, enhance.WithClock(fixedClock))
	drafts := intelligence.NewQuestDraftService(nil, gen, enh, nil)

	f := &fixture{
		db:      database,
		quests:  repository.NewSQLiteQuestRepo(database),
		players: repository.NewSQLitePlayerRepo(database),
		history: repository.NewSQLiteCompletionRepo(database),
		rules:   rules,
		obs:     &captureObserver{},
	}
	f.svc = NewQuestService(f.quests, f.players, uow, rules, enh, drafts,
		WithClock(fixedClock), WithObserver(f.obs))
	f.status = NewPlayerService(f.players, f.quests, f.history, rules, WithClock(fixedClock))
	return f
}

type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *captureObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
