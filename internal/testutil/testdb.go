package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/repository"
)

// NewTestDB opens an in-memory record store with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedQuests stores quests directly, bypassing the enhancement pipeline.
func SeedQuests(t *testing.T, database *sql.DB, quests ...*domain.Quest) {
	t.Helper()
	repo := repository.NewSQLiteQuestRepo(database)
	for _, q := range quests {
		if err := repo.Create(context.Background(), q); err != nil {
			t.Fatalf("seeding quest %q: %v", q.Title, err)
		}
	}
}

// SeedPlayer overwrites the default player's progress.
func SeedPlayer(t *testing.T, database *sql.DB, p *domain.Player) {
	t.Helper()
	if err := repository.NewSQLitePlayerRepo(database).Upsert(context.Background(), p); err != nil {
		t.Fatalf("seeding player: %v", err)
	}
}
