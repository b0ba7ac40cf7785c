package db

import (
	"database/sql"
	"fmt"
)

// DefaultPlayerID is the single local character every install starts with.
const DefaultPlayerID = "default"

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id                TEXT PRIMARY KEY,
		xp                INTEGER NOT NULL DEFAULT 0 CHECK(xp >= 0),
		strength_points   INTEGER NOT NULL DEFAULT 0,
		dexterity_points  INTEGER NOT NULL DEFAULT 0,
		wisdom_points     INTEGER NOT NULL DEFAULT 0,
		charisma_points   INTEGER NOT NULL DEFAULT 0,
		quests_completed  INTEGER NOT NULL DEFAULT 0,
		last_completed_at TEXT,
		updated_at        TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO players (id) VALUES ('` + DefaultPlayerID + `')`,

	`CREATE TABLE IF NOT EXISTS quests (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		difficulty        TEXT NOT NULL DEFAULT 'STANDARD'
		                  CHECK(difficulty IN ('QUICK','STANDARD','LONG','EPIC')),
		target_stat       TEXT NOT NULL DEFAULT ''
		                  CHECK(target_stat IN ('','STRENGTH','DEXTERITY','WISDOM','CHARISMA')),
		experience_reward INTEGER NOT NULL DEFAULT 0 CHECK(experience_reward >= 0),
		is_daily          INTEGER NOT NULL DEFAULT 0,
		generated_by      TEXT NOT NULL DEFAULT 'manual',
		enhanced_by       TEXT NOT NULL DEFAULT '',
		tags_json         TEXT NOT NULL DEFAULT '[]',
		epic_json         TEXT,
		enhanced_at       TEXT,
		created_at        TEXT NOT NULL,
		completed_at      TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quests_completed ON quests(completed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_quests_created ON quests(created_at)`,

	`CREATE TABLE IF NOT EXISTS quest_completions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		quest_id     TEXT NOT NULL REFERENCES quests(id) ON DELETE CASCADE,
		player_id    TEXT NOT NULL REFERENCES players(id) ON DELETE CASCADE,
		xp_awarded   INTEGER NOT NULL,
		target_stat  TEXT NOT NULL DEFAULT '',
		stat_points  INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_quest ON quest_completions(quest_id)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_at ON quest_completions(completed_at)`,

	`CREATE INDEX IF NOT EXISTS idx_quests_daily ON quests(is_daily) WHERE is_daily = 1`,
}
