package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

func (r *SQLiteCompletionRepo) Create(ctx context.Context, c *domain.Completion) error {
	query := `INSERT INTO quest_completions (quest_id, player_id, xp_awarded, target_stat, stat_points, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		c.QuestID,
		c.PlayerID,
		c.XPAwarded,
		string(c.TargetStat),
		c.StatPoints,
		timeToString(c.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting completion: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading completion id: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByQuest(ctx context.Context, questID string) ([]*domain.Completion, error) {
	query := `SELECT id, quest_id, player_id, xp_awarded, target_stat, stat_points, completed_at
		FROM quest_completions WHERE quest_id = ? ORDER BY completed_at, id`
	rows, err := r.db.QueryContext(ctx, query, questID)
	if err != nil {
		return nil, fmt.Errorf("listing completions by quest: %w", err)
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func (r *SQLiteCompletionRepo) ListRecent(ctx context.Context, since time.Time) ([]*domain.Completion, error) {
	query := `SELECT id, quest_id, player_id, xp_awarded, target_stat, stat_points, completed_at
		FROM quest_completions WHERE completed_at >= ? ORDER BY completed_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, timeToString(since))
	if err != nil {
		return nil, fmt.Errorf("listing recent completions: %w", err)
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func scanCompletions(rows *sql.Rows) ([]*domain.Completion, error) {
	var out []*domain.Completion
	for rows.Next() {
		var c domain.Completion
		var stat, completedAt string
		if err := rows.Scan(&c.ID, &c.QuestID, &c.PlayerID, &c.XPAwarded, &stat, &c.StatPoints, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		c.TargetStat = domain.Stat(stat)
		t, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		c.CompletedAt = t
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return out, nil
}
