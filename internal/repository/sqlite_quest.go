package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
)

// questColumns is the canonical SELECT column list for quests.
const questColumns = `id, title, description, difficulty, target_stat, experience_reward,
		is_daily, generated_by, enhanced_by, tags_json, epic_json,
		enhanced_at, created_at, completed_at`

// SQLiteQuestRepo implements QuestRepo using a SQLite database.
type SQLiteQuestRepo struct {
	db db.DBTX
}

func NewSQLiteQuestRepo(conn db.DBTX) *SQLiteQuestRepo {
	return &SQLiteQuestRepo{db: conn}
}

func (r *SQLiteQuestRepo) Create(ctx context.Context, q *domain.Quest) error {
	tags, err := encodeTags(q.Tags)
	if err != nil {
		return err
	}
	epic, err := encodeEpic(q.Epic)
	if err != nil {
		return err
	}

	query := `INSERT INTO quests (` + questColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		q.ID,
		q.Title,
		q.Description,
		string(q.Difficulty),
		string(q.TargetStat),
		q.ExperienceReward,
		boolToInt(q.IsDaily),
		string(q.GeneratedBy),
		string(q.EnhancedBy),
		tags,
		epic,
		enhancedAtValue(q.EnhancedAt),
		timeToString(q.CreatedAt),
		nullableTimeToString(q.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting quest: %w", err)
	}
	return nil
}

func (r *SQLiteQuestRepo) GetByID(ctx context.Context, id string) (*domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests WHERE id = ?`
	q, err := scanQuest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quest %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return q, nil
}

func (r *SQLiteQuestRepo) List(ctx context.Context, f QuestFilter) ([]*domain.Quest, error) {
	var where []string
	var args []any
	switch f.State {
	case QuestStateOpen:
		where = append(where, "completed_at IS NULL")
	case QuestStateCompleted:
		where = append(where, "completed_at IS NOT NULL")
	}
	if f.DailyOnly {
		where = append(where, "is_daily = 1")
	}
	if f.Stat != domain.StatNone {
		where = append(where, "target_stat = ?")
		args = append(args, string(f.Stat))
	}

	query := `SELECT ` + questColumns + ` FROM quests`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quests: %w", err)
	}
	defer rows.Close()

	var quests []*domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quests: %w", err)
	}
	return quests, nil
}

func (r *SQLiteQuestRepo) Update(ctx context.Context, q *domain.Quest) error {
	tags, err := encodeTags(q.Tags)
	if err != nil {
		return err
	}
	epic, err := encodeEpic(q.Epic)
	if err != nil {
		return err
	}

	query := `UPDATE quests SET title = ?, description = ?, difficulty = ?, target_stat = ?,
		experience_reward = ?, is_daily = ?, generated_by = ?, enhanced_by = ?, tags_json = ?,
		epic_json = ?, enhanced_at = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		q.Title,
		q.Description,
		string(q.Difficulty),
		string(q.TargetStat),
		q.ExperienceReward,
		boolToInt(q.IsDaily),
		string(q.GeneratedBy),
		string(q.EnhancedBy),
		tags,
		epic,
		enhancedAtValue(q.EnhancedAt),
		nullableTimeToString(q.CompletedAt),
		q.ID,
	)
	if err != nil {
		return fmt.Errorf("updating quest: %w", err)
	}
	return requireAffected(res, "quest "+q.ID)
}

func (r *SQLiteQuestRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting quest: %w", err)
	}
	return requireAffected(res, "quest "+id)
}

func (r *SQLiteQuestRepo) ReopenDailiesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := `UPDATE quests SET completed_at = NULL
		WHERE is_daily = 1 AND completed_at IS NOT NULL AND completed_at < ?`
	res, err := r.db.ExecContext(ctx, query, timeToString(cutoff))
	if err != nil {
		return 0, fmt.Errorf("reopening dailies: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting reopened dailies: %w", err)
	}
	return int(n), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuest(row rowScanner) (*domain.Quest, error) {
	var q domain.Quest
	var difficulty, stat, generatedBy, enhancedBy, tagsJSON, createdAt string
	var isDaily int
	var epicJSON, enhancedAt, completedAt sql.NullString

	err := row.Scan(
		&q.ID, &q.Title, &q.Description, &difficulty, &stat, &q.ExperienceReward,
		&isDaily, &generatedBy, &enhancedBy, &tagsJSON, &epicJSON,
		&enhancedAt, &createdAt, &completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning quest: %w", err)
	}

	q.Difficulty = domain.Difficulty(difficulty)
	q.TargetStat = domain.Stat(stat)
	q.IsDaily = intToBool(isDaily)
	q.GeneratedBy = domain.Provenance(generatedBy)
	q.EnhancedBy = domain.Provenance(enhancedBy)
	q.CompletedAt = parseNullableTime(completedAt)
	if t := parseNullableTime(enhancedAt); t != nil {
		q.EnhancedAt = *t
	}

	if q.Tags, err = decodeTags(tagsJSON); err != nil {
		return nil, err
	}
	if q.Epic, err = decodeEpic(epicJSON); err != nil {
		return nil, err
	}
	if q.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &q, nil
}

func enhancedAtValue(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return timeToString(t)
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
