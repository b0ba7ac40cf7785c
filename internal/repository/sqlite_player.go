package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/domain"
)

// SQLitePlayerRepo implements PlayerRepo using a SQLite database.
type SQLitePlayerRepo struct {
	db db.DBTX
}

func NewSQLitePlayerRepo(conn db.DBTX) *SQLitePlayerRepo {
	return &SQLitePlayerRepo{db: conn}
}

func (r *SQLitePlayerRepo) Get(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT id, xp, strength_points, dexterity_points, wisdom_points, charisma_points,
		quests_completed, last_completed_at, updated_at
		FROM players WHERE id = ?`

	p := domain.NewPlayer("")
	var str, dex, wis, cha int
	var lastCompleted sql.NullString
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.XP, &str, &dex, &wis, &cha,
		&p.QuestsCompleted, &lastCompleted, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning player: %w", err)
	}

	p.StatPoints[domain.StatStrength] = str
	p.StatPoints[domain.StatDexterity] = dex
	p.StatPoints[domain.StatWisdom] = wis
	p.StatPoints[domain.StatCharisma] = cha
	p.LastCompletedAt = parseNullableTime(lastCompleted)
	if updatedAt != "" {
		if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
	}
	return p, nil
}

// Upsert stamps UpdatedAt when the caller left it zero.
func (r *SQLitePlayerRepo) Upsert(ctx context.Context, p *domain.Player) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = nowUTC()
	}
	query := `INSERT INTO players (id, xp, strength_points, dexterity_points, wisdom_points,
		charisma_points, quests_completed, last_completed_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			xp = excluded.xp,
			strength_points = excluded.strength_points,
			dexterity_points = excluded.dexterity_points,
			wisdom_points = excluded.wisdom_points,
			charisma_points = excluded.charisma_points,
			quests_completed = excluded.quests_completed,
			last_completed_at = excluded.last_completed_at,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.XP,
		p.StatPoints[domain.StatStrength],
		p.StatPoints[domain.StatDexterity],
		p.StatPoints[domain.StatWisdom],
		p.StatPoints[domain.StatCharisma],
		p.QuestsCompleted,
		nullableTimeToString(p.LastCompletedAt),
		timeToString(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}
	return nil
}
