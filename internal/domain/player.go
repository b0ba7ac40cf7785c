package domain

import "time"

// Player is the single local character. Stat points are tracked per stat and
// leveled on their own curve, independent of account XP.
type Player struct {
	ID              string
	XP              int
	StatPoints      map[Stat]int
	QuestsCompleted int
	LastCompletedAt *time.Time
	UpdatedAt       time.Time
}

// NewPlayer returns a fresh level 1 player.
func NewPlayer(id string) *Player {
	return &Player{
		ID:         id,
		StatPoints: map[Stat]int{StatStrength: 0, StatDexterity: 0, StatWisdom: 0, StatCharisma: 0},
	}
}

// Completion is one turn-in of a quest. Dailies collect one per day.
type Completion struct {
	ID          int64
	QuestID     string
	PlayerID    string
	XPAwarded   int
	TargetStat  Stat
	StatPoints  int
	CompletedAt time.Time
}
