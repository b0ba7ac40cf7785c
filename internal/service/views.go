package service

import (
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/progression"
)

// CompletionResult reports what a turned-in quest changed.
type CompletionResult struct {
	Quest        *domain.Quest
	Player       *domain.Player
	XPAwarded    int
	StatAwarded  domain.Stat
	StatPoints   int
	LevelBefore  int
	LevelAfter   int
	StatLevelUp  bool
	StatLevel    int
	NewlyUnlocks []domain.Feature
}

func (r *CompletionResult) LeveledUp() bool {
	return r.LevelAfter > r.LevelBefore
}

// StatView is one stat line of the character sheet.
type StatView struct {
	Stat         domain.Stat
	Points       int
	Level        int
	PointsToNext int
	Progress     float64
}

// StatusView is the character sheet.
type StatusView struct {
	PlayerID        string
	Level           int
	XP              int
	XPToNext        int
	LevelProgress   float64
	IsMaxLevel      bool
	QuestsCompleted int
	Stats           []StatView
	Unlocked        []domain.Feature
	NextUnlock      *progression.Unlock
	OpenQuests      int
	CompletedToday  int
}

// ImportResult lists the quests created by an import, in file order.
type ImportResult struct {
	Quests []*domain.Quest
}
