package progression

import (
	"math"

	"github.com/alexanderramin/gesta/internal/domain"
)

const (
	// DailyBonusRate is applied to the base XP of daily quests.
	DailyBonusRate = 0.20

	// StatBonusXP is added when a quest targets any stat.
	StatBonusXP = 10
)

// RewardTable maps difficulty to base XP.
type RewardTable map[domain.Difficulty]int

func DefaultRewards() RewardTable {
	return RewardTable{
		domain.DifficultyQuick:    25,
		domain.DifficultyStandard: 50,
		domain.DifficultyLong:     100,
		domain.DifficultyEpic:     200,
	}
}

func (t RewardTable) clone() RewardTable {
	out := make(RewardTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// BaseXP never fails: unknown difficulties are priced as STANDARD.
func (r *Rules) BaseXP(d domain.Difficulty) int {
	if xp, ok := r.rewards[d]; ok {
		return xp
	}
	return r.rewards[domain.DifficultyStandard]
}

// QuestXP adds the daily and stat bonuses to base. Both bonuses derive from
// the original base and do not compound.
func (r *Rules) QuestXP(base int, isDaily bool, stat domain.Stat) int {
	xp := base
	if isDaily {
		xp = int(math.Round(float64(base) * (1 + DailyBonusRate)))
	}
	if stat.IsValid() {
		xp += StatBonusXP
	}
	return xp
}
