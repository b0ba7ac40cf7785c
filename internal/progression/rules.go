package progression

import "github.com/alexanderramin/gesta/internal/domain"

// Rules bundles the immutable tables. Build it once at startup and share the
// pointer; nothing on it mutates after construction.
type Rules struct {
	account LevelCurve
	stat    LevelCurve
	unlocks UnlockMap
	rewards RewardTable
}

func NewRules(account, stat LevelCurve, unlocks UnlockMap, rewards RewardTable) *Rules {
	return &Rules{
		account: account,
		stat:    stat,
		unlocks: unlocks.clone(),
		rewards: rewards.clone(),
	}
}

// Default returns the rules used by gesta.
func Default() *Rules {
	return NewRules(AccountCurve(), StatCurve(), DefaultUnlocks(), DefaultRewards())
}

func (r *Rules) LevelFromXP(xp int) int {
	return r.account.Level(xp)
}

func (r *Rules) XPToNextLevel(xp int) int {
	return r.account.Remaining(xp)
}

// LevelProgress is the account-level analogue of StatLevelProgress.
func (r *Rules) LevelProgress(xp int) float64 {
	return r.account.Progress(xp)
}

func (r *Rules) IsMaxLevel(level int) bool {
	return level >= r.account.MaxLevel()
}

func (r *Rules) StatLevelFromPoints(points int) int {
	return r.stat.Level(points)
}

// PointsToNextStatLevel targets threshold[level] on the stat curve, i.e. the
// entry right after the one that was reached.
func (r *Rules) PointsToNextStatLevel(points int) int {
	return r.stat.Remaining(points)
}

func (r *Rules) StatLevelProgress(points int) float64 {
	return r.stat.Progress(points)
}

// StatPointsForReward is how many points a completed quest adds to its target
// stat.
func (r *Rules) StatPointsForReward(xp int) int {
	if xp <= 0 {
		return 0
	}
	points := xp / 10
	if points < 1 {
		points = 1
	}
	return points
}

// StatLevels returns the level of every stat for the given point totals.
func (r *Rules) StatLevels(points map[domain.Stat]int) map[domain.Stat]int {
	levels := make(map[domain.Stat]int, len(domain.AllStats))
	for _, s := range domain.AllStats {
		levels[s] = r.StatLevelFromPoints(points[s])
	}
	return levels
}
