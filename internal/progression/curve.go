// Package progression holds the fixed rule tables that turn experience into
// levels: the account curve, the per-stat curve, the unlock map and the quest
// reward table.
package progression

// MaxLevel is the cap for both the account curve and the stat curves.
const MaxLevel = 10

var (
	accountThresholds = []int{0, 0, 100, 250, 450, 700, 1000, 1350, 1750, 2200, 2700}
	statThresholds    = []int{0, 25, 60, 120, 200, 300, 430, 590, 780, 1000, 1250}
)

// LevelCurve maps an amount (XP or stat points) to a level. The level for an
// amount is the highest threshold index reached plus Offset, clamped to
// [1, MaxLevel].
type LevelCurve struct {
	thresholds []int
	offset     int
	maxLevel   int
}

// NewLevelCurve copies thresholds so callers cannot mutate the curve.
func NewLevelCurve(thresholds []int, offset, maxLevel int) LevelCurve {
	t := make([]int, len(thresholds))
	copy(t, thresholds)
	return LevelCurve{thresholds: t, offset: offset, maxLevel: maxLevel}
}

// AccountCurve is the curve for account XP. Index i holds the XP needed for
// level i.
func AccountCurve() LevelCurve {
	return NewLevelCurve(accountThresholds, 0, MaxLevel)
}

// StatCurve is the curve for stat points. Index i holds the points needed for
// level i+1.
func StatCurve() LevelCurve {
	return NewLevelCurve(statThresholds, 1, MaxLevel)
}

func (c LevelCurve) MaxLevel() int { return c.maxLevel }

// Level scans from the top threshold down. Amounts below every threshold,
// including negative ones, are level 1.
func (c LevelCurve) Level(amount int) int {
	level := 1
	for i := len(c.thresholds) - 1; i >= 0; i-- {
		if c.thresholds[i] <= amount {
			level = i + c.offset
			break
		}
	}
	return clamp(level, 1, c.maxLevel)
}

// Target is the threshold a player at level is working toward.
func (c LevelCurve) Target(level int) int {
	return c.threshold(level + 1 - c.offset)
}

// Floor is the threshold at which level was reached.
func (c LevelCurve) Floor(level int) int {
	return c.threshold(level - c.offset)
}

// Remaining returns how much is missing to reach the next level, 0 at max.
func (c LevelCurve) Remaining(amount int) int {
	level := c.Level(amount)
	if level >= c.maxLevel {
		return 0
	}
	return c.Target(level) - amount
}

// Progress returns the percentage [0,100] covered between the current level's
// floor and its target. Max level is always 100.
func (c LevelCurve) Progress(amount int) float64 {
	level := c.Level(amount)
	if level >= c.maxLevel {
		return 100
	}
	floor := c.Floor(level)
	span := c.Target(level) - floor
	if span <= 0 {
		return 100
	}
	pct := float64(amount-floor) / float64(span) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func (c LevelCurve) threshold(i int) int {
	if i < 0 {
		return c.thresholds[0]
	}
	if i >= len(c.thresholds) {
		return c.thresholds[len(c.thresholds)-1]
	}
	return c.thresholds[i]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
