package progression

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/gesta/internal/domain"
)

// UnlockMap lists the features that unlock exactly at each level.
type UnlockMap map[int][]domain.Feature

// Unlock is a single map entry.
type Unlock struct {
	Level    int
	Features []domain.Feature
}

func DefaultUnlocks() UnlockMap {
	return UnlockMap{
		2:  {domain.FeatureDarkMode},
		3:  {domain.FeatureAIQuestGeneration},
		5:  {domain.FeatureLibraryTheme},
		7:  {domain.FeatureMysticTheme},
		10: {domain.FeatureAvatarSets, domain.FeatureFinalTitles},
	}
}

func (m UnlockMap) clone() UnlockMap {
	out := make(UnlockMap, len(m))
	for lvl, fs := range m {
		out[lvl] = append([]domain.Feature(nil), fs...)
	}
	return out
}

func (m UnlockMap) levels() []int {
	levels := make([]int, 0, len(m))
	for lvl := range m {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// GateError indicates a feature is locked behind a required account level.
type GateError struct {
	Feature       domain.Feature
	RequiredLevel int
	CurrentLevel  int
}

func (e *GateError) Error() string {
	if e.RequiredLevel <= 0 {
		return fmt.Sprintf("feature '%s' is locked", e.Feature)
	}
	return fmt.Sprintf("feature '%s' unlocks at level %d (currently %d)", e.Feature, e.RequiredLevel, e.CurrentLevel)
}

func (r *Rules) IsUnlocked(feature domain.Feature, level int) bool {
	if r.IsMaxLevel(level) {
		return true
	}
	for lvl, fs := range r.unlocks {
		if lvl > level {
			continue
		}
		for _, f := range fs {
			if f == feature {
				return true
			}
		}
	}
	return false
}

// UnlockedFeatures returns the cumulative set in unlock order.
func (r *Rules) UnlockedFeatures(level int) []domain.Feature {
	if r.IsMaxLevel(level) {
		return append([]domain.Feature(nil), domain.AllFeatures...)
	}
	var out []domain.Feature
	for _, lvl := range r.unlocks.levels() {
		if lvl > level {
			break
		}
		out = append(out, r.unlocks[lvl]...)
	}
	return out
}

// NextUnlock returns the first entry strictly above level. There is none at
// max level.
func (r *Rules) NextUnlock(level int) (Unlock, bool) {
	if r.IsMaxLevel(level) {
		return Unlock{}, false
	}
	for _, lvl := range r.unlocks.levels() {
		if lvl > level {
			return Unlock{Level: lvl, Features: append([]domain.Feature(nil), r.unlocks[lvl]...)}, true
		}
	}
	return Unlock{}, false
}

// RequiredLevel returns the lowest level that unlocks feature, or 0 if the map
// never names it.
func (r *Rules) RequiredLevel(feature domain.Feature) int {
	for _, lvl := range r.unlocks.levels() {
		for _, f := range r.unlocks[lvl] {
			if f == feature {
				return lvl
			}
		}
	}
	return 0
}

// RequireUnlocked returns a *GateError when feature is still locked at level.
func (r *Rules) RequireUnlocked(feature domain.Feature, level int) error {
	if r.IsUnlocked(feature, level) {
		return nil
	}
	return &GateError{Feature: feature, RequiredLevel: r.RequiredLevel(feature), CurrentLevel: level}
}

// NewlyUnlocked lists the features gained when moving from one level to a
// higher one.
func (r *Rules) NewlyUnlocked(from, to int) []domain.Feature {
	if to <= from {
		return nil
	}
	before := make(map[domain.Feature]bool)
	for _, f := range r.UnlockedFeatures(from) {
		before[f] = true
	}
	var out []domain.Feature
	for _, f := range r.UnlockedFeatures(to) {
		if !before[f] {
			out = append(out, f)
		}
	}
	return out
}

// Unlocks returns every map entry in level order.
func (r *Rules) Unlocks() []Unlock {
	levels := r.unlocks.levels()
	out := make([]Unlock, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, Unlock{Level: lvl, Features: append([]domain.Feature(nil), r.unlocks[lvl]...)})
	}
	return out
}
