package domain

import "strings"

type Difficulty string

const (
	DifficultyQuick    Difficulty = "QUICK"
	DifficultyStandard Difficulty = "STANDARD"
	DifficultyLong     Difficulty = "LONG"
	DifficultyEpic     Difficulty = "EPIC"
)

// AllDifficulties lists difficulties from smallest to largest.
var AllDifficulties = []Difficulty{DifficultyQuick, DifficultyStandard, DifficultyLong, DifficultyEpic}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyQuick, DifficultyStandard, DifficultyLong, DifficultyEpic:
		return true
	default:
		return false
	}
}

// ParseDifficulty normalizes user or generator input. Anything unrecognized
// becomes STANDARD.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if d.IsValid() {
		return d
	}
	return DifficultyStandard
}

type Stat string

const (
	StatNone      Stat = ""
	StatStrength  Stat = "STRENGTH"
	StatDexterity Stat = "DEXTERITY"
	StatWisdom    Stat = "WISDOM"
	StatCharisma  Stat = "CHARISMA"
)

// AllStats is the canonical stat order. The classifier uses it to break ties.
var AllStats = []Stat{StatStrength, StatDexterity, StatWisdom, StatCharisma}

func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatDexterity, StatWisdom, StatCharisma:
		return true
	default:
		return false
	}
}

// ParseStat accepts the canonical name in any case. Empty or unknown input
// reports false.
func ParseStat(s string) (Stat, bool) {
	st := Stat(strings.ToUpper(strings.TrimSpace(s)))
	if st.IsValid() {
		return st, true
	}
	return StatNone, false
}

type Provenance string

const (
	ProvenanceManual         Provenance = "manual"
	ProvenanceAI             Provenance = "ai"
	ProvenanceFallback       Provenance = "fallback"
	ProvenanceAIEnhancer     Provenance = "ai_enhancer"
	ProvenanceManualEnhancer Provenance = "manual_enhancer"
)

type Feature string

const (
	FeatureDarkMode          Feature = "DARK_MODE"
	FeatureAIQuestGeneration Feature = "AI_QUEST_GENERATION"
	FeatureLibraryTheme      Feature = "LIBRARY_THEME"
	FeatureMysticTheme       Feature = "MYSTIC_THEME"
	FeatureAvatarSets        Feature = "AVATAR_SETS"
	FeatureFinalTitles       Feature = "FINAL_TITLES"
)

// AllFeatures is the full fixed feature set, in unlock order.
var AllFeatures = []Feature{
	FeatureDarkMode,
	FeatureAIQuestGeneration,
	FeatureLibraryTheme,
	FeatureMysticTheme,
	FeatureAvatarSets,
	FeatureFinalTitles,
}
