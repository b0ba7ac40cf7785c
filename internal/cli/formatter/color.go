package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatStyle gives each stat a fixed color. Quests without a stat are dimmed.
func StatStyle(s domain.Stat) lipgloss.Style {
	switch s {
	case domain.StatStrength:
		return StyleRed
	case domain.StatDexterity:
		return StyleYellow
	case domain.StatWisdom:
		return StyleBlue
	case domain.StatCharisma:
		return StylePurple
	default:
		return StyleDim
	}
}

// StatBadge renders a short colored stat label such as "STR".
func StatBadge(s domain.Stat) string {
	if !s.IsValid() {
		return StyleDim.Render("--")
	}
	return StatStyle(s).Render(string(s)[:3])
}

// DifficultyBadge renders the difficulty with a pip count.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyQuick:
		return StyleGreen.Render("● QUICK")
	case domain.DifficultyStandard:
		return StyleBlue.Render("●● STANDARD")
	case domain.DifficultyLong:
		return StyleYellow.Render("●●● LONG")
	case domain.DifficultyEpic:
		return StylePurple.Render("●●●● EPIC")
	default:
		return StyleDim.Render(string(d))
	}
}

var featureLabels = map[domain.Feature]string{
	domain.FeatureDarkMode:          "Dark mode",
	domain.FeatureAIQuestGeneration: "AI quest generation",
	domain.FeatureLibraryTheme:      "Library theme",
	domain.FeatureMysticTheme:       "Mystic theme",
	domain.FeatureAvatarSets:        "Avatar sets",
	domain.FeatureFinalTitles:       "Final titles",
}

// FeatureLabel returns the display name of a feature.
func FeatureLabel(f domain.Feature) string {
	if l, ok := featureLabels[f]; ok {
		return l
	}
	return string(f)
}

// FeatureList joins feature labels with commas.
func FeatureList(fs []domain.Feature) string {
	if len(fs) == 0 {
		return Dim("none")
	}
	labels := make([]string, len(fs))
	for i, f := range fs {
		labels[i] = FeatureLabel(f)
	}
	return strings.Join(labels, ", ")
}

// Header renders an uppercase section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
