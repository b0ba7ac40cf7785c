package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/service"
)

const statBarWidth = 20

// FormatStatus renders the character sheet.
func FormatStatus(v *service.StatusView) string {
	var b strings.Builder

	level := fmt.Sprintf("Level %d", v.Level)
	if v.IsMaxLevel {
		level += " " + StyleYellow.Render("(max)")
	}
	b.WriteString(Bold(level) + "\n")
	fmt.Fprintf(&b, "%s  %d XP", RenderProgress(v.LevelProgress, statBarWidth), v.XP)
	if !v.IsMaxLevel {
		fmt.Fprintf(&b, "  %s", Dim(fmt.Sprintf("%d to next level", v.XPToNext)))
	}
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(v.Stats))
	for _, s := range v.Stats {
		next := Dim("max")
		if s.PointsToNext > 0 {
			next = Dim(fmt.Sprintf("%d to next", s.PointsToNext))
		}
		rows = append(rows, []string{
			StatStyle(s.Stat).Render(string(s.Stat)),
			fmt.Sprintf("Lv %d", s.Level),
			RenderStatBar(s.Progress, statBarWidth, StatStyle(s.Stat)),
			fmt.Sprintf("%d pts", s.Points),
			next,
		})
	}
	b.WriteString(RenderTable([]string{"STAT", "LEVEL", "PROGRESS", "POINTS", ""}, rows))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s  %s\n", Dim("Unlocked:"), FeatureList(v.Unlocked))
	if v.NextUnlock != nil {
		fmt.Fprintf(&b, "%s  %s at level %d\n", Dim("Next:    "), FeatureList(v.NextUnlock.Features), v.NextUnlock.Level)
	}
	fmt.Fprintf(&b, "%s  %d completed, %d today, %d open",
		Dim("Quests:  "), v.QuestsCompleted, v.CompletedToday, v.OpenQuests)

	return RenderBox("Character", b.String())
}

// FormatGeneratorState reports whether AI quests come from the model or the
// offline generator.
func FormatGeneratorState(enabled, reachable bool) string {
	label := Dim("AI generator:")
	switch {
	case !enabled:
		return fmt.Sprintf("%s %s", label, Dim("disabled, quests are generated offline"))
	case !reachable:
		return fmt.Sprintf("%s %s", label, StyleYellow.Render("unreachable, quests are generated offline"))
	default:
		return fmt.Sprintf("%s %s", label, StyleGreen.Render("online"))
	}
}

// FormatUnlocks lists the whole unlock map, marking what level has reached.
func FormatUnlocks(unlocks []progression.Unlock, level int) string {
	var b strings.Builder
	b.WriteString(Header("Unlocks") + "\n")
	for _, u := range unlocks {
		mark := Dim("○")
		label := Dim(FeatureList(u.Features))
		if u.Level <= level {
			mark = StyleGreen.Render("✔")
			label = FeatureList(u.Features)
		}
		fmt.Fprintf(&b, "%s %s  %s\n", mark, fmt.Sprintf("Lv %-2d", u.Level), label)
	}
	return strings.TrimRight(b.String(), "\n")
}
