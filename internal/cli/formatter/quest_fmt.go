package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/service"
)

// FormatQuestList renders quests as a table, newest first as given.
func FormatQuestList(quests []*domain.Quest) string {
	if len(quests) == 0 {
		return Dim("No quests found.")
	}

	rows := make([][]string, 0, len(quests))
	for _, q := range quests {
		title := Truncate(q.Title, 48)
		if q.IsDaily {
			title += " " + StyleYellow.Render("↻")
		}
		rows = append(rows, []string{
			Dim(ShortID(q.ID)),
			questState(q),
			title,
			StatBadge(q.TargetStat),
			fmt.Sprintf("%d XP", q.ExperienceReward),
			DifficultyBadge(q.Difficulty),
		})
	}
	return RenderTable([]string{"ID", "", "QUEST", "STAT", "REWARD", "DIFFICULTY"}, rows)
}

func questState(q *domain.Quest) string {
	if q.IsCompleted() {
		return StyleDim.Render("✔")
	}
	return StyleGreen.Render("○")
}

// FormatQuest renders the full quest card.
func FormatQuest(q *domain.Quest, now time.Time) string {
	var b strings.Builder

	b.WriteString(Bold(q.Title) + "\n")
	b.WriteString(q.Description + "\n\n")

	fmt.Fprintf(&b, "%s  %s\n", Dim("Difficulty:"), DifficultyBadge(q.Difficulty))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Stat:      "), statName(q.TargetStat))
	fmt.Fprintf(&b, "%s  %d XP\n", Dim("Reward:    "), q.ExperienceReward)
	if q.IsDaily {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Repeats:   "), "daily")
	}
	if len(q.Tags) > 0 {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Tags:      "), strings.Join(q.Tags, ", "))
	}
	if q.Epic != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s  %s\n", Dim("Realm:     "), q.Epic.Realm)
		fmt.Fprintf(&b, "%s  %s\n", Dim("Enemy:     "), q.Epic.Enemy)
		fmt.Fprintf(&b, "%s  %s\n", Dim("Weapon:    "), q.Epic.Weapon)
		fmt.Fprintf(&b, "%s  %s\n", Dim("Treasure:  "), q.Epic.Reward)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s via %s\n", Dim("Origin:    "), q.GeneratedBy, q.EnhancedBy)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Created:   "), HumanTimestamp(q.CreatedAt, now))
	if q.CompletedAt != nil {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Completed: "), StyleGreen.Render(HumanTimestamp(*q.CompletedAt, now)))
	}
	fmt.Fprintf(&b, "%s  %s", Dim("ID:        "), q.ID)

	return RenderBox("Quest", b.String())
}

func statName(s domain.Stat) string {
	if !s.IsValid() {
		return Dim("none")
	}
	return StatStyle(s).Render(string(s))
}

// FormatCreated is the one-line confirmation after a quest is stored.
func FormatCreated(q *domain.Quest) string {
	origin := ""
	if q.GeneratedBy == domain.ProvenanceFallback {
		origin = Dim(" (generated offline)")
	}
	return fmt.Sprintf("%s %s [%s] %s, %d XP%s",
		StyleGreen.Render("+"),
		Bold(q.Title),
		ShortID(q.ID),
		statName(q.TargetStat),
		q.ExperienceReward,
		origin,
	)
}

// FormatCompletion reports the rewards of a completed quest.
func FormatCompletion(r *service.CompletionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔ Quest complete:"), Bold(r.Quest.Title))
	fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("+%d XP", r.XPAwarded)))

	if r.StatAwarded.IsValid() {
		line := fmt.Sprintf("+%d %s", r.StatPoints, r.StatAwarded)
		if r.StatLevelUp {
			line += fmt.Sprintf("  (now level %d)", r.StatLevel)
		}
		fmt.Fprintf(&b, "  %s\n", StatStyle(r.StatAwarded).Render(line))
	}

	if r.LeveledUp() {
		fmt.Fprintf(&b, "\n  %s\n", StyleHeader.Render(fmt.Sprintf("LEVEL UP! %d → %d", r.LevelBefore, r.LevelAfter)))
	}
	for _, f := range r.NewlyUnlocks {
		fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("Unlocked:"), FeatureLabel(f))
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatHistory lists completions, newest first as given.
func FormatHistory(log []*domain.Completion, now time.Time) string {
	if len(log) == 0 {
		return Dim("Nothing completed yet.")
	}
	rows := make([][]string, 0, len(log))
	total := 0
	for _, c := range log {
		stat := StatBadge(c.TargetStat)
		if c.StatPoints > 0 {
			stat += fmt.Sprintf(" +%d", c.StatPoints)
		}
		rows = append(rows, []string{
			HumanTimestamp(c.CompletedAt, now),
			Dim(ShortID(c.QuestID)),
			fmt.Sprintf("+%d XP", c.XPAwarded),
			stat,
		})
		total += c.XPAwarded
	}
	return RenderTable([]string{"WHEN", "QUEST", "XP", "STAT"}, rows) +
		fmt.Sprintf("%s %d XP", Dim("Total:"), total)
}
