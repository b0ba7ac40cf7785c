package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/domain"
)

// FormatConflicts renders a report from the scheduling-conflict detector.
func FormatConflicts(r *domain.ConflictReport) string {
	if r == nil || !r.HasConflicts || len(r.Conflicts) == 0 {
		return StyleGreen.Render("No scheduling conflicts.")
	}

	var b strings.Builder
	b.WriteString(Header("Schedule conflicts") + "\n")
	for _, c := range r.Conflicts {
		style := StyleYellow
		if c.OverlapMinutes >= r.WorstOverlap && r.WorstOverlap > 0 {
			style = StyleRed
		}
		fmt.Fprintf(&b, "%s %s  %s\n",
			style.Render("▲"),
			c.Quest.Title,
			Dim(fmt.Sprintf("%d min %s overlap", c.OverlapMinutes, c.OverlapType)),
		)
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n" + Dim("Suggested times:") + "\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "  %s  %s\n", StyleGreen.Render(s.Time.Local().Format("Mon Jan 2 15:04")), s.Reason)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
