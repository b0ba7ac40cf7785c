package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/domain"
)

// FormatScores shows the keyword hits per stat and the winner, if any.
func FormatScores(scores map[domain.Stat]int, detected domain.Stat, ok bool) string {
	var b strings.Builder
	for _, s := range domain.AllStats {
		n := scores[s]
		line := fmt.Sprintf("%-10s %d", s, n)
		if ok && s == detected {
			b.WriteString(StatStyle(s).Render(line) + " " + StyleGreen.Render("◀") + "\n")
			continue
		}
		b.WriteString(Dim(line) + "\n")
	}
	if !ok {
		b.WriteString(Dim("No stat detected."))
	}
	return strings.TrimRight(b.String(), "\n")
}
