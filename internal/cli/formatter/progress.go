package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a percentage in
// [0,100]. Out of range values are clamped.
func RenderProgress(pct float64, width int) string {
	pct = clampPct(pct)
	return fmt.Sprintf("[%s] %3.0f%%", bar(pct, width, StyleGreen), pct)
}

// RenderStatBar renders a compact bar in the stat's color without brackets or
// percentage text.
func RenderStatBar(pct float64, width int, style lipgloss.Style) string {
	return bar(clampPct(pct), width, style)
}

func bar(pct float64, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return style.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
