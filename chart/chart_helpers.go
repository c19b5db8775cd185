package chart

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EA80FC"))

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#667085"))
)

// RenderTabs renders the chart-kind tab bar with the active tab highlighted.
func RenderTabs(kind Kind) string {
	pie := "[1:Pie]"
	bar := "[2:Bar]"

	if kind == KindPie {
		pie = tabActiveStyle.Render(pie)
	} else {
		pie = tabInactiveStyle.Render(pie)
	}
	if kind == KindBar {
		bar = tabActiveStyle.Render(bar)
	} else {
		bar = tabInactiveStyle.Render(bar)
	}

	return pie + " " + bar
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

func clipANSIWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(line) <= width {
		return line
	}
	if width <= 1 {
		return "…"
	}
	return xansi.Truncate(line, width, "…")
}
