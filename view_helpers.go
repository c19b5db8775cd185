package main

import (
	"fmt"
	"math"
	"strings"

	"mrgn/calc"
)

func renderModeBadge(mode calc.Mode) string {
	dotStyle := successStyle
	if mode == calc.ModeROAS {
		dotStyle = warningStyle
	}
	return dotStyle.Render("●") + " " + mutedStyle.Render(mode.String())
}

func formatCurrency(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func formatRatio(v float64) string {
	return fmt.Sprintf("%.2fx", v)
}

func formatProfit(profit float64) string {
	if profit >= 0 {
		return successStyle.Render(fmt.Sprintf("+$%.2f", profit))
	}
	return dangerStyle.Render(fmt.Sprintf("-$%.2f", -profit))
}

func renderProfitBar(profit, maxProfit float64, width int) string {
	if width <= 0 {
		return ""
	}
	if maxProfit <= 0 {
		return strings.Repeat("░", width)
	}

	ratio := math.Abs(profit) / maxProfit
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if profit >= 0 {
		return successStyle.Render(bar)
	}
	return dangerStyle.Render(bar)
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

func maxAbs(values ...float64) float64 {
	maxValue := 0.0
	for _, value := range values {
		if abs := math.Abs(value); abs > maxValue {
			maxValue = abs
		}
	}
	return maxValue
}
