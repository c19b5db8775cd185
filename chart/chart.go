package chart

import (
	"fmt"
	"math"
	"strings"

	"mrgn/calc"

	"github.com/charmbracelet/lipgloss"
)

// Kind controls which cost-distribution rendering is active in the UI.
type Kind int

const (
	KindPie Kind = iota
	KindBar
)

func (k Kind) String() string {
	if k == KindBar {
		return "bar"
	}
	return "pie"
}

// ParseKind maps a config value onto a Kind. Unknown values fall back to pie.
func ParseKind(raw string) Kind {
	if strings.EqualFold(strings.TrimSpace(raw), "bar") {
		return KindBar
	}
	return KindPie
}

// Segment labels, in fixed display order.
const (
	LabelCOGS    = "COGS"
	LabelFees    = "Fees"
	LabelAdSpend = "Ad Spend"
	LabelProfit  = "Profit"
)

// Segment is one labeled magnitude of the cost distribution.
type Segment struct {
	Label  string
	Amount float64
}

// Segments extracts the four chart magnitudes from a calculation record.
// Amounts are clamped to zero for display only; the record itself keeps
// negative values.
func Segments(r calc.Result) []Segment {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return []Segment{
		{Label: LabelCOGS, Amount: clamp(r.COGS)},
		{Label: LabelFees, Amount: clamp(r.Fees)},
		{Label: LabelAdSpend, Amount: clamp(r.AdSpend)},
		{Label: LabelProfit, Amount: clamp(r.Profit)},
	}
}

// RenderBarBody renders one horizontal magnitude bar per segment, widest
// segment normalized to the full bar width.
func RenderBarBody(segments []Segment, width int, maxRows int) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 2 {
		maxRows = 2
	}

	maxAmount := 0.0
	total := 0.0
	for _, s := range segments {
		if s.Amount > maxAmount {
			maxAmount = s.Amount
		}
		total += s.Amount
	}
	if maxAmount <= 0 {
		return []string{
			"Cost Distribution",
			"~ nothing to chart ~",
		}
	}

	rows := segments
	if len(rows) > maxRows-1 {
		rows = rows[:maxRows-1]
	}

	labelWidth := 8
	lines := make([]string, 0, len(rows)+1)
	for _, s := range rows {
		suffix := formatPrice(s.Amount)
		if width < 30 {
			suffix = fmt.Sprintf("$%.0f", s.Amount)
		}

		barWidth := width - labelWidth - len([]rune(suffix)) - 2
		barWidth = minInt(18, barWidth)
		barWidth = maxInt(2, barWidth)

		bar := renderSegmentBar(s.Label, s.Amount/maxAmount, barWidth)
		line := fmt.Sprintf("%-*s %s %s", labelWidth, truncate(s.Label, labelWidth), bar, suffix)
		lines = append(lines, clipANSIWidth(line, width))
	}

	lines = append(lines, clipANSIWidth(fmt.Sprintf("Total: %s", formatPrice(total)), width))
	return lines
}

// RenderPieBody renders the pie-chart equivalent for a terminal: a stacked
// share bar plus a percent legend per segment.
func RenderPieBody(segments []Segment, width int, maxRows int) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 2 {
		maxRows = 2
	}

	total := 0.0
	for _, s := range segments {
		total += s.Amount
	}
	if total <= 0 {
		return []string{
			"Cost Distribution",
			"~ nothing to chart ~",
		}
	}

	lines := make([]string, 0, len(segments)+1)
	lines = append(lines, clipANSIWidth(renderShareBar(segments, total, maxInt(8, width-2)), width))

	legendRows := segments
	if len(legendRows) > maxRows-1 {
		legendRows = legendRows[:maxRows-1]
	}
	for _, s := range legendRows {
		share := s.Amount / total
		pct := int(math.Round(share * 100))
		line := fmt.Sprintf("%s %-*s %3d%%  %s",
			segmentStyle(s.Label).Render("■"),
			8, truncate(s.Label, 8),
			pct,
			formatPrice(s.Amount),
		)
		lines = append(lines, clipANSIWidth(line, width))
	}

	return lines
}

func renderSegmentBar(label string, ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled
	return segmentStyle(label).Render(strings.Repeat("█", filled)) + strings.Repeat("░", empty)
}

// renderShareBar draws each segment's share of the total as a run of colored
// blocks. Non-zero segments keep at least one cell so every cost stays
// visible.
func renderShareBar(segments []Segment, total float64, width int) string {
	if width < 4 {
		width = 4
	}

	cells := make([]int, len(segments))
	used := 0
	for i, s := range segments {
		if s.Amount <= 0 {
			continue
		}
		n := int(math.Round(s.Amount / total * float64(width)))
		if n < 1 {
			n = 1
		}
		cells[i] = n
		used += n
	}

	// Trim overflow from the largest runs first.
	for used > width {
		largest := -1
		for i, n := range cells {
			if n > 1 && (largest < 0 || n > cells[largest]) {
				largest = i
			}
		}
		if largest < 0 {
			break
		}
		cells[largest]--
		used--
	}

	var b strings.Builder
	for i, s := range segments {
		if cells[i] <= 0 {
			continue
		}
		b.WriteString(segmentStyle(s.Label).Render(strings.Repeat("█", cells[i])))
	}
	if used < width {
		b.WriteString(strings.Repeat("░", width-used))
	}
	return b.String()
}

// Fixed color per label: COGS blue, fees orange, ad spend red, profit green.
func segmentStyle(label string) lipgloss.Style {
	switch label {
	case LabelCOGS:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#1877F2"))
	case LabelFees:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9900"))
	case LabelAdSpend:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#E53238"))
	case LabelProfit:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#12B76A"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#98A2B3"))
	}
}
