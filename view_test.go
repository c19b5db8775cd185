package main

import (
	"strings"
	"testing"

	"mrgn/calc"

	"github.com/charmbracelet/lipgloss"
)

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel()
	m.width = 0

	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected loading placeholder, got %q", got)
	}
}

func TestViewTooSmallGuard(t *testing.T) {
	m := newTestModel()
	m.width = 50
	m.height = 12

	view := m.View()
	if !strings.Contains(view, "Terminal too small") {
		t.Fatalf("expected too-small message, got %q", view)
	}
	if !strings.Contains(view, "50x12") {
		t.Fatalf("expected current dimensions in message, got %q", view)
	}
}

func TestViewLinesFitTerminalWidth(t *testing.T) {
	sizes := []struct {
		width  int
		height int
	}{
		{64, 16},
		{70, 20}, // stacked layout
		{84, 24},
		{100, 30},
		{120, 40},
	}

	for _, size := range sizes {
		m := newTestModel()
		m.width = size.width
		m.height = size.height

		for _, line := range strings.Split(m.View(), "\n") {
			if w := lipgloss.Width(line); w > size.width {
				t.Errorf("%dx%d: line width %d exceeds terminal: %q",
					size.width, size.height, w, line)
			}
		}
	}
}

func TestViewContainsAllPanels(t *testing.T) {
	m := newTestModel()
	view := m.View()

	for _, title := range []string{"Inputs", "Metrics", "Breakeven", "Cost Distribution"} {
		if !strings.Contains(view, title) {
			t.Errorf("expected view to contain %q panel title", title)
		}
	}
	if !strings.Contains(view, "m r g n") {
		t.Error("expected view to contain app title")
	}
}

func TestMetricsRevealHidesLines(t *testing.T) {
	m := newTestModel()
	m.metricsReveal.Revealed = 0

	hidden := m.renderMetricsPanel(40, 6)
	if strings.Contains(hidden, "Profit:") {
		t.Error("expected profit line hidden at reveal 0")
	}

	m.metricsReveal.Revealed = metricsRevealTargetLines
	shown := m.renderMetricsPanel(40, 6)
	if !strings.Contains(shown, "Profit:") {
		t.Error("expected profit line visible when fully revealed")
	}
}

func TestBreakevenPanelWarnsWhenUnreachable(t *testing.T) {
	m := newTestModel()
	m.priceInput.SetValue("10")
	m.cogsInput.SetValue("50")
	m = m.recompute()

	panel := m.renderBreakevenPanel(44, 5)
	if !strings.Contains(panel, "cannot break even") {
		t.Fatalf("expected break-even warning, got %q", panel)
	}
}

func TestBreakevenPanelShowsHeadroom(t *testing.T) {
	m := newTestModel()

	panel := m.renderBreakevenPanel(44, 5)
	if !strings.Contains(panel, "Headroom:") {
		t.Fatalf("expected headroom line for reachable break-even, got %q", panel)
	}
}

func TestRenderProfitBarWidth(t *testing.T) {
	tests := []struct {
		name      string
		profit    float64
		maxProfit float64
		width     int
	}{
		{"positive", 25, 100, 12},
		{"negative", -25, 100, 12},
		{"over max", 500, 100, 12},
		{"zero max", 10, 0, 12},
		{"narrow", 5, 10, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := renderProfitBar(tc.profit, tc.maxProfit, tc.width)
			if w := lipgloss.Width(bar); w != tc.width {
				t.Fatalf("expected bar width %d, got %d", tc.width, w)
			}
		})
	}

	if got := renderProfitBar(10, 100, 0); got != "" {
		t.Fatalf("expected empty bar for zero width, got %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{82.99, "$82.99"},
		{-12.5, "-$12.50"},
		{0.005, "$0.01"},
	}

	for _, tc := range tests {
		if got := formatCurrency(tc.value); got != tc.want {
			t.Errorf("formatCurrency(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := formatRatio(2); got != "2.00x" {
		t.Fatalf("formatRatio(2) = %q, want %q", got, "2.00x")
	}
	if got := formatRatio(1.1808); got != "1.18x" {
		t.Fatalf("formatRatio(1.1808) = %q, want %q", got, "1.18x")
	}
}

func TestFormatProfitSign(t *testing.T) {
	if got := formatProfit(5); !strings.Contains(got, "+$5.00") {
		t.Fatalf("expected +$5.00 in %q", got)
	}
	if got := formatProfit(-5); !strings.Contains(got, "-$5.00") {
		t.Fatalf("expected -$5.00 in %q", got)
	}
	if got := formatProfit(0); !strings.Contains(got, "+$0.00") {
		t.Fatalf("expected zero profit rendered positive, got %q", got)
	}
}

func TestRenderModeRadio(t *testing.T) {
	cpa := renderModeRadio(calc.ModeCPA)
	if !strings.Contains(cpa, "(•) CPA") || !strings.Contains(cpa, "( ) ROAS") {
		t.Fatalf("unexpected CPA radio render: %q", cpa)
	}

	roas := renderModeRadio(calc.ModeROAS)
	if !strings.Contains(roas, "(•) ROAS") || !strings.Contains(roas, "( ) CPA") {
		t.Fatalf("unexpected ROAS radio render: %q", roas)
	}
}

func TestTargetLabelFollowsMode(t *testing.T) {
	m := newTestModel()
	if got := m.targetLabel(); got != "Target CPA" {
		t.Fatalf("expected Target CPA, got %q", got)
	}
	m.mode = calc.ModeROAS
	if got := m.targetLabel(); got != "Target ROAS" {
		t.Fatalf("expected Target ROAS, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"", 3, ""},
	}

	for _, tc := range tests {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestMaxAbs(t *testing.T) {
	if got := maxAbs(-5, 3); got != 5 {
		t.Fatalf("maxAbs(-5, 3) = %v, want 5", got)
	}
	if got := maxAbs(); got != 0 {
		t.Fatalf("maxAbs() = %v, want 0", got)
	}
}
