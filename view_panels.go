package main

import (
	"fmt"
	"strings"

	"mrgn/calc"
	"mrgn/chart"

	"github.com/charmbracelet/lipgloss"
)

const metricsRevealTargetLines = 6

func (m Model) renderInputsPanel(width, height int) string {
	active := m.focusedPanel == panelInputs
	flashActive := active && m.focusFlash.Active

	cursor := func(field int) string {
		if active && m.focusedField == field {
			return highlightStyle.Render("▸")
		}
		return " "
	}

	lines := []string{
		fmt.Sprintf("%s %s $%s", cursor(fieldPrice), labelStyle.Render("Price: "), m.priceInput.View()),
		fmt.Sprintf("%s %s $%s", cursor(fieldCOGS), labelStyle.Render("COGS:  "), m.cogsInput.View()),
		fmt.Sprintf("%s %s %s", cursor(fieldMode), labelStyle.Render("Mode:  "), renderModeRadio(m.mode)),
	}

	targetSuffix := "($)"
	if m.mode == calc.ModeROAS {
		targetSuffix = "(x)"
	}
	lines = append(lines, fmt.Sprintf("%s %s %s %s",
		cursor(fieldTarget),
		labelStyle.Render("Target:"),
		m.targetInput.View(),
		mutedStyle.Render(targetSuffix),
	))

	content := strings.Join(lines, "\n")
	return renderPanel("$", "Inputs", content, width, height, active, flashActive)
}

func (m Model) renderMetricsPanel(width, height int) string {
	active := m.focusedPanel == panelMetrics
	flashActive := active && m.focusFlash.Active

	r := m.result
	barWidth := max(8, min(18, width/3))

	lines := []string{
		labelStyle.Render("Ad Spend:") + " " + valueStyle.Render(formatCurrency(r.AdSpend)),
		labelStyle.Render("CPA:     ") + " " + valueStyle.Render(formatCurrency(r.CPA)),
		labelStyle.Render("ROAS:    ") + " " + valueStyle.Render(formatRatio(r.ROAS)),
		labelStyle.Render("Fees:    ") + " " + valueStyle.Render(formatCurrency(r.Fees)),
		separatorStyle.Render(strings.Repeat("╌", max(12, width-8))),
		labelStyle.Render("Profit:  ") + " " + formatProfit(r.Profit) + " " +
			renderProfitBar(r.Profit, maxAbs(r.Profit, r.ProductPrice), barWidth),
	}

	revealCount := len(lines)
	if m.metricsReveal.Revealed < revealCount {
		revealCount = max(0, m.metricsReveal.Revealed)
	}
	lines = lines[:revealCount]
	if len(lines) == 0 {
		lines = []string{mutedStyle.Render(" ")}
	}

	content := strings.Join(lines, "\n")
	return renderPanel("~", "Metrics", content, width, height, active, flashActive)
}

func (m Model) renderBreakevenPanel(width, height int) string {
	active := m.focusedPanel == panelBreakeven
	flashActive := active && m.focusFlash.Active

	b := m.result.Breakeven
	lines := []string{
		labelStyle.Render("Ad Spend:") + " " + valueStyle.Render(formatCurrency(b.AdSpend)),
		labelStyle.Render("CPA:     ") + " " + valueStyle.Render(formatCurrency(b.CPA)),
		labelStyle.Render("ROAS:    ") + " " + valueStyle.Render(formatRatio(b.ROAS)),
	}

	if b.AdSpend <= 0 {
		lines = append(lines, dangerStyle.Render("~ cannot break even at any spend ~"))
	} else {
		headroom := b.AdSpend - m.result.AdSpend
		lines = append(lines, labelStyle.Render("Headroom:")+" "+formatProfit(headroom))
	}

	content := strings.Join(lines, "\n")
	return renderPanel("=", "Breakeven", content, width, height, active, flashActive)
}

func (m Model) renderChartPanel(width, height int) string {
	active := m.focusedPanel == panelChart
	flashActive := active && m.focusFlash.Active

	bodyWidth := max(24, width-2)
	bodyRows := max(3, height-1)

	segments := chart.Segments(m.result)
	var body []string
	if m.chartKind == chart.KindBar {
		body = chart.RenderBarBody(segments, bodyWidth, bodyRows)
	} else {
		body = chart.RenderPieBody(segments, bodyWidth, bodyRows)
	}

	lines := append([]string{chart.RenderTabs(m.chartKind)}, body...)
	content := strings.Join(lines, "\n")
	return renderPanel("#", "Cost Distribution", content, width, height, active, flashActive)
}

func (m Model) renderHelpBar() string {
	badge := renderModeBadge(m.mode)

	helpModel := m.help
	helpModel.Width = max(0, m.width-2-lipgloss.Width(badge)-2)
	help := helpModel.View(m.keys)

	help = badge + "  " + help
	if m.err != nil {
		errLine := dangerStyle.Render(fmt.Sprintf("Error: %v", m.err))
		return helpStyle.Render(errLine + "\n" + help)
	}

	return helpStyle.Render(help)
}

func renderModeRadio(mode calc.Mode) string {
	cpa := "( ) CPA"
	roas := "( ) ROAS"
	if mode == calc.ModeCPA {
		cpa = activeTitleStyle.Render("(•) CPA")
		roas = mutedStyle.Render(roas)
	} else {
		roas = activeTitleStyle.Render("(•) ROAS")
		cpa = mutedStyle.Render(cpa)
	}
	return cpa + "  " + roas
}
