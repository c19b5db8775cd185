package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI (required by tea.Model interface).
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.intro.Show {
		return m.renderIntro()
	}

	if m.width < 64 || m.height < 16 {
		return helpStyle.Render(
			fmt.Sprintf(
				"Terminal too small (%dx%d). Resize to at least 64x16.",
				m.width,
				m.height,
			),
		)
	}

	contentWidth := m.width - 4
	stacked := m.width < 84
	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth

	if stacked {
		leftWidth = contentWidth
		rightWidth = contentWidth
	} else {
		if leftWidth < 30 {
			leftWidth = 30
			rightWidth = contentWidth - leftWidth
		}
		if rightWidth < 26 {
			rightWidth = 26
			leftWidth = contentWidth - rightWidth
		}
	}

	inputsHeight := 5
	metricsHeight := 6
	chartHeight := max(6, m.height-layoutOverhead-inputsHeight)
	breakevenHeight := max(4, (inputsHeight+2)+(chartHeight+2)-(metricsHeight+2)-2)

	if stacked {
		chartHeight = 6
		breakevenHeight = 4
	}

	appHeader := m.renderAppHeader(m.width - 2)
	inputsPanel := m.renderInputsPanel(leftWidth, inputsHeight)
	chartPanel := m.renderChartPanel(leftWidth, chartHeight)
	metricsPanel := m.renderMetricsPanel(rightWidth, metricsHeight)
	breakevenPanel := m.renderBreakevenPanel(rightWidth, breakevenHeight)
	helpBar := m.renderHelpBar()

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputsPanel,
		chartPanel,
	)

	rightColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		metricsPanel,
		breakevenPanel,
	)

	mainArea := ""
	if stacked {
		mainArea = lipgloss.JoinVertical(
			lipgloss.Left,
			leftColumn,
			rightColumn,
		)
	} else {
		mainArea = lipgloss.JoinHorizontal(
			lipgloss.Top,
			leftColumn,
			rightColumn,
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		appHeader,
		mainArea,
		helpBar,
	)
}

func (m Model) renderAppHeader(contentWidth int) string {
	title := renderGradientText("m r g n", brandColorA, brandColorB)
	subtitle := mutedStyle.Render("Unit Economics Calculator")
	separator := renderGradientText(strings.Repeat("━", max(8, contentWidth)), brandColorA, brandColorB)
	return lipgloss.JoinVertical(lipgloss.Left, title+" "+subtitle, separator)
}
