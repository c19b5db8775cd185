package main

import (
	"time"

	"mrgn/calc"
	"mrgn/chart"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Total ticks for each intro phase.
const (
	introRevealTicks = 30 // character-by-character reveal
	introGlowTicks   = 15 // glow sweep across text
	introFadeTicks   = 8  // fade out
	introTotalTicks  = introRevealTicks + introGlowTicks + introFadeTicks
)

// Update handles messages and updates the model (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case introTickMsg:
		if !m.intro.Show {
			return m, nil
		}
		m.intro.Tick++

		if m.intro.Tick < introRevealTicks {
			m.intro.Phase = 0
		} else if m.intro.Tick < introRevealTicks+introGlowTicks {
			m.intro.Phase = 1
		} else if m.intro.Tick < introTotalTicks {
			m.intro.Phase = 2
		} else {
			m.intro.Show = false
			m.intro.Completed = true
			return m, nil
		}

		return m, tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return introTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case focusFlashTickMsg:
		if msg.gen != m.focusFlash.Gen || !m.focusFlash.Active {
			return m, nil
		}
		if m.focusFlash.Ticks <= 1 {
			m.focusFlash.Ticks = 0
			m.focusFlash.Active = false
			return m, nil
		}
		m.focusFlash.Ticks--
		gen := m.focusFlash.Gen
		return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
			return focusFlashTickMsg{gen: gen}
		})

	case metricsRevealTickMsg:
		if msg.gen != m.metricsReveal.Gen {
			return m, nil
		}
		if m.metricsReveal.Revealed >= metricsRevealTargetLines {
			return m, nil
		}
		m.metricsReveal.Revealed++
		if m.metricsReveal.Revealed >= metricsRevealTargetLines {
			return m, nil
		}
		gen := m.metricsReveal.Gen
		return m, tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return metricsRevealTickMsg{gen: gen}
		})

	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		return updated, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.intro.Show {
		m.intro.Show = false
		m.intro.Completed = true
		return m, nil
	}

	// Let text inputs accept literal "m". Use motion toggle from non-input panels.
	if key.Matches(msg, m.keys.ToggleAnim) && m.focusedPanel != panelInputs {
		m = m.toggleReduceMotion()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.logger.Info("session ended")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if m.focusedPanel != panelInputs {
			m.logger.Info("session ended")
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Tab):
		return m.changeFocus((m.focusedPanel + 1) % panelCount)

	case key.Matches(msg, m.keys.ShiftTab):
		prevPanel := m.focusedPanel - 1
		if prevPanel < 0 {
			prevPanel = panelCount - 1
		}
		return m.changeFocus(prevPanel)

	case key.Matches(msg, m.keys.Inputs):
		if m.focusedPanel != panelInputs {
			return m.changeFocus(panelInputs)
		}

	case key.Matches(msg, m.keys.Escape):
		return m.changeFocus(panelMetrics)
	}

	switch m.focusedPanel {
	case panelInputs:
		return m.handleInputKeys(msg)
	case panelChart:
		return m.handleChartKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.focusedField = (m.focusedField + 1) % fieldCount
		m = m.updateFocus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.focusedField--
		if m.focusedField < 0 {
			m.focusedField = fieldCount - 1
		}
		m = m.updateFocus()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m = m.recompute()
		m.logScenario()
		return m.startMetricsReveal()
	}

	if m.focusedField == fieldMode {
		if key.Matches(msg, m.keys.Left) || key.Matches(msg, m.keys.Right) {
			return m.toggleMode()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focusedField {
	case fieldPrice:
		m.priceInput, cmd = m.priceInput.Update(msg)
	case fieldCOGS:
		m.cogsInput, cmd = m.cogsInput.Update(msg)
	case fieldTarget:
		m.targetInput, cmd = m.targetInput.Update(msg)
	}

	// Every keystroke rebuilds the record from scratch; no state carries over.
	m = m.recompute()
	return m, cmd
}

func (m Model) toggleMode() (tea.Model, tea.Cmd) {
	if m.mode == calc.ModeCPA {
		m.mode = calc.ModeROAS
	} else {
		m.mode = calc.ModeCPA
	}
	m = m.recompute()
	return m, nil
}

func (m Model) handleChartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ChartPie):
		m.chartKind = chart.KindPie
		return m, nil
	case key.Matches(msg, m.keys.ChartBar):
		m.chartKind = chart.KindBar
		return m, nil
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if m.chartKind == chart.KindPie {
			m.chartKind = chart.KindBar
		} else {
			m.chartKind = chart.KindPie
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) toggleReduceMotion() Model {
	m.reduceMotion = !m.reduceMotion
	if !m.reduceMotion {
		return m
	}

	// Snap every animation channel to a stable resting state immediately.
	m.focusFlash.Gen++
	m.focusFlash.Active = false
	m.focusFlash.Ticks = 0

	m.metricsReveal.Gen++
	m.metricsReveal.Revealed = metricsRevealTargetLines

	return m
}

func (m Model) startMetricsReveal() (tea.Model, tea.Cmd) {
	m.metricsReveal.Gen++
	if m.reduceMotion {
		m.metricsReveal.Revealed = metricsRevealTargetLines
		return m, nil
	}

	m.metricsReveal.Revealed = 0
	gen := m.metricsReveal.Gen
	return m, tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
		return metricsRevealTickMsg{gen: gen}
	})
}

// updateFocus manages focus state for text inputs.
func (m Model) updateFocus() Model {
	m.priceInput.Blur()
	m.cogsInput.Blur()
	m.targetInput.Blur()

	if m.focusedPanel != panelInputs {
		return m
	}

	switch m.focusedField {
	case fieldPrice:
		m.priceInput.Focus()
	case fieldCOGS:
		m.cogsInput.Focus()
	case fieldTarget:
		m.targetInput.Focus()
	}
	return m
}

func (m Model) changeFocus(newPanel int) (tea.Model, tea.Cmd) {
	if m.focusedPanel == newPanel {
		m = m.updateFocus()
		return m, nil
	}

	m.focusedPanel = newPanel
	m = m.updateFocus()
	m.focusFlash.Gen++
	if m.reduceMotion {
		m.focusFlash.Ticks = 0
		m.focusFlash.Active = false
		return m, nil
	}
	m.focusFlash.Ticks = 3
	m.focusFlash.Active = true
	gen := m.focusFlash.Gen

	return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return focusFlashTickMsg{gen: gen}
	})
}
