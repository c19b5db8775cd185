package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Inputs     key.Binding
	ChartPie   key.Binding
	ChartBar   key.Binding
	ToggleAnim key.Binding
	Escape     key.Binding
	Enter      key.Binding
	Down       key.Binding
	Up         key.Binding
	Left       key.Binding
	Right      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Inputs: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inputs"),
		),
		ChartPie: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "pie chart"),
		),
		ChartBar: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "bar chart"),
		),
		ToggleAnim: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motion"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "metrics"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "next field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "toggle"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", " "),
			key.WithHelp("right/space", "toggle"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inputs, k.Enter, k.Tab, k.ChartPie, k.ToggleAnim, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Inputs, k.Enter, k.Escape},
		{k.Up, k.Down, k.Left, k.Right},
		{k.ChartPie, k.ChartBar, k.Tab, k.ShiftTab, k.ToggleAnim},
		{k.Quit, k.ForceQuit},
	}
}
