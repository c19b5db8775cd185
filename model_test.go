package main

import (
	"testing"

	"mrgn/calc"
	"mrgn/chart"
	"mrgn/config"
)

func TestParseBoolishEnv(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "1", want: true},
		{input: "true", want: true},
		{input: "TRUE", want: true},
		{input: "yes", want: true},
		{input: "on", want: true},
		{input: "0", want: false},
		{input: "false", want: false},
		{input: "", want: false},
		{input: "off", want: false},
	}

	for _, tc := range tests {
		got := parseBoolishEnv(tc.input)
		if got != tc.want {
			t.Fatalf("parseBoolishEnv(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "82.99", want: 82.99},
		{input: " 20 ", want: 20},
		{input: "0", want: 0},
		{input: "", want: 0},
		{input: "abc", want: 0},
		{input: "12.5x", want: 0},
	}

	for _, tc := range tests {
		if got := parseAmount(tc.input); got != tc.want {
			t.Fatalf("parseAmount(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestNewModelSeedsFromConfig(t *testing.T) {
	cfg := &config.Config{
		ProductPrice: 100,
		COGS:         20,
		Mode:         "roas",
		ModeValue:    2,
		Chart:        "bar",
		FeeProcessor: "shopify",
	}

	m := NewModel(cfg, nil)

	if m.mode != calc.ModeROAS {
		t.Fatalf("expected ROAS mode from config, got %v", m.mode)
	}
	if m.chartKind != chart.KindBar {
		t.Fatalf("expected bar chart from config, got %v", m.chartKind)
	}
	if got := m.priceInput.Value(); got != "100" {
		t.Fatalf("expected price input %q, got %q", "100", got)
	}

	// Initial record matches the reference ROAS scenario.
	if m.result.AdSpend != 50 {
		t.Fatalf("expected initial ad spend 50, got %.4f", m.result.AdSpend)
	}
	if m.result.ROAS != 2 {
		t.Fatalf("expected initial ROAS 2, got %.4f", m.result.ROAS)
	}
}

func TestNewModelNilConfigUsesDefaults(t *testing.T) {
	m := NewModel(nil, nil)

	if m.mode != calc.ModeCPA {
		t.Fatalf("expected default CPA mode, got %v", m.mode)
	}
	if m.result.ProductPrice != config.DefaultProductPrice {
		t.Fatalf("expected default price %.2f, got %.4f", config.DefaultProductPrice, m.result.ProductPrice)
	}
	if m.metricsReveal.Revealed != metricsRevealTargetLines {
		t.Fatalf("expected metrics fully revealed at startup, got %d", m.metricsReveal.Revealed)
	}
}

func TestFormatAmountInput(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 82.99, want: "82.99"},
		{input: 20, want: "20"},
		{input: 0, want: "0"},
		{input: 2.5, want: "2.5"},
	}

	for _, tc := range tests {
		if got := formatAmountInput(tc.input); got != tc.want {
			t.Fatalf("formatAmountInput(%v): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
