package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"mrgn/calc"
	"mrgn/chart"
	"mrgn/config"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Panel focus states
const (
	panelInputs = iota
	panelMetrics
	panelBreakeven
	panelChart
)

const panelCount = 4

// Input field focus states within the inputs panel
const (
	fieldPrice = iota
	fieldCOGS
	fieldMode
	fieldTarget
)

const fieldCount = 4

const layoutOverhead = 12

// IntroAnimation groups intro animation state.
type IntroAnimation struct {
	Show      bool
	Completed bool
	Tick      int
	Phase     int // 0=reveal letters, 1=glow sweep, 2=fade out
}

// FocusFlash groups focus highlight animation state.
type FocusFlash struct {
	Ticks  int
	Gen    int
	Active bool
}

// MetricsReveal groups metrics reveal animation state.
type MetricsReveal struct {
	Revealed int
	Gen      int
}

// Model represents the application state.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Shared components
	keys keyMap
	help help.Model

	// Intro animation
	intro IntroAnimation

	// Focus management
	focusedPanel int
	focusedField int

	// Inputs
	priceInput  textinput.Model
	cogsInput   textinput.Model
	targetInput textinput.Model
	mode        calc.Mode
	feeRate     calc.FeeRate

	// Derived record, recomputed from scratch on every input change
	result calc.Result

	// Chart
	chartKind chart.Kind

	// State
	reduceMotion bool
	err          error
	logger       *zap.Logger

	// Animations
	focusFlash    FocusFlash
	metricsReveal MetricsReveal
}

// NewModel creates a new application model seeded from config.
func NewModel(cfg *config.Config, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = &config.Config{
			ProductPrice: config.DefaultProductPrice,
			COGS:         config.DefaultCOGS,
			Mode:         config.DefaultMode,
			ModeValue:    config.DefaultModeValue,
			Chart:        config.DefaultChart,
			FeeProcessor: config.DefaultFeeProcessor,
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pi := newAmountInput(cfg.ProductPrice)
	pi.Focus()
	ci := newAmountInput(cfg.COGS)
	ti := newAmountInput(cfg.ModeValue)

	hp := help.New()
	hp.ShortSeparator = "  "
	hp.FullSeparator = "   "
	hp.Styles.ShortKey = keyStyle
	hp.Styles.ShortDesc = keyDescStyle
	hp.Styles.ShortSeparator = separatorStyle
	hp.Styles.Ellipsis = separatorStyle
	hp.Styles.FullKey = keyStyle
	hp.Styles.FullDesc = keyDescStyle
	hp.Styles.FullSeparator = separatorStyle

	m := Model{
		keys:         defaultKeyMap(),
		help:         hp,
		intro:        IntroAnimation{Show: true},
		focusedPanel: panelInputs,
		focusedField: fieldPrice,
		priceInput:   pi,
		cogsInput:    ci,
		targetInput:  ti,
		mode:         calc.ParseMode(cfg.Mode),
		feeRate:      calc.FeeForProcessor(cfg.FeeProcessor),
		chartKind:    chart.ParseKind(cfg.Chart),
		reduceMotion: cfg.ReduceMotion,
		logger:       logger,
	}
	if parseBoolishEnv(os.Getenv("MRGN_NO_INTRO")) {
		m.intro.Show = false
		m.intro.Completed = true
	}
	m = m.recompute()
	m.metricsReveal.Revealed = metricsRevealTargetLines
	return m
}

func newAmountInput(value float64) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 10
	ti.SetValue(formatAmountInput(value))
	return ti
}

func formatAmountInput(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if s == "0" {
		return "0"
	}
	return s
}

// recompute rebuilds the output record from the current inputs. Unparseable
// fields are treated as 0, matching the "no validation, no errors" contract
// of the core.
func (m Model) recompute() Model {
	price := parseAmount(m.priceInput.Value())
	cogs := parseAmount(m.cogsInput.Value())
	target := parseAmount(m.targetInput.Value())
	m.result = calc.CalculateWithFee(price, cogs, m.mode, target, m.feeRate)
	return m
}

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return introTickMsg{}
		}),
	)
}

func (m Model) targetLabel() string {
	if m.mode == calc.ModeROAS {
		return "Target ROAS"
	}
	return "Target CPA"
}

func (m Model) logScenario() {
	r := m.result
	m.logger.Info("scenario committed",
		zap.String("mode", r.Mode.String()),
		zap.Float64("product_price", r.ProductPrice),
		zap.Float64("cogs", r.COGS),
		zap.Float64("mode_value", r.ModeValue),
		zap.Float64("fees", r.Fees),
		zap.Float64("ad_spend", r.AdSpend),
		zap.Float64("cpa", r.CPA),
		zap.Float64("roas", r.ROAS),
		zap.Float64("profit", r.Profit),
		zap.Float64("breakeven_cpa", r.Breakeven.CPA),
		zap.Float64("breakeven_roas", r.Breakeven.ROAS),
	)
}

func parseBoolishEnv(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

type introTickMsg struct{}

type focusFlashTickMsg struct {
	gen int
}

type metricsRevealTickMsg struct {
	gen int
}
