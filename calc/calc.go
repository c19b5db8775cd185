package calc

import "strings"

// Mode selects how the ad-spend target is interpreted.
type Mode int

const (
	// ModeCPA interprets the target as a desired cost per acquisition.
	ModeCPA Mode = iota
	// ModeROAS interprets the target as a desired return on ad spend.
	ModeROAS
)

func (m Mode) String() string {
	if m == ModeROAS {
		return "ROAS"
	}
	return "CPA"
}

// ParseMode maps a config value onto a Mode. Unknown values fall back to CPA.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), "roas") {
		return ModeROAS
	}
	return ModeCPA
}

// Spend holds the resolved ad-spend figures for one unit.
type Spend struct {
	AdSpend float64
	CPA     float64
	ROAS    float64
}

// Breakeven holds the zero-profit ad-spend metrics for one unit.
type Breakeven struct {
	AdSpend float64
	CPA     float64
	ROAS    float64
}

// Result is the immutable output record for a single calculation.
type Result struct {
	ProductPrice float64
	COGS         float64
	Mode         Mode
	ModeValue    float64

	Fees    float64
	AdSpend float64
	CPA     float64
	ROAS    float64
	Profit  float64

	Breakeven Breakeven
}

// Resolve derives ad spend, CPA and ROAS from the target mode.
//
// In CPA mode a single unit's ad spend equals its target CPA by definition;
// ROAS falls back to 0 when ad spend is not positive. In ROAS mode a
// non-positive target is a valid "no target" input and zeroes all three
// figures rather than dividing.
func Resolve(mode Mode, modeValue, productPrice float64) Spend {
	if mode == ModeROAS {
		if modeValue <= 0 {
			return Spend{}
		}
		adSpend := productPrice / modeValue
		return Spend{AdSpend: adSpend, CPA: adSpend, ROAS: modeValue}
	}

	s := Spend{AdSpend: modeValue, CPA: modeValue}
	if s.AdSpend > 0 {
		s.ROAS = productPrice / s.AdSpend
	}
	return s
}

// BreakevenMetrics computes the ad-spend level at which profit is exactly
// zero. The breakeven ad spend is not clamped and may be negative when the
// product cannot break even at any spend. Breakeven ROAS at zero breakeven
// ad spend is reported as 0; that is a display policy, not a mathematical
// truth, since the ratio is undefined there.
func BreakevenMetrics(productPrice, cogs, fees float64) Breakeven {
	adSpend := productPrice - cogs - fees
	b := Breakeven{AdSpend: adSpend, CPA: adSpend}
	if adSpend != 0 {
		b.ROAS = productPrice / adSpend
	}
	return b
}

// Profit computes single-unit profit. Negative profit is valid output and is
// never clamped.
func Profit(productPrice, cogs, fees, adSpend float64) float64 {
	return productPrice - cogs - fees - adSpend
}

// Calculate runs the full pipeline with the default Shopify fee rate:
// fees, mode-dependent ad-spend resolution, profit, breakeven.
//
// Inputs are assumed non-negative; negative inputs still produce a
// numerically well-defined record.
func Calculate(productPrice, cogs float64, mode Mode, modeValue float64) Result {
	return CalculateWithFee(productPrice, cogs, mode, modeValue, DefaultFeeRate())
}

// CalculateWithFee is Calculate with an explicit payment-processing fee rate.
func CalculateWithFee(productPrice, cogs float64, mode Mode, modeValue float64, rate FeeRate) Result {
	fees := rate.Apply(productPrice)
	spend := Resolve(mode, modeValue, productPrice)

	return Result{
		ProductPrice: productPrice,
		COGS:         cogs,
		Mode:         mode,
		ModeValue:    modeValue,
		Fees:         fees,
		AdSpend:      spend.AdSpend,
		CPA:          spend.CPA,
		ROAS:         spend.ROAS,
		Profit:       Profit(productPrice, cogs, fees, spend.AdSpend),
		Breakeven:    BreakevenMetrics(productPrice, cogs, fees),
	}
}
