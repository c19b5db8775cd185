package calc

import "strings"

// FeeRate represents a payment processor's per-transaction fee.
type FeeRate struct {
	Percent float64 // percent of the sale price, e.g. 2.9
	Flat    float64 // flat charge per transaction in USD
}

// Apply returns the fee charged on a single transaction at the given price.
func (r FeeRate) Apply(productPrice float64) float64 {
	return productPrice*(r.Percent/100.0) + r.Flat
}

var processorFees = map[string]FeeRate{
	"shopify": {Percent: 2.9, Flat: 0.30},
	"stripe":  {Percent: 2.9, Flat: 0.30},
	"square":  {Percent: 2.9, Flat: 0.30},
	"paypal":  {Percent: 3.49, Flat: 0.49},
}

// DefaultFeeRate returns the Shopify online card rate, the rate every
// fixed-formula entry point uses.
func DefaultFeeRate() FeeRate {
	return processorFees["shopify"]
}

// FeeSchedule returns a copy of the default processor fee schedule.
func FeeSchedule() map[string]FeeRate {
	out := make(map[string]FeeRate, len(processorFees))
	for k, v := range processorFees {
		out[k] = v
	}
	return out
}

// FeeForProcessor returns fee settings for a payment processor. Unknown
// processors resolve to the Shopify default so fee output always honors the
// 0.029·price + 0.30 floor.
func FeeForProcessor(name string) FeeRate {
	key := strings.ToLower(strings.TrimSpace(name))
	if rate, ok := processorFees[key]; ok {
		return rate
	}
	return DefaultFeeRate()
}

// Fees returns the Shopify fee for a single transaction:
// 0.029 × price + 0.30, always at least 0.30 for non-negative prices.
func Fees(productPrice float64) float64 {
	return DefaultFeeRate().Apply(productPrice)
}
