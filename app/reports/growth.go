package reports

import "github.com/shopspring/decimal"

// GrowthRate returns the month-over-month revenue change as a percentage.
// A zero previous month yields 100 when the current month has revenue and 0
// otherwise, so the dashboards show a capped "growth from nothing" instead
// of a division fault.
func GrowthRate(current, previous int64) decimal.Decimal {
	if previous == 0 {
		if current > 0 {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	cur := decimal.NewFromInt(current)
	prev := decimal.NewFromInt(previous)
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2)
}

// CollectionRate returns collected/billed as a percentage, 0 when nothing
// was billed.
func CollectionRate(collected, billed int64) decimal.Decimal {
	if billed == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(collected).
		Div(decimal.NewFromInt(billed)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
