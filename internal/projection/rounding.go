package projection

import "github.com/shopspring/decimal"

// MonthlyAverage is total/12 rounded half away from zero to whole currency units.
func MonthlyAverage(total int64) int64 {
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(12)).
		Round(0).
		IntPart()
}
