package synth

import "github.com/shopspring/decimal"

var (
	costPerKg      = decimal.NewFromInt(12)
	valueSurcharge = decimal.NewFromFloat(0.02)
	savingsPerPart = decimal.NewFromInt(45)
	savingsPerKg   = decimal.NewFromFloat(2.5)
)

// ShippingCost is weight*12 + value*0.02 rounded to cents
func ShippingCost(weight, value float64) float64 {
	cost := decimal.NewFromFloat(weight).Mul(costPerKg).
		Add(decimal.NewFromFloat(value).Mul(valueSurcharge))
	return cost.Round(2).InexactFloat64()
}

// ConsolidationSavings is participants*45 + currentWeight*2.5 rounded to cents
func ConsolidationSavings(participants int, currentWeight float64) float64 {
	savings := decimal.NewFromInt(int64(participants)).Mul(savingsPerPart).
		Add(decimal.NewFromFloat(currentWeight).Mul(savingsPerKg))
	return savings.Round(2).InexactFloat64()
}

// truncate cuts x to the given number of decimals without rounding up
func truncate(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Truncate(places).InexactFloat64()
}
