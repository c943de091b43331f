// Package savings estimates the money solar output saves and converts it to
// the reference currency.
package savings

import (
	"math"

	"github.com/raterudder/solarcalc/pkg/country"
	"github.com/raterudder/solarcalc/pkg/types"
)

// largeDenomination are the countries whose rates are quoted in AUD and need
// the exchange rate applied to get local currency.
var largeDenomination = map[string]bool{
	"KR": true,
	"JP": true,
	"CN": true,
	"IN": true,
	"ZA": true,
	"BR": true,
}

// CalculateMonthlySavings returns the savings of annualOutput kWh at the
// electricity rate of code. Unknown codes use the default country but never
// get the exchange rate applied. Zero, negative and NaN output save nothing.
func CalculateMonthlySavings(annualOutput float64, code string, table *country.Table) types.Savings {
	if math.IsNaN(annualOutput) || annualOutput <= 0 {
		return types.Savings{}
	}
	p, _ := table.Lookup(code)
	multiplier := p.Rate
	if largeDenomination[code] {
		multiplier *= p.ExchangeRate
	}
	return types.Savings{
		MonthlySavings: (annualOutput / 12) * multiplier,
		AnnualSavings:  annualOutput * multiplier,
	}
}

// ConvertCurrency converts amount from the currency of code into AUD by
// dividing by the exchange rate, whatever the denomination. Zero and NaN
// amounts, and tables without a usable rate, return 0.
func ConvertCurrency(amount float64, code string, table *country.Table) float64 {
	if amount == 0 || math.IsNaN(amount) {
		return 0
	}
	if code == country.ReferenceCode {
		return amount
	}
	p, ok := table.Lookup(code)
	if !ok || p.ExchangeRate == 0 {
		return 0
	}
	return amount / p.ExchangeRate
}
