package types

// CountryProfile holds the electricity and currency metadata of a country.
type CountryProfile struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Rate           float64 `json:"rate"` // local currency per kWh
	Currency       string  `json:"currency"`
	Symbol         string  `json:"symbol"`
	AvgMonthlyBill float64 `json:"avgMonthlyBill"`
	Flag           string  `json:"flag"`

	// ExchangeRate relates the local currency to AUD. For most currencies it
	// is AUD per unit, for the large denomination ones it is units per AUD.
	ExchangeRate float64 `json:"exchangeRate"`
}

// CurrencyDisplay is what the page shows next to money amounts.
type CurrencyDisplay struct {
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

// Savings is the estimated money saved by solar output.
type Savings struct {
	MonthlySavings float64 `json:"monthlySavings"`
	AnnualSavings  float64 `json:"annualSavings"`
}
