// Package country holds the electricity rate and currency metadata of the
// supported countries and classifies coordinates into them.
package country

import (
	"sort"

	"github.com/raterudder/solarcalc/pkg/types"
)

// DefaultCode is the country used when a code is not in a table.
const DefaultCode = "US"

// ReferenceCode is the country whose currency savings are converted into.
const ReferenceCode = "AU"

// Table is an immutable set of country profiles keyed by code.
type Table struct {
	byCode map[string]types.CountryProfile
}

// NewTable builds a table from profiles. Later profiles replace earlier ones
// with the same code.
func NewTable(profiles ...types.CountryProfile) *Table {
	t := &Table{byCode: make(map[string]types.CountryProfile, len(profiles))}
	for _, p := range profiles {
		t.byCode[p.Code] = p
	}
	return t
}

var defaultTable = NewTable(
	types.CountryProfile{Code: "AU", Name: "Australia", Rate: 0.28, Currency: "AUD", Symbol: "$", AvgMonthlyBill: 120, Flag: "🇦🇺", ExchangeRate: 1.0},
	types.CountryProfile{Code: "US", Name: "United States", Rate: 0.15, Currency: "USD", Symbol: "$", AvgMonthlyBill: 115, Flag: "🇺🇸", ExchangeRate: 0.66},
	types.CountryProfile{Code: "GB", Name: "United Kingdom", Rate: 0.21, Currency: "GBP", Symbol: "£", AvgMonthlyBill: 85, Flag: "🇬🇧", ExchangeRate: 0.51},
	types.CountryProfile{Code: "JP", Name: "Japan", Rate: 0.26, Currency: "JPY", Symbol: "¥", AvgMonthlyBill: 8000, Flag: "🇯🇵", ExchangeRate: 100.52},
	types.CountryProfile{Code: "KR", Name: "South Korea", Rate: 0.11, Currency: "KRW", Symbol: "₩", AvgMonthlyBill: 60000, Flag: "🇰🇷", ExchangeRate: 880.41},
	types.CountryProfile{Code: "DE", Name: "Germany", Rate: 0.37, Currency: "EUR", Symbol: "€", AvgMonthlyBill: 95, Flag: "🇩🇪", ExchangeRate: 0.60},
	types.CountryProfile{Code: "FR", Name: "France", Rate: 0.20, Currency: "EUR", Symbol: "€", AvgMonthlyBill: 75, Flag: "🇫🇷", ExchangeRate: 0.60},
	types.CountryProfile{Code: "IT", Name: "Italy", Rate: 0.25, Currency: "EUR", Symbol: "€", AvgMonthlyBill: 80, Flag: "🇮🇹", ExchangeRate: 0.60},
	types.CountryProfile{Code: "ES", Name: "Spain", Rate: 0.28, Currency: "EUR", Symbol: "€", AvgMonthlyBill: 85, Flag: "🇪🇸", ExchangeRate: 0.60},
	types.CountryProfile{Code: "CA", Name: "Canada", Rate: 0.13, Currency: "CAD", Symbol: "$", AvgMonthlyBill: 100, Flag: "🇨🇦", ExchangeRate: 0.89},
	types.CountryProfile{Code: "CN", Name: "China", Rate: 0.08, Currency: "CNY", Symbol: "¥", AvgMonthlyBill: 300, Flag: "🇨🇳", ExchangeRate: 4.71},
	types.CountryProfile{Code: "IN", Name: "India", Rate: 0.08, Currency: "INR", Symbol: "₹", AvgMonthlyBill: 1000, Flag: "🇮🇳", ExchangeRate: 54.85},
	types.CountryProfile{Code: "BR", Name: "Brazil", Rate: 0.17, Currency: "BRL", Symbol: "R$", AvgMonthlyBill: 200, Flag: "🇧🇷", ExchangeRate: 3.35},
	types.CountryProfile{Code: "ZA", Name: "South Africa", Rate: 0.15, Currency: "ZAR", Symbol: "R", AvgMonthlyBill: 1500, Flag: "🇿🇦", ExchangeRate: 12.17},
	types.CountryProfile{Code: "PG", Name: "Papua New Guinea", Rate: 0.39, Currency: "PGK", Symbol: "K", AvgMonthlyBill: 300, Flag: "🇵🇬", ExchangeRate: 2.35},
)

// Default returns the built-in country table.
func Default() *Table {
	return defaultTable
}

// Lookup returns the profile for code, or the DefaultCode profile when code
// is unknown. ok is false only when neither exists.
func (t *Table) Lookup(code string) (types.CountryProfile, bool) {
	if p, ok := t.byCode[code]; ok {
		return p, true
	}
	p, ok := t.byCode[DefaultCode]
	return p, ok
}

// Has reports whether code has its own profile.
func (t *Table) Has(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Codes returns every code in the table, sorted.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.byCode))
	for code := range t.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Profiles returns every profile ordered by code.
func (t *Table) Profiles() []types.CountryProfile {
	out := make([]types.CountryProfile, 0, len(t.byCode))
	for _, code := range t.Codes() {
		out = append(out, t.byCode[code])
	}
	return out
}

// CurrencyDisplay returns the currency code and symbol shown for code. Both
// are empty when neither code nor DefaultCode is in the table.
func (t *Table) CurrencyDisplay(code string) types.CurrencyDisplay {
	p, ok := t.Lookup(code)
	if !ok {
		return types.CurrencyDisplay{}
	}
	return types.CurrencyDisplay{Currency: p.Currency, Symbol: p.Symbol}
}
