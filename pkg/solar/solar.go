// Package solar derives production estimates and system sizes from the solar
// data provider's irradiation and output figures.
package solar

import (
	"math"

	"github.com/raterudder/solarcalc/pkg/types"
)

const (
	// DefaultOpta is the tilt angle in degrees used when the provider has
	// none.
	DefaultOpta = 20.0

	// DefaultPvoutCsi is the daily kWh/kWp used when the provider has none.
	DefaultPvoutCsi = 4.5 / 365

	// GTIEfficiency converts global tilted irradiance into panel output
	// when PVOUT_CSI is missing.
	GTIEfficiency = 0.17

	// SizingMargin is applied on top of daily usage when sizing an array.
	SizingMargin = 1.3

	hoursPerDay = 24
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DefaultOptaResult is the result used when the provider can't be reached.
func DefaultOptaResult() types.OptaResult {
	return types.OptaResult{Opta: DefaultOpta, PvoutCsi: DefaultPvoutCsi}
}

// RecommendedSystemSize returns the array size in kWp needed to cover
// dailyUsage kWh with dailyPvoutCsi kWh per kWp, rounded to one decimal and
// at least 1. Without a positive dailyPvoutCsi it returns 1.
func RecommendedSystemSize(dailyUsage, dailyPvoutCsi float64) float64 {
	if math.IsNaN(dailyPvoutCsi) || dailyPvoutCsi <= 0 {
		return 1
	}
	raw := (dailyUsage * SizingMargin) / dailyPvoutCsi
	rounded := math.Floor(raw*10+0.5) / 10
	if math.IsNaN(rounded) {
		return 1
	}
	return math.Max(1, rounded)
}

// ExtractMonthlyHourlyProfile returns the hourly output of month scaled by
// systemSize. Missing hours are 0 and a missing month is 24 zeros.
func ExtractMonthlyHourlyProfile(data *types.MonthlyHourlyData, month int, systemSize float64) []float64 {
	if data == nil || month < 0 || month >= len(data.PVOUTTotal) || data.PVOUTTotal[month] == nil {
		return make([]float64, hoursPerDay)
	}
	hours := data.PVOUTTotal[month]
	out := make([]float64, len(hours))
	for i, v := range hours {
		if v == nil || math.IsNaN(*v) {
			continue
		}
		out[i] = *v * systemSize
	}
	return out
}

// DaysInMonth returns the days in month of a non-leap year, where 0 is
// January. Invalid months have 0 days.
func DaysInMonth(month int) int {
	if month < 0 || month >= len(daysInMonth) {
		return 0
	}
	return daysInMonth[month]
}

// TotalFromHourlyData sums the hours that have a value.
func TotalFromHourlyData(values []*float64) float64 {
	var total float64
	for _, v := range values {
		if v == nil || math.IsNaN(*v) {
			continue
		}
		total += *v
	}
	return total
}

// DailyAverages divides each month's output by the days in that month.
// Months past December average 0.
func DailyAverages(monthly []float64) []float64 {
	out := make([]float64, len(monthly))
	for i, v := range monthly {
		if days := DaysInMonth(i); days > 0 {
			out[i] = v / float64(days)
		}
	}
	return out
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Estimate summarizes a simulation of a systemSize kWp array, detailing
// month.
func Estimate(res types.PVCalcResult, systemSize float64, month int) types.SolarEstimate {
	est := types.SolarEstimate{
		AnnualOutput:  res.AnnualOutput,
		DailyAverage:  res.AnnualOutput / 365,
		MonthlyOutput: res.MonthlyOutput,
		DailyAverages: DailyAverages(res.MonthlyOutput),
	}
	if systemSize > 0 {
		est.SpecificYield = res.AnnualOutput / systemSize
	}

	profile := ExtractMonthlyHourlyProfile(res.MonthlyHourlyData, month, 1)
	est.Month = types.MonthEstimate{
		Month:         month,
		Days:          DaysInMonth(month),
		HourlyProfile: profile,
		HourlyTotal:   sum(profile),
	}
	if month >= 0 && month < len(res.MonthlyOutput) {
		est.Month.Output = res.MonthlyOutput[month]
		est.Month.DailyAverage = est.DailyAverages[month]
	}
	return est
}

// Profile combines the location lookup and a simulation into the full solar
// profile, with every month's hourly output.
func Profile(opta types.OptaResult, res types.PVCalcResult) types.SolarProfile {
	months := len(daysInMonth)
	if res.MonthlyHourlyData != nil && len(res.MonthlyHourlyData.PVOUTTotal) > months {
		months = len(res.MonthlyHourlyData.PVOUTTotal)
	}
	hourly := make([][]float64, months)
	for m := range hourly {
		hourly[m] = ExtractMonthlyHourlyProfile(res.MonthlyHourlyData, m, 1)
	}
	return types.SolarProfile{
		Opta:                opta.Opta,
		PvoutCsi:            opta.PvoutCsi,
		AnnualOutput:        res.AnnualOutput,
		MonthlyOutput:       res.MonthlyOutput,
		MonthlyHourlyOutput: hourly,
	}
}
