// Package sizing turns a household load into recommended inverter, solar and
// battery equipment.
package sizing

import (
	"math"

	"github.com/raterudder/solarcalc/pkg/types"
)

type band struct {
	limit float64
	text  string
}

var inverterBands = []band{
	{3, "3kVA Inverter"},
	{5, "5kVA Inverter"},
	{8, "8kVA Inverter"},
	{12, "15kVA Inverter"},
	{16, "2x10kVA Inverter"},
	{23, "2x15kVA Inverter"},
}

// solar bands are exclusive upper bounds above 0
var solarBands = []band{
	{2, "6 x 275W"},
	{3, "9 x 275W"},
	{5, "10 x 390W"},
	{6, "15 x 370W"},
	{8, "18 x 390W"},
	{10, "25 x 390W"},
	{14, "35 x 390W"},
	{19, "50 x 370W"},
}

// battery bands are exclusive lower bounds, highest first
var batteryBands = []band{
	{50, "50+ kWh"},
	{40, "40 - 50kWh"},
	{30, "30 - 40kWh"},
	{25, "25 - 30kWh"},
	{20, "20 - 25kWh"},
	{15, "15 - 20kWh"},
	{10, "10 - 15kWh"},
	{7.5, "7.5 - 10kWh"},
	{5, "5 - 7.5kWh"},
	{2.5, "2.5 - 5kWh"},
	{0, "0 - 2.5kWh"},
}

const (
	inverterNone   = "0kVA Inverter"
	inverterCustom = "Custom Solution Required"
	solarNone      = "0W"
	solarMax       = "50+ Panels"
	batteryNone    = "0kWh"
)

// InverterText returns the inverter band for the peak load in kW. Loads at or
// below zero get the smallest inverter. NaN matches no band.
func InverterText(inverterKW float64) string {
	for _, b := range inverterBands {
		if inverterKW < b.limit {
			return b.text
		}
	}
	if inverterKW >= inverterBands[len(inverterBands)-1].limit {
		return inverterCustom
	}
	return inverterNone
}

// SolarText returns the panel band for the array size in kW.
func SolarText(solarKW float64) string {
	if math.IsNaN(solarKW) || solarKW <= 0 {
		return solarNone
	}
	for _, b := range solarBands {
		if solarKW < b.limit {
			return b.text
		}
	}
	return solarMax
}

// BatteryText returns the storage band for the battery size in kWh.
func BatteryText(batteryKWh float64) string {
	for _, b := range batteryBands {
		if batteryKWh > b.limit {
			return b.text
		}
	}
	return batteryNone
}

// GetSystemRequirements sizes a system for totalKW of connected load using
// totalKWh per day. simUsage is the percentage of the load expected to run at
// the same time, batteryDays the days of storage and dailySunHours the peak
// sun hours at the site. Out of range inputs fall into the lowest bands and
// never cause an error.
func GetSystemRequirements(totalKW, totalKWh, simUsage, batteryDays, dailySunHours float64) types.Requirements {
	inverterKW := totalKW * (simUsage / 100)
	solarKW := totalKWh / dailySunHours
	batteryKWh := totalKWh * batteryDays

	return types.Requirements{
		InverterText: InverterText(inverterKW),
		SolarText:    SolarText(solarKW),
		BatteryText:  BatteryText(batteryKWh),
	}
}

// Calculate is GetSystemRequirements for a SizingInputs.
func Calculate(in types.SizingInputs) types.Requirements {
	return GetSystemRequirements(
		in.TotalLoadKW,
		in.TotalDailyKWh,
		in.SimultaneousUsagePercent,
		in.BatteryReserveDays,
		in.DailySunHours,
	)
}
