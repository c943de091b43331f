package sizing

import (
	"math"

	"github.com/raterudder/solarcalc/pkg/types"
)

// PanelWattage is the panel size the assistive calculator counts with.
const PanelWattage = 400

// SunHours returns the peak sun hours for a sunlight level. Unknown levels
// are treated as medium.
func SunHours(level types.SunlightLevel) float64 {
	switch level {
	case types.SunlightLow:
		return 3
	case types.SunlightHigh:
		return 5
	default:
		return 4
	}
}

// BackupDays returns the days of storage for a backup duration. Unknown
// durations are treated as one day.
func BackupDays(d types.BackupDuration) float64 {
	switch d {
	case types.BackupHalfDay:
		return 0.5
	case types.BackupTwoDays:
		return 2
	default:
		return 1
	}
}

// roundTenth rounds x to one decimal, halves rounding up.
func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// AssistiveResults sizes a system from the daily energy use and the simplified
// sunlight and backup choices. System and battery sizes are at least 1.
func AssistiveResults(dailyKWh float64, sunlight types.SunlightLevel, backup types.BackupDuration) types.AssistiveResults {
	if math.IsNaN(dailyKWh) {
		dailyKWh = 0
	}
	systemSize := math.Max(1, roundTenth(dailyKWh/SunHours(sunlight)))
	batterySize := math.Max(1, roundTenth(dailyKWh*BackupDays(backup)))
	return types.AssistiveResults{
		SystemSize:     systemSize,
		BatterySize:    batterySize,
		NumberOfPanels: int(math.Ceil(systemSize * 1000 / PanelWattage)),
		PanelWattage:   PanelWattage,
	}
}
