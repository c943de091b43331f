package calculator

import (
	"github.com/raterudder/solarcalc/pkg/appliance"
	"github.com/raterudder/solarcalc/pkg/sizing"
	"github.com/raterudder/solarcalc/pkg/types"
)

// StandardForm is the standard calculator's appliance list and system
// parameters.
type StandardForm struct {
	Appliances []types.ApplianceEntry `json:"appliances"`
	Settings   *types.ConfigSettings  `json:"settings,omitempty"`
}

// StandardResult is the outcome of the standard calculator.
type StandardResult struct {
	Totals       types.Totals           `json:"totals"`
	Parameters   types.SystemParameters `json:"parameters"`
	Requirements types.Requirements     `json:"requirements"`
}

// param parses a system parameter. Only a missing value takes the default;
// zero and garbage pass through so sizing can band them.
func param(n types.Number, def float64) float64 {
	if n.IsNull() {
		return def
	}
	return n.Float64()
}

// Parameters reads the system parameters from settings.
func Parameters(settings *types.ConfigSettings) types.SystemParameters {
	if settings == nil {
		return types.ConfigSettings{}.WithDefaults()
	}
	return types.SystemParameters{
		SimultaneousUsage: param(settings.SimultaneousUsage, types.DefaultSimultaneousUsage),
		ReserveDays:       param(settings.ReserveDays, types.DefaultReserveDays),
		SunHours:          param(settings.SunHours, types.DefaultSunHours),
	}
}

// Standard totals the appliance list and sizes a system for it.
func (c *Calculator) Standard(form StandardForm) StandardResult {
	totals := appliance.CalculateTotals(form.Appliances)
	params := Parameters(form.Settings)
	return StandardResult{
		Totals:     totals,
		Parameters: params,
		Requirements: sizing.Calculate(types.SizingInputs{
			TotalLoadKW:              totals.TotalKW,
			TotalDailyKWh:            totals.TotalKWh,
			SimultaneousUsagePercent: params.SimultaneousUsage,
			BatteryReserveDays:       params.ReserveDays,
			DailySunHours:            params.SunHours,
		}),
	}
}

// StandardTemplate returns the starting form for a home with bedrooms.
func (c *Calculator) StandardTemplate(bedrooms int) StandardForm {
	return StandardForm{
		Appliances: c.catalog.StandardTemplate(bedrooms).Entries(),
		Settings:   &types.ConfigSettings{},
	}
}
