// Package appliance aggregates appliance loads and manages the catalog,
// templates and selections they come from.
package appliance

import (
	"math"

	"github.com/raterudder/solarcalc/pkg/types"
)

// CalculateTotals sums the load of entries. Quantity and wattage are read as
// integers and hours as a decimal; a missing quantity counts as 1 and a
// missing wattage or hours as 0. Entries with any field that is not a number
// are skipped.
func CalculateTotals(entries []types.ApplianceEntry) types.Totals {
	var totalWatt, totalKWh float64
	for _, e := range entries {
		quantity := e.Quantity.IntOr(1)
		wattage := e.Wattage.IntOr(0)
		hours := e.Hours.FloatOr(0)
		if math.IsNaN(quantity) || math.IsNaN(wattage) || math.IsNaN(hours) {
			continue
		}
		totalWatt += wattage * quantity
		totalKWh += quantity * wattage * hours / 1000
	}
	return types.Totals{
		TotalWatt: totalWatt,
		TotalKWh:  totalKWh,
		TotalKW:   totalWatt / 1000,
	}
}
