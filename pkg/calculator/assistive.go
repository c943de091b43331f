package calculator

import (
	"github.com/raterudder/solarcalc/pkg/appliance"
	"github.com/raterudder/solarcalc/pkg/sizing"
	"github.com/raterudder/solarcalc/pkg/types"
)

// AssistiveForm is the assistive calculator's selected appliances and
// preferences. When no appliances are given the template for Bedrooms is
// used.
type AssistiveForm struct {
	Appliances []types.ApplianceEntry `json:"appliances"`
	Bedrooms   int                    `json:"bedrooms"`
	Sunlight   types.SunlightLevel    `json:"sunlight"`
	Backup     types.BackupDuration   `json:"backup"`
}

// AssistiveResult is the outcome of the assistive calculator.
type AssistiveResult struct {
	Appliances []types.ApplianceEntry `json:"appliances"`
	Totals     types.Totals           `json:"totals"`
	Results    types.AssistiveResults `json:"results"`
}

// Assistive sizes a system from the daily energy of the selected appliances.
func (c *Calculator) Assistive(form AssistiveForm) AssistiveResult {
	entries := form.Appliances
	if len(entries) == 0 {
		entries = c.AssistiveTemplate(form.Bedrooms)
	}
	totals := appliance.CalculateTotals(entries)
	return AssistiveResult{
		Appliances: entries,
		Totals:     totals,
		Results:    sizing.AssistiveResults(totals.TotalKWh, form.Sunlight, form.Backup),
	}
}

// AssistiveTemplate returns the suggested appliances for a home with
// bedrooms.
func (c *Calculator) AssistiveTemplate(bedrooms int) []types.ApplianceEntry {
	records := c.catalog.AssistiveTemplate(bedrooms)
	entries := make([]types.ApplianceEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.Entry())
	}
	return entries
}
