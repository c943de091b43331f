package appliance

import (
	"github.com/raterudder/solarcalc/pkg/types"
)

// StandardTemplate returns the selection the standard calculator starts from
// for a home with the given number of bedrooms. Titles missing from the
// catalog are skipped. Bedroom counts without their own template only get
// the common appliances.
func (c *Catalog) StandardTemplate(bedrooms int) *Selection {
	s := NewSelection()
	add := func(items []templateItem) {
		for _, t := range items {
			if item, ok := c.Lookup(t.Title); ok {
				s.Add(item, t.Quantity)
			}
		}
	}
	add(c.common)
	add(c.bedrooms[bedrooms])
	return s
}

// AssistiveTemplate returns the appliance list the assistive calculator
// suggests for the given number of bedrooms. Larger homes get every tier up
// to their size.
func (c *Catalog) AssistiveTemplate(bedrooms int) []types.ApplianceRecord {
	var out []types.ApplianceRecord
	for _, tier := range c.assistive {
		if bedrooms < tier.MinBedrooms {
			break
		}
		for _, t := range tier.Appliances {
			out = append(out, types.ApplianceRecord{
				Title:    t.Title,
				Wattage:  t.Wattage,
				Hours:    t.Hours,
				Quantity: t.Quantity,
			})
		}
	}
	return out
}
