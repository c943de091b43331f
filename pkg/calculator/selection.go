package calculator

import (
	"errors"
	"fmt"

	"github.com/raterudder/solarcalc/pkg/appliance"
	"github.com/raterudder/solarcalc/pkg/types"
)

// Selection edit actions.
const (
	SelectionAdd    = "add"
	SelectionUpdate = "update"
	SelectionRemove = "remove"
	SelectionClear  = "clear"
)

var (
	// ErrUnknownAppliance is returned when adding a title the catalog does
	// not have.
	ErrUnknownAppliance = errors.New("unknown appliance")

	// ErrUnknownAction is returned for an unsupported selection action.
	ErrUnknownAction = errors.New("unknown selection action")
)

// SelectionEdit applies one action to the current selection. Add takes the
// catalog item for Title, Update sets the numeric fields of Title, Remove
// drops Title and Clear empties the selection.
type SelectionEdit struct {
	Selection []types.ApplianceRecord `json:"selection"`
	Action    string                  `json:"action"`
	Title     string                  `json:"title,omitempty"`
	Quantity  int                     `json:"quantity,omitempty"`
	Wattage   float64                 `json:"wattage,omitempty"`
	Hours     float64                 `json:"hours,omitempty"`
}

// SelectionRow is a selected appliance with its daily energy.
type SelectionRow struct {
	types.ApplianceRecord
	DailyKWh float64 `json:"dailyKWh"`
}

// SelectionResult is the selection after an edit.
type SelectionResult struct {
	Selection []SelectionRow `json:"selection"`
	Totals    types.Totals   `json:"totals"`
}

// EditSelection applies edit and returns the resulting selection.
func (c *Calculator) EditSelection(edit SelectionEdit) (SelectionResult, error) {
	s := appliance.NewSelection(edit.Selection...)

	switch edit.Action {
	case SelectionAdd:
		item, ok := c.catalog.Lookup(edit.Title)
		if !ok {
			return SelectionResult{}, fmt.Errorf("%w: %s", ErrUnknownAppliance, edit.Title)
		}
		quantity := edit.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		s.Add(item, quantity)
	case SelectionUpdate:
		if err := s.Update(edit.Title, edit.Quantity, edit.Wattage, edit.Hours); err != nil {
			return SelectionResult{}, err
		}
	case SelectionRemove:
		if !s.Remove(edit.Title) {
			return SelectionResult{}, fmt.Errorf("%w: %s", appliance.ErrNotSelected, edit.Title)
		}
	case SelectionClear:
		s.Clear()
	default:
		return SelectionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, edit.Action)
	}

	records := s.Records()
	rows := make([]SelectionRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, SelectionRow{ApplianceRecord: r, DailyKWh: r.DailyKWh()})
	}
	return SelectionResult{
		Selection: rows,
		Totals:    s.Totals(),
	}, nil
}
