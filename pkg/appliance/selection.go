package appliance

import (
	"errors"
	"fmt"

	"github.com/raterudder/solarcalc/pkg/types"
)

// ErrNotSelected is returned when changing an appliance that is not part of
// the selection.
var ErrNotSelected = errors.New("appliance not selected")

// Selection is the ordered list of appliances a user picked. Titles are
// unique within a selection.
type Selection struct {
	records []types.ApplianceRecord
}

// NewSelection returns a selection holding records. Records sharing a title
// are merged by adding their quantities.
func NewSelection(records ...types.ApplianceRecord) *Selection {
	s := &Selection{}
	for _, r := range records {
		s.AddRecord(r)
	}
	return s
}

func (s *Selection) index(title string) int {
	for i, r := range s.records {
		if r.Title == title {
			return i
		}
	}
	return -1
}

// Add selects quantity units of item. If the title is already selected its
// quantity is increased instead.
func (s *Selection) Add(item types.CatalogItem, quantity int) {
	s.AddRecord(item.Record(quantity))
}

// AddRecord adds r, merging it into an existing record with the same title.
func (s *Selection) AddRecord(r types.ApplianceRecord) {
	if i := s.index(r.Title); i >= 0 {
		s.records[i].Quantity += r.Quantity
		return
	}
	s.records = append(s.records, r)
}

// Update changes the numeric fields of the record with title.
func (s *Selection) Update(title string, quantity int, wattage, hours float64) error {
	i := s.index(title)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotSelected, title)
	}
	s.records[i].Quantity = quantity
	s.records[i].Wattage = wattage
	s.records[i].Hours = hours
	return nil
}

// Remove drops the record with title. It reports whether anything was
// removed.
func (s *Selection) Remove(title string) bool {
	i := s.index(title)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

// Clear removes every record.
func (s *Selection) Clear() {
	s.records = nil
}

// Len returns the number of selected appliances.
func (s *Selection) Len() int {
	return len(s.records)
}

// Has reports whether title is selected.
func (s *Selection) Has(title string) bool {
	return s.index(title) >= 0
}

// Records returns a copy of the selected records in selection order.
func (s *Selection) Records() []types.ApplianceRecord {
	return append([]types.ApplianceRecord(nil), s.records...)
}

// Entries returns the selection in form representation.
func (s *Selection) Entries() []types.ApplianceEntry {
	entries := make([]types.ApplianceEntry, 0, len(s.records))
	for _, r := range s.records {
		entries = append(entries, r.Entry())
	}
	return entries
}

// Totals aggregates the selection.
func (s *Selection) Totals() types.Totals {
	return CalculateTotals(s.Entries())
}
