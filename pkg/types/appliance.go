package types

// ApplianceRecord is a selected appliance with validated numeric fields.
type ApplianceRecord struct {
	Title    string  `json:"title"`
	Wattage  float64 `json:"wattage"`
	Hours    float64 `json:"hours"`
	Quantity int     `json:"quantity"`
}

// DailyKWh returns the energy the record uses per day.
func (r ApplianceRecord) DailyKWh() float64 {
	return r.Wattage * r.Hours * float64(r.Quantity) / 1000
}

// Entry converts the record into its loosely typed form representation.
func (r ApplianceRecord) Entry() ApplianceEntry {
	return ApplianceEntry{
		Title:    r.Title,
		Quantity: Int(r.Quantity),
		Wattage:  Float(r.Wattage),
		Hours:    Float(r.Hours),
	}
}

// ApplianceEntry is an appliance row as the form holds it: any field may be
// missing or non-numeric.
type ApplianceEntry struct {
	Title    string `json:"title"`
	Quantity Number `json:"quantity"`
	Wattage  Number `json:"wattage"`
	Hours    Number `json:"hours"`
}

// Totals is the aggregate load of a set of appliances.
type Totals struct {
	TotalWatt float64 `json:"totalWatt"`
	TotalKWh  float64 `json:"totalKWh"`
	TotalKW   float64 `json:"totalKW"`
}

// CatalogItem is an appliance the user can pick from.
type CatalogItem struct {
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Wattage  float64 `json:"wattage" yaml:"wattage"`
	Hours    float64 `json:"hours" yaml:"hours"`
}

// Record returns a record for quantity units of the item.
func (c CatalogItem) Record(quantity int) ApplianceRecord {
	return ApplianceRecord{
		Title:    c.Title,
		Wattage:  c.Wattage,
		Hours:    c.Hours,
		Quantity: quantity,
	}
}
