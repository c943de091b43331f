package types

import (
	"encoding/json"
	"math"
)

// Default system parameters used when a saved configuration omits them.
const (
	DefaultSimultaneousUsage = 50.0
	DefaultReserveDays       = 1.0
	DefaultSunHours          = 4.0
)

// ConfigSettings are the system parameters of a saved configuration. They
// are stored exactly as the form held them.
type ConfigSettings struct {
	SimultaneousUsage Number `json:"simultaneousUsage"`
	ReserveDays       Number `json:"reserveDays"`
	SunHours          Number `json:"sunHours"`
}

// SystemParameters are the numeric system parameters of the standard
// calculator.
type SystemParameters struct {
	SimultaneousUsage float64 `json:"simultaneousUsage"` // percent
	ReserveDays       float64 `json:"reserveDays"`
	SunHours          float64 `json:"sunHours"`
}

// MarshalJSON writes parameters that are not finite numbers as null.
func (p SystemParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SimultaneousUsage *float64 `json:"simultaneousUsage"`
		ReserveDays       *float64 `json:"reserveDays"`
		SunHours          *float64 `json:"sunHours"`
	}{
		SimultaneousUsage: finite(p.SimultaneousUsage),
		ReserveDays:       finite(p.ReserveDays),
		SunHours:          finite(p.SunHours),
	})
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// WithDefaults parses the settings, replacing any missing, zero or
// non-numeric value with its default.
func (s ConfigSettings) WithDefaults() SystemParameters {
	return SystemParameters{
		SimultaneousUsage: orDefault(s.SimultaneousUsage, DefaultSimultaneousUsage),
		ReserveDays:       orDefault(s.ReserveDays, DefaultReserveDays),
		SunHours:          orDefault(s.SunHours, DefaultSunHours),
	}
}

func orDefault(n Number, def float64) float64 {
	v := n.FloatOr(def)
	if math.IsNaN(v) || v == 0 {
		return def
	}
	return v
}

// Settings converts the parameters into their stored form.
func (p SystemParameters) Settings() ConfigSettings {
	return ConfigSettings{
		SimultaneousUsage: Float(p.SimultaneousUsage),
		ReserveDays:       Float(p.ReserveDays),
		SunHours:          Float(p.SunHours),
	}
}
