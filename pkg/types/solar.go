package types

// OptaResult is the optimal tilt and daily clear-sky output at a location.
type OptaResult struct {
	Opta     float64 `json:"opta"`     // degrees
	PvoutCsi float64 `json:"pvoutCsi"` // daily kWh/kWp
}

// PVCalcParams describes the system to simulate at a location.
type PVCalcParams struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	SystemType string  `json:"systemType"`
	Azimuth    float64 `json:"azimuth"`
	Tilt       float64 `json:"tilt"`
	Size       float64 `json:"size"` // kWp
}

// MonthlyHourlyData is the provider's per month, per hour output. Hours the
// provider could not compute are null.
type MonthlyHourlyData struct {
	PVOUTTotal [][]*float64 `json:"PVOUT_total"`
}

// PVCalcResult is the simulated output of a system.
type PVCalcResult struct {
	AnnualOutput      float64            `json:"annualOutput"` // kWh
	MonthlyOutput     []float64          `json:"monthlyOutput"`
	GTI               float64            `json:"gti"`
	MonthlyHourlyData *MonthlyHourlyData `json:"monthlyHourlyData,omitempty"`
}

// SolarProfile gathers everything known about the solar resource and the
// simulated output of a system.
type SolarProfile struct {
	Opta                float64     `json:"opta"`
	PvoutCsi            float64     `json:"pvoutCsi"`
	AnnualOutput        float64     `json:"annualOutput"`
	MonthlyOutput       []float64   `json:"monthlyOutput"`
	MonthlyHourlyOutput [][]float64 `json:"monthlyHourlyOutput"`
}

// MonthEstimate is the expected output of a system in one month.
type MonthEstimate struct {
	Month         int       `json:"month"` // 0 is January
	Days          int       `json:"days"`
	Output        float64   `json:"output"`       // kWh
	DailyAverage  float64   `json:"dailyAverage"` // kWh per day
	HourlyProfile []float64 `json:"hourlyProfile"`
	HourlyTotal   float64   `json:"hourlyTotal"` // kWh on an average day
}

// SolarEstimate summarizes a simulated system for display.
type SolarEstimate struct {
	AnnualOutput  float64       `json:"annualOutput"`  // kWh
	SpecificYield float64       `json:"specificYield"` // kWh per kWp
	DailyAverage  float64       `json:"dailyAverage"`  // kWh per day over the year
	MonthlyOutput []float64     `json:"monthlyOutput"`
	DailyAverages []float64     `json:"dailyAverages"`
	Month         MonthEstimate `json:"month"`
}
