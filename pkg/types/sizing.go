package types

// SizingInputs are the values the equipment recommendation is based on.
type SizingInputs struct {
	TotalLoadKW              float64 `json:"totalLoadKW"`
	TotalDailyKWh            float64 `json:"totalDailyKWh"`
	SimultaneousUsagePercent float64 `json:"simultaneousUsagePercent"`
	BatteryReserveDays       float64 `json:"batteryReserveDays"`
	DailySunHours            float64 `json:"dailySunHours"`
}

// Requirements are the recommended equipment bands.
type Requirements struct {
	InverterText string `json:"inverterText"`
	SolarText    string `json:"solarText"`
	BatteryText  string `json:"batteryText"`
}

// SunlightLevel is the assistive calculator's sunlight choice.
type SunlightLevel string

const (
	SunlightLow    SunlightLevel = "low"
	SunlightMedium SunlightLevel = "medium"
	SunlightHigh   SunlightLevel = "high"
)

// BackupDuration is the assistive calculator's battery backup choice.
type BackupDuration string

const (
	BackupHalfDay BackupDuration = "half"
	BackupOneDay  BackupDuration = "one"
	BackupTwoDays BackupDuration = "two"
)

// AssistiveResults is the simplified sizing shown by the assistive calculator.
type AssistiveResults struct {
	SystemSize     float64 `json:"systemSize"`  // kW
	BatterySize    float64 `json:"batterySize"` // kWh
	NumberOfPanels int     `json:"numberOfPanels"`
	PanelWattage   int     `json:"panelWattage"`
}
