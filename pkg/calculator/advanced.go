package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/raterudder/solarcalc/pkg/country"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/savings"
	"github.com/raterudder/solarcalc/pkg/solar"
	"github.com/raterudder/solarcalc/pkg/types"
)

// DefaultSystemType is the mounting simulated when the form has none.
const DefaultSystemType = "roofMounted"

var (
	// ErrInvalidLocation is returned for coordinates off the globe.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrNoSolarData is returned when the calculator has no solar data
	// provider.
	ErrNoSolarData = errors.New("solar data provider not configured")
)

// AdvancedForm describes a location and the system to put there. Country
// is detected from the coordinates when empty. SystemSize takes precedence
// over DailyUsage; with neither the smallest system is simulated.
type AdvancedForm struct {
	Lat        float64      `json:"lat"`
	Lng        float64      `json:"lng"`
	Country    string       `json:"country,omitempty"`
	DailyUsage types.Number `json:"dailyUsage"` // kWh
	SystemSize types.Number `json:"systemSize"` // kWp
	SystemType string       `json:"systemType,omitempty"`
	Azimuth    *float64     `json:"azimuth,omitempty"`
	Tilt       *float64     `json:"tilt,omitempty"`
	Month      *int         `json:"month,omitempty"` // 0 is January
}

// AdvancedResult is the outcome of the advanced calculator.
type AdvancedResult struct {
	Country          types.CountryProfile  `json:"country"`
	Detected         bool                  `json:"detected"`
	Currency         types.CurrencyDisplay `json:"currency"`
	Opta             types.OptaResult      `json:"opta"`
	SystemSize       float64               `json:"systemSize"`
	Recommended      bool                  `json:"recommended"`
	Azimuth          float64               `json:"azimuth"`
	AzimuthDirection string                `json:"azimuthDirection"`
	Tilt             float64               `json:"tilt"`
	Estimate         types.SolarEstimate   `json:"estimate"`
	Profile          types.SolarProfile    `json:"profile"`
	Savings          SavingsResult         `json:"savings"`
}

// SavingsResult is the money saved by a year of output in local currency and
// in AUD.
type SavingsResult struct {
	Local types.Savings `json:"local"`
	AUD   types.Savings `json:"aud"`
}

// Savings values annualOutput kWh in the currency of code and converts the
// result to AUD.
func (c *Calculator) Savings(annualOutput float64, code string) SavingsResult {
	local := savings.CalculateMonthlySavings(annualOutput, code, c.countries)
	return SavingsResult{
		Local: local,
		AUD: types.Savings{
			MonthlySavings: savings.ConvertCurrency(local.MonthlySavings, code, c.countries),
			AnnualSavings:  savings.ConvertCurrency(local.AnnualSavings, code, c.countries),
		},
	}
}

// defaultAzimuth faces the panels towards the equator.
func defaultAzimuth(lat float64) float64 {
	if lat < 0 {
		return 0
	}
	return 180
}

func validLocation(lat, lng float64) bool {
	return !math.IsNaN(lat) && !math.IsNaN(lng) &&
		lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Advanced looks up the solar resource at the form's location, simulates the
// system and values its output. Simulation errors are returned as-is.
func (c *Calculator) Advanced(ctx context.Context, form AdvancedForm) (AdvancedResult, error) {
	if !validLocation(form.Lat, form.Lng) {
		return AdvancedResult{}, fmt.Errorf("%w: %v,%v", ErrInvalidLocation, form.Lat, form.Lng)
	}
	if c.solar == nil {
		return AdvancedResult{}, ErrNoSolarData
	}

	var res AdvancedResult
	code := form.Country
	if code == "" {
		code = country.Detect(form.Lat, form.Lng)
		res.Detected = true
	}
	res.Country, _ = c.countries.Lookup(code)
	res.Currency = c.countries.CurrencyDisplay(code)

	res.Opta = c.solar.FetchOpta(ctx, form.Lat, form.Lng)

	if size := form.SystemSize.FloatOr(0); size > 0 && !math.IsInf(size, 0) {
		res.SystemSize = size
	} else {
		usage := form.DailyUsage.FloatOr(0)
		res.SystemSize = solar.RecommendedSystemSize(usage, res.Opta.PvoutCsi)
		res.Recommended = true
	}

	res.Azimuth = defaultAzimuth(form.Lat)
	if form.Azimuth != nil {
		res.Azimuth = *form.Azimuth
	}
	res.AzimuthDirection = solar.AzimuthDirection(res.Azimuth)
	res.Tilt = res.Opta.Opta
	if form.Tilt != nil {
		res.Tilt = *form.Tilt
	}
	systemType := form.SystemType
	if systemType == "" {
		systemType = DefaultSystemType
	}

	log.Ctx(ctx).DebugContext(
		ctx,
		"running advanced calculation",
		slog.String("country", code),
		slog.Float64("systemSize", res.SystemSize),
		slog.Float64("tilt", res.Tilt),
		slog.Float64("azimuth", res.Azimuth),
	)

	pv, err := c.solar.FetchPVCalc(ctx, types.PVCalcParams{
		Lat:        form.Lat,
		Lng:        form.Lng,
		SystemType: systemType,
		Azimuth:    res.Azimuth,
		Tilt:       res.Tilt,
		Size:       res.SystemSize,
	})
	if err != nil {
		return AdvancedResult{}, err
	}

	month := int(c.now().Month()) - 1
	if form.Month != nil {
		month = *form.Month
	}
	res.Estimate = solar.Estimate(pv, res.SystemSize, month)
	res.Profile = solar.Profile(res.Opta, pv)
	res.Savings = c.Savings(pv.AnnualOutput, code)
	return res, nil
}
