package calculator

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raterudder/solarcalc/pkg/appliance"
	"github.com/raterudder/solarcalc/pkg/solaratlas"
	"github.com/raterudder/solarcalc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSolarData struct {
	mock.Mock
}

func (m *mockSolarData) FetchOpta(ctx context.Context, lat, lng float64) types.OptaResult {
	args := m.Called(ctx, lat, lng)
	return args.Get(0).(types.OptaResult)
}

func (m *mockSolarData) FetchPVCalc(ctx context.Context, params types.PVCalcParams) (types.PVCalcResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(types.PVCalcResult), args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}

func TestStandard(t *testing.T) {
	c := New(nil, nil, nil)

	t.Run("sizes the appliance list", func(t *testing.T) {
		res := c.Standard(StandardForm{
			Appliances: []types.ApplianceEntry{
				{Title: "TV", Quantity: types.Int(2), Wattage: types.Int(100), Hours: types.Int(5)},
				{Title: "Kettle", Quantity: types.Int(1), Wattage: types.Int(1500), Hours: types.Int(2)},
				{Title: "Lights", Quantity: types.Int(3), Wattage: types.Int(25), Hours: types.Int(12)},
			},
			Settings: &types.ConfigSettings{
				SimultaneousUsage: types.Text("60"),
				ReserveDays:       types.Text("1"),
				SunHours:          types.Text("4"),
			},
		})
		assert.Equal(t, 1775.0, res.Totals.TotalWatt)
		assert.InDelta(t, 4.9, res.Totals.TotalKWh, 1e-9)
		assert.Equal(t, types.SystemParameters{SimultaneousUsage: 60, ReserveDays: 1, SunHours: 4}, res.Parameters)
		assert.Equal(t, types.Requirements{
			InverterText: "3kVA Inverter",
			SolarText:    "6 x 275W",
			BatteryText:  "2.5 - 5kWh",
		}, res.Requirements)
	})

	t.Run("missing settings use defaults", func(t *testing.T) {
		res := c.Standard(StandardForm{})
		assert.Equal(t, types.SystemParameters{SimultaneousUsage: 50, ReserveDays: 1, SunHours: 4}, res.Parameters)
		assert.Equal(t, types.Requirements{InverterText: "3kVA Inverter", SolarText: "0W", BatteryText: "0kWh"}, res.Requirements)

		res = c.Standard(StandardForm{Settings: &types.ConfigSettings{SunHours: types.Int(5)}})
		assert.Equal(t, types.SystemParameters{SimultaneousUsage: 50, ReserveDays: 1, SunHours: 5}, res.Parameters)
	})

	t.Run("zero sun hours pass through", func(t *testing.T) {
		res := c.Standard(StandardForm{
			Appliances: []types.ApplianceEntry{{Quantity: types.Int(1), Wattage: types.Int(1000), Hours: types.Int(4)}},
			Settings:   &types.ConfigSettings{SunHours: types.Int(0)},
		})
		assert.Equal(t, 0.0, res.Parameters.SunHours)
		assert.Equal(t, "50+ Panels", res.Requirements.SolarText)
	})

	t.Run("garbage simultaneous usage matches no inverter band", func(t *testing.T) {
		res := c.Standard(StandardForm{
			Appliances: []types.ApplianceEntry{{Quantity: types.Int(1), Wattage: types.Int(1000), Hours: types.Int(4)}},
			Settings:   &types.ConfigSettings{SimultaneousUsage: types.Text("most")},
		})
		assert.True(t, math.IsNaN(res.Parameters.SimultaneousUsage))
		assert.Equal(t, "0kVA Inverter", res.Requirements.InverterText)
	})

	t.Run("template", func(t *testing.T) {
		form := c.StandardTemplate(3)
		assert.Len(t, form.Appliances, 11)
		res := c.Standard(form)
		assert.Equal(t, types.SystemParameters{SimultaneousUsage: 50, ReserveDays: 1, SunHours: 4}, res.Parameters)
		assert.Greater(t, res.Totals.TotalKWh, 0.0)
	})
}

func TestAssistive(t *testing.T) {
	c := New(nil, nil, nil)

	t.Run("selected appliances", func(t *testing.T) {
		res := c.Assistive(AssistiveForm{
			Appliances: []types.ApplianceEntry{
				{Title: "Heater", Quantity: types.Int(1), Wattage: types.Int(2500), Hours: types.Int(4)},
			},
			Sunlight: types.SunlightMedium,
			Backup:   types.BackupOneDay,
		})
		assert.InDelta(t, 10, res.Totals.TotalKWh, 1e-9)
		assert.Equal(t, types.AssistiveResults{SystemSize: 2.5, BatterySize: 10, NumberOfPanels: 7, PanelWattage: 400}, res.Results)
	})

	t.Run("template when nothing selected", func(t *testing.T) {
		res := c.Assistive(AssistiveForm{Bedrooms: 1, Sunlight: types.SunlightHigh, Backup: types.BackupTwoDays})
		require.Len(t, res.Appliances, 7)
		// 0.25 + 3.6 + 0.48 + 0.4 + 0.24 + 0.5 + 0.4
		assert.InDelta(t, 5.87, res.Totals.TotalKWh, 1e-9)
		assert.Equal(t, 1.2, res.Results.SystemSize)
		assert.Equal(t, 11.7, res.Results.BatterySize)
		assert.Equal(t, 3, res.Results.NumberOfPanels)
	})
}

func TestSavings(t *testing.T) {
	c := New(nil, nil, nil)

	res := c.Savings(10000, "KR")
	assert.InDelta(t, 968451, res.Local.AnnualSavings, 0.01)
	assert.InDelta(t, 80704.25, res.Local.MonthlySavings, 0.01)
	assert.InDelta(t, 1100, res.AUD.AnnualSavings, 0.01)

	res = c.Savings(10000, "AU")
	assert.InDelta(t, 2800, res.Local.AnnualSavings, 1e-9)
	assert.Equal(t, res.Local, res.AUD)

	assert.Equal(t, SavingsResult{}, c.Savings(0, "US"))
}

func TestAdvanced(t *testing.T) {
	ctx := context.Background()
	pv := types.PVCalcResult{
		AnnualOutput:  9490,
		MonthlyOutput: []float64{930, 840, 868, 780, 713, 630, 651, 744, 810, 899, 900, 961},
		GTI:           2100,
		MonthlyHourlyData: &types.MonthlyHourlyData{PVOUTTotal: [][]*float64{
			{ptr(0.0), nil, ptr(3.0)},
		}},
	}

	t.Run("recommended size", func(t *testing.T) {
		sd := &mockSolarData{}
		sd.On("FetchOpta", mock.Anything, -27.5, 153.0).Return(types.OptaResult{Opta: 27, PvoutCsi: 4}, nil)
		sd.On("FetchPVCalc", mock.Anything, types.PVCalcParams{
			Lat:        -27.5,
			Lng:        153,
			SystemType: DefaultSystemType,
			Azimuth:    0,
			Tilt:       27,
			Size:       6.5,
		}).Return(pv, nil)

		c := New(nil, nil, sd)
		c.now = func() time.Time { return time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC) }

		res, err := c.Advanced(ctx, AdvancedForm{Lat: -27.5, Lng: 153, DailyUsage: types.Int(20)})
		require.NoError(t, err)
		sd.AssertExpectations(t)

		assert.Equal(t, "AU", res.Country.Code)
		assert.True(t, res.Detected)
		assert.Equal(t, types.CurrencyDisplay{Currency: "AUD", Symbol: "$"}, res.Currency)
		assert.Equal(t, 6.5, res.SystemSize)
		assert.True(t, res.Recommended)
		assert.Equal(t, "North (0°)", res.AzimuthDirection)
		assert.Equal(t, 27.0, res.Tilt)

		assert.Equal(t, 0, res.Estimate.Month.Month)
		assert.Equal(t, 930.0, res.Estimate.Month.Output)
		assert.InDelta(t, 30, res.Estimate.Month.DailyAverage, 1e-9)
		assert.Equal(t, []float64{0, 0, 3}, res.Estimate.Month.HourlyProfile)
		assert.Len(t, res.Profile.MonthlyHourlyOutput, 12)

		assert.InDelta(t, 9490*0.28, res.Savings.Local.AnnualSavings, 1e-9)
		assert.Equal(t, res.Savings.Local, res.Savings.AUD)
	})

	t.Run("explicit size and orientation", func(t *testing.T) {
		sd := &mockSolarData{}
		sd.On("FetchOpta", mock.Anything, 35.0, 135.0).Return(types.OptaResult{Opta: 30, PvoutCsi: 3.5})
		sd.On("FetchPVCalc", mock.Anything, types.PVCalcParams{
			Lat:        35,
			Lng:        135,
			SystemType: "groundMounted",
			Azimuth:    90,
			Tilt:       10,
			Size:       4,
		}).Return(pv, nil)

		c := New(nil, nil, sd)
		res, err := c.Advanced(ctx, AdvancedForm{
			Lat:        35,
			Lng:        135,
			Country:    "GB",
			SystemSize: types.Text("4"),
			DailyUsage: types.Int(50),
			SystemType: "groundMounted",
			Azimuth:    ptr(90.0),
			Tilt:       ptr(10.0),
			Month:      ptr(5),
		})
		require.NoError(t, err)
		sd.AssertExpectations(t)

		assert.Equal(t, "GB", res.Country.Code)
		assert.False(t, res.Detected)
		assert.False(t, res.Recommended)
		assert.Equal(t, "East (90°)", res.AzimuthDirection)
		assert.Equal(t, 5, res.Estimate.Month.Month)
		assert.Equal(t, make([]float64, 24), res.Estimate.Month.HourlyProfile)
		assert.InDelta(t, 9490*0.21/0.51, res.Savings.AUD.AnnualSavings, 1e-9)
	})

	t.Run("northern hemisphere faces south", func(t *testing.T) {
		sd := &mockSolarData{}
		sd.On("FetchOpta", mock.Anything, 40.0, -100.0).Return(types.OptaResult{Opta: 35, PvoutCsi: 0})
		sd.On("FetchPVCalc", mock.Anything, mock.MatchedBy(func(p types.PVCalcParams) bool {
			return p.Azimuth == 180 && p.Size == 1
		})).Return(pv, nil)

		c := New(nil, nil, sd)
		res, err := c.Advanced(ctx, AdvancedForm{Lat: 40, Lng: -100, DailyUsage: types.Int(30), Month: ptr(0)})
		require.NoError(t, err)
		assert.Equal(t, "US", res.Country.Code)
		assert.Equal(t, "South (180°)", res.AzimuthDirection)
		assert.Equal(t, 1.0, res.SystemSize)
	})

	t.Run("simulation error", func(t *testing.T) {
		sd := &mockSolarData{}
		sd.On("FetchOpta", mock.Anything, mock.Anything, mock.Anything).Return(types.OptaResult{Opta: 20, PvoutCsi: 4})
		sd.On("FetchPVCalc", mock.Anything, mock.Anything).Return(types.PVCalcResult{}, errors.New("HTTP error! Status: 500"))

		c := New(nil, nil, sd)
		_, err := c.Advanced(ctx, AdvancedForm{Lat: 1, Lng: 1})
		assert.EqualError(t, err, "HTTP error! Status: 500")
	})

	t.Run("invalid location", func(t *testing.T) {
		c := New(nil, nil, &mockSolarData{})
		_, err := c.Advanced(ctx, AdvancedForm{Lat: 91, Lng: 0})
		assert.ErrorIs(t, err, ErrInvalidLocation)
	})

	t.Run("no provider", func(t *testing.T) {
		_, err := New(nil, nil, nil).Advanced(ctx, AdvancedForm{})
		assert.ErrorIs(t, err, ErrNoSolarData)
	})

	t.Run("solar atlas client", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/lta":
				_, _ = w.Write([]byte(`{"annual":{"data":{"OPTA":31,"PVOUT_CSI":1460}}}`))
			case "/pvcalc":
				_, _ = w.Write([]byte(`{"annual":{"data":{"PVOUT_total":6000}},"monthly":{"data":{"PVOUT_total":[500,500,500,500,500,500,500,500,500,500,500,500]}}}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		c := New(nil, nil, solaratlas.New(ts.URL, ts.Client()))
		res, err := c.Advanced(ctx, AdvancedForm{Lat: -33.9, Lng: 151.2, DailyUsage: types.Int(12), Month: ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, 31.0, res.Tilt)
		// 12 * 1.3 / 4
		assert.Equal(t, 3.9, res.SystemSize)
		assert.Equal(t, 6000.0, res.Estimate.AnnualOutput)
		assert.InDelta(t, 500.0/30, res.Estimate.Month.DailyAverage, 1e-9)
		assert.InDelta(t, 1680, res.Savings.Local.AnnualSavings, 1e-9)
	})
}

func TestEditSelection(t *testing.T) {
	c := New(nil, nil, nil)
	current := []types.ApplianceRecord{
		{Title: "Microwave", Wattage: 1000, Hours: 0.5, Quantity: 1},
	}

	t.Run("add from catalog", func(t *testing.T) {
		res, err := c.EditSelection(SelectionEdit{Selection: current, Action: SelectionAdd, Title: "Microwave"})
		require.NoError(t, err)
		require.Len(t, res.Selection, 1)
		assert.Equal(t, 2, res.Selection[0].Quantity)
		assert.InDelta(t, 1, res.Selection[0].DailyKWh, 1e-9)
		assert.Equal(t, 2000.0, res.Totals.TotalWatt)

		_, err = c.EditSelection(SelectionEdit{Action: SelectionAdd, Title: "Flux Capacitor"})
		assert.ErrorIs(t, err, ErrUnknownAppliance)
	})

	t.Run("update", func(t *testing.T) {
		res, err := c.EditSelection(SelectionEdit{Selection: current, Action: SelectionUpdate, Title: "Microwave", Quantity: 2, Wattage: 800, Hours: 1})
		require.NoError(t, err)
		assert.Equal(t, types.ApplianceRecord{Title: "Microwave", Wattage: 800, Hours: 1, Quantity: 2}, res.Selection[0].ApplianceRecord)
		assert.InDelta(t, 1.6, res.Totals.TotalKWh, 1e-9)

		_, err = c.EditSelection(SelectionEdit{Selection: current, Action: SelectionUpdate, Title: "Kettle", Quantity: 1})
		assert.ErrorIs(t, err, appliance.ErrNotSelected)
	})

	t.Run("remove and clear", func(t *testing.T) {
		res, err := c.EditSelection(SelectionEdit{Selection: current, Action: SelectionRemove, Title: "Microwave"})
		require.NoError(t, err)
		assert.Empty(t, res.Selection)
		assert.Equal(t, types.Totals{}, res.Totals)

		_, err = c.EditSelection(SelectionEdit{Selection: current, Action: SelectionRemove, Title: "Kettle"})
		assert.ErrorIs(t, err, appliance.ErrNotSelected)

		res, err = c.EditSelection(SelectionEdit{Selection: current, Action: SelectionClear})
		require.NoError(t, err)
		assert.Empty(t, res.Selection)
		assert.Len(t, current, 1)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := c.EditSelection(SelectionEdit{Action: "shuffle"})
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}
