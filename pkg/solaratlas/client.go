// Package solaratlas is a client for the Global Solar Atlas data API, which
// provides long term irradiation averages and simulated PV system output.
package solaratlas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/solarcalc/pkg/common"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/solar"
	"github.com/raterudder/solarcalc/pkg/types"
)

// DefaultURL is the base URL of the public API.
const DefaultURL = "https://api.globalsolaratlas.info/data"

// ErrInvalidResponse is returned by FetchPVCalc when the response is missing
// the annual or monthly data.
var ErrInvalidResponse = errors.New("Invalid response data")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
}

// Client talks to the solar atlas API.
type Client struct {
	baseURL string
	client  *http.Client
}

// Configured registers the solar atlas flags and returns a client that is
// usable once lflag.Configure has run.
func Configured() *Client {
	c := &Client{}
	baseURL := lflag.String("solaratlas-url", DefaultURL, "Base URL of the Global Solar Atlas data API")
	timeout := lflag.Duration("solaratlas-timeout", 30*time.Second, "Timeout for requests to the solar atlas API")

	lflag.Do(func() {
		c.baseURL = *baseURL
		c.client = common.HTTPClient(*timeout)
		if err := c.Validate(); err != nil {
			panic(fmt.Sprintf("solaratlas validation failed: %v", err))
		}
	})
	return c
}

// New returns a client for baseURL using client for requests.
func New(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// Validate ensures the configuration is valid.
func (c *Client) Validate() error {
	if c.baseURL == "" {
		return fmt.Errorf("solaratlas-url is required")
	}
	if _, err := url.Parse(c.baseURL); err != nil {
		return fmt.Errorf("failed to parse solaratlas url (%s): %w", c.baseURL, err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// endpoint returns the URL of path for a location. The comma in loc is left
// unescaped.
func (c *Client) endpoint(path string, lat, lng float64) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid api url: %w", err)
	}
	u = u.JoinPath(path)
	u.RawQuery = "loc=" + formatCoord(lat) + "," + formatCoord(lng)
	return u.String(), nil
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// present reports whether an optional provider value is usable. Zero counts
// as missing.
func present(v *float64) bool {
	return v != nil && *v != 0 && !math.IsNaN(*v)
}

type ltaResponse struct {
	Annual *struct {
		Data *struct {
			OPTA     *float64 `json:"OPTA"`
			PVOUTCSI *float64 `json:"PVOUT_CSI"`
			GTI      *float64 `json:"GTI"`
		} `json:"data"`
	} `json:"annual"`
}

// FetchOpta returns the optimal tilt and daily clear-sky output at a location.
// The yearly PVOUT_CSI is spread over 365 days; without it the yearly GTI is
// used with a flat panel efficiency. It never fails: any error is logged and
// the defaults are returned.
func (c *Client) FetchOpta(ctx context.Context, lat, lng float64) types.OptaResult {
	res := solar.DefaultOptaResult()

	u, err := c.endpoint("lta", lat, lng)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to build lta url", slog.Any("error", err))
		return res
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to create lta request", slog.Any("error", err))
		return res
	}
	log.Ctx(ctx).DebugContext(ctx, "fetching lta from solar atlas", slog.String("url", u))

	var data ltaResponse
	if err := c.do(req, &data); err != nil {
		log.Ctx(ctx).WarnContext(
			ctx,
			"failed to fetch lta, using defaults",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Any("error", err),
		)
		return res
	}
	if data.Annual == nil || data.Annual.Data == nil {
		return res
	}

	annual := data.Annual.Data
	if present(annual.OPTA) {
		res.Opta = *annual.OPTA
	}
	if present(annual.PVOUTCSI) {
		res.PvoutCsi = *annual.PVOUTCSI / 365
	} else if present(annual.GTI) {
		res.PvoutCsi = (*annual.GTI / 365) * solar.GTIEfficiency
	}
	return res
}

type pvcalcRequest struct {
	Type        string `json:"type"`
	Orientation struct {
		Azimuth float64 `json:"azimuth"`
		Tilt    float64 `json:"tilt"`
	} `json:"orientation"`
	SystemSize struct {
		Type  string  `json:"type"`
		Value float64 `json:"value"`
	} `json:"systemSize"`
	HourlyOutputs bool `json:"hourlyOutputs"`
}

type pvcalcResponse struct {
	Annual *struct {
		Data *struct {
			PVOUTTotal float64 `json:"PVOUT_total"`
			GTI        float64 `json:"GTI"`
		} `json:"data"`
	} `json:"annual"`
	Monthly *struct {
		Data *struct {
			PVOUTTotal []float64 `json:"PVOUT_total"`
		} `json:"data"`
	} `json:"monthly"`
	MonthlyHourly *struct {
		Data *types.MonthlyHourlyData `json:"data"`
	} `json:"monthly-hourly"`
}

// FetchPVCalc simulates the system described by params. Unlike FetchOpta its
// errors are returned so they can be shown to the user.
func (c *Client) FetchPVCalc(ctx context.Context, params types.PVCalcParams) (types.PVCalcResult, error) {
	u, err := c.endpoint("pvcalc", params.Lat, params.Lng)
	if err != nil {
		return types.PVCalcResult{}, err
	}

	var payload pvcalcRequest
	payload.Type = params.SystemType
	payload.Orientation.Azimuth = params.Azimuth
	payload.Orientation.Tilt = params.Tilt
	payload.SystemSize.Type = "capacity"
	payload.SystemSize.Value = params.Size
	payload.HourlyOutputs = true

	body, err := json.Marshal(payload)
	if err != nil {
		return types.PVCalcResult{}, fmt.Errorf("failed to encode pvcalc request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return types.PVCalcResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	log.Ctx(ctx).DebugContext(
		ctx,
		"fetching pvcalc from solar atlas",
		slog.String("url", u),
		slog.Float64("size", params.Size),
		slog.Float64("tilt", params.Tilt),
		slog.Float64("azimuth", params.Azimuth),
	)

	var data pvcalcResponse
	if err := c.do(req, &data); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to fetch pvcalc", slog.Any("error", err))
		return types.PVCalcResult{}, err
	}
	if data.Annual == nil || data.Annual.Data == nil || data.Monthly == nil || data.Monthly.Data == nil {
		return types.PVCalcResult{}, ErrInvalidResponse
	}

	res := types.PVCalcResult{
		AnnualOutput:  data.Annual.Data.PVOUTTotal,
		MonthlyOutput: data.Monthly.Data.PVOUTTotal,
		GTI:           data.Annual.Data.GTI,
	}
	if data.MonthlyHourly != nil {
		res.MonthlyHourlyData = data.MonthlyHourly.Data
	}
	return res, nil
}
