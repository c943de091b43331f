// Package calculator implements the standard, assistive and advanced
// calculator flows. Each flow takes a snapshot of the form, runs the pure
// calculators and returns plain results.
package calculator

import (
	"context"
	"time"

	"github.com/raterudder/solarcalc/pkg/appliance"
	"github.com/raterudder/solarcalc/pkg/country"
	"github.com/raterudder/solarcalc/pkg/types"
)

// SolarData provides irradiation lookups and system simulations for a
// location.
type SolarData interface {
	FetchOpta(ctx context.Context, lat, lng float64) types.OptaResult
	FetchPVCalc(ctx context.Context, params types.PVCalcParams) (types.PVCalcResult, error)
}

// Calculator runs the calculator flows.
type Calculator struct {
	catalog   *appliance.Catalog
	countries *country.Table
	solar     SolarData
	now       func() time.Time
}

// New returns a Calculator. A nil catalog or table uses the built-in one.
func New(catalog *appliance.Catalog, countries *country.Table, solar SolarData) *Calculator {
	if catalog == nil {
		catalog = appliance.DefaultCatalog()
	}
	if countries == nil {
		countries = country.Default()
	}
	return &Calculator{
		catalog:   catalog,
		countries: countries,
		solar:     solar,
		now:       time.Now,
	}
}

// Catalog returns the appliance catalog.
func (c *Calculator) Catalog() *appliance.Catalog {
	return c.catalog
}

// Countries returns the country table.
func (c *Calculator) Countries() *country.Table {
	return c.countries
}
