package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/raterudder/solarcalc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDatabase runs the behavior every Database must have. rawSet stores a
// blob without validation so malformed data can be checked.
func testDatabase(t *testing.T, db Database, rawSet func(key, blob string)) {
	ctx := context.Background()
	prefix := fmt.Sprintf("test-%d-", time.Now().UnixNano())

	cfg := &types.SavedConfiguration{
		Appliances: []types.ApplianceEntry{
			{Title: "Fridge/Freezer", Quantity: types.Int(1), Wattage: types.Int(150), Hours: types.Int(24)},
			{Title: "TV (LED)", Quantity: types.Text("2"), Wattage: types.Text("80"), Hours: types.Text("6.5")},
		},
		Settings: &types.ConfigSettings{
			SimultaneousUsage: types.Int(60),
			ReserveDays:       types.Float(1.5),
			SunHours:          types.Text("4"),
		},
	}

	t.Run("RoundTrip", func(t *testing.T) {
		key := prefix + "roundtrip"
		require.NoError(t, db.SetConfiguration(ctx, key, cfg))

		got, err := db.GetConfiguration(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + "overwrite"
		require.NoError(t, db.SetConfiguration(ctx, key, cfg))

		updated := &types.SavedConfiguration{
			Appliances: []types.ApplianceEntry{},
			Settings:   &types.ConfigSettings{},
		}
		require.NoError(t, db.SetConfiguration(ctx, key, updated))

		got, err := db.GetConfiguration(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("Missing", func(t *testing.T) {
		got, err := db.GetConfiguration(ctx, prefix+"missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalid", func(t *testing.T) {
		key := prefix + "invalid"
		err := db.SetConfiguration(ctx, key, &types.SavedConfiguration{Settings: &types.ConfigSettings{}})
		assert.ErrorIs(t, err, types.ErrMissingAppliances)

		got, err := db.GetConfiguration(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Malformed", func(t *testing.T) {
		key := prefix + "malformed"
		rawSet(key, `{"appliances": {}, "settings": {}}`)

		got, err := db.GetConfiguration(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := db.GetConfiguration(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyKey)
		assert.ErrorIs(t, db.SetConfiguration(ctx, "", cfg), ErrEmptyKey)
	})

	t.Run("ListConfigurationKeys", func(t *testing.T) {
		keys, err := db.ListConfigurationKeys(ctx)
		require.NoError(t, err)
		assert.NotNil(t, keys)
		assert.Contains(t, keys, prefix+"roundtrip")
		assert.Contains(t, keys, prefix+"overwrite")
		assert.NotContains(t, keys, prefix+"missing")
		assert.IsNonDecreasing(t, keys)
	})
}
