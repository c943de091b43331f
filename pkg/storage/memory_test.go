package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/raterudder/solarcalc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	t.Run("EmptyKeys", func(t *testing.T) {
		keys, err := m.ListConfigurationKeys(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})

	testDatabase(t, m, func(key, blob string) {
		m.mu.Lock()
		m.blobs[key] = blob
		m.mu.Unlock()
	})

	t.Run("Concurrent", func(t *testing.T) {
		ctx := context.Background()
		cfg := &types.SavedConfiguration{
			Appliances: []types.ApplianceEntry{},
			Settings:   &types.ConfigSettings{},
		}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, m.SetConfiguration(ctx, types.DefaultConfigurationKey, cfg))
				_, err := m.GetConfiguration(ctx, types.DefaultConfigurationKey)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := m.GetConfiguration(ctx, types.DefaultConfigurationKey)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})
}
