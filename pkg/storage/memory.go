package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/raterudder/solarcalc/pkg/types"
)

// Memory keeps configurations in process memory. It is lost on restart.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]string
}

var _ Database = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

// GetConfiguration implements Database.
func (m *Memory) GetConfiguration(ctx context.Context, key string) (*types.SavedConfiguration, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	m.mu.RLock()
	blob, ok := m.blobs[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeConfiguration(ctx, key, blob), nil
}

// SetConfiguration implements Database.
func (m *Memory) SetConfiguration(ctx context.Context, key string, cfg *types.SavedConfiguration) error {
	if key == "" {
		return ErrEmptyKey
	}
	blob, err := types.SaveConfiguration(cfg)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blobs[key] = blob
	m.mu.Unlock()
	return nil
}

// ListConfigurationKeys implements Database.
func (m *Memory) ListConfigurationKeys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)
	return keys, nil
}

// Close implements Database.
func (m *Memory) Close() error {
	return nil
}
