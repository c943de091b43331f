package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/types"
)

var ErrEmptyKey = errors.New("configuration key cannot be empty")

// Database persists saved calculator configurations. Configurations are
// stored wholesale as their serialized blob.
type Database interface {
	// GetConfiguration returns the configuration stored under key. A missing
	// key or a stored blob that is not a valid configuration returns nil
	// without an error.
	GetConfiguration(ctx context.Context, key string) (*types.SavedConfiguration, error)

	// SetConfiguration validates cfg and overwrites whatever is stored under
	// key.
	SetConfiguration(ctx context.Context, key string, cfg *types.SavedConfiguration) error

	// ListConfigurationKeys returns the stored keys in ascending order.
	ListConfigurationKeys(ctx context.Context) ([]string, error)

	// Lifecycle
	Close() error
}

// decodeConfiguration parses a stored blob, logging blobs that are not
// valid configurations.
func decodeConfiguration(ctx context.Context, key, blob string) *types.SavedConfiguration {
	cfg := types.LoadSavedConfiguration(blob)
	if cfg == nil {
		log.Ctx(ctx).WarnContext(ctx, "ignoring malformed stored configuration", slog.String("key", key))
	}
	return cfg
}
