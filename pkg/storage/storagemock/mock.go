package storagemock

import (
	"context"

	"github.com/raterudder/solarcalc/pkg/storage"
	"github.com/raterudder/solarcalc/pkg/types"
	"github.com/stretchr/testify/mock"
)

type MockDatabase struct {
	mock.Mock
}

var _ storage.Database = (*MockDatabase)(nil)

func (m *MockDatabase) GetConfiguration(ctx context.Context, key string) (*types.SavedConfiguration, error) {
	args := m.Called(ctx, key)
	// return empty if not specified, or checks args
	if len(args) > 0 {
		cfg, _ := args.Get(0).(*types.SavedConfiguration)
		return cfg, args.Error(1)
	}
	return nil, nil
}

func (m *MockDatabase) SetConfiguration(ctx context.Context, key string, cfg *types.SavedConfiguration) error {
	args := m.Called(ctx, key, cfg)
	return args.Error(0)
}

func (m *MockDatabase) ListConfigurationKeys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if len(args) > 0 {
		keys, _ := args.Get(0).([]string)
		return keys, args.Error(1)
	}
	return nil, nil
}

func (m *MockDatabase) Close() error {
	args := m.Called()
	return args.Error(0)
}
