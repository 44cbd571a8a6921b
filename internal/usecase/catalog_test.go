package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-networks/internal/adapters/snapshot"
	"github.com/trebuchet-org/treb-networks/internal/config"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// mutableLoader serves values that the test can change between reloads
type mutableLoader struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func (l *mutableLoader) set(values map[string]string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = values
	l.err = err
}

func (l *mutableLoader) load() (*config.ValueStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	return config.NewValueStore(config.Source{Name: "test", Values: l.values}), nil
}

func TestCatalog_Reload(t *testing.T) {
	loader := &mutableLoader{}
	builder := snapshot.NewBuilderWithLoader(loader.load, false, discardLogger())

	catalog, err := usecase.NewCatalog(builder, discardLogger())
	require.NoError(t, err)

	uc := usecase.NewResolveNetwork(catalog, &domainconfig.RuntimeConfig{}, discardLogger())
	ctx := context.Background()

	before, err := uc.ResolveForDeployment(ctx, "sepolia")
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.sepolia.org", before.RPCURL)

	first := catalog.Snapshot()

	loader.set(map[string]string{"ETH_SEPOLIA_TESTNET_URL": "https://rotated.example.org", "REPORT_GAS": "1"}, nil)
	_, err = catalog.Reload(ctx)
	require.NoError(t, err)

	after, err := uc.ResolveForDeployment(ctx, "sepolia")
	require.NoError(t, err)
	assert.Equal(t, "https://rotated.example.org", after.RPCURL)
	assert.True(t, catalog.Snapshot().Features.GasReporting)

	// the old snapshot is untouched
	network, err := first.Networks.Get("sepolia")
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.sepolia.org", network.RPCURL)
	assert.False(t, first.Features.GasReporting)
}

func TestCatalog_FailedReloadKeepsSnapshot(t *testing.T) {
	loader := &mutableLoader{values: map[string]string{"ETH_MAINNET_URL": "https://eth.example.org"}}
	builder := snapshot.NewBuilderWithLoader(loader.load, false, discardLogger())

	catalog, err := usecase.NewCatalog(builder, discardLogger())
	require.NoError(t, err)
	current := catalog.Snapshot()

	loader.set(nil, errors.New("unreadable .env"))
	_, err = catalog.Reload(context.Background())
	require.Error(t, err)
	assert.Same(t, current, catalog.Snapshot())
}

func TestNewCatalog_BuildFailure(t *testing.T) {
	builder := usecase.SnapshotBuilderFunc(func(ctx context.Context) (*usecase.Snapshot, error) {
		return nil, errors.New("integrity failure")
	})

	catalog, err := usecase.NewCatalog(builder, discardLogger())
	require.Error(t, err)
	assert.Nil(t, catalog)
}

func TestCatalog_ConcurrentReadsDuringReload(t *testing.T) {
	loader := &mutableLoader{}
	builder := snapshot.NewBuilderWithLoader(loader.load, false, discardLogger())

	catalog, err := usecase.NewCatalog(builder, discardLogger())
	require.NoError(t, err)
	uc := usecase.NewResolveNetwork(catalog, &domainconfig.RuntimeConfig{}, discardLogger())

	valid := map[string]bool{
		"https://rpc.sepolia.org":     true,
		"https://rotated.example.org": true,
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				target, err := uc.ResolveForDeployment(context.Background(), "sepolia")
				if assert.NoError(t, err) {
					assert.True(t, valid[target.RPCURL], target.RPCURL)
				}
			}
		}()
	}

	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			loader.set(map[string]string{"ETH_SEPOLIA_TESTNET_URL": "https://rotated.example.org"}, nil)
		} else {
			loader.set(nil, nil)
		}
		_, err := catalog.Reload(context.Background())
		require.NoError(t, err)
	}
	wg.Wait()
}
