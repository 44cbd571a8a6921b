package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// fakeProbe answers chain id requests from a fixed table keyed by RPC URL
type fakeProbe struct {
	chainIDs map[string]uint64
	errs     map[string]error
	calls    atomic.Int32
}

func (p *fakeProbe) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	p.calls.Add(1)
	if err, ok := p.errs[rpcURL]; ok {
		return 0, err
	}
	if id, ok := p.chainIDs[rpcURL]; ok {
		return id, nil
	}
	return 0, errors.New("connection refused")
}

// recordingSink keeps every progress event
type recordingSink struct {
	usecase.NopProgress
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (s *recordingSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func checksByName(result *usecase.CheckNetworksResult) map[string]usecase.NetworkCheck {
	out := make(map[string]usecase.NetworkCheck, len(result.Checks))
	for _, check := range result.Checks {
		out[check.Network] = check
	}
	return out
}

func TestCheckNetworks_Probe(t *testing.T) {
	probe := &fakeProbe{
		chainIDs: map[string]uint64{
			"https://rpc.sepolia.org":          11155111,
			"https://holesky.rpc.thirdweb.com": 1,
			"http://127.0.0.1:8545":            31337,
		},
	}

	tests := []struct {
		name         string
		includeLocal bool
		wantFailed   int
		wantSkipped  map[string]string
		wantCalls    int32
	}{
		{
			name:       "local networks skipped",
			wantFailed: 1,
			wantSkipped: map[string]string{
				"localhost": "local network",
				"hardhat":   "in-process network",
			},
			wantCalls: 2,
		},
		{
			name:         "local networks included",
			includeLocal: true,
			wantFailed:   1,
			wantSkipped: map[string]string{
				"hardhat": "in-process network",
			},
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe.calls.Store(0)
			sink := &recordingSink{}
			uc := usecase.NewCheckNetworks(
				newCatalog(t, nil, false),
				probe,
				&domainconfig.RuntimeConfig{RPCConcurrency: 2},
				sink,
				discardLogger(),
			)

			result, err := uc.Run(context.Background(), usecase.CheckNetworksParams{
				Networks:     []string{"sepolia", "holesky", "localhost", "hardhat"},
				ProbeRPC:     true,
				IncludeLocal: tt.includeLocal,
			})
			require.NoError(t, err)
			assert.NoError(t, result.Integrity)
			assert.Equal(t, tt.wantFailed, result.Failed)
			assert.Equal(t, tt.wantCalls, probe.calls.Load())

			checks := checksByName(result)
			assert.True(t, checks["sepolia"].OK())
			assert.True(t, checks["sepolia"].Probed)
			assert.Equal(t, uint64(11155111), checks["sepolia"].ActualChainID)

			var mismatch domain.ChainIDMismatchError
			require.True(t, errors.As(checks["holesky"].Err, &mismatch))
			assert.Equal(t, uint64(17000), mismatch.Expected)
			assert.Equal(t, uint64(1), mismatch.Actual)
			assert.Equal(t, "RPC endpoint", mismatch.Source)

			for name, reason := range tt.wantSkipped {
				assert.Equal(t, reason, checks[name].Skipped, name)
				assert.False(t, checks[name].Probed, name)
			}
			if tt.includeLocal {
				// localhost has no pinned chain id so any answer passes
				assert.True(t, checks["localhost"].OK())
				assert.Equal(t, uint64(31337), checks["localhost"].ActualChainID)
			}

			require.NotEmpty(t, sink.events)
			last := sink.events[len(sink.events)-1]
			assert.Equal(t, last.Total, last.Current)
		})
	}
}

func TestCheckNetworks_ProbeErrors(t *testing.T) {
	probe := &fakeProbe{
		errs: map[string]error{"https://rpc.sepolia.org": errors.New("rpc probe https://rpc.sepolia.org: 429 too many requests")},
	}
	uc := usecase.NewCheckNetworks(newCatalog(t, nil, false), probe, &domainconfig.RuntimeConfig{}, usecase.NopProgress{}, discardLogger())

	result, err := uc.Run(context.Background(), usecase.CheckNetworksParams{
		Networks: []string{"sepolia", "optimismSepolia"},
		ProbeRPC: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, "optimismSepolia", result.Checks[1].Network)
	assert.Equal(t, 2, result.Failed)
	assert.ErrorContains(t, result.Checks[0].Err, "429")
}

func TestCheckNetworks_UnconfiguredDevnet(t *testing.T) {
	tests := []struct {
		name        string
		values      map[string]string
		wantSkipped string
		wantCalls   int32
	}{
		{
			name:        "skipped without a devnet id",
			wantSkipped: "not configured (TENDERLY_DEVNET_ID unset)",
		},
		{
			name:        "empty devnet id counts as unset",
			values:      map[string]string{"TENDERLY_DEVNET_ID": ""},
			wantSkipped: "not configured (TENDERLY_DEVNET_ID unset)",
		},
		{
			name:      "queried once the id is supplied",
			values:    map[string]string{"TENDERLY_DEVNET_ID": "dev-1"},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &fakeProbe{chainIDs: map[string]uint64{"https://rpc.vnet.tenderly.co/devnet/dev-1": 1}}
			uc := usecase.NewCheckNetworks(newCatalog(t, tt.values, false), probe, &domainconfig.RuntimeConfig{}, usecase.NopProgress{}, discardLogger())

			result, err := uc.Run(context.Background(), usecase.CheckNetworksParams{
				Networks: []string{"devnet"},
				ProbeRPC: true,
			})
			require.NoError(t, err)
			require.Len(t, result.Checks, 1)
			assert.Equal(t, tt.wantCalls, probe.calls.Load())

			check := result.Checks[0]
			assert.Equal(t, tt.wantSkipped, check.Skipped)
			assert.Equal(t, tt.wantSkipped == "", check.Probed)
			assert.True(t, check.OK())
			assert.Zero(t, result.Failed)
		})
	}
}

func TestCheckNetworks_WithoutProbe(t *testing.T) {
	probe := &fakeProbe{}
	uc := usecase.NewCheckNetworks(newCatalog(t, nil, false), probe, &domainconfig.RuntimeConfig{}, usecase.NopProgress{}, discardLogger())

	result, err := uc.Run(context.Background(), usecase.CheckNetworksParams{})
	require.NoError(t, err)
	assert.NoError(t, result.Integrity)
	assert.Zero(t, result.Failed)
	assert.Zero(t, probe.calls.Load())
	assert.Len(t, result.Checks, len(newCatalog(t, nil, false).Snapshot().Networks.List()))
	for _, check := range result.Checks {
		assert.False(t, check.Probed, check.Network)
	}
}

func TestCheckNetworks_UnknownNetwork(t *testing.T) {
	uc := usecase.NewCheckNetworks(newCatalog(t, nil, false), &fakeProbe{}, &domainconfig.RuntimeConfig{}, usecase.NopProgress{}, discardLogger())

	_, err := uc.Run(context.Background(), usecase.CheckNetworksParams{Networks: []string{"sepoliaa"}})
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
}

func TestCheckNetworks_CancelledContext(t *testing.T) {
	uc := usecase.NewCheckNetworks(
		newCatalog(t, nil, false),
		&fakeProbe{},
		&domainconfig.RuntimeConfig{RPCRateLimit: 1},
		usecase.NopProgress{},
		discardLogger(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, usecase.CheckNetworksParams{ProbeRPC: true})
	assert.ErrorIs(t, err, context.Canceled)
}
