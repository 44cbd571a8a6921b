package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// CheckNetworksParams contains parameters for checking networks
type CheckNetworksParams struct {
	Networks     []string // empty checks every network
	ProbeRPC     bool
	IncludeLocal bool // also probe local endpoints
}

// NetworkCheck is the outcome for one network
type NetworkCheck struct {
	Network       string        `json:"network" yaml:"network"`
	ChainID       uint64        `json:"chainId" yaml:"chainId"`
	RPCURL        string        `json:"rpcUrl" yaml:"rpcUrl"`
	Probed        bool          `json:"probed" yaml:"probed"`
	ActualChainID uint64        `json:"actualChainId,omitempty" yaml:"actualChainId,omitempty"`
	Latency       time.Duration `json:"latency,omitempty" yaml:"latency,omitempty"`
	Skipped       string        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Err           error         `json:"-" yaml:"-"`
}

// OK reports whether the network passed
func (c NetworkCheck) OK() bool {
	return c.Err == nil
}

// CheckNetworksResult contains the integrity report and probe outcomes
type CheckNetworksResult struct {
	Integrity error
	Checks    []NetworkCheck
	Failed    int
}

// CheckNetworks validates the tables and optionally asks every RPC endpoint for its chain id
type CheckNetworks struct {
	catalog  *Catalog
	probe    ChainIDProbe
	config   *config.RuntimeConfig
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckNetworks creates a new CheckNetworks use case
func NewCheckNetworks(
	catalog *Catalog,
	probe ChainIDProbe,
	cfg *config.RuntimeConfig,
	progress ProgressSink,
	log *slog.Logger,
) *CheckNetworks {
	return &CheckNetworks{
		catalog:  catalog,
		probe:    probe,
		config:   cfg,
		progress: progress,
		log:      log.With("component", "check"),
	}
}

// Run executes the use case
func (uc *CheckNetworks) Run(ctx context.Context, params CheckNetworksParams) (*CheckNetworksResult, error) {
	snap := uc.catalog.Snapshot()

	networks, err := uc.selectNetworks(snap, params.Networks)
	if err != nil {
		return nil, err
	}

	result := &CheckNetworksResult{
		Integrity: snap.Explorers.Validate(snap.Networks),
		Checks:    make([]NetworkCheck, len(networks)),
	}

	for i, network := range networks {
		result.Checks[i] = NetworkCheck{
			Network: network.Name,
			ChainID: network.ChainID,
			RPCURL:  network.RPCURL,
		}
	}

	if params.ProbeRPC {
		if err := uc.probeAll(ctx, networks, result.Checks, params.IncludeLocal); err != nil {
			return nil, err
		}
	}

	for _, check := range result.Checks {
		if !check.OK() {
			result.Failed++
		}
	}

	return result, nil
}

func (uc *CheckNetworks) selectNetworks(snap *Snapshot, names []string) ([]*domain.Network, error) {
	if len(names) == 0 {
		return snap.Networks.List(), nil
	}

	networks := make([]*domain.Network, 0, len(names))
	for _, name := range names {
		network, err := lookup(snap, name)
		if err != nil {
			return nil, err
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func (uc *CheckNetworks) probeAll(ctx context.Context, networks []*domain.Network, checks []NetworkCheck, includeLocal bool) error {
	limit := uc.config.RPCConcurrency
	if limit <= 0 {
		limit = 8
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if uc.config.RPCRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(uc.config.RPCRateLimit), 1)
	}

	var done atomic.Int32
	total := len(networks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, network := range networks {
		switch {
		case network.RPCURL == "":
			checks[i].Skipped = "in-process network"
			done.Add(1)
			continue
		case network.Local && !includeLocal:
			checks[i].Skipped = "local network"
			done.Add(1)
			continue
		case network.Unconfigured:
			checks[i].Skipped = fmt.Sprintf("not configured (%s unset)", network.RPCKey)
			done.Add(1)
			continue
		}

		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			checks[i] = uc.probeOne(gctx, network, checks[i])

			n := done.Add(1)
			uc.progress.OnProgress(gctx, ProgressEvent{
				Stage:   "probe",
				Current: int(n),
				Total:   total,
				Message: fmt.Sprintf("Probing RPC endpoints (%d/%d)", n, total),
				Spinner: int(n) < total,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("rpc probe interrupted: %w", err)
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "probe", Current: total, Total: total})

	return nil
}

func (uc *CheckNetworks) probeOne(ctx context.Context, network *domain.Network, check NetworkCheck) NetworkCheck {
	timeout := uc.config.RPCTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	actual, err := uc.probe.ChainID(pctx, network.RPCURL)
	check.Probed = true
	check.Latency = time.Since(start)

	if err != nil {
		check.Err = err
		uc.log.Debug("rpc probe failed", "network", network.Name, "error", err)
		return check
	}

	check.ActualChainID = actual
	if network.Pinned() && actual != network.ChainID {
		check.Err = domain.ChainIDMismatchError{
			Network:  network.Name,
			Expected: network.ChainID,
			Actual:   actual,
			Source:   "RPC endpoint",
		}
	}

	return check
}
