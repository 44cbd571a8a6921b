package blockchain

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// CheckerAdapter implements ChainIDProbe using ethclient
type CheckerAdapter struct{}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{}
}

// ChainID dials rpcURL and asks for eth_chainId.
// Errors never contain the full URL since operators embed API keys in it.
func (c *CheckerAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, newProbeError(rpcURL, "failed to connect to RPC", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, newProbeError(rpcURL, "failed to get chain ID", err)
	}

	return chainID.Uint64(), nil
}

// ProbeError is a failed probe with the endpoint masked
type ProbeError struct {
	Endpoint string
	msg      string
	err      error
}

func newProbeError(rpcURL, what string, err error) *ProbeError {
	masked := domain.MaskURL(rpcURL)
	detail := err.Error()
	if rpcURL != "" {
		detail = strings.ReplaceAll(detail, rpcURL, masked)
	}
	return &ProbeError{
		Endpoint: masked,
		msg:      what + ": " + detail,
		err:      err,
	}
}

func (e *ProbeError) Error() string {
	return e.msg
}

func (e *ProbeError) Unwrap() error {
	return e.err
}

var _ usecase.ChainIDProbe = (*CheckerAdapter)(nil)
