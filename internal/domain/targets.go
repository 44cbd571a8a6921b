package domain

import "github.com/ethereum/go-ethereum/common"

// Credential is a resolved signing key
type Credential struct {
	Ref        string         `json:"ref" yaml:"ref"`
	Address    common.Address `json:"address" yaml:"address"`
	PrivateKey Secret         `json:"-" yaml:"-"`

	// Unsafe marks the well-known, publicly derivable default key.
	// It must never hold real funds.
	Unsafe bool `json:"unsafe" yaml:"unsafe"`
}

// Signer is what a deployment consumer receives for a network that needs one
type Signer struct {
	Credential *Credential `json:"credential" yaml:"credential"`
}

// Address returns the signer address
func (s *Signer) Address() common.Address {
	if s == nil || s.Credential == nil {
		return common.Address{}
	}
	return s.Credential.Address
}

// Unsafe reports whether the signer uses the well-known default key
func (s *Signer) Unsafe() bool {
	return s != nil && s.Credential != nil && s.Credential.Unsafe
}

// DeploymentTarget is the fully resolved parameter set for deploying to a network
type DeploymentTarget struct {
	Network string  `json:"network" yaml:"network"`
	ChainID uint64  `json:"chainId" yaml:"chainId"`
	RPCURL  string  `json:"rpcUrl" yaml:"rpcUrl"`
	Local   bool    `json:"local" yaml:"local"`
	Signer  *Signer `json:"signer,omitempty" yaml:"signer,omitempty"`

	// RPCOverridden is set when the endpoint came from an operator value rather than the default
	RPCOverridden bool `json:"rpcOverridden" yaml:"rpcOverridden"`
}

// VerificationTarget is the fully resolved parameter set for verifying on a network.
// When Available is false, Skipped explains why; deployment may still proceed.
type VerificationTarget struct {
	Network     string         `json:"network" yaml:"network"`
	ChainID     uint64         `json:"chainId" yaml:"chainId"`
	Chain       string         `json:"chain,omitempty" yaml:"chain,omitempty"`
	APIKey      Secret         `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	CustomChain *CustomChain   `json:"customChain,omitempty" yaml:"customChain,omitempty"`
	Sourcify    SourcifyConfig `json:"sourcify" yaml:"sourcify"`
	Available   bool           `json:"available" yaml:"available"`
	Skipped     error          `json:"-" yaml:"-"`
}

// Features are optional toggles gated on operator-supplied values
type Features struct {
	GasReporting bool `json:"gasReporting" yaml:"gasReporting"`
}
