package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for network resolution
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrUnknownNetwork is returned when a network name is not in the registry
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrMissingCredential is returned when a network needs a signer and none resolved
	ErrMissingCredential = errors.New("missing credential")

	// ErrChainIDMismatch is returned when an explorer entry disagrees with the registry
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrMissingVerificationKey is returned when verification has no API key
	ErrMissingVerificationKey = errors.New("missing verification key")

	// ErrDuplicateChainID is returned when two table entries claim the same chain id
	ErrDuplicateChainID = errors.New("duplicate chain ID")

	// ErrDuplicateNetwork is returned when a name appears twice in a static table
	ErrDuplicateNetwork = errors.New("duplicate network")
)

type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network '%s'", e.Name)
	}
	return fmt.Sprintf("unknown network '%s' (did you mean: %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkError) Unwrap() error { return ErrUnknownNetwork }

type UnknownChainIDError struct {
	ChainID uint64
}

func (e UnknownChainIDError) Error() string {
	return fmt.Sprintf("no network is registered for chain ID %d", e.ChainID)
}

func (e UnknownChainIDError) Unwrap() error { return ErrUnknownNetwork }

type MissingCredentialError struct {
	Network string
	Ref     string
	Reason  string
}

func (e MissingCredentialError) Error() string {
	msg := fmt.Sprintf("credential %s is not usable", e.Ref)
	if e.Network != "" {
		msg = fmt.Sprintf("network '%s' requires a signer but credential %s is not usable", e.Network, e.Ref)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e MissingCredentialError) Unwrap() error { return ErrMissingCredential }

type ChainIDMismatchError struct {
	Network  string
	Chain    string
	Expected uint64 // registry
	Actual   uint64 // explorer or endpoint
	Source   string
}

func (e ChainIDMismatchError) Error() string {
	source := e.Source
	if source == "" {
		source = "custom chain " + e.Chain
	}
	return fmt.Sprintf("network '%s': registry chain ID %d does not match %s chain ID %d",
		e.Network, e.Expected, source, e.Actual)
}

func (e ChainIDMismatchError) Unwrap() error { return ErrChainIDMismatch }

type MissingVerificationKeyError struct {
	Network   string
	APIKeyRef string
}

func (e MissingVerificationKeyError) Error() string {
	if e.APIKeyRef == "" {
		return fmt.Sprintf("verification unavailable for '%s': no explorer configured", e.Network)
	}
	return fmt.Sprintf("verification unavailable for '%s': %s is not set", e.Network, e.APIKeyRef)
}

func (e MissingVerificationKeyError) Unwrap() error { return ErrMissingVerificationKey }

type DuplicateChainIDError struct {
	ChainID  uint64
	Networks []string
}

func (e DuplicateChainIDError) Error() string {
	return fmt.Sprintf("chain ID %d is claimed by multiple networks: %s", e.ChainID, strings.Join(e.Networks, ", "))
}

func (e DuplicateChainIDError) Unwrap() error { return ErrDuplicateChainID }
