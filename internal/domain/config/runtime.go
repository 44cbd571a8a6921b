package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string
	VarsFile    string // Optional TOML file of operator values

	// Context settings
	Network string // Default network when none is given on the command line

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	YAML           bool // Output in YAML format
	Timeout        time.Duration

	// Credential policy
	StrictCredentials bool // Refuse the well-known default deployer key on non-local networks

	// RPC checks
	RPCConcurrency int
	RPCRateLimit   float64 // probes per second, 0 disables limiting
	RPCTimeout     time.Duration

	// Watch settings
	WatchDebounce time.Duration
}
