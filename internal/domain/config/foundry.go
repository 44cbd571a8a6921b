package config

// FoundryConfig represents the network sections of foundry.toml
type FoundryConfig struct {
	Profile      map[string]any             `toml:"profile,omitempty"`
	RpcEndpoints map[string]string          `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanConfig struct {
	Key   string `toml:"key,omitempty"`   // API key for verification
	URL   string `toml:"url,omitempty"`   // API URL (for custom explorers)
	Chain uint64 `toml:"chain,omitempty"` // Chain ID (for custom explorers)
}
