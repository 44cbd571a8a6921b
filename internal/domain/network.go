package domain

// Network is one deployable target in the registry.
// Networks are built once from the static table and never mutated afterwards.
type Network struct {
	Name    string `json:"name" yaml:"name"`
	ChainID uint64 `json:"chainId" yaml:"chainId"` // 0 when the endpoint decides (dev forks)
	RPCURL  string `json:"rpcUrl" yaml:"rpcUrl"`

	// RPCKey is the value-store key the RPC URL was resolved from
	RPCKey string `json:"rpcKey,omitempty" yaml:"rpcKey,omitempty"`

	// DefaultRPCURL is the built-in public endpoint. Empty for prefix-only URLs.
	DefaultRPCURL string `json:"-" yaml:"-"`

	// CredentialRef names the shared signing credential. Empty for local-only networks.
	CredentialRef string `json:"credentialRef,omitempty" yaml:"credentialRef,omitempty"`

	// Unconfigured marks a prefix-only URL whose id value was never supplied
	Unconfigured bool `json:"unconfigured,omitempty" yaml:"unconfigured,omitempty"`

	Local bool        `json:"local,omitempty" yaml:"local,omitempty"`
	Fork  *ForkConfig `json:"fork,omitempty" yaml:"fork,omitempty"`
}

// NeedsSigner reports whether deploying to the network requires a credential
func (n *Network) NeedsSigner() bool {
	return !n.Local && n.CredentialRef != ""
}

// Pinned reports whether the network has a canonical chain id in the table
func (n *Network) Pinned() bool {
	return n.ChainID != 0
}

// ForkConfig holds the in-memory network's fork settings
type ForkConfig struct {
	URL            string `json:"url" yaml:"url"`
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	Hardfork       string `json:"hardfork,omitempty" yaml:"hardfork,omitempty"`
	InitialBaseFee uint64 `json:"initialBaseFeePerGas" yaml:"initialBaseFeePerGas"`
}

// ExplorerClass distinguishes chains the verifier already knows from registered ones
type ExplorerClass string

const (
	ExplorerClassNative ExplorerClass = "native"
	ExplorerClassCustom ExplorerClass = "custom"
)

// CustomChain registers a chain the verifier does not know natively
type CustomChain struct {
	ChainID    uint64 `json:"chainId" yaml:"chainId"`
	APIURL     string `json:"apiURL" yaml:"apiURL"`
	BrowserURL string `json:"browserURL" yaml:"browserURL"`
}

// Explorer is the verification route for one network
type Explorer struct {
	Network string   `json:"network" yaml:"network"`
	Chain   string   `json:"chain" yaml:"chain"` // verifier's identifier for the chain
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	APIKeyRef string `json:"apiKeyRef" yaml:"apiKeyRef"`
	APIKey    Secret `json:"-" yaml:"-"`

	CustomChain *CustomChain `json:"customChain,omitempty" yaml:"customChain,omitempty"`
}

// Class returns whether the explorer is native or custom
func (e *Explorer) Class() ExplorerClass {
	if e.CustomChain != nil {
		return ExplorerClassCustom
	}
	return ExplorerClassNative
}

// SourcifyConfig configures the secondary, key-less verifier
type SourcifyConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	APIURL     string `json:"apiUrl" yaml:"apiUrl"`
	BrowserURL string `json:"browserUrl" yaml:"browserUrl"`
}
