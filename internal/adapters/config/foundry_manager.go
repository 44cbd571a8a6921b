package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// FoundryFile is the name of the foundry project file
const FoundryFile = "foundry.toml"

// foundryTOML is the part of foundry.toml this package reads.
// Etherscan entries are decoded loosely because foundry accepts a chain name or id.
type foundryTOML struct {
	Profile      map[string]any            `toml:"profile"`
	RpcEndpoints map[string]string         `toml:"rpc_endpoints"`
	Etherscan    map[string]map[string]any `toml:"etherscan"`
}

// FoundryManager reads and writes the network sections of foundry.toml
type FoundryManager struct {
	configPath string
}

// NewFoundryManager creates a new foundry configuration manager
func NewFoundryManager(cfg *domainconfig.RuntimeConfig) *FoundryManager {
	return &FoundryManager{
		configPath: filepath.Join(cfg.ProjectRoot, FoundryFile),
	}
}

// GetPath returns the path to foundry.toml
func (fm *FoundryManager) GetPath() string {
	return fm.configPath
}

// Load reads the foundry configuration. A missing file yields empty sections.
func (fm *FoundryManager) Load(ctx context.Context) (*domainconfig.FoundryConfig, error) {
	cfg := &domainconfig.FoundryConfig{
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]domainconfig.EtherscanConfig),
	}

	data, err := os.ReadFile(fm.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read foundry.toml: %w", err)
	}

	var raw foundryTOML
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg.Profile = raw.Profile
	for name, url := range raw.RpcEndpoints {
		cfg.RpcEndpoints[name] = url
	}
	for name, entry := range raw.Etherscan {
		cfg.Etherscan[name] = parseEtherscanEntry(entry)
	}

	return cfg, nil
}

// Save replaces [rpc_endpoints] and [etherscan] and leaves every other table untouched
func (fm *FoundryManager) Save(ctx context.Context, cfg *domainconfig.FoundryConfig) error {
	doc := make(map[string]any)

	data, err := os.ReadFile(fm.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to read foundry.toml: %w", err)
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse foundry.toml: %w", err)
		}
	}

	if cfg.Profile != nil {
		doc["profile"] = cfg.Profile
	}
	doc["rpc_endpoints"] = cfg.RpcEndpoints

	// entries that round-trip unchanged keep their original form, e.g. a chain given by name
	existing, _ := doc["etherscan"].(map[string]any)
	etherscan := make(map[string]any, len(cfg.Etherscan))
	for name, entry := range cfg.Etherscan {
		if prev, ok := existing[name].(map[string]any); ok && parseEtherscanEntry(prev) == entry {
			etherscan[name] = prev
			continue
		}
		etherscan[name] = etherscanEntry(entry)
	}
	if len(etherscan) > 0 {
		doc["etherscan"] = etherscan
	} else {
		delete(doc, "etherscan")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode foundry.toml: %w", err)
	}

	// write next to the target so the rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(fm.configPath), ".foundry-*.toml")
	if err != nil {
		return fmt.Errorf("failed to write foundry.toml: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write foundry.toml: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write foundry.toml: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write foundry.toml: %w", err)
	}

	return os.Rename(tmp.Name(), fm.configPath)
}

func parseEtherscanEntry(raw map[string]any) domainconfig.EtherscanConfig {
	var entry domainconfig.EtherscanConfig
	if key, ok := raw["key"].(string); ok {
		entry.Key = key
	}
	if url, ok := raw["url"].(string); ok {
		entry.URL = url
	}
	if chain, ok := raw["chain"].(int64); ok && chain > 0 {
		entry.Chain = uint64(chain)
	}
	return entry
}

func etherscanEntry(entry domainconfig.EtherscanConfig) map[string]any {
	out := map[string]any{"key": entry.Key}
	if entry.URL != "" {
		out["url"] = entry.URL
	}
	if entry.Chain != 0 {
		out["chain"] = int64(entry.Chain)
	}
	return out
}

var _ usecase.FoundryConfigStore = (*FoundryManager)(nil)
