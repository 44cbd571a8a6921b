package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store   LocalConfigRepository
	catalog *Catalog
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigRepository, catalog *Catalog) *SetConfig {
	return &SetConfig{
		store:   store,
		catalog: catalog,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	// Load existing config or create new one
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	value := strings.TrimSpace(params.Value)
	switch key {
	case config.ConfigKeyNetwork:
		network, err := lookup(uc.catalog.Snapshot(), value)
		if err != nil {
			return nil, err
		}
		value = network.Name
		local.Network = value
	case config.ConfigKeyVarsFile:
		local.VarsFile = value
	case config.ConfigKeyStrict:
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not a boolean", key, params.Value)
		}
		local.Strict = strict
		value = strconv.FormatBool(strict)
	}

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}

// parseConfigKey validates and normalizes a user supplied key
func parseConfigKey(raw string) (config.ConfigKey, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if !config.IsValidConfigKey(key) {
		validKeys := make([]string, 0, len(config.ValidConfigKeys()))
		for _, k := range config.ValidConfigKeys() {
			validKeys = append(validKeys, string(k))
		}
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(validKeys, ", "))
	}
	return config.NormalizeConfigKey(key), nil
}
