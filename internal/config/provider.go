package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

const (
	// EnvPrefix prefixes every environment variable that configures the tool itself
	EnvPrefix = "TREBNET"

	// DataDirName is the per-project directory holding config.local.json
	DataDirName = ".trebnet"
)

// projectMarkers identify a project root, checked in order
var projectMarkers = []string{"foundry.toml", DataDirName, ".env"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:       projectRoot,
		DataDir:           filepath.Join(projectRoot, DataDirName),
		VarsFile:          v.GetString("vars_file"),
		Network:           v.GetString("network"),
		Debug:             v.GetBool("debug"),
		NonInteractive:    v.GetBool("non_interactive"),
		JSON:              v.GetBool("json"),
		YAML:              v.GetBool("yaml"),
		Timeout:           v.GetDuration("timeout"),
		StrictCredentials: v.GetBool("strict_credentials"),
		RPCConcurrency:    v.GetInt("rpc_concurrency"),
		RPCRateLimit:      v.GetFloat64("rpc_rate_limit"),
		RPCTimeout:        v.GetDuration("rpc_timeout"),
		WatchDebounce:     v.GetDuration("watch_debounce"),
	}

	if cfg.JSON && cfg.YAML {
		return nil, fmt.Errorf("--json and --yaml are mutually exclusive")
	}
	if cfg.RPCConcurrency < 1 {
		return nil, fmt.Errorf("rpc_concurrency must be at least 1, got %d", cfg.RPCConcurrency)
	}
	if cfg.RPCRateLimit < 0 {
		return nil, fmt.Errorf("rpc_rate_limit must not be negative, got %g", cfg.RPCRateLimit)
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to the first directory holding
// foundry.toml, a .trebnet directory or a .env file. Without one the current directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for _, marker := range projectMarkers {
		dir := cwd
		for {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return cwd, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// config.local.json uses the same keys as the flags
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("strict_credentials", false)
	v.SetDefault("rpc_concurrency", 8)
	v.SetDefault("rpc_rate_limit", 0)
	v.SetDefault("rpc_timeout", "10s")
	v.SetDefault("watch_debounce", "250ms")

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// flagKey maps a flag name to its config key
func flagKey(name string) string {
	if name == "strict" {
		return "strict_credentials"
	}
	return strings.ReplaceAll(name, "-", "_")
}
