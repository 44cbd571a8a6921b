package config

// LocalConfig represents the local trebnet configuration
type LocalConfig struct {
	Network  string `json:"network,omitempty" yaml:"network,omitempty"`
	VarsFile string `json:"vars_file,omitempty" yaml:"vars_file,omitempty"`
	Strict   bool   `json:"strict_credentials,omitempty" yaml:"strict_credentials,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork  ConfigKey = "network"
	ConfigKeyVarsFile ConfigKey = "vars_file"
	ConfigKeyStrict   ConfigKey = "strict_credentials"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyVarsFile,
		ConfigKeyStrict,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	normalized := NormalizeConfigKey(key)
	for _, validKey := range ValidConfigKeys() {
		if validKey == normalized {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "vars-file" -> "vars_file", "strict" -> "strict_credentials")
func NormalizeConfigKey(key string) ConfigKey {
	switch key {
	case "vars-file", "vars":
		return ConfigKeyVarsFile
	case "strict", "strict-credentials":
		return ConfigKeyStrict
	}
	return ConfigKey(key)
}
