package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfig holds user-wide settings from ~/.execrole/config.yaml.
type GlobalConfig struct {
	Debug DebugConfig `yaml:"debug"`
}

// DebugConfig controls the JSONL debug log.
type DebugConfig struct {
	// RetentionDays is how long daily debug files are kept.
	RetentionDays int `yaml:"retention_days"`
}

// DefaultGlobalConfig returns the default global configuration.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Debug: DebugConfig{
			RetentionDays: 14,
		},
	}
}

// LoadGlobal reads ~/.execrole/config.yaml and applies environment overrides.
func LoadGlobal() (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	if data, err := os.ReadFile(filepath.Join(GlobalConfigDir(), "config.yaml")); err == nil {
		_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
	}

	if s := os.Getenv("EXECROLE_DEBUG_RETENTION_DAYS"); s != "" {
		if days, err := strconv.Atoi(s); err == nil {
			cfg.Debug.RetentionDays = days
		}
	}

	return cfg, nil
}

// GlobalConfigDir returns the path to ~/.execrole.
func GlobalConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".execrole")
	}
	return filepath.Join(homeDir, ".execrole")
}
