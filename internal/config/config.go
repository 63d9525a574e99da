// Package config handles execrole.yaml project settings.
//
// Precedence, lowest first: built-in defaults, execrole.yaml, EXECROLE_*
// environment variables, command-line flags (applied by the CLI).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up in the working directory.
const FileName = "execrole.yaml"

// Defaults.
const (
	DefaultRegion   = "us-east-1"
	DefaultStage    = "dev"
	DefaultProvider = "aws"
	DefaultRolePath = "/"

	// RoleNameTemplate derives the role name from the stage when no
	// executeApiRole override is set.
	RoleNameTemplate = "service-%s-ExecuteApiRole"
)

// Environment overrides.
const (
	EnvStage   = "EXECROLE_STAGE"
	EnvRegion  = "EXECROLE_REGION"
	EnvRole    = "EXECROLE_ROLE"
	EnvAPIName = "EXECROLE_API_NAME"
)

// Config represents an execrole.yaml file.
type Config struct {
	// Service is the deployment unit name; with Stage it derives the
	// default REST API name.
	Service string `yaml:"service"`
	Stage   string `yaml:"stage,omitempty"`
	Region  string `yaml:"region,omitempty"`

	// APIName overrides the derived REST API name (<stage>-<service>).
	APIName string `yaml:"apiName,omitempty"`

	// ExecuteAPIRole overrides the derived role name.
	ExecuteAPIRole string `yaml:"executeApiRole,omitempty"`

	// AllowedAccounts are principal ARNs trusted to assume the role, in
	// addition to the deploying account.
	AllowedAccounts []string `yaml:"allowedAccounts,omitempty"`

	// AllowedAccountsSecret names a secret holding a JSON array of extra
	// principal ARNs, appended after AllowedAccounts.
	AllowedAccountsSecret string `yaml:"allowedAccountsSecret,omitempty"`

	// AssumeRole is a deploy role assumed before any provider call.
	AssumeRole string `yaml:"assumeRole,omitempty"`

	RolePath    string            `yaml:"rolePath,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Tags        map[string]string `yaml:"tags,omitempty"`

	// Provider selects the registered cloud provider.
	Provider string `yaml:"provider,omitempty"`

	// Endpoint points every provider service at one URL (e.g. LocalStack).
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		Stage:    DefaultStage,
		Region:   DefaultRegion,
		RolePath: DefaultRolePath,
		Provider: DefaultProvider,
	}
}

// Load reads execrole.yaml from dir. A missing file yields Default().
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads the config at path. A missing file yields Default().
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for keys present but empty in the file.
func (c *Config) fillDefaults() {
	if c.Stage == "" {
		c.Stage = DefaultStage
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.RolePath == "" {
		c.RolePath = DefaultRolePath
	}
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
}

// ApplyEnv overrides fields from EXECROLE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvStage); v != "" {
		c.Stage = v
	}
	if v := os.Getenv(EnvRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvRole); v != "" {
		c.ExecuteAPIRole = v
	}
	if v := os.Getenv(EnvAPIName); v != "" {
		c.APIName = v
	}
}

// RoleName returns the executeApiRole override, or the name derived from
// the stage via RoleNameTemplate.
func (c *Config) RoleName() string {
	if c.ExecuteAPIRole != "" {
		return c.ExecuteAPIRole
	}
	return fmt.Sprintf(RoleNameTemplate, c.Stage)
}

// RestAPIName returns the apiName override, or <stage>-<service>.
func (c *Config) RestAPIName() string {
	if c.APIName != "" {
		return c.APIName
	}
	if c.Service == "" {
		return ""
	}
	return c.Stage + "-" + c.Service
}

// Validate reports settings that would make provisioning impossible.
func (c *Config) Validate() error {
	var problems []string
	if c.Stage == "" {
		problems = append(problems, "stage is required")
	}
	if c.Region == "" {
		problems = append(problems, "region is required")
	}
	if c.RestAPIName() == "" {
		problems = append(problems, "service or apiName is required to locate the REST API")
	}
	for i, a := range c.AllowedAccounts {
		if strings.TrimSpace(a) == "" {
			problems = append(problems, fmt.Sprintf("allowedAccounts[%d] is empty", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
