package cli

import (
	"context"
	"fmt"

	"github.com/majorcontext/execrole/internal/config"
	"github.com/majorcontext/execrole/internal/log"
	"github.com/majorcontext/execrole/internal/provider"
	"github.com/majorcontext/execrole/internal/provision"
)

// loadConfig reads the project config and layers environment variables and
// flags on top, in that order.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if stageFlag != "" {
		cfg.Stage = stageFlag
	}
	if regionFlag != "" {
		cfg.Region = regionFlag
	}
	if roleFlag != "" {
		cfg.ExecuteAPIRole = roleFlag
	}
}

// connect looks up the configured provider and builds its clients.
func connect(ctx context.Context, cfg *config.Config) (*provider.Clients, error) {
	p, err := provider.Lookup(cfg.Provider)
	if err != nil {
		return nil, err
	}
	log.Debug("connecting provider", "provider", p.Name(), "region", cfg.Region)
	return p.Connect(ctx, provider.Settings{
		Region:     cfg.Region,
		AssumeRole: cfg.AssumeRole,
		Endpoint:   cfg.Endpoint,
	})
}

// provisionerOptions maps the config onto provisioner options.
func provisionerOptions(cfg *config.Config, allowed []string) provision.Options {
	return provision.Options{
		Region:          cfg.Region,
		APIName:         cfg.RestAPIName(),
		AllowedAccounts: allowed,
		RolePath:        cfg.RolePath,
		Description:     cfg.Description,
		Tags:            cfg.Tags,
		DryRun:          dryRun,
	}
}

// ensureRole runs the full workflow for cfg.
func ensureRole(ctx context.Context, cfg *config.Config) (*provision.Result, error) {
	clients, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	allowed, err := provision.AllowedAccounts(ctx, clients.Secrets, cfg.AllowedAccounts, cfg.AllowedAccountsSecret)
	if err != nil {
		return nil, fmt.Errorf("loading allowed accounts: %w", err)
	}

	p := provision.New(provisionerOptions(cfg, allowed), clients.Identity, clients.Gateway)
	return p.EnsureRole(ctx, cfg.RoleName())
}
