// Package cli implements the execrole command-line interface using Cobra.
// It provides commands for ensuring the execute-api role, previewing its
// policies and running deploy lifecycle hooks.
package cli

import (
	"path/filepath"

	"github.com/majorcontext/execrole/internal/config"
	"github.com/majorcontext/execrole/internal/log"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dryRun     bool
	jsonOut    bool
	configPath string

	stageFlag  string
	regionFlag string
	roleFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "execrole",
	Short: "Provision the IAM role API Gateway assumes to invoke a REST API",
	Long: `execrole makes sure the execute-api role for a deployed REST API exists.

When the role is missing it is created with a trust policy for the API
Gateway service, the deploying account and any allowed accounts, and an
inline policy granting execute-api:Invoke on the REST API. An existing role
is left untouched.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		globalCfg, _ := config.LoadGlobal()
		debugDir := filepath.Join(config.GlobalConfigDir(), "debug")

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      debugDir,
			RetentionDays: globalCfg.Debug.RetentionDays,
			Stderr:        cmd.ErrOrStderr(),
		}); err != nil {
			// Non-fatal: the default logger stays in place.
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "resolve everything but do not create the role")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to "+config.FileName+" (default: ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&stageFlag, "stage", "", "deployment stage (env: "+config.EnvStage+")")
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "region of the REST API (env: "+config.EnvRegion+")")
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "", "execute-api role name (env: "+config.EnvRole+")")
}
