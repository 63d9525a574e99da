package cli

import (
	"context"

	"github.com/majorcontext/execrole/internal/hook"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook <event>",
	Short: "Run the handlers for a deploy lifecycle event",
	Long: `Run the handlers registered for a deploy lifecycle event.

Supported events:
  after:deploy                          ensure the execute-api role
  after:aws:deploy:deploy:updateStack   alias of after:deploy

Other events are accepted and do nothing, so the command can be wired to
every lifecycle step of a deploy tool.

Examples:
  execrole hook after:deploy`,
	Args: cobra.ExactArgs(1),
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

// newHookRegistry returns the handlers execrole provides.
func newHookRegistry() *hook.Registry {
	r := hook.NewRegistry()
	r.On(hook.AfterDeploy, "ensure-execute-api-role", func(ctx context.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = ensureRole(ctx, cfg)
		return err
	})
	return r
}

func runHook(cmd *cobra.Command, args []string) error {
	return newHookRegistry().Fire(cmd.Context(), hook.Event(args[0]))
}
