package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/majorcontext/execrole/internal/policy"
	"github.com/majorcontext/execrole/internal/provision"
	"github.com/majorcontext/execrole/internal/ui"
	"github.com/spf13/cobra"
)

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create the execute-api role if it does not exist",
	Long: `Ensure the execute-api role exists.

The role name defaults to service-<stage>-ExecuteApiRole and the REST API
name to <stage>-<service>; both can be overridden in execrole.yaml.
An existing role is never modified.

Examples:
  execrole ensure
  execrole ensure --stage prod --region eu-west-1
  execrole ensure --dry-run --json`,
	Args: cobra.NoArgs,
	RunE: runEnsure,
}

func init() {
	rootCmd.AddCommand(ensureCmd)
}

func runEnsure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := ensureRole(cmd.Context(), cfg)
	if err != nil {
		if res != nil {
			return fmt.Errorf("ensuring role %s failed while %s: %w", res.RoleName, res.FailedAt, err)
		}
		return err
	}

	if jsonOut {
		return writeResultJSON(cmd.OutOrStdout(), res)
	}
	if res.DryRun && res.Trust != nil {
		return writeDocuments(cmd.OutOrStdout(), res.RoleName, res.Trust, res.Invoke)
	}
	if res.RoleARN != "" {
		ui.Infof("  arn: %s", res.RoleARN)
	}
	return nil
}

// resultJSON is the --json form of a provisioning result.
type resultJSON struct {
	Role      string           `json:"role"`
	ARN       string           `json:"arn,omitempty"`
	Created   bool             `json:"created"`
	DryRun    bool             `json:"dry_run,omitempty"`
	Stage     string           `json:"stage"`
	AccountID string           `json:"account_id,omitempty"`
	RestAPIID string           `json:"rest_api_id,omitempty"`
	Trust     *policy.Document `json:"trust_policy,omitempty"`
	Invoke    *policy.Document `json:"invoke_policy,omitempty"`
}

func writeResultJSON(w io.Writer, res *provision.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{
		Role:      res.RoleName,
		ARN:       res.RoleARN,
		Created:   res.Created,
		DryRun:    res.DryRun,
		Stage:     res.Stage.String(),
		AccountID: res.AccountID,
		RestAPIID: res.RestAPIID,
		Trust:     res.Trust,
		Invoke:    res.Invoke,
	})
}
