package cli

import (
	"fmt"
	"io"

	"github.com/majorcontext/execrole/internal/policy"
	"github.com/spf13/cobra"
)

var (
	previewAccount   string
	previewRestAPIID string
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the trust and invoke policies without calling the cloud",
	Long: `Print the documents ensure would attach to a new role.

Only inline allowedAccounts from execrole.yaml are included; an
allowedAccountsSecret is not read.

Examples:
  execrole policy --account 123456789012 --rest-api-id abc123`,
	Args: cobra.NoArgs,
	RunE: runPolicy,
}

func init() {
	policyCmd.Flags().StringVar(&previewAccount, "account", "", "deploying account id (required)")
	policyCmd.Flags().StringVar(&previewRestAPIID, "rest-api-id", "", "REST API id (required)")
	_ = policyCmd.MarkFlagRequired("account")
	_ = policyCmd.MarkFlagRequired("rest-api-id")
	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return writeDocuments(cmd.OutOrStdout(), cfg.RoleName(),
		policy.TrustPolicy(previewAccount, cfg.AllowedAccounts),
		policy.InvokePolicy(cfg.Region, previewAccount, previewRestAPIID))
}

// writeDocuments prints the trust and inline policy of role for review.
func writeDocuments(w io.Writer, role string, trust, invoke *policy.Document) error {
	t, err := trust.Indented()
	if err != nil {
		return err
	}
	i, err := invoke.Indented()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# %s trust policy\n%s\n\n", role, t)
	fmt.Fprintf(w, "# %s inline policy\n%s\n", role, i)
	return nil
}
