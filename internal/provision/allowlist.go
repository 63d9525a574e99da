package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/majorcontext/execrole/internal/log"
	"github.com/majorcontext/execrole/internal/provider"
)

// AllowedAccounts returns inline followed by the principals stored in the
// secret secretID. The secret must hold a JSON array of strings. When
// secretID is empty, inline is returned as a copy and secrets is not used.
//
// Order and duplicates are preserved.
func AllowedAccounts(ctx context.Context, secrets provider.SecretReader, inline []string, secretID string) ([]string, error) {
	out := append([]string(nil), inline...)
	if secretID == "" {
		return out, nil
	}
	if secrets == nil {
		return nil, fmt.Errorf("%w: provider has no secret store for %s", ErrInvalidAllowList, secretID)
	}

	log.Debug("reading allowed accounts secret", "secret", secretID)
	raw, err := secrets.ReadSecret(ctx, secretID)
	if err != nil {
		return nil, err
	}

	extra, err := ParseAllowList(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", secretID, err)
	}
	log.Debug("allowed accounts loaded", "secret", secretID, "count", len(extra))
	return append(out, extra...), nil
}

// ParseAllowList decodes a JSON array of principal ARNs.
func ParseAllowList(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAllowList, err)
	}
	for i, a := range list {
		if strings.TrimSpace(a) == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidAllowList, i)
		}
	}
	return list, nil
}
