package provision

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/majorcontext/execrole/internal/log"
	"github.com/majorcontext/execrole/internal/provider"
)

// ResolveAccountID returns the account of the active credentials.
//
// Failures of the identity call are returned unchanged.
func ResolveAccountID(ctx context.Context, idp provider.IdentityProvider) (string, error) {
	log.Debug("calling identity provider", "operation", "GetCallerIdentity")

	ident, err := idp.GetCallerIdentity(ctx)
	if err != nil {
		return "", err
	}
	if ident == nil {
		return "", fmt.Errorf("%w: empty response", ErrMalformedIdentity)
	}
	return AccountIDFromARN(ident.ARN)
}

// AccountIDFromARN extracts the account segment (the fifth colon-separated
// field) from an identity ARN such as arn:aws:iam::123456789012:user/ci.
func AccountIDFromARN(s string) (string, error) {
	parsed, err := arn.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrMalformedIdentity, s, err)
	}
	if parsed.AccountID == "" {
		return "", fmt.Errorf("%w %q: account is empty", ErrMalformedIdentity, s)
	}
	return parsed.AccountID, nil
}
