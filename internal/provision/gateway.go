package provision

import (
	"context"
	"fmt"

	"github.com/majorcontext/execrole/internal/log"
	"github.com/majorcontext/execrole/internal/provider"
)

// ResolveRestAPIID returns the id of the REST API named name.
//
// The name must match exactly one entry. Listing failures are returned
// unchanged; no match yields ErrGatewayNotFound and several matches yield
// ErrAmbiguousGateway.
func ResolveRestAPIID(ctx context.Context, gw provider.Gateway, name string) (string, error) {
	log.Debug("calling gateway", "operation", "ListAPIs", "api_name", name)

	apis, err := gw.ListAPIs(ctx)
	if err != nil {
		return "", err
	}

	var ids []string
	for _, api := range apis {
		if api.Name == name {
			ids = append(ids, api.ID)
		}
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: no REST API named %q among %d visible APIs", ErrGatewayNotFound, name, len(apis))
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %v", ErrAmbiguousGateway, name, ids)
	}
}
