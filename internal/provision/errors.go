package provision

import "errors"

var (
	// ErrGatewayNotFound is returned when no REST API matches the configured
	// name. It usually means the API has not been deployed yet.
	ErrGatewayNotFound = errors.New("rest api not found")
	// ErrAmbiguousGateway is returned when more than one REST API has the
	// configured name.
	ErrAmbiguousGateway = errors.New("rest api name is not unique")
	// ErrMalformedIdentity is returned when the caller identity ARN has no
	// account segment.
	ErrMalformedIdentity = errors.New("malformed caller identity")
)

// ErrInvalidAllowList is returned when an allow-list secret is not a JSON
// array of non-empty strings.
var ErrInvalidAllowList = errors.New("invalid allowed accounts secret")
