package provider

import (
	"context"
)

// Role is the subset of role attributes the workflow reads back.
type Role struct {
	Name string
	ARN  string
}

// CallerIdentity describes the principal behind the active credentials.
type CallerIdentity struct {
	// ARN is the fully-qualified identifier, e.g.
	// arn:aws:iam::123456789012:user/deployer.
	ARN    string
	UserID string
}

// CreateRoleParams holds the inputs for IdentityProvider.CreateRole.
type CreateRoleParams struct {
	RoleName                 string
	Path                     string
	AssumeRolePolicyDocument string
	Description              string
	Tags                     map[string]string
}

// PutPolicyParams holds the inputs for IdentityProvider.PutInlinePolicy.
type PutPolicyParams struct {
	RoleName       string
	PolicyName     string
	PolicyDocument string
}

// API is an entry in a gateway listing.
type API struct {
	ID   string
	Name string
}

// IdentityProvider manages roles and resolves the caller's identity.
type IdentityProvider interface {
	// GetRole fetches a role by name. A missing role is reported with an
	// error for which IsNotFound returns true.
	GetRole(ctx context.Context, name string) (*Role, error)

	// CreateRole creates a role with the given trust policy.
	CreateRole(ctx context.Context, params CreateRoleParams) (*Role, error)

	// PutInlinePolicy attaches (or replaces) an inline policy on a role.
	PutInlinePolicy(ctx context.Context, params PutPolicyParams) error

	// GetCallerIdentity returns the identity of the active credentials.
	GetCallerIdentity(ctx context.Context) (*CallerIdentity, error)

	// IsNotFound reports whether err means the requested entity does not
	// exist, as opposed to a transport or permission failure.
	IsNotFound(err error) bool
}

// Gateway lists the REST APIs visible to the caller.
type Gateway interface {
	// ListAPIs returns every REST API in the current account and region.
	ListAPIs(ctx context.Context) ([]API, error)
}

// SecretReader reads operator-managed values from a secret store.
type SecretReader interface {
	ReadSecret(ctx context.Context, id string) (string, error)
}

// Settings configures a provider connection.
type Settings struct {
	Region string
	// AssumeRole, when set, is a role to assume before making any calls.
	AssumeRole string
	// Endpoint, when set, replaces the resolved endpoint of every service.
	Endpoint string
}

// Clients is the set of capabilities returned by Provider.Connect.
type Clients struct {
	Identity IdentityProvider
	Gateway  Gateway
	Secrets  SecretReader
}

// Provider is implemented by every cloud backend.
type Provider interface {
	// Name returns the provider identifier (e.g., "aws").
	Name() string

	// Connect builds clients for the given settings. It performs no
	// remote calls beyond what credential setup requires.
	Connect(ctx context.Context, s Settings) (*Clients, error)
}
