package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/majorcontext/execrole/internal/id"
	"github.com/majorcontext/execrole/internal/log"
	"github.com/majorcontext/execrole/internal/provider"
)

// ProviderName is the registry name of this provider.
const ProviderName = "aws"

// sessionPrefix starts every assumed-role session name.
const sessionPrefix = "execrole"

// Provider connects to AWS.
type Provider struct {
	// loadConfig is replaceable in tests.
	loadConfig func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)
}

var _ provider.Provider = (*Provider)(nil)

// New creates a new AWS provider.
func New() *Provider {
	return &Provider{loadConfig: config.LoadDefaultConfig}
}

func init() {
	provider.Register(New())
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Connect loads credentials and builds the service clients.
func (p *Provider) Connect(ctx context.Context, s provider.Settings) (*provider.Clients, error) {
	cfg, err := p.LoadConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return ClientsFrom(NewServiceClients(cfg, s.Endpoint)), nil
}

// LoadConfig resolves an aws.Config for s, assuming s.AssumeRole if set.
func (p *Provider) LoadConfig(ctx context.Context, s provider.Settings) (aws.Config, error) {
	load := p.loadConfig
	if load == nil {
		load = config.LoadDefaultConfig
	}

	var opts []func(*config.LoadOptions) error
	if s.Region != "" {
		opts = append(opts, config.WithRegion(s.Region))
	}

	cfg, err := load(ctx, opts...)
	if err != nil {
		return aws.Config{}, &provider.ConnectError{
			Provider: ProviderName,
			Cause:    err,
			Hint: "Configure AWS credentials with environment variables, a shared profile\n" +
				"(AWS_PROFILE), or an instance role.",
		}
	}

	if s.AssumeRole == "" {
		return cfg, nil
	}

	log.Debug("assuming deploy role", "arn", s.AssumeRole)
	stsClient := sts.NewFromConfig(cfg, func(o *sts.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	})
	creds := stscreds.NewAssumeRoleProvider(stsClient, s.AssumeRole, func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = id.Generate(sessionPrefix)
	})
	cfg.Credentials = aws.NewCredentialsCache(creds)
	return cfg, nil
}

// ClientsFrom adapts SDK clients to the provider capability set.
func ClientsFrom(sc *ServiceClients) *provider.Clients {
	return &provider.Clients{
		Identity: NewIdentity(sc.IAM, sc.STS),
		Gateway:  NewGateway(sc.APIGateway),
		Secrets:  NewSecrets(sc.Secrets),
	}
}
