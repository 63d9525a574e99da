package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// IAMAPI is the subset of the IAM client used by the provider.
type IAMAPI interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error)
}

// STSAPI is the subset of the STS client used by the provider.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// APIGatewayAPI is what the REST API paginator needs.
type APIGatewayAPI interface {
	apigateway.GetRestApisAPIClient
}

// SecretsManagerAPI is the subset of the Secrets Manager client used by the provider.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var (
	_ IAMAPI            = (*iam.Client)(nil)
	_ STSAPI            = (*sts.Client)(nil)
	_ APIGatewayAPI     = (*apigateway.Client)(nil)
	_ SecretsManagerAPI = (*secretsmanager.Client)(nil)
)

// ServiceClients bundles the SDK clients built from one aws.Config.
type ServiceClients struct {
	IAM        IAMAPI
	STS        STSAPI
	APIGateway APIGatewayAPI
	Secrets    SecretsManagerAPI
}

// NewServiceClients builds SDK clients from cfg. A non-empty endpoint
// replaces the resolved endpoint of every service (LocalStack, tests).
func NewServiceClients(cfg aws.Config, endpoint string) *ServiceClients {
	var base *string
	if endpoint != "" {
		base = aws.String(endpoint)
	}
	return &ServiceClients{
		IAM: iam.NewFromConfig(cfg, func(o *iam.Options) {
			o.BaseEndpoint = base
		}),
		STS: sts.NewFromConfig(cfg, func(o *sts.Options) {
			o.BaseEndpoint = base
		}),
		APIGateway: apigateway.NewFromConfig(cfg, func(o *apigateway.Options) {
			o.BaseEndpoint = base
		}),
		Secrets: secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
			o.BaseEndpoint = base
		}),
	}
}
