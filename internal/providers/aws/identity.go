package aws

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/majorcontext/execrole/internal/provider"
)

// Identity implements provider.IdentityProvider with IAM and STS.
type Identity struct {
	iam IAMAPI
	sts STSAPI
}

var _ provider.IdentityProvider = (*Identity)(nil)

// NewIdentity creates an Identity from the given clients.
func NewIdentity(iamClient IAMAPI, stsClient STSAPI) *Identity {
	return &Identity{iam: iamClient, sts: stsClient}
}

// GetRole fetches a role by name.
func (i *Identity) GetRole(ctx context.Context, name string) (*provider.Role, error) {
	out, err := i.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
	if err != nil {
		return nil, err
	}
	return roleFrom(out.Role, name), nil
}

// CreateRole creates a role. Tags are sent sorted by key.
func (i *Identity) CreateRole(ctx context.Context, params provider.CreateRoleParams) (*provider.Role, error) {
	in := &iam.CreateRoleInput{
		RoleName:                 aws.String(params.RoleName),
		AssumeRolePolicyDocument: aws.String(params.AssumeRolePolicyDocument),
		Tags:                     iamTags(params.Tags),
	}
	if params.Path != "" {
		in.Path = aws.String(params.Path)
	}
	if params.Description != "" {
		in.Description = aws.String(params.Description)
	}

	out, err := i.iam.CreateRole(ctx, in)
	if err != nil {
		return nil, err
	}
	return roleFrom(out.Role, params.RoleName), nil
}

// PutInlinePolicy attaches or replaces an inline role policy.
func (i *Identity) PutInlinePolicy(ctx context.Context, params provider.PutPolicyParams) error {
	_, err := i.iam.PutRolePolicy(ctx, &iam.PutRolePolicyInput{
		RoleName:       aws.String(params.RoleName),
		PolicyName:     aws.String(params.PolicyName),
		PolicyDocument: aws.String(params.PolicyDocument),
	})
	return err
}

// GetCallerIdentity returns the identity of the active credentials.
func (i *Identity) GetCallerIdentity(ctx context.Context) (*provider.CallerIdentity, error) {
	out, err := i.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}
	return &provider.CallerIdentity{
		ARN:    aws.ToString(out.Arn),
		UserID: aws.ToString(out.UserId),
	}, nil
}

// IsNotFound implements provider.IdentityProvider.
func (i *Identity) IsNotFound(err error) bool {
	return IsNotFound(err)
}

func roleFrom(r *iamtypes.Role, name string) *provider.Role {
	if r == nil {
		return &provider.Role{Name: name}
	}
	role := &provider.Role{
		Name: aws.ToString(r.RoleName),
		ARN:  aws.ToString(r.Arn),
	}
	if role.Name == "" {
		role.Name = name
	}
	return role
}

func iamTags(tags map[string]string) []iamtypes.Tag {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]iamtypes.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, iamtypes.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}
