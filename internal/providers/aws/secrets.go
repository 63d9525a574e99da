package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/majorcontext/execrole/internal/provider"
)

// Secrets implements provider.SecretReader with Secrets Manager.
type Secrets struct {
	client SecretsManagerAPI
}

var _ provider.SecretReader = (*Secrets)(nil)

// NewSecrets creates a Secrets reader.
func NewSecrets(client SecretsManagerAPI) *Secrets {
	return &Secrets{client: client}
}

// ReadSecret returns the string value of the secret id (name or ARN).
func (s *Secrets) ReadSecret(ctx context.Context, id string) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("reading secret %s: %w", id, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", id)
	}
	return *out.SecretString, nil
}
