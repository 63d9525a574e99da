package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/majorcontext/execrole/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountIDFromARN(t *testing.T) {
	tests := []struct {
		name    string
		arn     string
		want    string
		wantErr bool
	}{
		{"iam user", "arn:aws:iam::222222222222:user/deployer", "222222222222", false},
		{"assumed role", "arn:aws:sts::111122223333:assumed-role/Admin/session", "111122223333", false},
		{"account root", "arn:aws:iam::123456789012:root", "123456789012", false},
		{"gov partition", "arn:aws-us-gov:iam::123456789012:user/ci", "123456789012", false},
		{"empty", "", "", true},
		{"not an arn", "deployer", "", true},
		{"too few segments", "arn:aws:iam::123456789012", "", true},
		{"empty account", "arn:aws:iam:::user/ci", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccountIDFromARN(tt.arn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAccountID_NilIdentity(t *testing.T) {
	idp := &nilIdentity{}
	_, err := ResolveAccountID(context.Background(), idp)
	assert.ErrorIs(t, err, ErrMalformedIdentity)
}

type nilIdentity struct{ fakeIdentity }

func (n *nilIdentity) GetCallerIdentity(context.Context) (*provider.CallerIdentity, error) {
	return nil, nil
}

func TestResolveRestAPIID(t *testing.T) {
	apis := []provider.API{
		{ID: "abc123", Name: "my-api"},
		{ID: "def456", Name: "my-api-v2"},
		{ID: "ghi789", Name: "MY-API"},
	}

	tests := []struct {
		name    string
		apis    []provider.API
		lookup  string
		want    string
		wantErr error
	}{
		{"exact match", apis, "my-api", "abc123", nil},
		{"no prefix match", apis, "my", "", ErrGatewayNotFound},
		{"case sensitive", apis, "My-Api", "", ErrGatewayNotFound},
		{"empty listing", nil, "my-api", "", ErrGatewayNotFound},
		{"duplicate names", append(apis, provider.API{ID: "jkl000", Name: "my-api"}), "my-api", "", ErrAmbiguousGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{log: &callLog{}, apis: tt.apis}
			got, err := ResolveRestAPIID(context.Background(), gw, tt.lookup)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRestAPIID_ListingError(t *testing.T) {
	boom := errors.New("boom")
	gw := &fakeGateway{log: &callLog{}, err: boom}

	_, err := ResolveRestAPIID(context.Background(), gw, "my-api")
	assert.Same(t, boom, err)
	assert.NotErrorIs(t, err, ErrGatewayNotFound)
}
