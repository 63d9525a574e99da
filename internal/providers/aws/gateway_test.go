package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majorcontext/execrole/internal/provider"
)

func TestGateway_ListAPIsFollowsPages(t *testing.T) {
	pages := map[string]*apigateway.GetRestApisOutput{
		"": {
			Items:    []apigwtypes.RestApi{{Id: aws.String("a1"), Name: aws.String("dev-orders")}},
			Position: aws.String("page2"),
		},
		"page2": {
			Items: []apigwtypes.RestApi{
				{Id: aws.String("b2"), Name: aws.String("dev-users")},
				{Id: aws.String("c3"), Name: aws.String("dev-billing")},
			},
		},
	}

	var calls int
	client := &mockAPIGatewayClient{
		getRestApisFn: func(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
			calls++
			assert.Equal(t, int32(listPageSize), aws.ToInt32(params.Limit))
			return pages[aws.ToString(params.Position)], nil
		},
	}

	apis, err := NewGateway(client).ListAPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []provider.API{
		{ID: "a1", Name: "dev-orders"},
		{ID: "b2", Name: "dev-users"},
		{ID: "c3", Name: "dev-billing"},
	}, apis)
}

func TestGateway_ListAPIsEmpty(t *testing.T) {
	client := &mockAPIGatewayClient{
		getRestApisFn: func(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
			return &apigateway.GetRestApisOutput{}, nil
		},
	}

	apis, err := NewGateway(client).ListAPIs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apis)
}

func TestGateway_ListAPIsError(t *testing.T) {
	want := errors.New("TooManyRequestsException")
	client := &mockAPIGatewayClient{
		getRestApisFn: func(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
			return nil, want
		},
	}

	_, err := NewGateway(client).ListAPIs(context.Background())
	assert.ErrorIs(t, err, want)
}
