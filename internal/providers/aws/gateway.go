package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"

	"github.com/majorcontext/execrole/internal/provider"
)

// listPageSize is the largest page API Gateway accepts.
const listPageSize = 500

// Gateway implements provider.Gateway with API Gateway.
type Gateway struct {
	client APIGatewayAPI
}

var _ provider.Gateway = (*Gateway)(nil)

// NewGateway creates a Gateway.
func NewGateway(client APIGatewayAPI) *Gateway {
	return &Gateway{client: client}
}

// ListAPIs returns every REST API, following pagination to the last page.
func (g *Gateway) ListAPIs(ctx context.Context) ([]provider.API, error) {
	p := apigateway.NewGetRestApisPaginator(g.client, &apigateway.GetRestApisInput{
		Limit: aws.Int32(listPageSize),
	})

	var apis []provider.API
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			apis = append(apis, provider.API{
				ID:   aws.ToString(item.Id),
				Name: aws.ToString(item.Name),
			})
		}
	}
	return apis, nil
}
