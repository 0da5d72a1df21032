package websockets

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
)

//go:generate mockery --name Publisher --output ./mocks --outpkg mocks
//go:generate mockery --name ConnectionAPI --output ./mocks --outpkg mocks

// Publisher delivers a message to every client watching the message's auction.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}

// ConnectionAPI is the subset of the API Gateway management client used by APIGatewayPublisher.
type ConnectionAPI interface {
	PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error)
}
