package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/chris/bidding-wars/pkg/storage"
)

const publishTimeout = 5 * time.Second

// APIGatewayPublisher posts messages to connections held by an API Gateway websocket API.
type APIGatewayPublisher struct {
	Connections storage.ConnectionStore
	Client      ConnectionAPI
	Logger      *slog.Logger
}

// Make sure we conform to the interface
var _ Publisher = (*APIGatewayPublisher)(nil)

// NewAPIGatewayPublisher creates a publisher for the websocket API at apiEndpoint.
func NewAPIGatewayPublisher(ctx context.Context, connections storage.ConnectionStore, apiEndpoint string, logger *slog.Logger) (*APIGatewayPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return &APIGatewayPublisher{Connections: connections, Client: client, Logger: logger}, nil
}

// Publish sends a message to every connection watching its auction.
// Connections API Gateway reports as gone are removed.
func (p *APIGatewayPublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.Connections.ListConnections(ctx, message.AuctionId)
	if err != nil {
		return fmt.Errorf("failed to list connections: %w", err)
	}
	if len(connectionIDs) == 0 {
		return nil
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.Client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			p.Logger.Debug("stale connection found, deleting", slog.String("connection_id", connectionID))
			if err := p.Connections.RemoveConnection(ctx, connectionID); err != nil {
				p.Logger.Error("failed to delete stale connection", slog.String("connection_id", connectionID), slog.Any("error", err))
			}
			continue
		}
		p.Logger.Error("failed to post to connection", slog.String("connection_id", connectionID), slog.Any("error", err))
	}

	return nil
}

// Broadcast publishes a message without letting a delivery failure reach the caller.
// A nil publisher is a no-op.
func Broadcast(ctx context.Context, p Publisher, logger *slog.Logger, message Message) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, message); err != nil {
		logger.Warn("failed to publish auction update",
			slog.String("type", string(message.Type)),
			slog.String("auction_id", message.AuctionId),
			slog.Any("error", err),
		)
	}
}
