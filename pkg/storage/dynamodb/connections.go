package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/storage"
)

const (
	connectionsAuctionGSI = "auction_id-index"
	// connectionTTL bounds how long a connection whose disconnect was never delivered lingers.
	connectionTTL = 2 * time.Hour
)

type connection struct {
	ConnectionId string    `dynamodbav:"connection_id"`
	AuctionId    string    `dynamodbav:"auction_id"`
	ConnectedAt  time.Time `dynamodbav:"connected_at"`
	ExpiresAt    int64     `dynamodbav:"expires_at"`
}

// Make sure we conform to the interface
var _ storage.ConnectionStore = (*Store)(nil)

// AddConnection records that a websocket connection is watching an auction.
func (s *Store) AddConnection(ctx context.Context, connectionID, auctionID string) error {
	now := time.Now().UTC()
	av, err := marshalMap(connection{
		ConnectionId: connectionID,
		AuctionId:    auctionID,
		ConnectedAt:  now,
		ExpiresAt:    now.Add(connectionTTL).Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to save connection %s: %w", connectionID, err)
	}
	return nil
}

// RemoveConnection forgets a websocket connection. Removing an unknown connection is not an error.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"connection_id": &types.AttributeValueMemberS{Value: connectionID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection %s: %w", connectionID, err)
	}
	return nil
}

// ListConnections returns the ids of every connection watching an auction.
func (s *Store) ListConnections(ctx context.Context, auctionID string) ([]string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ConnectionsTableName),
		IndexName:              aws.String(connectionsAuctionGSI),
		KeyConditionExpression: aws.String("auction_id = :auction_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":auction_id": &types.AttributeValueMemberS{Value: auctionID},
		},
		ProjectionExpression: aws.String("connection_id"),
	}

	var ids []string
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query connections for auction %s: %w", auctionID, err)
		}
		var conns []connection
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &conns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
		}
		for _, c := range conns {
			ids = append(ids, c.ConnectionId)
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return ids, nil
}
