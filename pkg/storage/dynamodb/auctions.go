package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
)

const (
	communityAuctionsGSI = "community_id-created_at-index"
	statusEndsAtGSI      = "status-ends_at-index"
)

// GetAuction retrieves an auction from DynamoDB by its ID.
func (s *Store) GetAuction(ctx context.Context, auctionID string) (*models.Auction, error) {
	var auction models.Auction
	found, err := s.getItem(ctx, s.AuctionsTableName, "id", auctionID, &auction)
	if err != nil {
		return nil, fmt.Errorf("failed to get auction from DynamoDB: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("auction %s: %w", auctionID, storage.ErrNotFound)
	}
	return &auction, nil
}

// CreateAuction stores a new auction at version 1.
func (s *Store) CreateAuction(ctx context.Context, auction *models.Auction) error {
	auction.Version = 1
	av, err := marshalMap(auction)
	if err != nil {
		return fmt.Errorf("failed to marshal auction: %w", err)
	}

	if err := s.putItem(ctx, createPut(s.AuctionsTableName, "id", av)); err != nil {
		if isConditionFailure(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create auction: %w", err)
	}
	return nil
}

// UpdateAuction replaces the auction under optimistic locking.
func (s *Store) UpdateAuction(ctx context.Context, auction *models.Auction) error {
	next := *auction
	next.Version = auction.Version + 1
	av, err := marshalMap(next)
	if err != nil {
		return fmt.Errorf("failed to marshal auction: %w", err)
	}

	if err := s.putItem(ctx, versionedPut(s.AuctionsTableName, av, auction.Version)); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to update auction: %w", err)
	}

	auction.Version = next.Version
	return nil
}

func (s *Store) ListAuctionsByCommunity(ctx context.Context, communityID string) ([]models.Auction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AuctionsTableName),
		IndexName:              aws.String(communityAuctionsGSI),
		KeyConditionExpression: aws.String("community_id = :communityID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":communityID": &types.AttributeValueMemberS{Value: communityID},
		},
		ScanIndexForward: aws.Bool(false), // Newest listings first
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for auctions by community: %w", err)
	}

	var auctions []models.Auction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &auctions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auctions: %w", err)
	}

	return auctions, nil
}

// ListAuctionsDue is used by the ending job to find LIVE auctions past their end time.
func (s *Store) ListAuctionsDue(ctx context.Context, status models.AuctionStatus, cutoff time.Time, limit int32) ([]models.Auction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AuctionsTableName),
		IndexName:              aws.String(statusEndsAtGSI),
		KeyConditionExpression: aws.String("#status = :status AND ends_at <= :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":cutoff": &types.AttributeValueMemberS{Value: formatTime(cutoff)},
		},
		Limit: aws.Int32(limit),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for due auctions: %w", err)
	}

	var auctions []models.Auction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &auctions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal due auctions: %w", err)
	}

	return auctions, nil
}

// ListAuctionsAwaitingCharge pages through ENDED auctions until it has collected limit auctions with a winner.
// Auctions that ended without bids stay ENDED and are filtered out.
func (s *Store) ListAuctionsAwaitingCharge(ctx context.Context, limit int32) ([]models.Auction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AuctionsTableName),
		IndexName:              aws.String(statusEndsAtGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("attribute_exists(winner_id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.ENDED)},
		},
		Limit: aws.Int32(limit),
	}

	var auctions []models.Auction
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query for auctions awaiting charge: %w", err)
		}

		var page []models.Auction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal auctions: %w", err)
		}
		auctions = append(auctions, page...)

		if len(auctions) >= int(limit) || len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	if len(auctions) > int(limit) {
		auctions = auctions[:limit]
	}
	return auctions, nil
}
