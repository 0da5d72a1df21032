package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
)

const auctionBidsGSI = "auction_id-amount_cents-index"

// GetTopBid returns the highest bid on the auction, or nil if it has none.
// The index is eventually consistent, so callers also consult the auction's top-bid cache.
func (s *Store) GetTopBid(ctx context.Context, auctionID string) (*models.Bid, error) {
	bids, err := s.queryBids(ctx, auctionID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query for top bid: %w", err)
	}
	if len(bids) == 0 {
		return nil, nil
	}
	return &bids[0], nil
}

func (s *Store) ListBids(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error) {
	bids, err := s.queryBids(ctx, auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query for bids: %w", err)
	}
	return bids, nil
}

func (s *Store) queryBids(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.BidsTableName),
		IndexName:              aws.String(auctionBidsGSI),
		KeyConditionExpression: aws.String("auction_id = :auctionID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":auctionID": &types.AttributeValueMemberS{Value: auctionID},
		},
		ScanIndexForward: aws.Bool(false), // Highest amount first
		Limit:            aws.Int32(limit),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	var bids []models.Bid
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &bids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bids: %w", err)
	}
	return bids, nil
}

// PlaceBid atomically writes the new bid and the auction carrying the refreshed top-bid cache.
func (s *Store) PlaceBid(ctx context.Context, auction *models.Auction, bid *models.Bid) error {
	next := *auction
	next.Version = auction.Version + 1

	auctionAV, err := marshalMap(next)
	if err != nil {
		return fmt.Errorf("failed to marshal auction: %w", err)
	}
	bidAV, err := marshalMap(bid)
	if err != nil {
		return fmt.Errorf("failed to marshal bid: %w", err)
	}

	// The auction must be untouched since it was validated and still accepting bids.
	auctionPut := versionedPut(s.AuctionsTableName, auctionAV, auction.Version)
	auctionPut.ConditionExpression = aws.String("version = :version AND #status IN (:scheduled, :live)")
	auctionPut.ExpressionAttributeNames = map[string]string{"#status": "status"}
	auctionPut.ExpressionAttributeValues[":scheduled"] = &types.AttributeValueMemberS{Value: string(models.SCHEDULED)}
	auctionPut.ExpressionAttributeValues[":live"] = &types.AttributeValueMemberS{Value: string(models.LIVE)}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: auctionPut},
			{Put: createPut(s.BidsTableName, "id", bidAV)},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to execute bid transaction: %w", err)
	}

	auction.Version = next.Version
	return nil
}
