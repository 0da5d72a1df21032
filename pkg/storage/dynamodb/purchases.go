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

const (
	barracksAuctionGSI = "auction_id-index"
	barracksOwnerGSI   = "owner_id-created_at-index"
	barracksStatusGSI  = "status-created_at-index"
)

// GetBarracksItem retrieves an ownership record by its ID.
func (s *Store) GetBarracksItem(ctx context.Context, itemID string) (*models.BarracksItem, error) {
	var item models.BarracksItem
	found, err := s.getItem(ctx, s.BarracksTableName, "id", itemID, &item)
	if err != nil {
		return nil, fmt.Errorf("failed to get barracks item from DynamoDB: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("barracks item %s: %w", itemID, storage.ErrNotFound)
	}
	return &item, nil
}

func (s *Store) GetBarracksItemByAuction(ctx context.Context, auctionID string) (*models.BarracksItem, error) {
	items, err := s.queryBarracks(ctx, barracksAuctionGSI, "auction_id = :key", auctionID, nil, 1, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query for barracks item by auction: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("barracks item for auction %s: %w", auctionID, storage.ErrNotFound)
	}
	return &items[0], nil
}

func (s *Store) ListBarracksItemsByOwner(ctx context.Context, ownerID string) ([]models.BarracksItem, error) {
	items, err := s.queryBarracks(ctx, barracksOwnerGSI, "owner_id = :key", ownerID, nil, 0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to query for barracks items by owner: %w", err)
	}
	return items, nil
}

// ListBarracksItemsByStatus is used by the reconciliation job to find records awaiting payment.
func (s *Store) ListBarracksItemsByStatus(ctx context.Context, status models.BarracksStatus, limit int32) ([]models.BarracksItem, error) {
	names := map[string]string{"#status": "status"}
	items, err := s.queryBarracks(ctx, barracksStatusGSI, "#status = :key", string(status), names, limit, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query for barracks items by status: %w", err)
	}
	return items, nil
}

func (s *Store) queryBarracks(ctx context.Context, index, keyCondition, key string, names map[string]string, limit int32, ascending bool) ([]models.BarracksItem, error) {
	input := &dynamodb.QueryInput{
		TableName:                aws.String(s.BarracksTableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String(keyCondition),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: key},
		},
		ScanIndexForward: aws.Bool(ascending),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	var items []models.BarracksItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal barracks items: %w", err)
	}
	return items, nil
}

// OpenPurchase creates the ownership record and moves the auction to its next status in one transaction.
func (s *Store) OpenPurchase(ctx context.Context, auction *models.Auction, item *models.BarracksItem) error {
	nextAuction := *auction
	nextAuction.Version = auction.Version + 1
	auctionAV, err := marshalMap(nextAuction)
	if err != nil {
		return fmt.Errorf("failed to marshal auction: %w", err)
	}

	item.Version = 1
	itemAV, err := marshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal barracks item: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Move the auction, guarded by the version it was validated at.
				Put: versionedPut(s.AuctionsTableName, auctionAV, auction.Version),
			},
			{
				// Operation 2: Create the ownership record.
				Put: createPut(s.BarracksTableName, "id", itemAV),
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to execute purchase transaction: %w", err)
	}

	auction.Version = nextAuction.Version
	return nil
}

// UpdateBarracksItem replaces the ownership record under optimistic locking.
func (s *Store) UpdateBarracksItem(ctx context.Context, item *models.BarracksItem) error {
	next := *item
	next.Version = item.Version + 1
	av, err := marshalMap(next)
	if err != nil {
		return fmt.Errorf("failed to marshal barracks item: %w", err)
	}

	if err := s.putItem(ctx, versionedPut(s.BarracksTableName, av, item.Version)); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to update barracks item: %w", err)
	}

	item.Version = next.Version
	return nil
}

// UpdatePurchase writes an auction and its ownership record together.
func (s *Store) UpdatePurchase(ctx context.Context, auction *models.Auction, item *models.BarracksItem) error {
	nextAuction := *auction
	nextAuction.Version = auction.Version + 1
	auctionAV, err := marshalMap(nextAuction)
	if err != nil {
		return fmt.Errorf("failed to marshal auction: %w", err)
	}

	nextItem := *item
	nextItem.Version = item.Version + 1
	itemAV, err := marshalMap(nextItem)
	if err != nil {
		return fmt.Errorf("failed to marshal barracks item: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: versionedPut(s.AuctionsTableName, auctionAV, auction.Version)},
			{Put: versionedPut(s.BarracksTableName, itemAV, item.Version)},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to execute purchase update transaction: %w", err)
	}

	auction.Version = nextAuction.Version
	item.Version = nextItem.Version
	return nil
}
