package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
)

// GetFulfillment retrieves the fulfillment record for an auction.
func (s *Store) GetFulfillment(ctx context.Context, auctionID string) (*models.Fulfillment, error) {
	var f models.Fulfillment
	found, err := s.getItem(ctx, s.FulfillmentsTableName, "auction_id", auctionID, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfillment from DynamoDB: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("fulfillment for auction %s: %w", auctionID, storage.ErrNotFound)
	}
	return &f, nil
}

// fulfillmentPut creates the record on first save and otherwise guards on its version.
func (s *Store) fulfillmentPut(f *models.Fulfillment) (*types.Put, int64, error) {
	next := *f
	next.Version = f.Version + 1
	av, err := marshalMap(next)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal fulfillment: %w", err)
	}
	if f.Version == 0 {
		return createPut(s.FulfillmentsTableName, "auction_id", av), next.Version, nil
	}
	return versionedPut(s.FulfillmentsTableName, av, f.Version), next.Version, nil
}

func (s *Store) SaveFulfillment(ctx context.Context, f *models.Fulfillment) error {
	put, nextVersion, err := s.fulfillmentPut(f)
	if err != nil {
		return err
	}

	if err := s.putItem(ctx, put); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to save fulfillment: %w", err)
	}

	f.Version = nextVersion
	return nil
}

// CompleteFulfillment writes the fulfillment record, the auction and the ownership record as one unit.
func (s *Store) CompleteFulfillment(ctx context.Context, f *models.Fulfillment, auction *models.Auction, item *models.BarracksItem) error {
	fulfillmentPut, nextFulfillmentVersion, err := s.fulfillmentPut(f)
	if err != nil {
		return err
	}

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
			{Put: fulfillmentPut},
			{Put: versionedPut(s.AuctionsTableName, auctionAV, auction.Version)},
			{Put: versionedPut(s.BarracksTableName, itemAV, item.Version)},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionFailure(err) {
			return storage.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to execute fulfillment transaction: %w", err)
	}

	f.Version = nextFulfillmentVersion
	auction.Version = nextAuction.Version
	item.Version = nextItem.Version
	return nil
}
