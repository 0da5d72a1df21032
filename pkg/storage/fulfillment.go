package storage

import (
	"context"

	"github.com/chris/bidding-wars/pkg/models"
)

// FulfillmentStore defines the interface for fulfillment records.
type FulfillmentStore interface {
	// GetFulfillment returns ErrNotFound until the first fulfillment action creates the record.
	GetFulfillment(ctx context.Context, auctionID string) (*models.Fulfillment, error)

	// SaveFulfillment creates the record when Version is zero, otherwise replaces it if the version matches.
	SaveFulfillment(ctx context.Context, f *models.Fulfillment) error

	// CompleteFulfillment writes the fulfillment record, the auction and the ownership record atomically.
	CompleteFulfillment(ctx context.Context, f *models.Fulfillment, auction *models.Auction, item *models.BarracksItem) error
}
