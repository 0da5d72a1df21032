package storage

import (
	"context"

	"github.com/chris/bidding-wars/pkg/models"
)

// BidStore defines the interface for the bid collection.
type BidStore interface {
	// GetTopBid returns the highest bid for an auction, or nil when there are no bids.
	GetTopBid(ctx context.Context, auctionID string) (*models.Bid, error)

	// ListBids returns an auction's bids ordered by amount, highest first.
	ListBids(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error)

	// PlaceBid appends the bid and rewrites the auction's top-bid cache as one atomic write.
	// The write only applies if the auction is still at auction.Version and still open for bids.
	PlaceBid(ctx context.Context, auction *models.Auction, bid *models.Bid) error
}
