package storage

import (
	"context"
	"time"

	"github.com/chris/bidding-wars/pkg/models"
)

// AuctionReader defines the interface for reading auction data.
type AuctionReader interface {
	// GetAuction retrieves an auction by its ID with a strongly consistent read.
	GetAuction(ctx context.Context, auctionID string) (*models.Auction, error)

	// ListAuctionsByCommunity retrieves every auction listed in a community, newest first.
	ListAuctionsByCommunity(ctx context.Context, communityID string) ([]models.Auction, error)

	// ListAuctionsDue retrieves auctions in the given status whose end time is at or before cutoff.
	ListAuctionsDue(ctx context.Context, status models.AuctionStatus, cutoff time.Time, limit int32) ([]models.Auction, error)

	// ListAuctionsAwaitingCharge retrieves ENDED auctions that have a winner, oldest end time first.
	ListAuctionsAwaitingCharge(ctx context.Context, limit int32) ([]models.Auction, error)
}

// AuctionManager defines the interface for creating and updating auctions.
type AuctionManager interface {
	// CreateAuction stores a new auction. The ID must not already exist.
	CreateAuction(ctx context.Context, auction *models.Auction) error

	// UpdateAuction replaces the auction if its stored version still equals auction.Version.
	// On success auction.Version is advanced. A lost race returns ErrConcurrentUpdate.
	UpdateAuction(ctx context.Context, auction *models.Auction) error
}

// AuctionStore combines the reader and manager interfaces.
type AuctionStore interface {
	AuctionReader
	AuctionManager
}
