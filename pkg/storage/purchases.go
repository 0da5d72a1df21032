package storage

import (
	"context"

	"github.com/chris/bidding-wars/pkg/models"
)

// PurchaseReader defines the interface for reading ownership records.
type PurchaseReader interface {
	GetBarracksItem(ctx context.Context, itemID string) (*models.BarracksItem, error)

	// GetBarracksItemByAuction returns the ownership record opened for an auction.
	GetBarracksItemByAuction(ctx context.Context, auctionID string) (*models.BarracksItem, error)

	ListBarracksItemsByOwner(ctx context.Context, ownerID string) ([]models.BarracksItem, error)

	// ListBarracksItemsByStatus returns up to limit records in a status, oldest first.
	ListBarracksItemsByStatus(ctx context.Context, status models.BarracksStatus, limit int32) ([]models.BarracksItem, error)
}

// PurchaseManager defines the interface for opening and mutating ownership records.
type PurchaseManager interface {
	// OpenPurchase creates the ownership record and moves the auction in a single transaction.
	OpenPurchase(ctx context.Context, auction *models.Auction, item *models.BarracksItem) error

	// UpdateBarracksItem replaces the record if its stored version still equals item.Version.
	UpdateBarracksItem(ctx context.Context, item *models.BarracksItem) error

	// UpdatePurchase writes the auction and its ownership record together, each guarded by its version.
	UpdatePurchase(ctx context.Context, auction *models.Auction, item *models.BarracksItem) error
}

// PurchaseStore combines the reader and manager interfaces.
type PurchaseStore interface {
	PurchaseReader
	PurchaseManager
}
