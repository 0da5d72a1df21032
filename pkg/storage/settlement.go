package storage

import (
	"context"
	"time"

	"github.com/chris/bidding-wars/pkg/models"
)

// SettlementStore defines the highly-privileged interface for confirming payments and recording payouts.
// These operations write across the auctions, barracks and settlements tables.
// It should only be exposed to the settlement engine.
type SettlementStore interface {
	PurchaseReader
	AuctionReader

	GetSettlement(ctx context.Context, auctionID string) (*models.Settlement, error)

	// ConfirmPayment marks the ownership record and the auction PAID and creates the settlement record
	// in one transaction. If the record is no longer pending or the settlement already exists it
	// returns ErrAlreadyProcessed and nothing is written.
	ConfirmPayment(ctx context.Context, auction *models.Auction, item *models.BarracksItem, settlement *models.Settlement) error

	// CreateSettlement stores a settlement record, returning ErrAlreadyExists if one is present.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// SavePayoutPlan stores the payout legs and fees the first time a payout runs.
	// It returns ErrAlreadyExists if a plan was stored by an earlier run.
	SavePayoutPlan(ctx context.Context, settlement *models.Settlement) error

	// SavePayoutLeg records the outcome of one payout transfer.
	SavePayoutLeg(ctx context.Context, auctionID string, leg *models.PayoutLeg) error

	// FinishPayout writes the overall payout status to the settlement and the auction's bookkeeping.
	FinishPayout(ctx context.Context, settlement *models.Settlement) error

	// ListStalledPayouts returns settlements still PENDING or FAILED that have not been touched since maxAge ago.
	ListStalledPayouts(ctx context.Context, maxAge time.Duration, limit int32) ([]models.Settlement, error)
}
