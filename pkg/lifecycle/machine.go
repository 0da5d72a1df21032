package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/bidding-wars/pkg/assets"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/metrics"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/payments"
	"github.com/chris/bidding-wars/pkg/storage"
	"github.com/chris/bidding-wars/pkg/websockets"
	"github.com/google/uuid"
)

// FeeDefaults are stamped on every new auction.
type FeeDefaults struct {
	CommunityFeePercent int64
	PlatformFeePercent  int64
}

// Machine owns every auction status transition except PENDING_PAYMENT -> PAID, which belongs to settlement.
// Each method checks the current status and the caller before it writes anything.
type Machine struct {
	Store    storage.ApiStore
	Payments payments.Charger
	Assets   assets.URLSigner
	Notifier notify.Dispatcher
	// Feed, when set, is told when bidding on an auction stops.
	Feed    websockets.Publisher
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	Fees    FeeDefaults
	Now     func() time.Time
	NewID   func() string
}

// NewMachine creates a new Machine.
func NewMachine(store storage.ApiStore, charger payments.Charger, signer assets.URLSigner, notifier notify.Dispatcher, m *metrics.Metrics, logger *slog.Logger, fees FeeDefaults) *Machine {
	return &Machine{
		Store:    store,
		Payments: charger,
		Assets:   signer,
		Notifier: notifier,
		Metrics:  m,
		Logger:   logger,
		Fees:     fees,
		Now:      time.Now,
		NewID:    func() string { return uuid.New().String() },
	}
}

func (m *Machine) now() time.Time {
	return m.Now().UTC()
}

func (m *Machine) loadAuction(ctx context.Context, auctionID string) (*models.Auction, error) {
	auction, err := m.Store.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auction: %w", err)
	}
	return auction, nil
}

func (m *Machine) loadPurchase(ctx context.Context, auctionID string) (*models.BarracksItem, error) {
	item, err := m.Store.GetBarracksItemByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load barracks item: %w", err)
	}
	return item, nil
}

func isCreator(actor *auth.Identity, auction *models.Auction) bool {
	return actor != nil && actor.UserId != "" && actor.UserId == auction.CreatorId
}

func isWinner(actor *auth.Identity, auction *models.Auction) bool {
	return actor != nil && actor.UserId != "" && actor.UserId == auction.WinnerId
}

func requireStatus(auction *models.Auction, now time.Time, action string, allowed ...models.AuctionStatus) error {
	status := auction.EffectiveStatus(now)
	for _, s := range allowed {
		if status == s {
			return nil
		}
	}
	return &TransitionError{AuctionId: auction.Id, From: status, Action: action}
}

func requireKind(auction *models.Auction, kind models.ItemKind, action string) error {
	if auction.Kind != kind {
		return fmt.Errorf("%w: cannot %s a %s item", ErrWrongItemKind, action, auction.Kind)
	}
	return nil
}

// topBid returns the winning bid id, bidder and amount from the bid index and the auction's cache.
func topBid(auction *models.Auction, indexed *models.Bid) (string, string, int64) {
	bidID, bidder, amount := "", "", int64(0)
	if indexed != nil {
		bidID, bidder, amount = indexed.Id, indexed.BidderId, indexed.AmountCents
	}
	if auction.BidCount > 0 && auction.TopBidAmountCents >= amount && auction.CurrentBidderId != "" {
		bidID, bidder, amount = auction.CurrentBidId, auction.CurrentBidderId, auction.TopBidAmountCents
	}
	return bidID, bidder, amount
}

// announceClosed tells live watchers that bidding on auction has stopped.
func (m *Machine) announceClosed(ctx context.Context, auction *models.Auction) {
	websockets.Broadcast(ctx, m.Feed, m.Logger, websockets.AuctionClosed(auction.Id, websockets.AuctionClosedPayload{
		Status:      string(auction.Status),
		WinnerId:    auction.WinnerId,
		AmountCents: auction.TopBidAmountCents,
	}))
}
