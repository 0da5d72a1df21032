package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/models"
)

// OpenDispute moves a PAID or FULFILLED auction and its ownership record to DISPUTED.
// Only an admin of the auction's community may open a dispute.
func (m *Machine) OpenDispute(ctx context.Context, auctionID string, actor *auth.Identity) (*models.Auction, error) {
	return m.adminTransition(ctx, auctionID, actor, "dispute",
		models.DISPUTED, models.BarracksDisputed, models.PAID, models.FULFILLED)
}

// Refund moves a DISPUTED auction and its ownership record to REFUNDED. Terminal.
func (m *Machine) Refund(ctx context.Context, auctionID string, actor *auth.Identity) (*models.Auction, error) {
	return m.adminTransition(ctx, auctionID, actor, "refund",
		models.REFUNDED, models.BarracksRefunded, models.DISPUTED)
}

func (m *Machine) adminTransition(ctx context.Context, auctionID string, actor *auth.Identity, action string, to models.AuctionStatus, itemTo models.BarracksStatus, from ...models.AuctionStatus) (*models.Auction, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin(auction.CommunityId) {
		return nil, forbidden(action + " this auction")
	}
	if err := requireStatus(auction, m.now(), action, from...); err != nil {
		return nil, err
	}
	item, err := m.loadPurchase(ctx, auction.Id)
	if err != nil {
		return nil, err
	}

	now := m.now()
	auction.Status = to
	auction.UpdatedAt = now
	item.Status = itemTo
	item.UpdatedAt = now

	if err := m.Store.UpdatePurchase(ctx, auction, item); err != nil {
		return nil, fmt.Errorf("failed to %s auction: %w", action, err)
	}

	m.Metrics.Transition(to)
	m.Logger.Info("auction status changed by admin",
		slog.String("auction_id", auction.Id),
		slog.String("status", string(to)),
		slog.String("admin_id", actor.UserId),
	)
	return auction, nil
}

// Remove takes a SCHEDULED or LIVE auction off the marketplace. Terminal.
// The creator or an admin of the community may remove it.
func (m *Machine) Remove(ctx context.Context, auctionID string, actor *auth.Identity) (*models.Auction, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !isCreator(actor, auction) && !actor.IsAdmin(auction.CommunityId) {
		return nil, forbidden("remove this auction")
	}

	now := m.now()
	if err := requireStatus(auction, now, "remove", models.SCHEDULED, models.LIVE); err != nil {
		return nil, err
	}

	auction.Status = models.REMOVED
	auction.UpdatedAt = now
	if err := m.Store.UpdateAuction(ctx, auction); err != nil {
		return nil, fmt.Errorf("failed to remove auction: %w", err)
	}

	m.Metrics.Transition(models.REMOVED)
	m.Logger.Info("auction removed", slog.String("auction_id", auction.Id), slog.String("by", actor.UserId))
	return auction, nil
}
