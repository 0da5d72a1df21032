package lifecycle

import (
	"context"
	"fmt"

	"github.com/chris/bidding-wars/pkg/models"
)

// GetAuction returns an auction with its effective status.
func (m *Machine) GetAuction(ctx context.Context, auctionID string) (*models.Auction, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	auction.Status = auction.EffectiveStatus(m.now())
	return auction, nil
}

// ListMarketplace returns a community's auctions, newest first, with removed auctions left out.
func (m *Machine) ListMarketplace(ctx context.Context, communityID string) ([]models.Auction, error) {
	all, err := m.Store.ListAuctionsByCommunity(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}

	now := m.now()
	listed := make([]models.Auction, 0, len(all))
	for _, a := range all {
		if a.Status == models.REMOVED {
			continue
		}
		a.Status = a.EffectiveStatus(now)
		listed = append(listed, a)
	}
	return listed, nil
}
