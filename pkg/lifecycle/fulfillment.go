package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/storage"
)

// Shipment carries the seller's tracking details.
type Shipment struct {
	TrackingNumber string
	Carrier        string
}

// DeliveryResult describes a delivered digital item.
type DeliveryResult struct {
	Fulfillment *models.Fulfillment
	// DownloadURL is empty when the seller never uploaded an asset.
	DownloadURL string
}

// fulfillmentFor returns the auction's fulfillment record, or a new unsaved one.
func (m *Machine) fulfillmentFor(ctx context.Context, auction *models.Auction) (*models.Fulfillment, error) {
	f, err := m.Store.GetFulfillment(ctx, auction.Id)
	if errors.Is(err, storage.ErrNotFound) {
		f = &models.Fulfillment{AuctionId: auction.Id, Kind: auction.Kind}
		if auction.Kind == models.PHYSICAL {
			f.PhysicalState = models.NotShipped
		}
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fulfillment: %w", err)
	}
	return f, nil
}

// MarkShipped records that the seller shipped a paid physical item.
func (m *Machine) MarkShipped(ctx context.Context, auctionID string, actor *auth.Identity, shipment Shipment) (*models.Fulfillment, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(auction, models.PHYSICAL, "ship"); err != nil {
		return nil, err
	}
	if !isCreator(actor, auction) {
		return nil, forbidden("mark this item shipped")
	}
	if err := requireStatus(auction, m.now(), "mark shipped", models.PAID); err != nil {
		return nil, err
	}

	f, err := m.fulfillmentFor(ctx, auction)
	if err != nil {
		return nil, err
	}

	now := m.now()
	f.SellerMarkedShipped = true
	f.PhysicalState = models.Shipped
	f.TrackingNumber = strings.TrimSpace(shipment.TrackingNumber)
	f.Carrier = strings.TrimSpace(shipment.Carrier)
	if f.ShippedAt == nil {
		f.ShippedAt = &now
	}
	f.UpdatedAt = now

	if err := m.Store.SaveFulfillment(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to save fulfillment: %w", err)
	}

	m.copyTracking(ctx, auction, f)
	notify.Emit(ctx, m.Notifier, m.Logger, notify.ItemShipped(auction.CommunityId, auction.Id, auction.Title, auction.WinnerId, f.TrackingNumber))
	return f, nil
}

// copyTracking mirrors the tracking details onto the buyer's ownership record.
// It runs after the fulfillment write, so a failure is logged for retry rather than returned.
func (m *Machine) copyTracking(ctx context.Context, auction *models.Auction, f *models.Fulfillment) {
	item, err := m.loadPurchase(ctx, auction.Id)
	if err == nil {
		item.TrackingNumber = f.TrackingNumber
		item.Carrier = f.Carrier
		item.UpdatedAt = m.now()
		err = m.Store.UpdateBarracksItem(ctx, item)
	}
	if err != nil {
		m.Logger.Error("failed to copy tracking to barracks item, retry required",
			slog.String("auction_id", auction.Id),
			slog.String("tracking_number", f.TrackingNumber),
			slog.Any("error", err),
		)
	}
}

// MarkReceived lets the winner confirm delivery of a shipped physical item. The fulfillment
// record, the auction and the ownership record move to FULFILLED together.
func (m *Machine) MarkReceived(ctx context.Context, auctionID string, actor *auth.Identity) (*models.Fulfillment, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(auction, models.PHYSICAL, "receive"); err != nil {
		return nil, err
	}
	if !isWinner(actor, auction) {
		return nil, forbidden("mark this item received")
	}
	if err := requireStatus(auction, m.now(), "mark received", models.PAID); err != nil {
		return nil, err
	}

	f, err := m.fulfillmentFor(ctx, auction)
	if err != nil {
		return nil, err
	}
	if !f.SellerMarkedShipped {
		return nil, &TransitionError{AuctionId: auction.Id, From: auction.Status, Action: "mark received", Reason: "seller has not shipped the item"}
	}

	item, err := m.loadPurchase(ctx, auction.Id)
	if err != nil {
		return nil, err
	}

	now := m.now()
	f.BuyerMarkedReceived = true
	f.PhysicalState = models.Delivered
	f.ReceivedAt = &now
	f.UpdatedAt = now

	if err := m.complete(ctx, f, auction, item); err != nil {
		return nil, err
	}
	return f, nil
}

// MarkDelivered lets the seller deliver a paid digital item. Access is granted and the
// auction and ownership record move to FULFILLED together.
func (m *Machine) MarkDelivered(ctx context.Context, auctionID string, actor *auth.Identity) (*DeliveryResult, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(auction, models.DIGITAL, "deliver"); err != nil {
		return nil, err
	}
	if !isCreator(actor, auction) {
		return nil, forbidden("deliver this item")
	}
	if err := requireStatus(auction, m.now(), "deliver", models.PAID); err != nil {
		return nil, err
	}

	f, err := m.fulfillmentFor(ctx, auction)
	if err != nil {
		return nil, err
	}
	item, err := m.loadPurchase(ctx, auction.Id)
	if err != nil {
		return nil, err
	}

	now := m.now()
	f.AccessGranted = true
	f.DeliveredAt = &now
	f.UpdatedAt = now

	if err := m.complete(ctx, f, auction, item); err != nil {
		return nil, err
	}

	result := &DeliveryResult{Fulfillment: f}
	if auction.DigitalAssetKey != "" && m.Assets != nil {
		url, err := m.Assets.DownloadURL(ctx, auction.DigitalAssetKey)
		if err != nil {
			m.Logger.Error("failed to presign download", slog.String("auction_id", auction.Id), slog.Any("error", err))
		} else {
			result.DownloadURL = url
		}
	}
	return result, nil
}

func (m *Machine) complete(ctx context.Context, f *models.Fulfillment, auction *models.Auction, item *models.BarracksItem) error {
	now := m.now()
	auction.Status = models.FULFILLED
	auction.UpdatedAt = now
	item.Status = models.BarracksFulfilled
	item.UpdatedAt = now

	if err := m.Store.CompleteFulfillment(ctx, f, auction, item); err != nil {
		return fmt.Errorf("failed to complete fulfillment: %w", err)
	}

	m.Metrics.Transition(models.FULFILLED)
	m.Logger.Info("auction fulfilled", slog.String("auction_id", auction.Id), slog.String("kind", string(auction.Kind)))
	return nil
}

// DownloadURL issues a fresh download link for the winner of a delivered digital item.
func (m *Machine) DownloadURL(ctx context.Context, auctionID string, actor *auth.Identity) (string, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return "", err
	}
	if err := requireKind(auction, models.DIGITAL, "download"); err != nil {
		return "", err
	}
	if !isWinner(actor, auction) {
		return "", forbidden("download this item")
	}
	if err := requireStatus(auction, m.now(), "download", models.FULFILLED); err != nil {
		return "", err
	}
	if auction.DigitalAssetKey == "" || m.Assets == nil {
		return "", fmt.Errorf("auction %s has no digital asset: %w", auction.Id, storage.ErrNotFound)
	}

	url, err := m.Assets.DownloadURL(ctx, auction.DigitalAssetKey)
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return url, nil
}

// SetShippingAddress stores where the buyer wants a physical item sent. It can be changed until the item ships.
func (m *Machine) SetShippingAddress(ctx context.Context, auctionID string, actor *auth.Identity, addr models.ShippingAddress) (*models.BarracksItem, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(auction, models.PHYSICAL, "ship"); err != nil {
		return nil, err
	}
	item, err := m.loadPurchase(ctx, auction.Id)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.UserId != item.OwnerId {
		return nil, forbidden("set the shipping address")
	}
	if item.Status != models.BarracksPendingPayment && item.Status != models.BarracksPaid {
		return nil, &TransitionError{AuctionId: auction.Id, From: auction.Status, Action: "change the shipping address of"}
	}
	f, err := m.fulfillmentFor(ctx, auction)
	if err != nil {
		return nil, err
	}
	if f.SellerMarkedShipped {
		return nil, &TransitionError{AuctionId: auction.Id, From: auction.Status, Action: "change the shipping address of", Reason: "item has shipped"}
	}
	if strings.TrimSpace(addr.Name) == "" || strings.TrimSpace(addr.Line1) == "" || strings.TrimSpace(addr.City) == "" ||
		strings.TrimSpace(addr.PostalCode) == "" || strings.TrimSpace(addr.Country) == "" {
		return nil, invalid("name, line1, city, postal code and country are required")
	}

	item.ShippingAddress = &addr
	item.UpdatedAt = m.now()
	if err := m.Store.UpdateBarracksItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save shipping address: %w", err)
	}
	return item, nil
}
