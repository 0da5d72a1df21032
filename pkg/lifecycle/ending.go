package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/payments"
	"github.com/chris/bidding-wars/pkg/storage"
	"github.com/google/uuid"
)

// AuctionWonEvent is emitted when an auction ends with a winner.
type AuctionWonEvent struct {
	AuctionId   string
	CommunityId string
	Title       string
	WinnerId    string
	AmountCents int64
}

// EndResult describes an ended auction.
type EndResult struct {
	Auction *models.Auction
	// Won is nil when the auction ended without bids.
	Won *AuctionWonEvent
}

// PurchaseResult describes a purchase awaiting payment.
type PurchaseResult struct {
	Auction     *models.Auction
	Item        *models.BarracksItem
	CheckoutURL string
}

// EndAuction moves a LIVE auction to ENDED and records the top bidder as winner.
// A nil actor is the scheduler, which may only end an auction whose end time has passed.
// Otherwise only the creator may end the auction, early if they choose.
func (m *Machine) EndAuction(ctx context.Context, auctionID string, actor *auth.Identity) (*EndResult, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	if actor != nil && !isCreator(actor, auction) {
		return nil, forbidden("end this auction")
	}
	if err := requireStatus(auction, now, "end", models.LIVE); err != nil {
		return nil, err
	}
	if actor == nil && !auction.HasEnded(now) {
		return nil, &TransitionError{AuctionId: auction.Id, From: models.LIVE, Action: "end", Reason: "end time has not passed"}
	}

	indexed, err := m.Store.GetTopBid(ctx, auction.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to load top bid: %w", err)
	}
	bidID, winnerID, amount := topBid(auction, indexed)

	auction.Status = models.ENDED
	if now.Before(auction.EndsAt) {
		auction.EndsAt = now
	}
	if winnerID != "" {
		auction.WinnerId = winnerID
		auction.WinningBidId = bidID
		auction.CurrentBidId = bidID
		auction.CurrentBidderId = winnerID
		auction.TopBidAmountCents = amount
	}
	auction.UpdatedAt = now

	if err := m.Store.UpdateAuction(ctx, auction); err != nil {
		return nil, fmt.Errorf("failed to end auction: %w", err)
	}

	m.Metrics.Transition(models.ENDED)
	m.Logger.Info("auction ended",
		slog.String("auction_id", auction.Id),
		slog.String("winner_id", auction.WinnerId),
		slog.Int64("amount_cents", amount),
	)

	m.announceClosed(ctx, auction)
	result := &EndResult{Auction: auction}
	if winnerID != "" {
		result.Won = &AuctionWonEvent{
			AuctionId:   auction.Id,
			CommunityId: auction.CommunityId,
			Title:       auction.Title,
			WinnerId:    winnerID,
			AmountCents: amount,
		}
		notify.Emit(ctx, m.Notifier, m.Logger, notify.AuctionWon(auction.CommunityId, auction.Id, auction.Title, winnerID, amount))
	}
	return result, nil
}

// InitiateWinnerCharge bills the winner of an ENDED auction for the winning amount plus shipping
// and moves the auction to PENDING_PAYMENT together with a new ownership record.
func (m *Machine) InitiateWinnerCharge(ctx context.Context, auctionID string) (*PurchaseResult, error) {
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(auction, m.now(), "charge the winner of", models.ENDED); err != nil {
		return nil, err
	}
	if auction.WinnerId == "" {
		return nil, &TransitionError{AuctionId: auction.Id, From: models.ENDED, Action: "charge the winner of", Reason: "auction has no winner"}
	}

	return m.openPurchase(ctx, auction, auction.WinnerId, auction.TopBidAmountCents, models.SourceAuctionWin)
}

// BuyNow sells a LIVE auction to the caller at its buy-now price, skipping ENDED.
func (m *Machine) BuyNow(ctx context.Context, auctionID string, buyer *auth.Identity) (*PurchaseResult, error) {
	if buyer == nil || buyer.UserId == "" {
		return nil, forbidden("buy now")
	}
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	if err := requireStatus(auction, now, "buy now", models.LIVE); err != nil {
		return nil, err
	}
	if auction.HasEnded(now) {
		return nil, &TransitionError{AuctionId: auction.Id, From: models.LIVE, Action: "buy now", Reason: "auction has ended"}
	}
	if isCreator(buyer, auction) {
		return nil, forbidden("buy their own auction")
	}
	if auction.BuyNowPriceCents == nil {
		return nil, invalid("auction does not offer buy now")
	}
	price := *auction.BuyNowPriceCents
	if auction.BidCount > 0 && auction.TopBidAmountCents >= price {
		return nil, invalid("bidding has reached the buy now price")
	}

	auction.WinnerId = buyer.UserId
	auction.WinningBidId = ""
	auction.EndsAt = now
	result, err := m.openPurchase(ctx, auction, buyer.UserId, price, models.SourceBuyNow)
	if err != nil {
		return nil, err
	}
	m.announceClosed(ctx, result.Auction)
	return result, nil
}

// openPurchase creates the charge first, then writes the ownership record and the
// PENDING_PAYMENT auction in one transaction.
func (m *Machine) openPurchase(ctx context.Context, auction *models.Auction, buyerID string, priceCents int64, source models.PurchaseSource) (*PurchaseResult, error) {
	now := m.now()
	total := priceCents
	if auction.Kind == models.PHYSICAL {
		total += auction.ShippingCostCents
	}
	key := PurchaseKey(auction.Id, buyerID, source)
	itemID := purchaseItemID(key)

	charge, err := m.Payments.CreateCharge(ctx, payments.ChargeRequest{
		IdempotencyKey: key,
		UserId:         buyerID,
		CommunityId:    auction.CommunityId,
		AmountCents:    total,
		Currency:       auction.Currency,
		Description:    auction.Title,
		Metadata: map[string]string{
			"auction_id":       auction.Id,
			"barracks_item_id": itemID,
			"source":           string(source),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create charge: %w", err)
	}

	item := &models.BarracksItem{
		Id:          itemID,
		AuctionId:   auction.Id,
		OwnerId:     buyerID,
		ChargeRef:   charge.Id,
		CheckoutURL: charge.CheckoutURL,
		Source:      source,
		Status:      models.BarracksPendingPayment,
		AmountCents: total,
		Currency:    auction.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	auction.Status = models.PENDING_PAYMENT
	auction.UpdatedAt = now

	if err := m.Store.OpenPurchase(ctx, auction, item); err != nil {
		if errors.Is(err, storage.ErrConcurrentUpdate) {
			// The charge is keyed by the purchase, so the run that won the write recorded this same charge.
			m.Logger.Warn("purchase already opened by a concurrent run",
				slog.String("auction_id", auction.Id),
				slog.String("charge_ref", charge.Id),
			)
			return nil, fmt.Errorf("failed to record purchase: %w", err)
		}
		m.Logger.Error("CRITICAL: charge created but purchase not recorded",
			slog.String("auction_id", auction.Id),
			slog.String("buyer_id", buyerID),
			slog.String("charge_ref", charge.Id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	m.Metrics.Transition(models.PENDING_PAYMENT)
	m.Logger.Info("purchase opened",
		slog.String("auction_id", auction.Id),
		slog.String("barracks_item_id", item.Id),
		slog.String("source", string(source)),
		slog.Int64("amount_cents", total),
	)
	if source == models.SourceAuctionWin && charge.CheckoutURL != "" {
		notify.Emit(ctx, m.Notifier, m.Logger, notify.CheckoutReady(auction.CommunityId, auction.Id, auction.Title, buyerID, total, charge.CheckoutURL))
	}
	return &PurchaseResult{Auction: auction, Item: item, CheckoutURL: charge.CheckoutURL}, nil
}

// PurchaseKey identifies one buyer's purchase of an auction. Every charge attempt for the
// same purchase carries it, so the platform bills the buyer once.
func PurchaseKey(auctionID, buyerID string, source models.PurchaseSource) string {
	return fmt.Sprintf("purchase:%s:%s:%s", auctionID, buyerID, source)
}

func purchaseItemID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// BatchResult counts the outcomes of a scheduled sweep.
type BatchResult struct {
	Processed int
	Failed    int
}

// EndDue ends every auction whose end time has passed and charges the winners.
// Each auction is handled independently; the returned error joins the failures.
func (m *Machine) EndDue(ctx context.Context, limit int32) (*BatchResult, error) {
	now := m.now()
	batch := &BatchResult{}
	var errs []error

	// A scheduled auction nobody bid on is still stored as SCHEDULED.
	for _, status := range []models.AuctionStatus{models.LIVE, models.SCHEDULED} {
		due, err := m.Store.ListAuctionsDue(ctx, status, now, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list due auctions: %w", err)
		}
		for _, a := range due {
			ended, err := m.EndAuction(ctx, a.Id, nil)
			if err != nil {
				m.Logger.Error("failed to end auction", slog.String("auction_id", a.Id), slog.Any("error", err))
				batch.Failed++
				errs = append(errs, err)
				continue
			}
			batch.Processed++
			if ended.Won == nil {
				continue
			}
			if _, err := m.InitiateWinnerCharge(ctx, a.Id); err != nil {
				// ChargeWinners retries on the next tick.
				m.Logger.Error("failed to charge winner", slog.String("auction_id", a.Id), slog.Any("error", err))
				errs = append(errs, err)
			}
		}
	}

	return batch, errors.Join(errs...)
}

// ChargeWinners retries the charge for ENDED auctions whose winner has not been billed yet.
func (m *Machine) ChargeWinners(ctx context.Context, limit int32) (*BatchResult, error) {
	pending, err := m.Store.ListAuctionsAwaitingCharge(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions awaiting charge: %w", err)
	}

	batch := &BatchResult{}
	var errs []error
	for _, a := range pending {
		if _, err := m.InitiateWinnerCharge(ctx, a.Id); err != nil {
			m.Logger.Error("failed to charge winner", slog.String("auction_id", a.Id), slog.Any("error", err))
			batch.Failed++
			errs = append(errs, err)
			continue
		}
		batch.Processed++
	}
	return batch, errors.Join(errs...)
}
