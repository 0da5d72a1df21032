package bidding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/bidding-wars/pkg/metrics"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/storage"
	"github.com/chris/bidding-wars/pkg/websockets"
	"github.com/google/uuid"
)

const DefaultMaxAttempts = 5

// OutbidEvent is emitted when an accepted bid displaces another bidder.
type OutbidEvent struct {
	AuctionId        string
	CommunityId      string
	Title            string
	PreviousBidderId string
	NewBidderId      string
	AmountCents      int64
}

// BidResult describes an accepted bid.
type BidResult struct {
	Bid                *models.Bid
	NextMinAmountCents int64
	EndsAt             time.Time
	// Extended reports whether the bid moved the end time.
	Extended bool
	Outbid   *OutbidEvent
}

// Validator accepts or rejects bids and applies the anti-snipe extension.
type Validator struct {
	Store    storage.BiddingStore
	Notifier notify.Dispatcher
	// Feed, when set, receives a live update for every accepted bid.
	Feed        websockets.Publisher
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	MaxAttempts int
	Now         func() time.Time
	NewID       func() string
}

// NewValidator creates a new Validator.
func NewValidator(store storage.BiddingStore, notifier notify.Dispatcher, m *metrics.Metrics, logger *slog.Logger, maxAttempts int) *Validator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Validator{
		Store:       store,
		Notifier:    notifier,
		Metrics:     m,
		Logger:      logger,
		MaxAttempts: maxAttempts,
		Now:         time.Now,
		NewID:       func() string { return uuid.New().String() },
	}
}

// PlaceBid validates and records a bid. A bid that loses the write to a concurrent bid
// is validated again against the fresh state, so of two equal racing bids one is accepted
// and the other is rejected as TOO_LOW.
func (v *Validator) PlaceBid(ctx context.Context, auctionID, bidderID string, amountCents int64) (*BidResult, error) {
	var err error
	for attempt := 1; attempt <= v.MaxAttempts; attempt++ {
		var result *BidResult
		result, err = v.tryPlaceBid(ctx, auctionID, bidderID, amountCents)
		if errors.Is(err, storage.ErrConcurrentUpdate) {
			v.Metrics.BidConflict()
			v.Logger.Debug("bid lost a concurrent update, retrying",
				slog.String("auction_id", auctionID),
				slog.Int("attempt", attempt),
			)
			continue
		}

		var rejection *Rejection
		if errors.As(err, &rejection) {
			v.Metrics.BidRejected(string(rejection.Reason))
			return nil, err
		}
		if err != nil {
			return nil, err
		}

		v.Metrics.BidAccepted()
		websockets.Broadcast(ctx, v.Feed, v.Logger, websockets.BidPlaced(auctionID, websockets.BidPlacedPayload{
			BidId:              result.Bid.Id,
			BidderId:           result.Bid.BidderId,
			AmountCents:        result.Bid.AmountCents,
			NextMinAmountCents: result.NextMinAmountCents,
			EndsAt:             result.EndsAt,
			Extended:           result.Extended,
		}))
		if result.Outbid != nil {
			notify.Emit(ctx, v.Notifier, v.Logger, notify.Outbid(
				result.Outbid.CommunityId, result.Outbid.AuctionId, result.Outbid.Title,
				result.Outbid.PreviousBidderId, result.Outbid.AmountCents,
			))
		}
		return result, nil
	}

	// Every attempt lost to a concurrent bid. A bid the latest state no longer accepts is
	// rejected with the fresh minimum instead of surfacing the conflict.
	if rejection := v.recheck(ctx, auctionID, amountCents); rejection != nil {
		v.Metrics.BidRejected(string(rejection.Reason))
		return nil, rejection
	}
	return nil, fmt.Errorf("failed to place bid after %d attempts: %w", v.MaxAttempts, err)
}

// recheck compares a bid against the latest stored top bid without writing anything.
func (v *Validator) recheck(ctx context.Context, auctionID string, amountCents int64) *Rejection {
	auction, err := v.Store.GetAuction(ctx, auctionID)
	if err != nil {
		return nil
	}
	top, err := v.Store.GetTopBid(ctx, auctionID)
	if err != nil {
		return nil
	}
	currentTop, _ := currentTop(auction, top)
	nextMin := currentTop + auction.MinIncrementCents
	switch {
	case amountCents <= currentTop:
		return &Rejection{Reason: ReasonTooLow, NextMinAmountCents: nextMin, Message: "bid must beat the current price"}
	case amountCents < nextMin:
		return &Rejection{Reason: ReasonBelowMinIncrement, NextMinAmountCents: nextMin, Message: "bid is below the minimum increment"}
	}
	return nil
}

func (v *Validator) tryPlaceBid(ctx context.Context, auctionID, bidderID string, amountCents int64) (*BidResult, error) {
	auction, err := v.Store.GetAuction(ctx, auctionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, reject(ReasonNotFound, "auction does not exist")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load auction: %w", err)
	}

	now := v.Now().UTC()
	if status := auction.EffectiveStatus(now); status != models.LIVE {
		return nil, reject(ReasonNotLive, fmt.Sprintf("auction is %s", status))
	}
	if auction.HasEnded(now) {
		return nil, reject(ReasonEnded, "auction has ended")
	}
	if amountCents <= 0 {
		return nil, reject(ReasonInvalidAmount, "amount must be positive")
	}

	top, err := v.Store.GetTopBid(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load top bid: %w", err)
	}
	currentTop, previousBidder := currentTop(auction, top)
	nextMin := currentTop + auction.MinIncrementCents

	if amountCents <= currentTop {
		return nil, &Rejection{Reason: ReasonTooLow, NextMinAmountCents: nextMin, Message: "bid must beat the current price"}
	}
	if amountCents < nextMin {
		return nil, &Rejection{Reason: ReasonBelowMinIncrement, NextMinAmountCents: nextMin, Message: "bid is below the minimum increment"}
	}

	bid := &models.Bid{
		Id:          v.NewID(),
		AuctionId:   auctionID,
		BidderId:    bidderID,
		AmountCents: amountCents,
		CreatedAt:   now,
	}

	next := *auction
	next.Status = models.LIVE
	next.CurrentBidId = bid.Id
	next.CurrentBidderId = bidderID
	next.TopBidAmountCents = amountCents
	next.BidCount = auction.BidCount + 1
	next.UpdatedAt = now

	extended := false
	window := time.Duration(auction.AntiSnipeSeconds) * time.Second
	if window > 0 && auction.EndsAt.Sub(now) <= window {
		next.EndsAt = now.Add(window)
		extended = true
	}

	if err := v.Store.PlaceBid(ctx, &next, bid); err != nil {
		if errors.Is(err, storage.ErrConcurrentUpdate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save bid: %w", err)
	}

	v.Logger.Info("bid accepted",
		slog.String("auction_id", auctionID),
		slog.String("bid_id", bid.Id),
		slog.Int64("amount_cents", amountCents),
		slog.Bool("extended", extended),
	)

	result := &BidResult{
		Bid:                bid,
		NextMinAmountCents: amountCents + auction.MinIncrementCents,
		EndsAt:             next.EndsAt,
		Extended:           extended,
	}
	if previousBidder != "" && previousBidder != bidderID {
		result.Outbid = &OutbidEvent{
			AuctionId:        auctionID,
			CommunityId:      auction.CommunityId,
			Title:            auction.Title,
			PreviousBidderId: previousBidder,
			NewBidderId:      bidderID,
			AmountCents:      amountCents,
		}
	}
	return result, nil
}

// currentTop derives the price to beat from the bid index and the auction's cache.
// The index may lag behind the last accepted bid; the cache is written with it.
// With no bids the start price is the price to beat.
func currentTop(auction *models.Auction, top *models.Bid) (int64, string) {
	amount, bidder := int64(0), ""
	if top != nil {
		amount, bidder = top.AmountCents, top.BidderId
	}
	if auction.BidCount > 0 && auction.TopBidAmountCents >= amount {
		amount, bidder = auction.TopBidAmountCents, auction.CurrentBidderId
	}
	if top == nil && auction.BidCount == 0 {
		return auction.StartPriceCents, ""
	}
	return amount, bidder
}

// NextMinBid is the smallest bid the auction's cached state would accept.
func NextMinBid(auction *models.Auction) int64 {
	top, _ := currentTop(auction, nil)
	return top + auction.MinIncrementCents
}

// History returns an auction's bids, highest first.
func (v *Validator) History(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error) {
	if _, err := v.Store.GetAuction(ctx, auctionID); err != nil {
		return nil, fmt.Errorf("failed to load auction: %w", err)
	}
	bids, err := v.Store.ListBids(ctx, auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}
