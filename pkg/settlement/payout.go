package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/bidding-wars/pkg/metrics"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/payments"
	"github.com/chris/bidding-wars/pkg/storage"
)

// Disburser is the part of the payment platform payouts need.
type Disburser interface {
	payments.Ledger
	payments.Communities
}

// legOrder fixes the order in which legs are paid.
var legOrder = []models.PayoutRole{models.RoleSeller, models.RoleCommunityOwner}

// PayoutExecutor disburses the split of a settled auction.
type PayoutExecutor struct {
	Store    storage.SettlementStore
	Platform Disburser
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewPayoutExecutor creates a new PayoutExecutor.
func NewPayoutExecutor(store storage.SettlementStore, platform Disburser, m *metrics.Metrics, logger *slog.Logger) *PayoutExecutor {
	return &PayoutExecutor{Store: store, Platform: platform, Metrics: m, Logger: logger}
}

// IdempotencyKey identifies the transfer to one recipient role of one auction across retries.
func IdempotencyKey(auctionID string, role models.PayoutRole) string {
	return fmt.Sprintf("%s:%s", auctionID, role)
}

// payoutBlocked reports whether a sale was reversed after settling, so nothing may be paid out for it.
func payoutBlocked(status models.AuctionStatus) bool {
	return status == models.DISPUTED || status == models.REFUNDED
}

// Execute pays every leg of the auction's settlement that has not succeeded yet.
// The first run computes and stores the legs; later runs reuse them, so amounts and
// idempotency keys never change between retries. If any leg fails the settlement is
// recorded FAILED and ErrPayoutIncomplete is returned. Nothing is paid once the sale is
// disputed or refunded.
func (e *PayoutExecutor) Execute(ctx context.Context, auctionID string) (*models.Settlement, error) {
	settlement, err := e.Store.GetSettlement(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlement: %w", err)
	}
	if settlement.PayoutStatus == models.PayoutCompleted {
		return settlement, nil
	}

	auction, err := e.Store.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auction for payout: %w", err)
	}
	if payoutBlocked(auction.Status) {
		e.Logger.Warn("payout skipped for reversed sale",
			slog.String("auction_id", auctionID),
			slog.String("auction_status", string(auction.Status)),
			slog.String("payout_status", string(settlement.PayoutStatus)),
		)
		return settlement, nil
	}

	account, err := e.Platform.GetLedgerAccount(ctx, auction.CommunityId)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger account for community %s: %w", auction.CommunityId, err)
	}

	if len(settlement.Legs) == 0 {
		settlement, err = e.plan(ctx, settlement, auction, account)
		if err != nil {
			return nil, err
		}
	}

	for _, role := range legOrder {
		leg, ok := settlement.Legs[role]
		if !ok || leg.Status == models.LegSucceeded {
			continue
		}
		e.pay(ctx, settlement, account, leg)
		if err := e.Store.SavePayoutLeg(ctx, auctionID, leg); err != nil {
			// The transfer is keyed, so the next run can safely resend it.
			return nil, fmt.Errorf("failed to record %s payout leg: %w", role, err)
		}
	}

	settlement.PayoutStatus = models.PayoutCompleted
	for _, leg := range settlement.Legs {
		if leg.Status != models.LegSucceeded {
			settlement.PayoutStatus = models.PayoutFailed
		}
	}

	if err := e.Store.FinishPayout(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to record payout status: %w", err)
	}

	if settlement.PayoutStatus == models.PayoutFailed {
		e.Logger.Warn("payout incomplete", slog.String("auction_id", auctionID))
		return settlement, fmt.Errorf("%w: auction %s", ErrPayoutIncomplete, auctionID)
	}

	e.Logger.Info("payout completed", slog.String("auction_id", auctionID))
	return settlement, nil
}

// plan computes the legs for the first payout run and stores them. If another run stored a plan
// first, that plan wins.
func (e *PayoutExecutor) plan(ctx context.Context, settlement *models.Settlement, auction *models.Auction, account *payments.LedgerAccount) (*models.Settlement, error) {
	ownerID := e.communityOwner(ctx, auction)

	// Shipping is passed through to the seller; only the item price is split.
	shipping := auction.ShippingCostCents
	if shipping < 0 || shipping > settlement.AmountCents {
		shipping = 0
	}
	itemCents := settlement.AmountCents - shipping
	split := ToCents(FeeScheduleFor(auction).Calculate(FromCents(itemCents)), itemCents)

	settlement.PlatformFeeCents = split.PlatformFeeCents
	settlement.TransferFeeCents = account.TransferFeeCents
	settlement.Legs = map[models.PayoutRole]*models.PayoutLeg{
		models.RoleSeller:         newLeg(auction.Id, models.RoleSeller, auction.CreatorId, split.SellerCents+shipping),
		models.RoleCommunityOwner: newLeg(auction.Id, models.RoleCommunityOwner, ownerID, split.CommunityOwnerCents),
	}

	err := e.Store.SavePayoutPlan(ctx, settlement)
	if errors.Is(err, storage.ErrAlreadyExists) {
		existing, err := e.Store.GetSettlement(ctx, settlement.AuctionId)
		if err != nil {
			return nil, fmt.Errorf("failed to reload settlement: %w", err)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save payout plan: %w", err)
	}
	return settlement, nil
}

// communityOwner resolves who receives the community share, falling back to the seller.
func (e *PayoutExecutor) communityOwner(ctx context.Context, auction *models.Auction) string {
	ownerID, err := e.Platform.GetCommunityOwner(ctx, auction.CommunityId)
	if err != nil || ownerID == "" {
		e.Logger.Warn("community owner unresolved, paying community share to seller",
			slog.String("auction_id", auction.Id),
			slog.String("community_id", auction.CommunityId),
			slog.Any("error", err),
		)
		return auction.CreatorId
	}
	return ownerID
}

// pay issues one transfer and records its outcome on leg.
func (e *PayoutExecutor) pay(ctx context.Context, settlement *models.Settlement, account *payments.LedgerAccount, leg *models.PayoutLeg) {
	if leg.AmountCents <= 0 {
		leg.Status = models.LegSucceeded
		leg.FailureReason = ""
		e.Metrics.PayoutLeg(leg.Role, leg.Status)
		return
	}

	leg.Attempts++
	ref, err := e.Platform.PayUser(ctx, payments.PayoutRequest{
		LedgerAccountId: account.Id,
		RecipientId:     leg.RecipientId,
		AmountCents:     leg.AmountCents,
		Currency:        settlement.Currency,
		IdempotencyKey:  leg.IdempotencyKey,
		Notes:           fmt.Sprintf("Auction %s %s payout", settlement.AuctionId, leg.Role),
	})
	if err != nil {
		e.Logger.Error("payout leg failed",
			slog.String("auction_id", settlement.AuctionId),
			slog.String("role", string(leg.Role)),
			slog.Int64("attempts", leg.Attempts),
			slog.Any("error", err),
		)
		leg.Status = models.LegFailed
		leg.FailureReason = err.Error()
	} else {
		leg.Status = models.LegSucceeded
		leg.PayoutRef = ref
		leg.FailureReason = ""
	}
	e.Metrics.PayoutLeg(leg.Role, leg.Status)
}

func newLeg(auctionID string, role models.PayoutRole, recipientID string, amountCents int64) *models.PayoutLeg {
	return &models.PayoutLeg{
		Role:           role,
		RecipientId:    recipientID,
		AmountCents:    amountCents,
		Status:         models.LegPending,
		IdempotencyKey: IdempotencyKey(auctionID, role),
	}
}
