package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/bidding-wars/pkg/metrics"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/payments"
	"github.com/chris/bidding-wars/pkg/scheduler"
	"github.com/chris/bidding-wars/pkg/storage"
)

// Outcome is the result of reconciling one ownership record.
type Outcome string

const (
	// OutcomeConfirmed means this run confirmed the payment.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeAlreadyPaid means the record was already confirmed, by an earlier or a concurrent run.
	OutcomeAlreadyPaid Outcome = "already_paid"
	// OutcomeNotYetPaid means no successful payment exists yet. It is not an error.
	OutcomeNotYetPaid Outcome = "not_yet_paid"
)

const DefaultLookupTimeout = 10 * time.Second

// PaymentConfirmedEvent is emitted once per confirmed purchase.
type PaymentConfirmedEvent struct {
	AuctionId   string
	CommunityId string
	Title       string
	BuyerId     string
	SellerId    string
	AmountCents int64
}

// ReconcileResult describes what a reconciliation run found and did.
type ReconcileResult struct {
	Outcome    Outcome
	Item       *models.BarracksItem
	Settlement *models.Settlement
	// Event is set only when this run confirmed the payment.
	Event *PaymentConfirmedEvent
}

// BatchResult counts the outcomes of a ReconcilePending run.
type BatchResult struct {
	Confirmed   int
	AlreadyPaid int
	NotYetPaid  int
	Failed      int
}

// Reconciler confirms pending purchases against the payment platform.
type Reconciler struct {
	Store    storage.SettlementStore
	Payments payments.PaymentLookup
	// Payouts, when set, receives a payout job for every settlement this reconciler creates.
	Payouts       scheduler.PayoutScheduler
	Notifier      notify.Dispatcher
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	LookupTimeout time.Duration
	Now           func() time.Time
}

// NewReconciler creates a new Reconciler.
func NewReconciler(store storage.SettlementStore, lookup payments.PaymentLookup, payouts scheduler.PayoutScheduler, notifier notify.Dispatcher, m *metrics.Metrics, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		Store:         store,
		Payments:      lookup,
		Payouts:       payouts,
		Notifier:      notifier,
		Metrics:       m,
		Logger:        logger,
		LookupTimeout: DefaultLookupTimeout,
		Now:           time.Now,
	}
}

// Reconcile confirms the payment of one ownership record.
// Running it again for a confirmed record is safe: it only completes a missing settlement record.
func (r *Reconciler) Reconcile(ctx context.Context, barracksItemID string) (*ReconcileResult, error) {
	item, err := r.Store.GetBarracksItem(ctx, barracksItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load barracks item: %w", err)
	}

	if item.Status != models.BarracksPendingPayment {
		return r.alreadyPaid(ctx, item)
	}

	auction, err := r.Store.GetAuction(ctx, item.AuctionId)
	if err != nil {
		return nil, fmt.Errorf("failed to load auction for barracks item %s: %w", item.Id, err)
	}

	payment, err := r.findPayment(ctx, item)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		r.Metrics.Reconciled(string(OutcomeNotYetPaid))
		return &ReconcileResult{Outcome: OutcomeNotYetPaid, Item: item}, nil
	}

	paidAt := payment.PaidAt.UTC()
	now := r.Now().UTC()
	item.Status = models.BarracksPaid
	item.PaidAt = &paidAt
	item.PaymentId = payment.Id
	settlement := newSettlement(item, now)

	err = r.Store.ConfirmPayment(ctx, auction, item, settlement)
	if errors.Is(err, storage.ErrAlreadyProcessed) {
		r.Logger.Info("payment confirmed by a concurrent run", slog.String("barracks_item_id", item.Id))
		fresh, err := r.Store.GetBarracksItem(ctx, barracksItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload barracks item: %w", err)
		}
		if fresh.Status == models.BarracksPendingPayment {
			return nil, fmt.Errorf("failed to confirm payment for barracks item %s: auction %s is not awaiting payment", item.Id, auction.Id)
		}
		return r.alreadyPaid(ctx, fresh)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to confirm payment for barracks item %s: %w", item.Id, err)
	}

	r.Logger.Info("payment confirmed",
		slog.String("barracks_item_id", item.Id),
		slog.String("auction_id", auction.Id),
		slog.String("payment_id", payment.Id),
	)
	r.Metrics.Reconciled(string(OutcomeConfirmed))
	r.Metrics.Transition(models.PAID)

	event := &PaymentConfirmedEvent{
		AuctionId:   auction.Id,
		CommunityId: auction.CommunityId,
		Title:       auction.Title,
		BuyerId:     item.OwnerId,
		SellerId:    auction.CreatorId,
		AmountCents: item.AmountCents,
	}
	notify.Emit(ctx, r.Notifier, r.Logger, notify.PaymentConfirmed(event.CommunityId, event.AuctionId, event.Title, event.BuyerId))
	notify.Emit(ctx, r.Notifier, r.Logger, notify.PaymentConfirmed(event.CommunityId, event.AuctionId, event.Title, event.SellerId))
	r.schedulePayout(ctx, auction.Id)

	return &ReconcileResult{Outcome: OutcomeConfirmed, Item: item, Settlement: settlement, Event: event}, nil
}

// alreadyPaid handles a record that is past PENDING_PAYMENT. If an earlier run stopped before the
// settlement record was written, it is created here and the payout is scheduled.
func (r *Reconciler) alreadyPaid(ctx context.Context, item *models.BarracksItem) (*ReconcileResult, error) {
	result := &ReconcileResult{Outcome: OutcomeAlreadyPaid, Item: item}
	r.Metrics.Reconciled(string(OutcomeAlreadyPaid))

	// Disputed and refunded purchases must never gain a settlement and the payout that follows it.
	if item.Status != models.BarracksPaid && item.Status != models.BarracksFulfilled {
		return result, nil
	}

	settlement, err := r.Store.GetSettlement(ctx, item.AuctionId)
	if err == nil {
		result.Settlement = settlement
		return result, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load settlement for auction %s: %w", item.AuctionId, err)
	}
	if item.PaidAt == nil {
		return nil, fmt.Errorf("barracks item %s is %s without a paid_at timestamp", item.Id, item.Status)
	}

	settlement = newSettlement(item, r.Now().UTC())
	if err := r.Store.CreateSettlement(ctx, settlement); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			existing, err := r.Store.GetSettlement(ctx, item.AuctionId)
			if err != nil {
				return nil, fmt.Errorf("failed to load settlement for auction %s: %w", item.AuctionId, err)
			}
			result.Settlement = existing
			return result, nil
		}
		return nil, fmt.Errorf("failed to complete settlement for auction %s: %w", item.AuctionId, err)
	}

	r.Logger.Warn("completed missing settlement record",
		slog.String("barracks_item_id", item.Id),
		slog.String("auction_id", item.AuctionId),
	)
	r.schedulePayout(ctx, item.AuctionId)
	result.Settlement = settlement
	return result, nil
}

// findPayment returns the single successful payment for the record's charge, or nil if there is none yet.
func (r *Reconciler) findPayment(ctx context.Context, item *models.BarracksItem) (*payments.Payment, error) {
	timeout := r.LookupTimeout
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	lookupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	found, err := r.Payments.ListPayments(lookupCtx, payments.PaymentQuery{ChargeRef: item.ChargeRef, UserId: item.OwnerId})
	if err != nil {
		return nil, fmt.Errorf("%w: barracks item %s: %w", ErrPaymentLookup, item.Id, err)
	}

	var successful []payments.Payment
	for _, p := range found {
		if p.Succeeded() {
			successful = append(successful, p)
		}
	}

	switch len(successful) {
	case 0:
		return nil, nil
	case 1:
		return &successful[0], nil
	default:
		r.Logger.Error("CRITICAL: multiple successful payments for one charge",
			slog.String("barracks_item_id", item.Id),
			slog.String("charge_ref", item.ChargeRef),
			slog.Int("payments", len(successful)),
		)
		return nil, fmt.Errorf("%w: barracks item %s has %d", ErrAmbiguousPayment, item.Id, len(successful))
	}
}

func (r *Reconciler) schedulePayout(ctx context.Context, auctionID string) {
	if r.Payouts == nil {
		return
	}
	if err := r.Payouts.SchedulePayout(ctx, auctionID, 0); err != nil {
		// The stalled payout sweep picks the settlement up later.
		r.Logger.Error("failed to schedule payout",
			slog.String("auction_id", auctionID),
			slog.Any("error", err),
		)
	}
}

// ReconcilePending reconciles up to limit records awaiting payment. Each record is handled
// independently; the returned error joins every per-record failure.
func (r *Reconciler) ReconcilePending(ctx context.Context, limit int32) (*BatchResult, error) {
	items, err := r.Store.ListBarracksItemsByStatus(ctx, models.BarracksPendingPayment, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending barracks items: %w", err)
	}

	batch := &BatchResult{}
	var errs []error
	for _, item := range items {
		result, err := r.Reconcile(ctx, item.Id)
		if err != nil {
			r.Logger.Error("failed to reconcile barracks item",
				slog.String("barracks_item_id", item.Id),
				slog.Any("error", err),
			)
			batch.Failed++
			errs = append(errs, err)
			continue
		}
		switch result.Outcome {
		case OutcomeConfirmed:
			batch.Confirmed++
		case OutcomeAlreadyPaid:
			batch.AlreadyPaid++
		case OutcomeNotYetPaid:
			batch.NotYetPaid++
		}
	}

	return batch, errors.Join(errs...)
}

// RequeueStalledPayouts schedules another payout run for settlements whose payout has not completed
// within maxAge. It returns how many were re-enqueued.
func (r *Reconciler) RequeueStalledPayouts(ctx context.Context, maxAge time.Duration, limit int32) (int, error) {
	if r.Payouts == nil {
		return 0, errors.New("no payout scheduler configured")
	}

	stalled, err := r.Store.ListStalledPayouts(ctx, maxAge, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list stalled payouts: %w", err)
	}

	requeued := 0
	for _, s := range stalled {
		auction, err := r.Store.GetAuction(ctx, s.AuctionId)
		if err != nil {
			r.Logger.Error("failed to load auction for stalled payout",
				slog.String("auction_id", s.AuctionId),
				slog.Any("error", err),
			)
			continue
		}
		if payoutBlocked(auction.Status) {
			continue
		}
		if err := r.Payouts.SchedulePayout(ctx, s.AuctionId, 0); err != nil {
			r.Logger.Error("failed to re-enqueue payout",
				slog.String("auction_id", s.AuctionId),
				slog.Any("error", err),
			)
			continue
		}
		requeued++
	}
	return requeued, nil
}

func newSettlement(item *models.BarracksItem, now time.Time) *models.Settlement {
	return &models.Settlement{
		AuctionId:      item.AuctionId,
		BarracksItemId: item.Id,
		PaymentId:      item.PaymentId,
		AmountCents:    item.AmountCents,
		Currency:       item.Currency,
		PaidAt:         *item.PaidAt,
		PayoutStatus:   models.PayoutPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
