package lifecycle

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	assets_mocks "github.com/chris/bidding-wars/pkg/assets/mocks"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/notify"
	notify_mocks "github.com/chris/bidding-wars/pkg/notify/mocks"
	"github.com/chris/bidding-wars/pkg/payments"
	payments_mocks "github.com/chris/bidding-wars/pkg/payments/mocks"
	"github.com/chris/bidding-wars/pkg/storage"
	storage_mocks "github.com/chris/bidding-wars/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	seller = &auth.Identity{UserId: "seller", CommunityId: "exp_1", AccessLevel: auth.AccessCustomer}
	buyer  = &auth.Identity{UserId: "buyer", CommunityId: "exp_1", AccessLevel: auth.AccessCustomer}
	admin  = &auth.Identity{UserId: "owner", CommunityId: "exp_1", AccessLevel: auth.AccessAdmin}
)

type machineMocks struct {
	store    *storage_mocks.Storage
	platform *payments_mocks.Platform
	signer   *assets_mocks.URLSigner
	notifier *notify_mocks.Dispatcher
}

func newTestMachine(t *testing.T) (*Machine, machineMocks) {
	mm := machineMocks{
		store:    storage_mocks.NewStorage(t),
		platform: payments_mocks.NewPlatform(t),
		signer:   assets_mocks.NewURLSigner(t),
		notifier: notify_mocks.NewDispatcher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewMachine(mm.store, mm.platform, mm.signer, mm.notifier, nil, logger, FeeDefaults{CommunityFeePercent: 10, PlatformFeePercent: 3})
	m.Now = func() time.Time { return testNow }
	ids := 0
	m.NewID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	return m, mm
}

func newAuction(status models.AuctionStatus, kind models.ItemKind) *models.Auction {
	return &models.Auction{
		Id:                "auction-1",
		CommunityId:       "exp_1",
		CreatorId:         "seller",
		Title:             "Signed poster",
		Kind:              kind,
		StartPriceCents:   1000,
		MinIncrementCents: 100,
		Currency:          "usd",
		StartsAt:          testNow.Add(-2 * time.Hour),
		EndsAt:            testNow.Add(time.Hour),
		AntiSnipeSeconds:  120,
		Status:            status,
		Version:           3,
	}
}

func withTopBid(a *models.Auction, bidder string, amount int64) *models.Auction {
	a.CurrentBidId = "bid-top"
	a.CurrentBidderId = bidder
	a.TopBidAmountCents = amount
	a.BidCount = 4
	return a
}

func soldAuction(status models.AuctionStatus, kind models.ItemKind) *models.Auction {
	a := withTopBid(newAuction(status, kind), "buyer", 1500)
	a.EndsAt = testNow.Add(-time.Hour)
	a.WinnerId = "buyer"
	a.WinningBidId = "bid-top"
	return a
}

func purchase(status models.BarracksStatus) *models.BarracksItem {
	return &models.BarracksItem{
		Id:          "item-1",
		AuctionId:   "auction-1",
		OwnerId:     "buyer",
		ChargeRef:   "ch_1",
		Source:      models.SourceAuctionWin,
		Status:      status,
		AmountCents: 1500,
		Currency:    "usd",
		Version:     2,
	}
}

func assertTransitionError(t *testing.T, err error, from models.AuctionStatus) {
	t.Helper()
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, from, te.From)
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateAuction(t *testing.T) {
	valid := func() NewAuction {
		return NewAuction{
			Title:             " Signed poster ",
			Kind:              models.PHYSICAL,
			StartPriceCents:   1000,
			MinIncrementCents: 100,
			BuyNowPriceCents:  int64Ptr(5000),
			ShippingCostCents: 500,
			EndsAt:            testNow.Add(24 * time.Hour),
			AntiSnipeSeconds:  120,
		}
	}

	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		m, mm := newTestMachine(t)
		mm.store.On("CreateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool {
			return a.Id == "id-1" && a.CommunityId == "exp_1" && a.CreatorId == "seller" && a.Title == "Signed poster" &&
				a.Status == models.LIVE && a.CommunityFeePercent == 10 && a.PlatformFeePercent == 3 && a.Currency == "usd"
		})).Return(nil).Once()

		// 2. Execute
		auction, err := m.CreateAuction(t.Context(), seller, valid())

		// 3. Assert
		require.NoError(t, err)
		assert.Equal(t, models.LIVE, auction.Status)
		assert.Equal(t, testNow, auction.StartsAt)
	})

	t.Run("Future Start Is Scheduled", func(t *testing.T) {
		m, mm := newTestMachine(t)
		in := valid()
		startsAt := testNow.Add(time.Hour)
		in.StartsAt = &startsAt
		mm.store.On("CreateAuction", mock.Anything, mock.Anything).Return(nil).Once()

		auction, err := m.CreateAuction(t.Context(), seller, in)

		require.NoError(t, err)
		assert.Equal(t, models.SCHEDULED, auction.Status)
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*NewAuction)
		}{
			{"Missing Title", func(n *NewAuction) { n.Title = "  " }},
			{"Unknown Kind", func(n *NewAuction) { n.Kind = "SERVICE" }},
			{"Zero Start Price", func(n *NewAuction) { n.StartPriceCents = 0 }},
			{"Zero Increment", func(n *NewAuction) { n.MinIncrementCents = 0 }},
			{"Buy Now Below Start", func(n *NewAuction) { n.BuyNowPriceCents = int64Ptr(1000) }},
			{"Shipping On Digital", func(n *NewAuction) { n.Kind = models.DIGITAL }},
			{"Ends In Past", func(n *NewAuction) { n.EndsAt = testNow.Add(-time.Minute) }},
			{"Negative Anti Snipe", func(n *NewAuction) { n.AntiSnipeSeconds = -1 }},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				m, _ := newTestMachine(t)
				in := valid()
				tc.mutate(&in)

				_, err := m.CreateAuction(t.Context(), seller, in)

				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("Caller Without Access", func(t *testing.T) {
		m, _ := newTestMachine(t)
		outsider := &auth.Identity{UserId: "someone", CommunityId: "exp_1", AccessLevel: auth.AccessNone}

		_, err := m.CreateAuction(t.Context(), outsider, valid())

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestEndAuction(t *testing.T) {
	t.Run("Scheduler Ends Due Auction", func(t *testing.T) {
		m, mm := newTestMachine(t)
		due := withTopBid(newAuction(models.LIVE, models.DIGITAL), "buyer", 1500)
		due.EndsAt = testNow.Add(-time.Second)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(due, nil).Once()
		mm.store.On("GetTopBid", mock.Anything, "auction-1").
			Return(&models.Bid{Id: "bid-top", BidderId: "buyer", AmountCents: 1500}, nil).Once()
		mm.store.On("UpdateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool {
			return a.Status == models.ENDED && a.WinnerId == "buyer" && a.WinningBidId == "bid-top"
		})).Return(nil).Once()
		mm.notifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
			return n.Kind == notify.KindAuctionWon && n.UserId == "buyer"
		})).Return(nil).Once()

		result, err := m.EndAuction(t.Context(), "auction-1", nil)

		require.NoError(t, err)
		require.NotNil(t, result.Won)
		assert.Equal(t, "buyer", result.Won.WinnerId)
		assert.Equal(t, int64(1500), result.Won.AmountCents)
	})

	t.Run("No Bids Means No Winner", func(t *testing.T) {
		m, mm := newTestMachine(t)
		due := newAuction(models.SCHEDULED, models.DIGITAL)
		due.EndsAt = testNow
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(due, nil).Once()
		mm.store.On("GetTopBid", mock.Anything, "auction-1").Return(nil, nil).Once()
		mm.store.On("UpdateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool {
			return a.Status == models.ENDED && a.WinnerId == ""
		})).Return(nil).Once()

		result, err := m.EndAuction(t.Context(), "auction-1", nil)

		require.NoError(t, err)
		assert.Nil(t, result.Won)
	})

	t.Run("Scheduler Waits For End Time", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(newAuction(models.LIVE, models.DIGITAL), nil).Once()

		_, err := m.EndAuction(t.Context(), "auction-1", nil)

		assertTransitionError(t, err, models.LIVE)
	})

	t.Run("Creator Ends Early", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(newAuction(models.LIVE, models.DIGITAL), nil).Once()
		mm.store.On("GetTopBid", mock.Anything, "auction-1").Return(nil, nil).Once()
		mm.store.On("UpdateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool {
			return a.Status == models.ENDED && a.EndsAt.Equal(testNow)
		})).Return(nil).Once()

		_, err := m.EndAuction(t.Context(), "auction-1", seller)

		require.NoError(t, err)
	})

	t.Run("Other Caller Is Forbidden", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(newAuction(models.LIVE, models.DIGITAL), nil).Once()

		_, err := m.EndAuction(t.Context(), "auction-1", buyer)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Not Live", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.PAID, models.DIGITAL), nil).Once()

		_, err := m.EndAuction(t.Context(), "auction-1", nil)

		assertTransitionError(t, err, models.PAID)
	})

	t.Run("Lost Race To Bid", func(t *testing.T) {
		m, mm := newTestMachine(t)
		due := newAuction(models.LIVE, models.DIGITAL)
		due.EndsAt = testNow.Add(-time.Second)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(due, nil).Once()
		mm.store.On("GetTopBid", mock.Anything, "auction-1").Return(nil, nil).Once()
		mm.store.On("UpdateAuction", mock.Anything, mock.Anything).Return(storage.ErrConcurrentUpdate).Once()

		_, err := m.EndAuction(t.Context(), "auction-1", nil)

		assert.ErrorIs(t, err, storage.ErrConcurrentUpdate)
	})

	t.Run("Not Found", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "missing").
			Return(nil, fmt.Errorf("auction missing: %w", storage.ErrNotFound)).Once()

		_, err := m.EndAuction(t.Context(), "missing", nil)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestInitiateWinnerCharge(t *testing.T) {
	t.Run("Charges Winning Amount Plus Shipping", func(t *testing.T) {
		m, mm := newTestMachine(t)
		ended := soldAuction(models.ENDED, models.PHYSICAL)
		ended.ShippingCostCents = 500
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(ended, nil).Once()
		key := PurchaseKey("auction-1", "buyer", models.SourceAuctionWin)
		itemID := purchaseItemID(key)
		mm.platform.On("CreateCharge", mock.Anything, mock.MatchedBy(func(req payments.ChargeRequest) bool {
			return req.UserId == "buyer" && req.CommunityId == "exp_1" && req.AmountCents == 2000 &&
				req.IdempotencyKey == key &&
				req.Metadata["auction_id"] == "auction-1" && req.Metadata["barracks_item_id"] == itemID
		})).Return(&payments.Charge{Id: "ch_1", CheckoutURL: "https://whop.com/checkout/ch_1"}, nil).Once()
		mm.store.On("OpenPurchase", mock.Anything,
			mock.MatchedBy(func(a *models.Auction) bool { return a.Status == models.PENDING_PAYMENT }),
			mock.MatchedBy(func(item *models.BarracksItem) bool {
				return item.Id == itemID && item.OwnerId == "buyer" && item.ChargeRef == "ch_1" &&
					item.CheckoutURL == "https://whop.com/checkout/ch_1" &&
					item.AmountCents == 2000 && item.Status == models.BarracksPendingPayment && item.Source == models.SourceAuctionWin
			}),
		).Return(nil).Once()
		mm.notifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
			return n.Kind == notify.KindCheckoutReady && n.UserId == "buyer" && n.AuctionId == "auction-1"
		})).Return(nil).Once()

		result, err := m.InitiateWinnerCharge(t.Context(), "auction-1")

		require.NoError(t, err)
		assert.Equal(t, "https://whop.com/checkout/ch_1", result.CheckoutURL)
		assert.Equal(t, "https://whop.com/checkout/ch_1", result.Item.CheckoutURL)
		assert.Equal(t, models.PENDING_PAYMENT, result.Auction.Status)
	})

	t.Run("Repeated Runs Send The Same Charge", func(t *testing.T) {
		// 1. Setup
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.ENDED, models.DIGITAL), nil).Once()
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.ENDED, models.DIGITAL), nil).Once()
		var requests []payments.ChargeRequest
		mm.platform.On("CreateCharge", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { requests = append(requests, args.Get(1).(payments.ChargeRequest)) }).
			Return(&payments.Charge{Id: "ch_1"}, nil).Twice()
		var items []string
		mm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { items = append(items, args.Get(2).(*models.BarracksItem).Id) }).
			Return(nil).Once()
		mm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { items = append(items, args.Get(2).(*models.BarracksItem).Id) }).
			Return(storage.ErrConcurrentUpdate).Once()

		// 2. Execute
		_, firstErr := m.InitiateWinnerCharge(t.Context(), "auction-1")
		_, secondErr := m.InitiateWinnerCharge(t.Context(), "auction-1")

		// 3. Assert
		require.NoError(t, firstErr)
		assert.ErrorIs(t, secondErr, storage.ErrConcurrentUpdate)
		require.Len(t, requests, 2)
		assert.NotEmpty(t, requests[0].IdempotencyKey)
		assert.Equal(t, requests[0], requests[1])
		require.Len(t, items, 2)
		assert.Equal(t, items[0], items[1])
	})

	t.Run("Buyers Get Distinct Keys", func(t *testing.T) {
		assert.NotEqual(t,
			PurchaseKey("auction-1", "buyer", models.SourceAuctionWin),
			PurchaseKey("auction-1", "other", models.SourceBuyNow),
		)
	})

	t.Run("No Winner", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(newAuction(models.ENDED, models.DIGITAL), nil).Once()

		_, err := m.InitiateWinnerCharge(t.Context(), "auction-1")

		assertTransitionError(t, err, models.ENDED)
	})

	t.Run("Charge Failure Writes Nothing", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.ENDED, models.DIGITAL), nil).Once()
		mm.platform.On("CreateCharge", mock.Anything, mock.Anything).Return(nil, errors.New("502")).Once()

		_, err := m.InitiateWinnerCharge(t.Context(), "auction-1")

		assert.ErrorContains(t, err, "failed to create charge")
		mm.store.AssertNotCalled(t, "OpenPurchase", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Write Failure After Charge", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.ENDED, models.DIGITAL), nil).Once()
		mm.platform.On("CreateCharge", mock.Anything, mock.Anything).Return(&payments.Charge{Id: "ch_1"}, nil).Once()
		mm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).Return(storage.ErrConcurrentUpdate).Once()

		_, err := m.InitiateWinnerCharge(t.Context(), "auction-1")

		assert.ErrorIs(t, err, storage.ErrConcurrentUpdate)
	})

	t.Run("Already Charged", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.PENDING_PAYMENT, models.DIGITAL), nil).Once()

		_, err := m.InitiateWinnerCharge(t.Context(), "auction-1")

		assertTransitionError(t, err, models.PENDING_PAYMENT)
	})
}

func TestBuyNow(t *testing.T) {
	offering := func() *models.Auction {
		a := newAuction(models.LIVE, models.DIGITAL)
		a.BuyNowPriceCents = int64Ptr(5000)
		return a
	}

	t.Run("Success", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(offering(), nil).Once()
		mm.platform.On("CreateCharge", mock.Anything, mock.MatchedBy(func(req payments.ChargeRequest) bool {
			return req.UserId == "buyer" && req.AmountCents == 5000
		})).Return(&payments.Charge{Id: "ch_9"}, nil).Once()
		mm.store.On("OpenPurchase", mock.Anything,
			mock.MatchedBy(func(a *models.Auction) bool {
				return a.Status == models.PENDING_PAYMENT && a.WinnerId == "buyer" && a.EndsAt.Equal(testNow)
			}),
			mock.MatchedBy(func(item *models.BarracksItem) bool { return item.Source == models.SourceBuyNow }),
		).Return(nil).Once()

		result, err := m.BuyNow(t.Context(), "auction-1", buyer)

		require.NoError(t, err)
		assert.Equal(t, "ch_9", result.Item.ChargeRef)
	})

	t.Run("Creator Cannot Buy", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(offering(), nil).Once()

		_, err := m.BuyNow(t.Context(), "auction-1", seller)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Not Offered", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(newAuction(models.LIVE, models.DIGITAL), nil).Once()

		_, err := m.BuyNow(t.Context(), "auction-1", buyer)

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Bidding Passed Price", func(t *testing.T) {
		m, mm := newTestMachine(t)
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(withTopBid(offering(), "alice", 5000), nil).Once()

		_, err := m.BuyNow(t.Context(), "auction-1", buyer)

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Ended", func(t *testing.T) {
		m, mm := newTestMachine(t)
		a := offering()
		a.Status = models.ENDED
		mm.store.On("GetAuction", mock.Anything, "auction-1").Return(a, nil).Once()

		_, err := m.BuyNow(t.Context(), "auction-1", buyer)

		assertTransitionError(t, err, models.ENDED)
	})

	t.Run("Anonymous", func(t *testing.T) {
		m, _ := newTestMachine(t)

		_, err := m.BuyNow(t.Context(), "auction-1", nil)

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestEndDue(t *testing.T) {
	m, mm := newTestMachine(t)
	withBid := withTopBid(newAuction(models.LIVE, models.DIGITAL), "buyer", 1500)
	withBid.EndsAt = testNow.Add(-time.Minute)
	unsold := newAuction(models.SCHEDULED, models.DIGITAL)
	unsold.Id = "auction-2"
	unsold.EndsAt = testNow.Add(-time.Minute)

	mm.store.On("ListAuctionsDue", mock.Anything, models.LIVE, testNow, int32(10)).Return([]models.Auction{*withBid}, nil).Once()
	mm.store.On("ListAuctionsDue", mock.Anything, models.SCHEDULED, testNow, int32(10)).Return([]models.Auction{*unsold}, nil).Once()

	mm.store.On("GetAuction", mock.Anything, "auction-1").Return(withBid, nil).Twice()
	mm.store.On("GetTopBid", mock.Anything, "auction-1").Return(nil, nil).Once()
	mm.store.On("UpdateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool { return a.Id == "auction-1" })).Return(nil).Once()
	mm.notifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
		return n.Kind == notify.KindAuctionWon && n.UserId == "buyer"
	})).Return(nil).Once()
	mm.platform.On("CreateCharge", mock.Anything, mock.Anything).
		Return(&payments.Charge{Id: "ch_1", CheckoutURL: "https://whop.com/checkout/ch_1"}, nil).Once()
	var opened *models.BarracksItem
	mm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { opened = args.Get(2).(*models.BarracksItem) }).
		Return(nil).Once()
	mm.notifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
		return n.Kind == notify.KindCheckoutReady && n.UserId == "buyer" &&
			strings.Contains(n.Content, "https://whop.com/checkout/ch_1")
	})).Return(nil).Once()

	mm.store.On("GetAuction", mock.Anything, "auction-2").Return(unsold, nil).Once()
	mm.store.On("GetTopBid", mock.Anything, "auction-2").Return(nil, nil).Once()
	mm.store.On("UpdateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool { return a.Id == "auction-2" })).Return(nil).Once()

	batch, err := m.EndDue(t.Context(), 10)

	require.NoError(t, err)
	assert.Equal(t, BatchResult{Processed: 2}, *batch)
	assert.Equal(t, models.PENDING_PAYMENT, withBid.Status)
	assert.Equal(t, models.ENDED, unsold.Status)
	require.NotNil(t, opened)
	assert.Equal(t, "buyer", opened.OwnerId)
	assert.Equal(t, "https://whop.com/checkout/ch_1", opened.CheckoutURL)
}

func TestChargeWinners(t *testing.T) {
	m, mm := newTestMachine(t)
	mm.store.On("ListAuctionsAwaitingCharge", mock.Anything, int32(10)).
		Return([]models.Auction{*soldAuction(models.ENDED, models.DIGITAL)}, nil).Once()
	mm.store.On("GetAuction", mock.Anything, "auction-1").Return(soldAuction(models.ENDED, models.DIGITAL), nil).Once()
	mm.platform.On("CreateCharge", mock.Anything, mock.Anything).Return(nil, errors.New("502")).Once()

	batch, err := m.ChargeWinners(t.Context(), 10)

	assert.Error(t, err)
	assert.Equal(t, BatchResult{Failed: 1}, *batch)
}
