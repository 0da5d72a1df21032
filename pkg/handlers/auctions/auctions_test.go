package auctions_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/bidding-wars/pkg/api"
	assets_mocks "github.com/chris/bidding-wars/pkg/assets/mocks"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/handlers/auctions"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/models"
	notify_mocks "github.com/chris/bidding-wars/pkg/notify/mocks"
	"github.com/chris/bidding-wars/pkg/payments"
	payments_mocks "github.com/chris/bidding-wars/pkg/payments/mocks"
	"github.com/chris/bidding-wars/pkg/storage"
	storage_mocks "github.com/chris/bidding-wars/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var auctionID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

var (
	seller = &auth.Identity{UserId: "seller", CommunityId: "exp_1", AccessLevel: auth.AccessCustomer}
	buyer  = &auth.Identity{UserId: "buyer", CommunityId: "exp_1", AccessLevel: auth.AccessCustomer}
)

type handlerMocks struct {
	store    *storage_mocks.Storage
	platform *payments_mocks.Platform
	notifier *notify_mocks.Dispatcher
}

func newTestHandler(t *testing.T) (*auctions.AuctionsHandler, handlerMocks) {
	hm := handlerMocks{
		store:    storage_mocks.NewStorage(t),
		platform: payments_mocks.NewPlatform(t),
		notifier: notify_mocks.NewDispatcher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	machine := lifecycle.NewMachine(hm.store, hm.platform, assets_mocks.NewURLSigner(t), hm.notifier, nil, logger,
		lifecycle.FeeDefaults{CommunityFeePercent: 10, PlatformFeePercent: 3})
	return auctions.NewAuctionsHandler(machine, logger), hm
}

func request(method, target string, body any, caller *auth.Identity) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if caller != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), caller))
	}
	return req
}

func liveAuction() *models.Auction {
	now := time.Now().UTC()
	return &models.Auction{
		Id:                auctionID.String(),
		CommunityId:       "exp_1",
		CreatorId:         "seller",
		Title:             "Signed poster",
		Kind:              models.DIGITAL,
		StartPriceCents:   1000,
		MinIncrementCents: 100,
		Currency:          "usd",
		StartsAt:          now.Add(-time.Hour),
		EndsAt:            now.Add(time.Hour),
		Status:            models.LIVE,
		Version:           2,
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) api.Error {
	t.Helper()
	var body api.Error
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestListAuctions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		h, hm := newTestHandler(t)
		removed := liveAuction()
		removed.Id = "removed"
		removed.Status = models.REMOVED
		withBids := liveAuction()
		withBids.BidCount = 2
		withBids.TopBidAmountCents = 1500
		hm.store.On("ListAuctionsByCommunity", mock.Anything, "exp_1").
			Return([]models.Auction{*withBids, *removed}, nil).Once()

		// 2. Execute
		rr := httptest.NewRecorder()
		h.ListAuctions(rr, request(http.MethodGet, "/auctions", nil, buyer))

		// 3. Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var listed []api.Auction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, int64(1600), listed[0].NextMinBidCents)
		assert.Equal(t, api.AuctionStatusLIVE, listed[0].Status)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := httptest.NewRecorder()
		h.ListAuctions(rr, request(http.MethodGet, "/auctions", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("No Community", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := httptest.NewRecorder()
		h.ListAuctions(rr, request(http.MethodGet, "/auctions", nil, &auth.Identity{UserId: "u"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateAuction(t *testing.T) {
	newAuction := api.NewAuction{
		Title:             "Signed poster",
		Kind:              api.ItemKindDIGITAL,
		StartPriceCents:   1000,
		MinIncrementCents: 100,
		EndsAt:            time.Now().Add(24 * time.Hour),
	}

	t.Run("Success", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("CreateAuction", mock.Anything, mock.MatchedBy(func(a *models.Auction) bool {
			return a.CreatorId == "seller" && a.CommunityId == "exp_1" && a.Status == models.LIVE
		})).Return(nil).Once()

		rr := httptest.NewRecorder()
		h.CreateAuction(rr, request(http.MethodPost, "/auctions", newAuction, seller))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var created api.Auction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, int64(1100), created.NextMinBidCents)
		assert.Equal(t, "usd", created.Currency)
	})

	t.Run("Validation", func(t *testing.T) {
		h, _ := newTestHandler(t)
		invalid := newAuction
		invalid.MinIncrementCents = 0

		rr := httptest.NewRecorder()
		h.CreateAuction(rr, request(http.MethodPost, "/auctions", invalid, seller))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION", decodeError(t, rr).Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		h, _ := newTestHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/auctions", bytes.NewReader([]byte("{")))
		req = req.WithContext(auth.WithIdentity(req.Context(), seller))

		rr := httptest.NewRecorder()
		h.CreateAuction(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetAuction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(liveAuction(), nil).Once()

		rr := httptest.NewRecorder()
		h.GetAuction(rr, request(http.MethodGet, "/auctions/"+auctionID.String(), nil, buyer), auctionID)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).
			Return(nil, fmt.Errorf("auction %s: %w", auctionID, storage.ErrNotFound)).Once()

		rr := httptest.NewRecorder()
		h.GetAuction(rr, request(http.MethodGet, "/auctions/"+auctionID.String(), nil, buyer), auctionID)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rr).Code)
	})

	t.Run("Storage Error Is Hidden", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).
			Return(nil, fmt.Errorf("failed to get auction from DynamoDB: throttled")).Once()

		rr := httptest.NewRecorder()
		h.GetAuction(rr, request(http.MethodGet, "/auctions/"+auctionID.String(), nil, buyer), auctionID)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "throttled")
	})
}

func TestRemoveAuction(t *testing.T) {
	t.Run("Forbidden", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(liveAuction(), nil).Once()

		rr := httptest.NewRecorder()
		h.RemoveAuction(rr, request(http.MethodDelete, "/auctions/"+auctionID.String(), nil, buyer), auctionID)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "FORBIDDEN", decodeError(t, rr).Code)
	})

	t.Run("Success", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(liveAuction(), nil).Once()
		hm.store.On("UpdateAuction", mock.Anything, mock.Anything).Return(nil).Once()

		rr := httptest.NewRecorder()
		h.RemoveAuction(rr, request(http.MethodDelete, "/auctions/"+auctionID.String(), nil, seller), auctionID)

		assert.Equal(t, http.StatusOK, rr.Code)
		var removed api.Auction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &removed))
		assert.Equal(t, api.AuctionStatusREMOVED, removed.Status)
	})
}

func TestOpenDispute(t *testing.T) {
	t.Run("Invalid Transition", func(t *testing.T) {
		h, hm := newTestHandler(t)
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(liveAuction(), nil).Once()
		admin := &auth.Identity{UserId: "owner", CommunityId: "exp_1", AccessLevel: auth.AccessAdmin}

		rr := httptest.NewRecorder()
		h.OpenDispute(rr, request(http.MethodPost, "/auctions/"+auctionID.String()+"/dispute", nil, admin), auctionID)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "INVALID_TRANSITION", decodeError(t, rr).Code)
	})
}

func TestEndAuction(t *testing.T) {
	t.Run("Creator Ends Early And Winner Is Charged", func(t *testing.T) {
		h, hm := newTestHandler(t)
		auction := liveAuction()
		auction.BidCount = 1
		auction.TopBidAmountCents = 1100
		auction.CurrentBidId = "bid-1"
		auction.CurrentBidderId = "buyer"
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(auction, nil).Twice()
		hm.store.On("GetTopBid", mock.Anything, auctionID.String()).Return(nil, nil).Once()
		hm.store.On("UpdateAuction", mock.Anything, mock.Anything).Return(nil).Once()
		hm.notifier.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Once()
		hm.platform.On("CreateCharge", mock.Anything, mock.MatchedBy(func(req payments.ChargeRequest) bool {
			return req.UserId == "buyer" && req.AmountCents == 1100
		})).Return(&payments.Charge{Id: "ch_1"}, nil).Once()
		hm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		rr := httptest.NewRecorder()
		h.EndAuction(rr, request(http.MethodPost, "/auctions/"+auctionID.String()+"/end", nil, seller), auctionID)

		assert.Equal(t, http.StatusOK, rr.Code)
		var ended api.Auction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ended))
		assert.Equal(t, api.AuctionStatusPENDINGPAYMENT, ended.Status)
		require.NotNil(t, ended.WinnerId)
		assert.Equal(t, "buyer", *ended.WinnerId)
	})

	t.Run("Charge Failure Still Ends", func(t *testing.T) {
		h, hm := newTestHandler(t)
		auction := liveAuction()
		auction.BidCount = 1
		auction.TopBidAmountCents = 1100
		auction.CurrentBidderId = "buyer"
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(auction, nil).Twice()
		hm.store.On("GetTopBid", mock.Anything, auctionID.String()).Return(nil, nil).Once()
		hm.store.On("UpdateAuction", mock.Anything, mock.Anything).Return(nil).Once()
		hm.notifier.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Once()
		hm.platform.On("CreateCharge", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("502")).Once()

		rr := httptest.NewRecorder()
		h.EndAuction(rr, request(http.MethodPost, "/auctions/"+auctionID.String()+"/end", nil, seller), auctionID)

		assert.Equal(t, http.StatusOK, rr.Code)
		var ended api.Auction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ended))
		assert.Equal(t, api.AuctionStatusENDED, ended.Status)
	})
}

func TestBuyNow(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, hm := newTestHandler(t)
		auction := liveAuction()
		price := int64(5000)
		auction.BuyNowPriceCents = &price
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(auction, nil).Once()
		hm.platform.On("CreateCharge", mock.Anything, mock.Anything).
			Return(&payments.Charge{Id: "ch_1", CheckoutURL: "https://whop.com/checkout/ch_1"}, nil).Once()
		hm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		rr := httptest.NewRecorder()
		h.BuyNow(rr, request(http.MethodPost, "/auctions/"+auctionID.String()+"/buy-now", nil, buyer), auctionID)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var purchase api.Purchase
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &purchase))
		require.NotNil(t, purchase.CheckoutUrl)
		assert.Equal(t, "https://whop.com/checkout/ch_1", *purchase.CheckoutUrl)
		assert.Equal(t, api.PurchaseSourceBUYNOW, purchase.Item.Source)
		assert.Equal(t, int64(5000), purchase.Item.AmountCents)
	})

	t.Run("Concurrent Bid", func(t *testing.T) {
		h, hm := newTestHandler(t)
		auction := liveAuction()
		price := int64(5000)
		auction.BuyNowPriceCents = &price
		hm.store.On("GetAuction", mock.Anything, auctionID.String()).Return(auction, nil).Once()
		hm.platform.On("CreateCharge", mock.Anything, mock.Anything).Return(&payments.Charge{Id: "ch_1"}, nil).Once()
		hm.store.On("OpenPurchase", mock.Anything, mock.Anything, mock.Anything).Return(storage.ErrConcurrentUpdate).Once()

		rr := httptest.NewRecorder()
		h.BuyNow(rr, request(http.MethodPost, "/auctions/"+auctionID.String()+"/buy-now", nil, buyer), auctionID)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
