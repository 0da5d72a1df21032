package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/bidding"
	"github.com/chris/bidding-wars/pkg/handlers"
	"github.com/chris/bidding-wars/pkg/handlers/auctions"
	"github.com/chris/bidding-wars/pkg/handlers/barracks"
	"github.com/chris/bidding-wars/pkg/handlers/bids"
	"github.com/chris/bidding-wars/pkg/handlers/fulfillment"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/settlement"
	storage_mocks "github.com/chris/bidding-wars/pkg/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const auctionID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newRouter(t *testing.T) (http.Handler, *storage_mocks.Storage) {
	mockStorage := storage_mocks.NewStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	machine := lifecycle.NewMachine(mockStorage, nil, nil, nil, nil, logger, lifecycle.FeeDefaults{})
	validator := bidding.NewValidator(mockStorage, nil, nil, logger, 3)
	reconciler := settlement.NewReconciler(mockStorage, nil, nil, nil, nil, logger)

	h := handlers.NewApiHandler(
		auctions.NewAuctionsHandler(machine, logger),
		bids.NewBidsHandler(validator, logger),
		fulfillment.NewFulfillmentHandler(machine, logger),
		barracks.NewBarracksHandler(mockStorage, reconciler, logger),
	)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := &auth.Identity{UserId: "buyer", CommunityId: "exp_1", AccessLevel: auth.AccessCustomer}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), caller)))
		})
	})
	api.HandlerFromMux(h, r)
	return r, mockStorage
}

func TestRouter(t *testing.T) {
	t.Run("Routes Auction Reads", func(t *testing.T) {
		// 1. Setup
		router, mockStorage := newRouter(t)
		mockStorage.On("GetAuction", mock.Anything, auctionID).Return(&models.Auction{
			Id:                auctionID,
			CommunityId:       "exp_1",
			Status:            models.ENDED,
			StartPriceCents:   1000,
			MinIncrementCents: 100,
		}, nil).Once()

		// 2. Execute
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auctions/"+auctionID, nil))

		// 3. Assert
		require.Equal(t, http.StatusOK, rr.Code)
		var got api.Auction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, auctionID, got.Id)
	})

	t.Run("Rejects Malformed Auction Id", func(t *testing.T) {
		router, mockStorage := newRouter(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auctions/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "GetAuction", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		router, _ := newRouter(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/wallets", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
