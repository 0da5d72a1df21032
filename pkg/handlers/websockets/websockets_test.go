package websockets_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/bidding-wars/pkg/auth"
	wshandlers "github.com/chris/bidding-wars/pkg/handlers/websockets"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
	storage_mocks "github.com/chris/bidding-wars/pkg/storage/mocks"
	"github.com/chris/bidding-wars/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolverFunc func(r *http.Request) (*auth.Identity, error)

func (f resolverFunc) Resolve(r *http.Request) (*auth.Identity, error) { return f(r) }

func member(community string) resolverFunc {
	return func(r *http.Request) (*auth.Identity, error) {
		if r.Header.Get("Authorization") == "" {
			return nil, auth.ErrUnauthenticated
		}
		return &auth.Identity{UserId: "user_1", CommunityId: community, AccessLevel: auth.AccessCustomer}, nil
	}
}

func connectRequest(auctionID string, headers map[string]string) events.APIGatewayWebsocketProxyRequest {
	return events.APIGatewayWebsocketProxyRequest{
		Headers:               headers,
		QueryStringParameters: map[string]string{"auctionId": auctionID},
		RequestContext: events.APIGatewayWebsocketProxyRequestContext{
			ConnectionID: "conn-1",
			RouteKey:     "$connect",
		},
	}
}

func TestHandleConnect(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	auction := &models.Auction{Id: "auction-1", CommunityId: "exp_1", Status: models.LIVE}
	authorized := map[string]string{"Authorization": "Bearer token"}

	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockStorage := storage_mocks.NewStorage(t)
		mockConnections := storage_mocks.NewConnectionStore(t)
		h := wshandlers.NewHandler(mockStorage, mockConnections, member("exp_1"), logger)

		mockStorage.On("GetAuction", mock.Anything, "auction-1").Return(auction, nil).Once()
		mockConnections.On("AddConnection", mock.Anything, "conn-1", "auction-1").Return(nil).Once()

		// 2. Execute
		resp, err := h.Route(t.Context(), connectRequest("auction-1", authorized))

		// 3. Assert
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Other Community", func(t *testing.T) {
		mockStorage := storage_mocks.NewStorage(t)
		mockConnections := storage_mocks.NewConnectionStore(t)
		h := wshandlers.NewHandler(mockStorage, mockConnections, member("exp_2"), logger)

		mockStorage.On("GetAuction", mock.Anything, "auction-1").Return(auction, nil).Once()

		resp, err := h.HandleConnect(t.Context(), connectRequest("auction-1", authorized))

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		mockConnections.AssertNotCalled(t, "AddConnection", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		h := wshandlers.NewHandler(storage_mocks.NewStorage(t), storage_mocks.NewConnectionStore(t), member("exp_1"), logger)

		resp, err := h.HandleConnect(t.Context(), connectRequest("auction-1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown Auction", func(t *testing.T) {
		mockStorage := storage_mocks.NewStorage(t)
		h := wshandlers.NewHandler(mockStorage, storage_mocks.NewConnectionStore(t), member("exp_1"), logger)

		mockStorage.On("GetAuction", mock.Anything, "missing").Return(nil, storage.ErrNotFound).Once()

		resp, err := h.HandleConnect(t.Context(), connectRequest("missing", authorized))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Save Fails", func(t *testing.T) {
		mockStorage := storage_mocks.NewStorage(t)
		mockConnections := storage_mocks.NewConnectionStore(t)
		h := wshandlers.NewHandler(mockStorage, mockConnections, member("exp_1"), logger)

		mockStorage.On("GetAuction", mock.Anything, "auction-1").Return(auction, nil).Once()
		mockConnections.On("AddConnection", mock.Anything, "conn-1", "auction-1").Return(errors.New("throttled")).Once()

		resp, err := h.HandleConnect(t.Context(), connectRequest("auction-1", authorized))

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHandleDisconnect(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mockConnections := storage_mocks.NewConnectionStore(t)
	h := wshandlers.NewHandler(storage_mocks.NewStorage(t), mockConnections, member("exp_1"), logger)

	mockConnections.On("RemoveConnection", mock.Anything, "conn-1").Return(nil).Once()

	resp, err := h.Route(t.Context(), events.APIGatewayWebsocketProxyRequest{
		RequestContext: events.APIGatewayWebsocketProxyRequestContext{ConnectionID: "conn-1", RouteKey: "$disconnect"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWatch_RefusesOtherCommunity(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mockStorage := storage_mocks.NewStorage(t)
	live := wshandlers.NewLocalHandler(wshandlers.NewHandler(mockStorage, nil, nil, logger), websockets.NewHub(logger))

	mockStorage.On("GetAuction", mock.Anything, "auction-1").Return(&models.Auction{Id: "auction-1", CommunityId: "exp_2"}, nil).Once()

	r := chi.NewRouter()
	r.Get("/ws/auctions/{auctionId}", live.Watch)
	req := httptest.NewRequest(http.MethodGet, "/ws/auctions/auction-1", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), &auth.Identity{UserId: "user_1", CommunityId: "exp_1"}))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, 0, live.Hub.Subscribers("auction-1"))
}
