package websockets

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/handlers/respond"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/middleware"
	"github.com/chris/bidding-wars/pkg/storage"
	"github.com/chris/bidding-wars/pkg/websockets"
	"github.com/go-chi/chi/v5"
)

const auctionIDParam = "auctionId"

// Handler handles WebSocket connections.
type Handler struct {
	Auctions    storage.AuctionReader
	Connections storage.ConnectionStore
	Resolver    middleware.IdentityResolver
	Logger      *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(auctions storage.AuctionReader, connections storage.ConnectionStore, resolver middleware.IdentityResolver, logger *slog.Logger) *Handler {
	return &Handler{
		Auctions:    auctions,
		Connections: connections,
		Resolver:    resolver,
		Logger:      logger,
	}
}

// authorize checks that the caller belongs to the community running the auction.
func (h *Handler) authorize(ctx context.Context, caller *auth.Identity, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("%w: %s is required", lifecycle.ErrValidation, auctionIDParam)
	}
	auction, err := h.Auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction.CommunityId != caller.CommunityId {
		return fmt.Errorf("%w: auction %s belongs to another community", lifecycle.ErrForbidden, auctionID)
	}
	return nil
}

// HandleConnect authenticates a new API Gateway connection and records the auction it watches.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := request.RequestContext.ConnectionID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}
	for name, value := range request.Headers {
		req.Header.Set(name, value)
	}

	caller, err := h.Resolver.Resolve(req)
	if err == nil {
		err = h.authorize(ctx, caller, request.QueryStringParameters[auctionIDParam])
	}
	if err != nil {
		status, code := respond.Status(err)
		h.Logger.Warn("websocket connection refused",
			slog.String("connection_id", connectionID),
			slog.String("code", code),
			slog.Any("error", err),
		)
		// Refusals are answered with a status; only internal failures are returned as errors.
		if status >= http.StatusInternalServerError {
			return events.APIGatewayProxyResponse{StatusCode: status}, err
		}
		return events.APIGatewayProxyResponse{StatusCode: status}, nil
	}

	auctionID := request.QueryStringParameters[auctionIDParam]
	if err := h.Connections.AddConnection(ctx, connectionID, auctionID); err != nil {
		h.Logger.Error("failed to save connection", slog.String("connection_id", connectionID), slog.Any("error", err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	h.Logger.Info("client connected", slog.String("connection_id", connectionID), slog.String("auction_id", auctionID))
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDisconnect handles client disconnections.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := request.RequestContext.ConnectionID

	if err := h.Connections.RemoveConnection(ctx, connectionID); err != nil {
		h.Logger.Error("failed to delete connection", slog.String("connection_id", connectionID), slog.Any("error", err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	h.Logger.Info("client disconnected", slog.String("connection_id", connectionID))
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDefault handles messages sent from a client. The feed is one-way, so they are ignored.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.Logger.Debug("ignoring client message", slog.String("connection_id", request.RequestContext.ConnectionID))
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// Route dispatches an API Gateway websocket event by its route key.
func (h *Handler) Route(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return h.HandleConnect(ctx, request)
	case "$disconnect":
		return h.HandleDisconnect(ctx, request)
	default:
		return h.HandleDefault(ctx, request)
	}
}

// LocalHandler serves the live feed from the HTTP server itself.
type LocalHandler struct {
	*Handler
	Hub *websockets.Hub
}

// NewLocalHandler creates a LocalHandler. Only Auctions and Logger of h are used.
func NewLocalHandler(h *Handler, hub *websockets.Hub) *LocalHandler {
	return &LocalHandler{Handler: h, Hub: hub}
}

// Watch upgrades the request and streams updates about the auction in the URL.
// It expects the identity middleware in front of it.
func (h *LocalHandler) Watch(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	auctionID := chi.URLParam(r, auctionIDParam)
	if err := h.authorize(r.Context(), caller, auctionID); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	h.Hub.Serve(w, r, auctionID)
}
