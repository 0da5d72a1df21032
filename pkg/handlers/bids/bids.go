package bids

import (
	"log/slog"
	"net/http"

	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/bidding"
	"github.com/chris/bidding-wars/pkg/handlers/respond"
	"github.com/chris/bidding-wars/pkg/mapping"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// BidsHandler holds the dependencies for bid-related handlers.
type BidsHandler struct {
	Validator *bidding.Validator
	Logger    *slog.Logger
}

// NewBidsHandler creates a new BidsHandler.
func NewBidsHandler(validator *bidding.Validator, logger *slog.Logger) *BidsHandler {
	return &BidsHandler{Validator: validator, Logger: logger}
}

// PlaceBid validates and records a bid from the caller.
func (h *BidsHandler) PlaceBid(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var newBid api.NewBid
	if !respond.Decode(w, r, &newBid) {
		return
	}

	result, err := h.Validator.PlaceBid(r.Context(), auctionId.String(), caller.UserId, newBid.AmountCents)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiBidAccepted(result))
}

// ListBids returns an auction's bids, highest first.
func (h *BidsHandler) ListBids(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId, params api.ListBidsParams) {
	limit := int32(defaultHistoryLimit)
	if params.Limit != nil && *params.Limit > 0 {
		limit = int32(min(*params.Limit, maxHistoryLimit))
	}

	domainBids, err := h.Validator.History(r.Context(), auctionId.String(), limit)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	apiBids := make([]*api.Bid, len(domainBids))
	for i, bid := range domainBids {
		apiBids[i] = mapping.ToApiBid(&bid)
	}
	respond.JSON(w, http.StatusOK, apiBids)
}
