package auctions

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/handlers/respond"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/mapping"
	"github.com/chris/bidding-wars/pkg/models"
)

// AuctionsHandler holds the dependencies for auction-related handlers.
type AuctionsHandler struct {
	Machine *lifecycle.Machine
	Logger  *slog.Logger
}

// NewAuctionsHandler creates a new AuctionsHandler.
func NewAuctionsHandler(machine *lifecycle.Machine, logger *slog.Logger) *AuctionsHandler {
	return &AuctionsHandler{Machine: machine, Logger: logger}
}

// ListAuctions returns the marketplace of the caller's community.
func (h *AuctionsHandler) ListAuctions(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	if caller.CommunityId == "" {
		respond.Error(w, r, h.Logger, fmt.Errorf("%w: request names no community", lifecycle.ErrValidation))
		return
	}

	domainAuctions, err := h.Machine.ListMarketplace(r.Context(), caller.CommunityId)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	apiAuctions := make([]*api.Auction, len(domainAuctions))
	for i, auction := range domainAuctions {
		apiAuctions[i] = mapping.ToApiAuction(&auction)
	}
	respond.JSON(w, http.StatusOK, apiAuctions)
}

// CreateAuction lists a new auction in the caller's community.
func (h *AuctionsHandler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var newAuction api.NewAuction
	if !respond.Decode(w, r, &newAuction) {
		return
	}

	created, err := h.Machine.CreateAuction(r.Context(), caller, mapping.ToDomainNewAuction(&newAuction))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiAuction(created))
}

// GetAuction returns one auction with its effective status.
func (h *AuctionsHandler) GetAuction(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	auction, err := h.Machine.GetAuction(r.Context(), auctionId.String())
	h.writeAuction(w, r, auction, err)
}

// RemoveAuction takes a scheduled or live auction off the marketplace.
func (h *AuctionsHandler) RemoveAuction(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	h.transition(w, r, auctionId, h.Machine.Remove)
}

// OpenDispute moves a paid auction into dispute. Admins only.
func (h *AuctionsHandler) OpenDispute(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	h.transition(w, r, auctionId, h.Machine.OpenDispute)
}

// RefundAuction refunds a disputed auction. Admins only.
func (h *AuctionsHandler) RefundAuction(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	h.transition(w, r, auctionId, h.Machine.Refund)
}

// EndAuction lets the creator end a live auction early.
func (h *AuctionsHandler) EndAuction(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	result, err := h.Machine.EndAuction(r.Context(), auctionId.String(), caller)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	auction := result.Auction
	// The winner is charged right away; the ending job retries when this fails.
	if result.Won != nil {
		purchase, err := h.Machine.InitiateWinnerCharge(r.Context(), auction.Id)
		if err != nil {
			h.Logger.Error("failed to charge winner after early end",
				slog.String("auction_id", auction.Id),
				slog.Any("error", err),
			)
		} else {
			auction = purchase.Auction
		}
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiAuction(auction))
}

// BuyNow sells a live auction to the caller at its buy-now price.
func (h *AuctionsHandler) BuyNow(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	purchase, err := h.Machine.BuyNow(r.Context(), auctionId.String(), caller)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiPurchase(purchase))
}

// auctionAction is a caller-gated status transition of the state machine.
type auctionAction func(ctx context.Context, auctionID string, actor *auth.Identity) (*models.Auction, error)

func (h *AuctionsHandler) transition(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId, action auctionAction) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	auction, err := action(r.Context(), auctionId.String(), caller)
	h.writeAuction(w, r, auction, err)
}

func (h *AuctionsHandler) writeAuction(w http.ResponseWriter, r *http.Request, auction *models.Auction, err error) {
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiAuction(auction))
}
