package handlers

import (
	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/handlers/auctions"
	"github.com/chris/bidding-wars/pkg/handlers/barracks"
	"github.com/chris/bidding-wars/pkg/handlers/bids"
	"github.com/chris/bidding-wars/pkg/handlers/fulfillment"
)

// ApiHandler implements the generated server interface by composing the
// resource handlers.
type ApiHandler struct {
	*auctions.AuctionsHandler
	*bids.BidsHandler
	*fulfillment.FulfillmentHandler
	*barracks.BarracksHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(
	auctionsHandler *auctions.AuctionsHandler,
	bidsHandler *bids.BidsHandler,
	fulfillmentHandler *fulfillment.FulfillmentHandler,
	barracksHandler *barracks.BarracksHandler,
) *ApiHandler {
	return &ApiHandler{
		AuctionsHandler:    auctionsHandler,
		BidsHandler:        bidsHandler,
		FulfillmentHandler: fulfillmentHandler,
		BarracksHandler:    barracksHandler,
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
