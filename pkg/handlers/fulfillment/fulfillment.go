package fulfillment

import (
	"log/slog"
	"net/http"

	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/handlers/respond"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/mapping"
)

// FulfillmentHandler holds the dependencies for delivery-related handlers.
type FulfillmentHandler struct {
	Machine *lifecycle.Machine
	Logger  *slog.Logger
}

// NewFulfillmentHandler creates a new FulfillmentHandler.
func NewFulfillmentHandler(machine *lifecycle.Machine, logger *slog.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{Machine: machine, Logger: logger}
}

// MarkShipped records the seller's shipment of a physical item.
func (h *FulfillmentHandler) MarkShipped(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var shipment api.Shipment
	if !respond.Decode(w, r, &shipment) {
		return
	}

	carrier := ""
	if shipment.Carrier != nil {
		carrier = *shipment.Carrier
	}
	f, err := h.Machine.MarkShipped(r.Context(), auctionId.String(), caller, lifecycle.Shipment{
		TrackingNumber: shipment.TrackingNumber,
		Carrier:        carrier,
	})
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiFulfillment(f))
}

// MarkReceived records the winner's receipt of a physical item.
func (h *FulfillmentHandler) MarkReceived(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	f, err := h.Machine.MarkReceived(r.Context(), auctionId.String(), caller)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiFulfillment(f))
}

// MarkDelivered grants the winner access to a digital item.
func (h *FulfillmentHandler) MarkDelivered(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	delivery, err := h.Machine.MarkDelivered(r.Context(), auctionId.String(), caller)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiDelivery(delivery))
}

// SetShippingAddress stores where the buyer wants the item sent.
func (h *FulfillmentHandler) SetShippingAddress(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var address api.ShippingAddress
	if !respond.Decode(w, r, &address) {
		return
	}

	item, err := h.Machine.SetShippingAddress(r.Context(), auctionId.String(), caller, mapping.ToDomainShippingAddress(&address))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiBarracksItem(item))
}

// CreateAssetUpload presigns an upload of a digital item's deliverable for its seller.
func (h *FulfillmentHandler) CreateAssetUpload(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	upload, err := h.Machine.AssetUploadURL(r.Context(), auctionId.String(), caller)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.AssetUpload{Key: upload.Key, UploadUrl: upload.URL})
}

// GetDownloadUrl presigns a download of a delivered digital item for its winner.
func (h *FulfillmentHandler) GetDownloadUrl(w http.ResponseWriter, r *http.Request, auctionId api.AuctionId) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	url, err := h.Machine.DownloadURL(r.Context(), auctionId.String(), caller)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.DownloadLink{Url: url})
}
