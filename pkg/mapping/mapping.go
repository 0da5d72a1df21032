package mapping

import (
	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/bidding"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/settlement"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToApiAuction converts a domain Auction model to an API Auction model.
func ToApiAuction(a *models.Auction) *api.Auction {
	return &api.Auction{
		Id:                a.Id,
		CommunityId:       a.CommunityId,
		CreatorId:         a.CreatorId,
		Title:             a.Title,
		Description:       optional(a.Description),
		Kind:              api.ItemKind(a.Kind),
		StartPriceCents:   a.StartPriceCents,
		MinIncrementCents: a.MinIncrementCents,
		BuyNowPriceCents:  a.BuyNowPriceCents,
		Currency:          a.Currency,
		ShippingCostCents: a.ShippingCostCents,
		StartsAt:          a.StartsAt,
		EndsAt:            a.EndsAt,
		AntiSnipeSeconds:  a.AntiSnipeSeconds,
		Status:            api.AuctionStatus(a.Status),
		TopBidAmountCents: a.TopBidAmountCents,
		CurrentBidderId:   optional(a.CurrentBidderId),
		BidCount:          a.BidCount,
		NextMinBidCents:   bidding.NextMinBid(a),
		WinnerId:          optional(a.WinnerId),
		PayoutStatus:      optional(string(a.PayoutStatus)),
	}
}

// ToDomainNewAuction converts an API NewAuction model to a lifecycle listing request.
func ToDomainNewAuction(in *api.NewAuction) lifecycle.NewAuction {
	out := lifecycle.NewAuction{
		Title:             in.Title,
		Description:       value(in.Description),
		Kind:              models.ItemKind(in.Kind),
		StartPriceCents:   in.StartPriceCents,
		MinIncrementCents: in.MinIncrementCents,
		BuyNowPriceCents:  in.BuyNowPriceCents,
		Currency:          value(in.Currency),
		StartsAt:          in.StartsAt,
		EndsAt:            in.EndsAt,
	}
	if in.ShippingCostCents != nil {
		out.ShippingCostCents = *in.ShippingCostCents
	}
	if in.AntiSnipeSeconds != nil {
		out.AntiSnipeSeconds = *in.AntiSnipeSeconds
	}
	return out
}

// ToApiBid converts a domain Bid model to an API Bid model.
func ToApiBid(b *models.Bid) *api.Bid {
	return &api.Bid{
		Id:          b.Id,
		AuctionId:   b.AuctionId,
		BidderId:    b.BidderId,
		AmountCents: b.AmountCents,
		CreatedAt:   b.CreatedAt,
	}
}

// ToApiBidAccepted converts an accepted bid to the API response.
func ToApiBidAccepted(r *bidding.BidResult) *api.BidAccepted {
	return &api.BidAccepted{
		Bid:                *ToApiBid(r.Bid),
		NextMinAmountCents: r.NextMinAmountCents,
		EndsAt:             r.EndsAt,
		Extended:           r.Extended,
	}
}

func toApiAddress(addr *models.ShippingAddress) *api.ShippingAddress {
	if addr == nil {
		return nil
	}
	return &api.ShippingAddress{
		Name:       addr.Name,
		Line1:      addr.Line1,
		Line2:      optional(addr.Line2),
		City:       addr.City,
		State:      optional(addr.State),
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

// ToDomainShippingAddress converts an API ShippingAddress to the domain model.
func ToDomainShippingAddress(addr *api.ShippingAddress) models.ShippingAddress {
	return models.ShippingAddress{
		Name:       addr.Name,
		Line1:      addr.Line1,
		Line2:      value(addr.Line2),
		City:       addr.City,
		State:      value(addr.State),
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

// ToApiBarracksItem converts an ownership record to the API model.
// The charge reference and owner stay internal.
func ToApiBarracksItem(item *models.BarracksItem) *api.BarracksItem {
	return &api.BarracksItem{
		Id:              item.Id,
		AuctionId:       item.AuctionId,
		Status:          api.BarracksStatus(item.Status),
		Source:          api.PurchaseSource(item.Source),
		AmountCents:     item.AmountCents,
		Currency:        item.Currency,
		PaidAt:          item.PaidAt,
		ShippingAddress: toApiAddress(item.ShippingAddress),
		TrackingNumber:  optional(item.TrackingNumber),
		Carrier:         optional(item.Carrier),
		CheckoutUrl:     optional(checkoutURL(item)),
		CreatedAt:       item.CreatedAt,
	}
}

// checkoutURL is only shown while the item still awaits payment.
func checkoutURL(item *models.BarracksItem) string {
	if item.Status != models.BarracksPendingPayment {
		return ""
	}
	return item.CheckoutURL
}

// ToApiPurchase converts a purchase awaiting payment to the API model.
func ToApiPurchase(p *lifecycle.PurchaseResult) *api.Purchase {
	return &api.Purchase{
		Auction:     *ToApiAuction(p.Auction),
		Item:        *ToApiBarracksItem(p.Item),
		CheckoutUrl: optional(p.CheckoutURL),
	}
}

// ToApiFulfillment converts a fulfillment record to the API model.
func ToApiFulfillment(f *models.Fulfillment) *api.Fulfillment {
	return &api.Fulfillment{
		Kind:                api.ItemKind(f.Kind),
		SellerMarkedShipped: f.SellerMarkedShipped,
		BuyerMarkedReceived: f.BuyerMarkedReceived,
		PhysicalState:       optional(string(f.PhysicalState)),
		TrackingNumber:      optional(f.TrackingNumber),
		Carrier:             optional(f.Carrier),
		ShippedAt:           f.ShippedAt,
		ReceivedAt:          f.ReceivedAt,
		AccessGranted:       f.AccessGranted,
		DeliveredAt:         f.DeliveredAt,
	}
}

// ToApiDelivery converts a digital delivery to the API model.
func ToApiDelivery(d *lifecycle.DeliveryResult) *api.Delivery {
	return &api.Delivery{
		Fulfillment: *ToApiFulfillment(d.Fulfillment),
		DownloadUrl: optional(d.DownloadURL),
	}
}

// ToApiPaymentVerification converts a reconciliation result to the API model.
func ToApiPaymentVerification(r *settlement.ReconcileResult) *api.PaymentVerification {
	return &api.PaymentVerification{
		Outcome: api.PaymentVerificationOutcome(r.Outcome),
		Item:    *ToApiBarracksItem(r.Item),
	}
}
