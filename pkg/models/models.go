package models

import (
	"time"
)

// AuctionStatus defines the possible states of an auction.
type AuctionStatus string

const (
	SCHEDULED       AuctionStatus = "SCHEDULED"
	LIVE            AuctionStatus = "LIVE"
	ENDED           AuctionStatus = "ENDED"
	PENDING_PAYMENT AuctionStatus = "PENDING_PAYMENT"
	PAID            AuctionStatus = "PAID"
	FULFILLED       AuctionStatus = "FULFILLED"
	DISPUTED        AuctionStatus = "DISPUTED"
	REFUNDED        AuctionStatus = "REFUNDED"
	REMOVED         AuctionStatus = "REMOVED"
)

// ItemKind distinguishes digital deliverables from shipped goods.
type ItemKind string

const (
	DIGITAL  ItemKind = "DIGITAL"
	PHYSICAL ItemKind = "PHYSICAL"
)

// PayoutStatus is shared by settlements and the auction's payout bookkeeping.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "PENDING"
	PayoutCompleted PayoutStatus = "COMPLETED"
	PayoutFailed    PayoutStatus = "FAILED"
)

// Auction represents the internal domain model for an auction.
// It includes dynamodbav tags for marshalling.
type Auction struct {
	Id                  string        `json:"id" dynamodbav:"id"`
	CommunityId         string        `json:"community_id" dynamodbav:"community_id"`
	CreatorId           string        `json:"creator_id" dynamodbav:"creator_id"`
	Title               string        `json:"title" dynamodbav:"title"`
	Description         string        `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Kind                ItemKind      `json:"kind" dynamodbav:"kind"`
	StartPriceCents     int64         `json:"start_price_cents" dynamodbav:"start_price_cents"`
	MinIncrementCents   int64         `json:"min_increment_cents" dynamodbav:"min_increment_cents"`
	BuyNowPriceCents    *int64        `json:"buy_now_price_cents,omitempty" dynamodbav:"buy_now_price_cents,omitempty"`
	Currency            string        `json:"currency" dynamodbav:"currency"`
	ShippingCostCents   int64         `json:"shipping_cost_cents" dynamodbav:"shipping_cost_cents"`
	CommunityFeePercent int64         `json:"community_fee_percent" dynamodbav:"community_fee_percent"`
	PlatformFeePercent  int64         `json:"platform_fee_percent" dynamodbav:"platform_fee_percent"`
	StartsAt            time.Time     `json:"starts_at" dynamodbav:"starts_at"`
	EndsAt              time.Time     `json:"ends_at" dynamodbav:"ends_at"`
	AntiSnipeSeconds    int64         `json:"anti_snipe_seconds" dynamodbav:"anti_snipe_seconds"`
	Status              AuctionStatus `json:"status" dynamodbav:"status"`
	WinnerId            string        `json:"winner_id,omitempty" dynamodbav:"winner_id,omitempty"`
	WinningBidId        string        `json:"winning_bid_id,omitempty" dynamodbav:"winning_bid_id,omitempty"`

	// Top-bid cache, rewritten together with every accepted bid.
	CurrentBidId      string `json:"current_bid_id,omitempty" dynamodbav:"current_bid_id,omitempty"`
	CurrentBidderId   string `json:"current_bidder_id,omitempty" dynamodbav:"current_bidder_id,omitempty"`
	TopBidAmountCents int64  `json:"top_bid_amount_cents" dynamodbav:"top_bid_amount_cents"`
	BidCount          int64  `json:"bid_count" dynamodbav:"bid_count"`

	DigitalAssetKey string `json:"-" dynamodbav:"digital_asset_key,omitempty"`

	PayoutStatus            PayoutStatus `json:"payout_status,omitempty" dynamodbav:"payout_status,omitempty"`
	SellerPaidCents         int64        `json:"seller_paid_cents,omitempty" dynamodbav:"seller_paid_cents,omitempty"`
	CommunityOwnerPaidCents int64        `json:"community_owner_paid_cents,omitempty" dynamodbav:"community_owner_paid_cents,omitempty"`
	PayoutFailureReason     string       `json:"payout_failure_reason,omitempty" dynamodbav:"payout_failure_reason,omitempty"`

	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// EffectiveStatus is the status every caller should act on. A scheduled
// auction whose start time has passed is live; nothing else is derived.
func (a *Auction) EffectiveStatus(now time.Time) AuctionStatus {
	if a.Status == SCHEDULED && !now.Before(a.StartsAt) {
		return LIVE
	}
	return a.Status
}

// HasEnded reports whether the bidding window is closed at now.
func (a *Auction) HasEnded(now time.Time) bool {
	return !now.Before(a.EndsAt)
}

// Bid is an immutable record of an accepted bid.
type Bid struct {
	Id          string    `json:"id" dynamodbav:"id"`
	AuctionId   string    `json:"auction_id" dynamodbav:"auction_id"`
	BidderId    string    `json:"bidder_id" dynamodbav:"bidder_id"`
	AmountCents int64     `json:"amount_cents" dynamodbav:"amount_cents"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// BarracksStatus defines the possible states of an ownership record.
type BarracksStatus string

const (
	BarracksPendingPayment BarracksStatus = "PENDING_PAYMENT"
	BarracksPaid           BarracksStatus = "PAID"
	BarracksFulfilled      BarracksStatus = "FULFILLED"
	BarracksDisputed       BarracksStatus = "DISPUTED"
	BarracksRefunded       BarracksStatus = "REFUNDED"
)

// PurchaseSource records how the buyer won the item.
type PurchaseSource string

const (
	SourceAuctionWin PurchaseSource = "AUCTION_WIN"
	SourceBuyNow     PurchaseSource = "BUY_NOW"
)

// BarracksItem is the buyer's ownership record. It is created together with
// the charge and only reaches PAID once the payment has been confirmed.
type BarracksItem struct {
	Id              string           `json:"id" dynamodbav:"id"`
	AuctionId       string           `json:"auction_id" dynamodbav:"auction_id"`
	OwnerId         string           `json:"owner_id" dynamodbav:"owner_id"`
	ChargeRef       string           `json:"charge_ref" dynamodbav:"charge_ref"`
	CheckoutURL     string           `json:"checkout_url,omitempty" dynamodbav:"checkout_url,omitempty"`
	PaymentId       string           `json:"payment_id,omitempty" dynamodbav:"payment_id,omitempty"`
	Source          PurchaseSource   `json:"source" dynamodbav:"source"`
	Status          BarracksStatus   `json:"status" dynamodbav:"status"`
	AmountCents     int64            `json:"amount_cents" dynamodbav:"amount_cents"`
	Currency        string           `json:"currency" dynamodbav:"currency"`
	PaidAt          *time.Time       `json:"paid_at,omitempty" dynamodbav:"paid_at,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty" dynamodbav:"shipping_address,omitempty"`
	TrackingNumber  string           `json:"tracking_number,omitempty" dynamodbav:"tracking_number,omitempty"`
	Carrier         string           `json:"carrier,omitempty" dynamodbav:"carrier,omitempty"`
	Version         int64            `json:"version" dynamodbav:"version"`
	CreatedAt       time.Time        `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" dynamodbav:"updated_at"`
}

// ShippingAddress is where a physical item is sent.
type ShippingAddress struct {
	Name       string `json:"name" dynamodbav:"name"`
	Line1      string `json:"line1" dynamodbav:"line1"`
	Line2      string `json:"line2,omitempty" dynamodbav:"line2,omitempty"`
	City       string `json:"city" dynamodbav:"city"`
	State      string `json:"state,omitempty" dynamodbav:"state,omitempty"`
	PostalCode string `json:"postal_code" dynamodbav:"postal_code"`
	Country    string `json:"country" dynamodbav:"country"`
}

// PhysicalState tracks shipment progress.
type PhysicalState string

const (
	NotShipped PhysicalState = "NOT_SHIPPED"
	Shipped    PhysicalState = "SHIPPED"
	Delivered  PhysicalState = "DELIVERED"
)

// Fulfillment is created lazily on the first fulfillment action for an auction.
type Fulfillment struct {
	AuctionId           string        `json:"auction_id" dynamodbav:"auction_id"`
	Kind                ItemKind      `json:"kind" dynamodbav:"kind"`
	SellerMarkedShipped bool          `json:"seller_marked_shipped" dynamodbav:"seller_marked_shipped"`
	BuyerMarkedReceived bool          `json:"buyer_marked_received" dynamodbav:"buyer_marked_received"`
	PhysicalState       PhysicalState `json:"physical_state,omitempty" dynamodbav:"physical_state,omitempty"`
	TrackingNumber      string        `json:"tracking_number,omitempty" dynamodbav:"tracking_number,omitempty"`
	Carrier             string        `json:"carrier,omitempty" dynamodbav:"carrier,omitempty"`
	ShippedAt           *time.Time    `json:"shipped_at,omitempty" dynamodbav:"shipped_at,omitempty"`
	ReceivedAt          *time.Time    `json:"received_at,omitempty" dynamodbav:"received_at,omitempty"`
	DeliveredAt         *time.Time    `json:"delivered_at,omitempty" dynamodbav:"delivered_at,omitempty"`
	AccessGranted       bool          `json:"access_granted" dynamodbav:"access_granted"`
	Version             int64         `json:"version" dynamodbav:"version"`
	UpdatedAt           time.Time     `json:"updated_at" dynamodbav:"updated_at"`
}

// PayoutRole identifies a payout recipient.
type PayoutRole string

const (
	RoleSeller         PayoutRole = "seller"
	RoleCommunityOwner PayoutRole = "community_owner"
)

// LegStatus is the outcome of a single payout transfer.
type LegStatus string

const (
	LegPending   LegStatus = "PENDING"
	LegSucceeded LegStatus = "SUCCEEDED"
	LegFailed    LegStatus = "FAILED"
)

// PayoutLeg is one transfer to one recipient.
type PayoutLeg struct {
	Role           PayoutRole `json:"role" dynamodbav:"role"`
	RecipientId    string     `json:"recipient_id" dynamodbav:"recipient_id"`
	AmountCents    int64      `json:"amount_cents" dynamodbav:"amount_cents"`
	Status         LegStatus  `json:"status" dynamodbav:"status"`
	PayoutRef      string     `json:"payout_ref,omitempty" dynamodbav:"payout_ref,omitempty"`
	IdempotencyKey string     `json:"idempotency_key" dynamodbav:"idempotency_key"`
	FailureReason  string     `json:"failure_reason,omitempty" dynamodbav:"failure_reason,omitempty"`
	Attempts       int64      `json:"attempts" dynamodbav:"attempts"`
}

// Settlement is the winning-bid record. There is at most one per auction.
type Settlement struct {
	AuctionId        string                    `json:"auction_id" dynamodbav:"auction_id"`
	BarracksItemId   string                    `json:"barracks_item_id" dynamodbav:"barracks_item_id"`
	PaymentId        string                    `json:"payment_id" dynamodbav:"payment_id"`
	AmountCents      int64                     `json:"amount_cents" dynamodbav:"amount_cents"`
	Currency         string                    `json:"currency" dynamodbav:"currency"`
	PaidAt           time.Time                 `json:"paid_at" dynamodbav:"paid_at"`
	PayoutStatus     PayoutStatus              `json:"payout_status" dynamodbav:"payout_status"`
	Legs             map[PayoutRole]*PayoutLeg `json:"legs,omitempty" dynamodbav:"legs,omitempty"`
	PlatformFeeCents int64                     `json:"platform_fee_cents" dynamodbav:"platform_fee_cents"`
	TransferFeeCents int64                     `json:"transfer_fee_cents" dynamodbav:"transfer_fee_cents"`
	CreatedAt        time.Time                 `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at" dynamodbav:"updated_at"`
}
