package websockets

import "time"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBidPlaced is sent after a bid is accepted.
	MessageTypeBidPlaced MessageType = "bidPlaced"
	// MessageTypeAuctionClosed is sent when bidding stops, by ending or by a buy-now purchase.
	MessageTypeAuctionClosed MessageType = "auctionClosed"
)

// Message is one update about an auction.
type Message struct {
	Type      MessageType `json:"type"`
	AuctionId string      `json:"auction_id"`
	Payload   any         `json:"payload"`
}

// BidPlacedPayload is the payload of a bidPlaced message.
type BidPlacedPayload struct {
	BidId              string    `json:"bid_id"`
	BidderId           string    `json:"bidder_id"`
	AmountCents        int64     `json:"amount_cents"`
	NextMinAmountCents int64     `json:"next_min_amount_cents"`
	EndsAt             time.Time `json:"ends_at"`
	Extended           bool      `json:"extended"`
}

// AuctionClosedPayload is the payload of an auctionClosed message.
type AuctionClosedPayload struct {
	Status      string `json:"status"`
	WinnerId    string `json:"winner_id,omitempty"`
	AmountCents int64  `json:"amount_cents"`
}

// BidPlaced builds a bidPlaced message.
func BidPlaced(auctionID string, p BidPlacedPayload) Message {
	return Message{Type: MessageTypeBidPlaced, AuctionId: auctionID, Payload: p}
}

// AuctionClosed builds an auctionClosed message.
func AuctionClosed(auctionID string, p AuctionClosedPayload) Message {
	return Message{Type: MessageTypeAuctionClosed, AuctionId: auctionID, Payload: p}
}
