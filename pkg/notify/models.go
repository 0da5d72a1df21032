package notify

// Kind defines the type of a notification.
type Kind string

const (
	// KindOutbid tells a bidder that someone placed a higher bid.
	KindOutbid Kind = "outbid"
	// KindAuctionWon tells the winner that the auction closed in their favour.
	KindAuctionWon Kind = "auctionWon"
	// KindCheckoutReady gives a buyer the link that pays for a purchase.
	KindCheckoutReady Kind = "checkoutReady"
	// KindPaymentConfirmed tells buyer and seller that payment cleared.
	KindPaymentConfirmed Kind = "paymentConfirmed"
	// KindItemShipped tells the buyer that the seller shipped the item.
	KindItemShipped Kind = "itemShipped"
)

// Notification is a single message addressed to one user.
type Notification struct {
	Kind        Kind   `json:"kind"`
	UserId      string `json:"user_id"`
	CommunityId string `json:"community_id"`
	AuctionId   string `json:"auction_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}
