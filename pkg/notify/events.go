package notify

import "fmt"

// Outbid builds the notification for a bidder who lost the top spot.
func Outbid(communityID, auctionID, title, userID string, newAmountCents int64) Notification {
	return Notification{
		Kind:        KindOutbid,
		UserId:      userID,
		CommunityId: communityID,
		AuctionId:   auctionID,
		Title:       "You've been outbid",
		Content:     fmt.Sprintf("Someone bid %s on %q.", FormatCents(newAmountCents), title),
	}
}

// AuctionWon builds the notification for the winner of a closed auction.
func AuctionWon(communityID, auctionID, title, userID string, amountCents int64) Notification {
	return Notification{
		Kind:        KindAuctionWon,
		UserId:      userID,
		CommunityId: communityID,
		AuctionId:   auctionID,
		Title:       "You won!",
		Content:     fmt.Sprintf("Your bid of %s won %q. Your checkout link follows shortly.", FormatCents(amountCents), title),
	}
}

// CheckoutReady builds the notification that carries a buyer's checkout link.
func CheckoutReady(communityID, auctionID, title, userID string, amountCents int64, checkoutURL string) Notification {
	return Notification{
		Kind:        KindCheckoutReady,
		UserId:      userID,
		CommunityId: communityID,
		AuctionId:   auctionID,
		Title:       "Complete your purchase",
		Content:     fmt.Sprintf("Pay %s for %q: %s", FormatCents(amountCents), title, checkoutURL),
	}
}

// PaymentConfirmed builds the notification sent to one party once a payment clears.
func PaymentConfirmed(communityID, auctionID, title, userID string) Notification {
	return Notification{
		Kind:        KindPaymentConfirmed,
		UserId:      userID,
		CommunityId: communityID,
		AuctionId:   auctionID,
		Title:       "Payment confirmed",
		Content:     fmt.Sprintf("Payment for %q has been confirmed.", title),
	}
}

// ItemShipped builds the notification for a buyer whose item was shipped.
func ItemShipped(communityID, auctionID, title, userID, tracking string) Notification {
	content := fmt.Sprintf("%q is on its way.", title)
	if tracking != "" {
		content = fmt.Sprintf("%q is on its way. Tracking: %s", title, tracking)
	}
	return Notification{
		Kind:        KindItemShipped,
		UserId:      userID,
		CommunityId: communityID,
		AuctionId:   auctionID,
		Title:       "Item shipped",
		Content:     content,
	}
}

// FormatCents renders minor units as a dollar amount.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
