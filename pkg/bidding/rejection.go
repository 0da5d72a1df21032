package bidding

import "fmt"

// RejectReason is the machine-readable code of a rejected bid.
type RejectReason string

const (
	ReasonNotFound          RejectReason = "NOT_FOUND"
	ReasonNotLive           RejectReason = "NOT_LIVE"
	ReasonEnded             RejectReason = "ENDED"
	ReasonInvalidAmount     RejectReason = "INVALID_AMOUNT"
	ReasonTooLow            RejectReason = "TOO_LOW"
	ReasonBelowMinIncrement RejectReason = "BELOW_MIN_INCREMENT"
)

// Rejection is returned when a bid fails validation. Nothing is written for a rejected bid.
type Rejection struct {
	Reason RejectReason
	// NextMinAmountCents is the smallest acceptable bid, set for TOO_LOW and BELOW_MIN_INCREMENT.
	NextMinAmountCents int64
	Message            string
}

func (r *Rejection) Error() string {
	if r.NextMinAmountCents > 0 {
		return fmt.Sprintf("bid rejected (%s): %s, minimum is %d", r.Reason, r.Message, r.NextMinAmountCents)
	}
	return fmt.Sprintf("bid rejected (%s): %s", r.Reason, r.Message)
}

func reject(reason RejectReason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}
