package settlement

import "errors"

var (
	// ErrPaymentLookup wraps a failure to query the payment platform. The caller may retry.
	ErrPaymentLookup = errors.New("payment lookup failed")
	// ErrAmbiguousPayment is returned when more than one successful payment matches a charge.
	ErrAmbiguousPayment = errors.New("more than one successful payment for charge")
	// ErrPayoutIncomplete is returned when at least one payout leg failed.
	ErrPayoutIncomplete = errors.New("payout incomplete")
)
