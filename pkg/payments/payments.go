package payments

import (
	"context"
	"time"
)

//go:generate mockery --name Platform --output ./mocks --outpkg mocks

// StatusPaid is the only payment status that can settle a purchase.
const StatusPaid = "paid"

// ChargeRequest asks the platform to bill a user for a purchase.
type ChargeRequest struct {
	// IdempotencyKey makes a repeated request return the charge created by the first one.
	IdempotencyKey string
	UserId         string
	CommunityId    string
	AmountCents    int64
	Currency       string
	Description    string
	Metadata       map[string]string
}

// Charge is the platform's reference for a pending payment.
type Charge struct {
	Id          string
	CheckoutURL string
}

// PaymentQuery filters payments by the charge they belong to and the paying user.
type PaymentQuery struct {
	ChargeRef string
	UserId    string
}

// Payment is a payment as reported by the platform.
type Payment struct {
	Id          string
	Status      string
	AmountCents int64
	Currency    string
	PaidAt      *time.Time
	RefundedAt  *time.Time
}

// Succeeded reports whether the payment can settle a purchase.
// A refunded payment never counts, whatever its status says.
func (p Payment) Succeeded() bool {
	return p.Status == StatusPaid && p.PaidAt != nil && p.RefundedAt == nil
}

// PayoutRequest transfers funds from a ledger account to a user.
type PayoutRequest struct {
	LedgerAccountId string
	RecipientId     string
	AmountCents     int64
	Currency        string
	IdempotencyKey  string
	Notes           string
}

// LedgerAccount is the account payouts are drawn from.
type LedgerAccount struct {
	Id               string
	TransferFeeCents int64
}

// Charger creates charges.
type Charger interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

// PaymentLookup reads payment state.
type PaymentLookup interface {
	ListPayments(ctx context.Context, query PaymentQuery) ([]Payment, error)
}

// Ledger disburses payouts.
type Ledger interface {
	GetLedgerAccount(ctx context.Context, communityID string) (*LedgerAccount, error)
	// PayUser returns the platform's payout reference.
	PayUser(ctx context.Context, req PayoutRequest) (string, error)
}

// Communities resolves who owns a community.
type Communities interface {
	GetCommunityOwner(ctx context.Context, communityID string) (string, error)
}

// Platform is the external payment platform as seen by the auction core.
type Platform interface {
	Charger
	PaymentLookup
	Ledger
	Communities
}
