package whop

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chris/bidding-wars/pkg/payments"
	"github.com/shopspring/decimal"
)

// The API speaks major currency units; the core speaks cents.
func centsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func amountToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func unixTime(sec *int64) *time.Time {
	if sec == nil || *sec == 0 {
		return nil
	}
	t := time.Unix(*sec, 0).UTC()
	return &t
}

type chargeRequest struct {
	UserId         string            `json:"user_id"`
	ExperienceId   string            `json:"experience_id"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	IdempotenceKey string            `json:"idempotence_key,omitempty"`
}

type chargeResponse struct {
	Id          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}

// CreateCharge bills a user. The returned charge id is what payments are later matched against.
func (c *Client) CreateCharge(ctx context.Context, req payments.ChargeRequest) (*payments.Charge, error) {
	body := chargeRequest{
		UserId:         req.UserId,
		ExperienceId:   req.CommunityId,
		Amount:         centsToAmount(req.AmountCents),
		Currency:       strings.ToLower(req.Currency),
		Description:    req.Description,
		Metadata:       req.Metadata,
		IdempotenceKey: req.IdempotencyKey,
	}

	var resp chargeResponse
	if err := c.do(ctx, "POST", "/api/v2/payments/charge_user", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create charge: %w", err)
	}
	if resp.Id == "" {
		return nil, fmt.Errorf("failed to create charge: response carried no charge id")
	}

	return &payments.Charge{Id: resp.Id, CheckoutURL: resp.CheckoutURL}, nil
}

type paymentResponse struct {
	Id          string          `json:"id"`
	Status      string          `json:"status"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Currency    string          `json:"currency"`
	PaidAt      *int64          `json:"paid_at"`
	RefundedAt  *int64          `json:"refunded_at"`
}

type listPaymentsResponse struct {
	Data []paymentResponse `json:"data"`
}

// ListPayments returns the payments made against a charge by a user.
func (c *Client) ListPayments(ctx context.Context, query payments.PaymentQuery) ([]payments.Payment, error) {
	params := url.Values{}
	params.Set("charge_id", query.ChargeRef)
	if query.UserId != "" {
		params.Set("user_id", query.UserId)
	}

	var resp listPaymentsResponse
	if err := c.do(ctx, "GET", "/api/v2/payments", params, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	result := make([]payments.Payment, len(resp.Data))
	for i, p := range resp.Data {
		result[i] = payments.Payment{
			Id:          p.Id,
			Status:      p.Status,
			AmountCents: amountToCents(p.FinalAmount),
			Currency:    p.Currency,
			PaidAt:      unixTime(p.PaidAt),
			RefundedAt:  unixTime(p.RefundedAt),
		}
	}
	return result, nil
}

type transferRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	DestinationId   string          `json:"destination_id"`
	LedgerAccountId string          `json:"ledger_account_id"`
	IdempotenceKey  string          `json:"idempotence_key"`
	Notes           string          `json:"notes,omitempty"`
}

type transferResponse struct {
	Id string `json:"id"`
}

// PayUser transfers funds out of a ledger account. The idempotency key makes retries safe.
func (c *Client) PayUser(ctx context.Context, req payments.PayoutRequest) (string, error) {
	body := transferRequest{
		Amount:          centsToAmount(req.AmountCents),
		Currency:        strings.ToLower(req.Currency),
		DestinationId:   req.RecipientId,
		LedgerAccountId: req.LedgerAccountId,
		IdempotenceKey:  req.IdempotencyKey,
		Notes:           req.Notes,
	}

	var resp transferResponse
	if err := c.do(ctx, "POST", "/api/v2/transfers", nil, body, &resp); err != nil {
		return "", fmt.Errorf("failed to pay user %s: %w", req.RecipientId, err)
	}
	return resp.Id, nil
}

type ledgerAccountResponse struct {
	Id          string          `json:"id"`
	TransferFee decimal.Decimal `json:"transfer_fee"`
}

func (c *Client) GetLedgerAccount(ctx context.Context, communityID string) (*payments.LedgerAccount, error) {
	var resp ledgerAccountResponse
	path := fmt.Sprintf("/api/v2/experiences/%s/ledger_account", url.PathEscape(communityID))
	if err := c.do(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get ledger account: %w", err)
	}
	if resp.Id == "" {
		return nil, fmt.Errorf("failed to get ledger account: community %s has none", communityID)
	}
	return &payments.LedgerAccount{Id: resp.Id, TransferFeeCents: amountToCents(resp.TransferFee)}, nil
}

type experienceResponse struct {
	Id      string `json:"id"`
	Company struct {
		OwnerUserId string `json:"owner_user_id"`
	} `json:"company"`
}

// GetCommunityOwner returns the user id owning the company behind an experience.
func (c *Client) GetCommunityOwner(ctx context.Context, communityID string) (string, error) {
	var resp experienceResponse
	path := fmt.Sprintf("/api/v2/experiences/%s", url.PathEscape(communityID))
	if err := c.do(ctx, "GET", path, nil, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to get community owner: %w", err)
	}
	return resp.Company.OwnerUserId, nil
}
