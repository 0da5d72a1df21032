package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/models"
)

const defaultCurrency = "usd"

// NewAuction is a seller's listing request.
type NewAuction struct {
	Title             string
	Description       string
	Kind              models.ItemKind
	StartPriceCents   int64
	MinIncrementCents int64
	BuyNowPriceCents  *int64
	Currency          string
	ShippingCostCents int64
	// StartsAt defaults to now.
	StartsAt         *time.Time
	EndsAt           time.Time
	AntiSnipeSeconds int64
}

func (n NewAuction) validate(now time.Time, startsAt time.Time) error {
	switch {
	case strings.TrimSpace(n.Title) == "":
		return invalid("title is required")
	case n.Kind != models.DIGITAL && n.Kind != models.PHYSICAL:
		return invalid("kind must be %s or %s", models.DIGITAL, models.PHYSICAL)
	case n.StartPriceCents <= 0:
		return invalid("start price must be positive")
	case n.MinIncrementCents <= 0:
		return invalid("minimum increment must be positive")
	case n.BuyNowPriceCents != nil && *n.BuyNowPriceCents <= n.StartPriceCents:
		return invalid("buy now price must be above the start price")
	case n.ShippingCostCents < 0:
		return invalid("shipping cost cannot be negative")
	case n.ShippingCostCents > 0 && n.Kind != models.PHYSICAL:
		return invalid("only physical items have a shipping cost")
	case !n.EndsAt.After(startsAt):
		return invalid("end time must be after the start time")
	case !n.EndsAt.After(now):
		return invalid("end time must be in the future")
	case n.AntiSnipeSeconds < 0:
		return invalid("anti-snipe window cannot be negative")
	}
	return nil
}

// CreateAuction lists a new auction in the caller's community. It starts SCHEDULED,
// or LIVE when its start time has already passed.
func (m *Machine) CreateAuction(ctx context.Context, actor *auth.Identity, in NewAuction) (*models.Auction, error) {
	if actor == nil || actor.UserId == "" || actor.CommunityId == "" || actor.AccessLevel == auth.AccessNone {
		return nil, forbidden("create an auction")
	}

	now := m.now()
	startsAt := now
	if in.StartsAt != nil {
		startsAt = in.StartsAt.UTC()
	}
	if err := in.validate(now, startsAt); err != nil {
		return nil, err
	}

	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	auction := &models.Auction{
		Id:                  m.NewID(),
		CommunityId:         actor.CommunityId,
		CreatorId:           actor.UserId,
		Title:               strings.TrimSpace(in.Title),
		Description:         in.Description,
		Kind:                in.Kind,
		StartPriceCents:     in.StartPriceCents,
		MinIncrementCents:   in.MinIncrementCents,
		BuyNowPriceCents:    in.BuyNowPriceCents,
		Currency:            currency,
		ShippingCostCents:   in.ShippingCostCents,
		CommunityFeePercent: m.Fees.CommunityFeePercent,
		PlatformFeePercent:  m.Fees.PlatformFeePercent,
		StartsAt:            startsAt,
		EndsAt:              in.EndsAt.UTC(),
		AntiSnipeSeconds:    in.AntiSnipeSeconds,
		Status:              models.SCHEDULED,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	auction.Status = auction.EffectiveStatus(now)

	if err := m.Store.CreateAuction(ctx, auction); err != nil {
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}

	m.Metrics.Transition(auction.Status)
	m.Logger.Info("auction created",
		slog.String("auction_id", auction.Id),
		slog.String("community_id", auction.CommunityId),
		slog.String("status", string(auction.Status)),
	)
	return auction, nil
}

// AssetUpload is where a seller uploads the deliverable of a digital auction.
type AssetUpload struct {
	Key string
	URL string
}

// AssetUploadURL issues a fresh upload URL for a digital auction and records the object key on it.
// Only the creator may upload, and only until the item has been delivered.
func (m *Machine) AssetUploadURL(ctx context.Context, auctionID string, actor *auth.Identity) (*AssetUpload, error) {
	if m.Assets == nil {
		return nil, errors.New("digital asset storage is not configured")
	}
	auction, err := m.loadAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if err := requireKind(auction, models.DIGITAL, "upload an asset for"); err != nil {
		return nil, err
	}
	if !isCreator(actor, auction) {
		return nil, forbidden("upload an asset for this auction")
	}
	if err := requireStatus(auction, m.now(), "upload an asset for",
		models.SCHEDULED, models.LIVE, models.ENDED, models.PENDING_PAYMENT, models.PAID); err != nil {
		return nil, err
	}

	key, url, err := m.Assets.UploadURL(ctx, auction.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	auction.DigitalAssetKey = key
	auction.UpdatedAt = m.now()
	if err := m.Store.UpdateAuction(ctx, auction); err != nil {
		return nil, fmt.Errorf("failed to record asset key: %w", err)
	}
	return &AssetUpload{Key: key, URL: url}, nil
}
