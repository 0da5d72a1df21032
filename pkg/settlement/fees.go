package settlement

import (
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultPlatformFeePercent  int64 = 3
	DefaultCommunityFeePercent int64 = 10
)

var hundred = decimal.NewFromInt(100)

// FeeSchedule parameterises the three-way split. Amounts are in major currency units.
type FeeSchedule struct {
	// FlatFee is charged on every sale.
	FlatFee decimal.Decimal
	// PercentThreshold is the total from which PlatformRate applies on top of FlatFee.
	PercentThreshold decimal.Decimal
	PlatformRate     decimal.Decimal
	// CommunityRate is the community owner's share of the total net of the platform fee.
	CommunityRate decimal.Decimal
}

// DefaultFeeSchedule is 1.00 flat below 50.00, 1.00 + 3% from 50.00, and 10% of the net to the community owner.
var DefaultFeeSchedule = FeeSchedule{
	FlatFee:          decimal.NewFromInt(1),
	PercentThreshold: decimal.NewFromInt(50),
	PlatformRate:     decimal.New(DefaultPlatformFeePercent, -2),
	CommunityRate:    decimal.New(DefaultCommunityFeePercent, -2),
}

// FeeScheduleFor applies the fee percentages stored on the auction, falling back to the defaults when unset.
func FeeScheduleFor(auction *models.Auction) FeeSchedule {
	schedule := DefaultFeeSchedule
	if auction == nil {
		return schedule
	}
	if auction.PlatformFeePercent > 0 {
		schedule.PlatformRate = decimal.New(auction.PlatformFeePercent, -2)
	}
	if auction.CommunityFeePercent > 0 {
		schedule.CommunityRate = decimal.New(auction.CommunityFeePercent, -2)
	}
	return schedule
}

// PayoutDistribution is the split of one sale.
// SellerAmount + CommunityOwnerAmount + PlatformFee always equals the total.
type PayoutDistribution struct {
	PlatformFee          decimal.Decimal
	NetAfterFee          decimal.Decimal
	CommunityOwnerAmount decimal.Decimal
	SellerAmount         decimal.Decimal
	BusinessRevenue      decimal.Decimal
}

// CalculatePayoutDistribution splits total with the default fee schedule.
func CalculatePayoutDistribution(total decimal.Decimal) PayoutDistribution {
	return DefaultFeeSchedule.Calculate(total)
}

// Calculate splits total. The seller receives the remainder, so the parts sum to total exactly.
func (s FeeSchedule) Calculate(total decimal.Decimal) PayoutDistribution {
	platformFee := s.FlatFee
	if total.GreaterThanOrEqual(s.PercentThreshold) {
		platformFee = s.FlatFee.Add(s.PlatformRate.Mul(total))
	}
	net := total.Sub(platformFee)
	communityOwner := s.CommunityRate.Mul(net)

	return PayoutDistribution{
		PlatformFee:          platformFee,
		NetAfterFee:          net,
		CommunityOwnerAmount: communityOwner,
		SellerAmount:         net.Sub(communityOwner),
		BusinessRevenue:      platformFee,
	}
}

// FromCents converts minor units to a major-unit decimal.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// CentsSplit is a distribution expressed in minor units.
type CentsSplit struct {
	SellerCents         int64
	CommunityOwnerCents int64
	PlatformFeeCents    int64
}

// ToCents rounds the seller and community shares to cents and assigns the rest to the platform,
// so the three parts sum to totalCents. A sale too small to cover the platform fee goes to the platform entirely.
func ToCents(dist PayoutDistribution, totalCents int64) CentsSplit {
	if !dist.NetAfterFee.IsPositive() {
		return CentsSplit{PlatformFeeCents: totalCents}
	}
	seller := dist.SellerAmount.Mul(hundred).Round(0).IntPart()
	community := dist.CommunityOwnerAmount.Mul(hundred).Round(0).IntPart()
	return CentsSplit{
		SellerCents:         seller,
		CommunityOwnerCents: community,
		PlatformFeeCents:    totalCents - seller - community,
	}
}
