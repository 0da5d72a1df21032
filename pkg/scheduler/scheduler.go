package scheduler

import (
	"context"
	"time"
)

//go:generate mockery --name PayoutScheduler --output ./mocks --outpkg mocks
//go:generate mockery --name SQSAPI --output ./mocks --outpkg mocks

// PayoutScheduler defines the interface for a component that schedules a payout for later processing.
type PayoutScheduler interface {
	// SchedulePayout enqueues the payout of a settled auction, optionally after a delay.
	SchedulePayout(ctx context.Context, auctionID string, delay time.Duration) error
}

// PayoutJob is the message body consumed by the payout worker.
type PayoutJob struct {
	AuctionId  string    `json:"auction_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
